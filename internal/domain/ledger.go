package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CashFlowSource names one term of the free-cash reconciliation.
type CashFlowSource string

const (
	SourceEarnerOneIncome       CashFlowSource = "earner_one_income"
	SourceEarnerTwoIncome       CashFlowSource = "earner_two_income"
	SourceRentalIncome          CashFlowSource = "rental_net"
	SourceMarginArbitrage       CashFlowSource = "margin_net"
	SourceBusinessIncome        CashFlowSource = "business_income"
	SourceLivingExpenses        CashFlowSource = "expenses"
	SourceStaffExpense          CashFlowSource = "staff_expense"
	SourcePrimaryContribution   CashFlowSource = "primary_contribution"
	SourceSecondaryContribution CashFlowSource = "secondary_contribution"
	SourceVentureContribution   CashFlowSource = "venture_contribution"
	SourceRentalShortfall       CashFlowSource = "rental_shortfall"
)

// CashFlowSources is the closed set of ledger sources in reporting order.
var CashFlowSources = []CashFlowSource{
	SourceEarnerOneIncome,
	SourceEarnerTwoIncome,
	SourceRentalIncome,
	SourceMarginArbitrage,
	SourceBusinessIncome,
	SourceLivingExpenses,
	SourceStaffExpense,
	SourcePrimaryContribution,
	SourceSecondaryContribution,
	SourceVentureContribution,
	SourceRentalShortfall,
}

var sourceLabels = map[CashFlowSource]string{
	SourceEarnerOneIncome:       "Earner One Income",
	SourceEarnerTwoIncome:       "Earner Two Income",
	SourceRentalIncome:          "Rental Net",
	SourceMarginArbitrage:       "Margin Arbitrage",
	SourceBusinessIncome:        "Business Income",
	SourceLivingExpenses:        "Living Expenses",
	SourceStaffExpense:          "Staff / Operations",
	SourcePrimaryContribution:   "Primary Contribution",
	SourceSecondaryContribution: "Secondary Contribution",
	SourceVentureContribution:   "Venture Contribution",
	SourceRentalShortfall:       "Rental Shortfall",
}

// Label returns a human readable name for the source.
func (s CashFlowSource) Label() string {
	if l, ok := sourceLabels[s]; ok {
		return l
	}
	return string(s)
}

// LedgerEntry is a signed contribution to free cash.
type LedgerEntry struct {
	Source CashFlowSource  `json:"source"`
	Amount decimal.Decimal `json:"amount"`
}

// CashFlowLedger is an ordered mapping from every source to its signed
// amount. Incomes are positive, expenses and contributions negative.
type CashFlowLedger struct {
	entries []LedgerEntry
}

// CashFlowTerms carries one signed amount per source. Incomes are
// positive; expenses and contributions are negative.
type CashFlowTerms struct {
	EarnerOneIncome       decimal.Decimal
	EarnerTwoIncome       decimal.Decimal
	RentalIncome          decimal.Decimal
	MarginArbitrage       decimal.Decimal
	BusinessIncome        decimal.Decimal
	LivingExpenses        decimal.Decimal
	StaffExpense          decimal.Decimal
	PrimaryContribution   decimal.Decimal
	SecondaryContribution decimal.Decimal
	VentureContribution   decimal.Decimal
	RentalShortfall       decimal.Decimal
}

// NewCashFlowLedger builds a ledger in CashFlowSources order.
func NewCashFlowLedger(t CashFlowTerms) CashFlowLedger {
	return CashFlowLedger{entries: []LedgerEntry{
		{Source: SourceEarnerOneIncome, Amount: t.EarnerOneIncome},
		{Source: SourceEarnerTwoIncome, Amount: t.EarnerTwoIncome},
		{Source: SourceRentalIncome, Amount: t.RentalIncome},
		{Source: SourceMarginArbitrage, Amount: t.MarginArbitrage},
		{Source: SourceBusinessIncome, Amount: t.BusinessIncome},
		{Source: SourceLivingExpenses, Amount: t.LivingExpenses},
		{Source: SourceStaffExpense, Amount: t.StaffExpense},
		{Source: SourcePrimaryContribution, Amount: t.PrimaryContribution},
		{Source: SourceSecondaryContribution, Amount: t.SecondaryContribution},
		{Source: SourceVentureContribution, Amount: t.VentureContribution},
		{Source: SourceRentalShortfall, Amount: t.RentalShortfall},
	}}
}

// Entries returns a copy of the ledger entries in order.
func (l CashFlowLedger) Entries() []LedgerEntry {
	return append([]LedgerEntry(nil), l.entries...)
}

// Amount returns the signed amount recorded for a source.
func (l CashFlowLedger) Amount(source CashFlowSource) decimal.Decimal {
	for _, e := range l.entries {
		if e.Source == source {
			return e.Amount
		}
	}
	return decimal.Zero
}

// NonZero returns the entries with a non-zero amount.
func (l CashFlowLedger) NonZero() []LedgerEntry {
	var out []LedgerEntry
	for _, e := range l.entries {
		if !e.Amount.IsZero() {
			out = append(out, e)
		}
	}
	return out
}

// Total is the signed sum of all entries.
func (l CashFlowLedger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Amount)
	}
	return total
}

// Inflows sums the positive entries.
func (l CashFlowLedger) Inflows() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		if e.Amount.IsPositive() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Outflows sums the negative entries (returned as a negative number).
func (l CashFlowLedger) Outflows() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		if e.Amount.IsNegative() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func (l CashFlowLedger) MarshalJSON() ([]byte, error) {
	if l.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.entries)
}

func (l *CashFlowLedger) UnmarshalJSON(data []byte) error {
	var entries []LedgerEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	l.entries = entries
	return nil
}
