package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Balances is the end-of-year state threaded from one year to the next.
type Balances struct {
	Primary       decimal.Decimal `json:"primary"`
	Retirement    decimal.Decimal `json:"retirement"`
	IRA           decimal.Decimal `json:"ira"`
	HomeEquity    decimal.Decimal `json:"home_equity"`
	NewHomeEquity decimal.Decimal `json:"new_home_equity"`
	LandEquity    decimal.Decimal `json:"land_equity"`
	Acres         decimal.Decimal `json:"acres"`
	Secondary     decimal.Decimal `json:"secondary"`
	Venture       decimal.Decimal `json:"venture"`

	MarginLoan     decimal.Decimal `json:"margin_loan"`
	MarginInvested decimal.Decimal `json:"margin_invested"`
}

// StartingBalances returns the balances before the first projected year.
// The margin pair always starts at zero.
func StartingBalances(cfg Configuration) Balances {
	return Balances{
		Primary:        cfg.PrimaryStart,
		Retirement:     cfg.RetirementStart,
		IRA:            cfg.IRAStart,
		HomeEquity:     cfg.HomeEquityStart,
		NewHomeEquity:  cfg.NewHomeEquityStart,
		LandEquity:     cfg.InitialAcres.Mul(cfg.LandPricePerAcre),
		Acres:          cfg.InitialAcres,
		Secondary:      cfg.SecondaryStart,
		Venture:        cfg.VentureStart,
		MarginLoan:     decimal.Zero,
		MarginInvested: decimal.Zero,
	}
}

// HoldingsTotal sums the eight tracked holdings, excluding the margin pair.
func (b Balances) HoldingsTotal() decimal.Decimal {
	return b.Primary.
		Add(b.Retirement).
		Add(b.IRA).
		Add(b.HomeEquity).
		Add(b.NewHomeEquity).
		Add(b.LandEquity).
		Add(b.Secondary).
		Add(b.Venture)
}

// MarginNet is the invested-on-margin balance less the loan.
func (b Balances) MarginNet() decimal.Decimal {
	return b.MarginInvested.Sub(b.MarginLoan)
}

// MarginPosition is the outcome of the margin sub-model for one year.
type MarginPosition struct {
	Loan         decimal.Decimal `json:"loan"`
	Invested     decimal.Decimal `json:"invested"`
	NetArbitrage decimal.Decimal `json:"net_arbitrage"`
}

// YearSnapshot is the immutable record of a single projected age.
type YearSnapshot struct {
	Age   int   `json:"age"`
	Year  int   `json:"year"`
	Phase Phase `json:"phase"`

	Balances Balances       `json:"balances"`
	Margin   MarginPosition `json:"margin"`

	EarnerOneIncome decimal.Decimal `json:"earner_one_income"`
	EarnerTwoIncome decimal.Decimal `json:"earner_two_income"`
	BusinessIncome  decimal.Decimal `json:"business_income"`
	RentalNet       decimal.Decimal `json:"rental_net"`

	NetWorth       decimal.Decimal `json:"net_worth"`
	FreeCash       decimal.Decimal `json:"free_cash"`
	Ledger         CashFlowLedger  `json:"free_cash_sources"`
	PassiveIncome  decimal.Decimal `json:"passive_income"`
	SafeWithdrawal decimal.Decimal `json:"safe_withdrawal"`
}

// Projection is the ordered, read-only sequence of yearly snapshots.
type Projection struct {
	years []YearSnapshot
}

// NewProjection copies years into a new projection.
func NewProjection(years []YearSnapshot) Projection {
	return Projection{years: append([]YearSnapshot(nil), years...)}
}

// Len returns the number of projected years.
func (p Projection) Len() int { return len(p.years) }

// Years returns a copy of the snapshots in age order.
func (p Projection) Years() []YearSnapshot {
	return append([]YearSnapshot(nil), p.years...)
}

// At looks up the snapshot for a single age.
func (p Projection) At(age int) (YearSnapshot, bool) {
	if len(p.years) == 0 {
		return YearSnapshot{}, false
	}
	idx := age - p.years[0].Age
	if idx < 0 || idx >= len(p.years) {
		return YearSnapshot{}, false
	}
	return p.years[idx], true
}

// Filter returns the snapshots matching keep, in age order.
func (p Projection) Filter(keep func(YearSnapshot) bool) []YearSnapshot {
	var out []YearSnapshot
	for _, y := range p.years {
		if keep(y) {
			out = append(out, y)
		}
	}
	return out
}

// First returns the earliest snapshot.
func (p Projection) First() (YearSnapshot, bool) {
	if len(p.years) == 0 {
		return YearSnapshot{}, false
	}
	return p.years[0], true
}

// Last returns the final snapshot.
func (p Projection) Last() (YearSnapshot, bool) {
	if len(p.years) == 0 {
		return YearSnapshot{}, false
	}
	return p.years[len(p.years)-1], true
}

func (p Projection) MarshalJSON() ([]byte, error) {
	if p.years == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.years)
}

func (p *Projection) UnmarshalJSON(data []byte) error {
	var years []YearSnapshot
	if err := json.Unmarshal(data, &years); err != nil {
		return err
	}
	p.years = years
	return nil
}
