package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wealthmap/household-projection/internal/domain"
	"github.com/wealthmap/household-projection/pkg/dateutil"
)

// BreakdownItem is one labelled component of a headline figure.
type BreakdownItem struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// AllocationShare is a holding's share of the positive holdings, in percent.
type AllocationShare struct {
	Label   string          `json:"label"`
	Value   decimal.Decimal `json:"value"`
	Percent decimal.Decimal `json:"percent"`
}

// LegacySplit divides net worth evenly among heirs.
type LegacySplit struct {
	Heirs          int             `json:"heirs"`
	PerHeir        decimal.Decimal `json:"per_heir"`
	MonthlyPerHeir decimal.Decimal `json:"monthly_per_heir"`
	Holdings       []BreakdownItem `json:"holdings"`
}

// LandSummary describes the land holding at one age.
type LandSummary struct {
	Acres   decimal.Decimal `json:"acres"`
	Equity  decimal.Decimal `json:"equity"`
	PerAcre decimal.Decimal `json:"per_acre"`
}

// Milestone marks a configured event on the timeline.
type Milestone struct {
	Age   int    `json:"age"`
	Year  int    `json:"year"`
	Label string `json:"label"`
}

// YearAnalysis bundles every breakdown for a single snapshot.
type YearAnalysis struct {
	Snapshot   domain.YearSnapshot `json:"snapshot"`
	NetWorth   []BreakdownItem     `json:"net_worth"`
	FreeCash   []BreakdownItem     `json:"free_cash"`
	Passive    []BreakdownItem     `json:"passive_income"`
	Allocation []AllocationShare   `json:"allocation"`
	Legacy     LegacySplit         `json:"legacy"`
	Land       LandSummary         `json:"land"`
}

var twelve = decimal.NewFromInt(12)

// holdingItems lists every net worth component, zeros included.
func holdingItems(y domain.YearSnapshot) []BreakdownItem {
	b := y.Balances
	return []BreakdownItem{
		{Label: "Primary Holding", Value: b.Primary},
		{Label: "Retirement / IRA", Value: b.Retirement.Add(b.IRA)},
		{Label: "Home Equity", Value: b.HomeEquity},
		{Label: "New Home Equity", Value: b.NewHomeEquity},
		{Label: "Land", Value: b.LandEquity},
		{Label: "Secondary Investments", Value: b.Secondary},
		{Label: "Ventures", Value: b.Venture},
		{Label: "Margin (net)", Value: y.Margin.Invested.Sub(y.Margin.Loan)},
	}
}

func dropZero(items []BreakdownItem) []BreakdownItem {
	out := make([]BreakdownItem, 0, len(items))
	for _, it := range items {
		if !it.Value.IsZero() {
			out = append(out, it)
		}
	}
	return out
}

// NetWorthBreakdown splits net worth by holding, dropping zero entries.
// The items always sum to the snapshot's net worth.
func NetWorthBreakdown(y domain.YearSnapshot) []BreakdownItem {
	return dropZero(holdingItems(y))
}

// FreeCashBreakdown lists the non-zero ledger entries with their labels.
func FreeCashBreakdown(y domain.YearSnapshot) []BreakdownItem {
	entries := y.Ledger.NonZero()
	out := make([]BreakdownItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, BreakdownItem{Label: e.Source.Label(), Value: e.Amount})
	}
	return out
}

// PassiveBreakdown splits passive income into its three sources.
func PassiveBreakdown(y domain.YearSnapshot) []BreakdownItem {
	return []BreakdownItem{
		{Label: "Safe Withdrawal", Value: y.SafeWithdrawal},
		{Label: "Rental Net", Value: y.RentalNet},
		{Label: "Business Income", Value: y.BusinessIncome},
	}
}

// AllocationShares reports each positive holding's share of the positive
// total. Negative and zero holdings are left out.
func AllocationShares(y domain.YearSnapshot) []AllocationShare {
	var positive []BreakdownItem
	total := decimal.Zero
	for _, it := range holdingItems(y) {
		if it.Value.IsPositive() {
			positive = append(positive, it)
			total = total.Add(it.Value)
		}
	}
	out := make([]AllocationShare, 0, len(positive))
	for _, it := range positive {
		out = append(out, AllocationShare{
			Label:   it.Label,
			Value:   it.Value,
			Percent: it.Value.Div(total).Mul(hundred),
		})
	}
	return out
}

// Legacy splits net worth across cfg.Heirs. A non-positive heir count is
// treated as one.
func Legacy(y domain.YearSnapshot, cfg domain.Configuration) LegacySplit {
	heirs := cfg.Heirs
	if heirs <= 0 {
		heirs = 1
	}
	divisor := decimal.NewFromInt(int64(heirs))

	holdings := NetWorthBreakdown(y)
	for i := range holdings {
		holdings[i].Value = holdings[i].Value.Div(divisor)
	}

	perHeir := y.NetWorth.Div(divisor)
	return LegacySplit{
		Heirs:          heirs,
		PerHeir:        perHeir,
		MonthlyPerHeir: perHeir.Mul(fraction(cfg.SafeWithdrawalRate)).Div(twelve),
		Holdings:       holdings,
	}
}

// Land reports acreage and the implied value per acre.
func Land(y domain.YearSnapshot) LandSummary {
	perAcre := decimal.Zero
	if !y.Balances.Acres.IsZero() {
		perAcre = y.Balances.LandEquity.Div(y.Balances.Acres)
	}
	return LandSummary{
		Acres:   y.Balances.Acres,
		Equity:  y.Balances.LandEquity,
		PerAcre: perAcre,
	}
}

// Milestones derives the timeline events from the configuration, in age
// order. Events outside the projected range are omitted.
func Milestones(cfg domain.Configuration) []Milestone {
	add := func(out []Milestone, age int, label string) []Milestone {
		if !dateutil.InWindow(age, cfg.CurrentAge, cfg.EndAge) {
			return out
		}
		return append(out, Milestone{Age: age, Year: cfg.CalendarYear(age), Label: label})
	}

	var out []Milestone
	out = add(out, cfg.CurrentAge, "Start")
	out = add(out, cfg.MoveOutAge, "Move & Rent")
	if cfg.JamieStartAge-1 > cfg.CurrentAge+1 {
		out = add(out, cfg.JamieStartAge-1, "Gap Year")
	}
	if cfg.JamieEndAge >= cfg.JamieStartAge {
		out = add(out, cfg.JamieStartAge, "Peak Earnings")
		out = add(out, cfg.JamieEndAge+1, "Coast")
	}
	out = add(out, cfg.MarginStartAge, "Margin Loan")
	for _, p := range cfg.LandPurchases {
		out = add(out, p.Age, "Land +"+p.Acres.String()+" Acres")
	}
	out = add(out, cfg.MortgagePaidOffAge, "Mortgage Paid Off")

	sort.SliceStable(out, func(i, j int) bool { return out[i].Age < out[j].Age })
	return out
}

// Analyze computes every breakdown for y.
func Analyze(y domain.YearSnapshot, cfg domain.Configuration) YearAnalysis {
	return YearAnalysis{
		Snapshot:   y,
		NetWorth:   NetWorthBreakdown(y),
		FreeCash:   FreeCashBreakdown(y),
		Passive:    PassiveBreakdown(y),
		Allocation: AllocationShares(y),
		Legacy:     Legacy(y, cfg),
		Land:       Land(y),
	}
}
