package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthmap/household-projection/internal/domain"
)

func sumItems(items []BreakdownItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Value)
	}
	return total
}

func TestNetWorthBreakdown_SumsToNetWorth(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	for _, y := range Project(cfg).Years() {
		items := NetWorthBreakdown(y)
		assert.True(t, sumItems(items).Equal(y.NetWorth), "age %d", y.Age)
		for _, it := range items {
			assert.False(t, it.Value.IsZero(), "age %d %s", y.Age, it.Label)
		}
	}
}

func TestNetWorthBreakdown_FirstYearDropsZeros(t *testing.T) {
	y, ok := Project(domain.DefaultConfiguration()).At(31)
	require.True(t, ok)

	items := NetWorthBreakdown(y)
	labels := make([]string, 0, len(items))
	for _, it := range items {
		labels = append(labels, it.Label)
	}
	assert.Equal(t, []string{"Primary Holding", "Retirement / IRA", "Home Equity", "Land"}, labels)
	assert.True(t, items[1].Value.Equal(decimal.NewFromInt(33700)))
}

func TestFreeCashBreakdown(t *testing.T) {
	y, _ := Project(domain.DefaultConfiguration()).At(34)
	items := FreeCashBreakdown(y)

	assert.True(t, sumItems(items).Equal(y.FreeCash))
	var shortfall decimal.Decimal
	for _, it := range items {
		if it.Label == "Rental Shortfall" {
			shortfall = it.Value
		}
	}
	assert.True(t, shortfall.Equal(decimal.NewFromInt(-2400)), "got %s", shortfall)
}

func TestPassiveBreakdown(t *testing.T) {
	y, _ := Project(domain.DefaultConfiguration()).At(50)
	assert.True(t, sumItems(PassiveBreakdown(y)).Equal(y.PassiveIncome))
}

func TestAllocationShares(t *testing.T) {
	y := domain.YearSnapshot{
		Balances: domain.Balances{
			Primary:    decimal.NewFromInt(750),
			LandEquity: decimal.NewFromInt(250),
			Venture:    decimal.NewFromInt(-100),
		},
	}
	shares := AllocationShares(y)
	require.Len(t, shares, 2)
	assert.Equal(t, "Primary Holding", shares[0].Label)
	assert.True(t, shares[0].Percent.Equal(decimal.NewFromInt(75)))
	assert.True(t, shares[1].Percent.Equal(decimal.NewFromInt(25)))

	assert.Empty(t, AllocationShares(domain.YearSnapshot{}))
}

func TestLegacy(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	y := domain.YearSnapshot{
		NetWorth: decimal.NewFromInt(6000000),
		Balances: domain.Balances{
			Primary:    decimal.NewFromInt(5000000),
			LandEquity: decimal.NewFromInt(1000000),
		},
	}

	split := Legacy(y, cfg)
	assert.Equal(t, 5, split.Heirs)
	assert.True(t, split.PerHeir.Equal(decimal.NewFromInt(1200000)))
	assert.True(t, split.MonthlyPerHeir.Equal(decimal.NewFromInt(4000)))
	require.Len(t, split.Holdings, 2)
	assert.True(t, split.Holdings[0].Value.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, split.Holdings[1].Value.Equal(decimal.NewFromInt(200000)))

	cfg.Heirs = 0
	assert.Equal(t, 1, Legacy(y, cfg).Heirs)
}

func TestLand(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	y, _ := Project(cfg).At(31)

	land := Land(y)
	assert.True(t, land.Acres.Equal(decimal.NewFromInt(20)))
	assert.True(t, land.PerAcre.Equal(decimal.NewFromInt(6240)))

	assert.True(t, Land(domain.YearSnapshot{}).PerAcre.IsZero())
}

func TestMilestones_Default(t *testing.T) {
	got := Milestones(domain.DefaultConfiguration())

	want := []Milestone{
		{Age: 31, Year: 2026, Label: "Start"},
		{Age: 34, Year: 2029, Label: "Move & Rent"},
		{Age: 34, Year: 2029, Label: "Land +15 Acres"},
		{Age: 35, Year: 2030, Label: "Gap Year"},
		{Age: 36, Year: 2031, Label: "Peak Earnings"},
		{Age: 36, Year: 2031, Label: "Margin Loan"},
		{Age: 40, Year: 2035, Label: "Land +100 Acres"},
		{Age: 46, Year: 2041, Label: "Coast"},
		{Age: 64, Year: 2059, Label: "Mortgage Paid Off"},
	}
	assert.Equal(t, want, got)
}

func TestMilestones_InvertedPeakWindowHasNoPeak(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.JamieEndAge = cfg.JamieStartAge - 2

	for _, m := range Milestones(cfg) {
		assert.NotEqual(t, "Peak Earnings", m.Label)
		assert.NotEqual(t, "Coast", m.Label)
	}
}

func TestAnalyze(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	y, _ := Project(cfg).At(60)

	a := Analyze(y, cfg)
	assert.Equal(t, 60, a.Snapshot.Age)
	assert.NotEmpty(t, a.NetWorth)
	assert.NotEmpty(t, a.FreeCash)
	assert.Len(t, a.Passive, 3)
	assert.NotEmpty(t, a.Allocation)
	assert.True(t, a.Land.Acres.Equal(decimal.NewFromInt(135)))
}
