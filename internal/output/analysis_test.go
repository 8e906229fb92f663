package output_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthmap/household-projection/internal/calculation"
	"github.com/wealthmap/household-projection/internal/domain"
	"github.com/wealthmap/household-projection/internal/output"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestSummarizeDefaultProjection(t *testing.T) {
	p := calculation.Project(domain.DefaultConfiguration())
	s, err := output.Summarize(p)
	require.NoError(t, err)

	assert.Equal(t, 55, s.Years)
	assert.Equal(t, 31, s.FirstAge)
	assert.Equal(t, 85, s.LastAge)

	last, _ := p.Last()
	assert.True(t, s.FinalNetWorth.Equal(last.NetWorth))

	cumulative := decimal.Zero
	peak := p.Years()[0]
	negatives := 0
	millionaire := 0
	for _, y := range p.Years() {
		cumulative = cumulative.Add(y.FreeCash)
		if y.NetWorth.GreaterThan(peak.NetWorth) {
			peak = y
		}
		if y.FreeCash.IsNegative() {
			negatives++
		}
		if millionaire == 0 && y.NetWorth.GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
			millionaire = y.Age
		}
	}
	assert.True(t, s.CumulativeFreeCash.Equal(cumulative))
	assert.True(t, s.PeakNetWorth.Equal(peak.NetWorth))
	assert.Equal(t, peak.Age, s.PeakNetWorthAge)
	assert.Equal(t, negatives, s.NegativeFreeCashYears)
	assert.Equal(t, millionaire, s.MillionaireAge)

	mean := cumulative.Div(decimal.NewFromInt(55))
	assert.InDelta(t, mean.InexactFloat64(), s.MeanFreeCash.InexactFloat64(), 0.05)
	assert.True(t, s.MinFreeCash.LessThanOrEqual(s.MedianFreeCash))
	assert.True(t, s.FreeCashStdDev.IsPositive())

	assert.True(t, s.NetWorthP25.LessThanOrEqual(s.NetWorthP50))
	assert.True(t, s.NetWorthP50.LessThanOrEqual(s.NetWorthP75))
}

func TestSummarizeEmptyProjection(t *testing.T) {
	s, err := output.Summarize(domain.Projection{})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Years)
	assert.True(t, s.FinalNetWorth.IsZero())
}

func TestSummarizeSingleYear(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.EndAge = cfg.CurrentAge
	s, err := output.Summarize(calculation.Project(cfg))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Years)
	assert.Equal(t, "60000", s.MeanFreeCash.String())
	assert.True(t, s.FreeCashStdDev.IsZero())
	assert.Equal(t, "480300", s.NetWorthP50.String())
}

func TestGenerateAssumptions(t *testing.T) {
	lines := output.GenerateAssumptions(domain.DefaultConfiguration())
	assert.Equal(t, "Projection: age 31 to 85 (2026-2080)", lines[0])
	assert.Contains(t, lines, "Safe withdrawal rate: 4%")
	assert.Contains(t, lines, "Land purchases: 15 acres at 34, 100 acres at 40")
}

func TestSummarizeBeyondFloatRange(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	cfg.PrimaryReturn = decimal.NewFromInt(1000000000000)
	p := calculation.Project(cfg)

	last, _ := p.Last()
	require.True(t, last.NetWorth.GreaterThan(decimal.New(1, 400)), "net worth should exceed float64 range")

	var s output.Summary
	require.NotPanics(t, func() {
		var err error
		s, err = output.Summarize(p)
		require.NoError(t, err)
	})
	assert.True(t, s.FinalNetWorth.Equal(last.NetWorth))
	assert.True(t, s.NetWorthP75.IsZero())

	report := output.NewReport(cfg, p, 40)

	out, err := output.JSONFormatter{}.Format(report)
	require.NoError(t, err)
	assert.True(t, json.Valid(out))

	page, err := output.HTMLFormatter{}.Format(report)
	require.NoError(t, err)
	assert.NotContains(t, string(page), "const projection = ;")
	assert.Contains(t, string(page), `{"age":85,"net_worth":0,`)
}
