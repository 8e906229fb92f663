package output

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
	"github.com/wealthmap/household-projection/internal/domain"
)

var millionDollars = decimal.NewFromInt(1000000)

// Summary is a set of whole-horizon statistics over a projection.
// Exact figures stay in decimal; distribution statistics are computed in
// float64 and rounded to cents.
type Summary struct {
	Years    int `json:"years"`
	FirstAge int `json:"first_age"`
	LastAge  int `json:"last_age"`

	FinalNetWorth   decimal.Decimal `json:"final_net_worth"`
	PeakNetWorth    decimal.Decimal `json:"peak_net_worth"`
	PeakNetWorthAge int             `json:"peak_net_worth_age"`
	// MillionaireAge is the first age with net worth of at least $1M, or 0.
	MillionaireAge int `json:"millionaire_age"`

	CumulativeFreeCash    decimal.Decimal `json:"cumulative_free_cash"`
	MeanFreeCash          decimal.Decimal `json:"mean_free_cash"`
	MedianFreeCash        decimal.Decimal `json:"median_free_cash"`
	MinFreeCash           decimal.Decimal `json:"min_free_cash"`
	FreeCashStdDev        decimal.Decimal `json:"free_cash_std_dev"`
	NegativeFreeCashYears int             `json:"negative_free_cash_years"`

	NetWorthP25 decimal.Decimal `json:"net_worth_p25"`
	NetWorthP50 decimal.Decimal `json:"net_worth_p50"`
	NetWorthP75 decimal.Decimal `json:"net_worth_p75"`
}

// Summarize computes Summary for p. An empty projection yields a zero Summary.
func Summarize(p domain.Projection) (Summary, error) {
	years := p.Years()
	if len(years) == 0 {
		return Summary{}, nil
	}

	s := Summary{
		Years:              len(years),
		FirstAge:           years[0].Age,
		LastAge:            years[len(years)-1].Age,
		FinalNetWorth:      years[len(years)-1].NetWorth,
		PeakNetWorth:       years[0].NetWorth,
		PeakNetWorthAge:    years[0].Age,
		CumulativeFreeCash: decimal.Zero,
	}

	freeCash := make(stats.Float64Data, 0, len(years))
	netWorth := make(stats.Float64Data, 0, len(years))
	for _, y := range years {
		if y.NetWorth.GreaterThan(s.PeakNetWorth) {
			s.PeakNetWorth = y.NetWorth
			s.PeakNetWorthAge = y.Age
		}
		if s.MillionaireAge == 0 && y.NetWorth.GreaterThanOrEqual(millionDollars) {
			s.MillionaireAge = y.Age
		}
		if y.FreeCash.IsNegative() {
			s.NegativeFreeCashYears++
		}
		s.CumulativeFreeCash = s.CumulativeFreeCash.Add(y.FreeCash)
		freeCash = append(freeCash, y.FreeCash.InexactFloat64())
		netWorth = append(netWorth, y.NetWorth.InexactFloat64())
	}

	var err error
	if s.MeanFreeCash, err = statistic(stats.Mean, freeCash); err != nil {
		return Summary{}, fmt.Errorf("mean free cash: %w", err)
	}
	if s.MedianFreeCash, err = statistic(stats.Median, freeCash); err != nil {
		return Summary{}, fmt.Errorf("median free cash: %w", err)
	}
	if s.MinFreeCash, err = statistic(stats.Min, freeCash); err != nil {
		return Summary{}, fmt.Errorf("min free cash: %w", err)
	}
	if len(freeCash) > 1 {
		if s.FreeCashStdDev, err = statistic(stats.StandardDeviationSample, freeCash); err != nil {
			return Summary{}, fmt.Errorf("free cash deviation: %w", err)
		}
	}

	for pct, dst := range map[float64]*decimal.Decimal{25: &s.NetWorthP25, 50: &s.NetWorthP50, 75: &s.NetWorthP75} {
		v, err := stats.PercentileNearestRank(netWorth, pct)
		if err != nil {
			return Summary{}, fmt.Errorf("net worth p%.0f: %w", pct, err)
		}
		*dst = finiteDecimal(v)
	}

	return s, nil
}

func statistic(fn func(stats.Float64Data) (float64, error), data stats.Float64Data) (decimal.Decimal, error) {
	v, err := fn(data)
	if err != nil {
		return decimal.Zero, err
	}
	return finiteDecimal(v), nil
}

// finiteDecimal rounds v to cents. Values past float64 range (Inf, NaN)
// report as zero; the exact decimal fields still carry them.
func finiteDecimal(v float64) decimal.Decimal {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}

// finiteFloat is finiteDecimal's float64 counterpart for chart data.
func finiteFloat(d decimal.Decimal) float64 {
	v := d.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
