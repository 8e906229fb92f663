package output

import (
	"bytes"

	"github.com/gocarina/gocsv"
)

// yearRow is one CSV line of the yearly summary.
type yearRow struct {
	Age            int    `csv:"age"`
	Year           int    `csv:"year"`
	Phase          string `csv:"phase"`
	Primary        string `csv:"primary"`
	Retirement     string `csv:"retirement"`
	IRA            string `csv:"ira"`
	HomeEquity     string `csv:"home_equity"`
	NewHomeEquity  string `csv:"new_home_equity"`
	LandEquity     string `csv:"land_equity"`
	Acres          string `csv:"acres"`
	Secondary      string `csv:"secondary"`
	Venture        string `csv:"venture"`
	MarginLoan     string `csv:"margin_loan"`
	MarginInvested string `csv:"margin_invested"`
	MarginNet      string `csv:"margin_arbitrage"`
	RentalNet      string `csv:"rental_net"`
	BusinessIncome string `csv:"business_income"`
	NetWorth       string `csv:"net_worth"`
	FreeCash       string `csv:"free_cash"`
	PassiveIncome  string `csv:"passive_income"`
}

// CSVSummarizer writes one row per projected year.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	years := report.Projection.Years()
	rows := make([]*yearRow, 0, len(years))
	for _, y := range years {
		b := y.Balances
		rows = append(rows, &yearRow{
			Age:            y.Age,
			Year:           y.Year,
			Phase:          y.Phase.String(),
			Primary:        b.Primary.StringFixed(2),
			Retirement:     b.Retirement.StringFixed(2),
			IRA:            b.IRA.StringFixed(2),
			HomeEquity:     b.HomeEquity.StringFixed(2),
			NewHomeEquity:  b.NewHomeEquity.StringFixed(2),
			LandEquity:     b.LandEquity.StringFixed(2),
			Acres:          b.Acres.String(),
			Secondary:      b.Secondary.StringFixed(2),
			Venture:        b.Venture.StringFixed(2),
			MarginLoan:     y.Margin.Loan.StringFixed(2),
			MarginInvested: y.Margin.Invested.StringFixed(2),
			MarginNet:      y.Margin.NetArbitrage.StringFixed(2),
			RentalNet:      y.RentalNet.StringFixed(2),
			BusinessIncome: y.BusinessIncome.StringFixed(2),
			NetWorth:       y.NetWorth.StringFixed(2),
			FreeCash:       y.FreeCash.StringFixed(2),
			PassiveIncome:  y.PassiveIncome.StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
