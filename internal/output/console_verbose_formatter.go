package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wealthmap/household-projection/internal/domain"
)

// ConsoleDetailedFormatter renders every projected year with its balances
// and the full free cash ledger.
type ConsoleDetailedFormatter struct{}

func (c ConsoleDetailedFormatter) Name() string      { return "detailed" }
func (c ConsoleDetailedFormatter) Extension() string { return "detailed.txt" }

func (c ConsoleDetailedFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED HOUSEHOLD WEALTH PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(report.Configuration) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	summary, err := Summarize(report.Projection)
	if err != nil {
		return nil, err
	}
	writeSummary(&buf, summary)

	for _, y := range report.Projection.Years() {
		writeYear(&buf, y)
	}
	return buf.Bytes(), nil
}

func writeSummary(buf *bytes.Buffer, s Summary) {
	fmt.Fprintln(buf, "HORIZON SUMMARY")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	if s.Years == 0 {
		fmt.Fprintln(buf, "No projected years.")
		fmt.Fprintln(buf)
		return
	}
	fmt.Fprintf(buf, "Final net worth (age %d):  %s\n", s.LastAge, FormatCurrency(s.FinalNetWorth))
	fmt.Fprintf(buf, "Peak net worth (age %d):   %s\n", s.PeakNetWorthAge, FormatCurrency(s.PeakNetWorth))
	if s.MillionaireAge > 0 {
		fmt.Fprintf(buf, "First $1M net worth:       age %d\n", s.MillionaireAge)
	}
	fmt.Fprintf(buf, "Net worth p25/p50/p75:     %s / %s / %s\n",
		FormatShort(s.NetWorthP25), FormatShort(s.NetWorthP50), FormatShort(s.NetWorthP75))
	fmt.Fprintf(buf, "Free cash mean/median/min: %s / %s / %s\n",
		FormatCurrency(s.MeanFreeCash), FormatCurrency(s.MedianFreeCash), FormatCurrency(s.MinFreeCash))
	fmt.Fprintf(buf, "Cumulative free cash:      %s\n", FormatCurrency(s.CumulativeFreeCash))
	fmt.Fprintf(buf, "Years with negative cash:  %d\n", s.NegativeFreeCashYears)
	fmt.Fprintln(buf)
}

func writeYear(buf *bytes.Buffer, y domain.YearSnapshot) {
	b := y.Balances
	fmt.Fprintf(buf, "AGE %d (%d) - %s\n", y.Age, y.Year, strings.ToUpper(y.Phase.String()))
	fmt.Fprintln(buf, strings.Repeat("-", 50))
	fmt.Fprintf(buf, "  Primary Holding:        %s\n", FormatCurrency(b.Primary))
	fmt.Fprintf(buf, "  Retirement / IRA:       %s / %s\n", FormatCurrency(b.Retirement), FormatCurrency(b.IRA))
	fmt.Fprintf(buf, "  Home / New Home Equity: %s / %s\n", FormatCurrency(b.HomeEquity), FormatCurrency(b.NewHomeEquity))
	fmt.Fprintf(buf, "  Land:                   %s (%s acres)\n", FormatCurrency(b.LandEquity), b.Acres.String())
	fmt.Fprintf(buf, "  Secondary / Ventures:   %s / %s\n", FormatCurrency(b.Secondary), FormatCurrency(b.Venture))
	fmt.Fprintf(buf, "  Margin Loan / Invested: %s / %s\n", FormatCurrency(y.Margin.Loan), FormatCurrency(y.Margin.Invested))
	fmt.Fprintf(buf, "  NET WORTH:              %s\n", FormatCurrency(y.NetWorth))
	fmt.Fprintln(buf, "  Free cash ledger:")
	for _, e := range y.Ledger.Entries() {
		if e.Amount.IsZero() {
			continue
		}
		fmt.Fprintf(buf, "    %-24s %14s\n", e.Source.Label(), FormatCurrency(e.Amount))
	}
	fmt.Fprintf(buf, "  FREE CASH:              %s\n", FormatCurrency(y.FreeCash))
	fmt.Fprintf(buf, "  PASSIVE INCOME:         %s\n", FormatCurrency(y.PassiveIncome))
	fmt.Fprintln(buf)
}
