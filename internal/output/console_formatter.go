package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wealthmap/household-projection/internal/calculation"
	"github.com/wealthmap/household-projection/internal/domain"
)

// ConsoleFormatter renders the headline cards for the target age, the
// milestone timeline and the condensed projection table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	cfg := report.Configuration

	fmt.Fprintln(&buf, "HOUSEHOLD WEALTH PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Ages %d-%d (%d-%d), %d years\n", cfg.CurrentAge, cfg.EndAge,
		cfg.CalendarYear(cfg.CurrentAge), cfg.CalendarYear(cfg.EndAge), report.Projection.Len())
	fmt.Fprintln(&buf)

	if a, ok := report.TargetAnalysis(); ok {
		writeCards(&buf, a, cfg)
	} else {
		fmt.Fprintln(&buf, "No projected years.")
	}

	if milestones := report.Milestones(); len(milestones) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "MILESTONES")
		for _, m := range milestones {
			marker := " "
			if m.Age == report.TargetAge {
				marker = "*"
			}
			fmt.Fprintf(&buf, " %s %3d (%d)  %s\n", marker, m.Age, m.Year, m.Label)
		}
	}

	rows := report.TableRows()
	if len(rows) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "PROJECTION")
		writeTable(&buf, rows)
	}

	return buf.Bytes(), nil
}

// CardFormatter renders only the headline cards for the target age. It is
// used for point lookups and is not part of the report registry.
type CardFormatter struct{}

func (c CardFormatter) Name() string      { return "card" }
func (c CardFormatter) Extension() string { return "txt" }

func (c CardFormatter) Format(report *Report) ([]byte, error) {
	a, ok := report.TargetAnalysis()
	if !ok {
		return nil, fmt.Errorf("age %d is not projected", report.TargetAge)
	}
	var buf bytes.Buffer
	writeCards(&buf, a, report.Configuration)
	return buf.Bytes(), nil
}

// writeCards prints one block per headline figure with its breakdown.
func writeCards(buf *bytes.Buffer, a calculation.YearAnalysis, cfg domain.Configuration) {
	y := a.Snapshot
	fmt.Fprintf(buf, "AT AGE %d (%d), %s PHASE\n", y.Age, y.Year, strings.ToUpper(y.Phase.String()))
	fmt.Fprintln(buf, strings.Repeat("-", 40))

	fmt.Fprintf(buf, "Net Worth:       %-10s %s/mo at %s\n",
		FormatShort(y.NetWorth), FormatMonthly(y.SafeWithdrawal), FormatPercentage(cfg.SafeWithdrawalRate))
	writeItems(buf, a.NetWorth)

	fmt.Fprintf(buf, "Free Cash:       %-10s %s/mo\n", FormatShort(y.FreeCash), FormatMonthly(y.FreeCash))
	writeItems(buf, a.FreeCash)

	fmt.Fprintf(buf, "Passive Income:  %-10s %s/mo\n", FormatShort(y.PassiveIncome)+"/yr", FormatMonthly(y.PassiveIncome))
	writeItems(buf, a.Passive)

	fmt.Fprintf(buf, "Land:            %s acres, %s per acre\n", a.Land.Acres.String(), FormatCurrency(a.Land.PerAcre))

	fmt.Fprintf(buf, "Legacy Split (/%d): %s  %s/mo\n", a.Legacy.Heirs,
		FormatShort(a.Legacy.PerHeir), FormatShort(a.Legacy.MonthlyPerHeir))

	if len(a.Allocation) > 0 {
		parts := make([]string, 0, len(a.Allocation))
		for _, s := range a.Allocation {
			parts = append(parts, fmt.Sprintf("%s %s", s.Label, FormatShare(s.Percent)))
		}
		fmt.Fprintf(buf, "Allocation:      %s\n", strings.Join(parts, ", "))
	}
}

func writeItems(buf *bytes.Buffer, items []calculation.BreakdownItem) {
	for _, it := range items {
		fmt.Fprintf(buf, "    %-24s %12s\n", it.Label, FormatShort(it.Value))
	}
}

func writeTable(buf *bytes.Buffer, rows []domain.YearSnapshot) {
	fmt.Fprintf(buf, "%-4s %-5s %-10s %9s %9s %9s %9s %9s %9s %9s\n",
		"Age", "Year", "Phase", "Primary", "Retire", "Home", "Land", "Second.", "FreeCash", "NetWorth")
	for _, y := range rows {
		b := y.Balances
		fmt.Fprintf(buf, "%-4d %-5d %-10s %9s %9s %9s %9s %9s %9s %9s\n",
			y.Age, y.Year, y.Phase,
			FormatShort(b.Primary),
			FormatShort(b.Retirement.Add(b.IRA)),
			FormatShort(b.HomeEquity),
			FormatShort(b.LandEquity),
			FormatShort(b.Secondary),
			FormatShort(y.FreeCash),
			FormatShort(y.NetWorth))
	}
}
