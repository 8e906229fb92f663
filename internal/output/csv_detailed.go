package output

import (
	"bytes"

	"github.com/gocarina/gocsv"
)

// ledgerRow is one ledger entry for one year in long form.
type ledgerRow struct {
	Age    int    `csv:"age"`
	Year   int    `csv:"year"`
	Phase  string `csv:"phase"`
	Source string `csv:"source"`
	Amount string `csv:"amount"`
}

// CSVLedgerExporter writes every ledger entry of every year, followed by a
// free_cash total row per year, so the file reconciles on its own.
type CSVLedgerExporter struct{}

func (c CSVLedgerExporter) Name() string      { return "ledger-csv" }
func (c CSVLedgerExporter) Extension() string { return "ledger.csv" }

func (c CSVLedgerExporter) Format(report *Report) ([]byte, error) {
	var rows []*ledgerRow
	for _, y := range report.Projection.Years() {
		for _, e := range y.Ledger.Entries() {
			rows = append(rows, &ledgerRow{
				Age:    y.Age,
				Year:   y.Year,
				Phase:  y.Phase.String(),
				Source: string(e.Source),
				Amount: e.Amount.StringFixed(2),
			})
		}
		rows = append(rows, &ledgerRow{
			Age:    y.Age,
			Year:   y.Year,
			Phase:  y.Phase.String(),
			Source: "free_cash",
			Amount: y.FreeCash.StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
