package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/wealthmap/household-projection/internal/calculation"
	"github.com/wealthmap/household-projection/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// pdfEpoch pins the document dates so identical reports produce identical bytes.
var pdfEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// PDFFormatter renders the summary cards, milestones and projection table
// as an A4 document.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

func (p PDFFormatter) Format(report *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetTitle("Household Wealth Projection", false)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdfHeading(pdf, "Household Wealth Projection", 20)
	cfg := report.Configuration
	pdfLine(pdf, fmt.Sprintf("Ages %d-%d (%d-%d), %d projected years",
		cfg.CurrentAge, cfg.EndAge, cfg.CalendarYear(cfg.CurrentAge), cfg.CalendarYear(cfg.EndAge), report.Projection.Len()))
	pdf.Ln(4)

	if a, ok := report.TargetAnalysis(); ok {
		pdfCards(pdf, a)
	}

	if milestones := report.Milestones(); len(milestones) > 0 {
		pdfHeading(pdf, "Milestones", 13)
		for _, m := range milestones {
			pdfLine(pdf, fmt.Sprintf("%d (%d)  %s", m.Age, m.Year, m.Label))
		}
		pdf.Ln(4)
	}

	pdfHeading(pdf, "Key Assumptions", 13)
	pdf.SetFont("Arial", "", 9)
	for _, a := range GenerateAssumptions(cfg) {
		pdf.MultiCell(pdfContentWidth, 5, "- "+a, "", "L", false)
	}

	if rows := report.TableRows(); len(rows) > 0 {
		pdf.AddPage()
		pdfHeading(pdf, "Projection", 13)
		pdfTable(pdf, rows)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfHeading(pdf *fpdf.Fpdf, text string, size float64) {
	pdf.SetFont("Arial", "B", size)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, size*0.6, text, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func pdfLine(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	pdf.CellFormat(pdfContentWidth, 6, text, "", 1, "L", false, 0, "")
}

func pdfCards(pdf *fpdf.Fpdf, a calculation.YearAnalysis) {
	y := a.Snapshot
	pdfHeading(pdf, fmt.Sprintf("At Age %d (%d), %s phase", y.Age, y.Year, y.Phase), 13)

	card := func(title, value string, items []calculation.BreakdownItem) {
		pdf.SetFillColor(245, 247, 250)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(0, 51, 102)
		pdf.CellFormat(pdfContentWidth*0.6, 7, title, "1", 0, "L", true, 0, "")
		pdf.CellFormat(pdfContentWidth*0.4, 7, value, "1", 1, "R", true, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(50, 50, 50)
		for _, it := range items {
			pdf.CellFormat(pdfContentWidth*0.6, 5, "   "+it.Label, "L", 0, "L", false, 0, "")
			pdf.CellFormat(pdfContentWidth*0.4, 5, FormatShort(it.Value), "R", 1, "R", false, 0, "")
		}
		pdf.CellFormat(pdfContentWidth, 1, "", "T", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	card("Net Worth", FormatShort(y.NetWorth)+" ("+FormatMonthly(y.SafeWithdrawal)+"/mo)", a.NetWorth)
	card("Free Cash", FormatShort(y.FreeCash)+" ("+FormatMonthly(y.FreeCash)+"/mo)", a.FreeCash)
	card("Passive Income", FormatShort(y.PassiveIncome)+"/yr", a.Passive)
	card("Land", a.Land.Acres.String()+" acres", []calculation.BreakdownItem{
		{Label: "Land Equity", Value: a.Land.Equity},
		{Label: "Per Acre Value", Value: a.Land.PerAcre},
	})
	card(fmt.Sprintf("Legacy Split (/%d)", a.Legacy.Heirs), FormatShort(a.Legacy.PerHeir), a.Legacy.Holdings)
}

func pdfTable(pdf *fpdf.Fpdf, rows []domain.YearSnapshot) {
	headers := []string{"Age", "Year", "Phase", "Primary", "Retire", "Home", "Land", "Second.", "Free Cash", "Net Worth"}
	widths := []float64{10, 13, 20, 18, 18, 18, 18, 18, 23, 24}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(0, 51, 102)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i, y := range rows {
		b := y.Balances
		cells := []string{
			fmt.Sprint(y.Age),
			fmt.Sprint(y.Year),
			y.Phase.String(),
			FormatShort(b.Primary),
			FormatShort(b.Retirement.Add(b.IRA)),
			FormatShort(b.HomeEquity),
			FormatShort(b.LandEquity),
			FormatShort(b.Secondary),
			FormatShort(y.FreeCash),
			FormatShort(y.NetWorth),
		}
		fill := i%2 == 1
		pdf.SetFillColor(245, 247, 250)
		for j, c := range cells {
			align := "R"
			if j < 3 {
				align = "L"
			}
			if j == 8 && y.FreeCash.IsNegative() {
				pdf.SetTextColor(200, 30, 30)
			} else {
				pdf.SetTextColor(50, 50, 50)
			}
			pdf.CellFormat(widths[j], 5, c, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
}
