package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/wealthmap/household-projection/internal/calculation"
	"github.com/wealthmap/household-projection/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"short":   FormatShort,
	"monthly": FormatMonthly,
	"pct":     FormatPercentage,
	"share":   FormatShare,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartPoint feeds the inline net worth chart.
type chartPoint struct {
	Age      int     `json:"age"`
	NetWorth float64 `json:"net_worth"`
	FreeCash float64 `json:"free_cash"`
}

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	summary, err := Summarize(report.Projection)
	if err != nil {
		return nil, err
	}

	years := report.Projection.Years()
	points := make([]chartPoint, 0, len(years))
	for _, y := range years {
		points = append(points, chartPoint{
			Age:      y.Age,
			NetWorth: finiteFloat(y.NetWorth),
			FreeCash: finiteFloat(y.FreeCash),
		})
	}

	data := struct {
		*Report
		Summary     Summary
		Analysis    *calculation.YearAnalysis
		Milestones  []calculation.Milestone
		Rows        []domain.YearSnapshot
		Assumptions []string
		Chart       []chartPoint
	}{
		Report:      report,
		Summary:     summary,
		Milestones:  report.Milestones(),
		Rows:        report.TableRows(),
		Assumptions: GenerateAssumptions(report.Configuration),
		Chart:       points,
	}
	if a, ok := report.TargetAnalysis(); ok {
		data.Analysis = &a
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
