package output

import (
	"encoding/json"

	"github.com/wealthmap/household-projection/internal/calculation"
)

// JSONFormatter serializes the report, its summary and the target-age
// breakdowns as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

// jsonDocument is the top-level JSON shape.
type jsonDocument struct {
	*Report
	Summary    Summary                   `json:"summary"`
	Analysis   *calculation.YearAnalysis `json:"target,omitempty"`
	Milestones []calculation.Milestone   `json:"milestones"`
}

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	summary, err := Summarize(report.Projection)
	if err != nil {
		return nil, err
	}
	doc := jsonDocument{
		Report:     report,
		Summary:    summary,
		Milestones: report.Milestones(),
	}
	if a, ok := report.TargetAnalysis(); ok {
		doc.Analysis = &a
	}
	return json.MarshalIndent(doc, "", "  ")
}
