package output

import (
	"fmt"
	"strings"

	"github.com/wealthmap/household-projection/internal/calculation"
	"github.com/wealthmap/household-projection/internal/domain"
)

// DefaultTargetAge is the age the summary cards focus on when none is given.
const DefaultTargetAge = 40

// Report is everything a formatter renders: the configuration, its
// projection and the age the headline figures are taken at.
type Report struct {
	Configuration domain.Configuration `json:"configuration"`
	Projection    domain.Projection    `json:"projection"`
	TargetAge     int                  `json:"target_age"`
}

// NewReport builds a report. A target age outside the projection falls
// back to DefaultTargetAge, then to the first projected age.
func NewReport(cfg domain.Configuration, projection domain.Projection, targetAge int) *Report {
	r := &Report{Configuration: cfg, Projection: projection, TargetAge: targetAge}
	if _, ok := projection.At(targetAge); ok {
		return r
	}
	if _, ok := projection.At(DefaultTargetAge); ok {
		r.TargetAge = DefaultTargetAge
		return r
	}
	if first, ok := projection.First(); ok {
		r.TargetAge = first.Age
	}
	return r
}

// Target returns the snapshot at the report's target age.
func (r *Report) Target() (domain.YearSnapshot, bool) {
	return r.Projection.At(r.TargetAge)
}

// TargetAnalysis returns every breakdown for the target age.
func (r *Report) TargetAnalysis() (calculation.YearAnalysis, bool) {
	y, ok := r.Target()
	if !ok {
		return calculation.YearAnalysis{}, false
	}
	return calculation.Analyze(y, r.Configuration), true
}

// Milestones lists the configured timeline events.
func (r *Report) Milestones() []calculation.Milestone {
	return calculation.Milestones(r.Configuration)
}

// TableRows keeps every year up to 50 and every fifth year after that.
func (r *Report) TableRows() []domain.YearSnapshot {
	return r.Projection.Filter(func(y domain.YearSnapshot) bool {
		return y.Age <= 50 || y.Age%5 == 0
	})
}

// GenerateReport writes report in the named format to dir and returns the
// written paths. "all" writes every registered format.
func GenerateReport(report *Report, format, dir string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var paths []string
		for _, name := range AvailableFormatterNames() {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir)
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	path, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, fmt.Errorf("generate %s report: %w", f.Name(), err)
	}
	return []string{path}, nil
}
