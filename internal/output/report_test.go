package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthmap/household-projection/internal/calculation"
	"github.com/wealthmap/household-projection/internal/domain"
	"github.com/wealthmap/household-projection/internal/output"
)

func defaultReport(targetAge int) *output.Report {
	cfg := domain.DefaultConfiguration()
	return output.NewReport(cfg, calculation.Project(cfg), targetAge)
}

func TestNewReportTargetFallback(t *testing.T) {
	assert.Equal(t, 55, defaultReport(55).TargetAge)
	assert.Equal(t, output.DefaultTargetAge, defaultReport(20).TargetAge, "out of range falls back to the default")
	assert.Equal(t, output.DefaultTargetAge, defaultReport(120).TargetAge)

	cfg := domain.DefaultConfiguration()
	cfg.CurrentAge = 50
	r := output.NewReport(cfg, calculation.Project(cfg), 0)
	assert.Equal(t, 50, r.TargetAge, "falls back to the first age when the default is outside the range")

	cfg.CurrentAge = 90
	r = output.NewReport(cfg, calculation.Project(cfg), 0)
	_, ok := r.Target()
	assert.False(t, ok)
	_, ok = r.TargetAnalysis()
	assert.False(t, ok)
}

func TestReportTargetAnalysis(t *testing.T) {
	a, ok := defaultReport(40).TargetAnalysis()
	require.True(t, ok)
	assert.Equal(t, 40, a.Snapshot.Age)
	assert.Equal(t, domain.PhasePeak, a.Snapshot.Phase)
	assert.Equal(t, "135", a.Land.Acres.String())
}

func TestReportTableRows(t *testing.T) {
	rows := defaultReport(40).TableRows()

	// 31..50 plus 55, 60, ..., 85
	require.Len(t, rows, 20+7)
	assert.Equal(t, 31, rows[0].Age)
	assert.Equal(t, 50, rows[19].Age)
	assert.Equal(t, 55, rows[20].Age)
	assert.Equal(t, 85, rows[len(rows)-1].Age)
}

func TestGenerateReportWritesFile(t *testing.T) {
	dir := t.TempDir()
	paths, err := output.GenerateReport(defaultReport(40), "json", dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, dir, filepath.Dir(paths[0]))
	assert.Equal(t, ".json", filepath.Ext(paths[0]))

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"target_age": 40`)
}

func TestGenerateReportAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	paths, err := output.GenerateReport(defaultReport(40), "all", dir)
	require.NoError(t, err)
	assert.Len(t, paths, len(output.AvailableFormatterNames()))
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), p)
	}
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$123", output.FormatCurrency(decimalFromString(t, "123.45")))
	assert.Equal(t, "12.34%", output.FormatPercentage(decimalFromString(t, "12.34")))
	assert.Equal(t, "$1.2M", output.FormatShort(decimalFromString(t, "1234567")))
	assert.Equal(t, "$5K", output.FormatMonthly(decimalFromString(t, "60000")))
}
