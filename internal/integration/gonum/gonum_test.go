package gonum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/biospeak-go/internal/integration"
	"github.com/aria-lang/biospeak-go/internal/workspace"
)

func TestStatsDescribeTable(t *testing.T) {
	tbl := &workspace.Table{
		Headers: []string{"gene", "score"},
		Rows:    [][]string{{"a", "1"}, {"b", "3"}, {"a", ""}, {"c", "5", "x"}},
	}

	text, err := Stats{}.DescribeTable(tbl)
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	assert.Equal(t, "Rows: 4", lines[0])
	assert.Equal(t, "Columns: 3", lines[1])
	assert.Equal(t, "gene: count=4 distinct=3", lines[2])
	assert.Equal(t, "score: count=3 mean=3.000 sd=2.000 min=1 max=5", lines[3])
	assert.Equal(t, "column_3: count=1 distinct=1", lines[4])
}

func TestStatsSingleValue(t *testing.T) {
	tbl := &workspace.Table{Headers: []string{"n"}, Rows: [][]string{{"2.5"}}}

	text, err := Stats{}.DescribeTable(tbl)
	require.NoError(t, err)
	assert.Contains(t, text, "n: count=1 mean=2.500 sd=0.000 min=2.5 max=2.5")
}

func TestStatsEmptyTable(t *testing.T) {
	text, err := Stats{}.DescribeTable(&workspace.Table{Headers: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, "Rows: 0\nColumns: 1\nNo rows available", text)
}

func TestGCTrend(t *testing.T) {
	pts := GCTrend("GATC")

	require.Len(t, pts, 5)
	assert.Equal(t, 0.0, pts[0].Y)
	assert.InDelta(t, 100.0, pts[1].Y, 0.001)
	assert.InDelta(t, 50.0, pts[2].Y, 0.001)
	assert.InDelta(t, 50.0, pts[4].Y, 0.001)
}

func TestPlotterCanPlot(t *testing.T) {
	p := NewPlotter()

	assert.True(t, p.CanPlot("x/metrics.PNG"))
	assert.True(t, p.CanPlot("m.svg"))
	assert.False(t, p.CanPlot("m.txt"))
	assert.False(t, p.CanPlot("noext"))
}

func TestPlotterWritesImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gc.png")

	require.NoError(t, NewPlotter().PlotSequenceMetrics("demo", "ATGCGCGATATTAGC", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRegistryUsesBackends(t *testing.T) {
	reg := integration.NewRegistry(Stats{}, NewPlotter())

	summary := reg.DescribeTable(&workspace.Table{Headers: []string{"v"}, Rows: [][]string{{"1"}, {"2"}}})
	assert.Contains(t, summary, "v: count=2")

	dir := t.TempDir()
	txt := filepath.Join(dir, "metrics.txt")
	require.NoError(t, reg.PlotSequenceMetrics("s", "GGAA", txt))
	raw, err := os.ReadFile(txt)
	require.NoError(t, err)
	assert.Equal(t, "Sequence s\nLength: 4\nGC%: 50.00", string(raw), "unsupported extensions use the text fallback")

	assert.Contains(t, reg.Describe(), "- gonum stat (table summaries): ready")
	assert.Contains(t, reg.Describe(), "- gonum plot (sequence plots): ready")
}
