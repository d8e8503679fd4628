// Package gonum provides integration backends built on the gonum numeric and
// plotting libraries.
package gonum

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/aria-lang/biospeak-go/internal/workspace"
)

// Stats summarizes table columns: numeric columns get count, mean, standard
// deviation and range; other columns get value and distinct counts.
type Stats struct{}

// Name implements integration.Backend.
func (Stats) Name() string { return "gonum stat" }

// DescribeTable implements integration.TableDescriber.
func (Stats) DescribeTable(t *workspace.Table) (string, error) {
	width := len(t.Headers)
	for _, row := range t.Rows {
		width = max(width, len(row))
	}

	lines := []string{
		fmt.Sprintf("Rows: %d", len(t.Rows)),
		fmt.Sprintf("Columns: %d", width),
	}
	if len(t.Rows) == 0 {
		lines = append(lines, "No rows available")
		return strings.Join(lines, "\n"), nil
	}

	for col := 0; col < width; col++ {
		lines = append(lines, describeColumn(columnName(t, col), t, col))
	}
	return strings.Join(lines, "\n"), nil
}

func columnName(t *workspace.Table, col int) string {
	if col < len(t.Headers) && t.Headers[col] != "" {
		return t.Headers[col]
	}
	return fmt.Sprintf("column_%d", col+1)
}

func describeColumn(name string, t *workspace.Table, col int) string {
	values := make([]string, 0, len(t.Rows))
	for row := range t.Rows {
		if v := strings.TrimSpace(t.Cell(row, col)); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return fmt.Sprintf("%s: empty", name)
	}

	if nums, ok := parseFloats(values); ok {
		mean, sd := stat.MeanStdDev(nums, nil)
		if math.IsNaN(sd) {
			sd = 0
		}
		return fmt.Sprintf("%s: count=%d mean=%.3f sd=%.3f min=%g max=%g",
			name, len(nums), mean, sd, floats.Min(nums), floats.Max(nums))
	}

	distinct := make(map[string]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	return fmt.Sprintf("%s: count=%d distinct=%d", name, len(values), len(distinct))
}

func parseFloats(values []string) ([]float64, bool) {
	nums := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		nums[i] = f
	}
	return nums, true
}
