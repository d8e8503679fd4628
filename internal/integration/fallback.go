package integration

import (
	"fmt"
	"strings"

	"github.com/aria-lang/biospeak-go/internal/alignment"
	"github.com/aria-lang/biospeak-go/internal/fileio"
	"github.com/aria-lang/biospeak-go/internal/sequence"
	"github.com/aria-lang/biospeak-go/internal/workspace"
)

// ProgressiveLabel names the fallback group alignment.
const ProgressiveLabel = "progressive needleman-wunsch"

// Fallback is the dependency-free implementation of every capability.
type Fallback struct{}

// Describe reports the fallback as always ready.
func (Fallback) Describe() string {
	return "Integration status:\n- built-in fallback: ready"
}

// MultipleAlignment lists each member as "name: residues" and scores the
// group as the sum of global scores of consecutive pairs.
func (Fallback) MultipleAlignment(names, seqs []string) (MSAResult, error) {
	if len(names) != len(seqs) {
		return MSAResult{}, ErrLengthMismatch
	}
	if len(seqs) == 0 {
		return MSAResult{Lines: []string{}, Method: workspace.MethodProgressive}, nil
	}

	lines := make([]string, len(seqs))
	for i := range seqs {
		lines[i] = fmt.Sprintf("%s: %s", names[i], seqs[i])
	}

	total := 0
	for i := 0; i+1 < len(seqs); i++ {
		total += alignment.GlobalScore(seqs[i], seqs[i+1], nil)
	}

	return MSAResult{
		Lines:  lines,
		Score:  float64(total),
		Method: workspace.MethodProgressive,
		Label:  ProgressiveLabel,
	}, nil
}

// DescribeTable reports row and column counts and the header names.
func (Fallback) DescribeTable(t *workspace.Table) string {
	headers := "no headers"
	if len(t.Headers) > 0 {
		headers = strings.Join(t.Headers, ", ")
	}
	return fmt.Sprintf("Rows: %d\nColumns: %d\nHeaders: %s", len(t.Rows), len(t.Headers), headers)
}

// PlotSequenceMetrics writes a plain-text metrics dump to path.
func (Fallback) PlotSequenceMetrics(name, seq, path string) error {
	text := fmt.Sprintf("Sequence %s\nLength: %d\nGC%%: %.2f", name, len(seq), sequence.GCContent(seq))
	return fileio.WriteText(path, text)
}
