// Package integration supplies the optional-capability boundary used by the
// engine for group alignment, table summaries and sequence plots.
//
// Fallback implements every capability with no dependencies. Registry layers
// richer backends over it and falls back whenever a backend declines.
package integration

import (
	"errors"

	"github.com/aria-lang/biospeak-go/internal/workspace"
)

// MSAResult is the outcome of a multiple alignment.
type MSAResult struct {
	Lines  []string
	Score  float64
	Method workspace.AlignmentMethod
	Label  string
}

// Capabilities is what the engine needs from the integration layer.
type Capabilities interface {
	Describe() string
	MultipleAlignment(names, seqs []string) (MSAResult, error)
	DescribeTable(t *workspace.Table) string
	PlotSequenceMetrics(name, seq, path string) error
}

// Backend is an optional provider registered with a Registry. A backend
// implements any subset of TableDescriber, MetricsPlotter and MultipleAligner.
type Backend interface {
	Name() string
}

// TableDescriber summarizes a table.
type TableDescriber interface {
	Backend
	DescribeTable(t *workspace.Table) (string, error)
}

// MetricsPlotter renders sequence metrics to files it can handle.
type MetricsPlotter interface {
	Backend
	CanPlot(path string) bool
	PlotSequenceMetrics(name, seq, path string) error
}

// MultipleAligner aligns several sequences at once.
type MultipleAligner interface {
	Backend
	MultipleAlignment(names, seqs []string) (MSAResult, error)
}

// ErrDeclined is returned by a backend that cannot handle a particular input.
// The registry then moves on to the next provider.
var ErrDeclined = errors.New("backend declined input")

// ErrLengthMismatch is returned when names and sequences differ in count.
var ErrLengthMismatch = errors.New("names and sequences differ in count")
