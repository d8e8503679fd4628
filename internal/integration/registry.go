package integration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aria-lang/biospeak-go/internal/workspace"
)

// Registry tries registered backends in order and uses Fallback when none
// applies. The zero value is usable and behaves exactly like Fallback.
type Registry struct {
	backends []Backend
	fallback Fallback
}

// NewRegistry returns a registry with the given backends.
func NewRegistry(backends ...Backend) *Registry {
	r := &Registry{}
	for _, b := range backends {
		r.Register(b)
	}
	return r
}

// Register appends a backend. Nil backends are ignored.
func (r *Registry) Register(b Backend) {
	if b == nil {
		return
	}
	r.backends = append(r.backends, b)
}

// Backends returns the registered backend names in order.
func (r *Registry) Backends() []string {
	names := make([]string, len(r.backends))
	for i, b := range r.backends {
		names[i] = b.Name()
	}
	return names
}

// Describe lists the fallback and each registered backend with its capabilities.
func (r *Registry) Describe() string {
	lines := []string{r.fallback.Describe()}
	for _, b := range r.backends {
		caps := make([]string, 0, 3)
		if _, ok := b.(MultipleAligner); ok {
			caps = append(caps, "group alignment")
		}
		if _, ok := b.(TableDescriber); ok {
			caps = append(caps, "table summaries")
		}
		if _, ok := b.(MetricsPlotter); ok {
			caps = append(caps, "sequence plots")
		}
		lines = append(lines, fmt.Sprintf("- %s (%s): ready", b.Name(), strings.Join(caps, ", ")))
	}
	return strings.Join(lines, "\n")
}

// MultipleAlignment uses the first aligner that does not decline.
func (r *Registry) MultipleAlignment(names, seqs []string) (MSAResult, error) {
	for _, b := range r.backends {
		a, ok := b.(MultipleAligner)
		if !ok {
			continue
		}
		res, err := a.MultipleAlignment(names, seqs)
		if errors.Is(err, ErrDeclined) {
			continue
		}
		if err != nil {
			return MSAResult{}, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return res, nil
	}
	return r.fallback.MultipleAlignment(names, seqs)
}

// DescribeTable uses the first describer that succeeds.
func (r *Registry) DescribeTable(t *workspace.Table) string {
	for _, b := range r.backends {
		d, ok := b.(TableDescriber)
		if !ok {
			continue
		}
		if text, err := d.DescribeTable(t); err == nil {
			return text
		}
	}
	return r.fallback.DescribeTable(t)
}

// PlotSequenceMetrics uses the first plotter that accepts path.
func (r *Registry) PlotSequenceMetrics(name, seq, path string) error {
	for _, b := range r.backends {
		p, ok := b.(MetricsPlotter)
		if !ok || !p.CanPlot(path) {
			continue
		}
		err := p.PlotSequenceMetrics(name, seq, path)
		if errors.Is(err, ErrDeclined) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", b.Name(), err)
		}
		return nil
	}
	return r.fallback.PlotSequenceMetrics(name, seq, path)
}

var (
	_ Capabilities = Fallback{}
	_ Capabilities = (*Registry)(nil)
)
