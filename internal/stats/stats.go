// Package stats provides aggregate statistics over collections of sequences.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aria-lang/biospeak-go/internal/sequence"
)

// SequenceSetStats summarizes the lengths and composition of a set of sequences.
type SequenceSetStats struct {
	Count          int
	TotalBases     int
	MinLength      int
	MaxLength      int
	MeanLength     float64
	MedianLength   int
	MeanGCContent  float64
	N50            int
	TotalAmbiguous int
}

// FromSequences calculates statistics for a collection of residue strings.
// GC content is a percentage.
func FromSequences(seqs []string) (*SequenceSetStats, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("sequence list cannot be empty")
	}

	count := len(seqs)
	lengths := make([]int, count)
	totalBases := 0
	gcSum := 0.0
	ambiguous := 0

	for i, s := range seqs {
		s = sequence.Clean(s)
		lengths[i] = len(s)
		totalBases += len(s)
		gcSum += sequence.GCContent(s)
		ambiguous += strings.Count(s, "N")
	}

	sorted := make([]int, count)
	copy(sorted, lengths)
	sort.Ints(sorted)

	mid := count / 2
	var median int
	if count%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	return &SequenceSetStats{
		Count:          count,
		TotalBases:     totalBases,
		MinLength:      sorted[0],
		MaxLength:      sorted[count-1],
		MeanLength:     float64(totalBases) / float64(count),
		MedianLength:   median,
		MeanGCContent:  gcSum / float64(count),
		N50:            n50(sorted, totalBases),
		TotalAmbiguous: ambiguous,
	}, nil
}

// n50 is the length at which sequences of that length or longer hold half the bases.
func n50(ascending []int, total int) int {
	half := total / 2
	running := 0
	for i := len(ascending) - 1; i >= 0; i-- {
		running += ascending[i]
		if running >= half {
			return ascending[i]
		}
	}
	return ascending[len(ascending)-1]
}

// Lines renders the summary for a report.
func (s *SequenceSetStats) Lines() []string {
	return []string{
		fmt.Sprintf("Sequences: %d", s.Count),
		fmt.Sprintf("Total residues: %d", s.TotalBases),
		fmt.Sprintf("Length range: %d - %d", s.MinLength, s.MaxLength),
		fmt.Sprintf("Mean length: %.1f", s.MeanLength),
		fmt.Sprintf("Median length: %d", s.MedianLength),
		fmt.Sprintf("Mean GC: %.2f%%", s.MeanGCContent),
		fmt.Sprintf("N50: %d", s.N50),
		fmt.Sprintf("Ambiguous residues: %d", s.TotalAmbiguous),
	}
}

func (s *SequenceSetStats) String() string {
	return strings.Join(s.Lines(), "\n")
}

// GCHistogram counts sequences per GC-percentage bin.
type GCHistogram struct {
	Bins    []int
	BinSize float64
	NumBins int
}

// NewGCHistogram bins the GC content of each sequence into numBins equal ranges of 0-100%.
func NewGCHistogram(seqs []string, numBins int) (*GCHistogram, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("sequence list cannot be empty")
	}
	if numBins <= 0 {
		return nil, fmt.Errorf("numBins must be positive")
	}

	binSize := 100.0 / float64(numBins)
	bins := make([]int, numBins)

	for _, s := range seqs {
		idx := int(sequence.GCContent(s) / binSize)
		if idx >= numBins {
			idx = numBins - 1
		}
		bins[idx]++
	}

	return &GCHistogram{
		Bins:    bins,
		BinSize: binSize,
		NumBins: numBins,
	}, nil
}

// ModeBin returns the bounds of the most populated bin.
func (h *GCHistogram) ModeBin() (float64, float64) {
	maxCount := h.Bins[0]
	maxBin := 0

	for i, count := range h.Bins {
		if count > maxCount {
			maxCount = count
			maxBin = i
		}
	}

	start := float64(maxBin) * h.BinSize
	return start, start + h.BinSize
}

// Lines renders one "lo-hi%: count" line per bin.
func (h *GCHistogram) Lines() []string {
	lines := make([]string, h.NumBins)
	for i := 0; i < h.NumBins; i++ {
		start := float64(i) * h.BinSize
		lines[i] = fmt.Sprintf("GC %3.0f-%3.0f%%: %d", start, start+h.BinSize, h.Bins[i])
	}
	return lines
}
