// Package alignment provides pairwise sequence alignment.
//
// Global (Needleman-Wunsch) and local (Smith-Waterman) alignment share one
// linear-gap scoring scheme and one traceback tie-break order: diagonal,
// then up (gap in the second sequence), then left (gap in the first).
package alignment

import (
	"fmt"
	"strings"
)

// AlignDirection represents a traceback move in the score matrix.
type AlignDirection int

const (
	// Diagonal consumes one residue from each sequence.
	Diagonal AlignDirection = iota
	// Up consumes a residue from the first sequence against a gap.
	Up
	// Left consumes a residue from the second sequence against a gap.
	Left
)

// Method identifies the algorithm that produced an alignment.
type Method int

const (
	// Global is Needleman-Wunsch end-to-end alignment.
	Global Method = iota
	// Local is Smith-Waterman best-substring alignment.
	Local
)

func (m Method) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// UnknownMethodError is returned by ParseMethod for anything but global or local.
type UnknownMethodError struct {
	Name string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("method must be global or local, got %q", e.Name)
}

// ParseMethod maps "global" or "local" (any case) to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "global":
		return Global, nil
	case "local":
		return Local, nil
	}
	return Global, &UnknownMethodError{Name: name}
}

// ScoringMatrix holds linear-gap scoring parameters.
type ScoringMatrix struct {
	MatchScore      int
	MismatchPenalty int
	GapPenalty      int
}

// DefaultScoring is match +2, mismatch -1, gap -2.
func DefaultScoring() *ScoringMatrix {
	return &ScoringMatrix{
		MatchScore:      2,
		MismatchPenalty: -1,
		GapPenalty:      -2,
	}
}

// Score returns the score for aligning two residues.
func (s *ScoringMatrix) Score(a, b byte) int {
	if a == b {
		return s.MatchScore
	}
	return s.MismatchPenalty
}
