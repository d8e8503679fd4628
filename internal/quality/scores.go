// Package quality decodes Phred quality strings from FASTQ reads.
//
// Phred scores relate to base-calling error probability as
//
//	Q = -10 * log10(P_error)
//
// so Q20 is 99% and Q30 is 99.9% accuracy.
package quality

import "fmt"

// Phred+33 covers '!' (Q0) through '~' (Q93).
const (
	PhredMin = 0
	PhredMax = 93
)

// Quality thresholds
const (
	QLow       = 10
	QMedium    = 20
	QHigh      = 30
	QExcellent = 40
)

// Category is a coarse label for the mean quality of a read.
type Category int

const (
	Poor Category = iota
	Low
	Medium
	High
	Excellent
)

func (c Category) String() string {
	switch c {
	case Poor:
		return "poor"
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case Excellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// EmptyScoresError is returned for an empty quality string.
type EmptyScoresError struct{}

func (e *EmptyScoresError) Error() string {
	return "quality string must have at least one score"
}

// InvalidEncodingError is returned for a character outside Phred+33.
type InvalidEncodingError struct {
	Position int
	Char     rune
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid Phred+33 character '%c' at position %d", e.Char, e.Position)
}

// Scores holds decoded per-base quality values.
type Scores struct {
	Values []int
}

// FromPhred33 decodes a Phred+33 string (Illumina 1.8+), Q = ord(c) - 33.
func FromPhred33(encoded string) (*Scores, error) {
	if len(encoded) == 0 {
		return nil, &EmptyScoresError{}
	}

	scores := make([]int, 0, len(encoded))
	for i, c := range encoded {
		q := int(c) - 33
		if q < PhredMin || q > PhredMax {
			return nil, &InvalidEncodingError{Position: i, Char: c}
		}
		scores = append(scores, q)
	}

	return &Scores{Values: scores}, nil
}

// Len returns the number of scores.
func (s *Scores) Len() int {
	return len(s.Values)
}

// Average returns the mean score.
func (s *Scores) Average() float64 {
	sum := 0
	for _, score := range s.Values {
		sum += score
	}
	return float64(sum) / float64(len(s.Values))
}

// Categorize labels the read by its mean score.
func (s *Scores) Categorize() Category {
	avg := s.Average()

	switch {
	case avg >= QExcellent:
		return Excellent
	case avg >= QHigh:
		return High
	case avg >= QMedium:
		return Medium
	case avg >= QLow:
		return Low
	}
	return Poor
}
