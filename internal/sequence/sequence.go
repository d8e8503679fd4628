// Package sequence provides the pure functions behind every sequence command.
//
// All functions operate on raw residue text and normalize their inputs
// through Clean first, so callers may pass user-typed text directly.
package sequence

import (
	"strings"
)

// Clean uppercases text and drops every character that is not an ASCII letter.
// Non-ASCII letters are dropped too, so residue offsets are byte offsets.
func Clean(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range text {
		if !IsLetter(c) {
			continue
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// GCContent returns the percentage (0-100) of G and C residues.
// An empty sequence has a GC content of 0.
func GCContent(seq string) float64 {
	seq = Clean(seq)
	if len(seq) == 0 {
		return 0.0
	}

	gcCount := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gcCount++
		}
	}

	return float64(gcCount) / float64(len(seq)) * 100
}

// BaseCounts returns the number of occurrences of each residue letter.
func BaseCounts(seq string) map[rune]int {
	counts := make(map[rune]int)
	for _, c := range Clean(seq) {
		counts[c]++
	}
	return counts
}

// Reverse returns the cleaned sequence in reverse order.
func Reverse(seq string) string {
	b := []byte(Clean(seq))
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// Complement maps each residue through the base-pair table of alphabet.
// Letters without a partner, and every protein residue, pass through unchanged.
func Complement(seq string, alphabet Alphabet) string {
	seq = Clean(seq)
	table, ok := complementTables[alphabet]
	if !ok {
		return seq
	}

	comp := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c := rune(seq[i])
		if p, ok := table[c]; ok {
			c = p
		}
		comp[i] = byte(c)
	}
	return string(comp)
}

// ReverseComplement is Complement(Reverse(seq)).
func ReverseComplement(seq string, alphabet Alphabet) string {
	return Complement(Reverse(seq), alphabet)
}

// Transcribe converts DNA to RNA (T -> U). RNA input is returned unchanged.
func Transcribe(seq string) string {
	return strings.ReplaceAll(Clean(seq), "T", "U")
}

// FindMotif returns the 1-based start of every occurrence of motif,
// overlapping occurrences included, in ascending order.
func FindMotif(seq, motif string) []int {
	seq = Clean(seq)
	motif = Clean(motif)
	positions := make([]int, 0)
	if len(motif) == 0 || len(motif) > len(seq) {
		return positions
	}

	for i := 0; i <= len(seq)-len(motif); i++ {
		if seq[i:i+len(motif)] == motif {
			positions = append(positions, i+1)
		}
	}
	return positions
}

// Slice returns residues start..end, 1-based and inclusive.
// Bounds are clamped to the sequence; an empty range yields "".
func Slice(seq string, start, end int) string {
	seq = Clean(seq)
	from := max(start, 1) - 1
	to := end
	if to > len(seq) {
		to = len(seq)
	}
	if from >= to {
		return ""
	}
	return seq[from:to]
}

// Join concatenates the cleaned parts in argument order.
func Join(parts ...string) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(Clean(p))
	}
	return sb.String()
}

// Chunk splits seq into consecutive pieces of size residues.
// The final piece may be shorter.
func Chunk(seq string, size int) ([]string, error) {
	if size <= 0 {
		return nil, &InvalidSizeError{Size: size}
	}
	seq = Clean(seq)

	chunks := make([]string, 0, (len(seq)+size-1)/size)
	for i := 0; i < len(seq); i += size {
		end := i + size
		if end > len(seq) {
			end = len(seq)
		}
		chunks = append(chunks, seq[i:end])
	}
	return chunks, nil
}

// Comparison holds position-by-position similarity of two sequences.
type Comparison struct {
	LengthA  int
	LengthB  int
	Overlap  int
	Matches  int
	Identity float64
	Gaps     int
}

// Compare counts identical residues at equal positions over the shorter length.
func Compare(a, b string) Comparison {
	a, b = Clean(a), Clean(b)
	c := Comparison{LengthA: len(a), LengthB: len(b)}

	c.Overlap = min(len(a), len(b))
	for i := 0; i < c.Overlap; i++ {
		if a[i] == b[i] {
			c.Matches++
		}
	}
	if c.Overlap > 0 {
		c.Identity = float64(c.Matches) / float64(c.Overlap) * 100
	}
	c.Gaps = len(a) - len(b)
	if c.Gaps < 0 {
		c.Gaps = -c.Gaps
	}
	return c
}
