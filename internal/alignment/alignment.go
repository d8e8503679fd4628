package alignment

import (
	"fmt"
	"strings"
)

// Cell is a score matrix coordinate: I indexes the first sequence, J the second.
type Cell struct {
	I, J int
}

// Alignment is an aligned pair with its match line, score and traceback.
//
// AlignedA, Markers and AlignedB always have equal length. Path lists the
// visited cells earliest first and never includes the origin or, for local
// alignments, the zero cell the traceback stopped on.
type Alignment struct {
	AlignedA string
	Markers  string
	AlignedB string
	Score    int
	Path     []Cell
	Method   Method
}

// Lines returns aligned A, the match line and aligned B.
func (a *Alignment) Lines() []string {
	return []string{a.AlignedA, a.Markers, a.AlignedB}
}

// Length returns the number of aligned columns.
func (a *Alignment) Length() int {
	return len(a.AlignedA)
}

// MatchCount returns the number of identical aligned pairs.
func (a *Alignment) MatchCount() int {
	return strings.Count(a.Markers, "|")
}

// Identity returns matches over aligned columns as a percentage.
func (a *Alignment) Identity() float64 {
	if a.Length() == 0 {
		return 0.0
	}
	return float64(a.MatchCount()) / float64(a.Length()) * 100
}

// CIGAR renders the alignment with M (match), X (mismatch), I (gap in A)
// and D (gap in B) run-length operations.
func (a *Alignment) CIGAR() string {
	if len(a.AlignedA) == 0 {
		return ""
	}

	var cigar strings.Builder
	currentOp := byte(0)
	count := 0

	flush := func() {
		if count > 0 {
			fmt.Fprintf(&cigar, "%d%c", count, currentOp)
		}
	}

	for i := 0; i < len(a.AlignedA); i++ {
		var op byte
		switch {
		case a.AlignedA[i] == '-':
			op = 'I'
		case a.AlignedB[i] == '-':
			op = 'D'
		case a.AlignedA[i] == a.AlignedB[i]:
			op = 'M'
		default:
			op = 'X'
		}

		if op == currentOp {
			count++
			continue
		}
		flush()
		currentOp = op
		count = 1
	}
	flush()

	return cigar.String()
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { method: %s, score: %d, identity: %.1f%%, length: %d }",
		a.Method, a.Score, a.Identity(), a.Length())
}

// traceback walks H backwards from (i, j) using the shared tie-break order.
// For local alignments the walk stops before the first zero cell.
func traceback(a, b string, H [][]int, i, j int, scoring *ScoringMatrix, method Method) *Alignment {
	var rowA, marks, rowB []byte
	path := make([]Cell, 0, i+j)

	for i > 0 || j > 0 {
		if method == Local && (i == 0 || j == 0 || H[i][j] <= 0) {
			break
		}
		path = append(path, Cell{I: i, J: j})

		switch direction(a, b, H, i, j, scoring) {
		case Diagonal:
			rowA = append(rowA, a[i-1])
			rowB = append(rowB, b[j-1])
			if a[i-1] == b[j-1] {
				marks = append(marks, '|')
			} else {
				marks = append(marks, ' ')
			}
			i--
			j--
		case Up:
			rowA = append(rowA, a[i-1])
			rowB = append(rowB, '-')
			marks = append(marks, ' ')
			i--
		default:
			rowA = append(rowA, '-')
			rowB = append(rowB, b[j-1])
			marks = append(marks, ' ')
			j--
		}
	}

	reverseBytes(rowA)
	reverseBytes(marks)
	reverseBytes(rowB)
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return &Alignment{
		AlignedA: string(rowA),
		Markers:  string(marks),
		AlignedB: string(rowB),
		Path:     path,
		Method:   method,
	}
}

// direction picks the move that reproduces H[i][j]: diagonal, else up, else left.
func direction(a, b string, H [][]int, i, j int, scoring *ScoringMatrix) AlignDirection {
	current := H[i][j]
	if i > 0 && j > 0 && current == H[i-1][j-1]+scoring.Score(a[i-1], b[j-1]) {
		return Diagonal
	}
	if i > 0 && current == H[i-1][j]+scoring.GapPenalty {
		return Up
	}
	return Left
}

func newMatrix(m, n int) [][]int {
	H := make([][]int, m+1)
	for i := range H {
		H[i] = make([]int, n+1)
	}
	return H
}

func reverseBytes(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
