package alignment

import "github.com/aria-lang/biospeak-go/internal/sequence"

// SmithWaterman performs local alignment of a and b under the default scoring.
//
// The traceback starts from the first maximal cell in row-major order and
// stops before any zero cell. With no positive-scoring pair the result is
// empty with a score of 0; empty inputs are not an error.
func SmithWaterman(a, b string) *Alignment {
	scoring := DefaultScoring()
	a, b = sequence.Clean(a), sequence.Clean(b)
	m, n := len(a), len(b)

	H := newMatrix(m, n)
	maxScore := 0
	maxI, maxJ := 0, 0

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag := H[i-1][j-1] + scoring.Score(a[i-1], b[j-1])
			up := H[i-1][j] + scoring.GapPenalty
			left := H[i][j-1] + scoring.GapPenalty
			H[i][j] = max(0, diag, up, left)

			if H[i][j] > maxScore {
				maxScore = H[i][j]
				maxI, maxJ = i, j
			}
		}
	}

	aln := traceback(a, b, H, maxI, maxJ, scoring, Local)
	aln.Score = maxScore
	return aln
}

// Align dispatches to the algorithm named by method.
func Align(a, b string, method Method) *Alignment {
	if method == Local {
		return SmithWaterman(a, b)
	}
	return NeedlemanWunsch(a, b)
}
