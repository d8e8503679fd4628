package alignment

import "github.com/aria-lang/biospeak-go/internal/sequence"

// NeedlemanWunsch performs global alignment of a and b under the default scoring.
//
// Both inputs are cleaned first. Empty inputs are valid: aligning "" with
// "ACG" yields "---" against "ACG" with a score of three gaps.
func NeedlemanWunsch(a, b string) *Alignment {
	scoring := DefaultScoring()
	a, b = sequence.Clean(a), sequence.Clean(b)
	m, n := len(a), len(b)

	H := newMatrix(m, n)
	for i := 1; i <= m; i++ {
		H[i][0] = i * scoring.GapPenalty
	}
	for j := 1; j <= n; j++ {
		H[0][j] = j * scoring.GapPenalty
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag := H[i-1][j-1] + scoring.Score(a[i-1], b[j-1])
			up := H[i-1][j] + scoring.GapPenalty
			left := H[i][j-1] + scoring.GapPenalty
			H[i][j] = max(diag, up, left)
		}
	}

	aln := traceback(a, b, H, m, n, scoring, Global)
	aln.Score = H[m][n]
	return aln
}

// GlobalScore returns only the global alignment score, using two rows of memory.
func GlobalScore(a, b string, scoring *ScoringMatrix) int {
	if scoring == nil {
		scoring = DefaultScoring()
	}
	a, b = sequence.Clean(a), sequence.Clean(b)
	m, n := len(a), len(b)

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j * scoring.GapPenalty
	}

	for i := 1; i <= m; i++ {
		curr[0] = i * scoring.GapPenalty
		for j := 1; j <= n; j++ {
			diag := prev[j-1] + scoring.Score(a[i-1], b[j-1])
			up := prev[j] + scoring.GapPenalty
			left := curr[j-1] + scoring.GapPenalty
			curr[j] = max(diag, up, left)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
