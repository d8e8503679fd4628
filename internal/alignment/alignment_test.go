package alignment

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoringMatrix(t *testing.T) {
	t.Run("DefaultScoring", func(t *testing.T) {
		s := DefaultScoring()
		assert.Equal(t, 2, s.MatchScore)
		assert.Equal(t, -1, s.MismatchPenalty)
		assert.Equal(t, -2, s.GapPenalty)
	})

	t.Run("Score match", func(t *testing.T) {
		assert.Equal(t, 2, DefaultScoring().Score('A', 'A'))
	})

	t.Run("Score mismatch", func(t *testing.T) {
		assert.Equal(t, -1, DefaultScoring().Score('A', 'T'))
	})
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("Global")
	require.NoError(t, err)
	assert.Equal(t, Global, m)

	m, err = ParseMethod(" local ")
	require.NoError(t, err)
	assert.Equal(t, Local, m)

	_, err = ParseMethod("bogus")
	require.Error(t, err)
	assert.IsType(t, &UnknownMethodError{}, err)
}

func TestNeedlemanWunschGolden(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		lines []string
		score int
	}{
		{"gattaca", "GATTACA", "GCATGCU", []string{"GATTACA", "|  | | ", "GCATGCU"}, 2},
		{"empty first", "", "ACG", []string{"---", "   ", "ACG"}, -6},
		{"empty second", "ACG", "", []string{"ACG", "   ", "---"}, -6},
		{"all mismatch", "AAAA", "TTTT", []string{"AAAA", "    ", "TTTT"}, -4},
		{"shared core", "TTACGTAA", "GGACGTCC", []string{"TTACGTAA", "  ||||  ", "GGACGTCC"}, 4},
		{"gap in second", "ACGT", "AGT", []string{"ACGT", "| ||", "A-GT"}, 4},
		{"leading gap in second", "AAC", "AC", []string{"AAC", " ||", "-AC"}, 2},
		{"leading gap in first", "AC", "AAC", []string{"-AC", " ||", "AAC"}, 2},
		{"one mismatch", "ATGC", "ATGA", []string{"ATGC", "||| ", "ATGA"}, 5},
		{"identical", "ACGT", "ACGT", []string{"ACGT", "||||", "ACGT"}, 8},
		{"two gaps", "CTTGACCATG", "TTACCAT", []string{"CTTGACCATG", " || ||||| ", "-TT-ACCAT-"}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aln := NeedlemanWunsch(tt.a, tt.b)

			if diff := cmp.Diff(tt.lines, aln.Lines()); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.score, aln.Score)
			assert.Equal(t, Global, aln.Method)
			assert.Equal(t, len(aln.AlignedA), len(aln.Markers))
			assert.Equal(t, len(aln.AlignedA), len(aln.AlignedB))
			assert.Equal(t, tt.score, GlobalScore(tt.a, tt.b, nil))
		})
	}
}

func TestNeedlemanWunschPath(t *testing.T) {
	aln := NeedlemanWunsch("GATTACA", "GCATGCU")
	want := []Cell{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 7}}
	assert.Equal(t, want, aln.Path)

	aln = NeedlemanWunsch("", "ACG")
	assert.Equal(t, []Cell{{0, 1}, {0, 2}, {0, 3}}, aln.Path)

	aln = NeedlemanWunsch("AAC", "AC")
	assert.Equal(t, []Cell{{1, 0}, {2, 1}, {3, 2}}, aln.Path)

	aln = NeedlemanWunsch("ACGT", "AGT")
	assert.Equal(t, []Cell{{1, 1}, {2, 1}, {3, 2}, {4, 3}}, aln.Path)
}

func TestSmithWatermanGolden(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		lines []string
		score int
		path  []Cell
	}{
		{"gattaca", "GATTACA", "GCATGCU", []string{"AT", "||", "AT"}, 4, []Cell{{2, 3}, {3, 4}}},
		{"gattaca reversed", "GCATGCU", "GATTACA", []string{"CA", "||", "CA"}, 4, []Cell{{2, 6}, {3, 7}}},
		{"shared core", "TTACGTAA", "GGACGTCC", []string{"ACGT", "||||", "ACGT"}, 8, []Cell{{3, 3}, {4, 4}, {5, 5}, {6, 6}}},
		{"prefix", "ACGTTT", "ACGAAA", []string{"ACG", "|||", "ACG"}, 6, []Cell{{1, 1}, {2, 2}, {3, 3}}},
		{"gap kept", "CTTGACCATG", "TTACCAT", []string{"TTGACCAT", "|| |||||", "TT-ACCAT"}, 12,
			[]Cell{{2, 1}, {3, 2}, {4, 2}, {5, 3}, {6, 4}, {7, 5}, {8, 6}, {9, 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aln := SmithWaterman(tt.a, tt.b)

			if diff := cmp.Diff(tt.lines, aln.Lines()); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.score, aln.Score)
			assert.Equal(t, tt.path, aln.Path)
			assert.Equal(t, Local, aln.Method)
		})
	}
}

func TestSmithWatermanNoSimilarity(t *testing.T) {
	for _, pair := range [][2]string{{"AAAA", "TTTT"}, {"", "ACG"}, {"ACG", ""}, {"", ""}} {
		aln := SmithWaterman(pair[0], pair[1])

		assert.Equal(t, 0, aln.Score, pair)
		assert.Equal(t, []string{"", "", ""}, aln.Lines(), pair)
		assert.Empty(t, aln.Path, pair)
	}
}

func TestSmithWatermanIdentical(t *testing.T) {
	aln := SmithWaterman("acgt", "ACGT")

	assert.Equal(t, 8, aln.Score)
	assert.Equal(t, "ACGT", aln.AlignedA)
	assert.InDelta(t, 100.0, aln.Identity(), 0.001)
}

func TestAlign(t *testing.T) {
	assert.Equal(t, Local, Align("ACGT", "ACGT", Local).Method)
	assert.Equal(t, Global, Align("ACGT", "ACGT", Global).Method)
}

func TestAlignmentIdentity(t *testing.T) {
	aln := NeedlemanWunsch("GATTACA", "GCATGCU")

	assert.Equal(t, 3, aln.MatchCount())
	assert.InDelta(t, 3.0/7.0*100, aln.Identity(), 0.001)
	assert.Equal(t, 0.0, (&Alignment{}).Identity())
}

func TestAlignmentCIGAR(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"mismatches", "GATTACA", "GCATGCU", "1M2X1M1X1M1X"},
		{"deletion", "ACGT", "AGT", "1M1D2M"},
		{"insertion", "AC", "AAC", "1I2M"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedlemanWunsch(tt.a, tt.b).CIGAR())
		})
	}
}

func BenchmarkSmithWaterman(b *testing.B) {
	s1 := strings.Repeat("ATGCATGC", 50)
	s2 := strings.Repeat("GCATGCAT", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SmithWaterman(s1, s2)
	}
}

func BenchmarkNeedlemanWunsch(b *testing.B) {
	s1 := strings.Repeat("ATGCATGC", 50)
	s2 := strings.Repeat("GCATGCAT", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NeedlemanWunsch(s1, s2)
	}
}

func BenchmarkGlobalScore(b *testing.B) {
	s1 := strings.Repeat("ATGCATGC", 50)
	s2 := strings.Repeat("GCATGCAT", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GlobalScore(s1, s2, nil)
	}
}
