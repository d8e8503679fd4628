package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSequences(t *testing.T) {
	stats, err := FromSequences([]string{"ATGC", "ATGCATGC", "GGCC"})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 16, stats.TotalBases)
	assert.Equal(t, 4, stats.MinLength)
	assert.Equal(t, 8, stats.MaxLength)
	assert.InDelta(t, 16.0/3.0, stats.MeanLength, 0.0001)
	assert.Equal(t, 4, stats.MedianLength) // sorted: 4, 4, 8
	assert.InDelta(t, 200.0/3.0, stats.MeanGCContent, 0.0001)
}

func TestFromSequencesEmpty(t *testing.T) {
	_, err := FromSequences([]string{})
	require.Error(t, err)
}

func TestN50Calculation(t *testing.T) {
	// Total = 300, half = 150, 100 + 80 >= 150
	seqs := []string{generateSeq(20), generateSeq(100), generateSeq(60), generateSeq(80), generateSeq(40)}

	stats, err := FromSequences(seqs)
	require.NoError(t, err)

	assert.Equal(t, 80, stats.N50)
}

func TestAmbiguousCount(t *testing.T) {
	stats, err := FromSequences([]string{"ANNA", "nn"})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalAmbiguous)
}

func TestLines(t *testing.T) {
	stats, err := FromSequences([]string{"GGCC", "AATT"})
	require.NoError(t, err)

	lines := stats.Lines()
	assert.Contains(t, lines, "Sequences: 2")
	assert.Contains(t, lines, "Mean GC: 50.00%")
	assert.Equal(t, strings.Join(lines, "\n"), stats.String())
}

func generateSeq(length int) string {
	bases := []byte{'A', 'T', 'G', 'C'}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = bases[i%4]
	}
	return string(result)
}

func TestGCHistogram(t *testing.T) {
	hist, err := NewGCHistogram([]string{"AAAA", "ATGC", "GGCC", "ATATATGC"}, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, hist.NumBins)
	assert.InDelta(t, 25.0, hist.BinSize, 0.0001)
	// 0% -> bin 0, 25% -> bin 1, 50% -> bin 2, 100% -> clamped to bin 3
	assert.Equal(t, []int{1, 1, 1, 1}, hist.Bins)
	assert.Len(t, hist.Lines(), 4)

	lo, hi := hist.ModeBin()
	assert.InDelta(t, 0.0, lo, 0.0001)
	assert.InDelta(t, 25.0, hi, 0.0001)
}

func TestEmptyHistogram(t *testing.T) {
	_, err := NewGCHistogram([]string{}, 10)
	require.Error(t, err)

	_, err = NewGCHistogram([]string{"AC"}, 0)
	require.Error(t, err)
}

func BenchmarkFromSequences(b *testing.B) {
	seqs := make([]string, 100)
	for i := range seqs {
		seqs[i] = generateSeq(1000)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = FromSequences(seqs)
	}
}
