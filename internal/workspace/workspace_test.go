package workspace

import (
	"testing"

	"github.com/aria-lang/biospeak-go/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGet(t *testing.T) {
	ws := New()
	ws.Add(&Sequence{Name: "a", Residues: "ACGT", Alphabet: sequence.DNA})

	item, err := ws.Get("a")
	require.NoError(t, err)
	assert.Equal(t, KindSequence, item.Kind())
	assert.Equal(t, "a", item.ItemName())

	_, err = ws.Get("A")
	require.Error(t, err, "names are case-sensitive")
	assert.IsType(t, &NotFoundError{}, err)
}

func TestAddReplacesAcrossKinds(t *testing.T) {
	ws := New()
	ws.Add(&Table{Name: "x", Headers: []string{"h"}})
	ws.Add(&Sequence{Name: "x", Residues: "AC"})

	assert.Equal(t, 1, ws.Len())
	_, err := ws.Table("x")
	var wrong *WrongKindError
	require.ErrorAs(t, err, &wrong)
	assert.Equal(t, KindTable, wrong.Want)
	assert.Equal(t, KindSequence, wrong.Got)

	seq, err := ws.Sequence("x")
	require.NoError(t, err)
	assert.Equal(t, "AC", seq.Residues)
}

func TestNamesOfKind(t *testing.T) {
	ws := New()
	ws.Add(&Sequence{Name: "zeta"})
	ws.Add(&Report{Name: "notes"})
	ws.Add(&Sequence{Name: "alpha"})
	ws.Add(&Alignment{Name: "aln"})

	assert.Equal(t, []string{"alpha", "zeta"}, ws.NamesOfKind(KindSequence))
	assert.Equal(t, []string{"aln"}, ws.NamesOfKind(KindAlignment))
	assert.Empty(t, ws.NamesOfKind(KindTable))
	assert.Equal(t, []string{"aln", "alpha", "notes", "zeta"}, ws.Names())

	seqs := ws.Sequences()
	require.Len(t, seqs, 2)
	assert.Equal(t, "alpha", seqs[0].Name)
}

func TestClear(t *testing.T) {
	ws := New()
	ws.Add(&Report{Name: "r"})
	ws.Clear()

	assert.Equal(t, 0, ws.Len())
	assert.False(t, ws.Has("r"))
}

func TestTableCell(t *testing.T) {
	tbl := &Table{Headers: []string{"a", "b"}, Rows: [][]string{{"1", "2"}, {"3"}}}

	assert.Equal(t, "2", tbl.Cell(0, 1))
	assert.Equal(t, "", tbl.Cell(1, 1), "ragged rows render missing cells as empty")
	assert.Equal(t, "", tbl.Cell(5, 0))
	assert.Equal(t, 1, tbl.ColumnIndex("b"))
	assert.Equal(t, -1, tbl.ColumnIndex("c"))
}

func TestFormatTable(t *testing.T) {
	tbl := &Table{
		Headers: []string{"id", "value"},
		Rows:    [][]string{{"1", "alpha"}, {"22"}, {"3", "b", "extra"}},
	}

	pad := "     "
	want := "id | value | " + pad + "\n" +
		"---+-------+------\n" +
		"1  | alpha | " + pad + "\n" +
		"22 |       | " + pad + "\n" +
		"3  | b     | extra"
	assert.Equal(t, want, FormatTable(tbl, 0))

	limited := FormatTable(tbl, 1)
	assert.Equal(t, "id | value\n---+------\n1  | alpha", limited)
}

func TestFormatTableWithoutHeaders(t *testing.T) {
	tbl := &Table{Rows: [][]string{{"a", "b"}, {"c"}}}

	assert.Equal(t, "a\tb\nc", FormatTable(tbl, 10))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "2", FormatScore(2))
	assert.Equal(t, "-6", FormatScore(-6))
	assert.Equal(t, "2.5", FormatScore(2.5))
}

func TestShow(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"sequence", &Sequence{Name: "s", Residues: "ACGT", Alphabet: sequence.DNA}, "s (dna)\nACGT"},
		{"alignment", &Alignment{Name: "a", Lines: []string{"AC", "||", "AC"}, Score: 4}, "AC\n||\nAC\nScore: 4"},
		{"report", &Report{Name: "r", Lines: []string{"one", "two"}}, "one\ntwo"},
		{"table", &Table{Name: "t", Headers: []string{"h"}, Rows: [][]string{{"v"}}}, "h\n-\nv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Show(tt.item))
		})
	}
}

func TestDescribe(t *testing.T) {
	seq := &Sequence{Name: "s", Description: "chr1", Residues: "GGCA", Alphabet: sequence.DNA}
	text := Describe(seq)
	assert.Contains(t, text, "Name: s\nType: dna\nLength: 4 bases\nGC: 75.00%")
	assert.Contains(t, text, "Seqhash: v1_DLD_")
	assert.Contains(t, text, "Info: chr1")

	tbl := &Table{Name: "t", Rows: [][]string{{"1"}}}
	assert.Equal(t, "Name: t\nRows: 1\nColumns: 0\nHeaders: none", Describe(tbl))

	aln := &Alignment{Name: "a", Method: MethodLocal, Score: 12, SourceA: "x", SourceB: "y"}
	assert.Equal(t, "Name: a\nMethod: local\nScore: 12\nSources: x, y", Describe(aln))

	rep := &Report{Name: "r", Description: "notes", Lines: []string{"a"}}
	assert.Equal(t, "Name: r\nLines: 1\nDescription: notes", Describe(rep))
}

func TestSeqHash(t *testing.T) {
	_, err := SeqHash(&Sequence{Name: "empty"})
	require.Error(t, err)

	dna, err := SeqHash(&Sequence{Name: "d", Residues: "ATGC", Alphabet: sequence.DNA})
	require.NoError(t, err)
	rc, err := SeqHash(&Sequence{Name: "rc", Residues: "GCAT", Alphabet: sequence.DNA})
	require.NoError(t, err)
	assert.Equal(t, dna, rc, "double-stranded hashes ignore orientation")

	prot, err := SeqHash(&Sequence{Name: "p", Residues: "MKV", Alphabet: sequence.Protein})
	require.NoError(t, err)
	assert.NotEqual(t, dna, prot)
}
