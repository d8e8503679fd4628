package fileio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFASTARoundTrip(t *testing.T) {
	long := strings.Repeat("ACGT", 40)
	path := filepath.Join(t.TempDir(), "out.fa")

	require.NoError(t, WriteFASTA(path, []Record{
		{Name: "first", Residues: "acg t"},
		{Name: "second", Residues: long},
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		assert.LessOrEqual(t, len(line), FASTALineWidth)
	}

	records, err := ReadFASTA(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Record{Name: "first", Residues: "ACGT"}, records[0])
	assert.Equal(t, Record{Name: "second", Residues: long}, records[1])
}

func TestFormatFASTAWraps(t *testing.T) {
	out := FormatFASTA([]Record{{Name: "x", Residues: strings.Repeat("A", 75)}})

	assert.Equal(t, ">x\n"+strings.Repeat("A", 70)+"\nAAAAA\n", out)
	assert.Equal(t, "", FormatFASTA(nil))
}

func TestReadFASTAMissingFile(t *testing.T) {
	_, err := ReadFASTA(filepath.Join(t.TempDir(), "nope.fa"))

	var resErr *ResourceError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "read", resErr.Op)
}

func TestReadFASTQ(t *testing.T) {
	path := writeFile(t, "reads.fq", "@r1\nACGT\n+\nIIII\n@r2\nggcc\n+\n!!!!\nnot a header\nAC\n+\nII\n")

	reads, err := ReadFASTQ(path)
	require.NoError(t, err)
	require.Len(t, reads, 2)

	assert.Equal(t, "r1", reads[0].Name)
	assert.Equal(t, "ACGT", reads[0].Residues)
	require.NotNil(t, reads[0].Quality)
	assert.InDelta(t, 40.0, reads[0].Quality.Average(), 0.001)

	assert.Equal(t, "GGCC", reads[1].Residues)
	assert.InDelta(t, 0.0, reads[1].Quality.Average(), 0.001)
}

func TestReadFASTQTruncated(t *testing.T) {
	path := writeFile(t, "short.fq", "@only\nACG\n")

	reads, err := ReadFASTQ(path)
	require.NoError(t, err)
	require.Len(t, reads, 1)
	assert.Equal(t, "ACG", reads[0].Residues)
	assert.Nil(t, reads[0].Quality)
}

func TestReadTable(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"csv", "t.csv", "id,gene\n1,abc\n\n,\n2,def,extra\n"},
		{"tsv", "t.tsv", "id\tgene\n1\tabc\n\n2\tdef\textra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, rows, err := ReadTable(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, []string{"id", "gene"}, headers)
			assert.Equal(t, [][]string{{"1", "abc"}, {"2", "def", "extra"}}, rows)
		})
	}
}

func TestReadTableEmpty(t *testing.T) {
	headers, rows, err := ReadTable(writeFile(t, "empty.csv", ""))
	require.NoError(t, err)
	assert.Empty(t, headers)
	assert.Empty(t, rows)
}

func TestWriteTableRoundTrip(t *testing.T) {
	for _, name := range []string{"out.csv", "out.tsv"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			headers := []string{"id", "note"}
			rows := [][]string{{"1", "a, b"}, {"2", "c"}}

			require.NoError(t, WriteTable(path, headers, rows))

			gotHeaders, gotRows, err := ReadTable(path)
			require.NoError(t, err)
			assert.Equal(t, headers, gotHeaders)
			assert.Equal(t, rows, gotRows)
		})
	}
}

func TestDelimiter(t *testing.T) {
	assert.Equal(t, '\t', Delimiter("a.TSV"))
	assert.Equal(t, '\t', Delimiter("a.gff"))
	assert.Equal(t, ',', Delimiter("a.csv"))
	assert.Equal(t, ',', Delimiter("noext"))
}

func TestReadGFF(t *testing.T) {
	content := "##gff-version 3\n" +
		"chr1\tsrc\tgene\t1\t100\t.\t+\t.\tID=g1\n" +
		"\n" +
		"chr1\tsrc\tshort\n" +
		"chr1\tsrc\texon\t5\t50\t.\t+\t0\tParent=g1\textra\n"

	headers, rows, err := ReadGFF(writeFile(t, "a.gff", content))
	require.NoError(t, err)

	assert.Equal(t, GFFHeaders, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "gene", rows[0][2])
	assert.Len(t, rows[1], 9)
	assert.Equal(t, "Parent=g1", rows[1][8])
}

func TestReadVCF(t *testing.T) {
	content := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\n" +
		"chr1\t10\trs1\tA\tG\n" +
		"chr2\t20\t.\tC\tT\n"

	headers, rows, err := ReadVCF(writeFile(t, "v.vcf", content))
	require.NoError(t, err)

	assert.Equal(t, []string{"CHROM", "POS", "ID", "REF", "ALT"}, headers)
	assert.Equal(t, [][]string{{"chr1", "10", "rs1", "A", "G"}, {"chr2", "20", ".", "C", "T"}}, rows)
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		headers []string
		rows    [][]string
	}{
		{
			name:    "object",
			content: `{"b": 2, "a": "x", "c": [1, 2]}`,
			headers: []string{"a", "b", "c"},
			rows:    [][]string{{"x", "2", "[1,2]"}},
		},
		{
			name:    "list of objects",
			content: `[{"id": 1, "ok": true}, {"id": 2.5, "name": "n", "ok": null}]`,
			headers: []string{"id", "name", "ok"},
			rows:    [][]string{{"1", "", "true"}, {"2.5", "n", ""}},
		},
		{
			name:    "list of scalars",
			content: `[1, "two", false]`,
			headers: []string{"value"},
			rows:    [][]string{{"1"}, {"two"}, {"false"}},
		},
		{
			name:    "scalar",
			content: `42`,
			headers: []string{"value"},
			rows:    [][]string{{"42"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, rows, err := ReadJSON(writeFile(t, "d.json", tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.headers, headers)
			assert.Equal(t, tt.rows, rows)
		})
	}
}

func TestReadJSONInvalid(t *testing.T) {
	_, _, err := ReadJSON(writeFile(t, "bad.json", "{nope"))

	var resErr *ResourceError
	assert.ErrorAs(t, err, &resErr)
}

func TestTextHelpers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "notes.txt")
	require.NoError(t, EnsureDir(path))
	require.NoError(t, WriteLines(path, []string{"one", "two"}))

	text, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", text)
	assert.Equal(t, []string{"one", "two"}, SplitLines(text))
	assert.Empty(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb"))
}

func TestReadBAM(t *testing.T) {
	ref, err := sam.NewReference("chr1", "", "", 1000, nil, nil)
	require.NoError(t, err)
	header, err := sam.NewHeader(nil, []*sam.Reference{ref})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "reads.bam")
	f, err := os.Create(path)
	require.NoError(t, err)

	w, err := bam.NewWriter(f, header, 1)
	require.NoError(t, err)

	cigar := []sam.CigarOp{sam.NewCigarOp(sam.CigarMatch, 4)}
	mapped, err := sam.NewRecord("read1", ref, nil, 9, -1, 0, 60, cigar, []byte("ACGT"), nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Write(mapped))

	unmapped, err := sam.NewRecord("read2", nil, nil, -1, -1, 0, 0, nil, []byte("GGCC"), nil, nil)
	require.NoError(t, err)
	unmapped.Flags = sam.Unmapped
	require.NoError(t, w.Write(unmapped))

	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	headers, rows, err := ReadBAM(path)
	require.NoError(t, err)

	assert.Equal(t, BAMHeaders, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"read1", "0", "chr1", "10", "60", "4M"}, rows[0])
	assert.Equal(t, "read2", rows[1][0])
	assert.Equal(t, "4", rows[1][1])
	assert.Equal(t, "", rows[1][2])
	assert.Equal(t, "0", rows[1][3])
}

func TestReadBAMMissingFile(t *testing.T) {
	_, _, err := ReadBAM(filepath.Join(t.TempDir(), "missing.bam"))

	var resErr *ResourceError
	assert.ErrorAs(t, err, &resErr)
}
