package workspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bebop/poly/seqhash"

	"github.com/aria-lang/biospeak-go/internal/sequence"
)

// ShowTableLimit is the number of rows Show renders for a table.
const ShowTableLimit = 10

// FormatTable renders up to limit rows (all when limit <= 0) as padded
// " | " separated columns under a "-+-" rule. Tables without headers are
// rendered as tab-joined rows.
func FormatTable(t *Table, limit int) string {
	rows := t.Rows
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	if len(t.Headers) == 0 {
		lines := make([]string, len(rows))
		for i, row := range rows {
			lines[i] = strings.Join(row, "\t")
		}
		return strings.Join(lines, "\n")
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, v := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], len(v))
			} else {
				widths = append(widths, len(v))
			}
		}
	}

	cell := func(cells []string, i int) string {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		return v + strings.Repeat(" ", widths[i]-len(v))
	}
	render := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			parts[i] = cell(cells, i)
		}
		return strings.Join(parts, " | ")
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, render(t.Headers))
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	lines = append(lines, strings.Join(rule, "-+-"))
	for _, row := range rows {
		lines = append(lines, render(row))
	}
	return strings.Join(lines, "\n")
}

// FormatScore prints a score without a trailing ".0" for whole numbers.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// Show renders the content of an item.
func Show(item Item) string {
	switch it := item.(type) {
	case *Sequence:
		return fmt.Sprintf("%s (%s)\n%s", it.Name, it.Alphabet, it.Residues)
	case *Alignment:
		return strings.Join(append(append([]string{}, it.Lines...), "Score: "+FormatScore(it.Score)), "\n")
	case *Table:
		return FormatTable(it, ShowTableLimit)
	case *Report:
		return strings.Join(it.Lines, "\n")
	}
	return ""
}

// Describe renders the metadata of an item.
func Describe(item Item) string {
	var lines []string
	switch it := item.(type) {
	case *Sequence:
		lines = []string{
			"Name: " + it.Name,
			"Type: " + it.Alphabet.String(),
			fmt.Sprintf("Length: %d bases", it.Len()),
			fmt.Sprintf("GC: %.2f%%", sequence.GCContent(it.Residues)),
		}
		if hash, err := SeqHash(it); err == nil {
			lines = append(lines, "Seqhash: "+hash)
		}
		if it.Description != "" {
			lines = append(lines, "Info: "+it.Description)
		}
	case *Table:
		headers := "none"
		if len(it.Headers) > 0 {
			headers = strings.Join(it.Headers, ", ")
		}
		lines = []string{
			"Name: " + it.Name,
			fmt.Sprintf("Rows: %d", len(it.Rows)),
			fmt.Sprintf("Columns: %d", len(it.Headers)),
			"Headers: " + headers,
		}
	case *Alignment:
		lines = []string{
			"Name: " + it.Name,
			"Method: " + string(it.Method),
			"Score: " + FormatScore(it.Score),
			fmt.Sprintf("Sources: %s, %s", it.SourceA, it.SourceB),
		}
	case *Report:
		lines = []string{
			"Name: " + it.Name,
			fmt.Sprintf("Lines: %d", len(it.Lines)),
			"Description: " + it.Description,
		}
	}
	return strings.Join(lines, "\n")
}

// SeqHash returns the linear seqhash of a sequence. Nucleotide sequences are
// hashed double stranded.
func SeqHash(s *Sequence) (string, error) {
	if s.Len() == 0 {
		return "", fmt.Errorf("empty sequence %s", s.Name)
	}
	switch s.Alphabet {
	case sequence.RNA:
		return seqhash.Hash(s.Residues, seqhash.RNA, false, true)
	case sequence.Protein:
		return seqhash.Hash(s.Residues, seqhash.PROTEIN, false, false)
	default:
		return seqhash.Hash(s.Residues, seqhash.DNA, false, true)
	}
}
