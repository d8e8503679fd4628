package fileio

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
)

// GFFHeaders are the nine fixed GFF columns.
var GFFHeaders = []string{"seqid", "source", "type", "start", "end", "score", "strand", "phase", "attributes"}

// Delimiter picks tab for .tsv, .tab and .gff paths and comma otherwise.
func Delimiter(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab", ".gff", ".gff3":
		return '\t'
	}
	return ','
}

// ReadTable reads a delimited file whose first non-blank row holds the headers.
// Rows may be ragged; rows whose cells are all blank are skipped.
func ReadTable(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, readErr(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = Delimiter(path)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, readErr(path, err)
	}

	rows := make([][]string, 0, len(all))
	for _, row := range all {
		if blankRow(row) {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return []string{}, [][]string{}, nil
	}
	return rows[0], rows[1:], nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// WriteTable writes headers (when present) and rows using Delimiter(path).
func WriteTable(path string, headers []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = Delimiter(path)

	if len(headers) > 0 {
		if err := w.Write(headers); err != nil {
			return writeErr(path, err)
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return writeErr(path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return writeErr(path, err)
	}
	return nil
}

// ReadGFF reads tab-separated annotation lines into the nine GFF columns.
// Comment, blank and short lines are skipped; extra columns are dropped.
func ReadGFF(path string) ([]string, [][]string, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, nil, err
	}

	rows := make([][]string, 0)
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < len(GFFHeaders) {
			continue
		}
		rows = append(rows, parts[:len(GFFHeaders)])
	}

	headers := make([]string, len(GFFHeaders))
	copy(headers, GFFHeaders)
	return headers, rows, nil
}

// ReadVCF reads variant lines. "##" meta lines are skipped and the single
// "#" line supplies the headers.
func ReadVCF(path string) ([]string, [][]string, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, nil, err
	}

	headers := []string{}
	rows := make([][]string, 0)
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		switch {
		case line == "", strings.HasPrefix(line, "##"):
			continue
		case strings.HasPrefix(line, "#"):
			headers = strings.Split(line[1:], "\t")
		default:
			rows = append(rows, strings.Split(line, "\t"))
		}
	}
	return headers, rows, nil
}
