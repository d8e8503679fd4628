// Package workspace holds named, typed items produced by commands.
//
// Item is a closed set: only Sequence, Alignment, Table and Report satisfy
// it, so a type switch over those four cases is exhaustive.
package workspace

import "github.com/aria-lang/biospeak-go/internal/sequence"

// Kind tags the four item variants.
type Kind string

const (
	KindSequence  Kind = "sequence"
	KindAlignment Kind = "alignment"
	KindTable     Kind = "table"
	KindReport    Kind = "report"
)

// Item is a workspace entry.
type Item interface {
	ItemName() string
	ItemDescription() string
	Kind() Kind
	isItem()
}

// Sequence is cleaned residue text with its alphabet.
type Sequence struct {
	Name        string
	Description string
	Residues    string
	Alphabet    sequence.Alphabet
}

func (s *Sequence) ItemName() string        { return s.Name }
func (s *Sequence) ItemDescription() string { return s.Description }
func (s *Sequence) Kind() Kind              { return KindSequence }
func (s *Sequence) isItem()                 {}

// Len returns the number of residues.
func (s *Sequence) Len() int { return len(s.Residues) }

// AlignmentMethod records how an alignment was produced.
type AlignmentMethod string

const (
	MethodGlobal      AlignmentMethod = "global"
	MethodLocal       AlignmentMethod = "local"
	MethodProgressive AlignmentMethod = "progressive"
	MethodExternal    AlignmentMethod = "external"
)

// Alignment stores rendered alignment lines. Pairwise alignments hold
// aligned A, the match line and aligned B, all of equal length.
type Alignment struct {
	Name        string
	Description string
	Lines       []string
	Score       float64
	Method      AlignmentMethod
	Label       string
	SourceA     string
	SourceB     string
}

func (a *Alignment) ItemName() string        { return a.Name }
func (a *Alignment) ItemDescription() string { return a.Description }
func (a *Alignment) Kind() Kind              { return KindAlignment }
func (a *Alignment) isItem()                 {}

// Table is a header row plus string rows. Rows may be ragged.
type Table struct {
	Name        string
	Description string
	Headers     []string
	Rows        [][]string
}

func (t *Table) ItemName() string        { return t.Name }
func (t *Table) ItemDescription() string { return t.Description }
func (t *Table) Kind() Kind              { return KindTable }
func (t *Table) isItem()                 {}

// ColumnIndex returns the position of header, or -1.
func (t *Table) ColumnIndex(header string) int {
	for i, h := range t.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

// Cell returns rows[row][col], or "" for a missing cell.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Report is free text kept line by line.
type Report struct {
	Name        string
	Description string
	Lines       []string
}

func (r *Report) ItemName() string        { return r.Name }
func (r *Report) ItemDescription() string { return r.Description }
func (r *Report) Kind() Kind              { return KindReport }
func (r *Report) isItem()                 {}
