package handlers

import (
	"sort"
	"strings"

	"github.com/aria-lang/biospeak-go/internal/workspace"
)

// WorkspaceSnapshot lists a session's items by kind. Each list is sorted
// by lower-case name.
type WorkspaceSnapshot struct {
	Sequences  []SequenceView  `json:"sequences"`
	Alignments []AlignmentView `json:"alignments"`
	Tables     []TableView     `json:"tables"`
	Reports    []ReportView    `json:"reports"`
}

type SequenceView struct {
	Name        string `json:"name"`
	Alphabet    string `json:"alphabet"`
	Length      int    `json:"length"`
	Description string `json:"description"`
}

type AlignmentView struct {
	Name        string  `json:"name"`
	Method      string  `json:"method"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

type TableView struct {
	Name        string   `json:"name"`
	Headers     []string `json:"headers"`
	Rows        int      `json:"rows"`
	Description string   `json:"description"`
}

type ReportView struct {
	Name        string   `json:"name"`
	Lines       []string `json:"lines"`
	Description string   `json:"description"`
}

// Snapshot copies the visible state of ws.
func Snapshot(ws *workspace.Workspace) WorkspaceSnapshot {
	snap := WorkspaceSnapshot{
		Sequences:  []SequenceView{},
		Alignments: []AlignmentView{},
		Tables:     []TableView{},
		Reports:    []ReportView{},
	}
	items := ws.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].ItemName()) < strings.ToLower(items[j].ItemName())
	})

	for _, item := range items {
		switch it := item.(type) {
		case *workspace.Sequence:
			snap.Sequences = append(snap.Sequences, SequenceView{
				Name:        it.Name,
				Alphabet:    it.Alphabet.String(),
				Length:      it.Len(),
				Description: it.Description,
			})
		case *workspace.Alignment:
			snap.Alignments = append(snap.Alignments, AlignmentView{
				Name:        it.Name,
				Method:      string(it.Method),
				Score:       it.Score,
				Description: it.Description,
			})
		case *workspace.Table:
			snap.Tables = append(snap.Tables, TableView{
				Name:        it.Name,
				Headers:     append([]string{}, it.Headers...),
				Rows:        len(it.Rows),
				Description: it.Description,
			})
		case *workspace.Report:
			snap.Reports = append(snap.Reports, ReportView{
				Name:        it.Name,
				Lines:       append([]string{}, it.Lines...),
				Description: it.Description,
			})
		}
	}
	return snap
}
