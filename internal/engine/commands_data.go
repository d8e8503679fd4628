package engine

import (
	"fmt"
	"strings"

	"github.com/aria-lang/biospeak-go/internal/fileio"
	"github.com/aria-lang/biospeak-go/internal/workspace"
)

const (
	fileMapReport      = "file_map"
	verificationReport = "verification_report"
)

func (e *Engine) exit(*call) (*change, error) {
	return &change{exit: true}, nil
}

func (e *Engine) help(*call) (*change, error) {
	lines := []string{"Commands:"}
	for _, t := range Templates() {
		lines = append(lines, "  "+t)
	}
	return message(strings.Join(lines, "\n"))
}

func (e *Engine) listData(*call) (*change, error) {
	items := e.ws.Items()
	if len(items) == 0 {
		return message("No data is loaded.")
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%s (%s)", item.ItemName(), item.Kind())
	}
	return message(strings.Join(lines, "\n"))
}

func (e *Engine) listSequences(*call) (*change, error) {
	seqs := e.ws.Sequences()
	if len(seqs) == 0 {
		return message("No sequences are stored.")
	}
	lines := make([]string, len(seqs))
	for i, s := range seqs {
		lines[i] = fmt.Sprintf("%s (%s)", s.Name, s.Alphabet)
	}
	return message(strings.Join(lines, "\n"))
}

func (e *Engine) listTables(*call) (*change, error) {
	return e.listKind(workspace.KindTable, "No tables are stored.")
}

func (e *Engine) listAlignments(*call) (*change, error) {
	return e.listKind(workspace.KindAlignment, "No alignments are stored.")
}

func (e *Engine) listReports(*call) (*change, error) {
	return e.listKind(workspace.KindReport, "No reports are stored.")
}

func (e *Engine) listKind(kind workspace.Kind, empty string) (*change, error) {
	names := e.ws.NamesOfKind(kind)
	if len(names) == 0 {
		return message(empty)
	}
	return message(strings.Join(names, "\n"))
}

func (e *Engine) listIntegrations(*call) (*change, error) {
	return message(e.caps.Describe())
}

func (e *Engine) clearWorkspace(*call) (*change, error) {
	return &change{message: "Workspace cleared.", clear: true}, nil
}

func (e *Engine) show(c *call) (*change, error) {
	item, err := e.item(c.rest)
	if err != nil {
		return nil, err
	}
	return message(workspace.Show(item))
}

func (e *Engine) describe(c *call) (*change, error) {
	item, err := e.item(c.rest)
	if err != nil {
		return nil, err
	}
	return message(workspace.Describe(item))
}

func (e *Engine) save(c *call) (*change, error) {
	name, path := c.args[0], c.args[1]
	item, err := e.item(name)
	if err != nil {
		return nil, err
	}

	switch it := item.(type) {
	case *workspace.Sequence:
		err = fileio.WriteFASTA(path, []fileio.Record{{Name: it.Name, Residues: it.Residues}})
	case *workspace.Alignment:
		err = fileio.WriteLines(path, it.Lines)
	case *workspace.Table:
		err = fileio.WriteTable(path, it.Headers, it.Rows)
	case *workspace.Report:
		err = fileio.WriteLines(path, it.Lines)
	}
	if err != nil {
		return nil, resourceError(err)
	}
	return message(fmt.Sprintf("Saved %s %s to %s.", item.Kind(), name, path))
}

func (e *Engine) makeFileMap(*call) (*change, error) {
	lines, err := e.files.Lines()
	if err != nil {
		return nil, resourceError(err)
	}
	report := &workspace.Report{Name: fileMapReport, Description: "Project files", Lines: lines}
	if len(lines) == 0 {
		return message("No files found.", report)
	}
	return message(strings.Join(lines, "\n"), report)
}

func (e *Engine) verifyProject(c *call) (*change, error) {
	if e.checker == nil {
		return nil, newError(ExternalResource, "Self verification is not configured.")
	}

	lines := e.checker.RunSelfTests(c.ctx)
	report := &workspace.Report{Name: verificationReport, Description: "Self verification", Lines: lines}
	for _, line := range lines {
		if strings.HasPrefix(line, "FAIL") {
			// The report is kept on failure so the error can point at it.
			e.ws.Add(report)
			return nil, newError(VerificationFailed, "Self verification reported failures. See "+verificationReport+".")
		}
	}
	return message("All modules complete.", report)
}
