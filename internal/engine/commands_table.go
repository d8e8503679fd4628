package engine

import (
	"fmt"
	"strings"

	"github.com/aria-lang/biospeak-go/internal/fileio"
	"github.com/aria-lang/biospeak-go/internal/sequence"
	"github.com/aria-lang/biospeak-go/internal/workspace"
)

func columnNotFound(column string) error {
	return invalid("Column " + column + " not found.")
}

func (e *Engine) filterTable(c *call) (*change, error) {
	name, column, value, newName := c.args[0], c.args[1], c.args[2], c.args[3]
	t, err := e.table(name)
	if err != nil {
		return nil, err
	}
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, columnNotFound(column)
	}

	rows := make([][]string, 0)
	for _, row := range t.Rows {
		if idx < len(row) && row[idx] == value {
			rows = append(rows, row)
		}
	}
	return message(fmt.Sprintf("Stored table as %s with %d rows.", newName, len(rows)), &workspace.Table{
		Name:        newName,
		Description: fmt.Sprintf("Filtered %s where %s equals %s", name, column, value),
		Headers:     append([]string(nil), t.Headers...),
		Rows:        rows,
	})
}

func (e *Engine) pickColumns(c *call) (*change, error) {
	columns := strings.Fields(c.args[0])
	name, newName := c.args[1], c.args[2]
	t, err := e.table(name)
	if err != nil {
		return nil, err
	}

	indices := make([]int, len(columns))
	for i, column := range columns {
		if indices[i] = t.ColumnIndex(column); indices[i] < 0 {
			return nil, columnNotFound(column)
		}
	}
	rows := make([][]string, len(t.Rows))
	for r := range t.Rows {
		rows[r] = make([]string, len(indices))
		for i, idx := range indices {
			rows[r][i] = t.Cell(r, idx)
		}
	}
	return message(fmt.Sprintf("Stored table as %s with %d rows.", newName, len(rows)), &workspace.Table{
		Name:        newName,
		Description: fmt.Sprintf("Columns %s from %s", strings.Join(columns, ", "), name),
		Headers:     columns,
		Rows:        rows,
	})
}

// joinTables is an inner join on one column. When the second table repeats
// a key, its last row wins.
func (e *Engine) joinTables(c *call) (*change, error) {
	first, second, column, newName := c.args[0], c.args[1], c.args[2], c.args[3]
	a, err := e.table(first)
	if err != nil {
		return nil, err
	}
	b, err := e.table(second)
	if err != nil {
		return nil, err
	}
	ia, ib := a.ColumnIndex(column), b.ColumnIndex(column)
	if ia < 0 || ib < 0 {
		return nil, invalid("Column " + column + " missing in tables.")
	}

	headers := append([]string(nil), a.Headers...)
	for i, h := range b.Headers {
		if i != ib {
			headers = append(headers, h)
		}
	}

	lookup := make(map[string][]string, len(b.Rows))
	for _, row := range b.Rows {
		if ib < len(row) {
			lookup[row[ib]] = row
		}
	}

	rows := make([][]string, 0)
	for r, row := range a.Rows {
		other, ok := lookup[a.Cell(r, ia)]
		if !ok {
			continue
		}
		combined := append([]string(nil), row...)
		for i, v := range other {
			if i != ib {
				combined = append(combined, v)
			}
		}
		rows = append(rows, combined)
	}
	return message(fmt.Sprintf("Stored table as %s with %d rows.", newName, len(rows)), &workspace.Table{
		Name:        newName,
		Description: fmt.Sprintf("Join of %s and %s on %s", first, second, column),
		Headers:     headers,
		Rows:        rows,
	})
}

func (e *Engine) analyzeTable(c *call) (*change, error) {
	t, err := e.table(c.rest)
	if err != nil {
		return nil, err
	}
	summary := e.caps.DescribeTable(t)
	return message(summary, &workspace.Report{
		Name:        t.Name + "_summary",
		Description: "Summary of " + t.Name,
		Lines:       fileio.SplitLines(summary),
	})
}

func (e *Engine) exportSequences(c *call) (*change, error) {
	path := c.rest
	seqs := e.ws.Sequences()
	records := make([]fileio.Record, len(seqs))
	for i, s := range seqs {
		records[i] = fileio.Record{Name: s.Name, Residues: s.Residues}
	}
	if err := fileio.EnsureDir(path); err != nil {
		return nil, resourceError(err)
	}
	if err := fileio.WriteFASTA(path, records); err != nil {
		return nil, resourceError(err)
	}
	return message("Saved all sequences to " + path + ".")
}

func (e *Engine) exportTable(c *call) (*change, error) {
	name, path := c.args[0], c.args[1]
	t, err := e.table(name)
	if err != nil {
		return nil, err
	}
	if err := fileio.EnsureDir(path); err != nil {
		return nil, resourceError(err)
	}
	if err := fileio.WriteTable(path, t.Headers, t.Rows); err != nil {
		return nil, resourceError(err)
	}
	return message("Saved table " + name + " to " + path + ".")
}

func (e *Engine) plotSequences(c *call) (*change, error) {
	name, path := c.rest, ""
	if before, after, ok := cut(c.rest, kwToFile); ok {
		if before == "" || after == "" {
			return nil, malformed(c.template)
		}
		name, path = before, after
	}
	s, err := e.sequence(name)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = name + "_metrics.png"
	}

	if err := fileio.EnsureDir(path); err != nil {
		return nil, resourceError(err)
	}
	if err := e.caps.PlotSequenceMetrics(s.Name, s.Residues, path); err != nil {
		return nil, resourceError(err)
	}
	return message("Saved sequence plots to " + path + ".")
}

func (e *Engine) writeReport(c *call) (*change, error) {
	name, path := c.args[0], c.args[1]
	item, err := e.item(name)
	if err != nil {
		return nil, err
	}

	switch it := item.(type) {
	case *workspace.Report:
		if err := fileio.WriteLines(path, it.Lines); err != nil {
			return nil, resourceError(err)
		}
		return message("Wrote report " + name + " to " + path + ".")
	case *workspace.Sequence:
		lines := []string{
			"Report for " + name,
			"Type: " + it.Alphabet.String(),
			fmt.Sprintf("Length: %d", it.Len()),
			fmt.Sprintf("GC: %.2f%%", sequence.GCContent(it.Residues)),
		}
		if err := fileio.WriteLines(path, lines); err != nil {
			return nil, resourceError(err)
		}
		return message("Wrote report for " + name + " to " + path + ".")
	}
	return nil, &CommandError{
		Kind:    WrongItemKind,
		Message: "Report can be written only for sequences or reports.",
		Err:     &workspace.WrongKindError{Name: name, Want: workspace.KindReport, Got: item.Kind()},
	}
}
