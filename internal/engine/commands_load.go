package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aria-lang/biospeak-go/internal/fileio"
	"github.com/aria-lang/biospeak-go/internal/sequence"
	"github.com/aria-lang/biospeak-go/internal/workspace"
)

// numbered names the i-th (0-based) record of a multi-record load: base,
// base_2, base_3...
func numbered(base string, i int) string {
	if i == 0 {
		return base
	}
	return fmt.Sprintf("%s_%d", base, i+1)
}

func sequenceItems(base string, records []fileio.Record, alphabet sequence.Alphabet) ([]workspace.Item, []string) {
	items := make([]workspace.Item, len(records))
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = numbered(base, i)
		items[i] = &workspace.Sequence{Name: names[i], Description: r.Name, Residues: r.Residues, Alphabet: alphabet}
	}
	return items, names
}

func (e *Engine) loadFASTA(c *call, alphabet sequence.Alphabet) (*change, error) {
	path, name := c.args[0], c.args[1]
	records, err := fileio.ReadFASTA(path)
	if err != nil {
		return nil, resourceError(err)
	}
	if len(records) == 0 {
		return nil, newError(ExternalResource, "No sequences found in file.")
	}

	items, names := sequenceItems(name, records, alphabet)
	return message(fmt.Sprintf("Loaded %d sequence(s) as %s.", len(items), strings.Join(names, ", ")), items...)
}

func (e *Engine) loadText(c *call, alphabet sequence.Alphabet) (*change, error) {
	text, name := c.args[0], c.args[1]
	residues := sequence.Clean(text)
	if residues == "" {
		return nil, invalid("No sequence text provided.")
	}
	return message("Stored sequence as "+name+".", &workspace.Sequence{
		Name:        name,
		Description: fmt.Sprintf("Manual %s sequence", alphabet),
		Residues:    residues,
		Alphabet:    alphabet,
	})
}

func (e *Engine) loadTable(c *call) (*change, error) {
	path, name := c.args[0], c.args[1]
	headers, rows, err := fileio.ReadTable(path)
	if err != nil {
		return nil, resourceError(err)
	}
	return message(fmt.Sprintf("Loaded table as %s with %d rows.", name, len(rows)), &workspace.Table{
		Name:        name,
		Description: "Table from " + filepath.Base(path),
		Headers:     headers,
		Rows:        rows,
	})
}

func (e *Engine) loadFASTQ(c *call) (*change, error) {
	path, name := c.args[0], c.args[1]
	reads, err := fileio.ReadFASTQ(path)
	if err != nil {
		return nil, resourceError(err)
	}
	if len(reads) == 0 {
		return nil, newError(ExternalResource, "No reads found in FASTQ file.")
	}

	items := make([]workspace.Item, len(reads))
	for i, r := range reads {
		desc := r.Name
		if r.Quality != nil && r.Quality.Len() > 0 {
			desc = fmt.Sprintf("%s (mean quality %.1f, %s)", r.Name, r.Quality.Average(), r.Quality.Categorize())
		}
		items[i] = &workspace.Sequence{Name: numbered(name, i), Description: desc, Residues: r.Residues, Alphabet: sequence.DNA}
	}
	return message(fmt.Sprintf("Loaded %d reads from %s.", len(items), filepath.Base(path)), items...)
}

func (e *Engine) loadGenBank(c *call) (*change, error) {
	path, name := c.args[0], c.args[1]
	records, err := fileio.ReadGenBank(path)
	if err != nil {
		return nil, resourceError(err)
	}
	if len(records) == 0 {
		return nil, newError(ExternalResource, "No entries in GenBank file.")
	}

	items, _ := sequenceItems(name, records, sequence.DNA)
	return message(fmt.Sprintf("Loaded %d sequences from GenBank.", len(items)), items...)
}

type tableReader func(path string) ([]string, [][]string, error)

func (e *Engine) loadTableWith(c *call, read tableReader, format string) (*change, error) {
	path, name := c.args[0], c.args[1]
	headers, rows, err := read(path)
	if err != nil {
		return nil, resourceError(err)
	}
	return message(fmt.Sprintf("Loaded %s into %s.", format, name), &workspace.Table{
		Name:        name,
		Description: path,
		Headers:     headers,
		Rows:        rows,
	})
}

func (e *Engine) loadGFF(c *call) (*change, error) {
	return e.loadTableWith(c, fileio.ReadGFF, "GFF annotations")
}

func (e *Engine) loadVCF(c *call) (*change, error) {
	return e.loadTableWith(c, fileio.ReadVCF, "VCF variants")
}

func (e *Engine) loadBAM(c *call) (*change, error) {
	return e.loadTableWith(c, fileio.ReadBAM, "BAM alignments")
}

func (e *Engine) loadJSON(c *call) (*change, error) {
	return e.loadTableWith(c, fileio.ReadJSON, "JSON data")
}

func (e *Engine) loadNotes(c *call) (*change, error) {
	path, name := c.args[0], c.args[1]
	text, err := fileio.ReadText(path)
	if err != nil {
		return nil, resourceError(err)
	}
	lines := fileio.SplitLines(text)
	return message(fmt.Sprintf("Loaded notes as %s with %d lines.", name, len(lines)), &workspace.Report{
		Name:        name,
		Description: "Notes from " + filepath.Base(path),
		Lines:       lines,
	})
}
