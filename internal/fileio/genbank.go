package fileio

import (
	"fmt"
	"strings"

	"github.com/bebop/poly/io/genbank"

	"github.com/aria-lang/biospeak-go/internal/sequence"
)

// ReadGenBank reads every entry of a GenBank flat file, named by LOCUS.
func ReadGenBank(path string) ([]Record, error) {
	entries, err := genbank.ReadMulti(path)
	if err != nil {
		return nil, readErr(path, err)
	}

	records := make([]Record, 0, len(entries))
	for i, e := range entries {
		name := strings.TrimSpace(e.Meta.Locus.Name)
		if name == "" {
			name = fmt.Sprintf("record_%d", i+1)
		}
		records = append(records, Record{Name: name, Residues: sequence.Clean(e.Sequence)})
	}
	return records, nil
}
