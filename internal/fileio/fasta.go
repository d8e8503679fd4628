package fileio

import (
	"strings"

	"github.com/bebop/poly/io/fasta"

	"github.com/aria-lang/biospeak-go/internal/sequence"
)

// FASTALineWidth is the residue line width used by WriteFASTA.
const FASTALineWidth = 70

// ReadFASTA reads every record of a FASTA file. Residues are cleaned and an
// empty header is named "sequence".
func ReadFASTA(path string) ([]Record, error) {
	entries, err := fasta.Read(path)
	if err != nil {
		return nil, readErr(path, err)
	}

	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			name = "sequence"
		}
		records = append(records, Record{Name: name, Residues: sequence.Clean(e.Sequence)})
	}
	return records, nil
}

// FormatFASTA renders records with ">name" headers and residues wrapped at FASTALineWidth.
func FormatFASTA(records []Record) string {
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(">")
		sb.WriteString(r.Name)
		sb.WriteByte('\n')

		residues := sequence.Clean(r.Residues)
		for i := 0; i < len(residues); i += FASTALineWidth {
			end := min(i+FASTALineWidth, len(residues))
			sb.WriteString(residues[i:end])
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// WriteFASTA writes records to path in one call.
func WriteFASTA(path string, records []Record) error {
	return WriteText(path, FormatFASTA(records))
}
