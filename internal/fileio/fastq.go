package fileio

import (
	"strings"

	"github.com/aria-lang/biospeak-go/internal/quality"
	"github.com/aria-lang/biospeak-go/internal/sequence"
)

// Read is one FASTQ entry. Quality is nil when the quality line is missing
// or not valid Phred+33.
type Read struct {
	Record
	Quality *quality.Scores
}

// ReadFASTQ reads four-line FASTQ entries. Entries whose header does not
// start with '@' are skipped.
func ReadFASTQ(path string) ([]Read, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	lines := splitLines(text)

	reads := make([]Read, 0, len(lines)/4)
	for i := 0; i < len(lines); i += 4 {
		header := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(header, "@") {
			continue
		}

		r := Read{Record: Record{Name: header[1:]}}
		if i+1 < len(lines) {
			r.Residues = sequence.Clean(lines[i+1])
		}
		if i+3 < len(lines) {
			if q, err := quality.FromPhred33(strings.TrimSpace(lines[i+3])); err == nil {
				r.Quality = q
			}
		}
		reads = append(reads, r)
	}
	return reads, nil
}
