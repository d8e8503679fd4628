package fileio

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// BAMRowLimit caps how many alignment records ReadBAM returns.
const BAMRowLimit = 500

// BAMHeaders are the columns produced by ReadBAM.
var BAMHeaders = []string{"query", "flag", "ref", "pos", "mapq", "cigar"}

// ReadBAM reads up to BAMRowLimit records. Positions are 1-based; unmapped
// reads have position 0 and an empty reference.
func ReadBAM(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, readErr(path, err)
	}
	defer f.Close()

	// concurrency 0 lets the reader use GOMAXPROCS
	br, err := bam.NewReader(f, 0)
	if err != nil {
		return nil, nil, readErr(path, err)
	}
	defer br.Close()

	rows := make([][]string, 0)
	for len(rows) < BAMRowLimit {
		rec, err := br.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, readErr(path, err)
		}
		rows = append(rows, bamRow(rec))
	}

	headers := make([]string, len(BAMHeaders))
	copy(headers, BAMHeaders)
	return headers, rows, nil
}

func bamRow(rec *sam.Record) []string {
	ref := ""
	if rec.Ref != nil {
		ref = rec.Ref.Name()
	}
	return []string{
		rec.Name,
		strconv.Itoa(int(rec.Flags)),
		ref,
		strconv.Itoa(rec.Pos + 1),
		strconv.Itoa(int(rec.MapQ)),
		rec.Cigar.String(),
	}
}
