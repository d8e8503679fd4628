package sequence

// DefaultMinORFLength is the minimum ORF length, in amino acids, used when
// a caller does not pick one.
const DefaultMinORFLength = 30

// ORF is an open reading frame on the forward strand.
// Start is 1-based inclusive; End is the end of the stop codon.
type ORF struct {
	Start    int
	End      int
	Frame    int
	LengthBp int
	LengthAa int
	Protein  string
}

// ScanORFs finds ATG...stop spans in the three forward frames whose protein,
// excluding the stop, has at least minAminoAcids residues (clamped to 1).
//
// After a start codon is followed to its stop, scanning resumes after the
// stop codon, so starts nested inside an already examined ORF in the same
// frame are never reported on their own.
func ScanORFs(seq string, minAminoAcids int) []ORF {
	seq = dnaForm(seq)
	if minAminoAcids < 1 {
		minAminoAcids = 1
	}

	orfs := make([]ORF, 0)
	for frame := 0; frame < 3; frame++ {
		i := frame
		for i+3 <= len(seq) {
			if seq[i:i+3] != StartCodon {
				i += 3
				continue
			}

			j := i + 3
			for j+3 <= len(seq) && !IsStopCodon(seq[j:j+3]) {
				j += 3
			}
			if j+3 > len(seq) {
				// no in-frame stop; nothing further in this frame can close
				break
			}

			aaLen := (j - i) / 3
			if aaLen >= minAminoAcids {
				orfs = append(orfs, ORF{
					Start:    i + 1,
					End:      j + 3,
					Frame:    frame + 1,
					LengthBp: j + 3 - i,
					LengthAa: aaLen,
					Protein:  Translate(seq[i:j], 0),
				})
			}
			i = j + 3
		}
	}
	return orfs
}
