package sequence

import "strings"

// codonTable is the standard genetic code. Stop codons map to '*'.
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// StartCodon opens an ORF.
const StartCodon = "ATG"

// IsStopCodon reports whether codon is TAA, TAG or TGA.
func IsStopCodon(codon string) bool {
	return codonTable[codon] == '*'
}

// dnaForm reads RNA through its DNA equivalent for codon lookup.
func dnaForm(seq string) string {
	return strings.ReplaceAll(Clean(seq), "U", "T")
}

// Translate reads non-overlapping codons from frame onward.
// Unknown codons become 'X' and a trailing partial codon is dropped.
func Translate(seq string, frame int) string {
	seq = dnaForm(seq)
	if frame < 0 {
		frame = 0
	}
	if frame >= len(seq) {
		return ""
	}
	seq = seq[frame:]

	protein := make([]byte, 0, len(seq)/3)
	for i := 0; i+3 <= len(seq); i += 3 {
		aa, ok := codonTable[seq[i:i+3]]
		if !ok {
			aa = 'X'
		}
		protein = append(protein, aa)
	}
	return string(protein)
}

// Frame is one forward reading frame translation. Number is 1-based.
type Frame struct {
	Number  int
	Protein string
}

// TranslateFrames translates the three forward reading frames.
func TranslateFrames(seq string) []Frame {
	frames := make([]Frame, 3)
	for f := 0; f < 3; f++ {
		frames[f] = Frame{Number: f + 1, Protein: Translate(seq, f)}
	}
	return frames
}

// CodonUsage counts codons read in frame 0. RNA codons are reported in
// their DNA form, matching Translate.
func CodonUsage(seq string) map[string]int {
	seq = dnaForm(seq)
	usage := make(map[string]int)
	for i := 0; i+3 <= len(seq); i += 3 {
		usage[seq[i:i+3]]++
	}
	return usage
}
