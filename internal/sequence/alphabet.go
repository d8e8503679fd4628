package sequence

// Alphabet is the residue vocabulary of a sequence.
type Alphabet int

const (
	// DNA uses A, C, G, T.
	DNA Alphabet = iota
	// RNA uses A, C, G, U.
	RNA
	// Protein uses the one-letter amino acid codes.
	Protein
)

func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "dna"
	case RNA:
		return "rna"
	case Protein:
		return "protein"
	default:
		return "unknown"
	}
}

var complementTables = map[Alphabet]map[rune]rune{
	DNA: {'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'},
	RNA: {'A': 'U', 'U': 'A', 'C': 'G', 'G': 'C'},
}
