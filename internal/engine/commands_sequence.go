package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aria-lang/biospeak-go/internal/alignment"
	"github.com/aria-lang/biospeak-go/internal/sequence"
	"github.com/aria-lang/biospeak-go/internal/stats"
	"github.com/aria-lang/biospeak-go/internal/workspace"
)

var orfHeaders = []string{"start", "end", "frame", "length_bp", "length_aa", "protein"}

var kwWithMinimum = connective{word: " with minimum ", last: true}

func formatBaseCounts(seq string) string {
	counts := sequence.BaseCounts(seq)
	bases := make([]rune, 0, len(counts))
	for b := range counts {
		bases = append(bases, b)
	}
	sort.Slice(bases, func(i, j int) bool { return bases[i] < bases[j] })

	parts := make([]string, len(bases))
	for i, b := range bases {
		parts[i] = fmt.Sprintf("%c:%d", b, counts[b])
	}
	return strings.Join(parts, ", ")
}

func frameLines(seq string) []string {
	frames := sequence.TranslateFrames(seq)
	lines := make([]string, len(frames))
	for i, f := range frames {
		lines[i] = fmt.Sprintf("Frame %d: %s", f.Number, f.Protein)
	}
	return lines
}

func (e *Engine) countGC(c *call) (*change, error) {
	s, err := e.sequence(c.rest)
	if err != nil {
		return nil, err
	}
	return message(fmt.Sprintf("GC of %s is %.2f percent.", s.Name, sequence.GCContent(s.Residues)))
}

func (e *Engine) countBases(c *call) (*change, error) {
	s, err := e.sequence(c.rest)
	if err != nil {
		return nil, err
	}
	return message(fmt.Sprintf("Bases of %s: %s.", s.Name, formatBaseCounts(s.Residues)))
}

func (e *Engine) countCodons(c *call) (*change, error) {
	s, err := e.sequence(c.rest)
	if err != nil {
		return nil, err
	}
	usage := sequence.CodonUsage(s.Residues)
	codons := make([]string, 0, len(usage))
	for codon := range usage {
		codons = append(codons, codon)
	}
	sort.Strings(codons)

	lines := []string{"Codon counts:"}
	for _, codon := range codons {
		lines = append(lines, fmt.Sprintf("%s: %d", codon, usage[codon]))
	}
	return message(strings.Join(lines, "\n"))
}

func (e *Engine) findMotif(c *call) (*change, error) {
	motif, name := c.args[0], c.args[1]
	s, err := e.sequence(name)
	if err != nil {
		return nil, err
	}
	positions := sequence.FindMotif(s.Residues, motif)
	if len(positions) == 0 {
		return message("Motif not found in " + name + ".")
	}
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return message("Motif found at positions: " + strings.Join(parts, ", ") + ".")
}

func (e *Engine) findORFs(c *call) (*change, error) {
	body := c.rest
	minimum := sequence.DefaultMinORFLength
	if before, after, ok := cut(body, kwWithMinimum); ok {
		n, err := strconv.Atoi(after)
		if err != nil {
			return nil, invalid("Minimum length must be a whole number.")
		}
		minimum, body = n, before
	}
	name, newName, ok := cut(body, kwAs)
	if !ok || name == "" || newName == "" {
		return nil, malformed(c.template)
	}

	s, err := e.sequence(name)
	if err != nil {
		return nil, err
	}
	orfs := sequence.ScanORFs(s.Residues, minimum)
	rows := make([][]string, len(orfs))
	for i, o := range orfs {
		rows[i] = []string{
			strconv.Itoa(o.Start), strconv.Itoa(o.End), strconv.Itoa(o.Frame),
			strconv.Itoa(o.LengthBp), strconv.Itoa(o.LengthAa), o.Protein,
		}
	}
	return message(fmt.Sprintf("Found %d ORF(s) in %s. Stored table as %s.", len(orfs), name, newName), &workspace.Table{
		Name:        newName,
		Description: fmt.Sprintf("ORFs in %s of at least %d amino acids", name, max(minimum, 1)),
		Headers:     append([]string(nil), orfHeaders...),
		Rows:        rows,
	})
}

func (e *Engine) slice(c *call) (*change, error) {
	name, startText, endText, newName := c.args[0], c.args[1], c.args[2], c.args[3]
	start, err1 := strconv.Atoi(startText)
	end, err2 := strconv.Atoi(endText)
	if err1 != nil || err2 != nil {
		return nil, invalid("Slice bounds must be whole numbers.")
	}
	s, err := e.sequence(name)
	if err != nil {
		return nil, err
	}
	return message("Stored slice as "+newName+".", &workspace.Sequence{
		Name:        newName,
		Description: fmt.Sprintf("Slice of %s from %d to %d", name, start, end),
		Residues:    sequence.Slice(s.Residues, start, end),
		Alphabet:    s.Alphabet,
	})
}

func (e *Engine) join(c *call) (*change, error) {
	first, second, newName := c.args[0], c.args[1], c.args[2]
	a, err := e.sequence(first)
	if err != nil {
		return nil, err
	}
	b, err := e.sequence(second)
	if err != nil {
		return nil, err
	}
	return message("Stored join as "+newName+".", &workspace.Sequence{
		Name:        newName,
		Description: fmt.Sprintf("Join of %s and %s", first, second),
		Residues:    sequence.Join(a.Residues, b.Residues),
		Alphabet:    a.Alphabet,
	})
}

func (e *Engine) split(c *call) (*change, error) {
	name, sizeText, newName := c.args[0], c.args[1], c.args[2]
	size, err := strconv.Atoi(sizeText)
	if err != nil {
		return nil, invalid("Chunk size must be a whole number.")
	}
	s, err := e.sequence(name)
	if err != nil {
		return nil, err
	}
	chunks, err := sequence.Chunk(s.Residues, size)
	if err != nil {
		return nil, &CommandError{Kind: InvalidArgument, Message: "Chunk size must be positive.", Err: err}
	}
	if len(chunks) == 0 {
		return nil, invalid("Sequence " + name + " is empty.")
	}

	items := make([]workspace.Item, len(chunks))
	names := make([]string, len(chunks))
	for i, chunk := range chunks {
		names[i] = fmt.Sprintf("%s_%d", newName, i+1)
		items[i] = &workspace.Sequence{
			Name:        names[i],
			Description: fmt.Sprintf("Chunk %d of %s", i+1, name),
			Residues:    chunk,
			Alphabet:    s.Alphabet,
		}
	}
	return message(fmt.Sprintf("Stored %d chunk(s) as %s.", len(items), strings.Join(names, ", ")), items...)
}

func (e *Engine) compare(c *call) (*change, error) {
	a, err := e.sequence(c.args[0])
	if err != nil {
		return nil, err
	}
	b, err := e.sequence(c.args[1])
	if err != nil {
		return nil, err
	}
	cmp := sequence.Compare(a.Residues, b.Residues)
	return message(strings.Join([]string{
		fmt.Sprintf("Compared %s with %s", a.Name, b.Name),
		fmt.Sprintf("Overlap: %d", cmp.Overlap),
		fmt.Sprintf("Matches: %d", cmp.Matches),
		fmt.Sprintf("Identity: %.2f%%", cmp.Identity),
		fmt.Sprintf("Length difference: %d", cmp.Gaps),
	}, "\n"))
}

// derive stores a sequence computed from one source sequence.
func (e *Engine) derive(c *call, noun, describe string, fn func(*workspace.Sequence) (string, sequence.Alphabet)) (*change, error) {
	name, newName := c.args[0], c.args[1]
	s, err := e.sequence(name)
	if err != nil {
		return nil, err
	}
	residues, alphabet := fn(s)
	return message("Stored "+noun+" as "+newName+".", &workspace.Sequence{
		Name:        newName,
		Description: describe + " " + name,
		Residues:    residues,
		Alphabet:    alphabet,
	})
}

func (e *Engine) transcribe(c *call) (*change, error) {
	return e.derive(c, "rna", "RNA made from", func(s *workspace.Sequence) (string, sequence.Alphabet) {
		return sequence.Transcribe(s.Residues), sequence.RNA
	})
}

func (e *Engine) translate(c *call) (*change, error) {
	return e.derive(c, "protein", "Protein from", func(s *workspace.Sequence) (string, sequence.Alphabet) {
		return sequence.Translate(s.Residues, 0), sequence.Protein
	})
}

func (e *Engine) reverse(c *call) (*change, error) {
	return e.derive(c, "reverse", "Reverse of", func(s *workspace.Sequence) (string, sequence.Alphabet) {
		return sequence.Reverse(s.Residues), s.Alphabet
	})
}

func (e *Engine) complement(c *call) (*change, error) {
	return e.derive(c, "complement", "Complement of", func(s *workspace.Sequence) (string, sequence.Alphabet) {
		return sequence.Complement(s.Residues, s.Alphabet), s.Alphabet
	})
}

func (e *Engine) reverseComplement(c *call) (*change, error) {
	return e.derive(c, "reverse complement", "Reverse complement of", func(s *workspace.Sequence) (string, sequence.Alphabet) {
		return sequence.ReverseComplement(s.Residues, s.Alphabet), s.Alphabet
	})
}

func (e *Engine) translateFrames(c *call) (*change, error) {
	name, newName := c.args[0], c.args[1]
	s, err := e.sequence(name)
	if err != nil {
		return nil, err
	}
	return message("Stored frames as "+newName+".", &workspace.Report{
		Name:        newName,
		Description: "Frames for " + name,
		Lines:       frameLines(s.Residues),
	})
}

func (e *Engine) align(c *call) (*change, error) {
	first, second, newName, methodName := c.args[0], c.args[1], c.args[2], c.args[3]
	method, err := alignment.ParseMethod(methodName)
	if err != nil {
		return nil, &CommandError{Kind: InvalidArgument, Message: "Method must be global or local.", Err: err}
	}
	a, err := e.sequence(first)
	if err != nil {
		return nil, err
	}
	b, err := e.sequence(second)
	if err != nil {
		return nil, err
	}

	res := alignment.Align(a.Residues, b.Residues, method)
	item := &workspace.Alignment{
		Name:        newName,
		Description: fmt.Sprintf("Alignment of %s and %s (identity %.1f%%, CIGAR %s)", first, second, res.Identity(), res.CIGAR()),
		Lines:       res.Lines(),
		Score:       float64(res.Score),
		Method:      workspace.AlignmentMethod(method.String()),
		SourceA:     first,
		SourceB:     second,
	}
	return message(workspace.Show(item), item)
}

func (e *Engine) alignGroup(c *call) (*change, error) {
	membersText, newName := c.args[0], c.args[1]
	members := strings.Fields(strings.ReplaceAll(membersText, ",", " "))
	if len(members) < 2 {
		return nil, invalid("Please name at least two sequences to align.")
	}

	seqs := make([]string, len(members))
	for i, name := range members {
		s, err := e.sequence(name)
		if err != nil {
			return nil, err
		}
		seqs[i] = s.Residues
	}

	res, err := e.caps.MultipleAlignment(members, seqs)
	if err != nil {
		return nil, resourceError(err)
	}
	return message(fmt.Sprintf("Aligned %d sequences into %s using %s.", len(members), newName, res.Label), &workspace.Alignment{
		Name:        newName,
		Description: fmt.Sprintf("%s alignment of %s", res.Label, strings.Join(members, ", ")),
		Lines:       res.Lines,
		Score:       res.Score,
		Method:      res.Method,
		Label:       res.Label,
		SourceA:     members[0],
		SourceB:     members[len(members)-1],
	})
}

func (e *Engine) makeReport(c *call) (*change, error) {
	name, newName := c.args[0], c.args[1]
	s, err := e.sequence(name)
	if err != nil {
		return nil, err
	}
	lines := []string{
		"Report for " + name,
		fmt.Sprintf("Length: %d", s.Len()),
		fmt.Sprintf("GC: %.2f%%", sequence.GCContent(s.Residues)),
		"Bases: " + formatBaseCounts(s.Residues),
	}
	lines = append(lines, frameLines(s.Residues)...)
	return message("Stored report as "+newName+".", &workspace.Report{
		Name:        newName,
		Description: "Report for " + name,
		Lines:       lines,
	})
}

func (e *Engine) summarizeSequences(c *call) (*change, error) {
	seqs := e.ws.Sequences()
	if len(seqs) == 0 {
		return nil, invalid("No sequences are stored.")
	}
	residues := make([]string, len(seqs))
	for i, s := range seqs {
		residues[i] = s.Residues
	}

	summary, err := stats.FromSequences(residues)
	if err != nil {
		return nil, invalid(err.Error())
	}
	lines := summary.Lines()
	if hist, err := stats.NewGCHistogram(residues, 5); err == nil {
		lines = append(lines, "GC distribution:")
		lines = append(lines, hist.Lines()...)
	}
	return message(strings.Join(lines, "\n"), &workspace.Report{
		Name:        c.rest,
		Description: fmt.Sprintf("Summary of %d sequences", len(seqs)),
		Lines:       lines,
	})
}
