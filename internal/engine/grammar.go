package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/aria-lang/biospeak-go/internal/sequence"
)

// connective is a keyword that separates operands. Words are lower case and
// padded with spaces.
type connective struct {
	word string
	last bool
}

var (
	kwAs         = connective{word: " as ", last: true}
	kwToFile     = connective{word: " to file ", last: true}
	kwToLast     = connective{word: " to ", last: true}
	kwWith       = connective{word: " with "}
	kwUsing      = connective{word: " using ", last: true}
	kwFrom       = connective{word: " from "}
	kwTo         = connective{word: " to "}
	kwOnColumn   = connective{word: " on column "}
	kwEquals     = connective{word: " equals "}
	kwKeepColumn = connective{word: " keep column "}
	kwIn         = connective{word: " in "}
	kwIntoChunks = connective{word: " into chunks of "}
)

// rule is one row of the command table. phrase is matched case-insensitively
// against the start of the command, or against all of it when exact is set.
// The text after the phrase is cut at each connective in order.
type rule struct {
	verb     string
	phrase   string
	exact    bool
	splits   []connective
	template string
	run      func(e *Engine, c *call) (*change, error)
}

// call carries the parsed operands of one command.
type call struct {
	ctx      context.Context
	rest     string
	args     []string
	template string
}

// rules is ordered most specific first: no phrase may be a prefix of a
// phrase that follows it.
var rules []rule

func init() {
	rules = buildRules()
}

func buildRules() []rule {
	rs := []rule{}
	for _, word := range []string{"exit", "leave", "quit", "close"} {
		rs = append(rs, rule{verb: "exit", phrase: word, exact: true, template: word, run: (*Engine).exit})
	}

	rs = append(rs,
		rule{verb: "help", phrase: "help", exact: true, template: "help", run: (*Engine).help},
		rule{verb: "list", phrase: "list data", exact: true, template: "list data", run: (*Engine).listData},
		rule{verb: "list", phrase: "list sequences", exact: true, template: "list sequences", run: (*Engine).listSequences},
		rule{verb: "list", phrase: "list tables", exact: true, template: "list tables", run: (*Engine).listTables},
		rule{verb: "list", phrase: "list alignments", exact: true, template: "list alignments", run: (*Engine).listAlignments},
		rule{verb: "list", phrase: "list reports", exact: true, template: "list reports", run: (*Engine).listReports},
		rule{verb: "list", phrase: "list integrations", exact: true, template: "list integrations", run: (*Engine).listIntegrations},
		rule{verb: "clear", phrase: "clear workspace", exact: true, template: "clear workspace", run: (*Engine).clearWorkspace},
		rule{verb: "filemap", phrase: "make file map", exact: true, template: "make file map", run: (*Engine).makeFileMap},
		rule{verb: "verify", phrase: "verify project", exact: true, template: "verify project", run: (*Engine).verifyProject},
	)

	for _, alphabet := range []sequence.Alphabet{sequence.DNA, sequence.RNA, sequence.Protein} {
		rs = append(rs,
			rule{
				verb: "load", phrase: fmt.Sprintf("load %s file ", alphabet), splits: []connective{kwAs},
				template: fmt.Sprintf("load %s file PATH as NAME", alphabet),
				run:      func(e *Engine, c *call) (*change, error) { return e.loadFASTA(c, alphabet) },
			},
			rule{
				verb: "load", phrase: fmt.Sprintf("load %s text ", alphabet), splits: []connective{kwAs},
				template: fmt.Sprintf("load %s text SEQUENCE as NAME", alphabet),
				run:      func(e *Engine, c *call) (*change, error) { return e.loadText(c, alphabet) },
			},
		)
	}

	rs = append(rs,
		rule{verb: "load", phrase: "load table file ", splits: []connective{kwAs}, template: "load table file PATH as NAME", run: (*Engine).loadTable},
		rule{verb: "load", phrase: "load fastq file ", splits: []connective{kwAs}, template: "load fastq file PATH as NAME", run: (*Engine).loadFASTQ},
		rule{verb: "load", phrase: "load genbank file ", splits: []connective{kwAs}, template: "load genbank file PATH as NAME", run: (*Engine).loadGenBank},
		rule{verb: "load", phrase: "load gff file ", splits: []connective{kwAs}, template: "load gff file PATH as NAME", run: (*Engine).loadGFF},
		rule{verb: "load", phrase: "load vcf file ", splits: []connective{kwAs}, template: "load vcf file PATH as NAME", run: (*Engine).loadVCF},
		rule{verb: "load", phrase: "load bam file ", splits: []connective{kwAs}, template: "load bam file PATH as NAME", run: (*Engine).loadBAM},
		rule{verb: "load", phrase: "load json file ", splits: []connective{kwAs}, template: "load json file PATH as NAME", run: (*Engine).loadJSON},
		rule{verb: "load", phrase: "load notes file ", splits: []connective{kwAs}, template: "load notes file PATH as NAME", run: (*Engine).loadNotes},

		rule{verb: "save", phrase: "save ", splits: []connective{kwToFile}, template: "save NAME to file PATH", run: (*Engine).save},
		rule{verb: "show", phrase: "show ", template: "show NAME", run: (*Engine).show},
		rule{verb: "describe", phrase: "describe ", template: "describe NAME", run: (*Engine).describe},

		rule{verb: "count", phrase: "count gc of ", template: "count gc of NAME", run: (*Engine).countGC},
		rule{verb: "count", phrase: "count bases of ", template: "count bases of NAME", run: (*Engine).countBases},
		rule{verb: "count", phrase: "count codons of ", template: "count codons of NAME", run: (*Engine).countCodons},

		rule{verb: "find", phrase: "find motif ", splits: []connective{kwIn}, template: "find motif MOTIF in NAME", run: (*Engine).findMotif},
		rule{verb: "find", phrase: "find orfs in ", template: "find orfs in NAME as NEW [with minimum N]", run: (*Engine).findORFs},

		rule{verb: "slice", phrase: "slice ", splits: []connective{kwFrom, kwTo, kwAs}, template: "slice NAME from START to END as NEW", run: (*Engine).slice},
		rule{verb: "join", phrase: "join table ", splits: []connective{kwWith, kwOnColumn, kwAs}, template: "join table FIRST with SECOND on column HEADER as NEW", run: (*Engine).joinTables},
		rule{verb: "join", phrase: "join ", splits: []connective{kwWith, kwAs}, template: "join FIRST with SECOND as NEW", run: (*Engine).join},
		rule{verb: "split", phrase: "split ", splits: []connective{kwIntoChunks, kwAs}, template: "split NAME into chunks of SIZE as NEW", run: (*Engine).split},
		rule{verb: "compare", phrase: "compare ", splits: []connective{kwWith}, template: "compare FIRST with SECOND", run: (*Engine).compare},

		rule{verb: "transcribe", phrase: "transcribe ", splits: []connective{kwAs}, template: "transcribe NAME as NEW", run: (*Engine).transcribe},
		rule{verb: "translate", phrase: "translate frames of ", splits: []connective{kwAs}, template: "translate frames of NAME as NEW", run: (*Engine).translateFrames},
		rule{verb: "translate", phrase: "translate ", splits: []connective{kwAs}, template: "translate NAME as NEW", run: (*Engine).translate},
		rule{verb: "reverse", phrase: "reverse complement ", splits: []connective{kwAs}, template: "reverse complement NAME as NEW", run: (*Engine).reverseComplement},
		rule{verb: "reverse", phrase: "reverse ", splits: []connective{kwAs}, template: "reverse NAME as NEW", run: (*Engine).reverse},
		rule{verb: "complement", phrase: "complement ", splits: []connective{kwAs}, template: "complement NAME as NEW", run: (*Engine).complement},

		rule{verb: "align", phrase: "align group ", splits: []connective{kwAs}, template: "align group NAME, NAME as NEW", run: (*Engine).alignGroup},
		rule{verb: "align", phrase: "align ", splits: []connective{kwWith, kwAs, kwUsing}, template: "align FIRST with SECOND as NAME using global|local", run: (*Engine).align},

		rule{verb: "report", phrase: "make report for ", splits: []connective{kwAs}, template: "make report for NAME as NEW", run: (*Engine).makeReport},
		rule{verb: "report", phrase: "write report of ", splits: []connective{kwToFile}, template: "write report of NAME to file PATH", run: (*Engine).writeReport},

		rule{verb: "table", phrase: "filter table ", splits: []connective{kwKeepColumn, kwEquals, kwAs}, template: "filter table NAME keep column HEADER equals VALUE as NEW", run: (*Engine).filterTable},
		rule{verb: "table", phrase: "pick columns ", splits: []connective{kwFrom, kwAs}, template: "pick columns COL1 COL2 from NAME as NEW", run: (*Engine).pickColumns},
		rule{verb: "table", phrase: "analyze table ", template: "analyze table NAME", run: (*Engine).analyzeTable},

		rule{verb: "export", phrase: "export sequences to ", template: "export sequences to PATH", run: (*Engine).exportSequences},
		rule{verb: "export", phrase: "export table ", splits: []connective{kwToLast}, template: "export table NAME to PATH", run: (*Engine).exportTable},
		rule{verb: "plot", phrase: "plot sequences ", template: "plot sequences NAME [to file PATH]", run: (*Engine).plotSequences},
		rule{verb: "summarize", phrase: "summarize sequences as ", template: "summarize sequences as NAME", run: (*Engine).summarizeSequences},
	)
	return rs
}

// match returns the first rule that accepts text, plus the text after its phrase.
func match(text string) (rule, string, bool) {
	lower := lowerASCII(text)
	for _, r := range rules {
		if r.exact {
			if lower == r.phrase {
				return r, "", true
			}
			continue
		}
		if strings.HasPrefix(lower, r.phrase) {
			return r, text[len(r.phrase):], true
		}
	}
	return rule{}, "", false
}

// splitOperands cuts rest at each connective in turn. Every operand must be
// non-empty.
func splitOperands(rest string, splits []connective, template string) ([]string, error) {
	args := make([]string, 0, len(splits)+1)
	for _, c := range splits {
		before, after, ok := cut(rest, c)
		if !ok {
			return nil, malformed(template)
		}
		args = append(args, before)
		rest = after
	}
	args = append(args, strings.TrimSpace(rest))

	for _, a := range args {
		if a == "" {
			return nil, malformed(template)
		}
	}
	return args, nil
}

// cut splits text around c, matching case-insensitively. Both sides are
// trimmed.
func cut(text string, c connective) (string, string, bool) {
	lower := lowerASCII(text)
	var idx int
	if c.last {
		idx = strings.LastIndex(lower, c.word)
	} else {
		idx = strings.Index(lower, c.word)
	}
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(c.word):]), true
}

// lowerASCII lower-cases ASCII letters only, so byte offsets in the result
// are valid in the input.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func unknownCommand(text string) error {
	first := strings.Fields(lowerASCII(text))[0]

	var hints []string
	seen := map[string]bool{}
	for _, r := range rules {
		if strings.Fields(r.phrase)[0] != first || seen[r.template] {
			continue
		}
		seen[r.template] = true
		hints = append(hints, r.template)
	}
	if len(hints) == 0 {
		return newError(MalformedCommand, "Command not understood. Say help to list every command.")
	}
	return newError(MalformedCommand, "Command not understood. Try: "+strings.Join(hints, "; ")+".")
}

// Templates returns every command template in table order.
func Templates() []string {
	out := make([]string, 0, len(rules))
	seen := map[string]bool{}
	for _, r := range rules {
		if !seen[r.template] {
			seen[r.template] = true
			out = append(out, r.template)
		}
	}
	return out
}
