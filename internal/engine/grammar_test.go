package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleOrder(t *testing.T) {
	for i, earlier := range rules {
		assert.Equal(t, strings.ToLower(earlier.phrase), earlier.phrase, "phrases are lower case")
		if earlier.exact {
			continue
		}
		for _, later := range rules[i+1:] {
			assert.False(t, strings.HasPrefix(later.phrase, earlier.phrase),
				"%q would shadow %q", earlier.phrase, later.phrase)
		}
	}
}

func TestRulesHaveHandlers(t *testing.T) {
	for _, r := range rules {
		assert.NotNil(t, r.run, r.phrase)
		assert.NotEmpty(t, r.template, r.phrase)
		assert.NotEmpty(t, r.verb, r.phrase)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		text   string
		phrase string
		rest   string
	}{
		{"translate frames of s as f", "translate frames of ", "s as f"},
		{"TRANSLATE s as p", "translate ", "s as p"},
		{"join table a with b on column id as c", "join table ", "a with b on column id as c"},
		{"join a with b as c", "join ", "a with b as c"},
		{"align group a, b as g", "align group ", "a, b as g"},
		{"Reverse Complement s as rc", "reverse complement ", "s as rc"},
		{"List Data", "list data", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r, rest, ok := match(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.phrase, r.phrase)
			assert.Equal(t, tt.rest, rest)
		})
	}

	_, _, ok := match("list data now")
	assert.False(t, ok, "exact phrases do not match as prefixes")
}

func TestSplitOperands(t *testing.T) {
	tests := []struct {
		name   string
		rest   string
		splits []connective
		want   []string
		err    bool
	}{
		{"last as", "ACG as TGA as x", []connective{kwAs}, []string{"ACG as TGA", "x"}, false},
		{"ordered", "s from 1 to 4 as piece", []connective{kwFrom, kwTo, kwAs}, []string{"s", "1", "4", "piece"}, false},
		{"case", "a WITH b AS c", []connective{kwWith, kwAs}, []string{"a", "b", "c"}, false},
		{"to file last", "r to file a to file out.txt", []connective{kwToFile}, []string{"r to file a", "out.txt"}, false},
		{"missing", "a b", []connective{kwAs}, nil, true},
		{"empty operand", "a as ", []connective{kwAs}, nil, true},
		{"no splits", "name", nil, []string{"name"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitOperands(tt.rest, tt.splits, "template")
			if tt.err {
				kind, ok := KindOf(err)
				require.True(t, ok)
				assert.Equal(t, MalformedCommand, kind)
				assert.Equal(t, "Please say: template.", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLowerASCIIKeepsOffsets(t *testing.T) {
	in := "ÄBC as Δx"
	out := lowerASCII(in)
	assert.Len(t, out, len(in))
	assert.Equal(t, "Äbc as Δx", out)
}

func TestScriptLines(t *testing.T) {
	script := "# demo\n\nload dna text ACGT as s\nNote this is ignored\n  count gc of s  \n"
	assert.Equal(t, []string{"load dna text ACGT as s", "count gc of s"}, ScriptLines(script))
}

func TestTemplatesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, tmpl := range Templates() {
		assert.False(t, seen[tmpl], tmpl)
		seen[tmpl] = true
	}
	assert.Contains(t, seen, "align FIRST with SECOND as NAME using global|local")
}
