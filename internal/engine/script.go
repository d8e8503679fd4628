package engine

import "strings"

// ScriptLines returns the commands in a script. Blank lines, lines starting
// with '#' and "note " lines are skipped.
func ScriptLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(lowerASCII(line), "note ") {
			continue
		}
		out = append(out, line)
	}
	return out
}
