// Package textutil has small helpers for laying out terminal text.
package textutil

import "strings"

// Wrap splits s into lines no longer than width, breaking on whitespace. Words longer than width
// are kept whole on their own line. It always returns at least one line.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
