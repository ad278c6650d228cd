package message

import (
	"strings"
	"unicode"
)

// splitLines splits the message strictly on '\n'. Empty lines are kept,
// so a trailing newline yields a trailing empty line. '\r' is ordinary text.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// isBlank reports whether the line is empty or consists only of whitespace.
// The byte order mark counts as whitespace, the way chat clients trim it.
func isBlank(line string) bool {
	return trimSpace(line) == ""
}

// trimSpace trims Unicode whitespace and the byte order mark on both sides.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
