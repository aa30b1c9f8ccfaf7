package components

import (
	"regexp"
	"strings"
	"unicode"
)

// ansiEscapes matches CSI sequences; feed text occasionally carries color
// codes copied out of terminals.
var ansiEscapes = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// bidiOverrides are the Unicode directionality controls that can visually
// reorder text (the "gpj.exe" trick). Always stripped.
const bidiOverrides = "\u202a\u202b\u202c\u202d\u202e\u2066\u2067\u2068\u2069\u200e\u200f"

// SanitizeText strips ANSI escapes, bidi overrides, and control characters
// from untrusted feed text. Newlines and tabs survive; everything rendered
// comes through here before it reaches the terminal.
func SanitizeText(input string) string {
	if input == "" {
		return input
	}
	cleaned := ansiEscapes.ReplaceAllString(input, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case strings.ContainsRune(bidiOverrides, r):
			return -1
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, cleaned)
}

// SanitizeOneLine sanitizes and collapses whitespace runs to single spaces,
// for single-line slots like card titles and the query display.
func SanitizeOneLine(input string) string {
	return strings.Join(strings.Fields(SanitizeText(input)), " ")
}
