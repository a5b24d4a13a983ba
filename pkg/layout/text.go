package layout

import (
	"strings"
	"unicode/utf8"
)

const (
	openQuote  = '「'
	closeQuote = '」'
)

// headBrackets are opening marks that replace the indent of a line they start.
var headBrackets = map[rune]bool{'「': true, '『': true, '【': true, '（': true}

// IsUtterance reports whether s opens a line of quoted dialogue: it starts with
// 「 and either ends with 」 or contains no 」 at all. A quote closed in the
// middle of s is an inline quotation, not a dialogue opening.
func IsUtterance(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	if first != openQuote {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(s)
	if last == closeQuote {
		return true
	}
	return !strings.ContainsRune(s, closeQuote)
}

// FixHeadBracket drops the indent marker from lines whose first character after
// it is an opening bracket. The input slice is modified and returned.
func FixHeadBracket(lines []string) []string {
	for i, line := range lines {
		rest, ok := strings.CutPrefix(line, IndentMarker)
		if !ok {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(rest); headBrackets[r] {
			lines[i] = rest
		}
	}
	return lines
}

// isTrivial reports a line accumulator holding no text yet.
func isTrivial(s string) bool {
	return s == "" || s == IndentMarker
}
