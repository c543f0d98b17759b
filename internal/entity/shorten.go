package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// shorten cuts s to at most limit characters. When a cut happens the ending is
// appended and counted in the limit. With wordSafe the cut never splits a word
// unless the kept prefix is a single word.
func shorten(s string, limit int, ending string, wordSafe bool) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	keep := limit - utf8.RuneCountInString(ending)
	if keep <= 0 {
		return ""
	}

	runes := []rune(s)
	cut := runes[:keep]

	if wordSafe && !unicode.IsSpace(runes[keep]) {
		if i := lastSpace(cut); i > 0 {
			cut = cut[:i]
		}
	}

	return strings.TrimRightFunc(string(cut), unicode.IsSpace) + ending
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}

	return -1
}
