// Package source loads and prepares the text to type.
package source

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const tabSpaces = "    "

var unrepresentable = runes.Predicate(func(r rune) bool {
	_, ok := charmap.ISO8859_1.EncodeRune(r)
	return !ok
})

// Normalize drops runes outside ISO-8859-1, converts CRLF line endings and
// expands tabs to four spaces.
func Normalize(text string) string {
	out, _, err := transform.String(runes.Remove(unrepresentable), text)
	if err != nil {
		out = removeSlow(text)
	}
	out = strings.ReplaceAll(out, "\r\n", "\n")
	return strings.ReplaceAll(out, "\t", tabSpaces)
}

func removeSlow(text string) string {
	var b strings.Builder
	for _, r := range text {
		if !unrepresentable.Contains(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
