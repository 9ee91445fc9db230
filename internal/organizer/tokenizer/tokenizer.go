// Package tokenizer provides text tokenisation for the document organizer.
// It lower-cases input and splits it on non-word boundaries; term extraction
// additionally removes a fixed English stop-word set.
package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenize lower-cases text and splits it into maximal runs of word
// characters (letters, digits, underscore). Every other rune is a delimiter.
// Empty input yields an empty slice; no string can make it fail.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}
