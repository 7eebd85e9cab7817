// Package normalize canonicalizes text before it is cut into trigrams.
//
// The same transform is applied to training corpora and to sentences at
// classification time: text is lower-cased and every rune that is not a basic
// Latin letter (a-z) or whitespace is removed.
package normalize

import (
	"strings"
	"unicode"
)

// Text lower-cases s and keeps only the runes a-z and whitespace.
// Empty input returns "".
func Text(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = unicode.ToLower(r)
		if Keep(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Keep reports whether r belongs to the normalized alphabet.
func Keep(r rune) bool {
	return (r >= 'a' && r <= 'z') || unicode.IsSpace(r)
}
