// Package textnorm holds the string normalizations shared by the catalog
// normalizer and the topic matcher.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Collapse trims s and replaces every run of Unicode whitespace with a
// single ASCII space.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Key canonicalizes a sub-level key: NFC composition followed by
// whitespace collapse, so keys that only differ in spacing or in composed
// versus decomposed accents compare equal.
func Key(s string) string {
	return Collapse(norm.NFC.String(s))
}

// Fold lowercases s, strips diacritics and collapses whitespace.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}
	return Collapse(out)
}

// Words splits folded text into letter/digit runs.
func Words(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
