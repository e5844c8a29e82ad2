package commands

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks so "vitalità" and "vitalita"
// compare equal.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldName normalizes a name for matching: lowercase, accents removed.
func foldName(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// nameEquals compares two names ignoring case and accents.
func nameEquals(a, b string) bool {
	return foldName(a) == foldName(b)
}

// nameContains reports whether name contains the fragment, ignoring
// case and accents.
func nameContains(name, fragment string) bool {
	return strings.Contains(foldName(name), foldName(fragment))
}
