// Package textfold compares user-typed text the way a Spanish-speaking user
// expects: case and accents are ignored, so "cafe" finds "Café".
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips combining marks. "ñ" becomes "n".
func Fold(s string) string {
	// Transformers keep state, so each call gets its own chain.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Contains reports whether needle occurs in haystack after folding both.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
