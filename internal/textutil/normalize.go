package textutil

import (
	"strings"
	"unicode"
)

// asciiFold maps Turkish-specific letters onto their ASCII neighbours so
// keyword rules can be written once in folded form. Applied after Turkish
// lowercasing, so only lowercase forms need entries.
var asciiFold = strings.NewReplacer(
	"ı", "i",
	"ğ", "g",
	"ü", "u",
	"ş", "s",
	"ö", "o",
	"ç", "c",
	"â", "a",
	"î", "i",
	"û", "u",
)

// Normalize lowercases text with Turkish casing rules (İ->i, I->ı), folds
// Turkish letters to ASCII and collapses runs of whitespace to single
// spaces. All heuristic matching in the engines runs on this form.
func Normalize(s string) string {
	lowered := strings.ToLowerSpecial(unicode.TurkishCase, s)
	folded := asciiFold.Replace(lowered)
	return strings.Join(strings.Fields(folded), " ")
}

// ContainsAny reports whether the normalized text contains at least one of
// the given normalized keywords.
func ContainsAny(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether the normalized text contains every keyword.
// An empty keyword list matches.
func ContainsAll(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && !strings.Contains(normalized, kw) {
			return false
		}
	}
	return true
}
