package textutil

import (
	"regexp"
	"sort"
	"strings"
)

// ibanToken matches a Turkish IBAN: "TR", two check digits, twenty account
// digits, optionally broken into space-separated groups.
var ibanToken = regexp.MustCompile(`\bTR\d{2}(?:\s?\d){20}\b`)

// FindIBANs extracts every Turkish IBAN from text, normalized by stripping
// whitespace, de-duplicated and sorted for stable output.
func FindIBANs(text string) []string {
	seen := make(map[string]struct{})
	for _, raw := range ibanToken.FindAllString(text, -1) {
		normalized := strings.Join(strings.Fields(raw), "")
		seen[normalized] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for iban := range seen {
		out = append(out, iban)
	}
	sort.Strings(out)
	return out
}
