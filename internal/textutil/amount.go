package textutil

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// groupedAmount matches Turkish-grouped numerals: dot thousands groups with
// an optional comma decimal part, e.g. "45.678,90", "4.000", "500", "45,90".
var groupedAmount = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})*(?:,\d{1,2})?$|^\d+(?:,\d{1,2})?$`)

// genericAmount finds any numeric token followed by a lira marker. Used as
// the last-resort scan when no priority pattern fires.
var genericAmount = regexp.MustCompile(`(?i)(\d[\d.,]*)\s*(?:TL|TRY|₺)`)

// looseNumber finds any standalone Turkish-formatted numeric token.
var looseNumber = regexp.MustCompile(`\d{1,3}(?:\.\d{3})+(?:,\d{1,2})?|\d+,\d{1,2}|\d+`)

// ParseCurrency parses a Turkish-formatted currency token ("." thousands,
// "," decimals) into a float64 lira value. "45.678,90" -> 45678.90 and a
// bare "4.000" is four thousand, not four. Returns false for tokens that
// hold no valid finite non-negative number.
func ParseCurrency(token string) (float64, bool) {
	cleaned := strings.TrimSpace(token)
	cleaned = strings.TrimSuffix(cleaned, "₺")
	cleaned = strings.TrimSuffix(cleaned, "TL")
	cleaned = strings.TrimSuffix(cleaned, "TRY")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.Trim(cleaned, ".,")
	if cleaned == "" {
		return 0, false
	}

	var normalized string
	if groupedAmount.MatchString(cleaned) {
		normalized = strings.ReplaceAll(cleaned, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	} else {
		// Not in canonical grouped form; accept plain machine formats like
		// "45678.90" but nothing with mixed separators.
		if strings.Count(cleaned, ".") > 1 || strings.Contains(cleaned, ",") {
			return 0, false
		}
		normalized = cleaned
	}

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) || value < 0 {
		return 0, false
	}
	return value, true
}

// FindFirstAmount tries each pattern in priority order against text; the
// first syntactic match whose first capture group parses as a positive
// amount wins. When no pattern fires it falls back to a generic
// "<number> TL" scan over the whole text.
func FindFirstAmount(text string, patterns []*regexp.Regexp) (float64, bool) {
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			if v, ok := ParseCurrency(m[1]); ok && v > 0 {
				return v, true
			}
		}
	}
	for _, m := range genericAmount.FindAllStringSubmatch(text, -1) {
		if v, ok := ParseCurrency(m[1]); ok && v > 0 {
			return v, true
		}
	}
	return 0, false
}

// FindLooseAmount scans for any plausible amount up to max, taking the
// largest candidate. Used only after a block-indicator keyword was seen but
// the tight patterns extracted nothing; capped so case numbers and phone
// numbers are not mistaken for money. Date tokens are removed first so a
// year is never read as an amount.
func FindLooseAmount(text string, max float64) (float64, bool) {
	text = dateToken.ReplaceAllString(text, " ")
	var best float64
	for _, tok := range looseNumber.FindAllString(text, -1) {
		v, ok := ParseCurrency(tok)
		if !ok || v <= 0 || v > max {
			continue
		}
		if v > best {
			best = v
		}
	}
	return best, best > 0
}
