package extractor

import (
	"regexp"
	"strings"
)

// pricePattern matches a dollar amount with optional thousands
// separators: "1,234.50", "0.99", "$12".
var pricePattern = regexp.MustCompile(`\$?\s*([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]+)?|[0-9]+(?:\.[0-9]+)?)`)

// findPrice returns the first number in text with a dollar sign in its
// immediate neighborhood, commas intact. Row text is full of numbers
// that are not prices (holder counts, percentages), so a bare number
// without a nearby "$" is never trusted. Empty string if nothing
// qualifies.
func findPrice(text string) string {
	if text == "" {
		return ""
	}

	for _, m := range pricePattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]

		lo := start - 4
		if lo < 0 {
			lo = 0
		}
		hi := end + 1
		if hi > len(text) {
			hi = len(text)
		}

		if !strings.Contains(text[lo:hi], "$") {
			continue
		}
		return text[m[2]:m[3]]
	}
	return ""
}
