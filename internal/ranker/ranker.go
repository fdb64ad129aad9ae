package ranker

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"tokenscan/pkg/models"
)

var priceCleaner = strings.NewReplacer("$", "", ",", "")

// Rank validates raw candidates, orders survivors by price descending,
// and caps the result at limit. Rows missing a name or a parsable
// non-negative price are dropped silently; the sort is stable, so ties
// keep their document order. Pure function, zero survivors is fine.
func Rank(raw []models.RawToken, limit int) []models.Token {
	tokens := make([]models.Token, 0, len(raw))

	for _, r := range raw {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		price, ok := parsePrice(r.PriceText)
		if !ok {
			continue
		}
		tokens = append(tokens, models.Token{
			Name:     r.Name,
			PriceUSD: price,
			URL:      r.URL,
		})
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].PriceUSD > tokens[j].PriceUSD
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(tokens) {
		tokens = tokens[:limit]
	}
	return tokens
}

// parsePrice coerces a raw price fragment ("$1,234.50") into a float.
func parsePrice(text string) (float64, bool) {
	cleaned := strings.TrimSpace(priceCleaner.Replace(text))
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
