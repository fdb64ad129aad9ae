package models

// Token is one validated listing entry, ready for output.
type Token struct {
	Name     string  `json:"name"`
	PriceUSD float64 `json:"price_usd"`
	URL      string  `json:"url"`
}

// RawToken is a candidate row straight out of the extractor.
// Any field may be empty; the ranker decides what is fatal.
type RawToken struct {
	Name      string
	PriceText string
	URL       string
}
