package extractor

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// guessBaseURL picks the origin to resolve relative links against:
// the source hint when it is an absolute URL, then <base href>, then
// the canonical link, then the default listing URL.
func guessBaseURL(sourceHint string, doc *goquery.Document) string {
	candidates := make([]string, 0, 4)

	if sourceHint != "" {
		candidates = append(candidates, sourceHint)
	}
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		candidates = append(candidates, href)
	}
	if canon := canonicalHref(doc); canon != "" {
		candidates = append(candidates, canon)
	}
	candidates = append(candidates, DefaultListingURL)

	for _, cand := range candidates {
		u, err := url.Parse(strings.TrimSpace(cand))
		if err != nil || u.Scheme == "" || u.Host == "" {
			continue
		}
		return u.Scheme + "://" + u.Host
	}
	return DefaultListingURL
}

func canonicalHref(doc *goquery.Document) string {
	var href string
	doc.Find("link[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rel, _ := s.Attr("rel")
		if !strings.Contains(strings.ToLower(rel), "canonical") {
			return true
		}
		href, _ = s.Attr("href")
		return false
	})
	return href
}
