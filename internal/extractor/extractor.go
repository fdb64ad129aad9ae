package extractor

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"tokenscan/pkg/models"
)

// DefaultListingURL is the token listing page this extractor is tuned
// against. It also serves as the last-resort base for relative links.
const DefaultListingURL = "https://etherscan.io/tokens"

// Site coupling lives here: the anchor shapes that identify a token
// detail link, and the attributes that carry a ticker symbol. Markup
// drift on the target site should only ever touch these.
const tokenAnchorSelector = `a[href*="/token/"], a[href*="/tokens/"], a[href*="/tokenholdings"]`

var symbolAttrs = []string{"data-symbol", "data-coin-symbol", "data-symbol-short"}

// Extract walks the document and returns one raw candidate per listing
// row, in document order. Fields it cannot locate stay empty; nothing
// here decides whether a row is usable.
func Extract(htmlText, sourceHint string) ([]models.RawToken, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}

	base := guessBaseURL(sourceHint, doc)

	raw := extractByAnchors(doc, base)
	if len(raw) == 0 {
		// No token-shaped anchors at all: fall back to scanning
		// plain table rows for anything priced.
		raw = extractByRows(doc, base)
	}
	return raw, nil
}

func extractByAnchors(doc *goquery.Document, base string) []models.RawToken {
	var raw []models.RawToken
	seenRows := make(map[*html.Node]bool)

	doc.Find(tokenAnchorSelector).Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}

		row := enclosingRow(a)
		anchors := a
		if row != nil {
			// Several anchors can point into the same listing row
			// (icon, name, holdings). One candidate per row, with the
			// name taken from whichever anchor carries it.
			node := row.Nodes[0]
			if seenRows[node] {
				return
			}
			seenRows[node] = true
			anchors = row.Find(tokenAnchorSelector)
		}

		var pieces []string
		if row != nil {
			pieces = append(pieces, nodeText(row))
		}
		if text := strings.TrimSpace(a.Text()); text != "" {
			pieces = append(pieces, text)
		}

		name := symbolAttr(row, anchors)
		if name == "" {
			name = firstText(anchors)
		}

		raw = append(raw, models.RawToken{
			Name:      name,
			PriceText: findPrice(strings.Join(pieces, " | ")),
			URL:       resolveURL(base, href),
		})
	})

	return raw
}

func extractByRows(doc *goquery.Document, base string) []models.RawToken {
	var raw []models.RawToken

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		price := findPrice(nodeText(row))
		if price == "" {
			return
		}

		anchor := row.Find("a[href]").First()
		if anchor.Length() == 0 {
			return
		}
		href := strings.TrimSpace(anchor.AttrOr("href", ""))
		if href == "" {
			return
		}

		name := symbolAttr(nil, anchor)
		if name == "" {
			name = strings.TrimSpace(anchor.Text())
		}

		raw = append(raw, models.RawToken{
			Name:      name,
			PriceText: price,
			URL:       resolveURL(base, href),
		})
	})

	return raw
}

// enclosingRow finds the listing row an anchor belongs to: a <tr> when
// the listing is a table, otherwise the nearest div/li acting as a row.
func enclosingRow(a *goquery.Selection) *goquery.Selection {
	row := a.Closest("tr")
	if row.Length() == 0 {
		row = a.ParentsFiltered(`div, li, [role="row"]`).First()
	}
	if row.Length() == 0 {
		return nil
	}
	return row
}

// symbolAttr pulls a ticker symbol off the row or any of its anchors,
// checking the data attributes the target site uses for it.
func symbolAttr(row, anchors *goquery.Selection) string {
	for _, attr := range symbolAttrs {
		if row != nil {
			if v := strings.TrimSpace(row.AttrOr(attr, "")); v != "" {
				return v
			}
		}
		var found string
		anchors.EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if v := strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
				found = v
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}

// firstText returns the display text of the first anchor that has any.
func firstText(anchors *goquery.Selection) string {
	var text string
	anchors.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if t := strings.TrimSpace(s.Text()); t != "" {
			text = t
			return false
		}
		return true
	})
	return text
}

// nodeText flattens a selection's text with single-space separators,
// matching how a browser would display the row.
func nodeText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// resolveURL makes href absolute against the base (e.g. "/token/0xab"
// -> "https://etherscan.io/token/0xab"). Absolute hrefs pass through.
func resolveURL(base, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	baseURL, err := url.Parse(strings.TrimRight(base, "/") + "/")
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(u).String()
}
