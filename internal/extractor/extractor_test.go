package extractor

import (
	"testing"
)

func TestExtract_ListingTable(t *testing.T) {
	rawHTML := `
		<!DOCTYPE html>
		<html>
		<head><title>Token Tracker</title></head>
		<body>
			<table>
				<tr>
					<td><a href="/token/0xaaa" data-symbol="AAA">Alpha (AAA)</a></td>
					<td>$1,234.50</td>
					<td>1,000,000 holders</td>
				</tr>
				<tr>
					<td><a href="/token/0xbbb">Beta (BBB)</a></td>
					<td>$0.99</td>
					<td>42 holders</td>
				</tr>
				<tr>
					<td><a href="/token/0xccc">Gamma (CCC)</a></td>
					<td>$1,234.50</td>
					<td>7 holders</td>
				</tr>
			</table>
		</body>
		</html>
	`

	raw, err := Extract(rawHTML, "https://etherscan.io/tokens")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(raw) != 3 {
		t.Fatalf("Record count mismatch. Expected 3, got %d", len(raw))
	}

	// Symbol attribute wins over the anchor text.
	if raw[0].Name != "AAA" {
		t.Errorf("Name mismatch. Expected %q, got %q", "AAA", raw[0].Name)
	}
	if raw[1].Name != "Beta (BBB)" {
		t.Errorf("Name mismatch. Expected %q, got %q", "Beta (BBB)", raw[1].Name)
	}

	// Prices come out raw, commas intact.
	if raw[0].PriceText != "1,234.50" {
		t.Errorf("PriceText mismatch. Expected %q, got %q", "1,234.50", raw[0].PriceText)
	}
	if raw[1].PriceText != "0.99" {
		t.Errorf("PriceText mismatch. Expected %q, got %q", "0.99", raw[1].PriceText)
	}

	// Relative hrefs resolve against the source hint.
	if raw[0].URL != "https://etherscan.io/token/0xaaa" {
		t.Errorf("URL mismatch. Expected %q, got %q", "https://etherscan.io/token/0xaaa", raw[0].URL)
	}
}

func TestExtract_OneRecordPerRow(t *testing.T) {
	// Icon link and name link point into the same row.
	rawHTML := `
		<table>
			<tr>
				<td>
					<a href="/token/0xaaa"><img src="icon.png"></a>
					<a href="/token/0xaaa" data-symbol="AAA">Alpha</a>
				</td>
				<td>$5.00</td>
			</tr>
		</table>
	`

	raw, err := Extract(rawHTML, "https://etherscan.io/tokens")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("Expected one record per row, got %d", len(raw))
	}
	// The icon anchor has no text; the name still comes from the
	// sibling anchor that carries it.
	if raw[0].Name != "AAA" {
		t.Errorf("Name mismatch. Expected %q, got %q", "AAA", raw[0].Name)
	}
}

func TestExtract_MissingPriceStaysRaw(t *testing.T) {
	rawHTML := `
		<table>
			<tr>
				<td><a href="/token/0xaaa">Alpha</a></td>
				<td>no price listed</td>
			</tr>
		</table>
	`

	raw, err := Extract(rawHTML, "https://etherscan.io/tokens")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("Expected the row to still yield a record, got %d", len(raw))
	}
	if raw[0].PriceText != "" {
		t.Errorf("Expected empty PriceText, got %q", raw[0].PriceText)
	}
}

func TestExtract_RowFallback(t *testing.T) {
	// No token-shaped anchors anywhere: the extractor scans plain
	// table rows instead.
	rawHTML := `
		<table>
			<tr>
				<td><a href="/coin/alpha">Alpha</a></td>
				<td>$3.25</td>
			</tr>
			<tr>
				<td>no anchor here</td>
				<td>$9.99</td>
			</tr>
		</table>
	`

	raw, err := Extract(rawHTML, "https://example.com/coins")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("Expected 1 record from the fallback pass, got %d", len(raw))
	}
	if raw[0].Name != "Alpha" {
		t.Errorf("Name mismatch. Expected %q, got %q", "Alpha", raw[0].Name)
	}
	if raw[0].PriceText != "3.25" {
		t.Errorf("PriceText mismatch. Expected %q, got %q", "3.25", raw[0].PriceText)
	}
	if raw[0].URL != "https://example.com/coin/alpha" {
		t.Errorf("URL mismatch. Expected %q, got %q", "https://example.com/coin/alpha", raw[0].URL)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	for _, rawHTML := range []string{"", "<html><body><p>nothing here</p></body></html>"} {
		raw, err := Extract(rawHTML, "")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(raw) != 0 {
			t.Errorf("Expected no records, got %d", len(raw))
		}
	}
}

func TestExtract_AbsoluteHrefPassesThrough(t *testing.T) {
	rawHTML := `
		<table>
			<tr>
				<td><a href="https://other.example/token/0xddd">Delta</a></td>
				<td>$7.00</td>
			</tr>
		</table>
	`

	raw, err := Extract(rawHTML, "https://etherscan.io/tokens")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(raw))
	}
	if raw[0].URL != "https://other.example/token/0xddd" {
		t.Errorf("URL mismatch. Expected absolute href untouched, got %q", raw[0].URL)
	}
}

func TestGuessBaseURL(t *testing.T) {
	cases := []struct {
		name string
		hint string
		html string
		want string
	}{
		{
			name: "absolute hint wins",
			hint: "https://scanner.example/tokens",
			html: `<html><head><base href="https://base.example/"></head></html>`,
			want: "https://scanner.example",
		},
		{
			name: "file path hint falls back to base tag",
			hint: "testdata/tokens.html",
			html: `<html><head><base href="https://base.example/x/y"></head></html>`,
			want: "https://base.example",
		},
		{
			name: "canonical link",
			hint: "",
			html: `<html><head><link rel="Canonical" href="https://canon.example/tokens"></head></html>`,
			want: "https://canon.example",
		},
		{
			name: "default when nothing usable",
			hint: "",
			html: `<html></html>`,
			want: "https://etherscan.io",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustParse(t, tc.html)
			got := guessBaseURL(tc.hint, doc)
			if got != tc.want {
				t.Errorf("guessBaseURL mismatch.\nExpected: %q\nGot:      %q", tc.want, got)
			}
		})
	}
}
