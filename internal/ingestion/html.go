package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// looksLikeHTML is a cheap check for markup in a scraped description.
func looksLikeHTML(s string) bool {
	return strings.Contains(s, "</") || strings.Contains(s, "/>") ||
		strings.Contains(s, "<br") || strings.Contains(s, "<p") ||
		strings.Contains(s, "<div")
}

// CleanDescription normalizes a scraped job description. HTML fragments are
// reduced to their text with script/style noise removed; plain text passes
// straight to whitespace normalization.
func CleanDescription(description string) string {
	if description == "" {
		return ""
	}
	if !looksLikeHTML(description) {
		return CleanText(description)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		// Unparseable markup: fall back to the raw text.
		return CleanText(description)
	}

	doc.Find("script, style, noscript").Remove()

	// Keep block boundaries as line breaks so the text cleaner can collapse
	// them sensibly.
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li, tr, h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return CleanText(doc.Text())
}
