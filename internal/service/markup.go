package service

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripMarkup returns the text content of an HTML fragment such as a scraped
// ingredient <li>, with entities decoded. Text without tags or entities is
// returned unchanged.
func StripMarkup(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
