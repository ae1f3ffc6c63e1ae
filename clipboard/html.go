package clipboard

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every tag and attribute, leaving plain text.
var textPolicy = bluemonday.StrictPolicy()

// extractImageURL returns the src of the first <img> in an HTML clipboard
// payload, empty when there is none or the payload does not parse.
func extractImageURL(payload string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(payload))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") && !strings.HasPrefix(src, "data:") {
		return ""
	}
	return src
}

// extractText sanitizes an HTML clipboard payload down to plain text.
func extractText(payload string) string {
	sanitized := textPolicy.Sanitize(payload)
	return strings.TrimSpace(html.UnescapeString(sanitized))
}
