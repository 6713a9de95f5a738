// Package richtext derives searchable plain text from the rich HTML markup
// stored in note content. The store treats content as opaque; only search,
// previews and AI input need the stripped form.
package richtext

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const DefaultPreviewLength = 100

var stripPolicy = bluemonday.StrictPolicy()

// PlainText removes all markup and resolves entities.
func PlainText(content string) string {
	stripped := stripPolicy.Sanitize(content)
	return strings.TrimSpace(html.UnescapeString(stripped))
}

// Preview returns a length-capped plain-text excerpt. Captured before
// encryption so encrypted notes still show something meaningful in lists.
func Preview(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultPreviewLength
	}
	text := PlainText(content)
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}
