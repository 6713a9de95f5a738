package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"tags stripped", "<p>Hello <strong>world</strong></p>", "Hello world"},
		{"entities resolved", "<p>Fish &amp; chips</p>", "Fish & chips"},
		{"plain passthrough", "no markup here", "no markup here"},
		{"empty", "", ""},
		{"only markup", "<p></p><ul></ul>", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PlainText(tc.content))
		})
	}
}

func TestPreview_Truncates(t *testing.T) {
	long := "<p>" + strings.Repeat("a", 150) + "</p>"

	preview := Preview(long, 100)

	assert.Len(t, preview, 103) // 100 chars + ellipsis
	assert.True(t, strings.HasSuffix(preview, "..."))
}

func TestPreview_ShortContentUntouched(t *testing.T) {
	assert.Equal(t, "short note", Preview("<p>short note</p>", 100))
}

func TestPreview_DefaultLength(t *testing.T) {
	long := strings.Repeat("b", 200)

	assert.Len(t, Preview(long, 0), DefaultPreviewLength+3)
}
