package annotator

import (
	"context"
	"strings"

	"notekeep/internal/richtext"
)

// categoryKeywords drives the offline tag heuristic: a note mentioning any
// keyword picks up the category as a tag.
var categoryKeywords = map[string][]string{
	"work":      {"project", "meeting", "deadline", "task", "report"},
	"personal":  {"family", "friend", "home", "birthday", "holiday"},
	"shopping":  {"buy", "purchase", "store", "shop", "price"},
	"education": {"study", "learn", "course", "book", "homework"},
	"travel":    {"trip", "flight", "hotel", "vacation", "booking"},
}

// KeywordAnnotator is the offline annotator used when no API key is
// configured: hashtags and keyword categories for tags, a truncated
// excerpt for the summary. No network, never fails.
type KeywordAnnotator struct {
	maxTags int
}

func NewKeywordAnnotator(maxTags int) *KeywordAnnotator {
	return &KeywordAnnotator{maxTags: maxTags}
}

func (a *KeywordAnnotator) Summarize(_ context.Context, content string) (string, error) {
	plain := richtext.PlainText(content)
	if len(strings.TrimSpace(plain)) < MinInputLength {
		return TooShortSummary, nil
	}
	return richtext.Preview(plain, richtext.DefaultPreviewLength), nil
}

func (a *KeywordAnnotator) SuggestTags(_ context.Context, content string) ([]string, error) {
	plain := richtext.PlainText(content)
	if len(strings.TrimSpace(plain)) < MinInputLength {
		return []string{}, nil
	}

	found := make(map[string]struct{})
	order := make([]string, 0)

	add := func(tag string) {
		if _, ok := found[tag]; ok {
			return
		}
		found[tag] = struct{}{}
		order = append(order, tag)
	}

	// Explicit hashtags win over heuristics.
	for _, word := range strings.Fields(plain) {
		if strings.HasPrefix(word, "#") {
			tag := strings.ToLower(strings.Trim(word, "#.,!?"))
			if tag != "" {
				add(tag)
			}
		}
	}

	lower := strings.ToLower(plain)
	for category, keywords := range categoryKeywords {
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				add(category)
				break
			}
		}
	}

	if a.maxTags > 0 && len(order) > a.maxTags {
		order = order[:a.maxTags]
	}
	return order, nil
}
