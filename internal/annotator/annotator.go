// Package annotator produces note annotations: an LLM-backed summarizer
// and tag suggester, plus local glossary and grammar scans. Annotation is
// best-effort; a failed call degrades to an empty result and never blocks
// saving a note.
package annotator

import "context"

// MinInputLength is the plain-text length below which no request is made.
const MinInputLength = 10

// TooShortSummary is the fixed response for content under MinInputLength.
const TooShortSummary = "Note is too short to summarize."

type Annotator interface {
	Summarize(ctx context.Context, content string) (string, error)
	SuggestTags(ctx context.Context, content string) ([]string, error)
}
