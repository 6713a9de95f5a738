package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultTitle = "Untitled Note"

type Note struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	PlainText     string         `json:"plainText"`
	IsPinned      bool           `json:"isPinned"`
	IsEncrypted   bool           `json:"isEncrypted"`
	Tags          []string       `json:"tags"`
	Summary       string         `json:"summary,omitempty"`
	GlossaryTerms []GlossaryTerm `json:"glossaryTerms,omitempty"`
	GrammarIssues []GrammarIssue `json:"grammarIssues,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func NewNote(title, content, plainText string) *Note {
	now := time.Now()
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	return &Note{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		PlainText: plainText,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NormalizeTags lowercases, trims and deduplicates tags, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}
