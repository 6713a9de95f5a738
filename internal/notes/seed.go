package notes

import (
	"time"

	"github.com/google/uuid"

	"notekeep/internal/models"
)

// SeedNotes is the one-time bootstrap dataset written when the store comes
// up empty: one pinned welcome note and one older everyday note, so the
// first render demonstrates pin ordering, tags and summaries.
func SeedNotes(now time.Time) []models.Note {
	return []models.Note{
		{
			ID:          uuid.New().String(),
			Title:       "Project Planning Meeting Notes",
			Content:     "<p><strong>Meeting Date:</strong> Today</p><p>Discussed the new notes application project. Key points:</p><ul><li>Implement rich text editing</li><li>Add AI-powered features</li><li>Ensure data security with encryption</li></ul>",
			PlainText:   "Meeting Date: Today Discussed the new notes application project. Key points: Implement rich text editing Add AI-powered features Ensure data security with encryption",
			IsPinned:    true,
			IsEncrypted: false,
			Tags:        []string{"meeting", "project", "planning"},
			Summary:     "Meeting notes about the new notes application project covering key implementation points.",
			GlossaryTerms: []models.GlossaryTerm{
				{
					Term:       "encryption",
					Definition: "The process of converting information into a secret code",
					StartIndex: 137,
					EndIndex:   147,
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          uuid.New().String(),
			Title:       "Shopping List",
			Content:     "<p>Groceries needed:</p><ul><li>Apples</li><li>Bread</li><li>Milk</li><li>Cheese</li></ul><p><u>Don't forget</u> to check expiration dates!</p>",
			PlainText:   "Groceries needed: Apples Bread Milk Cheese Don't forget to check expiration dates!",
			IsPinned:    false,
			IsEncrypted: false,
			Tags:        []string{"shopping", "groceries", "personal"},
			Summary:     "Simple grocery shopping list with reminder to check expiration dates.",
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
	}
}
