package models

// User is the device-local session identity. This is a placeholder identity
// record, not an authenticated principal: there is no password hash, token
// or expiry attached to it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GlossaryTerm marks a known term found in note content, with its
// definition and character offsets into the plain text.
type GlossaryTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

type IssueType string

const (
	IssueSpelling IssueType = "spelling"
	IssueGrammar  IssueType = "grammar"
	IssueStyle    IssueType = "style"
)

// GrammarIssue is a single flagged span in note content together with the
// suggested replacement.
type GrammarIssue struct {
	Text       string    `json:"text"`
	Suggestion string    `json:"suggestion"`
	StartIndex int       `json:"startIndex"`
	EndIndex   int       `json:"endIndex"`
	Type       IssueType `json:"type"`
}
