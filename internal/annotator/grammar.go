package annotator

import (
	"regexp"
	"sort"

	"notekeep/internal/models"
	"notekeep/internal/richtext"
)

type mistake struct {
	wrong   string
	correct string
	kind    models.IssueType
}

// commonMistakes is a small built-in list of frequent misspellings and
// slips; this is a convenience check, not a grammar engine.
var commonMistakes = []mistake{
	{"teh", "the", models.IssueSpelling},
	{"recieve", "receive", models.IssueSpelling},
	{"seperate", "separate", models.IssueSpelling},
	{"definately", "definitely", models.IssueSpelling},
	{"its a", "it's a", models.IssueGrammar},
}

var mistakePatterns = compileMistakes()

type mistakePattern struct {
	mistake
	re *regexp.Regexp
}

func compileMistakes() []mistakePattern {
	patterns := make([]mistakePattern, 0, len(commonMistakes))
	for _, m := range commonMistakes {
		patterns = append(patterns, mistakePattern{
			mistake: m,
			re:      regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(m.wrong) + `\b`),
		})
	}
	return patterns
}

// CheckGrammar scans the markup-stripped content and flags known mistakes
// with their suggested replacement, ordered by position.
func CheckGrammar(content string) []models.GrammarIssue {
	plain := richtext.PlainText(content)

	issues := []models.GrammarIssue{}
	for _, p := range mistakePatterns {
		for _, loc := range p.re.FindAllStringIndex(plain, -1) {
			issues = append(issues, models.GrammarIssue{
				Text:       p.wrong,
				Suggestion: p.correct,
				StartIndex: loc[0],
				EndIndex:   loc[1],
				Type:       p.kind,
			})
		}
	}
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].StartIndex < issues[j].StartIndex })
	return issues
}
