package annotator

import (
	"regexp"
	"sort"

	"notekeep/internal/models"
)

// glossary is the built-in term dictionary. Matching is whole-word and
// case-insensitive; offsets index into the scanned text.
var glossary = map[string]string{
	"API":        "Application Programming Interface - a set of protocols for building software applications",
	"JWT":        "JSON Web Token - a compact way to securely transmit information between parties",
	"MongoDB":    "A document-oriented NoSQL database program",
	"React":      "A JavaScript library for building user interfaces",
	"encryption": "The process of converting information into a secret code",
	"algorithm":  "A set of rules or instructions for solving a problem",
}

var glossaryPatterns = compileGlossary()

type glossaryPattern struct {
	term       string
	definition string
	re         *regexp.Regexp
}

func compileGlossary() []glossaryPattern {
	patterns := make([]glossaryPattern, 0, len(glossary))
	for term, definition := range glossary {
		patterns = append(patterns, glossaryPattern{
			term:       term,
			definition: definition,
			re:         regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
		})
	}
	sort.Slice(patterns, func(i, j int) bool { return patterns[i].term < patterns[j].term })
	return patterns
}

// FindGlossaryTerms scans text for every known term occurrence, ordered by
// position in the text.
func FindGlossaryTerms(text string) []models.GlossaryTerm {
	terms := []models.GlossaryTerm{}
	for _, p := range glossaryPatterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			terms = append(terms, models.GlossaryTerm{
				Term:       p.term,
				Definition: p.definition,
				StartIndex: loc[0],
				EndIndex:   loc[1],
			})
		}
	}
	sort.SliceStable(terms, func(i, j int) bool { return terms[i].StartIndex < terms[j].StartIndex })
	return terms
}
