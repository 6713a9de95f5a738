package annotator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"notekeep/internal/models"
)

func TestKeywordAnnotator_SuggestTags(t *testing.T) {
	a := NewKeywordAnnotator(5)

	tags, err := a.SuggestTags(context.Background(), "<p>Team meeting about the project deadline #standup</p>")
	require.NoError(t, err)

	assert.Contains(t, tags, "standup")
	assert.Contains(t, tags, "work")
}

func TestKeywordAnnotator_MaxTags(t *testing.T) {
	a := NewKeywordAnnotator(2)

	tags, err := a.SuggestTags(context.Background(), "meeting trip buy study family #one #two #three")
	require.NoError(t, err)

	assert.Len(t, tags, 2)
}

func TestKeywordAnnotator_ShortInput(t *testing.T) {
	a := NewKeywordAnnotator(5)

	summary, err := a.Summarize(context.Background(), "<p>hi</p>")
	require.NoError(t, err)
	assert.Equal(t, TooShortSummary, summary)

	tags, err := a.SuggestTags(context.Background(), "hi")
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestKeywordAnnotator_SummaryIsExcerpt(t *testing.T) {
	a := NewKeywordAnnotator(5)

	summary, err := a.Summarize(context.Background(), "<p>Planning the week ahead with three goals.</p>")
	require.NoError(t, err)
	assert.Equal(t, "Planning the week ahead with three goals.", summary)
}

// completionStub serves a fixed chat-completion reply in the OpenAI wire
// format so the real client code path is exercised.
func completionStub(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "cmpl-test",
			"object": "chat.completion",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": reply},
					"finish_reason": "stop",
				},
			},
		})
	}))
}

func TestLLMAnnotator_Summarize(t *testing.T) {
	srv := completionStub(t, "A short summary of the note.")
	defer srv.Close()

	a := NewLLMAnnotator("test-key", srv.URL, "llama-3.1-8b-instant", 60, 5, zap.NewNop())

	summary, err := a.Summarize(context.Background(), "<p>Long enough content to summarize properly.</p>")
	require.NoError(t, err)
	assert.Equal(t, "A short summary of the note.", summary)
}

func TestLLMAnnotator_SuggestTags(t *testing.T) {
	srv := completionStub(t, "Work, project , IMPORTANT,")
	defer srv.Close()

	a := NewLLMAnnotator("test-key", srv.URL, "llama-3.1-8b-instant", 60, 5, zap.NewNop())

	tags, err := a.SuggestTags(context.Background(), "<p>Long enough content for tag suggestions.</p>")
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "project", "important"}, tags)
}

func TestLLMAnnotator_ShortInputSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for short input")
	}))
	defer srv.Close()

	a := NewLLMAnnotator("test-key", srv.URL, "llama-3.1-8b-instant", 60, 5, zap.NewNop())

	summary, err := a.Summarize(context.Background(), "short")
	require.NoError(t, err)
	assert.Equal(t, TooShortSummary, summary)

	tags, err := a.SuggestTags(context.Background(), "short")
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestLLMAnnotator_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := NewLLMAnnotator("test-key", srv.URL, "llama-3.1-8b-instant", 60, 5, zap.NewNop())

	_, err := a.Summarize(context.Background(), "content that is long enough")
	assert.Error(t, err)

	_, err = a.SuggestTags(context.Background(), "content that is long enough")
	assert.Error(t, err)
}

func TestParseTagList(t *testing.T) {
	cases := []struct {
		name     string
		response string
		maxTags  int
		want     []string
	}{
		{"normalizes", "Work, Project", 5, []string{"work", "project"}},
		{"drops empties", "a,,b, ", 5, []string{"a", "b"}},
		{"caps at max", "a,b,c,d", 2, []string{"a", "b"}},
		{"empty response", "", 5, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseTagList(tc.response, tc.maxTags))
		})
	}
}

func TestFindGlossaryTerms(t *testing.T) {
	text := "The API uses encryption. Another api call."

	terms := FindGlossaryTerms(text)

	require.Len(t, terms, 3)
	assert.Equal(t, "API", terms[0].Term)
	assert.Equal(t, 4, terms[0].StartIndex)
	assert.Equal(t, 7, terms[0].EndIndex)
	assert.Equal(t, "encryption", terms[1].Term)
	assert.Equal(t, "API", terms[2].Term, "matching is case-insensitive")
}

func TestFindGlossaryTerms_NoMatches(t *testing.T) {
	assert.Empty(t, FindGlossaryTerms("nothing of note here"))
}

func TestCheckGrammar(t *testing.T) {
	issues := CheckGrammar("<p>I will recieve teh package</p>")

	require.Len(t, issues, 2)
	assert.Equal(t, "recieve", issues[0].Text)
	assert.Equal(t, "receive", issues[0].Suggestion)
	assert.Equal(t, models.IssueSpelling, issues[0].Type)
	assert.Equal(t, "teh", issues[1].Text)
}

func TestCheckGrammar_Clean(t *testing.T) {
	assert.Empty(t, CheckGrammar("<p>Everything is spelled correctly.</p>"))
}
