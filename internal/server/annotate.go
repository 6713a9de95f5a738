package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"notekeep/internal/annotator"
	"notekeep/internal/richtext"
)

type annotateRequest struct {
	Content string `json:"content"`
}

func (h *Handler) decodeAnnotate(w http.ResponseWriter, r *http.Request) (annotateRequest, bool) {
	var req annotateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return annotateRequest{}, false
	}
	return req, true
}

// annotateSummary never fails the caller: an annotator error degrades to
// an empty summary so the save path is never blocked on the AI provider.
func (h *Handler) annotateSummary(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAnnotate(w, r)
	if !ok {
		return
	}

	summary, err := h.annotator.Summarize(r.Context(), req.Content)
	if err != nil {
		h.logger.Warn("Summary generation degraded to empty", zap.Error(err))
		summary = ""
	}
	h.jsonResponse(w, map[string]string{"summary": summary}, http.StatusOK)
}

func (h *Handler) annotateTags(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAnnotate(w, r)
	if !ok {
		return
	}

	tags, err := h.annotator.SuggestTags(r.Context(), req.Content)
	if err != nil {
		h.logger.Warn("Tag suggestion degraded to empty", zap.Error(err))
		tags = []string{}
	}
	h.jsonResponse(w, map[string][]string{"tags": tags}, http.StatusOK)
}

func (h *Handler) annotateGlossary(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAnnotate(w, r)
	if !ok {
		return
	}

	terms := annotator.FindGlossaryTerms(richtext.PlainText(req.Content))
	h.jsonResponse(w, map[string]any{"glossaryTerms": terms}, http.StatusOK)
}

func (h *Handler) annotateGrammar(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAnnotate(w, r)
	if !ok {
		return
	}

	issues := annotator.CheckGrammar(req.Content)
	h.jsonResponse(w, map[string]any{"grammarIssues": issues}, http.StatusOK)
}
