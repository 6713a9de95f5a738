// Package server exposes the JSON HTTP API consumed by the browser UI.
// The UI itself lives elsewhere; every behavior here is a thin boundary
// over the notes service, session store, crypto helper and annotator.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"notekeep/internal/annotator"
	"notekeep/internal/models"
	"notekeep/internal/notes"
	"notekeep/internal/storage"
)

type Handler struct {
	svc       *notes.Service
	sessions  *storage.SessionStore
	annotator annotator.Annotator
	logger    *zap.Logger
}

func NewHandler(svc *notes.Service, sessions *storage.SessionStore, ann annotator.Annotator, logger *zap.Logger) *Handler {
	return &Handler{
		svc:       svc,
		sessions:  sessions,
		annotator: ann,
		logger:    logger,
	}
}

// Routes wires every endpoint onto a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/session", h.login)
	mux.HandleFunc("GET /api/session", h.currentSession)
	mux.HandleFunc("DELETE /api/session", h.logout)

	mux.HandleFunc("GET /api/notes", h.listNotes)
	mux.HandleFunc("POST /api/notes", h.createNote)
	mux.HandleFunc("PUT /api/notes/{id}", h.updateNote)
	mux.HandleFunc("DELETE /api/notes/{id}", h.deleteNote)
	mux.HandleFunc("POST /api/notes/{id}/pin", h.togglePin)
	mux.HandleFunc("POST /api/notes/{id}/unlock", h.unlockNote)

	mux.HandleFunc("POST /api/annotate/summary", h.annotateSummary)
	mux.HandleFunc("POST /api/annotate/tags", h.annotateTags)
	mux.HandleFunc("POST /api/annotate/glossary", h.annotateGlossary)
	mux.HandleFunc("POST /api/annotate/grammar", h.annotateGrammar)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return mux
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login is mock authentication: any email and password pair is accepted
// and becomes the device's session user. The name is the email local part.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		h.jsonError(w, "email required", http.StatusBadRequest)
		return
	}

	name, _, _ := strings.Cut(req.Email, "@")
	user := &models.User{
		ID:    uuid.New().String(),
		Email: req.Email,
		Name:  name,
	}
	if err := h.sessions.SetCurrentUser(user); err != nil {
		h.logger.Error("Failed to persist session", zap.Error(err))
	}
	h.jsonResponse(w, user, http.StatusOK)
}

func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.CurrentUser()
	if user == nil {
		h.jsonError(w, "no active session", http.StatusNotFound)
		return
	}
	h.jsonResponse(w, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(); err != nil {
		h.logger.Error("Failed to clear session", zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	view := h.svc.View(r.URL.Query().Get("q"))
	h.jsonResponse(w, view, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	// Deleting an unknown id is a no-op, same as the service contract.
	h.svc.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) togglePin(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.svc.Get(id); !ok {
		h.jsonError(w, "note not found", http.StatusNotFound)
		return
	}
	h.svc.TogglePin(id)
	note, _ := h.svc.Get(id)
	h.jsonResponse(w, note, http.StatusOK)
}

func (h *Handler) jsonResponse(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	h.jsonResponse(w, map[string]string{"error": message}, status)
}
