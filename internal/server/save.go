package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"notekeep/internal/cryptox"
	"notekeep/internal/models"
	"notekeep/internal/richtext"
)

// saveRequest is the editor's save payload. Content always arrives as
// plaintext markup; whether it is stored encrypted is decided here, on
// every save, from the flag and password. The flag can therefore never
// drift out of sync with the stored content.
type saveRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Summary  string   `json:"summary"`
	IsPinned bool     `json:"isPinned"`
	Encrypt  bool     `json:"encrypt"`
	Password string   `json:"password"`
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	note := models.NewNote(req.Title, req.Content, richtext.PlainText(req.Content))
	if !h.applySave(w, note, req) {
		return
	}

	h.svc.Add(*note)
	h.jsonResponse(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, ok := h.svc.Get(id)
	if !ok {
		h.jsonError(w, "note not found", http.StatusNotFound)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	note := models.NewNote(req.Title, req.Content, richtext.PlainText(req.Content))
	note.ID = existing.ID
	note.CreatedAt = existing.CreatedAt
	if !h.applySave(w, note, req) {
		return
	}

	h.svc.Update(*note)
	saved, _ := h.svc.Get(id)
	h.jsonResponse(w, saved, http.StatusOK)
}

// applySave finishes building the note from the request: tags, summary,
// pin state and the encryption reconciliation. Returns false after writing
// an error response.
func (h *Handler) applySave(w http.ResponseWriter, note *models.Note, req saveRequest) bool {
	note.Tags = models.NormalizeTags(req.Tags)
	note.Summary = req.Summary
	note.IsPinned = req.IsPinned

	if !req.Encrypt {
		// Plaintext save; the derived fields are already in place.
		return true
	}

	if req.Password == "" {
		h.jsonError(w, "password required to encrypt note", http.StatusBadRequest)
		return false
	}

	// Capture the searchable preview before the content becomes opaque.
	preview := richtext.Preview(req.Content, richtext.DefaultPreviewLength)
	ciphertext, err := cryptox.Encrypt(req.Content, req.Password)
	if err != nil {
		h.logger.Error("Failed to encrypt note content", zap.Error(err))
		h.jsonError(w, "encryption failed", http.StatusInternalServerError)
		return false
	}

	note.Content = ciphertext
	note.PlainText = preview
	note.IsEncrypted = true
	return true
}

type unlockRequest struct {
	Password string `json:"password"`
}

// unlockNote decrypts an encrypted note's content for display. A wrong
// password is a distinct 403, never silently-wrong plaintext.
func (h *Handler) unlockNote(w http.ResponseWriter, r *http.Request) {
	note, ok := h.svc.Get(r.PathValue("id"))
	if !ok {
		h.jsonError(w, "note not found", http.StatusNotFound)
		return
	}
	if !note.IsEncrypted {
		h.jsonError(w, "note is not encrypted", http.StatusBadRequest)
		return
	}

	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	content, err := cryptox.Decrypt(note.Content, req.Password)
	if errors.Is(err, cryptox.ErrDecryption) {
		h.jsonError(w, "wrong password or corrupted content", http.StatusForbidden)
		return
	}
	if err != nil {
		h.logger.Error("Failed to decrypt note", zap.Error(err))
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, map[string]string{"content": content}, http.StatusOK)
}
