package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notekeep/internal/models"
)

// NoteStore persists the whole note collection as one JSON array under
// NotesKey. Load never fails the caller: an absent or unreadable blob is an
// empty collection, so the happy path upstream stays simple.
type NoteStore struct {
	kv     KV
	logger *zap.Logger
}

func NewNoteStore(kv KV, logger *zap.Logger) *NoteStore {
	return &NoteStore{kv: kv, logger: logger}
}

func (s *NoteStore) Load() []models.Note {
	data, err := s.kv.Get(NotesKey)
	if errors.Is(err, ErrNotFound) {
		return []models.Note{}
	}
	if err != nil {
		s.logger.Warn("Failed to read notes, starting empty", zap.Error(err))
		return []models.Note{}
	}

	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		s.logger.Warn("Corrupt notes blob, starting empty", zap.Error(err))
		return []models.Note{}
	}
	return notes
}

// Save replaces the persisted collection wholesale. A failure here means
// the persisted copy is stale relative to the caller's in-memory state; it
// is never rolled back.
func (s *NoteStore) Save(notes []models.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("error serializing notes: %w", err)
	}
	if err := s.kv.Set(NotesKey, data); err != nil {
		return fmt.Errorf("error persisting notes: %w", err)
	}
	return nil
}
