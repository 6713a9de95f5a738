// Package notes holds the in-memory source of truth for the note
// collection and mediates every read and write against the store.
package notes

import (
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"notekeep/internal/models"
)

// Store is the persistence boundary the service writes through. Load
// degrades to an empty collection; Save failures are reported but never
// unwind in-memory state.
type Store interface {
	Load() []models.Note
	Save(notes []models.Note) error
}

type Service struct {
	mu     sync.RWMutex
	notes  []models.Note
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Initialize loads the persisted collection. An empty store is seeded once
// with the demonstration dataset, which is persisted before returning.
func (s *Service) Initialize() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := s.store.Load()
	if len(loaded) == 0 {
		loaded = SeedNotes(s.now())
		s.persist(loaded)
		s.logger.Info("Seeded demonstration notes", zap.Int("count", len(loaded)))
	}
	s.notes = loaded
	return s.snapshot()
}

// Add prepends the note so the base ordering stays newest-first.
func (s *Service) Add(note models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append([]models.Note{note}, s.notes...)
	s.persist(s.notes)
}

// Update replaces the note with a matching id and refreshes its
// modification time. Unknown ids are a no-op.
func (s *Service) Update(note models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == note.ID {
			note.CreatedAt = s.notes[i].CreatedAt
			note.UpdatedAt = s.now()
			s.notes[i] = note
			s.persist(s.notes)
			return
		}
	}
}

// Delete removes the note with the matching id. Unknown ids are a no-op
// and are not persisted.
func (s *Service) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			s.persist(s.notes)
			return
		}
	}
}

func (s *Service) TogglePin(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].IsPinned = !s.notes[i].IsPinned
			s.notes[i].UpdatedAt = s.now()
			s.persist(s.notes)
			return
		}
	}
}

func (s *Service) Get(id string) (models.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, note := range s.notes {
		if note.ID == id {
			return note, true
		}
	}
	return models.Note{}, false
}

// All returns the raw collection in base (insertion) order.
func (s *Service) All() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// View returns the derived display order: notes matching the query,
// pinned before unpinned, most recently updated first within each group.
// The sort is stable, so ties keep insertion order.
func (s *Service) View(query string) []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))

	result := make([]models.Note, 0, len(s.notes))
	for _, note := range s.notes {
		if q == "" || matches(note, q) {
			result = append(result, note)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].IsPinned != result[j].IsPinned {
			return result[i].IsPinned
		}
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result
}

// matches checks a case-insensitive substring against title, plain text
// and every tag.
func matches(note models.Note, q string) bool {
	if strings.Contains(strings.ToLower(note.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(note.PlainText), q) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// persist is fire-and-forget: a failed write leaves the in-memory state as
// the operation's effective result and only logs that the persisted copy
// may be stale.
func (s *Service) persist(notes []models.Note) {
	if err := s.store.Save(notes); err != nil {
		s.logger.Error("Failed to persist notes, stored copy is stale", zap.Error(err))
	}
}

func (s *Service) snapshot() []models.Note {
	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}
