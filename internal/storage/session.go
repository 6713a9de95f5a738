package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notekeep/internal/models"
)

// SessionStore persists the singleton current-user record. This is device
// identity, not authentication: there is no credential attached and no
// expiry.
type SessionStore struct {
	kv     KV
	logger *zap.Logger
}

func NewSessionStore(kv KV, logger *zap.Logger) *SessionStore {
	return &SessionStore{kv: kv, logger: logger}
}

// CurrentUser returns nil when no user is stored or the record is
// unreadable.
func (s *SessionStore) CurrentUser() *models.User {
	data, err := s.kv.Get(UserKey)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Warn("Failed to read session", zap.Error(err))
		return nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Warn("Corrupt session record", zap.Error(err))
		return nil
	}
	return &user
}

func (s *SessionStore) SetCurrentUser(user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("error serializing user: %w", err)
	}
	if err := s.kv.Set(UserKey, data); err != nil {
		return fmt.Errorf("error persisting user: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear() error {
	return s.kv.Delete(UserKey)
}
