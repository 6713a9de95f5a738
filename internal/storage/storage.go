package storage

import "errors"

// Persisted-state keys. The whole note collection lives under a single key
// as one JSON blob; the session user under another.
const (
	NotesKey = "shareable-notes"
	UserKey  = "current-user"
)

// ErrNotFound is returned by KV.Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// KV is key-addressed blob storage. Implementations replace the value
// wholesale on Set; there are no partial writes.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
