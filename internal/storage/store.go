package storage

import "errors"

// ErrNotFound is returned by Load when no snapshot exists for a key.
var ErrNotFound = errors.New("snapshot not found")

// Store is the persistence boundary for state slices. Each key holds one
// JSON-serialized snapshot; slices load on construction and save after
// every mutation. Tests substitute Memory for the sqlite-backed store.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Delete(key string) error
}

// Key namespaces a browser-storage key per session, e.g. "cart:<sid>".
func Key(name, sid string) string { return name + ":" + sid }
