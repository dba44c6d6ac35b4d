package store

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Backend kinds accepted by NewStore and Open.
const (
	KindMemory = "memory" // process-local; contents vanish on exit
	KindSQLite = "sqlite" // single file through modernc.org/sqlite
)

// ErrUnknownKind is returned for a backend name NewStore does not know.
var ErrUnknownKind = errors.New("store: unsupported backend")

// NewStore returns an uninitialized backend of the given kind. The empty
// kind selects KindMemory. sqlitePath is only read by KindSQLite.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", KindMemory:
		return NewMemoryStore(), nil
	case KindSQLite:
		return NewSQLiteStore(sqlitePath), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Open is NewStore followed by Init. On Init failure the backend is closed.
func Open(ctx context.Context, kind, sqlitePath string) (Store, error) {
	s, err := NewStore(kind, sqlitePath)
	if err != nil {
		return nil, err
	}
	if err = s.Init(ctx); err != nil {
		_ = CloseIfSupported(s)
		return nil, fmt.Errorf("store: open %s: %w", kind, err)
	}
	return s, nil
}

// Persistent reports whether runs saved to kind survive the process.
func Persistent(kind string) bool {
	return kind == KindSQLite
}

// CloseIfSupported releases backends that hold resources; others are a no-op.
func CloseIfSupported(s Store) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
