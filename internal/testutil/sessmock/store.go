package sessmock

import (
	"context"
	"sync"
)

// Store is an in-memory session.Store for tests: the marker lives in a map
// guarded by a mutex, and optional error hooks simulate storage failures.
type Store struct {
	SaveErr  error
	LoadErr  error
	ClearErr error

	mu     sync.Mutex
	marker string
	user   string
}

func (m *Store) Init(ctx context.Context) error { return nil }

func (m *Store) Save(ctx context.Context, username string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marker = "true"
	m.user = username
	return nil
}

func (m *Store) Load(ctx context.Context) (string, bool, error) {
	if m.LoadErr != nil {
		return "", false, m.LoadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.marker != "true" {
		return "", false, nil
	}
	return m.user, true, nil
}

func (m *Store) Clear(ctx context.Context) error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marker = ""
	m.user = ""
	return nil
}

// Seed plants a raw marker value, including invalid ones, to exercise the
// "any other value reads as logged out" rule.
func (m *Store) Seed(marker, user string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marker = marker
	m.user = user
}
