package auth

import (
	"context"
	"strings"
	"sync"

	"loanintake-backend/internal/domain/session"
)

// Gate is the process-wide authenticated/unauthenticated flag, backed by the
// persisted session marker. One Gate guards one running process.
type Gate struct {
	store    session.Store
	username string
	password string

	mu     sync.RWMutex
	authed bool
	user   string
}

// NewGate wires the gate to a marker store and the fixed credential pair
// from configuration.
func NewGate(store session.Store, username, password string) *Gate {
	return &Gate{store: store, username: username, password: password}
}

// Restore flips to logged-in only when the persisted marker is present and
// valid. Called once at startup; any storage error is surfaced so the caller
// can decide whether to continue logged out.
func (g *Gate) Restore(ctx context.Context) error {
	user, ok, err := g.store.Load(ctx)
	if err != nil {
		return err
	}
	g.mu.Lock()
	g.authed = ok
	g.user = user
	g.mu.Unlock()
	return nil
}

// Login checks the credentials and persists the marker on success. Bad
// credentials return (false, nil); only marker persistence can error.
func (g *Gate) Login(ctx context.Context, username, password string) (bool, error) {
	if strings.TrimSpace(username) != g.username || strings.TrimSpace(password) != g.password {
		return false, nil
	}
	if err := g.store.Save(ctx, g.username); err != nil {
		return false, err
	}
	g.mu.Lock()
	g.authed = true
	g.user = g.username
	g.mu.Unlock()
	return true, nil
}

// Logout clears the marker. Safe to call when already logged out.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.store.Clear(ctx); err != nil {
		return err
	}
	g.mu.Lock()
	g.authed = false
	g.user = ""
	g.mu.Unlock()
	return nil
}

func (g *Gate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.authed
}

// Username reports who is logged in; empty when logged out.
func (g *Gate) Username() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.user
}
