package session

import "context"

// Store persists the logged-in marker (plus the remembered username) that
// survives process restarts. Implementations live next to the application
// repositories so both storage backends carry one.
type Store interface {
	// Init prepares the marker storage if the backend needs any. Idempotent.
	Init(ctx context.Context) error

	// Save writes the marker and remembers who logged in.
	Save(ctx context.Context, username string) error

	// Load reports whether a valid marker is present. Any value other than
	// the expected sentinel counts as absent.
	Load(ctx context.Context) (username string, ok bool, err error)

	// Clear removes the marker. Safe to call when none exists.
	Clear(ctx context.Context) error
}
