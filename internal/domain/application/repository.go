package application

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an id- or email-addressed operation targets a
// record that is not in the store. It is an expected result; callers match it
// with errors.Is and must not treat it as an I/O failure.
var ErrNotFound = errors.New("application not found")

// Store is the persistence contract both backends satisfy. All operations
// are safe to call repeatedly; Init must complete before anything else runs.
type Store interface {
	// Init creates the backing schema/key if absent. Idempotent.
	Init(ctx context.Context) error

	// Create assigns ID and SubmittedAt, persists, and fills them in on a.
	// The assigned ID is unique among live records.
	Create(ctx context.Context, a *LoanApplication) error

	// List returns all live records newest-first (id descending).
	// An empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]LoanApplication, error)

	GetByID(ctx context.Context, id uint64) (*LoanApplication, error)

	// FindByEmail matches case-insensitively on the exact address.
	FindByEmail(ctx context.Context, email string) (*LoanApplication, error)

	// Update merges the patch onto the stored record and returns the result.
	// ErrNotFound when no record has that id.
	Update(ctx context.Context, id uint64, p Patch) (*LoanApplication, error)

	// DeleteByID removes the record. Deleting an absent id is a no-op, not
	// an error.
	DeleteByID(ctx context.Context, id uint64) error

	// ClearPaysheet nulls paysheet_uri on the matching record and nothing
	// else. Same idempotence rule as DeleteByID.
	ClearPaysheet(ctx context.Context, id uint64) error

	// DeleteAll removes every record in a single operation.
	DeleteAll(ctx context.Context) error
}
