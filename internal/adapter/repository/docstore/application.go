package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"loanintake-backend/internal/domain/application"
	"loanintake-backend/internal/storage"

	"github.com/redis/go-redis/v9"
)

// collectionKey holds the whole application list as one JSON array. Absence
// of the key is equivalent to an empty list.
const collectionKey = "loanApplications"

// ApplicationRepository is the document backend: no schema, no transactions,
// no per-record addressing. Every mutation reads the full collection,
// transforms it in memory, and writes the full collection back in a single
// SET. The mutex enforces the single-writer rule; without it two mutations
// could interleave their read and write phases and lose updates or assign
// duplicate ids.
type ApplicationRepository struct {
	rdb *redis.Client
	mu  sync.Mutex
}

func NewApplicationRepository(rdb *redis.Client) *ApplicationRepository {
	return &ApplicationRepository{rdb: rdb}
}

// Init verifies the collection is readable. There is no schema to create;
// a missing key already reads as an empty list.
func (r *ApplicationRepository) Init(ctx context.Context) error {
	if err := r.rdb.Get(ctx, collectionKey).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func (r *ApplicationRepository) load(ctx context.Context) ([]application.LoanApplication, error) {
	raw, err := r.rdb.Get(ctx, collectionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return []application.LoanApplication{}, nil
	}
	if err != nil {
		return nil, err
	}
	var list []application.LoanApplication
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ApplicationRepository) save(ctx context.Context, list []application.LoanApplication) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, collectionKey, raw, 0).Err()
}

func (r *ApplicationRepository) Create(ctx context.Context, a *application.LoanApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}

	// max(id)+1 computed under the lock, from the snapshot just read
	var maxID uint64
	for _, cur := range list {
		if cur.ID > maxID {
			maxID = cur.ID
		}
	}
	a.ID = maxID + 1
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = nowUTC()
	}
	if a.Status == "" {
		a.Status = application.StatusPending
	}

	list = append(list, *a)
	if err := r.save(ctx, list); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]application.LoanApplication, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	sortByIDDesc(list)
	return list, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*application.LoanApplication, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			out := list[i]
			return &out, nil
		}
	}
	return nil, application.ErrNotFound
}

func (r *ApplicationRepository) FindByEmail(ctx context.Context, email string) (*application.LoanApplication, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if strings.EqualFold(list[i].Email, email) {
			out := list[i]
			return &out, nil
		}
	}
	return nil, application.ErrNotFound
}

func (r *ApplicationRepository) Update(ctx context.Context, id uint64, p application.Patch) (*application.LoanApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		p.Apply(&list[i])
		if err := r.save(ctx, list); err != nil {
			return nil, fmt.Errorf("%w: %v", storage.ErrWrite, err)
		}
		out := list[i]
		return &out, nil
	}
	return nil, application.ErrNotFound
}

func (r *ApplicationRepository) DeleteByID(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	kept := list[:0]
	for _, cur := range list {
		if cur.ID != id {
			kept = append(kept, cur)
		}
	}
	if len(kept) == len(list) {
		// already absent; nothing to write
		return nil
	}
	if err := r.save(ctx, kept); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	return nil
}

func (r *ApplicationRepository) ClearPaysheet(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].PaysheetURI = nil
		if err := r.save(ctx, list); err != nil {
			return fmt.Errorf("%w: %v", storage.ErrWrite, err)
		}
		return nil
	}
	// absent id: no-op, same rule as delete
	return nil
}

// DeleteAll removes the key in one operation so an interrupted clear can
// never leave a partial collection behind.
func (r *ApplicationRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.rdb.Del(ctx, collectionKey).Err(); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	return nil
}
