package docstore

import (
	"context"
	"errors"
	"fmt"

	"loanintake-backend/internal/storage"

	"github.com/redis/go-redis/v9"
)

const (
	loggedInKey      = "loggedIn"
	usernameKey      = "username"
	loggedInSentinel = "true"
)

// SessionStore keeps the auth marker under two flat keys next to the
// application collection.
type SessionStore struct{ rdb *redis.Client }

func NewSessionStore(rdb *redis.Client) *SessionStore { return &SessionStore{rdb: rdb} }

func (s *SessionStore) Init(ctx context.Context) error { return nil }

func (s *SessionStore) Save(ctx context.Context, username string) error {
	if err := s.rdb.Set(ctx, loggedInKey, loggedInSentinel, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	if err := s.rdb.Set(ctx, usernameKey, username, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	return nil
}

func (s *SessionStore) Load(ctx context.Context) (string, bool, error) {
	v, err := s.rdb.Get(ctx, loggedInKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if v != loggedInSentinel {
		return "", false, nil
	}
	user, err := s.rdb.Get(ctx, usernameKey).Result()
	if err != nil {
		return "", true, nil
	}
	return user, true, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, loggedInKey, usernameKey).Err(); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	return nil
}
