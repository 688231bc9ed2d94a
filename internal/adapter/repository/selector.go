package repository

import (
	"context"
	"fmt"

	"loanintake-backend/internal/adapter/repository/docstore"
	"loanintake-backend/internal/adapter/repository/sqldb"
	"loanintake-backend/internal/config"
	"loanintake-backend/internal/domain/application"
	"loanintake-backend/internal/domain/session"
	"loanintake-backend/internal/infrastructure/cache"
	"loanintake-backend/internal/infrastructure/db"
	"loanintake-backend/internal/storage"
)

// Backend bundles the stores a running process needs. Exactly one Backend is
// opened at startup; callers work against the domain interfaces and never
// see gorm or redis types.
type Backend struct {
	Applications application.Store
	Sessions     session.Store
}

// Open is the single backend selection point. It picks the implementation
// from cfg.StorageBackend, opens it, and runs Init before returning, so a
// non-nil Backend is always ready for use.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	var b *Backend

	switch cfg.StorageBackend {
	case config.BackendSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", storage.ErrInit, err)
		}
		b = &Backend{
			Applications: sqldb.NewApplicationRepository(gdb),
			Sessions:     sqldb.NewSessionStore(gdb),
		}
	case config.BackendMySQL:
		gdb, err := db.OpenMySQL(cfg.MySQLDSN())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", storage.ErrInit, err)
		}
		b = &Backend{
			Applications: sqldb.NewApplicationRepository(gdb),
			Sessions:     sqldb.NewSessionStore(gdb),
		}
	case config.BackendRedis:
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", storage.ErrInit, err)
		}
		b = &Backend{
			Applications: docstore.NewApplicationRepository(rdb),
			Sessions:     docstore.NewSessionStore(rdb),
		}
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", storage.ErrInit, cfg.StorageBackend)
	}

	if err := b.Applications.Init(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrInit, err)
	}
	if err := b.Sessions.Init(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrInit, err)
	}
	return b, nil
}
