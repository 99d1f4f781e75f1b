package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobmatch/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobmatch/internal/filex"
	"github.com/redis/go-redis/v9"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type StoreOptions struct {
	Backend  string
	Path     string
	RedisURL string
	// Passphrase, when set, seals every value before it reaches the backend.
	Passphrase string
}

type Repositories struct {
	Metadata metadata.Repository

	db    *sql.DB
	redis *redis.Client
}

func (r *Repositories) Close() error {
	var errs []error
	if r.db != nil {
		errs = append(errs, r.db.Close())
	}
	if r.redis != nil {
		errs = append(errs, r.redis.Close())
	}
	return errors.Join(errs...)
}

// InitStore opens the session storage backend selected in opts.
func InitStore(ctx context.Context, opts StoreOptions) (*Repositories, error) {
	repos := &Repositories{}

	switch opts.Backend {
	case "", BackendSQLite:
		if err := filex.EnsureParentDir(opts.Path); err != nil {
			return nil, err
		}
		db, err := metadata.OpenSQLite(ctx, opts.Path)
		if err != nil {
			return nil, err
		}
		repos.db = db
		repos.Metadata = metadata.NewSQLiteRepository(db)
	case BackendMemory:
		repos.Metadata = metadata.NewMemoryRepository()
	case BackendRedis:
		rc, err := metadata.NewRedisClient(opts.RedisURL)
		if err != nil {
			return nil, err
		}
		if err := rc.Ping(ctx).Err(); err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		repos.redis = rc
		repos.Metadata = metadata.NewRedisRepository(rc, "")
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}

	if opts.Passphrase != "" {
		sealed, err := metadata.NewSealedRepository(ctx, repos.Metadata, opts.Passphrase)
		if err != nil {
			_ = repos.Close()
			return nil, err
		}
		repos.Metadata = sealed
	}

	return repos, nil
}
