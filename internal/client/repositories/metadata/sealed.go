package metadata

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/cryptox"
)

// saltKey holds the argon2 salt in clear. It is never sealed and is hidden
// from List.
const saltKey = "__salt"

// SealedRepository encrypts values before handing them to the inner
// repository. Each value is bound to its key, so swapping rows fails to open.
type SealedRepository struct {
	inner  Repository
	sealer *cryptox.Sealer
	salt   []byte
}

// NewSealedRepository derives the key from passphrase and the salt stored in
// inner, creating the salt on first use.
func NewSealedRepository(ctx context.Context, inner Repository, passphrase string) (*SealedRepository, error) {
	salt, err := inner.Get(ctx, saltKey)
	if err != nil {
		return nil, err
	}
	if len(salt) != cryptox.SaltSize {
		salt = common.GenerateRandByteArray(cryptox.SaltSize)
		if err := inner.Set(ctx, saltKey, salt); err != nil {
			return nil, err
		}
	}

	key := cryptox.DeriveKey([]byte(passphrase), salt)
	defer common.WipeByteArray(key)

	sealer, err := cryptox.NewSealer(key)
	if err != nil {
		return nil, err
	}
	return &SealedRepository{inner: inner, sealer: sealer, salt: salt}, nil
}

func (r *SealedRepository) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := r.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	v, err := r.sealer.Open(key, sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata[%s]: %w", key, err)
	}
	return v, nil
}

func (r *SealedRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.inner.Set(ctx, key, r.sealer.Seal(key, value))
}

func (r *SealedRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	out := make(map[string][]byte, len(values))
	for k, v := range values {
		out[k] = r.sealer.Seal(k, v)
	}
	return r.inner.SetMany(ctx, out)
}

func (r *SealedRepository) Delete(ctx context.Context, key string) error {
	if key == saltKey {
		return nil
	}
	return r.inner.Delete(ctx, key)
}

func (r *SealedRepository) List(ctx context.Context) (map[string][]byte, error) {
	all, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(all))
	for k, sealed := range all {
		if k == saltKey {
			continue
		}
		v, err := r.sealer.Open(k, sealed)
		if err != nil {
			return nil, fmt.Errorf("failed to open metadata[%s]: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// Clear wipes everything but keeps the salt so later writes stay readable
// after a restart.
func (r *SealedRepository) Clear(ctx context.Context) error {
	if err := r.inner.Clear(ctx); err != nil {
		return err
	}
	return r.inner.Set(ctx, saltKey, r.salt)
}
