// Package tokenstore persists the session: the access/refresh token pair,
// its expiry, the logged-in user snapshot and auth-state timestamps.
//
// Absent values read as the zero value with a nil error. The store does not
// validate what it is given.
package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/client/repositories/metadata"
)

const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyExpiresAt    = "token_expires_at"
	KeyUser         = "user"
	KeyLastLogin    = "last_login"
	KeyLastActivity = "last_activity"
)

// Pair is the token pair plus the access token expiry. ExpiresAt is zero
// when unknown.
type Pair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Meta is auth-state bookkeeping. Zero times mean "never".
type Meta struct {
	LastLogin    time.Time
	LastActivity time.Time
}

type Store struct {
	repo metadata.Repository
	now  func() time.Time
}

func New(repo metadata.Repository) *Store {
	return &Store{repo: repo, now: time.Now}
}

func (s *Store) getString(ctx context.Context, key string) (string, error) {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("tokenstore: read %s: %w", key, err)
	}
	return string(v), nil
}

func (s *Store) setString(ctx context.Context, key, value string) error {
	if err := s.repo.Set(ctx, key, []byte(value)); err != nil {
		return fmt.Errorf("tokenstore: write %s: %w", key, err)
	}
	return nil
}

func (s *Store) AccessToken(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyAccessToken)
}

func (s *Store) SetAccessToken(ctx context.Context, token string) error {
	return s.setString(ctx, KeyAccessToken, token)
}

func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	return s.getString(ctx, KeyRefreshToken)
}

func (s *Store) SetRefreshToken(ctx context.Context, token string) error {
	return s.setString(ctx, KeyRefreshToken, token)
}

// SavePair writes both tokens and the expiry in one atomic write.
func (s *Store) SavePair(ctx context.Context, p Pair) error {
	values := map[string][]byte{
		KeyAccessToken:  []byte(p.AccessToken),
		KeyRefreshToken: []byte(p.RefreshToken),
		KeyExpiresAt:    nil,
	}
	if !p.ExpiresAt.IsZero() {
		b, err := p.ExpiresAt.UTC().MarshalText()
		if err != nil {
			return fmt.Errorf("tokenstore: encode expiry: %w", err)
		}
		values[KeyExpiresAt] = b
	}
	if err := s.repo.SetMany(ctx, values); err != nil {
		return fmt.Errorf("tokenstore: save pair: %w", err)
	}
	return nil
}

func (s *Store) Pair(ctx context.Context) (Pair, error) {
	var p Pair
	var err error
	if p.AccessToken, err = s.AccessToken(ctx); err != nil {
		return Pair{}, err
	}
	if p.RefreshToken, err = s.RefreshToken(ctx); err != nil {
		return Pair{}, err
	}
	if p.ExpiresAt, err = s.getTime(ctx, KeyExpiresAt); err != nil {
		return Pair{}, err
	}
	return p, nil
}

func (s *Store) getTime(ctx context.Context, key string) (time.Time, error) {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("tokenstore: read %s: %w", key, err)
	}
	var t time.Time
	if len(v) == 0 {
		return t, nil
	}
	if err := t.UnmarshalText(v); err != nil {
		return time.Time{}, fmt.Errorf("tokenstore: decode %s: %w", key, err)
	}
	return t, nil
}

func (s *Store) setTime(ctx context.Context, key string, t time.Time) error {
	b, err := t.UTC().MarshalText()
	if err != nil {
		return fmt.Errorf("tokenstore: encode %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, b); err != nil {
		return fmt.Errorf("tokenstore: write %s: %w", key, err)
	}
	return nil
}

func (s *Store) SaveUser(ctx context.Context, u models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("tokenstore: encode user: %w", err)
	}
	if err := s.repo.Set(ctx, KeyUser, b); err != nil {
		return fmt.Errorf("tokenstore: write user: %w", err)
	}
	return nil
}

// User returns the stored snapshot, or nil when nobody is logged in.
func (s *Store) User(ctx context.Context) (*models.User, error) {
	v, err := s.repo.Get(ctx, KeyUser)
	if err != nil {
		return nil, fmt.Errorf("tokenstore: read user: %w", err)
	}
	if len(v) == 0 {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("tokenstore: decode user: %w", err)
	}
	return &u, nil
}

// MarkLogin stamps both the login and the activity time.
func (s *Store) MarkLogin(ctx context.Context) error {
	now := s.now()
	b, err := now.UTC().MarshalText()
	if err != nil {
		return err
	}
	if err := s.repo.SetMany(ctx, map[string][]byte{KeyLastLogin: b, KeyLastActivity: b}); err != nil {
		return fmt.Errorf("tokenstore: mark login: %w", err)
	}
	return nil
}

func (s *Store) Touch(ctx context.Context) error {
	return s.setTime(ctx, KeyLastActivity, s.now())
}

func (s *Store) Meta(ctx context.Context) (Meta, error) {
	var m Meta
	var err error
	if m.LastLogin, err = s.getTime(ctx, KeyLastLogin); err != nil {
		return Meta{}, err
	}
	if m.LastActivity, err = s.getTime(ctx, KeyLastActivity); err != nil {
		return Meta{}, err
	}
	return m, nil
}

// Clear removes the whole session.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("tokenstore: clear: %w", err)
	}
	return nil
}
