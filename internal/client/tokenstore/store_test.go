package tokenstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AbsentValuesAreEmpty(t *testing.T) {
	s := New(metadata.NewMemoryRepository())
	ctx := context.Background()

	at, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, at)

	rt, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, rt)

	u, err := s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	p, err := s.Pair(ctx)
	require.NoError(t, err)
	assert.Equal(t, Pair{}, p)

	m, err := s.Meta(ctx)
	require.NoError(t, err)
	assert.Equal(t, Meta{}, m)
}

func TestStore_SetGetClear(t *testing.T) {
	s := New(metadata.NewMemoryRepository())
	ctx := context.Background()

	require.NoError(t, s.SetAccessToken(ctx, "A"))
	require.NoError(t, s.SetRefreshToken(ctx, "R"))

	at, _ := s.AccessToken(ctx)
	rt, _ := s.RefreshToken(ctx)
	assert.Equal(t, "A", at)
	assert.Equal(t, "R", rt)

	require.NoError(t, s.Clear(ctx))
	at, _ = s.AccessToken(ctx)
	rt, _ = s.RefreshToken(ctx)
	assert.Empty(t, at)
	assert.Empty(t, rt)
}

func TestStore_SavePairRoundtrip(t *testing.T) {
	s := New(metadata.NewMemoryRepository())
	ctx := context.Background()
	exp := time.Date(2030, 5, 6, 7, 8, 9, 0, time.UTC)

	require.NoError(t, s.SavePair(ctx, Pair{AccessToken: "A", RefreshToken: "R", ExpiresAt: exp}))

	p, err := s.Pair(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", p.AccessToken)
	assert.Equal(t, "R", p.RefreshToken)
	assert.True(t, exp.Equal(p.ExpiresAt))

	// unknown expiry overwrites the previous one
	require.NoError(t, s.SavePair(ctx, Pair{AccessToken: "A2", RefreshToken: "R2"}))
	p, err = s.Pair(ctx)
	require.NoError(t, err)
	assert.True(t, p.ExpiresAt.IsZero())
}

func TestStore_UserSnapshot(t *testing.T) {
	s := New(metadata.NewMemoryRepository())
	ctx := context.Background()

	in := models.User{ID: 7, Email: "a@b.c", Name: "Ann"}
	require.NoError(t, s.SaveUser(ctx, in))

	out, err := s.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Email, out.Email)
	assert.Equal(t, in.Name, out.Name)
}

func TestStore_MarkLoginAndTouch(t *testing.T) {
	s := New(metadata.NewMemoryRepository())
	ctx := context.Background()

	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return t0 }
	require.NoError(t, s.MarkLogin(ctx))

	s.now = func() time.Time { return t0.Add(time.Hour) }
	require.NoError(t, s.Touch(ctx))

	m, err := s.Meta(ctx)
	require.NoError(t, err)
	assert.True(t, t0.Equal(m.LastLogin))
	assert.True(t, t0.Add(time.Hour).Equal(m.LastActivity))
}

type failingRepo struct {
	metadata.Repository
}

var errBoom = errors.New("boom")

func (failingRepo) Get(context.Context, string) ([]byte, error)      { return nil, errBoom }
func (failingRepo) Set(context.Context, string, []byte) error        { return errBoom }
func (failingRepo) SetMany(context.Context, map[string][]byte) error { return errBoom }
func (failingRepo) Clear(context.Context) error                      { return errBoom }

func TestStore_ErrorsWrapped(t *testing.T) {
	s := New(failingRepo{})
	ctx := context.Background()

	_, err := s.AccessToken(ctx)
	require.ErrorIs(t, err, errBoom)
	require.ErrorIs(t, s.SetRefreshToken(ctx, "x"), errBoom)
	require.ErrorIs(t, s.SavePair(ctx, Pair{}), errBoom)
	require.ErrorIs(t, s.Clear(ctx), errBoom)
	require.ErrorIs(t, s.MarkLogin(ctx), errBoom)
	_, err = s.User(ctx)
	require.ErrorIs(t, err, errBoom)
}

func TestStore_SQLiteBackend(t *testing.T) {
	ctx := context.Background()
	db, err := metadata.OpenSQLite(ctx, t.TempDir()+"/store.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := New(metadata.NewSQLiteRepository(db))
	require.NoError(t, s.SavePair(ctx, Pair{AccessToken: "A", RefreshToken: "R"}))

	// a second store over the same database sees the session
	s2 := New(metadata.NewSQLiteRepository(db))
	p, err := s2.Pair(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", p.AccessToken)
	assert.Equal(t, "R", p.RefreshToken)
}
