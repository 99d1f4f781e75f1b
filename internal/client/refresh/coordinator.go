// Package refresh serializes access token refreshes. However many callers
// notice an expired token at once, only one refresh request goes out and
// every caller receives its outcome.
package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/client/events"
	"github.com/dmitrijs2005/jobmatch/internal/client/jwtx"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/client/tokenstore"
	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
)

const DefaultTimeout = 15 * time.Second

// Refresher performs the network exchange of a refresh token for new tokens.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (models.Tokens, error)
}

type RefresherFunc func(ctx context.Context, refreshToken string) (models.Tokens, error)

func (f RefresherFunc) Refresh(ctx context.Context, refreshToken string) (models.Tokens, error) {
	return f(ctx, refreshToken)
}

// Store is the part of the token store the coordinator needs.
type Store interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	SavePair(ctx context.Context, p tokenstore.Pair) error
	Clear(ctx context.Context) error
}

type result struct {
	token string
	err   error
}

type Coordinator struct {
	store     Store
	refresher Refresher
	bus       *events.Bus
	log       logging.Logger
	timeout   time.Duration
	now       func() time.Time

	mu         sync.Mutex
	refreshing bool
	waiters    []chan result
}

// New returns an idle coordinator. timeout bounds a single refresh request;
// zero means DefaultTimeout. bus and log may be nil.
func New(store Store, r Refresher, bus *events.Bus, log logging.Logger, timeout time.Duration) *Coordinator {
	if log == nil {
		log = logging.Nop{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Coordinator{
		store:     store,
		refresher: r,
		bus:       bus,
		log:       log.With("component", "refresh"),
		timeout:   timeout,
		now:       time.Now,
	}
}

// Refreshing reports whether a refresh is in flight.
func (c *Coordinator) Refreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshing
}

// Refresh returns a fresh access token. staleToken is the token the caller
// found expired or had rejected; if the store already holds a different
// one, that token is returned without a refresh.
//
// If a refresh is running the caller joins it. Waiters are resolved in
// arrival order. Cancelling ctx abandons the wait but not the refresh.
func (c *Coordinator) Refresh(ctx context.Context, staleToken string) (string, error) {
	c.mu.Lock()
	if !c.refreshing {
		current, err := c.store.AccessToken(ctx)
		if err != nil {
			c.mu.Unlock()
			return "", err
		}
		if current != "" && current != staleToken {
			c.mu.Unlock()
			return current, nil
		}
		c.refreshing = true
		go c.run(context.WithoutCancel(ctx))
	}
	ch := make(chan result, 1)
	c.waiters = append(c.waiters, ch)
	c.mu.Unlock()

	select {
	case r := <-ch:
		return r.token, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *Coordinator) run(parent context.Context) {
	token, err := c.refresh(parent)

	c.mu.Lock()
	waiters := c.waiters
	c.waiters = nil
	c.refreshing = false
	c.mu.Unlock()

	for _, w := range waiters {
		w <- result{token: token, err: err}
	}
}

// refresh bounds its work by c.timeout. A failure clears the session on a
// fresh context so an exhausted deadline cannot leave the old tokens behind.
func (c *Coordinator) refresh(parent context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	refreshToken, err := c.store.RefreshToken(ctx)
	if err != nil {
		return "", err
	}
	if refreshToken == "" {
		return "", ErrNotAuthenticated
	}

	started := c.now()
	tokens, err := c.refresher.Refresh(ctx, refreshToken)
	if err == nil && tokens.AccessToken == "" {
		err = common.ErrInvalidToken
	}
	if err != nil {
		return "", c.expire(parent, err)
	}

	// fixed refresh token servers omit it from the response
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refreshToken
	}

	expiresAt := tokens.ExpiresAt(c.now())
	if expiresAt.IsZero() {
		expiresAt, _ = jwtx.ExpiresAt(tokens.AccessToken)
	}

	pair := tokenstore.Pair{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    expiresAt,
	}
	if err := c.store.SavePair(ctx, pair); err != nil {
		return "", fmt.Errorf("save refreshed tokens: %w", err)
	}

	c.log.Info(ctx, "access token refreshed", "duration", c.now().Sub(started))
	c.bus.Publish(events.Event{Kind: events.TokenRefreshed})

	return tokens.AccessToken, nil
}

// expire drops the session after a failed refresh.
func (c *Coordinator) expire(parent context.Context, cause error) error {
	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	c.log.Warn(ctx, "token refresh failed, clearing session", "error", cause)

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear session", "error", err)
	}
	c.bus.Publish(events.Event{Kind: events.SessionExpired, Err: cause, Message: cause.Error()})

	return fmt.Errorf("%w: %w", ErrSessionExpired, cause)
}
