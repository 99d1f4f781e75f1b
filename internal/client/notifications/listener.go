package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/client/events"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/gorilla/websocket"
)

const (
	DefaultMinBackoff = time.Second
	DefaultMaxBackoff = time.Minute
)

var (
	errReconnect    = errors.New("token refreshed, reconnecting")
	errSessionEnded = errors.New("session ended")
)

type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Listener streams notifications from the backend WebSocket into a Feed.
// It reconnects with the current token after every TokenRefreshed event and
// stops for good on SessionExpired.
type Listener struct {
	url        string
	tokens     TokenSource
	feed       *Feed
	bus        *events.Bus
	log        logging.Logger
	dialer     *websocket.Dialer
	MinBackoff time.Duration
	MaxBackoff time.Duration
}

func NewListener(url string, tokens TokenSource, feed *Feed, bus *events.Bus, log logging.Logger) *Listener {
	if log == nil {
		log = logging.Nop{}
	}
	return &Listener{
		url:        url,
		tokens:     tokens,
		feed:       feed,
		bus:        bus,
		log:        log.With("component", "notifications"),
		dialer:     &websocket.Dialer{HandshakeTimeout: 10 * time.Second, Proxy: http.ProxyFromEnvironment},
		MinBackoff: DefaultMinBackoff,
		MaxBackoff: DefaultMaxBackoff,
	}
}

// Run blocks until ctx is done (returning its error) or the session expires
// (returning nil).
func (l *Listener) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	refreshed := make(chan struct{}, 1)
	unsubRefreshed := l.bus.Subscribe(events.TokenRefreshed, func(events.Event) {
		select {
		case refreshed <- struct{}{}:
		default:
		}
	})
	defer unsubRefreshed()
	unsubExpired := l.bus.Subscribe(events.SessionExpired, func(events.Event) {
		cancel(errSessionEnded)
	})
	defer unsubExpired()

	backoff := l.MinBackoff
	for {
		if ctx.Err() != nil {
			return exitErr(ctx)
		}

		token, err := l.tokens.AccessToken(ctx)
		if err != nil {
			return err
		}
		if token == "" {
			// nothing to authenticate with until somebody logs in or refreshes
			select {
			case <-ctx.Done():
				return exitErr(ctx)
			case <-refreshed:
				continue
			}
		}

		connected, err := l.serve(ctx, token, refreshed)
		if ctx.Err() != nil {
			return exitErr(ctx)
		}
		if connected {
			backoff = l.MinBackoff
		}
		if errors.Is(err, errReconnect) {
			continue
		}

		l.log.Warn(ctx, "notification stream interrupted", "error", err, "retry_in", backoff)
		select {
		case <-ctx.Done():
			return exitErr(ctx)
		case <-refreshed:
			backoff = l.MinBackoff
			continue
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > l.MaxBackoff {
			backoff = l.MaxBackoff
		}
	}
}

func exitErr(ctx context.Context) error {
	if errors.Is(context.Cause(ctx), errSessionEnded) {
		return nil
	}
	return ctx.Err()
}

// serve holds one connection until it drops or has to be replaced.
func (l *Listener) serve(ctx context.Context, token string, refreshed <-chan struct{}) (bool, error) {
	header := http.Header{}
	header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	conn, resp, err := l.dialer.DialContext(ctx, l.url, header)
	if err != nil {
		if resp != nil {
			return false, fmt.Errorf("dial: %s: %w", resp.Status, err)
		}
		return false, fmt.Errorf("dial: %w", err)
	}
	l.log.Info(ctx, "notification stream connected", "token", logging.RedactToken(token))

	done := make(chan struct{})
	exited := make(chan struct{})
	reason := make(chan error, 1)
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
		case <-refreshed:
			reason <- errReconnect
		case <-done:
			return
		}
		_ = conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			_ = conn.Close()
			// the watcher may have taken a refresh signal just as the read failed
			close(done)
			<-exited
			select {
			case r := <-reason:
				return true, r
			default:
			}
			return true, err
		}

		var n models.Notification
		if err := json.Unmarshal(data, &n); err != nil {
			l.log.Warn(ctx, "skipping malformed notification", "error", err)
			continue
		}
		l.feed.Add(n)
	}
}
