package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/client/config"
	"github.com/dmitrijs2005/jobmatch/internal/client/events"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/client/notifications"
	"github.com/dmitrijs2005/jobmatch/internal/client/services"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Services bundles the API services the commands talk to.
type Services struct {
	Auth          services.AuthService
	Profile       services.ProfileService
	Resumes       services.ResumeService
	Jobs          services.JobService
	Matches       services.MatchService
	Analytics     services.AnalyticsService
	Notifications services.NotificationService
}

type App struct {
	config   *config.Config
	svc      Services
	feed     *notifications.Feed
	listener *notifications.Listener
	bus      *events.Bus
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	mu             sync.Mutex
	user           *models.User
	cancelListener context.CancelFunc
	Mode           Mode
}

// NewApp wires the CLI. listener may be nil when no notifications URL is
// configured.
func NewApp(c *config.Config, svc Services, feed *notifications.Feed, listener *notifications.Listener,
	bus *events.Bus, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop{}
	}
	return &App{
		config:   c,
		svc:      svc,
		feed:     feed,
		listener: listener,
		bus:      bus,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()
	if changed {
		a.log.Info(context.Background(), "switched mode", "mode", mode)
	}
}

func (a *App) setUser(u *models.User) {
	a.mu.Lock()
	a.user = u
	a.mu.Unlock()
}

func (a *App) currentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *App) isLoggedIn() bool {
	return a.currentUser() != nil
}

// Run restores a stored session, starts the background workers and blocks
// in the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.stopListener()

	a.println("Welcome to jobmatch CLI (type 'help' for commands)")

	if u, err := a.svc.Auth.Current(ctx); err != nil {
		a.log.Warn(ctx, "cannot restore session", "error", err)
	} else if u != nil {
		a.setUser(u)
		a.println("Restored session for", u.Email)
		a.startListener(ctx)
	}

	unsubscribe := a.watchEvents()
	defer unsubscribe()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) getStatus() string {
	s := ""
	if u := a.currentUser(); u != nil {
		s = u.Email + " "
	}
	a.mu.Lock()
	mode := a.Mode
	a.mu.Unlock()
	if mode != "" {
		s = s + string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher probes the backend every interval and flips Mode.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	check := func() {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := a.svc.Auth.Ping(pctx); err != nil {
			a.setMode(ModeOffline)
		} else {
			a.setMode(ModeOnline)
		}
	}
	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			check()
		case <-ctx.Done():
			return
		}
	}
}

// watchEvents turns client events into user-facing messages.
func (a *App) watchEvents() func() {
	unsubs := []func(){
		a.bus.Subscribe(events.SessionExpired, func(events.Event) {
			a.setUser(nil)
			a.feed.Clear()
			a.println("Your session has expired, please log in again.")
		}),
		a.bus.Subscribe(events.Forbidden, func(e events.Event) {
			a.println("Access denied:", e.Message)
		}),
		a.bus.Subscribe(events.RateLimited, func(e events.Event) {
			a.println("Too many requests, slow down:", e.Message)
		}),
		a.bus.Subscribe(events.ServerError, func(e events.Event) {
			a.println("Server error, try again later:", e.Message)
		}),
	}
	unsubs = append(unsubs, a.feed.Subscribe(func(n models.Notification) {
		a.println("New notification:", n.Title)
	}))

	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// startListener runs the notification stream until the session ends,
// replacing a stream that is already running.
func (a *App) startListener(ctx context.Context) {
	if a.listener == nil {
		return
	}
	a.stopListener()

	ctx, cancel := context.WithCancel(ctx)
	a.mu.Lock()
	a.cancelListener = cancel
	a.mu.Unlock()

	go func() {
		if err := a.listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Warn(ctx, "notification listener stopped", "error", err)
		}
	}()
}

func (a *App) stopListener() {
	a.mu.Lock()
	cancel := a.cancelListener
	a.cancelListener = nil
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// report prints a command failure in a friendly form.
func (a *App) report(err error) error {
	if err != nil {
		a.println("Error:", describe(err))
	}
	return err
}
