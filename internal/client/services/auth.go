package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/client/client"
	"github.com/dmitrijs2005/jobmatch/internal/client/endpoints"
	"github.com/dmitrijs2005/jobmatch/internal/client/jwtx"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/client/tokenstore"
	"github.com/dmitrijs2005/jobmatch/internal/client/validation"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account and start a session for it.
//   - Login: authenticate and persist the token pair and user snapshot.
//   - Logout: tell the server (best effort) and always drop the local session.
//   - Current: the user of the stored session, nil if there is none.
//   - Ping: check server liveness.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.User, error)
	Ping(ctx context.Context) error
}

// authService is the concrete AuthService backed by the API and the token
// store.
type authService struct {
	api   API
	store *tokenstore.Store
	log   logging.Logger
	now   func() time.Time
}

// NewAuthService constructs an AuthService bound to the given API and store.
func NewAuthService(api API, store *tokenstore.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop{}
	}
	return &authService{api: api, store: store, log: log.With("service", "auth"), now: time.Now}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := a.api.Do(ctx, &client.Request{Endpoint: endpoints.Register, Body: req}, &resp); err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	if err := a.startSession(ctx, resp); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "registered", "email", logging.RedactEmail(req.Email))
	return &resp.User, nil
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := a.api.Do(ctx, &client.Request{Endpoint: endpoints.Login, Body: req}, &resp); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.startSession(ctx, resp); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "logged in", "email", logging.RedactEmail(req.Email))
	return &resp.User, nil
}

// startSession persists everything a login or register answer carries.
func (a *authService) startSession(ctx context.Context, resp models.AuthResponse) error {
	if resp.Tokens.AccessToken == "" {
		return fmt.Errorf("session data saving error: empty access token")
	}

	expiresAt := resp.Tokens.ExpiresAt(a.now())
	if expiresAt.IsZero() {
		expiresAt, _ = jwtx.ExpiresAt(resp.Tokens.AccessToken)
	}

	pair := tokenstore.Pair{
		AccessToken:  resp.Tokens.AccessToken,
		RefreshToken: resp.Tokens.RefreshToken,
		ExpiresAt:    expiresAt,
	}
	if err := a.store.SavePair(ctx, pair); err != nil {
		return fmt.Errorf("session data saving error: %w", err)
	}
	if err := a.store.SaveUser(ctx, resp.User); err != nil {
		return fmt.Errorf("session data saving error: %w", err)
	}
	if err := a.store.MarkLogin(ctx); err != nil {
		return fmt.Errorf("session data saving error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	token, err := a.store.AccessToken(ctx)
	if err != nil {
		return err
	}
	if token != "" {
		if err := a.api.Do(ctx, &client.Request{Endpoint: endpoints.Logout}, nil); err != nil {
			a.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
		}
	}
	return a.store.Clear(ctx)
}

func (a *authService) Current(ctx context.Context) (*models.User, error) {
	token, err := a.store.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	return a.store.User(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.api.Ping(ctx)
}
