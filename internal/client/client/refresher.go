package client

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/client/endpoints"
	"github.com/dmitrijs2005/jobmatch/internal/client/events"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
)

// AuthRefresher exchanges a refresh token at POST /auth/refresh. It goes out
// without a bearer token and never triggers a refresh itself.
type AuthRefresher struct {
	c *HTTPClient
}

func NewAuthRefresher(opts Options, bus *events.Bus, log logging.Logger) *AuthRefresher {
	return &AuthRefresher{c: New(opts, nil, nil, bus, log)}
}

func (r *AuthRefresher) Refresh(ctx context.Context, refreshToken string) (models.Tokens, error) {
	var tokens models.Tokens
	err := r.c.Do(ctx, &Request{
		Endpoint: endpoints.Refresh,
		Body:     models.RefreshRequest{RefreshToken: refreshToken},
	}, &tokens)
	return tokens, err
}
