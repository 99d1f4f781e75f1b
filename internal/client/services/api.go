// Package services contains application services for the jobmatch client.
// Each service wraps one backend category on top of the authenticated
// HTTP client; auth additionally keeps the local session in the token store.
package services

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/client/client"
)

// API is the transport the services need. *client.HTTPClient implements it.
type API interface {
	Do(ctx context.Context, req *client.Request, out any) error
	Ping(ctx context.Context) error
}
