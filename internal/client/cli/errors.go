package cli

import (
	"errors"

	"github.com/dmitrijs2005/jobmatch/internal/client/client"
	"github.com/dmitrijs2005/jobmatch/internal/client/refresh"
	"github.com/dmitrijs2005/jobmatch/internal/client/validation"
)

// describe maps client errors to short messages for the terminal.
func describe(err error) string {
	var verrs validation.Errors
	var apiErr *client.APIError

	switch {
	case errors.As(err, &verrs):
		return verrs.Error()
	case errors.Is(err, refresh.ErrSessionExpired):
		return "session expired, please log in again"
	case errors.Is(err, refresh.ErrNotAuthenticated):
		return "you are not logged in"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return apiErr.Error()
	default:
		return err.Error()
	}
}
