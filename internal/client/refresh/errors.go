package refresh

import "errors"

var (
	// ErrSessionExpired is returned to every caller waiting on a refresh that
	// failed. The session has been cleared by the time it is seen.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotAuthenticated means there is no refresh token to use.
	ErrNotAuthenticated = errors.New("not authenticated")
)
