// Package client contains the authenticated HTTP client for the job-matching
// backend and the bootstrap of its local session storage.
//
// # Overview
//
// The package provides:
//  1. HTTPClient, which sends Requests built from the endpoints registry,
//     attaches the bearer token, refreshes it proactively when it is about to
//     expire and, on a 401, refreshes once and retries the call once.
//     Concurrent refreshes are collapsed by a Coordinator (see package
//     refresh).
//  2. AuthRefresher, the no-auth call to POST /auth/refresh used by the
//     coordinator.
//  3. InitStore, which opens the configured session storage (SQLite with
//     embedded goose migrations, memory or Redis), optionally sealed with a
//     passphrase.
//
// # Error Handling
//
// Non-2xx answers are returned as *APIError and match the sentinels
// ErrUnauthorized, ErrForbidden, ErrNotFound, ErrRateLimited and ErrServer
// with errors.Is. Transport failures wrap ErrUnavailable. 403, 404, 429 and
// 5xx answers are also published on the event bus.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every call honours its context;
// a refresh in flight is not cancelled by any single caller.
package client
