// Package common contains shared constants and sentinel errors used across
// jobmatch components.
package common

// AuthorizationHeaderName is the HTTP header that carries the access token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries the per-call correlation id.
const RequestIDHeaderName = "X-Request-Id"
