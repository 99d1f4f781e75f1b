package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/client/events"
	"github.com/dmitrijs2005/jobmatch/internal/client/jwtx"
	"github.com/dmitrijs2005/jobmatch/internal/client/refresh"
	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/google/uuid"
)

const (
	DefaultTimeout      = 30 * time.Second
	DefaultExpiryMargin = 30 * time.Second

	maxResponseBody = 10 << 20
)

// TokenStore is the part of the token store the client reads.
type TokenStore interface {
	AccessToken(ctx context.Context) (string, error)
	Touch(ctx context.Context) error
}

// Coordinator hands out a fresh access token in place of staleToken.
type Coordinator interface {
	Refresh(ctx context.Context, staleToken string) (string, error)
}

type Options struct {
	BaseURL string
	// ExpiryMargin makes tokens expiring this soon count as expired.
	ExpiryMargin time.Duration
	// Timeout applies per attempt. Ignored when HTTPClient is set.
	Timeout    time.Duration
	HTTPClient *http.Client
}

type HTTPClient struct {
	baseURL string
	margin  time.Duration
	hc      *http.Client
	store   TokenStore
	coord   Coordinator
	bus     *events.Bus
	log     logging.Logger
}

// New builds a client. store and coord may be nil for a client that only
// calls endpoints without auth.
func New(opts Options, store TokenStore, coord Coordinator, bus *events.Bus, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.Nop{}
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	margin := opts.ExpiryMargin
	if margin < 0 {
		margin = 0
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		margin:  margin,
		hc:      hc,
		store:   store,
		coord:   coord,
		bus:     bus,
		log:     log.With("component", "http"),
	}
}

type response struct {
	status int
	header http.Header
	body   []byte
}

// Do performs req and decodes the response data into out (which may be nil).
//
// Authenticated endpoints get the stored bearer token; an expired token is
// refreshed first. A 401 triggers one refresh and one retry of this call.
// The retry decision is local to this invocation.
func (c *HTTPClient) Do(ctx context.Context, req *Request, out any) error {
	path, err := req.Endpoint.Expand(req.PathParams)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	log := c.log.With("request_id", requestID, "endpoint", req.Endpoint.Name)

	var token string
	if req.Endpoint.Auth {
		token, err = c.store.AccessToken(ctx)
		if err != nil {
			return err
		}
		if token != "" && jwtx.IsExpired(token, c.margin) {
			log.Debug(ctx, "access token expired, refreshing before request")
			token, err = c.coord.Refresh(ctx, token)
			if err != nil {
				return err
			}
		}
	}

	res, err := c.send(ctx, log, req, path, token, requestID, 1)
	if err != nil {
		return err
	}

	if res.status == http.StatusUnauthorized && req.Endpoint.Auth {
		rejected := c.apiError(req, path, requestID, res)
		fresh, rerr := c.coord.Refresh(ctx, token)
		if rerr != nil {
			return fmt.Errorf("%w: %w", rerr, rejected)
		}
		res, err = c.send(ctx, log, req, path, fresh, requestID, 2)
		if err != nil {
			return err
		}
	}

	return c.handle(ctx, log, req, path, requestID, res, out)
}

func (c *HTTPClient) send(ctx context.Context, log logging.Logger, req *Request, path, token, requestID string, attempt int) (*response, error) {
	body, contentType, err := req.encode()
	if err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Endpoint.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(common.RequestIDHeaderName, requestID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	started := time.Now()
	resp, err := c.hc.Do(httpReq)
	if err != nil {
		log.Warn(ctx, "request failed", "method", req.Endpoint.Method, "path", path,
			"attempt", attempt, "duration", time.Since(started), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	log.Info(ctx, "request", "method", req.Endpoint.Method, "path", path,
		"status", resp.StatusCode, "attempt", attempt, "duration", time.Since(started))

	return &response{status: resp.StatusCode, header: resp.Header, body: data}, nil
}

func (c *HTTPClient) handle(ctx context.Context, log logging.Logger, req *Request, path, requestID string, res *response, out any) error {
	if res.status >= 200 && res.status < 300 {
		if err := decodeEnvelope(res.body, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", req.Endpoint.Method, path, err)
		}
		if req.Endpoint.Auth && c.store != nil {
			if err := c.store.Touch(ctx); err != nil {
				log.Warn(ctx, "failed to record activity", "error", err)
			}
		}
		return nil
	}

	apiErr := c.apiError(req, path, requestID, res)
	c.publish(apiErr)
	return apiErr
}

func (c *HTTPClient) publish(e *APIError) {
	var kind events.Kind
	switch {
	case e.StatusCode == http.StatusForbidden:
		kind = events.Forbidden
	case e.StatusCode == http.StatusNotFound:
		kind = events.NotFound
	case e.StatusCode == http.StatusTooManyRequests:
		kind = events.RateLimited
	case e.StatusCode >= http.StatusInternalServerError:
		kind = events.ServerError
	default:
		return
	}
	c.bus.Publish(events.Event{
		Kind:      kind,
		Status:    e.StatusCode,
		Method:    e.Method,
		Path:      e.Path,
		RequestID: e.RequestID,
		Message:   e.Message,
		Err:       e,
	})
}

func (c *HTTPClient) apiError(req *Request, path, requestID string, res *response) *APIError {
	msg := errorMessage(res.body)
	if msg == "" {
		msg = http.StatusText(res.status)
	}
	return &APIError{
		StatusCode: res.status,
		Message:    msg,
		Method:     req.Endpoint.Method,
		Path:       path,
		RequestID:  requestID,
		RetryAfter: retryAfter(res.header.Get("Retry-After")),
	}
}

// Ping reports whether the backend answers at all. Any HTTP status counts.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))
	return resp.Body.Close()
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// decodeEnvelope unpacks {"status","data","message"}. Bodies that are not
// an envelope are decoded as a whole.
func decodeEnvelope(body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err == nil {
		if _, ok := probe["status"]; ok {
			data := probe["data"]
			if len(data) == 0 || bytes.Equal(data, []byte("null")) {
				return nil
			}
			return json.Unmarshal(data, out)
		}
	}
	return json.Unmarshal(body, out)
}

func errorMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	return env.Error
}

func retryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// IsAuthError reports whether err means the user has to log in again.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, refresh.ErrSessionExpired) ||
		errors.Is(err, refresh.ErrNotAuthenticated)
}
