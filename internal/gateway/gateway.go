package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const requestTimeout = 10 * time.Second

// TokenSource supplies the current bearer token at call time.
// An empty string means no session is held and the Authorization
// header is omitted entirely.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client is the single chokepoint through which every call to the
// SmartLibrary backend passes. It attaches the bearer token, enforces
// the request timeout, normalizes every failure into the Result shape
// and fires the unauthorized hook when any call comes back 401.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithUnauthorizedHook sets the callback fired when any call is rejected
// with 401. The hook runs once per offending call, regardless of which
// operation triggered it.
func WithUnauthorizedHook(hook func()) Option {
	return func(c *Client) {
		c.onUnauthorized = hook
	}
}

// New creates a new API client
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		tokens: tokens,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError carries the HTTP status and the server-provided error
// payload, if one was decodable from the response body.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	if e.message != "" {
		return fmt.Sprintf("request failed (status %d): %s", e.status, e.message)
	}
	return fmt.Sprintf("request failed (status %d)", e.status)
}

// envelope is the uniform response wrapper the backend uses.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

// serverError extracts the server-provided error text from a response
// body, or returns empty if none was decodable.
func serverError(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if len(env.Error) > 0 && string(env.Error) != "null" {
		var text string
		if err := json.Unmarshal(env.Error, &text); err == nil {
			return text
		}
		// Structured error payload, pass it through verbatim
		return string(env.Error)
	}
	return env.Message
}

// do performs one HTTP round-trip. Cross-cutting behavior lives here:
// auth-header injection, request IDs, the 401 eviction hook and the
// translation of non-2xx statuses into apiError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	requestID := ulid.Make().String()
	req.Header.Set("X-Request-Id", requestID)

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Msg("Calling backend")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn().Str("request_id", requestID).Msg("Session rejected by backend")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &apiError{status: resp.StatusCode, message: serverError(body)}
	}

	return body, nil
}

// decodePayload unwraps the response envelope into T. Bodies without an
// envelope decode directly. An envelope with success=false becomes an
// error carrying the server payload.
func decodePayload[T any](body []byte) (T, error) {
	var data T
	if len(body) == 0 {
		return data, nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Success != nil {
		if !*env.Success {
			return data, &apiError{status: http.StatusOK, message: serverError(body)}
		}
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return data, nil
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return data, fmt.Errorf("failed to decode response: %w", err)
		}
		return data, nil
	}

	if err := json.Unmarshal(body, &data); err != nil {
		return data, fmt.Errorf("failed to decode response: %w", err)
	}
	return data, nil
}

// call runs one operation and normalizes every failure into the uniform
// result shape. It never returns a Go error and never panics.
func call[T any](c *Client, ctx context.Context, method, path string, query url.Values, payload any, fallback string) Result[T] {
	body, err := c.do(ctx, method, path, query, payload)
	if err != nil {
		return failure[T](c, err, fallback)
	}

	data, err := decodePayload[T](body)
	if err != nil {
		return failure[T](c, err, fallback)
	}

	return Result[T]{Success: true, Data: data}
}

// callList is call for list-returning operations: Data is always a
// non-nil slice, even on failure, so callers can render "no items"
// without nil checks.
func callList[T any](c *Client, ctx context.Context, method, path string, query url.Values, fallback string) Result[[]T] {
	res := call[[]T](c, ctx, method, path, query, nil, fallback)
	if res.Data == nil {
		res.Data = []T{}
	}
	return res
}

func failure[T any](c *Client, err error, fallback string) Result[T] {
	c.log.Debug().Err(err).Msg("Request failed")

	message := fallback
	var apiErr *apiError
	if errors.As(err, &apiErr) && apiErr.message != "" {
		message = apiErr.message
	}

	var zero T
	return Result[T]{Success: false, Error: message, Data: zero}
}
