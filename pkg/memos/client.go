// Package memos is a thin HTTP client for the Memos REST API. It attaches
// bearer auth and JSON headers to every request and turns non-2xx responses
// into *APIError values.
package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/openclaw/memos-mcp/pkg/config"
)

// apiName prefixes API error messages.
const apiName = "Memos"

// APIError is returned when the API responds with a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (%d): %s", apiName, e.Status, e.Message)
}

// RequestOptions overrides parts of a request. The zero value is a GET with
// no body.
type RequestOptions struct {
	Method  string            // HTTP method (default GET).
	Body    any               // JSON-encoded when non-nil.
	Headers map[string]string // Applied last; replaces default headers on conflict.
}

// ConfigSource yields the connection settings. config.Loader.Config and
// config.Static both satisfy it.
type ConfigSource func() (config.Config, error)

// Client sends requests to the Memos API.
type Client struct {
	source ConfigSource
	http   *http.Client
	log    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client. The config source is called on every request, so a
// lazy source defers configuration errors until the first call.
func New(source ConfigSource, opts ...Option) *Client {
	c := &Client{
		source: source,
		http:   http.DefaultClient,
		log:    slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Request sends a request to path, which is appended verbatim to the API base
// URL. On a 2xx response other than 204 the JSON body is decoded into out; a
// nil out discards it. A 204 leaves out untouched.
func (c *Client) Request(ctx context.Context, path string, opts *RequestOptions, out any) error {
	cfg, err := c.source()
	if err != nil {
		return err
	}

	if opts == nil {
		opts = &RequestOptions{}
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("memos: marshal body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, cfg.APIURL+path, body)
	if err != nil {
		return fmt.Errorf("memos: build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()

	resp, err := c.http.Do(req) //nolint:gosec // URL is built from trusted base URL config
	if err != nil {
		return fmt.Errorf("memos: do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.DebugContext(ctx, "memos request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, err := io.ReadAll(resp.Body)
		detail := errorDetail(raw)
		if err != nil {
			detail = readFailure(detail, err)
		}
		return &APIError{Status: resp.StatusCode, Message: detail}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("memos: decode response: %w", err)
	}

	return nil
}

// Do is the typed form of Client.Request. A 204 response yields the zero T.
func Do[T any](ctx context.Context, c *Client, path string, opts *RequestOptions) (T, error) {
	var out T
	if err := c.Request(ctx, path, opts, &out); err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}

// readFailure appends a body read error to whatever detail was recovered.
func readFailure(detail string, err error) string {
	if detail == "" {
		return "read body: " + err.Error()
	}
	return detail + " (read body: " + err.Error() + ")"
}

// errorDetail picks the most useful text from an error body: the JSON
// "message" field, then the "error" field, then the raw body.
func errorDetail(raw []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return string(raw)
	}

	for _, key := range []string{"message", "error"} {
		if s, ok := detailText(fields[key]); ok {
			return s
		}
	}

	return string(raw)
}

// detailText renders a JSON value as error detail. Empty strings, zero, false
// and null are skipped.
func detailText(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, val != ""
	case bool:
		return "true", val
	case float64:
		return fmt.Sprint(val), val != 0
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return "", false
		}
		return string(data), true
	}
}
