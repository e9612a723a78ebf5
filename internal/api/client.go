package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultHost      = "http://localhost:8384"
	defaultUserAgent = "syncctl/0.1"
	headerAPIKey     = "X-API-Key"
)

// Client talks to the daemon's REST API. It holds the resolved credentials
// for a single invocation and keeps no state between calls.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
	logger    *slog.Logger
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default transport. Use this to restore
// certificate verification or to point tests at a custom client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds a client for the daemon at host, authenticating every request
// with apiKey.
func New(host, apiKey string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(host)
	if err != nil {
		return nil, err
	}
	client := &Client{
		baseURL:   base,
		apiKey:    strings.TrimSpace(apiKey),
		http:      defaultHTTPClient(),
		userAgent: defaultUserAgent,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// The daemon commonly serves its API over a locally issued self-signed
// certificate, so the default transport skips certificate verification.
// That is a deliberate trust decision for the local-admin case; callers
// that need verification pass WithHTTPClient with a standard transport.
func defaultHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	return &http.Client{Transport: transport}
}

func parseBaseURL(host string) (*url.URL, error) {
	trimmed := strings.TrimSpace(host)
	if trimmed == "" {
		trimmed = defaultHost
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	trimmed = strings.TrimRight(trimmed, "/")
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse host %q: %w", host, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (Value, error) {
	data, err := c.roundTrip(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return Value{}, err
	}
	return c.decode(http.MethodGet, path, data)
}

// post sends an optional JSON body. Several control endpoints acknowledge
// with an empty body, which normalizes to NoContent rather than a decode
// failure.
func (c *Client) post(ctx context.Context, path string, query url.Values, body any) (Value, error) {
	data, err := c.roundTrip(ctx, http.MethodPost, path, query, body)
	if err != nil {
		return Value{}, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return NoContent, nil
	}
	return c.decode(http.MethodPost, path, data)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	rel := &url.URL{Path: path, RawQuery: query.Encode()}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body for %s: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body of %s %s: %v", ErrTransport, method, path, err)
	}

	c.logger.DebugContext(ctx, "api call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Status: resp.StatusCode, Method: method, Path: path}
	}
	return data, nil
}

func (c *Client) decode(method, path string, data []byte) (Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Value{}, fmt.Errorf("%w: %s %s: %v", ErrDecode, method, path, err)
	}
	return newValue(raw), nil
}
