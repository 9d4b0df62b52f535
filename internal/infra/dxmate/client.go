package infra_dxmate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dxmate/dxmate-bot/internal/model"
)

// Client talks to the DXmate API: rooms, reports, players and ratings.
type Client struct {
	balancer   *RRBalancer
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// New accepts one base URL or several separated by ';'.
func New(baseURLs string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		balancer: NewBalancer(baseURLs),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// send issues one request with in encoded as JSON and returns the raw body.
// A 404 yields model.ErrNotFound; transport failures and non-2xx statuses
// yield model.ErrDirectoryUnavailable.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	target := c.balancer.NextServer() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Join(model.ErrDirectoryUnavailable, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(model.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s %s", model.ErrNotFound, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("dxmate api returned error status", "method", method, "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %s %s returned status %d", model.ErrDirectoryUnavailable, method, path, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(model.ErrDirectoryUnavailable, err)
	}
	return bytes.TrimSpace(raw), nil
}

// do decodes the response into out; an empty body decodes as null.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	raw, err := c.send(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(raw) == 0 {
		raw = []byte("null")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Join(model.ErrDirectoryUnavailable, fmt.Errorf("failed to decode %s %s: %w", method, path, err))
	}
	return nil
}

// doText is for endpoints that answer with a bare string, quoted or not.
func (c *Client) doText(ctx context.Context, method, path string) (string, error) {
	raw, err := c.send(ctx, method, path, nil, nil)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	return string(raw), nil
}

func playerPath(discordID string, tail ...string) string {
	p := "/players/" + url.PathEscape(discordID)
	for _, t := range tail {
		p += "/" + t
	}
	return p
}
