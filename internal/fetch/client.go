// Package fetch downloads puzzle inputs and the sample inputs embedded in puzzle pages.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gearscan/internal/logging"

	"go.uber.org/zap"
)

// ErrNoSession is returned when a download needs the session cookie and none is set.
var ErrNoSession = errors.New("session cookie not configured (set AOC_SESSION)")

const userAgent = "gearscan (+https://github.com/gearscan/gearscan)"

// maxBody bounds how much of a response is read.
const maxBody = 4 << 20

// StatusError reports a non-200 response.
type StatusError struct {
	URL  string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.URL, e.Code, e.Body)
}

// Client downloads puzzle data. URL templates contain a single %d for the day.
type Client struct {
	inputURL   string
	puzzleURL  string
	session    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the parent logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = logging.For(l, logging.CategoryFetch) }
}

// New creates a Client.
func New(inputURL, puzzleURL, session string, opts ...Option) *Client {
	c := &Client{
		inputURL:   inputURL,
		puzzleURL:  puzzleURL,
		session:    strings.TrimSpace(session),
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchInput downloads the personal puzzle input for day.
func (c *Client) FetchInput(ctx context.Context, day int) ([]byte, error) {
	if c.session == "" {
		return nil, ErrNoSession
	}
	return c.get(ctx, fmt.Sprintf(c.inputURL, day))
}

// FetchSamples downloads the puzzle page for day and returns its sample inputs.
func (c *Client) FetchSamples(ctx context.Context, day int) ([]string, error) {
	body, err := c.get(ctx, fmt.Sprintf(c.puzzleURL, day))
	if err != nil {
		return nil, err
	}
	return ExtractSamples(bytes.NewReader(body))
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	}

	c.logger.Debug("fetching", zap.String("url", url))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		snippet := strings.TrimSpace(string(body))
		if len(snippet) > 200 {
			snippet = snippet[:200] + "..."
		}
		return nil, &StatusError{URL: url, Code: resp.StatusCode, Body: snippet}
	}

	c.logger.Debug("fetched", zap.String("url", url), zap.Int("bytes", len(body)))
	return body, nil
}
