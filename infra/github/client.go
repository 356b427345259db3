package github

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"folio/domain"
)

const defaultBaseURL = "https://api.github.com"

// Client is a thin HTTP wrapper for the public GitHub REST API.
// No authentication: only public, read-only endpoints are used, which is
// also why 403 responses are treated as rate limiting.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a GitHub API client. An empty baseURL selects the
// public API host.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// Get performs a GET request and classifies error responses:
// 403 → domain.ErrRateLimited, 404 → domain.ErrUserNotFound, any other
// non-2xx → *domain.APIError carrying the status code.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrUserNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &domain.APIError{Status: resp.StatusCode}
	}

	return data, nil
}
