// Package jobs provides a read-only client for the external remote-jobs
// listing API. Postings are never written back or mirrored into the
// document store.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/remotehub/jobboard-api/internal/core/domain"
	"github.com/remotehub/jobboard-api/internal/core/ports"
)

const defaultFetchTimeout = 15 * time.Second

// Client fetches postings from a Remotive-style feed endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultFetchTimeout},
	}
}

// feedResponse is the upstream envelope: {"jobs": [...]}.
type feedResponse struct {
	Jobs []domain.JobPosting `json:"jobs"`
}

// Fetch retrieves postings matching the query. Search and category are
// passed through as upstream query parameters.
func (c *Client) Fetch(ctx context.Context, query ports.JobsQuery) ([]domain.JobPosting, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("jobs feed url: %w", err)
	}

	params := u.Query()
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("jobs feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jobs feed fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jobs feed fetch: unexpected status %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("jobs feed decode: %w", err)
	}
	return feed.Jobs, nil
}
