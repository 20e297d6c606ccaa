// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mtmt fetches publication records from the MTMT bibliographic
// metadata service (m2.mtmt.hu) for a single author.
package mtmt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/mbalogh/pubsite/pkg/types"
)

// apiBase is the MTMT publication endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://m2.mtmt.hu/api/publication"

const (
	defaultPageSize = 50
	defaultRate     = 2.0
)

// Client pages through the MTMT publication endpoint.
type Client struct {
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a Client from the fetch configuration. The HTTP timeout
// applies per request; the rate limiter paces consecutive page requests.
func NewClient(cfg types.FetchConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRate
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// pageResponse is one page of the paginated collection endpoint.
type pageResponse struct {
	Content []Record `json:"content"`
	Paging  *paging  `json:"paging"`
}

type paging struct {
	Last *bool `json:"last"`
}

// lastPage reports whether this is the final page. A missing paging block
// or missing flag means there is nothing more to fetch.
func (p pageResponse) lastPage() bool {
	if p.Paging == nil || p.Paging.Last == nil {
		return true
	}
	return *p.Paging.Last
}

// FetchAll retrieves every publication of the configured author, following
// pagination until the service reports the last page or a page comes back
// empty. A fetch error terminates the loop early: the error is logged to w
// and whatever was collected so far is returned. There are no retries.
func (c *Client) FetchAll(ctx context.Context, cfg types.FetchConfig, w io.Writer) []Record {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var records []Record
	for page := 1; ; page++ {
		fmt.Fprintf(w, "Fetching page %d\n", page)

		resp, err := c.fetchPage(ctx, cfg, pageSize, page)
		if err != nil {
			fmt.Fprintf(w, "warning: fetching page %d: %v\n", page, err)
			break
		}

		if len(resp.Content) == 0 {
			break
		}
		records = append(records, resp.Content...)

		if resp.lastPage() {
			break
		}
	}

	fmt.Fprintf(w, "Fetched %d publications total.\n", len(records))
	return records
}

func (c *Client) fetchPage(ctx context.Context, cfg types.FetchConfig, pageSize, page int) (pageResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return pageResponse{}, fmt.Errorf("rate limiter: %w", err)
	}

	// MTMT expects the condition verbatim (semicolon-separated), so the
	// query string is assembled by hand rather than through url.Values.
	reqURL := fmt.Sprintf(
		"%s?cond=authors;eq;%d&sort=publishedYear,desc&size=%d&labelLang=eng&format=json&page=%d",
		apiBase, cfg.AuthorMTID, pageSize, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return pageResponse{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return pageResponse{}, fmt.Errorf("MTMT API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pageResponse{}, fmt.Errorf("MTMT API returned HTTP %d", resp.StatusCode)
	}

	var pr pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return pageResponse{}, fmt.Errorf("parsing MTMT response: %w", err)
	}
	return pr, nil
}

// DefaultFetchConfig returns the fetch settings the CLI starts from.
func DefaultFetchConfig() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "pubsite/0.1",
		},
		PageSize:          defaultPageSize,
		RequestsPerSecond: defaultRate,
	}
}
