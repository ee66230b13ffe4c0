// Package catalog fetches dataset metadata from a CKAN data portal.
// The portal's current_package_list_with_resources action is paged with
// limit/offset windows until an empty result page comes back. Fetch
// failures are fatal to the run: the batch pipeline never scores a
// partial catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dotcommander/mqa/internal/metadata"
)

// DefaultURL is the Berlin Open Data portal's package listing action.
const DefaultURL = "https://datenregister.berlin.de/api/3/action/current_package_list_with_resources"

// DefaultPageLimit is the records-per-request window.
const DefaultPageLimit = 500

// Client pages through a CKAN catalog.
type Client struct {
	baseURL   string
	pageLimit int
	pause     time.Duration
	http      *http.Client

	// Progress, when set, is called after every fetched page with the
	// running record count.
	Progress func(fetched int)
}

// New returns a Client for the given package-list endpoint. A zero
// pageLimit falls back to DefaultPageLimit.
func New(baseURL string, pageLimit int) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if pageLimit <= 0 {
		pageLimit = DefaultPageLimit
	}
	return &Client{
		baseURL:   baseURL,
		pageLimit: pageLimit,
		pause:     2 * time.Second,
		http:      &http.Client{Timeout: 60 * time.Second},
	}
}

// listResponse is the CKAN action envelope; only the result payload
// matters here.
type listResponse struct {
	Success bool             `json:"success"`
	Result  []map[string]any `json:"result"`
}

// Datasets fetches every record from the catalog, requesting successive
// offset windows until an empty page is returned. Embedded list fields
// are decoded before the records are handed on.
func (c *Client) Datasets(ctx context.Context) ([]metadata.Dataset, error) {
	var all []metadata.Dataset

	for offset := 0; ; offset += c.pageLimit {
		page, err := c.fetchPage(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("fetching catalog page at offset %d: %w", offset, err)
		}
		if len(page) == 0 {
			break
		}
		for _, record := range page {
			all = append(all, metadata.DecodeEmbedded(metadata.Dataset(record)))
		}
		if c.Progress != nil {
			c.Progress(len(all))
		}
		// CKAN returns short pages at the end; no need to ask again.
		if len(page) < c.pageLimit {
			break
		}
		if c.pause > 0 {
			select {
			case <-time.After(c.pause):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, offset int) ([]map[string]any, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog URL %q: %w", c.baseURL, err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(c.pageLimit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog answered %s", resp.Status)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding catalog response: %w", err)
	}
	return body.Result, nil
}

// SetPause overrides the inter-page delay; tests use zero.
func (c *Client) SetPause(d time.Duration) {
	c.pause = d
}
