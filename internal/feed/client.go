package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches the published knowledge-base document.
type Client struct {
	feedURL    string
	httpClient *http.Client
}

// NewClient creates a feed client for the given document URL.
func NewClient(feedURL string, timeout ...time.Duration) *Client {
	httpTimeout := 30 * time.Second
	if len(timeout) > 0 && timeout[0] > 0 {
		httpTimeout = timeout[0]
	}
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// NewDefaultClient builds a client pointed at the default published document.
func NewDefaultClient(timeout ...time.Duration) *Client {
	return NewClient(DefaultFeedURL, timeout...)
}

// URL returns the document URL this client targets.
func (c *Client) URL() string {
	return c.feedURL
}

// FetchItems performs one cache-bypassing GET and returns the normalized
// items. A non-2xx status, transport error, or JSON parse failure is an
// error; an unexpected document shape is an empty slice.
func (c *Client) FetchItems(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d fetching feed", resp.StatusCode)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	records := ExtractRecords(doc)
	items := make([]Item, 0, len(records))
	for _, record := range records {
		items = append(items, Normalize(record))
	}
	return items, nil
}
