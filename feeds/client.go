// Package feeds fetches and decodes the remote tournament feeds.
package feeds

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound reports that a feed answered 404. Callers distinguish it from
// transport or decode failures with errors.Is; an absent tee-times feed is an
// expected state, not a fault.
var ErrNotFound = errors.New("feed not found")

// Client fetches feed documents over HTTP.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// New creates a feed client with the given request timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "teetimes-reminder/1.0",
	}
}

// GetJSON fetches url and decodes the JSON body into v.
// Returns ErrNotFound on a 404 response.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

// GetXML fetches url and decodes the XML body into v.
// Returns ErrNotFound on a 404 response.
func (c *Client) GetXML(ctx context.Context, url string, v any) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := xml.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: status=%d, body=%s", url, resp.StatusCode, string(body))
	}
	return resp.Body, nil
}
