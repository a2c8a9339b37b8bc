// internal/common/http/client.go
package http

import (
	"net/http"
	"time"
)

const userAgent = "bookcafe-search/1.0"

// Client is a thin wrapper over net/http with a fixed timeout and user agent.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return c.httpClient.Do(req)
}

