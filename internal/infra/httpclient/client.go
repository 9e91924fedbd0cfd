package httpclient

import (
	"net/http"
	"time"
)

// Client is a net/http client with a whole-request timeout that sets a
// User-Agent on requests that lack one.
type Client struct {
	c         *http.Client
	userAgent string
}

func New(timeout time.Duration, userAgent string) *Client {
	return &Client{
		c:         &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return c.c.Do(req)
}
