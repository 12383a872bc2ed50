package venue

import (
	"net/http"
	"time"
)

// Option customizes the venue client.
type Option func(c *Client)

// WithHTTPClient supplies a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the timeout on a copy of the current HTTP client, leaving
// a client passed with WithHTTPClient untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := &http.Client{}
		if c.http != nil {
			clone := *c.http
			hc = &clone
		}
		hc.Timeout = d
		c.http = hc
	}
}

// WithRequestHook adds a hook executed before every request is sent.
func WithRequestHook(hook func(*http.Request) error) Option {
	return func(c *Client) {
		c.requestHook = hook
	}
}

// WithHeader sets a static header on all requests.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if c.headers == nil {
			c.headers = map[string]string{}
		}
		c.headers[key] = value
	}
}
