package venue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/viant/venuely/pkg/venue"
)

// resourcePath is the collection path of the venue resource.
const resourcePath = "/venues"

// Client is a minimal HTTP client for the venue REST resource.
type Client struct {
	baseURL     string
	http        *http.Client
	headers     map[string]string
	requestHook func(*http.Request) error
}

// New constructs a new venue client for the given endpoint.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// List returns all venues.
func (c *Client) List(ctx context.Context) ([]*venue.Venue, error) {
	var resp []*venue.Venue
	if err := c.doJSON(ctx, http.MethodGet, resourcePath, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get returns a venue by id.
func (c *Client) Get(ctx context.Context, id string) (*venue.Venue, error) {
	uri, err := itemPath(id)
	if err != nil {
		return nil, err
	}
	var resp venue.Venue
	if err := c.doJSON(ctx, http.MethodGet, uri, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create posts a new venue and returns the stored record with its assigned id.
func (c *Client) Create(ctx context.Context, v *venue.Venue) (*venue.Venue, error) {
	if v == nil {
		return nil, fmt.Errorf("venue is required")
	}
	var resp venue.Venue
	if err := c.doJSON(ctx, http.MethodPost, resourcePath, v, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update replaces the venue identified by id.
func (c *Client) Update(ctx context.Context, id string, v *venue.Venue) (*venue.Venue, error) {
	if v == nil {
		return nil, fmt.Errorf("venue is required")
	}
	uri, err := itemPath(id)
	if err != nil {
		return nil, err
	}
	var resp venue.Venue
	if err := c.doJSON(ctx, http.MethodPut, uri, v, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes the venue identified by id. Any response body is ignored.
func (c *Client) Delete(ctx context.Context, id string) error {
	uri, err := itemPath(id)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, uri, nil, nil)
}

func itemPath(id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("venue id is required")
	}
	// dot segments would be cleaned away by the request path join
	if id == "." || id == ".." {
		return "", fmt.Errorf("invalid venue id: %q", id)
	}
	return resourcePath + "/" + url.PathEscape(id), nil
}

func (c *Client) doJSON(ctx context.Context, method, uri string, in, out interface{}) error {
	req, err := c.newRequest(ctx, method, uri, in)
	if err != nil {
		return err
	}
	if c.requestHook != nil {
		if err := c.requestHook(req); err != nil {
			return err
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: strings.TrimSpace(string(b))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, uri, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, uri string, in interface{}) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return nil, err
		}
		body = buf
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	rel, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	full := base.JoinPath(rel.EscapedPath())
	req, err := http.NewRequestWithContext(ctx, method, full.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	return req, nil
}
