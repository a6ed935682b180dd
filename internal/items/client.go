package items

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/muurk/itemctl/internal/logging"
	"github.com/muurk/itemctl/internal/urls"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// maxBodySize caps how much of a response body is read
	maxBodySize = 4 << 20
)

// Client represents an HTTP client for the items API.
// Every call makes exactly one attempt. Nothing is retried or cached.
type Client struct {
	// BaseURL is the API base (e.g., "http://localhost:5000/api")
	BaseURL string

	// Origin serves routes outside the API base, such as /health
	Origin string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a client for the page origin, resolving the API base from
// the origin's host.
// origin: e.g. "http://localhost:3000" or "https://items.example.com"
func NewClient(origin string) (*Client, error) {
	base, err := ResolveAPIBase(origin)
	if err != nil {
		return nil, err
	}
	return NewClientWithURL(base), nil
}

// NewClientWithURL creates a new client with a full API base URL
// baseURL: Full base URL (e.g., "http://127.0.0.1:5000/api")
func NewClientWithURL(baseURL string) *Client {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return &Client{
		BaseURL:    baseURL,
		Origin:     OriginOf(baseURL),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Greeting performs GET /hii and returns the plain-text body
func (c *Client) Greeting(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, c.BaseURL+urls.Greeting, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ListItems performs GET /items. Items are returned in server order.
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	body, err := c.do(ctx, http.MethodGet, c.BaseURL+urls.Items, nil)
	if err != nil {
		return nil, err
	}

	var list []Item
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, NewParseError("failed to parse item list", err)
	}
	if list == nil {
		list = []Item{}
	}
	return list, nil
}

// GetItem performs GET /items/{id}
func (c *Client) GetItem(ctx context.Context, id int) (*Item, error) {
	body, err := c.do(ctx, http.MethodGet, c.BaseURL+urls.Item(id), nil)
	if err != nil {
		return nil, err
	}

	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, NewParseError("failed to parse item", err)
	}
	return &item, nil
}

// CreateItem performs POST /items. Any 2xx is success; the created item is
// returned when the body decodes as one, otherwise nil.
func (c *Client) CreateItem(ctx context.Context, in Input) (*Item, error) {
	body, err := c.do(ctx, http.MethodPost, c.BaseURL+urls.Items, in)
	if err != nil {
		return nil, err
	}
	return decodeOptionalItem(body), nil
}

// UpdateItem performs PUT /items/{id} with the full {name, description} body
func (c *Client) UpdateItem(ctx context.Context, id int, in Input) (*Item, error) {
	body, err := c.do(ctx, http.MethodPut, c.BaseURL+urls.Item(id), in)
	if err != nil {
		return nil, err
	}
	return decodeOptionalItem(body), nil
}

// DeleteItem performs DELETE /items/{id}
func (c *Client) DeleteItem(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, c.BaseURL+urls.Item(id), nil)
	return err
}

// Health performs GET /health on the origin
func (c *Client) Health(ctx context.Context) (*Health, error) {
	body, err := c.do(ctx, http.MethodGet, c.Origin+urls.Health, nil)
	if err != nil {
		return nil, err
	}

	var h Health
	if err := json.Unmarshal(body, &h); err != nil {
		return nil, NewParseError("failed to parse health response", err)
	}
	return &h, nil
}

// do performs a single request. A JSON payload is encoded when payload is
// non-nil. Any non-2xx status becomes an HTTP error carrying the code.
func (c *Client) do(ctx context.Context, method, requestURL string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, NewParseError("failed to encode request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("failed to create %s request", method), requestURL, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.LogAPIRequest(method, requestURL)
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logging.LogAPIFailure(method, requestURL, err)
		return nil, NewNetworkError(fmt.Sprintf("%s request failed", method), requestURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogAPIResponse(method, requestURL, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPError(resp.StatusCode, requestURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, NewNetworkError("failed to read response body", requestURL, err)
	}

	return body, nil
}

func decodeOptionalItem(body []byte) *Item {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var item Item
	if err := json.Unmarshal(body, &item); err != nil || item.ID == 0 {
		return nil
	}
	return &item
}
