package racetime

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// Host is the racetime.gg service host. All requests are issued against
// it unless the base URL is overridden with WithBaseURL.
const Host = "racetime.gg"

// Client talks to the racetime.gg bot endpoints. It holds no state
// between calls; concurrent use from multiple goroutines is safe as
// long as the supplied http.Client is.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new racetime.gg client. The http.Client is
// supplied by the caller and owns all connection, timeout and redirect
// policy; the library never constructs one.
func NewClient(httpClient *http.Client, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("http client is required")
	}

	client := &Client{
		baseURL:    "https://" + Host,
		httpClient: httpClient,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	// Reject a base URL that cannot produce valid request URIs.
	if _, err := url.Parse(client.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return client, nil
}

// uri composes the request URL for an endpoint path against the base URL.
func (c *Client) uri(path string) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("failed to build request URI: %w", err)
	}
	return u.String(), nil
}

// checkStatus maps a non-2xx response to a StatusError, or to a
// ServerError when the body carries structured service messages.
func (c *Client) checkStatus(resp *http.Response, requestURL string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("url", requestURL).
		Msg("Request failed")

	// The service reports form-level failures as {"errors": [...]}.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil {
		var payload struct {
			Errors []string `json:"errors"`
		}
		if json.Unmarshal(body, &payload) == nil && len(payload.Errors) > 0 {
			return &ServerError{Messages: payload.Errors}
		}
	}

	return &StatusError{StatusCode: resp.StatusCode, URL: requestURL}
}
