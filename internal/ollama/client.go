// Package ollama provides a minimal HTTP client for the Ollama model-serving
// API. It covers the two endpoints the reconciler needs, the tags listing and
// the blocking non-streaming pull, and deliberately carries no retry logic;
// retry policy belongs to the caller.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tarinyoom/llm-stack/pkg/constants"
	"github.com/tarinyoom/llm-stack/pkg/errors"
	"github.com/tarinyoom/llm-stack/pkg/logging"
)

// Client talks to a single Ollama-compatible server.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// New creates a client for the server at baseURL. A trailing slash on the
// base URL is tolerated.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured server address without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CloseIdleConnections releases any idle keep-alive connections held by the
// underlying HTTP client. Called during shutdown.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

// Tags fetches the current model inventory.
func (c *Client) Tags(ctx context.Context) (*TagsResponse, error) {
	url := c.baseURL + "/api/tags"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapAPI(url, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapAPI(url, 0, err)
	}

	var tags TagsResponse
	if err := decodeResponse(url, resp, &tags); err != nil {
		return nil, err
	}
	return &tags, nil
}

// Pull asks the server to download a model, blocking until the transfer
// finishes. The request always disables streaming so a single response
// reports the outcome.
func (c *Client) Pull(ctx context.Context, model string) error {
	url := c.baseURL + "/api/pull"

	payload, err := json.Marshal(pullRequest{Model: model, Stream: false})
	if err != nil {
		return errors.WrapAPI(url, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.WrapAPI(url, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapAPI(url, 0, err)
	}

	body, err := readResponse(url, resp)
	if err != nil {
		return err
	}

	// The body is informational only, but a server that returns garbage on a
	// 2xx is not to be trusted about the pull either.
	if len(bytes.TrimSpace(body)) > 0 {
		var status any
		if err := json.Unmarshal(body, &status); err != nil {
			return errors.WrapParse("json", url, err)
		}
		if m, ok := status.(map[string]any); ok {
			if s, ok := m["status"].(string); ok {
				logging.Ctx(ctx).Debug().Str("model", model).Str("status", s).Msg("pull finished")
			}
		}
	}
	return nil
}

// Ping performs a single bounded tags query, discarding the listing. It is
// the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Tags(ctx)
	return err
}

// readResponse drains a response body and maps non-2xx statuses to APIError.
func readResponse(endpoint string, resp *http.Response) ([]byte, error) {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapAPI(endpoint, resp.StatusCode, err)
	}

	if resp.StatusCode/100 != 2 {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &errors.APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	return body, nil
}

// decodeResponse reads a response and unmarshals the JSON body into target.
func decodeResponse(endpoint string, resp *http.Response, target any) error {
	body, err := readResponse(endpoint, resp)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", endpoint, err)
	}
	return nil
}
