package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// UserAgent is the User-Agent header value used for all HTTP requests
	UserAgent = "dipnotify/1.0"
	// DefaultHTTPTimeout is the default timeout for HTTP clients
	DefaultHTTPTimeout = 30 * time.Second
)

// HTTPChannel provides common functionality for HTTP-based channels
type HTTPChannel struct {
	endpoint   string
	httpClient *http.Client
	logger     *logrus.Entry
}

// NewHTTPChannel creates a new HTTP channel with the given endpoint and optional HTTP client
func NewHTTPChannel(endpoint string, httpClient *http.Client, logger *logrus.Entry) *HTTPChannel {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: DefaultHTTPTimeout,
		}
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &HTTPChannel{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

// PostJSON sends a JSON payload to the endpoint
func (c *HTTPChannel) PostJSON(ctx context.Context, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return c.post(ctx, "application/json", bytes.NewReader(jsonData), nil)
}

// PostForm sends url-encoded form values to the endpoint with optional extra headers
func (c *HTTPChannel) PostForm(ctx context.Context, form url.Values, headers map[string]string) error {
	return c.post(ctx, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), headers)
}

func (c *HTTPChannel) post(ctx context.Context, contentType string, body io.Reader, headers map[string]string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", UserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.logger.WithField("content_type", contentType).Debug("Sending HTTP request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}
