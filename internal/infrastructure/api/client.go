// Package api is the single point of outbound HTTP communication. Every
// backend call goes through Client.request, which attaches the bearer
// credential, stamps a request ID, and normalizes every failure into a
// *domain.APIError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/techiefinder/client/internal/core/domain"
	"github.com/techiefinder/client/internal/metrics"
)

// Client talks to the TechieFinder backend. The zero value is not usable;
// construct with NewClient.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	credential     func() string
	onUnauthorized func()
	log            zerolog.Logger
}

// NewClient returns a Client rooted at baseURL (including the /api prefix).
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// SetCredentialSource installs the function the client calls per request to
// obtain the current bearer credential. An empty return means "send no
// Authorization header".
func (c *Client) SetCredentialSource(fn func() string) {
	c.credential = fn
}

// SetUnauthorizedHook installs the function invoked whenever the backend
// answers 401; the session service uses it to invalidate the stored
// credential. Called at most once per response.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// errorEnvelope covers both error body shapes the backend emits.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// request performs one backend call. out, when non-nil, receives the decoded
// JSON response body. endpoint is the logical name used for metrics.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body, out any, endpoint string) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.credential != nil {
		if token := c.credential(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		// Cancellation is the caller's doing, not a network failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		metrics.RequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		c.log.Debug().Err(err).Str("endpoint", endpoint).Msg("request failed before a response arrived")
		return domain.NewNetworkError(err)
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return domain.NewAPIError(resp.StatusCode, extractMessage(raw))
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// extractMessage pulls a human-readable message out of an error body,
// accepting both {"message": ...} and {"error": ...} envelopes.
func extractMessage(raw []byte) string {
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return ""
}

// IsAPIError unwraps err into a *domain.APIError when the failure came from
// an HTTP response or the transport.
func IsAPIError(err error) (*domain.APIError, bool) {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
