// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"minute-planner/apperrors"
	"minute-planner/metrics"
)

// HTTPClient holds the base URL and HTTP client configuration of one collaborator.
type HTTPClient struct {
	BaseURL    string
	Provider   string
	HTTPClient *http.Client
}

// NewHTTPClient creates an HTTPClient; provider labels errors and metrics.
func NewHTTPClient(provider, baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL:  baseURL,
		Provider: provider,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Request sends a JSON request and decodes the JSON response into response.
// Transport failures, timeouts, non-2xx statuses and undecodable bodies are all
// reported as apperrors.ErrUpstreamUnavailable.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, query url.Values, headers map[string]string, body interface{}, response interface{}) error {
	var requestBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", c.Provider, err)
		}
		requestBody = bytes.NewReader(jsonBody)
	}

	u := c.BaseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, requestBody)
	if err != nil {
		return fmt.Errorf("build %s request: %w", c.Provider, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	res, err := c.HTTPClient.Do(req)
	metrics.UpstreamDuration.WithLabelValues(c.Provider).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(c.Provider, "error").Inc()
		return apperrors.Upstream(c.Provider, err)
	}
	defer res.Body.Close()
	metrics.UpstreamRequests.WithLabelValues(c.Provider, strconv.Itoa(res.StatusCode)).Inc()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return apperrors.Upstream(c.Provider, err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return apperrors.Upstream(c.Provider, fmt.Errorf("unexpected status code: %s", res.Status))
	}

	if response != nil {
		if err := json.Unmarshal(resBody, response); err != nil {
			return apperrors.Upstream(c.Provider, fmt.Errorf("decode response: %w", err))
		}
	}

	return nil
}
