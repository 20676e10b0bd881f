package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// InsightClient requests a generated insight for one mood entry.
type InsightClient interface {
	FetchInsight(ctx context.Context, scale int, description string) (string, error)
}

// StatusError is returned when the relay answers with a non-2xx status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("relay returned status %d", e.Code)
	}
	return fmt.Sprintf("relay returned status %d: %s", e.Code, e.Message)
}

type insightRequest struct {
	Scale       int    `json:"scale"`
	Description string `json:"description"`
}

type insightResponse struct {
	Insight string `json:"insight"`
	Error   string `json:"error"`
}

// RelayClient talks to the insight relay over HTTP.
type RelayClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRelayClient creates a client for the relay at baseURL.
// A nil httpClient uses a default client with no timeout.
func NewRelayClient(baseURL string, httpClient *http.Client) *RelayClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &RelayClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// FetchInsight posts the entry to /api/mood-insight and returns the insight text.
func (c *RelayClient) FetchInsight(ctx context.Context, scale int, description string) (string, error) {
	body, err := json.Marshal(insightRequest{Scale: scale, Description: description})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/mood-insight", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request insight: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var out insightResponse
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = json.Unmarshal(data, &out)
		return "", &StatusError{Code: resp.StatusCode, Message: out.Error}
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.Insight, nil
}

var _ InsightClient = (*RelayClient)(nil)
