package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"jobhunter-backend/internal/profile"
)

// HTTPClient posts resume text to the upstream extraction service and
// decodes the returned fields.
type HTTPClient struct {
	url    string
	client *http.Client
}

// NewHTTPClient constructs a client for the given endpoint.
func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Success bool            `json:"success"`
	Data    profile.Profile `json:"data"`
	Message string          `json:"message"`
}

func (c *HTTPClient) ParseResume(ctx context.Context, text string) (profile.Profile, error) {
	body, err := json.Marshal(parseRequest{Text: text})
	if err != nil {
		return profile.Profile{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return profile.Profile{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("parse resume: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return profile.Profile{}, fmt.Errorf("parse resume: upstream status %d", resp.StatusCode)
	}

	var payload parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return profile.Profile{}, fmt.Errorf("parse resume: decode response: %w", err)
	}
	if !payload.Success {
		return profile.Profile{}, fmt.Errorf("parse resume: upstream failure: %s", payload.Message)
	}
	return payload.Data, nil
}
