package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPSpellClient talks to an external spelling-correction service over HTTP.
type HTTPSpellClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSpellClient creates a spell client with a bounded request timeout.
func NewHTTPSpellClient(baseURL string, timeout time.Duration) *HTTPSpellClient {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPSpellClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Correct submits one token and returns the service's proposed correction.
func (c *HTTPSpellClient) Correct(ctx context.Context, word string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"word": word,
		"lang": "es",
	})
	if err != nil {
		return "", fmt.Errorf("nlp: failed to encode spell request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/correct", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("nlp: failed to build spell request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("nlp: spell request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nlp: spell service returned status %d", resp.StatusCode)
	}

	var result struct {
		Correction string `json:"correction"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("nlp: failed to decode spell response: %w", err)
	}

	if strings.TrimSpace(result.Correction) == "" {
		return word, nil
	}
	return result.Correction, nil
}

// NopSpeller returns every word unchanged. Used when no spell service is configured.
type NopSpeller struct{}

func (NopSpeller) Correct(_ context.Context, word string) (string, error) {
	return word, nil
}
