// Package translate wraps the external translation service and implements
// the fail-open round trip around the resolution pipeline.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultTranslateTimeout = 10 * time.Second

var errTranslateUnexpectedStatus = errors.New("translate unexpected status")

// Service translates text to a target language and reports the detected
// source language. There is no separate detection call: detection is
// inferred entirely from the translation response metadata.
type Service interface {
	Translate(ctx context.Context, text, target string) (translated, detectedLang string, err error)
}

// HTTPClient talks to a LibreTranslate-compatible API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	} `json:"detectedLanguage"`
}

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTranslateTimeout
	}

	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) Translate(ctx context.Context, text, target string) (string, string, error) {
	body, err := json.Marshal(translateRequest{
		Q:      text,
		Source: "auto",
		Target: target,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", "", fmt.Errorf("marshal translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("create translate request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("translate request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("%w: %d", errTranslateUnexpectedStatus, resp.StatusCode)
	}

	var payload translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", "", fmt.Errorf("decode translate response: %w", err)
	}

	return payload.TranslatedText, payload.DetectedLanguage.Language, nil
}
