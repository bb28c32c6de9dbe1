package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// GenerateConfig carries the process-wide credential and endpoint for the
// generative-language provider. It is fixed at construction time.
type GenerateConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

type GeminiClient struct {
	cfg        GenerateConfig
	httpClient *http.Client
}

func NewGeminiClient(cfg GenerateConfig) *GeminiClient {
	return &GeminiClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// Generate sends a single-turn prompt and returns the model's raw text reply.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal gemini request failed: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("build gemini request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini response status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parse gemini json failed: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty gemini candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// SafeGenerate collapses every failure mode (network error, non-2xx status,
// malformed response shape) into an empty string. Callers must treat "" as
// "no content produced", not as a distinguishable error.
func (c *GeminiClient) SafeGenerate(ctx context.Context, prompt string) string {
	text, err := c.Generate(ctx, prompt)
	if err != nil {
		log.Printf("gemini call failed: %v", err)
		return ""
	}
	return text
}
