package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LegacyClient parle aux déploiements qui ne supportent ni les parties de
// contenu typées ni response_format: le prompt utilisateur et la data URL
// de l'image partent en une seule chaîne. Même contrat de prompt que
// ChatClient, utilisé en repli quand le client principal échoue.
type LegacyClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewLegacyClient(apiKey, baseURL, model string, timeout time.Duration) *LegacyClient {
	return &LegacyClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *LegacyClient) Name() string { return "legacy" }

type legacyRequest struct {
	Model       string          `json:"model"`
	Messages    []legacyMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type legacyMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (c *LegacyClient) Classify(ctx context.Context, systemPrompt, userPrompt string, image []byte) (string, error) {
	reqBody := legacyRequest{
		Model: c.model,
		Messages: []legacyMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt + "\n\n" + imageDataURL(image)},
		},
		Temperature: 0.2,
		MaxTokens:   600,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("provider error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("provider returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
