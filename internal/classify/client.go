// Package classify wraps the external vision-model provider behind a
// stable gateway: a primary client, a legacy fallback, and structured
// output coercion. Provider errors never cross the package boundary with
// their original shape.
package classify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// VisionClient envoie un prompt + image au provider et retourne le texte brut
type VisionClient interface {
	Name() string
	Classify(ctx context.Context, systemPrompt, userPrompt string, image []byte) (string, error)
}

// maxResponseSize limite la taille de la réponse provider
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// ChatClient parle aux endpoints chat-completions modernes (content en
// parties typées, response_format json_object).
type ChatClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewChatClient(apiKey, baseURL, model string, timeout time.Duration) *ChatClient {
	return &ChatClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *ChatClient) Name() string { return "chat" }

type chatContentPart struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL *struct {
		URL string `json:"url"`
	} `json:"image_url,omitempty"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (c *ChatClient) Classify(ctx context.Context, systemPrompt, userPrompt string, image []byte) (string, error) {
	dataURL := imageDataURL(image)

	imagePart := chatContentPart{Type: "image_url"}
	imagePart.ImageURL = &struct {
		URL string `json:"url"`
	}{URL: dataURL}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []chatContentPart{
				{Type: "text", Text: userPrompt},
				imagePart,
			}},
		},
		Temperature: 0.2,
		MaxTokens:   600,
	}
	reqBody.ResponseFormat = &struct {
		Type string `json:"type"`
	}{Type: "json_object"}

	return c.post(ctx, reqBody)
}

func (c *ChatClient) post(ctx context.Context, reqBody chatRequest) (string, error) {
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

// imageDataURL encode l'image en data URL JPEG base64
func imageDataURL(image []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
}
