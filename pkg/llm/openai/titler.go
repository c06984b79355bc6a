package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

const titleInstructions = `Your job is to give a title to a chat based on the first message given by the user and the response from the assistant. Give a short title to the conversation (a few words, 2-8 words). Reply with only the title, no quotes or extra punctuation.`

// Titler generates short conversation titles from the first exchange.
// Title generation is best-effort everywhere it is used; callers treat an
// empty result or an error as "keep the current title".
type Titler struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Client    *http.Client
}

func NewTitler(apiKey, modelName string) *Titler {
	return &Titler{
		BaseURL:   defaultBaseURL,
		APIKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

type titleRequest struct {
	Model     string `json:"model"`
	Messages  []msg  `json:"messages"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}

type msg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type titleResponse struct {
	Choices []struct {
		Message msg `json:"message"`
	} `json:"choices"`
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// GenerateTitle returns a trimmed title, or an empty string when no key is
// configured.
func (t *Titler) GenerateTitle(ctx context.Context, firstUserMessage, firstAssistantMessage string) (string, error) {
	if t.APIKey == "" {
		return "", nil
	}

	blurb := fmt.Sprintf("user: %s\nassistant: %s",
		truncate(firstUserMessage, 500), truncate(firstAssistantMessage, 500))

	reqPayload := titleRequest{
		Model: t.ModelName,
		Messages: []msg{
			{Role: "system", Content: titleInstructions},
			{Role: "user", Content: blurb},
		},
		MaxTokens: 64,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", t.BaseURL+"/chat/completions", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var titleResp titleResponse
	if err := json.Unmarshal(bodyBytes, &titleResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(titleResp.Choices) == 0 {
		return "", nil
	}

	title := strings.TrimSpace(titleResp.Choices[0].Message.Content)
	return truncate(title, 120), nil
}
