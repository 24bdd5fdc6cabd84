// infrastructure/ai/chat_completion_client.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/liuxinyuan2000/nebula-api/domain/port"
)

// ChatCompletionConfig - ค่าตั้งต้นของ provider (OpenAI-compatible endpoint)
type ChatCompletionConfig struct {
	BaseURL string // เช่น https://api.deepseek.com
	APIKey  string
	Model   string
	Timeout time.Duration
}

type chatCompletionClient struct {
	config     *ChatCompletionConfig
	httpClient *http.Client
}

// NewChatCompletionClient สร้าง client สำหรับเรียก chat-completion API
func NewChatCompletionClient(config *ChatCompletionConfig) (port.ChatCompletionPort, error) {
	if config.BaseURL == "" {
		return nil, errors.New("chat completion base URL is required")
	}
	if config.APIKey == "" {
		return nil, errors.New("chat completion API key is required")
	}
	if config.Timeout <= 0 {
		config.Timeout = 20 * time.Second
	}

	return &chatCompletionClient{
		config:     config,
		httpClient: &http.Client{},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete ส่ง prompt ไปยัง provider แล้วคืนข้อความตอบกลับดิบ
// timeout ถูกจำกัดผ่าน context และจะไม่ retry - ผู้เรียกได้ ErrCompletionTimeout แยกจาก error อื่น
func (c *chatCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	payload, _ := json.Marshal(chatCompletionRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})

	url := strings.TrimRight(c.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", port.ErrCompletionTimeout
		}
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("chat completion returned %d: %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("chat completion decode: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("chat completion provider error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}
