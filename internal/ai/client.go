// Package ai talks to an OpenAI-compatible chat completion endpoint to
// produce strategy analysis and hand reviews.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultEndpoint  = "https://api.deepseek.com/v1"
	defaultModel     = "deepseek-chat"
	defaultMaxTokens = 4096

	requestTimeout = 60 * time.Second
	maxRetries     = 2
)

// Config selects the provider endpoint and model. Endpoint may be the API
// base URL or the full /chat/completions path.
type Config struct {
	APIKey    string
	Endpoint  string
	Model     string
	MaxTokens int
}

// ConfigFromEnv reads provider settings from the environment.
func ConfigFromEnv() Config {
	cfg := Config{
		APIKey:   os.Getenv("POKER_AI_API_KEY"),
		Endpoint: os.Getenv("POKER_AI_ENDPOINT"),
		Model:    os.Getenv("POKER_AI_MODEL"),
	}
	if v := os.Getenv("POKER_AI_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	return cfg
}

// Client is a minimal OpenAI-compatible chat client with retry.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *log.Logger
}

// NewClient validates the config and fills provider defaults.
func NewClient(cfg Config, logger *log.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("ai: POKER_AI_API_KEY not set")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: requestTimeout},
		logger: logger,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Ask sends one prompt and returns the assistant's text. Transient failures
// are retried up to maxRetries times before the last error is returned.
func (c *Client) Ask(ctx context.Context, system, prompt string) (string, error) {
	url := c.cfg.Endpoint
	if !strings.HasSuffix(url, "/chat/completions") {
		url = strings.TrimRight(url, "/") + "/chat/completions"
	}

	var messages []chatMessage
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	body, err := json.Marshal(chatRequest{
		Model:     c.cfg.Model,
		Messages:  messages,
		MaxTokens: c.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("ai: encode request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying ai request", "attempt", attempt, "err", lastErr)
		}
		answer, retryable, err := c.send(ctx, url, body)
		if err == nil {
			return answer, nil
		}
		lastErr = err
		if !retryable || ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

func (c *Client) send(ctx context.Context, url string, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("ai: request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", true, fmt.Errorf("ai: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		snippet := string(data)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		err := fmt.Errorf("ai: status %d: %s", resp.StatusCode, snippet)
		// Server-side failures are worth retrying, auth and quota are not.
		return "", resp.StatusCode >= 500, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", false, fmt.Errorf("ai: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", false, errors.New("ai: response has no choices")
	}
	return parsed.Choices[0].Message.Content, false, nil
}
