package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OpenRouterClient implements Client against the OpenRouter chat-completions API.
type OpenRouterClient struct {
	apiURL     string
	apiKey     string
	model      string
	appName    string
	appURL     string
	httpClient *http.Client
}

// OpenRouterConfig holds the settings needed to reach OpenRouter.
type OpenRouterConfig struct {
	APIURL  string
	APIKey  string
	Model   string
	AppName string
	AppURL  string
}

// NewOpenRouterClient creates an OpenRouter-backed completion client. Request
// deadlines come from the caller's context, not from the HTTP client.
func NewOpenRouterClient(cfg OpenRouterConfig) (*OpenRouterClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("llm: openrouter api key is required")
	}
	if strings.TrimSpace(cfg.APIURL) == "" {
		cfg.APIURL = "https://openrouter.ai/api/v1/chat/completions"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "deepseek/deepseek-chat-v3.1:free"
	}
	return &OpenRouterClient{
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		appName:    cfg.AppName,
		appURL:     cfg.AppURL,
		httpClient: &http.Client{},
	}, nil
}

type openRouterRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int32         `json:"max_tokens,omitempty"`
	TopP        float32       `json:"top_p,omitempty"`
}

type openRouterResponse struct {
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int32 `json:"prompt_tokens"`
		CompletionTokens int32 `json:"completion_tokens"`
		TotalTokens      int32 `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Code    any    `json:"code"`
	} `json:"error,omitempty"`
}

// Complete sends a chat-completion request and returns the first choice.
func (c *OpenRouterClient) Complete(ctx context.Context, req Request) (Response, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	messages := make([]ChatMessage, 0, len(req.Messages)+1)
	if len(req.System) > 0 {
		systemText := strings.TrimSpace(strings.Join(req.System, "\n\n"))
		if systemText != "" {
			messages = append(messages, ChatMessage{Role: ChatRoleSystem, Content: systemText})
		}
	}
	messages = append(messages, req.Messages...)

	payload, err := json.Marshal(openRouterRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        req.TopP,
	})
	if err != nil {
		return Response{}, fmt.Errorf("llm: failed to encode openrouter request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("llm: failed to build openrouter request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if c.appURL != "" {
		httpReq.Header.Set("HTTP-Referer", c.appURL)
	}
	if c.appName != "" {
		httpReq.Header.Set("X-Title", c.appName)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("llm: openrouter request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return Response{}, fmt.Errorf("llm: failed to read openrouter response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("llm: openrouter returned status %d: %s", httpResp.StatusCode, truncate(string(body), 200))
	}

	var parsed openRouterResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Response{}, fmt.Errorf("llm: failed to decode openrouter response: %w", err)
	}
	if parsed.Error != nil {
		return Response{}, fmt.Errorf("llm: openrouter error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return Response{}, errors.New("llm: openrouter returned no choices")
	}

	return Response{
		Text:       strings.TrimSpace(parsed.Choices[0].Message.Content),
		StopReason: parsed.Choices[0].FinishReason,
		Usage: TokenUsage{
			InputTokens:  parsed.Usage.PromptTokens,
			OutputTokens: parsed.Usage.CompletionTokens,
			TotalTokens:  parsed.Usage.TotalTokens,
		},
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
