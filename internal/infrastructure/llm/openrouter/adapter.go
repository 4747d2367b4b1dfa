package openrouter

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"desktop-assistant/internal/application/port/output"
	"desktop-assistant/internal/domain/entity"
)

var _ output.LLMPort = (*Adapter)(nil)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	deepSeekBaseURL   = "https://api.deepseek.com/v1"

	defaultOpenRouterModel = "deepseek/deepseek-r1"
	defaultDeepSeekModel   = "deepseek-reasoner"
)

// Adapter talks to an OpenAI-compatible chat endpoint (OpenRouter or native
// DeepSeek). It converts the transcript into chat-completion messages and
// returns the reply as plain text.
type Adapter struct {
	client *openai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Logger  output.LoggerPort
}

// DefaultConfig picks the endpoint from the key shape: OpenRouter keys carry
// the sk-or- prefix, anything else is routed to native DeepSeek. Explicit
// model or base URL overrides still win.
func DefaultConfig(apiKey, model, baseURL string) Config {
	cfg := Config{APIKey: apiKey, Model: model, BaseURL: baseURL}
	if strings.HasPrefix(apiKey, "sk-or-") {
		if cfg.BaseURL == "" {
			cfg.BaseURL = openRouterBaseURL
		}
		if cfg.Model == "" {
			cfg.Model = defaultOpenRouterModel
		}
	} else {
		if cfg.BaseURL == "" {
			cfg.BaseURL = deepSeekBaseURL
		}
		if cfg.Model == "" {
			cfg.Model = defaultDeepSeekModel
		}
	}
	return cfg
}

func NewAdapter(cfg Config) *Adapter {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL

	return &Adapter{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

func (a *Adapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	if a.logger != nil {
		a.logger.Debug("Creating chat completion",
			"model", a.model,
			"messagesCount", len(req.Messages),
			"temperature", req.Temperature)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    convertMessages(req.Messages),
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &output.ChatResponse{
		Content: resp.Choices[0].Message.Content,
	}, nil
}

func convertMessages(messages []entity.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		result = append(result, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return result
}
