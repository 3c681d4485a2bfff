package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"
)

// AnthropicClient provides tool calling against the Anthropic Messages API.
type AnthropicClient struct {
	client *anthropic.Client
	model  string
	logger *zap.Logger
}

// NewAnthropicClient creates a new Anthropic tool-calling client.
func NewAnthropicClient(cfg *Config, logger *zap.Logger) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	return &AnthropicClient{
		client: anthropic.NewClient(cfg.APIKey),
		model:  cfg.Model,
		logger: logger.Named("llm"),
	}, nil
}

// CallTool sends a prompt with a single tool definition and returns the
// model's structured call, or (nil, nil) if the model declined to call it.
func (c *AnthropicClient) CallTool(ctx context.Context, prompt string, tool ToolDefinition) (*ToolCall, error) {
	c.logger.Debug("LLM tool request",
		zap.String("model", c.model),
		zap.String("tool", tool.Name),
		zap.Int("prompt_len", len(prompt)))

	start := time.Now()

	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(c.model),
		MaxTokens: 1024,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
		Tools: []anthropic.ToolDefinition{
			{
				Name:        tool.Name,
				Description: tool.Description,
				InputSchema: tool.Parameters,
			},
		},
	})
	if err != nil {
		c.logger.Error("LLM tool request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, ClassifyError(err)
	}

	c.logger.Info("LLM tool request completed",
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.Duration("elapsed", time.Since(start)))

	for _, content := range resp.Content {
		if content.Type != anthropic.MessagesContentTypeToolUse {
			continue
		}
		use := content.MessageContentToolUse
		if use == nil || use.Name != tool.Name {
			continue
		}
		return &ToolCall{
			Name:      use.Name,
			Arguments: string(use.Input),
		}, nil
	}

	return nil, nil
}

// GetModel returns the configured model name.
func (c *AnthropicClient) GetModel() string {
	return c.model
}

// GetEndpoint returns the provider identifier (Anthropic has a fixed endpoint).
func (c *AnthropicClient) GetEndpoint() string {
	return "https://api.anthropic.com"
}
