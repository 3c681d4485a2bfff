// Package llm provides tool-calling clients for natural-language search.
package llm

import "context"

// ToolCall is a structured function call returned by a model.
type ToolCall struct {
	Name      string
	Arguments string // raw JSON arguments
}

// ToolCaller defines the interface for single-shot tool-calling requests.
// Use this interface for dependency injection to enable mocking in tests.
type ToolCaller interface {
	// CallTool sends the prompt with a single tool definition and returns
	// the model's structured call. Returns (nil, nil) when the model
	// answered without invoking the tool.
	CallTool(ctx context.Context, prompt string, tool ToolDefinition) (*ToolCall, error)

	// GetModel returns the configured model name.
	GetModel() string

	// GetEndpoint returns the configured endpoint.
	GetEndpoint() string
}

// Ensure implementations satisfy ToolCaller at compile time.
var (
	_ ToolCaller = (*Client)(nil)
	_ ToolCaller = (*AnthropicClient)(nil)
	_ ToolCaller = (*MockToolCaller)(nil)
)
