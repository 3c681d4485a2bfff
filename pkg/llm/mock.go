package llm

import "context"

// MockToolCaller is a configurable mock for testing LLM functionality.
// Set the function field to control behavior in tests.
type MockToolCaller struct {
	// CallToolFunc is called when CallTool is invoked.
	// If nil, returns (nil, nil) as if the model declined to call the tool.
	CallToolFunc func(ctx context.Context, prompt string, tool ToolDefinition) (*ToolCall, error)

	// Model is returned by GetModel. Defaults to "mock-model".
	Model string

	// Call tracking for verification
	CallToolCalls int
	LastPrompt    string
}

// NewMockToolCaller creates a new mock with sensible defaults.
func NewMockToolCaller() *MockToolCaller {
	return &MockToolCaller{Model: "mock-model"}
}

// CallTool implements ToolCaller.
func (m *MockToolCaller) CallTool(ctx context.Context, prompt string, tool ToolDefinition) (*ToolCall, error) {
	m.CallToolCalls++
	m.LastPrompt = prompt
	if m.CallToolFunc != nil {
		return m.CallToolFunc(ctx, prompt, tool)
	}
	return nil, nil
}

// GetModel implements ToolCaller.
func (m *MockToolCaller) GetModel() string {
	if m.Model == "" {
		return "mock-model"
	}
	return m.Model
}

// GetEndpoint implements ToolCaller.
func (m *MockToolCaller) GetEndpoint() string {
	return "http://mock-endpoint"
}
