package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/config"
)

// NewToolCaller builds a ToolCaller from AI configuration.
// Returns (nil, nil) when no provider is configured; callers treat a nil
// ToolCaller as "AI search disabled".
func NewToolCaller(cfg *config.AIConfig, logger *zap.Logger) (ToolCaller, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case config.ProviderOpenAI:
		return NewClient(&Config{
			Endpoint: cfg.BaseURL,
			Model:    cfg.Model,
			APIKey:   cfg.APIKey,
		}, logger)
	case config.ProviderAnthropic:
		return NewAnthropicClient(&Config{
			Model:  cfg.Model,
			APIKey: cfg.APIKey,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
