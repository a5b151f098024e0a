package sommelier

import (
	"context"
	"fmt"
	"strings"

	"cellar/internal/common"
	"cellar/internal/service"
)

// NewClient creates a sommelier client for the configured provider.
func NewClient(ctx context.Context, cfg Config) (service.Sommelier, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		return newGeminiClient(ctx, cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	case "openai":
		return newOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported sommelier provider %q", common.ErrInvalidConfig, cfg.Provider)
	}
}
