// Package provider selects the completion backend named in configuration.
package provider

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ashureev/mood-sense/internal/config"
	"github.com/ashureev/mood-sense/internal/llm"
	"github.com/ashureev/mood-sense/internal/llm/anthropic"
	"github.com/ashureev/mood-sense/internal/llm/gemini"
	"github.com/ashureev/mood-sense/internal/llm/groq"
)

// New builds the Generator for cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (llm.Generator, error) {
	switch cfg.Provider {
	case config.ProviderGroq:
		return groq.NewClient(cfg.GroqAPIKey, logger), nil
	case config.ProviderAnthropic:
		return anthropic.NewClient(cfg.AnthropicAPIKey), nil
	case config.ProviderGemini:
		c, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// DefaultModel returns the model used by provider when none is configured.
func DefaultModel(provider string) string {
	switch provider {
	case config.ProviderAnthropic:
		return anthropic.DefaultModel
	case config.ProviderGemini:
		return gemini.DefaultModel
	default:
		return groq.DefaultModel
	}
}
