package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashureev/mood-sense/internal/llm"
)

// Service builds prompts and calls the completion generator.
type Service struct {
	generator llm.Generator
	params    llm.Params
}

// NewService creates a Service. Zero temperature and max tokens take the package defaults.
func NewService(generator llm.Generator, params llm.Params) *Service {
	if params.Temperature == 0 {
		params.Temperature = llm.DefaultTemperature
	}
	if params.MaxTokens == 0 {
		params.MaxTokens = llm.DefaultMaxTokens
	}
	return &Service{generator: generator, params: params}
}

// Insight generates a supportive message for one mood entry.
// Exactly one generator call is made; a blank completion yields FallbackInsight.
func (s *Service) Insight(ctx context.Context, req Request) (string, error) {
	text, err := s.generator.Generate(ctx, SystemPrompt, BuildUserPrompt(req), s.params)
	if err != nil {
		return "", fmt.Errorf("generate insight: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return FallbackInsight, nil
	}
	return text, nil
}

// Params returns the model parameters used for every call.
func (s *Service) Params() llm.Params {
	return s.params
}
