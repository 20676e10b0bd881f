// Package llm defines the boundary between the relay and vendor completion APIs.
package llm

import "context"

// Default sampling parameters for insight generation.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024
)

// Params carries the model parameters of a single completion.
type Params struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Generator produces one completion for a system/user prompt pair.
// An empty string with a nil error means the vendor returned no usable text.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, p Params) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, systemPrompt, userPrompt string, p Params) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, systemPrompt, userPrompt string, p Params) (string, error) {
	return f(ctx, systemPrompt, userPrompt, p)
}
