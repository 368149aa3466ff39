package nlsearch

import (
	"context"

	"github.com/arjunm592/airtravel/config"
)

// Provider submits a completion prompt to a language model and returns the
// raw response text. Exactly one implementation is active per process,
// chosen at construction from which credential is configured.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// NoopProvider stands in when no credential is configured. It never touches
// the network; extraction degrades to the all-empty filter set.
type NoopProvider struct{}

func (NoopProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return "", nil
}

func (NoopProvider) Name() string { return "none" }

// NewProvider picks the active provider. OpenAI wins when both credentials
// are set.
func NewProvider(cfg config.NLSearchConfig) (Provider, error) {
	switch {
	case cfg.OpenAIKey != "":
		return NewOpenAIProvider(cfg.OpenAIKey), nil
	case cfg.GeminiKey != "":
		return NewGeminiProvider(cfg.GeminiKey)
	default:
		return NoopProvider{}, nil
	}
}
