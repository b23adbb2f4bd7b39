package ai

import (
	"context"
	"strings"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Selection names the text model to use and the keys available for it.
type Selection struct {
	Provider    string
	GeminiKey   string
	GeminiModel string
	OpenAIKey   string
}

// NewGenerator builds the generator for the selected provider. Any provider
// other than "openai" means Gemini. When the selected provider has no key it
// returns a nil generator and no error, so callers answer with templates. The
// returned close func is never nil.
func NewGenerator(ctx context.Context, s Selection) (TextGenerator, func(), error) {
	noop := func() {}

	switch strings.ToLower(strings.TrimSpace(s.Provider)) {
	case ProviderOpenAI:
		if strings.TrimSpace(s.OpenAIKey) == "" {
			return nil, noop, nil
		}
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: s.OpenAIKey})
		if err != nil {
			return nil, noop, err
		}
		return p, noop, nil
	default:
		if strings.TrimSpace(s.GeminiKey) == "" {
			return nil, noop, nil
		}
		p, err := NewGeminiProvider(ctx, GeminiConfig{APIKey: s.GeminiKey, Model: s.GeminiModel})
		if err != nil {
			return nil, noop, err
		}
		return p, func() { _ = p.Close() }, nil
	}
}
