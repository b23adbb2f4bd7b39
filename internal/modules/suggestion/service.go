// README: Suggestion service asks the language model for a packing tip and falls back to a template.
package suggestion

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ridewise/internal/ai"
)

const DefaultTimeout = 15 * time.Second

type Service struct {
	generator ai.TextGenerator
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewService builds the service. A nil generator always yields the fallback.
func NewService(generator ai.TextGenerator, logger zerolog.Logger) *Service {
	return &Service{generator: generator, timeout: DefaultTimeout, logger: logger}
}

// Suggest never fails: model errors and empty answers degrade to Fallback.
func (s *Service) Suggest(ctx context.Context, t Trip) string {
	if s.generator == nil {
		return Fallback(t)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.GenerateText(ctx, BuildPrompt(t))
	if err != nil {
		s.logger.Error().Err(err).Msg("suggestion generation failed")
		return Fallback(t)
	}
	if text = strings.TrimSpace(text); text == "" {
		return Fallback(t)
	}
	return text
}
