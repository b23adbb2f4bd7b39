package ai

import (
	"context"
)

// TextGenerator produces free text from a prompt. Gemini and OpenAI both satisfy it.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
