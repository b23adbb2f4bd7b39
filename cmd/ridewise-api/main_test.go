package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"ridewise/internal/ai"
	"ridewise/internal/config"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var cfg config.Config
			cfg.LogLevel = tt.level
			assert.Equal(t, tt.want, newLogger(cfg).GetLevel())
		})
	}
}

func TestAISelection(t *testing.T) {
	var cfg config.Config
	cfg.AI.Provider = "openai"
	cfg.AI.GeminiKey = "g-key"
	cfg.AI.GeminiModel = "gemini-2.0-flash"

	assert.Equal(t, ai.Selection{Provider: "openai", GeminiKey: "g-key", GeminiModel: "gemini-2.0-flash"}, aiSelection(cfg))
}
