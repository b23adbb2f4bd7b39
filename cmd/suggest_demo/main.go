// README: Prints the prompt and the model's travel suggestion for one trip; falls back to the template without a key.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"ridewise/internal/ai"
	"ridewise/internal/config"
	"ridewise/internal/modules/suggestion"
)

func main() {
	var trip suggestion.Trip
	flag.StringVar(&trip.Source, "from", "Mumbai", "trip origin")
	flag.StringVar(&trip.Destination, "to", "Pune", "trip destination")
	flag.StringVar(&trip.Duration, "duration", "2 hours 52 mins", "travel time text")
	flag.StringVar(&trip.Condition, "weather", "light rain", "weather condition at the destination")
	flag.Float64Var(&trip.Temperature, "temp", 27.5, "temperature in Celsius")
	showPrompt := flag.Bool("prompt", false, "print the prompt sent to the model")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()

	generator, closeGenerator, err := ai.NewGenerator(ctx, ai.Selection{
		Provider:    cfg.AI.Provider,
		GeminiKey:   cfg.AI.GeminiKey,
		GeminiModel: cfg.AI.GeminiModel,
		OpenAIKey:   cfg.AI.OpenAIKey,
	})
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.AI.Provider).Msg("init text model")
	}
	defer closeGenerator()
	if generator == nil {
		logger.Warn().Str("provider", cfg.AI.Provider).Msg("no key for the selected model, printing the template suggestion")
	}

	if *showPrompt {
		fmt.Printf("Prompt:\n%s\n\n", suggestion.BuildPrompt(trip))
	}

	fmt.Printf("Trip: %s -> %s (%s, %s, %s°C)\n",
		trip.Source, trip.Destination, trip.Duration, trip.Condition, suggestion.FormatTemperature(trip.Temperature))
	fmt.Printf("Suggestion: %s\n", suggestion.NewService(generator, logger).Suggest(ctx, trip))
}
