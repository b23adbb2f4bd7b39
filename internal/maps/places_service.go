package maps

import (
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"googlemaps.github.io/maps"
)

// MinAutocompleteInput is the shortest input forwarded to the provider.
const MinAutocompleteInput = 2

type Prediction = maps.AutocompletePrediction

// PlacesService handles Places Autocomplete lookups.
type PlacesService struct {
	client *Client
	logger zerolog.Logger
}

func NewPlacesService(client *Client, logger zerolog.Logger) *PlacesService {
	return &PlacesService{client: client, logger: logger}
}

// Autocomplete returns place predictions for a partial input. Inputs shorter
// than MinAutocompleteInput characters return an empty list without a network
// call. The only error reported is ErrNotConfigured; provider failures yield
// an empty list.
func (s *PlacesService) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	if utf8.RuneCountInString(input) < MinAutocompleteInput {
		return []Prediction{}, nil
	}

	client, err := s.client.get()
	if err != nil {
		return nil, err
	}

	resp, err := client.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{Input: input})
	if err != nil {
		s.logger.Error().Err(err).Str("input", input).Msg("autocomplete failed")
		return []Prediction{}, nil
	}
	if resp.Predictions == nil {
		return []Prediction{}, nil
	}
	return resp.Predictions, nil
}
