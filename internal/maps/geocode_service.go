package maps

import (
	"context"

	"github.com/rs/zerolog"
	"googlemaps.github.io/maps"

	"ridewise/internal/types"
)

type GeoPoint struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
}

func (g GeoPoint) Point() types.Point {
	return types.Point{Lat: g.Lat, Lng: g.Lng}
}

// GeocodeCache stores resolved addresses. Implementations must treat errors as misses.
type GeocodeCache interface {
	Get(ctx context.Context, address string) (GeoPoint, bool)
	Set(ctx context.Context, address string, p GeoPoint)
}

// GeocodeService resolves free-text addresses to coordinates.
type GeocodeService struct {
	client *Client
	cache  GeocodeCache
	logger zerolog.Logger
}

// NewGeocodeService builds the service; cache may be nil.
func NewGeocodeService(client *Client, cache GeocodeCache, logger zerolog.Logger) *GeocodeService {
	return &GeocodeService{client: client, cache: cache, logger: logger}
}

// Geocode returns the first match for address. ok is false when nothing matched
// or the lookup failed.
func (s *GeocodeService) Geocode(ctx context.Context, address string) (GeoPoint, bool) {
	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, address); ok {
			return p, true
		}
	}

	client, err := s.client.get()
	if err != nil {
		s.logger.Warn().Err(err).Msg("geocode skipped")
		return GeoPoint{}, false
	}

	results, err := client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		s.logger.Error().Err(err).Str("address", address).Msg("geocode failed")
		return GeoPoint{}, false
	}
	if len(results) == 0 {
		return GeoPoint{}, false
	}

	first := results[0]
	p := GeoPoint{
		Lat:              first.Geometry.Location.Lat,
		Lng:              first.Geometry.Location.Lng,
		FormattedAddress: first.FormattedAddress,
	}
	if s.cache != nil {
		s.cache.Set(ctx, address, p)
	}
	return p, true
}
