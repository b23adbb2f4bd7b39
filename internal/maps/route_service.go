package maps

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"googlemaps.github.io/maps"
)

// RouteInfo summarizes the first leg of the first route between two places.
type RouteInfo struct {
	Distance        string `json:"distance"`
	DistanceMeters  int    `json:"distance_meters"`
	Duration        string `json:"duration"`
	DurationSeconds int    `json:"duration_seconds"`
	StartAddress    string `json:"start_address"`
	EndAddress      string `json:"end_address"`
	Polyline        string `json:"polyline"`
}

// ParseTravelMode maps a mode name to a Directions travel mode. Unknown or
// empty names fall back to driving.
func ParseTravelMode(s string) maps.Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "walking":
		return maps.TravelModeWalking
	case "bicycling":
		return maps.TravelModeBicycling
	case "transit":
		return maps.TravelModeTransit
	default:
		return maps.TravelModeDriving
	}
}

// RouteService handles Directions lookups against Google Maps.
type RouteService struct {
	client *Client
	logger zerolog.Logger
}

func NewRouteService(client *Client, logger zerolog.Logger) *RouteService {
	return &RouteService{client: client, logger: logger}
}

// Directions returns the route between origin and destination. ok is false when
// no route exists, the provider fails, or mapping is not configured.
func (s *RouteService) Directions(ctx context.Context, origin, destination string, mode maps.Mode) (RouteInfo, bool) {
	client, err := s.client.get()
	if err != nil {
		s.logger.Warn().Err(err).Msg("directions skipped")
		return RouteInfo{}, false
	}
	if mode == "" {
		mode = maps.TravelModeDriving
	}

	routes, _, err := client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("origin", origin).Str("destination", destination).Msg("directions failed")
		return RouteInfo{}, false
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return RouteInfo{}, false
	}

	route := routes[0]
	leg := route.Legs[0]
	return RouteInfo{
		Distance:        leg.Distance.HumanReadable,
		DistanceMeters:  leg.Distance.Meters,
		Duration:        FormatDuration(leg.Duration),
		DurationSeconds: int(leg.Duration.Seconds()),
		StartAddress:    leg.StartAddress,
		EndAddress:      leg.EndAddress,
		Polyline:        route.OverviewPolyline.Points,
	}, true
}
