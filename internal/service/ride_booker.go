package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	gmaps "googlemaps.github.io/maps"

	"ridewise/internal/maps"
	"ridewise/internal/modules/pricing"
	"ridewise/internal/modules/suggestion"
	"ridewise/internal/modules/weather"
	"ridewise/internal/types"
)

const tracerName = "ridewise/internal/service"

// ErrRouteNotFound is returned when the mapping provider has no route between the two places.
var ErrRouteNotFound = errors.New("route not found")

// RouteNotFoundError carries the places of a failed route lookup.
type RouteNotFoundError struct {
	Source      string
	Destination string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("Route not found between %s and %s", e.Source, e.Destination)
}

func (e *RouteNotFoundError) Unwrap() error {
	return ErrRouteNotFound
}

type Router interface {
	Directions(ctx context.Context, origin, destination string, mode gmaps.Mode) (maps.RouteInfo, bool)
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (maps.GeoPoint, bool)
}

type PriceQuoter interface {
	PriceEstimates(ctx context.Context, start, end types.Point) ([]pricing.PriceEstimate, pricing.Source)
	TimeEstimates(ctx context.Context, start types.Point, productID string) ([]pricing.TimeEstimate, pricing.Source)
}

type WeatherReporter interface {
	Lookup(ctx context.Context, place string) weather.Report
}

type Suggester interface {
	Suggest(ctx context.Context, t suggestion.Trip) string
}

type RideQuery struct {
	Source      string
	Destination string
	ProductID   string
	Mode        gmaps.Mode
}

type Estimates struct {
	Prices []pricing.PriceEstimate `json:"prices"`
	Times  []pricing.TimeEstimate  `json:"times"`
}

type RideResponse struct {
	RideDetails   maps.RouteInfo `json:"ride_details"`
	WeatherReport weather.Report `json:"weather_report"`
	UberEstimates Estimates      `json:"uber_estimates"`
	AISuggestion  string         `json:"ai_suggestion"`
}

type Deps struct {
	Router     Router
	Geocoder   Geocoder
	Pricing    PriceQuoter
	Weather    WeatherReporter
	Suggestion Suggester
	Logger     zerolog.Logger
}

// RideBooker orchestrates routing, geocoding, pricing, weather, and suggestion
// lookups into a single ride response.
type RideBooker struct {
	router     Router
	geocoder   Geocoder
	pricing    PriceQuoter
	weather    WeatherReporter
	suggestion Suggester
	tracer     trace.Tracer
	logger     zerolog.Logger
}

func NewRideBooker(deps Deps) *RideBooker {
	return &RideBooker{
		router:     deps.Router,
		geocoder:   deps.Geocoder,
		pricing:    deps.Pricing,
		weather:    deps.Weather,
		suggestion: deps.Suggestion,
		tracer:     otel.Tracer(tracerName),
		logger:     deps.Logger,
	}
}

// Book runs the lookups in order. Only a missing route stops the flow; every
// other step degrades to defaults.
func (b *RideBooker) Book(ctx context.Context, q RideQuery) (*RideResponse, error) {
	ctx, span := b.tracer.Start(ctx, "RideBooker.Book", trace.WithAttributes(
		attribute.String("ride.source", q.Source),
		attribute.String("ride.destination", q.Destination),
	))
	defer span.End()

	log := b.logger.With().Str("source", q.Source).Str("destination", q.Destination).Logger()

	// 1. Route
	route, ok := b.route(ctx, q)
	if !ok {
		log.Info().Msg("no route found")
		return nil, &RouteNotFoundError{Source: q.Source, Destination: q.Destination}
	}
	log.Debug().Str("distance", route.Distance).Str("duration", route.Duration).Msg("route found")

	// 2. Geocode both ends
	start, startOK := b.geocode(ctx, "source", q.Source)
	end, endOK := b.geocode(ctx, "destination", q.Destination)
	log.Debug().
		Bool("source_ok", startOK).Float64("source_lat", start.Lat).Float64("source_lng", start.Lng).
		Bool("destination_ok", endOK).Float64("destination_lat", end.Lat).Float64("destination_lng", end.Lng).
		Msg("geocoded")

	// 3. Pricing, only with both coordinates
	estimates := Estimates{Prices: []pricing.PriceEstimate{}, Times: []pricing.TimeEstimate{}}
	if startOK && endOK {
		estimates = b.estimates(ctx, log, start.Point(), end.Point(), q.ProductID)
	} else {
		log.Warn().Bool("source_ok", startOK).Bool("destination_ok", endOK).Msg("geocoding incomplete, skipping estimates")
	}

	// 4. Weather at the destination
	report := b.lookupWeather(ctx, q.Destination)
	log.Debug().Str("condition", report.Condition).Float64("temperature", report.Temperature).Msg("weather resolved")

	// 5. Suggestion
	tip := b.suggest(ctx, suggestion.Trip{
		Source:      q.Source,
		Destination: q.Destination,
		Duration:    route.Duration,
		Condition:   report.Condition,
		Temperature: report.Temperature,
	})

	log.Debug().
		Int("distance_meters", route.DistanceMeters).
		Int("prices", len(estimates.Prices)).
		Str("weather", report.Condition).
		Msg("ride assembled")

	return &RideResponse{
		RideDetails:   route,
		WeatherReport: report,
		UberEstimates: estimates,
		AISuggestion:  tip,
	}, nil
}

func (b *RideBooker) route(ctx context.Context, q RideQuery) (maps.RouteInfo, bool) {
	ctx, span := b.tracer.Start(ctx, "directions")
	defer span.End()

	mode := q.Mode
	if mode == "" {
		mode = gmaps.TravelModeDriving
	}
	route, ok := b.router.Directions(ctx, q.Source, q.Destination, mode)
	span.SetAttributes(attribute.Bool("route.found", ok))
	return route, ok
}

func (b *RideBooker) geocode(ctx context.Context, which, address string) (maps.GeoPoint, bool) {
	ctx, span := b.tracer.Start(ctx, "geocode "+which)
	defer span.End()

	p, ok := b.geocoder.Geocode(ctx, address)
	span.SetAttributes(attribute.Bool("geocode.found", ok))
	return p, ok
}

func (b *RideBooker) estimates(ctx context.Context, log zerolog.Logger, start, end types.Point, productID string) Estimates {
	ctx, span := b.tracer.Start(ctx, "pricing")
	defer span.End()

	prices, priceSrc := b.pricing.PriceEstimates(ctx, start, end)
	times, timeSrc := b.pricing.TimeEstimates(ctx, start, productID)
	span.SetAttributes(
		attribute.String("pricing.prices_source", string(priceSrc)),
		attribute.String("pricing.times_source", string(timeSrc)),
	)
	log.Debug().Str("prices_source", string(priceSrc)).Str("times_source", string(timeSrc)).Msg("estimates fetched")
	if prices == nil {
		prices = []pricing.PriceEstimate{}
	}
	if times == nil {
		times = []pricing.TimeEstimate{}
	}
	return Estimates{Prices: prices, Times: times}
}

func (b *RideBooker) lookupWeather(ctx context.Context, place string) weather.Report {
	ctx, span := b.tracer.Start(ctx, "weather")
	defer span.End()
	return b.weather.Lookup(ctx, place)
}

func (b *RideBooker) suggest(ctx context.Context, t suggestion.Trip) string {
	ctx, span := b.tracer.Start(ctx, "suggestion")
	defer span.End()
	return b.suggestion.Suggest(ctx, t)
}
