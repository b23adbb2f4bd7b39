// README: Pricing service fetches Uber products and estimates, falling back to mock data.
package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"ridewise/internal/infra"
	"ridewise/internal/types"
)

const (
	SandboxBaseURL    = "https://sandbox-api.uber.com/v1.2"
	ProductionBaseURL = "https://api.uber.com/v1.2"
)

var errNoToken = errors.New("UBER_SERVER_TOKEN not set")

type Config struct {
	ServerToken string

	// BaseURL overrides the sandbox/production choice.
	BaseURL     string
	SandboxMode bool

	HTTPClient *infra.ProviderClient
	Logger     zerolog.Logger
}

type Service struct {
	token      string
	baseURL    string
	httpClient *infra.ProviderClient
	logger     zerolog.Logger
}

func NewService(cfg Config) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = ProductionBaseURL
		if cfg.SandboxMode {
			cfg.BaseURL = SandboxBaseURL
		}
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = infra.NewProviderClient(infra.ProviderClientConfig{Name: "uber"})
	}
	return &Service{
		token:      cfg.ServerToken,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
}

// Products lists ride products available at p.
func (s *Service) Products(ctx context.Context, p types.Point) ([]Product, Source) {
	q := url.Values{}
	q.Set("latitude", formatCoord(p.Lat))
	q.Set("longitude", formatCoord(p.Lng))

	products, err := getList[Product](ctx, s, "/products", q, "products")
	if err != nil {
		s.fallback(err, "products")
		return MockProducts(), SourceMock
	}
	return products, SourceLive
}

// PriceEstimates returns fare ranges per product for a trip.
func (s *Service) PriceEstimates(ctx context.Context, start, end types.Point) ([]PriceEstimate, Source) {
	q := url.Values{}
	q.Set("start_latitude", formatCoord(start.Lat))
	q.Set("start_longitude", formatCoord(start.Lng))
	q.Set("end_latitude", formatCoord(end.Lat))
	q.Set("end_longitude", formatCoord(end.Lng))

	prices, err := getList[PriceEstimate](ctx, s, "/estimates/price", q, "prices")
	if err != nil {
		s.fallback(err, "price estimates")
		return MockPriceEstimates(), SourceMock
	}
	return prices, SourceLive
}

// TimeEstimates returns pickup ETAs in seconds at start, optionally for one product.
func (s *Service) TimeEstimates(ctx context.Context, start types.Point, productID string) ([]TimeEstimate, Source) {
	q := url.Values{}
	q.Set("start_latitude", formatCoord(start.Lat))
	q.Set("start_longitude", formatCoord(start.Lng))
	if productID != "" {
		q.Set("product_id", productID)
	}

	times, err := getList[TimeEstimate](ctx, s, "/estimates/time", q, "times")
	if err != nil {
		s.fallback(err, "time estimates")
		return MockTimeEstimates(), SourceMock
	}
	return times, SourceLive
}

func (s *Service) fallback(err error, what string) {
	if errors.Is(err, errNoToken) {
		s.logger.Warn().Msgf("%s, using mock %s", err, what)
		return
	}
	s.logger.Error().Err(err).Msgf("uber %s failed, using mock data", what)
}

// getList fetches path and decodes the array stored under field.
func getList[T any](ctx context.Context, s *Service, path string, q url.Values, field string) ([]T, error) {
	if s.token == "" {
		return nil, errNoToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+s.token)
	req.Header.Set("Accept-Language", "en_US")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	items := []T{}
	if raw, ok := body[field]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", field, err)
		}
	}
	return items, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
