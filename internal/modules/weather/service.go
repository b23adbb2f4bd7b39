// README: Weather lookup against OpenWeatherMap current conditions; never fails.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"ridewise/internal/infra"
)

const (
	DefaultBaseURL = "http://api.openweathermap.org/data/2.5"
	DefaultTimeout = 5 * time.Second
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// HTTPClient defaults to a breaker-guarded provider client.
	HTTPClient *infra.ProviderClient

	Logger zerolog.Logger
}

type Service struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *infra.ProviderClient
	logger     zerolog.Logger
}

func NewService(cfg Config) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = infra.NewProviderClient(infra.ProviderClientConfig{Name: "openweathermap", Timeout: cfg.Timeout})
	}
	return &Service{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
}

type currentWeatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// Lookup returns current conditions for a place name. Without an API key it
// returns Unconfigured; any failure returns Unavailable.
func (s *Service) Lookup(ctx context.Context, place string) Report {
	if s.apiKey == "" {
		s.logger.Warn().Msg("OPENWEATHER_API_KEY not set, using default weather")
		return Unconfigured
	}

	report, err := s.fetch(ctx, place)
	if err != nil {
		s.logger.Error().Err(err).Str("place", place).Msg("weather lookup failed")
		return Unavailable
	}
	return report
}

func (s *Service) fetch(ctx context.Context, place string) (Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("q", place)
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/weather?"+q.Encode(), http.NoBody)
	if err != nil {
		return Report{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Report{}, fmt.Errorf("decoding response: %w", err)
	}
	if len(body.Weather) == 0 {
		return Report{}, fmt.Errorf("response has no weather entries")
	}

	if body.Main == nil || body.Main.Temp == nil {
		return Report{}, fmt.Errorf("response has no temperature")
	}

	return Report{Condition: body.Weather[0].Description, Temperature: *body.Main.Temp}, nil
}
