// README: HTTP client for outbound provider calls, guarded by a circuit breaker.
package infra

import (
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned while the breaker rejects calls to a failing provider.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// ServerError marks a 5xx response so the breaker counts it as a failure.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return "server error: " + http.StatusText(e.StatusCode)
}

type ProviderClientConfig struct {
	// Name identifies the provider in breaker state change callbacks.
	Name string

	// Timeout bounds a single HTTP call. Default: 10 seconds.
	Timeout time.Duration

	// MaxRequests allowed through while half-open. Default: 1.
	MaxRequests uint32

	// OpenTimeout is how long the breaker stays open. Default: 60 seconds.
	OpenTimeout time.Duration

	// ReadyToTrip overrides DefaultReadyToTrip.
	ReadyToTrip func(counts gobreaker.Counts) bool

	OnStateChange func(name string, from, to gobreaker.State)
}

// DefaultReadyToTrip trips after at least 5 requests with a failure rate of 50% or more.
func DefaultReadyToTrip(counts gobreaker.Counts) bool {
	if counts.Requests < 5 {
		return false
	}
	return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
}

// ProviderClient performs single-attempt HTTP calls through a circuit breaker.
type ProviderClient struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
}

func NewProviderClient(cfg ProviderClientConfig) *ProviderClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 60 * time.Second
	}
	if cfg.ReadyToTrip == nil {
		cfg.ReadyToTrip = DefaultReadyToTrip
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: cfg.ReadyToTrip,
	}
	if cfg.OnStateChange != nil {
		settings.OnStateChange = cfg.OnStateChange
	}

	return &ProviderClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    gobreaker.NewCircuitBreaker[*http.Response](settings), //nolint:bodyclose // type param
	}
}

// Do sends req once. 5xx responses are returned to the caller as-is but still
// counted as failures by the breaker.
func (c *ProviderClient) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.breaker.Execute(func() (*http.Response, error) { //nolint:bodyclose // caller closes
		r, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if r.StatusCode >= 500 {
			return r, &ServerError{StatusCode: r.StatusCode}
		}
		return r, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrCircuitOpen
		}
		var se *ServerError
		if errors.As(err, &se) && resp != nil {
			return resp, nil
		}
		return nil, err
	}
	return resp, nil
}

func (c *ProviderClient) State() gobreaker.State {
	return c.breaker.State()
}
