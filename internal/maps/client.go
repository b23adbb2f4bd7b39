package maps

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"googlemaps.github.io/maps"
)

// ErrNotConfigured is returned when no Google Maps API key is available.
var ErrNotConfigured = errors.New("google maps api not configured")

type ClientConfig struct {
	APIKey string

	// BaseURL overrides the Google Maps host, used by tests.
	BaseURL string

	Logger zerolog.Logger
}

// Client lazily builds one shared *maps.Client for all mapping services.
// A construction failure is cached and reported on every call.
type Client struct {
	cfg ClientConfig

	once   sync.Once
	client *maps.Client
	err    error
}

func NewClient(cfg ClientConfig) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) get() (*maps.Client, error) {
	c.once.Do(func() {
		if c.cfg.APIKey == "" {
			c.err = ErrNotConfigured
			return
		}
		opts := []maps.ClientOption{maps.WithAPIKey(c.cfg.APIKey)}
		if c.cfg.BaseURL != "" {
			opts = append(opts, maps.WithBaseURL(c.cfg.BaseURL))
		}
		client, err := maps.NewClient(opts...)
		if err != nil {
			c.err = fmt.Errorf("failed to create maps client: %w", err)
			return
		}
		c.client = client
	})
	return c.client, c.err
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}
