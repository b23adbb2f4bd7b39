package maps

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const geocodeKeyPrefix = "ridewise:geocode:"

// RedisGeocodeCache keeps geocode results in Redis for ttl.
type RedisGeocodeCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewRedisGeocodeCache(rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisGeocodeCache {
	return &RedisGeocodeCache{rdb: rdb, ttl: ttl, logger: logger}
}

func geocodeKey(address string) string {
	return geocodeKeyPrefix + strings.ToLower(strings.TrimSpace(address))
}

func (c *RedisGeocodeCache) Get(ctx context.Context, address string) (GeoPoint, bool) {
	raw, err := c.rdb.Get(ctx, geocodeKey(address)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Msg("geocode cache get failed")
		}
		return GeoPoint{}, false
	}
	var p GeoPoint
	if err := json.Unmarshal(raw, &p); err != nil {
		return GeoPoint{}, false
	}
	return p, true
}

func (c *RedisGeocodeCache) Set(ctx context.Context, address string, p GeoPoint) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, geocodeKey(address), raw, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("geocode cache set failed")
	}
}
