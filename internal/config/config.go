// README: Config loader with env and .env defaults for HTTP, providers, Redis, and telemetry settings.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	LogLevel string
	HTTP     struct {
		Host        string
		Port        int
		CORSOrigins []string
	}
	Maps struct {
		APIKey string
	}
	AI struct {
		Provider    string
		GeminiKey   string
		GeminiModel string
		OpenAIKey   string
	}
	Weather struct {
		APIKey  string
		BaseURL string
	}
	Uber struct {
		ClientID     string
		ClientSecret string
		ServerToken  string
		SandboxMode  bool
	}
	Redis struct {
		Addr       string
		GeocodeTTL time.Duration
	}
	Telemetry struct {
		Enabled      bool
		OTLPEndpoint string
	}
}

// Load reads the process environment, falling back to a .env file in the
// working directory when one exists.
func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" && Exists(path) {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	var cfg Config
	cfg.Env = envOrDefault(v, "RIDEWISE_ENV", "production")
	cfg.LogLevel = envOrDefault(v, "RIDEWISE_LOG_LEVEL", "info")

	cfg.HTTP.Host = envOrDefault(v, "SERVER_HOST", "0.0.0.0")
	cfg.HTTP.Port = envOrDefaultInt(v, "SERVER_PORT", 8000)
	cfg.HTTP.CORSOrigins = splitList(envOrDefault(v, "CORS_ORIGINS", "*"))

	cfg.Maps.APIKey = v.GetString("GOOGLE_MAPS_API_KEY")

	cfg.AI.Provider = strings.ToLower(envOrDefault(v, "RIDEWISE_AI_PROVIDER", "gemini"))
	cfg.AI.GeminiKey = v.GetString("GEMINI_API_KEY")
	cfg.AI.GeminiModel = envOrDefault(v, "RIDEWISE_GEMINI_MODEL", "gemini-2.0-flash")
	cfg.AI.OpenAIKey = v.GetString("OPENAI_API_KEY")

	cfg.Weather.APIKey = v.GetString("OPENWEATHER_API_KEY")
	cfg.Weather.BaseURL = v.GetString("OPENWEATHER_BASE_URL")

	cfg.Uber.ClientID = v.GetString("UBER_CLIENT_ID")
	cfg.Uber.ClientSecret = v.GetString("UBER_CLIENT_SECRET")
	cfg.Uber.ServerToken = v.GetString("UBER_SERVER_TOKEN")
	cfg.Uber.SandboxMode = envOrDefaultBool(v, "UBER_SANDBOX_MODE", true)

	cfg.Redis.Addr = v.GetString("RIDEWISE_REDIS_ADDR")
	cfg.Redis.GeocodeTTL = envOrDefaultDuration(v, "RIDEWISE_GEOCODE_CACHE_TTL", 24*time.Hour)

	cfg.Telemetry.Enabled = envOrDefaultBool(v, "RIDEWISE_OTEL_ENABLED", false)
	cfg.Telemetry.OTLPEndpoint = envOrDefault(v, "RIDEWISE_OTLP_ENDPOINT", "localhost:4317")

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}

// MissingKeys lists provider credentials that are not set. Each missing key
// degrades a feature; none prevents startup.
func (c Config) MissingKeys() []string {
	var missing []string
	if c.Maps.APIKey == "" {
		missing = append(missing, "GOOGLE_MAPS_API_KEY")
	}
	if c.AI.Provider == "openai" {
		if c.AI.OpenAIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	} else if c.AI.GeminiKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if c.Weather.APIKey == "" {
		missing = append(missing, "OPENWEATHER_API_KEY")
	}
	if c.Uber.ServerToken == "" {
		missing = append(missing, "UBER_SERVER_TOKEN")
	}
	return missing
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("UBER_SANDBOX_MODE", "true")
}

func envOrDefault(v *viper.Viper, key, def string) string {
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		return s
	}
	return def
}

func envOrDefaultInt(v *viper.Viper, key string, def int) int {
	if s := v.GetString(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(v *viper.Viper, key string, def bool) bool {
	if s := v.GetString(key); s != "" {
		return strings.EqualFold(strings.TrimSpace(s), "true")
	}
	return def
}

func envOrDefaultDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if s := v.GetString(key); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Exists reports whether a dotenv file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
