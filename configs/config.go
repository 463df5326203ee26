package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Ledger backends
const (
	LedgerPostgres = "postgres"
	LedgerRedis    = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Ledger   LedgerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Quote    QuoteConfig
	Liker    LikerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string

	// TrustedProxies lists CIDRs whose X-Forwarded-For is honored.
	// Empty means the socket address identifies the client.
	TrustedProxies []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// LedgerConfig selects the like ledger backend and its maintenance schedule
type LedgerConfig struct {
	Backend       string
	StatsSchedule string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string

	// Pool sizing for the like ledger: one short upsert per requested stock
	MaxConns int32
	MinConns int32
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL string
}

// QuoteConfig holds upstream quote API configuration
type QuoteConfig struct {
	URL     string
	Timeout time.Duration
}

// LikerConfig holds liker identity configuration
type LikerConfig struct {
	Salt string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("GO_ENV", "development"),

			TrustedProxies: getEnvList("TRUSTED_PROXIES"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Ledger: LedgerConfig{
			Backend:       strings.ToLower(getEnv("LEDGER_BACKEND", LedgerPostgres)),
			StatsSchedule: getEnvAllowEmpty("LEDGER_STATS_SCHEDULE", "@every 1h"),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			MaxConns: getEnvInt32("DB_MAX_CONNS", 10),
			MinConns: getEnvInt32("DB_MIN_CONNS", 2),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		Quote: QuoteConfig{
			URL:     getEnv("QUOTE_API_URL", "https://stock-price-checker-proxy.freecodecamp.rocks"),
			Timeout: getEnvDuration("QUOTE_TIMEOUT", 10*time.Second),
		},
		Liker: LikerConfig{
			Salt: getEnv("LIKER_SALT", ""),
		},
	}
}

// IsProduction reports whether the service runs with GO_ENV=production
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAllowEmpty is like getEnv but an explicitly empty variable wins over the default
func getEnvAllowEmpty(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// getEnvDuration parses a duration variable, falling back to the default when unset or invalid
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", value).Msgf("Invalid duration, using default %s", defaultValue)
		return defaultValue
	}
	return d
}

// getEnvList splits a comma-separated variable, dropping empty items
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnvInt32 parses a positive integer variable, falling back to the default when unset or invalid
func getEnvInt32(key string, defaultValue int32) int32 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil || n <= 0 {
		log.Warn().Str("key", key).Str("value", value).Msgf("Invalid integer, using default %d", defaultValue)
		return defaultValue
	}
	return int32(n)
}
