package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LEDGER_BACKEND", "QUOTE_API_URL", "QUOTE_TIMEOUT", "LIKER_SALT", "DATABASE_URL", "TRUSTED_PROXIES", "DB_MAX_CONNS", "DB_MIN_CONNS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "3000", cfg.Server.Port)
	require.Equal(t, LedgerPostgres, cfg.Ledger.Backend)
	require.Equal(t, "https://stock-price-checker-proxy.freecodecamp.rocks", cfg.Quote.URL)
	require.Equal(t, 10*time.Second, cfg.Quote.Timeout)
	require.Empty(t, cfg.Database.URL)
	require.Empty(t, cfg.Server.TrustedProxies)
	require.Equal(t, int32(10), cfg.Database.MaxConns)
	require.Equal(t, int32(2), cfg.Database.MinConns)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LEDGER_BACKEND", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("QUOTE_TIMEOUT", "750ms")
	t.Setenv("LEDGER_STATS_SCHEDULE", "")
	t.Setenv("GO_ENV", "production")

	cfg := Load()
	require.Equal(t, "8081", cfg.Server.Port)
	require.Equal(t, LedgerRedis, cfg.Ledger.Backend)
	require.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	require.Equal(t, 750*time.Millisecond, cfg.Quote.Timeout)
	require.Empty(t, cfg.Ledger.StatsSchedule)
	require.True(t, cfg.IsProduction())
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("QUOTE_TIMEOUT", "soon")
	require.Equal(t, 10*time.Second, Load().Quote.Timeout)
}

func TestLoad_TrustedProxiesAndPool(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.0/8, ,192.168.1.1/32 ")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_MIN_CONNS", "-1")

	cfg := Load()
	require.Equal(t, []string{"10.0.0.0/8", "192.168.1.1/32"}, cfg.Server.TrustedProxies)
	require.Equal(t, int32(4), cfg.Database.MaxConns)
	require.Equal(t, int32(2), cfg.Database.MinConns)
}
