package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesFromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("DATABASE_DSN", "postgres://u:p@db:5432/x")
	t.Setenv("ACCESS_TOKEN_SECRET", "env-access")
	t.Setenv("REFRESH_TOKEN_SECRET", "env-refresh")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("REFRESH_TOKEN_TTL", "168h")
	t.Setenv("CLOCK_SKEW_TOLERANCE", "1m")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":9090", c.ListenAddr)
	assert.Equal(t, "postgres://u:p@db:5432/x", c.DatabaseDSN)
	assert.Equal(t, "env-access", c.AccessTokenSecret)
	assert.Equal(t, "env-refresh", c.RefreshTokenSecret)
	assert.Equal(t, 5*time.Minute, c.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, c.RefreshTokenTTL)
	assert.Equal(t, time.Minute, c.ClockSkewTolerance)
}

func TestParseEnv_UnsetVariablesKeepDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, 15*time.Minute, c.AccessTokenTTL)
}

func TestParseEnv_InvalidDurationIsIgnored(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "soon")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 15*time.Minute, c.AccessTokenTTL)
}
