package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables, loading a
// .env file first when one exists. Unset variables keep the current value;
// a duration that fails to parse is ignored rather than fatal.
//
// Recognized variables:
//
//	LISTEN_ADDR, DATABASE_DSN,
//	ACCESS_TOKEN_SECRET, ACCESS_TOKEN_TTL,
//	REFRESH_TOKEN_SECRET, REFRESH_TOKEN_TTL,
//	CLOCK_SKEW_TOLERANCE,
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT
func parseEnv(config *Config) {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	setString("LISTEN_ADDR", &config.ListenAddr)
	setString("DATABASE_DSN", &config.DatabaseDSN)
	setString("ACCESS_TOKEN_SECRET", &config.AccessTokenSecret)
	setString("REFRESH_TOKEN_SECRET", &config.RefreshTokenSecret)
	setDuration("ACCESS_TOKEN_TTL", &config.AccessTokenTTL)
	setDuration("REFRESH_TOKEN_TTL", &config.RefreshTokenTTL)
	setDuration("CLOCK_SKEW_TOLERANCE", &config.ClockSkewTolerance)
	setString("S3_ROOT_USER", &config.S3RootUser)
	setString("S3_ROOT_PASSWORD", &config.S3RootPassword)
	setString("S3_BUCKET", &config.S3Bucket)
	setString("S3_REGION", &config.S3Region)
	setString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
}
