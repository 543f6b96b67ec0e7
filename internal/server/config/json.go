package config

import (
	"encoding/json"
	"os"

	"github.com/nsavelyev/viewtube/internal/flagx"
	"github.com/nsavelyev/viewtube/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "15m" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	ListenAddr         *string         `json:"listen_addr"`
	DatabaseDSN        *string         `json:"database_dsn"`
	AccessTokenSecret  *string         `json:"access_token_secret"`
	RefreshTokenSecret *string         `json:"refresh_token_secret"`
	AccessTokenTTL     *timex.Duration `json:"access_token_ttl"`
	RefreshTokenTTL    *timex.Duration `json:"refresh_token_ttl"`
	ClockSkewTolerance *timex.Duration `json:"clock_skew_tolerance"`
	S3RootUser         *string         `json:"s3_root_user"`
	S3RootPassword     *string         `json:"s3_root_password"`
	S3Bucket           *string         `json:"s3_bucket"`
	S3Region           *string         `json:"s3_region"`
	S3BaseEndpoint     *string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c/-config command-line flags; if
// neither is set, no JSON file is loaded. Fields absent from the file keep
// their current values. An unreadable or invalid file panics: a requested
// config file that cannot be honored should not be silently ignored.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ListenAddr != nil {
		config.ListenAddr = *c.ListenAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.AccessTokenSecret != nil {
		config.AccessTokenSecret = *c.AccessTokenSecret
	}
	if c.RefreshTokenSecret != nil {
		config.RefreshTokenSecret = *c.RefreshTokenSecret
	}
	if c.AccessTokenTTL != nil {
		config.AccessTokenTTL = c.AccessTokenTTL.Duration
	}
	if c.RefreshTokenTTL != nil {
		config.RefreshTokenTTL = c.RefreshTokenTTL.Duration
	}
	if c.ClockSkewTolerance != nil {
		config.ClockSkewTolerance = c.ClockSkewTolerance.Duration
	}
	if c.S3RootUser != nil {
		config.S3RootUser = *c.S3RootUser
	}
	if c.S3RootPassword != nil {
		config.S3RootPassword = *c.S3RootPassword
	}
	if c.S3Bucket != nil {
		config.S3Bucket = *c.S3Bucket
	}
	if c.S3Region != nil {
		config.S3Region = *c.S3Region
	}
	if c.S3BaseEndpoint != nil {
		config.S3BaseEndpoint = *c.S3BaseEndpoint
	}
}
