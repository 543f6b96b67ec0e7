package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysOnlyPresentFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "conf.json")
	body := `{
		"listen_addr": ":6060",
		"access_token_ttl": "20m",
		"refresh_token_ttl": "240h",
		"s3_bucket": "uploads"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	os.Args = []string{"testbin", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":6060", c.ListenAddr)
	assert.Equal(t, 20*time.Minute, c.AccessTokenTTL)
	assert.Equal(t, 240*time.Hour, c.RefreshTokenTTL)
	assert.Equal(t, "uploads", c.S3Bucket)

	// untouched fields keep defaults
	assert.Equal(t, "accessSecret", c.AccessTokenSecret)
	assert.Equal(t, 30*time.Second, c.ClockSkewTolerance)
}

func TestParseJson_NoFlagNoFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":8080", c.ListenAddr)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	os.Args = []string{"testbin", "-c", path}

	var c Config
	c.LoadDefaults()
	assert.Panics(t, func() { parseJson(&c) })
}
