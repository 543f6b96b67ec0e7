package config

import (
	"flag"
	"os"
	"time"

	"github.com/nsavelyev/viewtube/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//
// Secrets are deliberately not accepted as flags; use the environment or a
// config file. The function first filters os.Args to only the flags it
// recognizes using flagx.FilterArgs, avoiding collisions with other
// components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	accessTokenTTL := fs.Int("t", int(config.AccessTokenTTL.Minutes()), "access token validity (in minutes)")
	refreshTokenTTL := fs.Int("r", int(config.RefreshTokenTTL.Minutes()), "refresh token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// The minute-granular flags only take effect when actually passed, so
	// sub-minute TTLs from the environment or config file survive the overlay.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["t"] {
		config.AccessTokenTTL = time.Duration(*accessTokenTTL) * time.Minute
	}
	if set["r"] {
		config.RefreshTokenTTL = time.Duration(*refreshTokenTTL) * time.Minute
	}
}
