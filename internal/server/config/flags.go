package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-b int      bcrypt cost for password hashing
//	-o string   comma-separated CORS allowed origins
//	-m string   gin mode (debug, release, test)
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The duration flag is accepted as an integer in minutes and then
//     converted to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-b", "-o", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.RunAddress, "a", config.RunAddress, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	bcryptCost := fs.Int("b", config.BcryptCost, "bcrypt cost")

	corsAllowedOrigins := fs.String("o", strings.Join(config.CORSAllowedOrigins, ","), "CORS allowed origins (comma-separated)")
	fs.StringVar(&config.GinMode, "m", config.GinMode, "gin mode")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.BcryptCost = *bcryptCost
	config.CORSAllowedOrigins = splitOrigins(*corsAllowedOrigins)
}
