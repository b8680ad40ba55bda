package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config values from the process environment. A .env file
// in the working directory is loaded first; a missing file is not an error.
//
// Supported variables:
//
//	RUN_ADDRESS            HTTP bind address
//	DATABASE_DSN           PostgreSQL DSN
//	SECRET_KEY             JWT HMAC secret key
//	ACCESS_TOKEN_VALIDITY  access token validity ("15m", "1h", ...)
//	BCRYPT_COST            bcrypt cost for password hashing
//	CORS_ALLOWED_ORIGINS   comma-separated CORS allowed origins
//	GIN_MODE               gin mode (debug, release, test)
//
// Only variables that are set override the current values. Unparseable
// duration or integer values panic.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		config.RunAddress = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_VALIDITY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.AccessTokenValidityDuration = d
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.BcryptCost = n
	}
	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		config.CORSAllowedOrigins = splitOrigins(v)
	}
	if v, ok := os.LookupEnv("GIN_MODE"); ok {
		config.GinMode = v
	}
}
