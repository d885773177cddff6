package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables, loading a
// .env file first if one exists. A missing .env file is not an error.
//
// Recognized variables:
//
//	OUTSTAGRAM_BASE_URL
//	OUTSTAGRAM_CREDENTIALS_FILE
//	OUTSTAGRAM_REQUEST_TIMEOUT (time.Duration syntax, e.g. "15s")
func parseEnv(cfg *Config) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			panic(err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
