package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overlays set variables", func(t *testing.T) {
		t.Setenv("OUTSTAGRAM_BASE_URL", "http://env.example:8080")
		t.Setenv("OUTSTAGRAM_REQUEST_TIMEOUT", "7s")

		cfg := &Config{
			BaseURL:         "http://defaults:1234",
			CredentialsFile: "defaults.db",
			RequestTimeout:  42 * time.Second,
		}
		parseEnv(cfg)

		assert.Equal(t, "http://env.example:8080", cfg.BaseURL)
		assert.Equal(t, "defaults.db", cfg.CredentialsFile)
		assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	})

	t.Run("unset variables keep existing values", func(t *testing.T) {
		cfg := &Config{
			BaseURL:         "http://defaults:1234",
			CredentialsFile: "defaults.db",
			RequestTimeout:  42 * time.Second,
		}
		parseEnv(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.BaseURL)
		assert.Equal(t, "defaults.db", cfg.CredentialsFile)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})
}
