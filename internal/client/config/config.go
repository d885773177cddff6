package config

import "time"

// Config holds runtime settings for the Outstagram CLI.
//
// Fields:
//   - BaseURL: root URL of the Outstagram HTTP API.
//   - CredentialsFile: path of the local credential store (SQLite).
//   - RequestTimeout: per-request timeout for API calls.
//
// Units: RequestTimeout is a time.Duration (e.g., 15*time.Second).
type Config struct {
	BaseURL         string        `env:"OUTSTAGRAM_BASE_URL"`
	CredentialsFile string        `env:"OUTSTAGRAM_CREDENTIALS_FILE"`
	RequestTimeout  time.Duration `env:"OUTSTAGRAM_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000"
	c.CredentialsFile = "outstagram.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
