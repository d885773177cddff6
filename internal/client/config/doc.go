// Package config loads runtime configuration for the Outstagram CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with an optional .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the Outstagram API
//	-f string   path of the local credential store (SQLite)
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:3000",
//	  "credentials_file": "outstagram.db",
//	  "request_timeout": "15s"
//	}
//
// Primary API
//
//   - type Config                     — holds BaseURL, CredentialsFile and RequestTimeout
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
