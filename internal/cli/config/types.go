// Package config provides configuration management for the sqlbench CLI.
// Values are merged from defaults, the config file, SQLBENCH_ environment
// variables, and flags, in increasing priority.
package config

// ServerConfig holds configuration for the workbench server.
type ServerConfig struct {
	Port          int    `koanf:"port"`
	SessionSecret string `koanf:"session_secret"`
}

// Config holds all CLI configuration options.
type Config struct {
	PageSize        int           `koanf:"page_size"`
	HistoryLimit    int           `koanf:"history_limit"`
	SimulateLatency bool          `koanf:"simulate_latency"`
	Seed            uint64        `koanf:"seed"`
	Verbose         bool          `koanf:"verbose"`
	OutputFormat    string        `koanf:"output"`
	Server          *ServerConfig `koanf:"server"`
}

// Default configuration values.
const (
	DefaultPort          = 8765
	DefaultSessionSecret = "sqlbench-dev-secret"
	DefaultPageSize      = 25
	DefaultHistoryLimit  = 20
	DefaultOutput        = "table"
)

// GetServerConfig returns the server config with defaults applied for
// any unset values.
func (c *Config) GetServerConfig() *ServerConfig {
	srv := c.Server
	if srv == nil {
		srv = &ServerConfig{}
	}
	if srv.Port == 0 {
		srv.Port = DefaultPort
	}
	if srv.SessionSecret == "" {
		srv.SessionSecret = DefaultSessionSecret
	}
	return srv
}
