package config

var current *Config

// SetCurrent stores the loaded config for access by commands.
func SetCurrent(cfg *Config) {
	current = cfg
}

// Current returns the loaded config, or a config with defaults when
// nothing was loaded (help paths, tests).
func Current() *Config {
	if current != nil {
		return current
	}
	return &Config{
		PageSize:        DefaultPageSize,
		HistoryLimit:    DefaultHistoryLimit,
		SimulateLatency: true,
		OutputFormat:    DefaultOutput,
	}
}
