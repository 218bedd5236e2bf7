// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath points at the SQLite database holding sessions, candidates,
	// and scores. Empty selects the in-memory store.
	DBPath string `koanf:"db_path"`

	// DemoData seeds the in-memory store with generated sessions when no
	// database is configured. Ignored when DBPath is set.
	DemoData bool `koanf:"demo_data"`

	// Metrics is the fixed, ordered metric-name registry. It defines the
	// valid score metrics and the default column order of tabular output.
	Metrics []string `koanf:"metrics"`

	// MaxTopN caps the top_n parameter accepted by the rankings endpoint.
	MaxTopN int `koanf:"max_top_n"`
}

// New creates a Config with defaults. The default registry mirrors the
// interview evaluation sheet shipped with the product.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":9080",
		DBPath:   "",
		DemoData: false,
		Metrics: []string{
			"Technical Skills",
			"Communication",
			"Problem Solving",
			"Cultural Fit",
			"Leadership",
		},
		MaxTopN: 100,
	}
}
