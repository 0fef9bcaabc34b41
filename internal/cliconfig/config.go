// Package cliconfig resolves server configuration from defaults and
// environment variables. Command-line flags override both; that
// precedence is applied by the CLI layer.
package cliconfig

// Config holds the resolved server configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// LogFormat is the log output format (text, json).
	LogFormat string

	// ReadTimeout is the HTTP read timeout in seconds.
	ReadTimeout int

	// WriteTimeout is the HTTP write timeout in seconds.
	WriteTimeout int

	// CORSOrigins lists the allowed CORS origins. Empty means all.
	CORSOrigins []string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Port:         4270,
		LogLevel:     "info",
		LogFormat:    "text",
		ReadTimeout:  30,
		WriteTimeout: 30,
	}
}
