package cliconfig

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvPort         = "COMICD_PORT"
	EnvLogLevel     = "COMICD_LOG_LEVEL"
	EnvLogFormat    = "COMICD_LOG_FORMAT"
	EnvReadTimeout  = "COMICD_READ_TIMEOUT"
	EnvWriteTimeout = "COMICD_WRITE_TIMEOUT"
	EnvCORSOrigins  = "COMICD_CORS_ORIGINS"
)

// LoadEnv overlays environment variables onto cfg. Only variables that are
// present and parseable are applied.
func LoadEnv(cfg *Config) {
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}

	if v := os.Getenv(EnvReadTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			cfg.ReadTimeout = timeout
		}
	}

	if v := os.Getenv(EnvWriteTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			cfg.WriteTimeout = timeout
		}
	}

	// Comma-separated list of origins.
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}
}
