package instrumentation

import (
	"os"
	"strings"
)

// Config holds the configuration for OpenTelemetry instrumentation.
type Config struct {
	// ServiceName is the name of the service (default: calsum)
	ServiceName string

	// ServiceVersion is the version of the service
	ServiceVersion string

	// Enabled determines if instrumentation is active (default: true).
	// Set INSTRUMENTATION_ENABLED=false to disable metrics.
	Enabled bool
}

// DefaultConfig returns a Config with defaults taken from the
// environment.
func DefaultConfig() Config {
	return Config{
		ServiceName:    getEnvOrDefault("OTEL_SERVICE_NAME", "calsum"),
		ServiceVersion: "unknown",
		Enabled:        getEnvBool("INSTRUMENTATION_ENABLED", true),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return !strings.EqualFold(value, "false")
}
