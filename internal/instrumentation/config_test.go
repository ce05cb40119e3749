package instrumentation

import "testing"

func TestDefaultConfig(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("INSTRUMENTATION_ENABLED", "")

	config := DefaultConfig()

	if config.ServiceName != "calsum" {
		t.Errorf("ServiceName = %q, want %q", config.ServiceName, "calsum")
	}
	if !config.Enabled {
		t.Error("Enabled = false, want true by default")
	}
}

func TestDefaultConfig_FromEnv(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "custom-name")
	t.Setenv("INSTRUMENTATION_ENABLED", "false")

	config := DefaultConfig()

	if config.ServiceName != "custom-name" {
		t.Errorf("ServiceName = %q, want %q", config.ServiceName, "custom-name")
	}
	if config.Enabled {
		t.Error("Enabled = true, want false")
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue bool
		expected     bool
	}{
		{"unset uses default", "", true, true},
		{"explicit false", "false", true, false},
		{"case insensitive false", "FALSE", true, false},
		{"anything else is true", "yes", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL_VAR", tt.value)
			if got := getEnvBool("TEST_BOOL_VAR", tt.defaultValue); got != tt.expected {
				t.Errorf("getEnvBool(%q, %v) = %v, want %v", tt.value, tt.defaultValue, got, tt.expected)
			}
		})
	}
}
