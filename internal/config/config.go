// Package config loads application configuration from the environment.
//
// A .env file in the working directory is honored for local development;
// in CI or scheduled runs the variables come from the process environment.
// The loaded Config is passed explicitly to the components that need it,
// there is no package-level state.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all settings for a single run.
type Config struct {
	// Google Calendar
	GoogleClientID     string
	GoogleClientSecret string
	GoogleTokenPath    string
	CalendarID         string

	// Anthropic
	AnthropicAPIKey string

	// Twilio WhatsApp
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string
	TwilioWhatsAppTo   string

	// Optional behavior
	DryRun             bool
	Verbose            bool
	PromptTemplatePath string
}

// Load reads configuration from the environment, preferring a .env file
// when one exists. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleTokenPath:    getEnvOrDefault("GOOGLE_CALENDAR_TOKEN_PATH", "token.json"),
		CalendarID:         getEnvOrDefault("CALENDAR_ID", "primary"),
		AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom: getEnvOrDefault("TWILIO_WHATSAPP_FROM", "whatsapp:+14155238886"),
		TwilioWhatsAppTo:   os.Getenv("TWILIO_WHATSAPP_TO"),
		DryRun:             getEnvBool("DRY_RUN", false),
		Verbose:            getEnvBool("VERBOSE", false),
		PromptTemplatePath: getEnvOrDefault("PROMPT_TEMPLATE_PATH", "prompts/summary_prompt.txt"),
	}
}

// Validate checks that all required settings are present. Every missing
// variable is reported in a single error so the user can fix them in one
// pass.
func (c Config) Validate() error {
	var missing []string

	if c.GoogleClientID == "" {
		missing = append(missing, "GOOGLE_CLIENT_ID")
	}
	if c.GoogleClientSecret == "" {
		missing = append(missing, "GOOGLE_CLIENT_SECRET")
	}
	if c.AnthropicAPIKey == "" {
		missing = append(missing, "ANTHROPIC_API_KEY")
	}
	if c.TwilioAccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if c.TwilioAuthToken == "" {
		missing = append(missing, "TWILIO_AUTH_TOKEN")
	}
	if c.TwilioWhatsAppTo == "" {
		missing = append(missing, "TWILIO_WHATSAPP_TO")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
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
	return strings.EqualFold(value, "true")
}
