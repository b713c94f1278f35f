package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	Env             string

	OpenAIAPIKey    string
	FixpointAPIKey  string
	FixpointAPIURL  string
	CompletionModel string

	SendgridAPIKey      string
	SendgridSenderEmail string
	SendgridSenderName  string
	SendgridTemplateID  string

	HoneybadgerAPIKey string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     dbURL,
		Env:             env,

		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		FixpointAPIKey:  os.Getenv("FIXPOINT_API_KEY"),
		FixpointAPIURL:  getEnv("FIXPOINT_API_URL", "https://api.fixpoint.co"),
		CompletionModel: getEnv("COMPLETION_MODEL", "gpt-4o"),

		SendgridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		SendgridSenderEmail: getEnv("SENDGRID_SENDER_EMAIL", "jobs@example.com"),
		SendgridSenderName:  getEnv("SENDGRID_SENDER_NAME", "Jobs"),
		SendgridTemplateID:  getEnv("SENDGRID_TEMPLATE_ID", "d-ed675a4dc1684cbd81f792dcc7579d74"),

		HoneybadgerAPIKey: os.Getenv("HONEYBADGER_API_KEY"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
