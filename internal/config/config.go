package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend selects the job data source.
const (
	BackendGuest = "guest"
	BackendAPI   = "api"
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	// Backend is "guest" (public page scraping, no credentials) or "api"
	// (authenticated REST API).
	Backend string

	// RequestTimeout bounds every outbound fetch; configured once at startup.
	RequestTimeout time.Duration

	LinkedIn struct {
		ClientID     string
		ClientSecret string
		AccessToken  string
		BaseURL      string
	} // REST API credentials, required for the api backend
}

// Load populates config from environment variables, honoring a .env file
// when one is present
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	cfg := Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Host:           getEnv("MCP_HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "8080"),
		Backend:        getEnv("LINKEDIN_BACKEND", BackendGuest),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	cfg.LinkedIn.ClientID = os.Getenv("LINKEDIN_CLIENT_ID")
	cfg.LinkedIn.ClientSecret = os.Getenv("LINKEDIN_CLIENT_SECRET")
	cfg.LinkedIn.AccessToken = os.Getenv("LINKEDIN_ACCESS_TOKEN")
	cfg.LinkedIn.BaseURL = os.Getenv("LINKEDIN_API_BASE_URL")

	switch cfg.Backend {
	case BackendGuest:
		// No credentials required.
	case BackendAPI:
		var missingVars []string

		if cfg.LinkedIn.ClientID == "" {
			missingVars = append(missingVars, "LINKEDIN_CLIENT_ID")
		}

		if cfg.LinkedIn.ClientSecret == "" {
			missingVars = append(missingVars, "LINKEDIN_CLIENT_SECRET")
		}

		if cfg.LinkedIn.AccessToken == "" {
			missingVars = append(missingVars, "LINKEDIN_ACCESS_TOKEN")
		}

		if len(missingVars) > 0 {
			return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
		}
	default:
		return cfg, fmt.Errorf("unknown LINKEDIN_BACKEND %q (expected %q or %q)", cfg.Backend, BackendGuest, BackendAPI)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
