package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Content sources
const (
	ContentSourceEmbedded = "embedded"
	ContentSourceDir      = "dir"
	ContentSourceStorage  = "storage"
	ContentSourcePostgres = "postgres"
)

// Config holds the server and tooling configuration read from the environment
type Config struct {
	Port     string
	Env      string
	LogLevel string
	BaseURL  string
	SiteName string

	// Optional; lawyer search and the postgres content source need it
	DatabaseURL string

	ContentSource string
	ContentDir    string
	ContentPrefix string
	ContentWatch  bool

	// bcrypt hash of the admin bearer token; admin routes are disabled when empty
	AdminTokenHash string

	GeminiAPIKey string
	GeminiModel  string
}

// LoadDotEnv loads a .env file from the working directory, falling back to
// the project root when run from cmd/<name>. It reports whether a file was found.
func LoadDotEnv() bool {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			return false
		}
	}
	return true
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		Env:            getenv("APP_ENV", "development"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		BaseURL:        strings.TrimRight(getenv("BASE_URL", "https://www.ausverity.com.au"), "/"),
		SiteName:       getenv("SITE_NAME", "AusVerity"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ContentSource:  getenv("CONTENT_SOURCE", ContentSourceEmbedded),
		ContentDir:     getenv("CONTENT_DIR", "./content/data"),
		ContentPrefix:  getenv("CONTENT_PREFIX", "content"),
		AdminTokenHash: os.Getenv("ADMIN_TOKEN_HASH"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getenv("GEMINI_MODEL", "gemini-1.5-pro"),
	}

	if raw := os.Getenv("CONTENT_WATCH"); raw != "" {
		watch, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CONTENT_WATCH %q: %w", raw, err)
		}
		cfg.ContentWatch = watch
	}

	switch cfg.ContentSource {
	case ContentSourceEmbedded, ContentSourceDir, ContentSourceStorage:
	case ContentSourcePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("CONTENT_SOURCE=postgres requires DATABASE_URL")
		}
	default:
		return nil, fmt.Errorf("unknown CONTENT_SOURCE: %s", cfg.ContentSource)
	}

	if cfg.ContentWatch && cfg.ContentSource != ContentSourceDir {
		return nil, fmt.Errorf("CONTENT_WATCH requires CONTENT_SOURCE=dir")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
