package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// JWT Configuration
	JWTSecret            string
	JWTIssuer            string
	JWTAudience          string
	JWTExpirationMinutes int
	// OpenAI Configuration
	OpenAIAPIKey         string
	OpenAIModel          string
	OpenAITimeoutSeconds int
	// File Storage Configuration
	CvStoragePath string
	// CORS Configuration
	CORSAllowedOrigins []string
}

// LoadConfig reads configuration once at process start. A missing required
// value is a startup error, never a per-request one.
func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		DBUrl:                getEnv("DATABASE_URL", ""),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		JWTIssuer:            getEnv("JWT_ISSUER", ""),
		JWTAudience:          getEnv("JWT_AUDIENCE", ""),
		JWTExpirationMinutes: getEnvInt("JWT_EXPIRATION_MINUTES", 1440), // 24h
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeoutSeconds: getEnvInt("OPENAI_TIMEOUT_SECONDS", 120),
		CvStoragePath:        getEnv("CV_STORAGE_PATH", ""),
		CORSAllowedOrigins:   splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	required := map[string]string{
		"DATABASE_URL":    cfg.DBUrl,
		"JWT_SECRET":      cfg.JWTSecret,
		"JWT_ISSUER":      cfg.JWTIssuer,
		"JWT_AUDIENCE":    cfg.JWTAudience,
		"OPENAI_API_KEY":  cfg.OpenAIAPIKey,
		"CV_STORAGE_PATH": cfg.CvStoragePath,
	}
	for key, value := range required {
		if value == "" {
			return nil, fmt.Errorf("required configuration %s is not set", key)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
