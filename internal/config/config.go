package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port                    string
	GeminiAPIKey            string        // From GOOGLE_API_KEY or GEMINI_API_KEY, first one present wins
	DatabaseURL             string        // Postgres connection string; empty selects the next backend
	FirebaseProjectID       string        // Enables the Firestore backend when DatabaseURL is empty
	FirebaseCredentialsPath string        // Credentials file (for local development)
	FirebaseCredentialsJSON string        // For Vercel: raw JSON string
	AdminsCollection        string        // Firestore collection for admin records
	ImagesCollection        string        // Firestore collection for community images
	AllowedOrigins          []string
	AdminAPIKeys            []string      // When set, mutating /api/admin routes require X-API-Key
	MaxBodyBytes            int64         // Request body limit; sketch uploads arrive as large data URLs
	AIRequestTimeout        time.Duration // Deadline applied to every Gemini call
	IsVercel                bool          // Detected via VERCEL env var
}

// Load reads configuration from environment variables and .env file.
// It loads the .env file if present, then populates the Config struct.
// Nothing is hard-required: a missing Gemini key disables the AI
// endpoints (they answer 503) and a missing database selects the
// in-memory store.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		GeminiAPIKey:            firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY"),
		DatabaseURL:             getEnv("DATABASE_URL", ""),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		FirebaseCredentialsJSON: getEnv("FIREBASE_CREDENTIALS_JSON", ""),
		AdminsCollection:        getEnv("FIRESTORE_ADMINS_COLLECTION", "admins"),
		ImagesCollection:        getEnv("FIRESTORE_IMAGES_COLLECTION", "community_images"),
		AllowedOrigins:          getList("ALLOWED_ORIGINS", []string{"*"}),
		AdminAPIKeys:            getList("ADMIN_API_KEYS", []string{}),
		MaxBodyBytes:            getInt64Env("MAX_BODY_BYTES", 60<<20),
		AIRequestTimeout:        getDurationEnv("AI_REQUEST_TIMEOUT", 120*time.Second),
		IsVercel:                getEnv("VERCEL", "") != "",
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("no Google API key found in environment, AI features will be disabled")
	}

	return cfg, nil
}

// Validate checks that numeric configuration values are sane.
func (c *Config) Validate() error {
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	if c.AIRequestTimeout <= 0 {
		return fmt.Errorf("AI_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// Retrieves an environment variable or returns a default value if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// Returns the first non-empty value among the given environment variables.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

// Retrieves a duration from environment variable or returns a default value.
// It supports both time.Duration format (e.g., "90s", "2m") and integer seconds.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

// Retrieves a comma-separated list from environment variable or returns a default value.
func getList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// Retrieves an int64 from environment variable or returns a default value.
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
