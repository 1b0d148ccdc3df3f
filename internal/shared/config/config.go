package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	DatabaseURL     string

	// Corpus settings.
	CorpusSource  string // memory | postgres | feed
	CorpusFeedURL string
	CorpusTimeout time.Duration
	SearchLimit   int

	// Session lifecycle.
	SessionTTL    time.Duration
	SessionCap    int
	SweepInterval time.Duration

	// Resume parsing collaborator.
	ParserURL     string
	ParserTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")
	source := normalizeCorpusSource(getEnv("CORPUS_SOURCE", "memory"))

	if source == "postgres" && dbURL == "" {
		log.Printf("DATABASE_URL is required when CORPUS_SOURCE=postgres")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		Env:             env,
		DatabaseURL:     dbURL,
		CorpusSource:    source,
		CorpusFeedURL:   getEnv("CORPUS_FEED_URL", ""),
		CorpusTimeout:   getEnvDuration("CORPUS_TIMEOUT_MS", 10*time.Second, time.Millisecond),
		SearchLimit:     getEnvInt("SEARCH_LIMIT", 8),
		SessionTTL:      getEnvDuration("SESSION_TTL_MIN", 30*time.Minute, time.Minute),
		SessionCap:      getEnvInt("SESSION_CAP", 1000),
		SweepInterval:   getEnvDuration("SWEEP_INTERVAL_MIN", time.Minute, time.Minute),
		ParserURL:       getEnv("PARSER_URL", ""),
		ParserTimeout:   getEnvDuration("PARSER_TIMEOUT_MS", 30*time.Second, time.Millisecond),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		log.Printf("ignoring invalid %s=%q", key, raw)
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration, unit time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		log.Printf("ignoring invalid %s=%q", key, raw)
		return def
	}
	return time.Duration(n) * unit
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

func normalizeCorpusSource(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "pg":
		return "postgres"
	case "feed":
		return "feed"
	default:
		return "memory"
	}
}
