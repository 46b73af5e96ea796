package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	LogLevel    string
	LogEncoding string

	// Bridge backend: "memory" (default) or "redis".
	BridgeBackend string
	BridgeTTL     time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads .env (if present) and builds the configuration from the
// environment. Missing variables fall back to development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogEncoding:   getEnv("LOG_ENCODING", "json"),
		BridgeBackend: getEnv("BRIDGE_BACKEND", "memory"),
		BridgeTTL:     getEnvDuration("BRIDGE_TTL", time.Hour),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
