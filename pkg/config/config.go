package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Messages  MessagesConfig
}

type ServerConfig struct {
	Host string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Type string // "memory", "sqlite" or "postgres"
	DSN  string
	Path string // For SQLite: file path
}

type SessionConfig struct {
	Secret string
	MaxAge time.Duration
}

type CacheConfig struct {
	MaxEntries int
}

type RateLimitConfig struct {
	MaxRequests   int
	Window        time.Duration
	LoginMax      int
	LoginBlockFor time.Duration
}

type MessagesConfig struct {
	Path string // optional YAML file overriding the built-in texts
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dbType := getEnv("DB_TYPE", "sqlite") // Default to SQLite for development
	dsn, dbPath := buildDSN(dbType)

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Type: dbType,
			DSN:  dsn,
			Path: dbPath,
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-prod"),
			MaxAge: getDuration("SESSION_MAX_AGE", 7*24*time.Hour),
		},
		Cache: CacheConfig{
			MaxEntries: getInt("CACHE_MAX_ENTRIES", 100),
		},
		RateLimit: RateLimitConfig{
			MaxRequests:   getInt("RATE_LIMIT_MAX_REQUESTS", 30),
			Window:        getDuration("RATE_LIMIT_WINDOW", time.Minute),
			LoginMax:      getInt("LOGIN_RATE_LIMIT_MAX_ATTEMPTS", 5),
			LoginBlockFor: getDuration("LOGIN_RATE_LIMIT_BLOCK", 15*time.Minute),
		},
		Messages: MessagesConfig{
			Path: getEnv("MESSAGES_PATH", ""),
		},
	}, nil
}

func buildDSN(dbType string) (string, string) {
	if dbType == "postgres" {
		// PostgreSQL configuration
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbUser := getEnv("DB_USER", "postgres")
		dbPassword := getEnv("DB_PASSWORD", "postgres")
		dbName := getEnv("DB_NAME", "burcum")
		sslMode := getEnv("DB_SSLMODE", "disable")

		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			dbHost, dbPort, dbUser, dbPassword, dbName, sslMode,
		)
		return dsn, ""
	}

	if dbType == "memory" {
		// No durable store; users and sessions live in process memory
		return "", ""
	}

	// SQLite configuration (default for development)
	dbPath := getEnv("SQLITE_PATH", "./data/burcum.db")
	dsn := dbPath + "?mode=rwc&cache=shared&timeout=5000"
	return dsn, dbPath
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
