// Package config loads application configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	ServerPort string
	GinMode    string

	MongoURI      string
	MongoDatabase string
	RedisURI      string

	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	// AuthzMode selects the authorization backend: "local" evaluates the
	// built-in role map, "remote" calls an external decision service.
	AuthzMode       string
	AuthzServiceURL string
	AuthzTimeout    time.Duration

	WebhookURL     string
	WebhookSecret  string
	EventQueueSize int
	EventWorkers   int
}

// Load reads configuration from .env file and environment variables.
func Load() *Config {
	// Ignore error if .env doesn't exist - env vars may be set directly
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),

		MongoURI:      getEnvRequired("MONGO_URI"),
		MongoDatabase: getEnvRequired("MONGO_DATABASE"),
		RedisURI:      getEnv("REDIS_URI", "localhost:6379"),

		AccessTokenSecret:  getEnvRequired("ACCESS_TOKEN_SECRET"),
		AccessTokenExpiry:  parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "15m")),
		RefreshTokenExpiry: parseDuration(getEnv("REFRESH_TOKEN_EXPIRY", "720h")),

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:    getEnv("S3_BUCKET", "team-logos"),
		S3UseSSL:    parseBool(getEnv("S3_USE_SSL", "false")),

		AuthzMode:       getEnv("AUTHZ_MODE", "local"),
		AuthzServiceURL: getEnv("AUTHZ_SERVICE_URL", ""),
		AuthzTimeout:    parseDuration(getEnv("AUTHZ_TIMEOUT", "3s")),

		WebhookURL:     getEnv("WEBHOOK_URL", ""),
		WebhookSecret:  getEnv("WEBHOOK_SECRET", ""),
		EventQueueSize: parseInt(getEnv("EVENT_QUEUE_SIZE", "100")),
		EventWorkers:   parseInt(getEnv("EVENT_WORKERS", "2")),
	}

	if cfg.AuthzMode == "remote" && cfg.AuthzServiceURL == "" {
		log.Fatal("AUTHZ_SERVICE_URL is required when AUTHZ_MODE=remote")
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set.
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Fatalf("Invalid boolean format: %s", s)
	}
	return b
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Invalid integer format: %s", s)
	}
	return n
}
