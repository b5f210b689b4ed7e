package config

import (
	"os"
	"strings"
	"time"
)

// Backend selects which key-value store implementation persists collections.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	Backend       Backend
	RedisURL      string
	PostgresDSN   string
	JWTSigningKey string
	TokenTTL      time.Duration
	Seed          bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("VENDORTRACK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	backend := Backend(strings.ToLower(os.Getenv("VENDORTRACK_BACKEND")))
	switch backend {
	case BackendRedis, BackendPostgres:
	default:
		backend = BackendMemory
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:          addr,
		Backend:       backend,
		RedisURL:      os.Getenv("VENDORTRACK_REDIS_URL"),
		PostgresDSN:   os.Getenv("VENDORTRACK_POSTGRES_DSN"),
		JWTSigningKey: jwtSigningKey,
		TokenTTL:      12 * time.Hour,
		Seed:          os.Getenv("VENDORTRACK_SKIP_SEED") != "true",
	}
}
