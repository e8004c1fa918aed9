package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"nearmarket/utils"
)

// Config carries all environment-driven settings for the server.
type Config struct {
	Port string

	// Postgres. Empty DBHost selects the in-memory repository (dev/test mode).
	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	// Optional Redis cache for resolved location fixes.
	RedisAddr     string
	RedisPassword string

	JWTSecret string

	// S3 storage for the avatars/listings buckets. Empty region selects the
	// in-memory store.
	S3Region      string
	AvatarBucket  string
	ListingBucket string
	DefaultAvatar string
	GeocoderURL   string
}

// Load reads configuration from the environment, sourcing a local .env file
// first when present.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		utils.Warn("config: could not load .env file", map[string]any{"error": err.Error()})
	}

	return Config{
		Port:          envOr("PORT", "8080"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        envOr("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBName:        envOr("DB_NAME", "nearmarket"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     envOr("JWT_SECRET", "dev-only-secret"),
		S3Region:      os.Getenv("S3_REGION"),
		AvatarBucket:  envOr("S3_AVATAR_BUCKET", "avatars"),
		ListingBucket: envOr("S3_LISTING_BUCKET", "listings"),
		DefaultAvatar: envOr("DEFAULT_AVATAR_URL", "https://static.nearmarket.app/default-avatar.png"),
		GeocoderURL:   envOr("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
	}
}

// DSN builds the Postgres connection string from the DB_* settings.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort)
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
