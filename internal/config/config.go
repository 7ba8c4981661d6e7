package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultJWTDuration = 10 * time.Hour
	defaultBcryptCost  = 12
	defaultServerAddr  = ":8080"

	// HS256 needs a key of at least 256 bits.
	minSecretLength = 32
)

var (
	ErrMissingJWTSecret    = errors.New("no JWT_SECRET provided")
	ErrWeakJWTSecret       = fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLength)
	ErrMissingDatabaseURL  = errors.New("missing DB_CONNECTION_STRING in environment variables")
	ErrInvalidJWTDuration  = errors.New("JWT_TTL is not a valid duration")
	ErrInvalidBcryptCost   = fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
)

// Config holds all process-wide settings. It is loaded once at startup and
// passed through constructors; nothing reads the environment after Load.
type Config struct {
	ServerAddr  string
	DatabaseURL string
	JWTSecret   string
	JWTDuration time.Duration
	BcryptCost  int
}

// Load reads the .env file (if present) and the environment and validates the
// result. The signing secret and the database connection string are required.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	cfg := &Config{
		ServerAddr:  defaultServerAddr,
		JWTDuration: defaultJWTDuration,
		BcryptCost:  defaultBcryptCost,
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}
	if len(secret) < minSecretLength {
		return nil, ErrWeakJWTSecret
	}
	cfg.JWTSecret = secret

	cfg.DatabaseURL = os.Getenv("DB_CONNECTION_STRING")
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.ServerAddr = addr
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		duration, err := time.ParseDuration(ttl)
		if err != nil || duration <= 0 {
			return nil, ErrInvalidJWTDuration
		}
		cfg.JWTDuration = duration
	}

	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		var cost int
		if _, err := fmt.Sscanf(costStr, "%d", &cost); err != nil {
			return nil, ErrInvalidBcryptCost
		}
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, ErrInvalidBcryptCost
		}
		cfg.BcryptCost = cost
	}

	return cfg, nil
}
