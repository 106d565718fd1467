package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds the process-wide configuration, loaded once at startup and
// injected into the components that need it.
type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	CookieName  string
	JWTSecret   string
	JWTExpiry   time.Duration
	BcryptCost  int
}

var (
	ErrSecretRequired = errors.New("JWT_SECRET is not set")
	ErrExpiryRequired = errors.New("JWT_EXPIRES_IN is not set")
	ErrCostRequired   = errors.New("BCRYPT_COST is not set")
)

// Load reads configuration from the environment. JWT_SECRET, JWT_EXPIRES_IN
// (hours) and BCRYPT_COST are mandatory; startup fails when they are missing
// or zero.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/eduliv?parseTime=true"),
		CookieName:  getEnv("TOKEN_COOKIE_NAME", "_edu_token"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrSecretRequired
	}

	hours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRES_IN"))
	if hours <= 0 {
		return Config{}, ErrExpiryRequired
	}
	cfg.JWTExpiry = time.Duration(hours) * time.Hour

	cost, _ := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	if cost <= 0 {
		return Config{}, ErrCostRequired
	}
	cfg.BcryptCost = cost

	return cfg, nil
}

// IsProduction reports whether the process runs in production mode. It drives
// the Secure attribute on the session cookie.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
