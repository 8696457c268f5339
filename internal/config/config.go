package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// DBDSN vacío => repos en memoria.
	DBDSN string

	// RedisAddr vacío => catálogo sin cache.
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CatalogCacheTTL time.Duration

	// JWTSecret vacío => modo dev con X-Debug-User-ID.
	JWTSecret string
	JWTIssuer string

	// Si no hay JWTSecret pero sí IntrospectURL, el token se valida contra ese servicio.
	IntrospectURL    string
	IntrospectAPIKey string

	RateLimitRPS   float64
	RateLimitBurst int

	SeedDemoUser    string
	ShutdownTimeout time.Duration
}

// Load lee un .env opcional (no pisa variables ya seteadas) y después el entorno.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	cfg := Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		DBDSN:         strings.TrimSpace(os.Getenv("DB_DSN")),
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTIssuer:     strings.TrimSpace(os.Getenv("JWT_ISSUER")),

		IntrospectURL:    strings.TrimSpace(os.Getenv("AUTH_INTROSPECT_URL")),
		IntrospectAPIKey: os.Getenv("AUTH_INTROSPECT_API_KEY"),

		SeedDemoUser: strings.TrimSpace(os.Getenv("SEED_DEMO_USER")),
	}

	var err error
	if cfg.RedisDB, err = getEnvAsInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.CatalogCacheTTL, err = getEnvAsDuration("CATALOG_CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = getEnvAsFloat("RATE_LIMIT_RPS", 20); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getEnvAsInt("RATE_LIMIT_BURST", 40); err != nil {
		return Config{}, err
	}
	// un limiter con rps o burst <= 0 rechaza todo
	if cfg.RateLimitRPS <= 0 {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_RPS must be > 0")
	}
	if cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_BURST must be > 0")
	}
	if cfg.ShutdownTimeout, err = getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Addr para http.Server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func getEnvOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a number: %w", key, err)
	}
	return f, nil
}

func getEnvAsDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration (e.g. 30s): %w", key, err)
	}
	return d, nil
}
