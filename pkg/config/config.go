package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort int
	HTTPPort int

	// MetricsPort serves /metrics for the api binary; the gateway exposes
	// metrics on its HTTP port.
	MetricsPort int

	// APIAddr is the gRPC target the gateway dials.
	APIAddr string

	DB Database

	KafkaBrokers string
	KafkaTopic   string

	Admin Admin

	SessionTTL      time.Duration
	SessionCapacity int
	AllowedOrigin   string
	CookieSecure    bool
}

type Database struct {
	Driver string // postgres | sqlite
	DSN    string

	Host string
	Port int
	User string
	Pass string
	Name string
}

type Admin struct {
	Username     string
	Email        string
	Password     string
	PasswordHash string
}

func Load() Config {
	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		GRPCPort:    getEnvInt("GRPC_PORT", 8081),
		MetricsPort: getEnvInt("METRICS_PORT", 9091),
		APIAddr:     getEnv("API_ADDR", "localhost:8081"),
		DB: Database{
			Driver: getEnv("DB_DRIVER", "postgres"),
			DSN:    getEnv("DATABASE_URL", ""),
			Host:   getEnv("POSTGRES_HOST", "localhost"),
			Port:   getEnvInt("POSTGRES_PORT", 5432),
			User:   getEnv("POSTGRES_USER", "shopping"),
			Pass:   getEnv("POSTGRES_PASSWORD", "shoppingpassword"),
			Name:   getEnv("POSTGRES_DB", "shopping_db"),
		},
		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_ORDER_TOPIC", "storefront.orders"),
		Admin: Admin{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Email:        getEnv("ADMIN_EMAIL", "admin@unicornkart.com"),
			Password:     getEnv("ADMIN_PASSWORD", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		SessionTTL:      getEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionCapacity: getEnvInt("SESSION_CAPACITY", 10000),
		AllowedOrigin:   getEnv("CORS_ORIGIN", "http://localhost:5173"),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),
	}
}

func (c Config) IsDev() bool {
	return c.AppEnv == "dev" || c.AppEnv == "local"
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
