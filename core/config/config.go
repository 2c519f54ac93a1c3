package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"taskletix.app/intake/core/db"
)

// DefaultAdminPassword is only meant for local development.
const DefaultAdminPassword = "admin123"

type Config struct {
	OTel          OTelConfig
	Notifications NotificationConfig
	CORS          CORSConfig
	Env           string
	Port          string
	AdminPassword string
	DB            db.Config
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// NotificationConfig controls the optional Redis stream that receives a
// message for every saved submission, and the worker that drains it.
type NotificationConfig struct {
	RedisURL    string
	Stream      string
	DLQStream   string
	Group       string
	Consumer    string
	WebhookURL  string
	MaxAttempts int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables.
// In development, a .env file in the working directory is loaded first.
func Load() (Config, error) {
	if getEnv("TASKLETIX_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	dsn, err := databaseURL()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Env:           getEnv("TASKLETIX_ENV", "development"),
		Port:          getEnv("PORT", "5000"),
		AdminPassword: getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		DB: db.Config{
			DSN:      dsn,
			MaxConns: getEnvInt32("DB_MAX_CONNS", 5),
			MinConns: getEnvInt32("DB_MIN_CONNS", 1),
		},
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "taskletix-intake"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		Notifications: NotificationConfig{
			RedisURL:    getEnv("REDIS_URL", ""),
			Stream:      getEnv("SUBMISSION_STREAM", "contact_submissions"),
			DLQStream:   getEnv("SUBMISSION_DLQ_STREAM", "contact_submissions_dlq"),
			Group:       getEnv("NOTIFIER_GROUP", "intake-notifier"),
			Consumer:    getEnv("NOTIFIER_CONSUMER", hostname()),
			WebhookURL:  getEnv("NOTIFY_WEBHOOK_URL", ""),
			MaxAttempts: int(getEnvInt32("NOTIFY_MAX_ATTEMPTS", 3)),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}

	if strings.TrimSpace(cfg.AdminPassword) == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD must not be empty")
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// UsesDefaultAdminPassword reports whether the shared secret was left at its
// development default.
func (c Config) UsesDefaultAdminPassword() bool {
	return c.AdminPassword == DefaultAdminPassword
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c NotificationConfig) Enabled() bool {
	return c.RedisURL != ""
}

func (c CORSConfig) AllowAll() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// databaseURL prefers DATABASE_URL and otherwise assembles a DSN from the
// discrete DB_* variables.
func databaseURL() (string, error) {
	if dsn := getEnv("DATABASE_URL", ""); dsn != "" {
		return dsn, nil
	}

	port := getEnv("DB_PORT", "5432")
	if _, err := strconv.Atoi(port); err != nil {
		return "", fmt.Errorf("DB_PORT must be numeric, got %q", port)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(getEnv("DB_USER", "postgres"), getEnv("DB_PASSWORD", "")),
		Host:     net.JoinHostPort(getEnv("DB_HOST", "127.0.0.1"), port),
		Path:     "/" + getEnv("DB_NAME", "taskletix_db"),
		RawQuery: "sslmode=" + getEnv("DB_SSLMODE", "disable"),
	}
	return u.String(), nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt32(key string, fallback int32) int32 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(i)
		}
	}
	return fallback
}

func hostname() string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}
	return "notifier"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
