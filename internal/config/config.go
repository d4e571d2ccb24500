package config

import (
	"os"
	"strconv"
	"time"

	"innkeeper/internal/cache"
	"innkeeper/internal/database"
	"innkeeper/internal/external"
	"innkeeper/internal/messaging"
	"innkeeper/internal/search"
)

// Config holds the full application configuration
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	// Business settings
	ReservationTTL     time.Duration
	HousekeepingWindow time.Duration
	ReportTimezone     string

	Database database.Config
	NATS     messaging.Config
	Cache    cache.Config
	Search   search.Config
	Paystack external.PaystackConfig
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		ReservationTTL:     time.Duration(getEnvInt("RESERVATION_TTL_MIN", 30)) * time.Minute,
		HousekeepingWindow: time.Duration(getEnvInt("HOUSEKEEPING_WINDOW_HOURS", 4)) * time.Hour,
		ReportTimezone:     getEnv("REPORT_TIMEZONE", "UTC"),

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "innkeeper"),
			Password:           getEnv("DB_PASSWORD", "innkeeper123"),
			DBName:             getEnv("DB_NAME", "innkeeper"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 100),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "innkeeper"),
			ClientID:  getEnv("NATS_CLIENT_ID", "innkeeper-api"),
		},

		Cache: cache.Config{
			Addr:     getEnv("VALKEY_ADDR", "localhost:6379"),
			Password: getEnv("VALKEY_PASSWORD", ""),
			DB:       getEnvInt("VALKEY_DB", 0),
		},

		Search: search.Config{
			URL:        getEnv("ELASTICSEARCH_URL", "http://localhost:9200"),
			Username:   getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:   getEnv("ELASTICSEARCH_PASSWORD", ""),
			Index:      getEnv("ELASTICSEARCH_INDEX", "bookings"),
			MaxRetries: getEnvInt("ELASTICSEARCH_MAX_RETRIES", 3),
		},

		Paystack: external.PaystackConfig{
			BaseURL:     getEnv("PAYSTACK_URL", "https://api.paystack.co"),
			SecretKey:   getEnv("PAYSTACK_SECRET_KEY", ""),
			CallbackURL: getEnv("PAYSTACK_CALLBACK_URL", ""),
			Timeout:     time.Duration(getEnvInt("PAYSTACK_TIMEOUT_SEC", 30)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
