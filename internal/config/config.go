package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Shortener ShortenerConfig
	RedisURL  string        // Empty disables the lookup cache
	CacheTTL  time.Duration // How long resolved codes stay in Redis
	BaseURL   string        // Public base URL used for QR codes
	LogLevel  string
	LogFile   string // Optional rotating log file, in addition to stdout
}

type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type ServerConfig struct {
	Port            string
	GinMode         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// ShortenerConfig holds the short code allocation knobs
type ShortenerConfig struct {
	CodeLength  int
	MaxAttempts int
}

// Load reads configuration from the environment (and .env when present)
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", ""),
			Port:         getEnv("DB_PORT", "5432"),
			Name:         getEnv("DB_NAME", ""),
			User:         getEnv("DB_USER", ""),
			Password:     getEnv("DB_PASS", ""),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		},
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			GinMode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Shortener: ShortenerConfig{
			CodeLength:  getEnvInt("SHORT_CODE_LENGTH", 6),
			MaxAttempts: getEnvInt("MAX_ATTEMPTS", 5),
		},
		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getEnvDuration("CACHE_TTL", time.Hour),
		BaseURL:  getEnv("BASE_URL", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings the process cannot run without
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("DB_HOST not set")
	}
	if c.Shortener.CodeLength <= 0 {
		return fmt.Errorf("SHORT_CODE_LENGTH must be positive, got %d", c.Shortener.CodeLength)
	}
	if c.Shortener.MaxAttempts <= 0 {
		return fmt.Errorf("MAX_ATTEMPTS must be positive, got %d", c.Shortener.MaxAttempts)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// DSN builds the lib/pq connection URL, escaping credentials
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	if d.User != "" {
		u.User = url.UserPassword(d.User, d.Password)
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
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

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
