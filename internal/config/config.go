package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Simulator SimulatorConfig
	Remote    RemoteConfig
	Session   SessionConfig
	Database  DatabaseConfig
	Backend   BackendConfig
	Seed      SeedConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SimulatorConfig controls the simulated live-price updater.
type SimulatorConfig struct {
	Enabled  bool
	Interval time.Duration
	Tickers  []string
}

// RemoteConfig points at the portfolio persistence backend.
// An empty BaseURL disables remote reconciliation entirely.
type RemoteConfig struct {
	BaseURL string
}

// SessionConfig holds the fernet key used to mint and verify bearer tokens.
type SessionConfig struct {
	FernetKey string
	TTL       time.Duration
}

// DatabaseConfig holds the SQLite path used by the portfolio backend binary.
type DatabaseConfig struct {
	Path string
}

// BackendConfig holds the listen address of the portfolio backend binary.
type BackendConfig struct {
	Port string
	Host string
	Addr string
}

// SeedConfig controls demo data seeding at startup.
type SeedConfig struct {
	DemoTransactions bool
}

// DefaultTickers is the fixed whitelist of symbols eligible for simulated
// price movement.
var DefaultTickers = []string{"AAPL", "RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS"}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	interval, err := time.ParseDuration(getEnv("SIMULATOR_INTERVAL", "3s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SIMULATOR_INTERVAL: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Simulator: SimulatorConfig{
			Enabled:  getEnvBool("SIMULATOR_ENABLED", true),
			Interval: interval,
			Tickers:  splitList(getEnv("SIMULATOR_TICKERS", strings.Join(DefaultTickers, ","))),
		},
		Remote: RemoteConfig{
			BaseURL: getEnv("REMOTE_API_URL", ""),
		},
		Session: SessionConfig{
			FernetKey: getEnv("SESSION_FERNET_KEY", ""),
			TTL:       ttl,
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/wealth_management.db"),
		},
		Backend: BackendConfig{
			Port: getEnv("BACKEND_PORT", "5002"),
			Host: getEnv("BACKEND_HOST", "localhost"),
		},
		Seed: SeedConfig{
			DemoTransactions: getEnvBool("SEED_DEMO_TRANSACTIONS", true),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)
	config.Backend.Addr = fmt.Sprintf("%s:%s", config.Backend.Host, config.Backend.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
