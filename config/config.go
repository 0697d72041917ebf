package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: server settings, Postgres connection details, and the upstream
// time-series provider used by the ingestion job.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=finpulse
//	POSTGRES_SSLMODE=disable
//	PROVIDER_API_URL=https://www.alphavantage.co/query?function=TIME_SERIES_DAILY
//	PROVIDER_API_KEY=demo
//	PROVIDER_SYMBOLS=AAPL,IBM
//	PROVIDER_PERIOD_DAYS=14
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Provider ProviderConfig // Upstream time-series provider settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string // computed DSN used by database/sql to connect
}

// ProviderConfig defines the upstream time-series provider the ingestion job
// pulls daily records from.
//
// Fields:
//   - URL: base query URL; symbol and apikey are appended per request.
//   - APIKey: provider API key.
//   - Symbols: symbols to ingest.
//   - PeriodDays: trailing window of days to keep from each response.
type ProviderConfig struct {
	URL        string
	APIKey     string
	Symbols    []string
	PeriodDays int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the application
// instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file or
// directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the app
//     with a descriptive log message. Provider settings are only required in
//     ingest mode and are validated there.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "finpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("PROVIDER_PERIOD_DAYS", 14)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Provider: ProviderConfig{
			URL:        viper.GetString("PROVIDER_API_URL"),
			APIKey:     viper.GetString("PROVIDER_API_KEY"),
			Symbols:    splitSymbols(viper.GetString("PROVIDER_SYMBOLS")),
			PeriodDays: viper.GetInt("PROVIDER_PERIOD_DAYS"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// splitSymbols parses the comma-separated PROVIDER_SYMBOLS value, dropping
// empty entries and surrounding whitespace.
func splitSymbols(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, strings.ToUpper(s))
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing. This avoids unexpected runtime failures
// due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}

// ValidateProvider checks the provider settings required by ingest mode.
// It returns an error instead of exiting so the caller decides how to fail.
func ValidateProvider(cfg ProviderConfig) error {
	var missing []string
	if cfg.URL == "" {
		missing = append(missing, "PROVIDER_API_URL")
	}
	if cfg.APIKey == "" {
		missing = append(missing, "PROVIDER_API_KEY")
	}
	if len(cfg.Symbols) == 0 {
		missing = append(missing, "PROVIDER_SYMBOLS")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if cfg.PeriodDays < 1 {
		return fmt.Errorf("PROVIDER_PERIOD_DAYS must be >= 1, got %d", cfg.PeriodDays)
	}
	return nil
}
