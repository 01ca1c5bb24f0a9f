package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the symbol allow-list, and the optional upload audit log.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	ALLOWED_SYMBOLS=btc,doge,eth,ltc,xrp
//	TIME_ZONE=UTC
//	AUDIT_DRIVER=none
//	AUDIT_SQLITE_PATH=./data/audit.db
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Analytics AnalyticsConfig // Symbol allow-list and day-bucketing time zone
	Audit     AuditConfig     // Upload audit log backend selection
	Postgres  PostgresConfig  // PostgreSQL settings (audit driver "postgres" only)
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// AnalyticsConfig holds the fixed symbol allow-list and the process-wide
// time zone used to bucket price points by calendar day.
type AnalyticsConfig struct {
	AllowedSymbols []string       // Lowercased symbols accepted for upload
	TimeZone       string         // IANA zone name (e.g., "UTC", "Europe/Athens")
	Location       *time.Location // Parsed from TimeZone during LoadConfig
}

// AuditConfig selects where upload audit entries are persisted.
//
// Fields:
//   - Driver: "none" (default), "sqlite", or "postgres".
//   - SQLitePath: database file path for the sqlite driver.
type AuditConfig struct {
	Driver     string
	SQLitePath string
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Splits and lowercases the symbol allow-list.
//   - Resolves the configured time zone to a *time.Location.
//   - Constructs the PostgreSQL connection string (DSN).
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing or the time zone is unknown,
//     the app terminates with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("ALLOWED_SYMBOLS", "btc,doge,eth,ltc,xrp")
	viper.SetDefault("TIME_ZONE", "UTC")

	viper.SetDefault("AUDIT_DRIVER", "none")
	viper.SetDefault("AUDIT_SQLITE_PATH", "./data/audit.db")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "cryptopulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Analytics: AnalyticsConfig{
			AllowedSymbols: splitSymbols(viper.GetString("ALLOWED_SYMBOLS")),
			TimeZone:       viper.GetString("TIME_ZONE"),
		},
		Audit: AuditConfig{
			Driver:     strings.ToLower(viper.GetString("AUDIT_DRIVER")),
			SQLitePath: viper.GetString("AUDIT_SQLITE_PATH"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	// Resolve the day-bucketing zone once; every day bucket derives from it.
	loc, err := time.LoadLocation(AppConfig.Analytics.TimeZone)
	if err != nil {
		log.Fatalf("invalid TIME_ZONE %q: %v", AppConfig.Analytics.TimeZone, err)
	}
	AppConfig.Analytics.Location = loc

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

	// Validate critical fields
	validateConfig()
}

// splitSymbols turns a comma-separated allow-list into lowercased entries,
// dropping empties and surrounding whitespace.
func splitSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.ToLower(strings.TrimSpace(p))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if len(AppConfig.Analytics.AllowedSymbols) == 0 {
		missing = append(missing, "ALLOWED_SYMBOLS")
	}
	if AppConfig.Analytics.TimeZone == "" {
		missing = append(missing, "TIME_ZONE")
	}

	switch AppConfig.Audit.Driver {
	case "none", "":
		// no backend, nothing to require
	case "sqlite":
		if AppConfig.Audit.SQLitePath == "" {
			missing = append(missing, "AUDIT_SQLITE_PATH")
		}
	case "postgres":
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
	default:
		log.Fatalf("unknown AUDIT_DRIVER %q (want none, sqlite, or postgres)", AppConfig.Audit.Driver)
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
