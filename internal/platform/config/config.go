package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	DBDriver       string
	DatabaseURL    string
	SQLitePath     string
	DBMaxConns     int32
	Port           string
	IsProduction   bool
	LogLevel       slog.Level
	SeedSampleData bool

	AuditDefaultLimit int
	AuditMaxLimit     int

	RateLimit          string
	CORSAllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", "bank.db")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_SAMPLE_DATA", false)
	v.SetDefault("AUDIT_DEFAULT_LIMIT", 50)
	v.SetDefault("AUDIT_MAX_LIMIT", 500)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Values bound on the global viper instance (e.g. CLI flags) take precedence.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(viper.GetViper())
}

// LoadConfigFrom reads configuration from the given viper instance.
func LoadConfigFrom(v *viper.Viper) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		DBDriver:       strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		DBMaxConns:     v.GetInt32("DB_MAX_CONNS"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		SeedSampleData: v.GetBool("SEED_SAMPLE_DATA"),
		RateLimit:      v.GetString("RATE_LIMIT"),
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set when DB_DRIVER is %s", DriverSQLite)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER '%s' (expected %s or %s)", cfg.DBDriver, DriverPostgres, DriverSQLite)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.DBMaxConns <= 0 {
		cfg.DBMaxConns = 10
		log.Printf("Warning: Invalid DB_MAX_CONNS. Defaulting to %d\n", cfg.DBMaxConns)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		log.Printf("Warning: Invalid LOG_LEVEL ('%s'). Defaulting to info.\n", v.GetString("LOG_LEVEL"))
		cfg.LogLevel = slog.LevelInfo
	}

	cfg.AuditDefaultLimit = v.GetInt("AUDIT_DEFAULT_LIMIT")
	cfg.AuditMaxLimit = v.GetInt("AUDIT_MAX_LIMIT")
	if cfg.AuditMaxLimit <= 0 {
		cfg.AuditMaxLimit = 500
		log.Printf("Warning: Invalid AUDIT_MAX_LIMIT. Defaulting to %d\n", cfg.AuditMaxLimit)
	}
	if cfg.AuditDefaultLimit <= 0 || cfg.AuditDefaultLimit > cfg.AuditMaxLimit {
		cfg.AuditDefaultLimit = min(50, cfg.AuditMaxLimit)
		log.Printf("Warning: Invalid AUDIT_DEFAULT_LIMIT. Defaulting to %d\n", cfg.AuditDefaultLimit)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
