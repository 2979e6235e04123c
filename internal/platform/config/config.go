package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers selectable through STORAGE_DRIVER.
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	LogLevel      string
	StorageDriver string
	DatabaseURL   string
	EnableDBCheck bool
	MigrationsURL string
	SQLitePath    string

	AuthEnabled       bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RateLimit          string   // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string // empty allows all origins outside production
	PosthogAPIKey      string

	NumericPolicy       string // zero | reject
	ClassifierHinglish  bool
	ClassifierRulesFile string
	SnowflakeNode       int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_DRIVER", StorageSQLite)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("SQLITE_PATH", "firm_books.db")
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "firm-books")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("NUMERIC_POLICY", "zero")
	viper.SetDefault("CLASSIFIER_HINGLISH", false)
	viper.SetDefault("CLASSIFIER_RULES_FILE", "")
	viper.SetDefault("SNOWFLAKE_NODE", 1)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))

	cfg.StorageDriver = strings.ToLower(viper.GetString("STORAGE_DRIVER"))
	switch cfg.StorageDriver {
	case StoragePostgres, StorageSQLite, StorageMemory:
	default:
		log.Printf("Warning: unknown STORAGE_DRIVER '%s'. Defaulting to %s.\n", cfg.StorageDriver, StorageSQLite)
		cfg.StorageDriver = StorageSQLite
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.StorageDriver == StoragePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsURL = viper.GetString("MIGRATIONS_PATH")
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")

	cfg.AuthEnabled = viper.GetBool("AUTH_ENABLED")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1 // Default to 1 hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "firm-books"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.NumericPolicy = viper.GetString("NUMERIC_POLICY")
	cfg.ClassifierHinglish = viper.GetBool("CLASSIFIER_HINGLISH")
	cfg.ClassifierRulesFile = viper.GetString("CLASSIFIER_RULES_FILE")
	cfg.SnowflakeNode = viper.GetInt64("SNOWFLAKE_NODE")

	return cfg, nil
}
