package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// ReportLocation is the timezone used for all calendar-day bucketing in the
	// dashboard KPIs. "Today" and each operation's timestamp are compared in this
	// location so day-boundary operations land in a single, consistent bucket.
	ReportLocation *time.Location

	// FrontendBaseURL is the dashboard origin allowed by CORS.
	FrontendBaseURL string

	// RecentOperationsLimit is the page size of the dashboard's recent operations table.
	RecentOperationsLimit int

	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "cambio-admin-backend")
	viper.SetDefault("REPORT_TIMEZONE", "America/Argentina/Buenos_Aires")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RECENT_OPERATIONS_LIMIT", 7)
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	tzName := viper.GetString("REPORT_TIMEZONE")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Warning: Invalid REPORT_TIMEZONE ('%s'). Falling back to UTC.\n", tzName)
		loc = time.UTC
	}
	cfg.ReportLocation = loc

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.RecentOperationsLimit = viper.GetInt("RECENT_OPERATIONS_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
