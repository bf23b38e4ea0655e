package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string `mapstructure:"FRONTEND_BASE_URL"`

	// SyncFreshnessWindow bounds how long after creation a listed voucher is
	// recomputed from its linked expenses for display.
	SyncFreshnessWindow time.Duration

	// OpeningFloat is the petty-cash float the summary measures spend against.
	OpeningFloat decimal.Decimal

	// PreparedByPlaceholder is stamped on vouchers when the preparer's display
	// name cannot be resolved.
	PreparedByPlaceholder string

	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "voucher-backend")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("SYNC_FRESHNESS_WINDOW", "36h")
	viper.SetDefault("OPENING_FLOAT", "0")
	viper.SetDefault("PREPARED_BY_PLACEHOLDER", "Finance Officer")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
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

	jwtIssuer := viper.GetString("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "voucher-backend"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", jwtIssuer)
	}

	syncWindowStr := viper.GetString("SYNC_FRESHNESS_WINDOW")
	syncWindow, err := time.ParseDuration(syncWindowStr)
	if err != nil {
		syncWindow = 36 * time.Hour
		if syncWindowStr != "" {
			log.Printf("Warning: Invalid value for SYNC_FRESHNESS_WINDOW ('%s'). Defaulting to %s.\n", syncWindowStr, syncWindow.String())
		}
	}

	openingFloatStr := viper.GetString("OPENING_FLOAT")
	openingFloat, err := decimal.NewFromString(openingFloatStr)
	if err != nil {
		openingFloat = decimal.Zero
		if openingFloatStr != "" {
			log.Printf("Warning: Invalid value for OPENING_FLOAT ('%s'). Defaulting to 0.\n", openingFloatStr)
		}
	}

	preparedByPlaceholder := viper.GetString("PREPARED_BY_PLACEHOLDER")
	if preparedByPlaceholder == "" {
		preparedByPlaceholder = "Finance Officer"
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = jwtIssuer
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.SyncFreshnessWindow = syncWindow
	cfg.OpeningFloat = openingFloat
	cfg.PreparedByPlaceholder = preparedByPlaceholder
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
