package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"bfd-backend/application/widget"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string
	SiteBaseURL   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	EventBusName  string

	// Lambda configuration
	IsLambda bool

	// Mission engine tuning
	MaxSavedMissions  int
	RecentMissionDays int

	// Widget / affiliate identity
	WidgetTRS         string
	WidgetShmarker    string
	WidgetPromoID     string
	WidgetCampaignID  string
	WidgetCurrency    string
	WidgetLocale      string
	WidgetShowHotels  bool
	WidgetPoweredBy   bool
	WidgetReferralURL string

	// Widget load detection
	WidgetPollInterval time.Duration
	WidgetLoadTimeout  time.Duration

	// Sitemap regeneration
	SitemapCronSpec string

	// Logging
	LogLevel string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		SiteBaseURL:   getEnv("SITE_BASE_URL", "https://bigflightdeals.com"),

		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		DynamoDBTable: getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE", "bfd-missions")),
		EventBusName:  getEnv("EVENT_BUS_NAME", "bfd-events"),

		IsLambda: getEnvBool("IS_LAMBDA", false),

		MaxSavedMissions:  getEnvInt("MAX_SAVED_MISSIONS", 3),
		RecentMissionDays: getEnvInt("RECENT_MISSION_DAYS", 7),

		WidgetTRS:         getEnv("TRAVELPAYOUTS_TRS", "387747"),
		WidgetShmarker:    getEnv("TRAVELPAYOUTS_SHMARKER", "605276"),
		WidgetPromoID:     getEnv("TRAVELPAYOUTS_PROMO_ID", "7879"),
		WidgetCampaignID:  getEnv("TRAVELPAYOUTS_CAMPAIGN_ID", "100"),
		WidgetCurrency:    getEnv("WIDGET_CURRENCY", "usd"),
		WidgetLocale:      getEnv("WIDGET_LOCALE", "en"),
		WidgetShowHotels:  getEnvBool("WIDGET_SHOW_HOTELS", true),
		WidgetPoweredBy:   getEnvBool("WIDGET_POWERED_BY", true),
		WidgetReferralURL: getEnv("TRAVELPAYOUTS_REFERRAL_URL", ""),

		WidgetPollInterval: getEnvDuration("WIDGET_POLL_INTERVAL", 500*time.Millisecond),
		WidgetLoadTimeout:  getEnvDuration("WIDGET_LOAD_TIMEOUT", 8*time.Second),

		SitemapCronSpec: getEnv("SITEMAP_CRON", "0 4 * * *"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "bfd-backend"),

		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.DynamoDBTable == "" {
			return fmt.Errorf("DYNAMODB_TABLE is required")
		}
		if c.EventBusName == "" {
			return fmt.Errorf("EVENT_BUS_NAME is required")
		}
	}
	if c.MaxSavedMissions < 1 {
		return fmt.Errorf("MAX_SAVED_MISSIONS must be at least 1")
	}
	if c.RecentMissionDays < 1 {
		return fmt.Errorf("RECENT_MISSION_DAYS must be at least 1")
	}

	return nil
}

// WidgetConfig projects the affiliate identity into the widget bridge's config
func (c *Config) WidgetConfig() widget.Config {
	return widget.Config{
		TRS:         c.WidgetTRS,
		Shmarker:    c.WidgetShmarker,
		PromoID:     c.WidgetPromoID,
		CampaignID:  c.WidgetCampaignID,
		Currency:    c.WidgetCurrency,
		Locale:      c.WidgetLocale,
		ShowHotels:  c.WidgetShowHotels,
		PoweredBy:   c.WidgetPoweredBy,
		ReferralURL: c.WidgetReferralURL,
	}
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
