package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	// Session store
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	// AI enhancement upstream
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	GeminiAPIURL   string `mapstructure:"GEMINI_API_URL"`
	EnhanceTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "3001")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	viper.SetDefault("SESSION_TTL", "12h")
	viper.SetDefault("SESSION_SWEEP_INTERVAL", "5m")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent")
	viper.SetDefault("ENHANCE_TIMEOUT", "30s")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.SessionTTL = parseDurationOr("SESSION_TTL", 12*time.Hour)
	cfg.SessionSweepInterval = parseDurationOr("SESSION_SWEEP_INTERVAL", 5*time.Minute)
	cfg.EnhanceTimeout = parseDurationOr("ENHANCE_TIMEOUT", 30*time.Second)

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	cfg.GeminiAPIURL = viper.GetString("GEMINI_API_URL")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Feedback enhancement will fall back to the original text.")
	}

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
