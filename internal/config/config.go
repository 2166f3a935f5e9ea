package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Adapter     AdapterConfig
}

// AdapterConfig holds the settings captured by the Lambda adapter at
// handler-creation time
type AdapterConfig struct {
	LogEnabled  bool
	Timeout     time.Duration
	BasePath    string
	BinaryTypes []string // nil means the adapter defaults
	CORS        CORSConfig
}

// CORSConfig holds the CORS policy installed around the application
type CORSConfig struct {
	Enabled       bool
	Origin        string
	Methods       []string
	AllowHeaders  []string
	ExposeHeaders []string
	Credentials   bool
	MaxAge        int
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_ENABLED", true)
	viper.SetDefault("TIMEOUT_MS", 30000)
	viper.SetDefault("BASE_PATH", "")
	viper.SetDefault("CORS_ENABLED", false)
	viper.SetDefault("CORS_CREDENTIALS", false)
	viper.SetDefault("CORS_MAX_AGE", 0)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Adapter: AdapterConfig{
			LogEnabled:  viper.GetBool("LOG_ENABLED"),
			Timeout:     time.Duration(viper.GetInt("TIMEOUT_MS")) * time.Millisecond,
			BasePath:    viper.GetString("BASE_PATH"),
			BinaryTypes: splitList(viper.GetString("BINARY_TYPES")),
			CORS: CORSConfig{
				Enabled:       viper.GetBool("CORS_ENABLED"),
				Origin:        viper.GetString("CORS_ORIGIN"),
				Methods:       splitList(viper.GetString("CORS_METHODS")),
				AllowHeaders:  splitList(viper.GetString("CORS_ALLOW_HEADERS")),
				ExposeHeaders: splitList(viper.GetString("CORS_EXPOSE_HEADERS")),
				Credentials:   viper.GetBool("CORS_CREDENTIALS"),
				MaxAge:        viper.GetInt("CORS_MAX_AGE"),
			},
		},
	}

	return config, nil
}

// splitList parses a comma-separated environment value into a slice,
// returning nil for an empty value so defaults apply downstream
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
