package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	HTTP       ServerConfig
	Log        LogConfig
	GoCardless GoCardlessConfig
	Mail       MailConfig
}

type AppConfig struct {
	ServiceName string
}

type ServerConfig struct {
	Host string
	Port string
}

type LogConfig struct {
	Level string
}

type GoCardlessConfig struct {
	AccessToken string
	Environment string
	BaseURL     string
	HTTPTimeout time.Duration
}

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	FromAddress  string
	ToAddress    string
}

// Load reads configuration from the environment. No variable is
// mandatory: an absent GoCardless access token selects mock mode and an
// absent SMTP host selects the log-only mail sender.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "donations-service"),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		GoCardless: GoCardlessConfig{
			AccessToken: getEnv("GOCARDLESS_ACCESS_TOKEN", ""),
			Environment: getEnv("GOCARDLESS_ENVIRONMENT", "sandbox"),
			BaseURL:     getEnv("GOCARDLESS_BASE_URL", ""),
			HTTPTimeout: getSecondsEnv("GOCARDLESS_HTTP_TIMEOUT_SECONDS", 10*time.Second),
		},
		Mail: MailConfig{
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnv("SMTP_PORT", "587"),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			FromAddress:  getEnv("ENQUIRY_FROM_ADDRESS", "website@discoverislam.example"),
			ToAddress:    getEnv("ENQUIRY_TO_ADDRESS", "enquiries@discoverislam.example"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
