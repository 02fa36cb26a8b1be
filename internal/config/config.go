package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	Debug             bool
	DatabaseURL       string
	MailgunAPIKey     string
	MailgunDomain     string
	MailgunBaseURL    string
	MailgunSender     string
	AdminEmail        string
	JWTSecret         string
	AllowedOrigins    string
	ContactRateLimit  int
	ContactRateWindow time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// EmailConfigured reports whether the Mailgun credentials required for
// outbound mail are both present.
func (c Config) EmailConfigured() bool {
	return c.MailgunAPIKey != "" && c.MailgunDomain != ""
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ZITITEX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Zititex API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.debug", false)
	v.SetDefault("mailgun.sender", "Zititex <noreply@zititex.com>")
	v.SetDefault("cors.origins", "*")
	v.SetDefault("contact.rate_limit", 10)
	v.SetDefault("contact.rate_window", "1m")

	windowString := v.GetString("contact.rate_window")
	if windowString == "" {
		windowString = "1m"
	}

	window, err := time.ParseDuration(windowString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid contact rate window: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		Debug:             v.GetBool("app.debug"),
		DatabaseURL:       v.GetString("database.url"),
		MailgunAPIKey:     v.GetString("mailgun.api_key"),
		MailgunDomain:     v.GetString("mailgun.domain"),
		MailgunBaseURL:    v.GetString("mailgun.base_url"),
		MailgunSender:     v.GetString("mailgun.sender"),
		AdminEmail:        v.GetString("admin_email"),
		JWTSecret:         v.GetString("jwt.secret"),
		AllowedOrigins:    v.GetString("cors.origins"),
		ContactRateLimit:  v.GetInt("contact.rate_limit"),
		ContactRateWindow: window,
	}

	if cfg.ContactRateLimit <= 0 {
		cfg.ContactRateLimit = 10
	}

	return cfg, nil
}
