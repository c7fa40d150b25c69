package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application settings, populated from environment variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Mail     MailConfig
	Admin    AdminConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port      int    `envconfig:"PORT" default:"3000"`       // HTTP listen port
	PublicDir string `envconfig:"PUBLIC_DIR" default:"./public"` // static assets / SPA bundle
	LogMode   string `envconfig:"LOG_MODE" default:"development"`
}

// DatabaseConfig holds the SQLite database location.
type DatabaseConfig struct {
	Path string `envconfig:"DB_PATH" default:"data.sqlite"`
}

// MailConfig holds outbound notification settings. When neither a Resend API
// key nor full SMTP credentials are present, notification runs disabled.
type MailConfig struct {
	SMTPHost     string        `envconfig:"SMTP_HOST"`
	SMTPPort     int           `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string        `envconfig:"SMTP_USER"`
	SMTPPass     string        `envconfig:"SMTP_PASS"`
	ResendAPIKey string        `envconfig:"RESEND_API_KEY"`
	To           string        `envconfig:"CONTACT_TO"`
	From         string        `envconfig:"CONTACT_FROM" default:"Murphy Portfolio <onboarding@resend.dev>"`
	Timeout      time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
}

// AdminConfig holds the shared admin secret. No default on purpose: an unset
// token fails closed and the listing endpoint denies every credential.
type AdminConfig struct {
	Token string `envconfig:"ADMIN_TOKEN"`
}

// Load reads configuration from the environment. A .env file is loaded first
// if present; missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
