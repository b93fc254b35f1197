package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port         string
	Env          string
	LogLevel     string
	SiteURL      string
	DatabasePath string
	AdminToken   string
	ImagesDir    string
	TemplateDir  string
	TokensFile   string
	SMTP         SMTPConfig
}

// SMTPConfig holds the contact form mail settings
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string
}

// EnvFiles are read in order; values already in the environment win.
var EnvFiles = []string{".env.local", ".env"}

// Load reads the env files that exist and builds a Config from the
// environment. Missing env files are not an error.
func Load() (*Config, error) {
	for _, f := range EnvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	cfg := &Config{
		Port:         getenv("PORT", "8080"),
		Env:          strings.ToLower(getenv("APP_ENV", "development")),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		SiteURL:      strings.TrimRight(getenv("SITE_URL", "http://localhost:8080"), "/"),
		DatabasePath: getenv("DATABASE_PATH", "folio.db"),
		AdminToken:   os.Getenv("ADMIN_TOKEN"),
		ImagesDir:    getenv("IMAGES_DIR", "public/images"),
		TemplateDir:  os.Getenv("TEMPLATE_DIR"),
		TokensFile:   os.Getenv("TOKENS_FILE"),
		SMTP: SMTPConfig{
			Host:     getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getenv("SMTP_PORT", "587"),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			To:       os.Getenv("CONTACT_EMAIL"),
		},
	}
	return cfg
}

// IsProduction reports whether the site runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
