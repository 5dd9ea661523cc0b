package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Token    TokenConfig
	App      AppConfig
	OAuth    OAuthConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// TokenConfig holds the secrets and lifetimes for the token pair and the
// session cookie. SigningSecret signs access tokens; SessionSecret is a
// separate key for the session token. Both are required at startup.
type TokenConfig struct {
	SigningSecret     string
	SessionSecret     string
	AccessExpiration  string
	RefreshExpiration string
}

// OAuthConfig holds the Google OAuth2 client credentials. The google
// provider is only registered when ClientID is set.
type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	GoogleScopes       []string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

func Load() (*Config, error) {
	// A missing .env is fine; env vars may come from the runtime directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "talentiq"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Token configuration. The secrets intentionally have no defaults.
	config.Token = TokenConfig{
		SigningSecret:     getEnv("JWT_SECRET_KEY", ""),
		SessionSecret:     getEnv("SESSION_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "15m"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	// OAuth configuration
	config.OAuth = OAuthConfig{
		GoogleClientID:     getEnv("CLIENT_ID", ""),
		GoogleClientSecret: getEnv("CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("REDIRECT_URL", ""),
		GoogleScopes:       getEnvSlice("SCOPES", []string{"openid", "email", "profile"}),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Token.SigningSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Token.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET_KEY is required")
	}
	if c.Token.SigningSecret == c.Token.SessionSecret {
		return fmt.Errorf("JWT_SECRET_KEY and SESSION_SECRET_KEY must differ")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return fallback
}
