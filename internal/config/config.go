// Package config loads the process-wide configuration once at startup.
// Every environment-dependent behavior (CORS origins, cookie security
// attributes, static serving) reads the same injected Config value.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	DB     DBConfig     `mapstructure:"db"`
	OAuth  OAuthConfig  `mapstructure:"oauth"`
	Sentry SentryConfig `mapstructure:"sentry"`
	Minio  MinioConfig  `mapstructure:"minio"`
}

// AppConfig carries HTTP and session settings.
type AppConfig struct {
	Env            string        `mapstructure:"env"`             // "production" or anything else
	HTTPAddr       string        `mapstructure:"http_addr"`       // listen address
	FrontendURL    string        `mapstructure:"frontend_url"`    // OAuth redirect target
	AllowedOrigins []string      `mapstructure:"allowed_origins"` // credentialed CORS allow-list
	JWTSecret      string        `mapstructure:"jwt_secret"`      // session token signing key
	SessionTTL     time.Duration `mapstructure:"session_ttl"`     // token and cookie lifetime
	StaticDir      string        `mapstructure:"static_dir"`      // built SPA bundle (production only)
}

// DBConfig carries Postgres connection settings.
type DBConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// OAuthConfig carries the Google identity provider settings.
type OAuthConfig struct {
	GoogleClientID     string `mapstructure:"google_client_id"`
	GoogleClientSecret string `mapstructure:"google_client_secret"`
	GoogleCallbackURL  string `mapstructure:"google_callback_url"`
}

// SentryConfig carries error reporting settings.
type SentryConfig struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
}

// MinioConfig carries object storage settings for uploaded profile pictures.
type MinioConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// DSN renders a pgx connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

// IsProduction reports whether the production behavior toggle is on.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Load reads configuration from an optional config file and the environment.
// Environment variables take precedence, with keys like APP_JWT_SECRET and
// DB_PASSWORD mapping onto the nested structure.
func Load(configPath ...string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_addr", ":3000")
	v.SetDefault("app.frontend_url", "http://localhost:5173")
	v.SetDefault("app.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("app.jwt_secret", "dev_secret_change_me")
	v.SetDefault("app.session_ttl", 7*24*time.Hour)
	v.SetDefault("app.static_dir", "frontend/dist")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.database", "clothify")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 25)

	v.SetDefault("oauth.google_callback_url", "http://localhost:3000/api/auth/google/callback")
	v.SetDefault("sentry.environment", "development")

	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "minioadmin")
	v.SetDefault("minio.secret_key", "minioadmin")
	v.SetDefault("minio.bucket", "clothify-avatars")
	v.SetDefault("minio.use_ssl", false)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(configPath) > 0 && configPath[0] != "" {
		v.SetConfigFile(configPath[0])
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
