package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	CORS   CORSConfig
	Email  EmailConfig
	S3     S3Config
	Google GoogleConfig
	Import ImportConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// S3Config holds poster storage settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// GoogleConfig holds Google sign-in settings.
type GoogleConfig struct {
	ClientID string `mapstructure:"client_id"`
}

// ImportConfig holds bulk import limits.
type ImportConfig struct {
	MaxRows       int   `mapstructure:"max_rows"`
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the REELSHELF_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("REELSHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "reelshelf")
	v.SetDefault("db.password", "reelshelf_secret")
	v.SetDefault("db.name", "reelshelf_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "reelshelf")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@reelshelf.app")
	v.SetDefault("email.from_name", "Reelshelf")
	v.SetDefault("email.frontend_url", "http://localhost:5173")

	// S3 defaults (posters)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "reelshelf-posters")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 5)
	v.SetDefault("s3.presign_expiry", 3600)

	// Google sign-in defaults
	v.SetDefault("google.client_id", "")

	// Import defaults
	v.SetDefault("import.max_rows", 1000)
	v.SetDefault("import.max_file_size_mb", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "REELSHELF_SERVER_PORT",
		"server.read_timeout":  "REELSHELF_SERVER_READ_TIMEOUT",
		"server.write_timeout": "REELSHELF_SERVER_WRITE_TIMEOUT",
		"server.environment":   "REELSHELF_SERVER_ENVIRONMENT",

		"db.host":     "REELSHELF_DB_HOST",
		"db.port":     "REELSHELF_DB_PORT",
		"db.user":     "REELSHELF_DB_USER",
		"db.password": "REELSHELF_DB_PASSWORD",
		"db.name":     "REELSHELF_DB_NAME",
		"db.sslmode":  "REELSHELF_DB_SSLMODE",
		"db.max_open": "REELSHELF_DB_MAX_OPEN",
		"db.max_idle": "REELSHELF_DB_MAX_IDLE",

		"jwt.secret":         "REELSHELF_JWT_SECRET",
		"jwt.access_expiry":  "REELSHELF_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry": "REELSHELF_JWT_REFRESH_EXPIRY",
		"jwt.issuer":         "REELSHELF_JWT_ISSUER",

		"cors.allowed_origins": "REELSHELF_CORS_ALLOWED_ORIGINS",

		"email.provider":     "REELSHELF_EMAIL_PROVIDER",
		"email.region":       "REELSHELF_EMAIL_REGION",
		"email.from_address": "REELSHELF_EMAIL_FROM_ADDRESS",
		"email.from_name":    "REELSHELF_EMAIL_FROM_NAME",
		"email.frontend_url": "REELSHELF_EMAIL_FRONTEND_URL",

		"s3.region":           "REELSHELF_S3_REGION",
		"s3.bucket":           "REELSHELF_S3_BUCKET",
		"s3.endpoint":         "REELSHELF_S3_ENDPOINT",
		"s3.access_key":       "REELSHELF_S3_ACCESS_KEY",
		"s3.secret_key":       "REELSHELF_S3_SECRET_KEY",
		"s3.max_file_size_mb": "REELSHELF_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":   "REELSHELF_S3_PRESIGN_EXPIRY",

		"google.client_id": "REELSHELF_GOOGLE_CLIENT_ID",

		"import.max_rows":         "REELSHELF_IMPORT_MAX_ROWS",
		"import.max_file_size_mb": "REELSHELF_IMPORT_MAX_FILE_SIZE_MB",

		"log.level":  "REELSHELF_LOG_LEVEL",
		"log.format": "REELSHELF_LOG_FORMAT",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Comma-separated origins arrive as a single string through env vars
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}

	if cfg.Server.Environment == "production" && cfg.JWT.Secret == "change-me-in-production" {
		fmt.Fprintln(os.Stderr, "WARNING: default JWT secret in production")
	}

	return &cfg, nil
}
