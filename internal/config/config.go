package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Client   ClientConfig
	Admin    AdminConfig
}

// ServerConfig holds dev backend server configuration
type ServerConfig struct {
	Port      string
	Env       string
	UploadDir string
}

// DatabaseConfig holds database configuration. Driver is "sqlite" (default,
// file-backed) or "postgres".
type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the postgres connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration for the dev backend's issued tokens
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// ClientConfig holds the client core configuration
type ClientConfig struct {
	BaseURL       string
	Timeout       time.Duration
	TokenStore    string // "file" or "redis"
	TokenPath     string
	EncryptionKey string // hex, 32 bytes; encrypts the token at rest in redis
	Language      string
}

// AdminConfig holds the dev backend's single admin credential
type AdminConfig struct {
	Email        string
	Password     string // dev fallback, hashed at startup when PasswordHash is unset
	PasswordHash string // bcrypt
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      getEnv("SERVER_PORT", "5000"),
			Env:       getEnv("SERVER_ENV", "development"),
			UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "kalasangha.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "kalasangha"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-this-in-production"),
			Expiry: getEnvAsDuration("JWT_EXPIRY", 2*time.Hour),
		},
		Client: ClientConfig{
			BaseURL:       getEnv("CLUB_API_BASE_URL", "http://localhost:5000"),
			Timeout:       getEnvAsDuration("CLUB_HTTP_TIMEOUT", 15*time.Second),
			TokenStore:    getEnv("CLUB_TOKEN_STORE", "file"),
			TokenPath:     getEnv("CLUB_TOKEN_PATH", ""),
			EncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"),
			Language:      getEnv("CLUB_LANGUAGE", "en"),
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", "admin@kalasangha.club"),
			Password:     getEnv("ADMIN_PASSWORD", "admin"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
