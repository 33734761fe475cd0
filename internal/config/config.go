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
	Queue    QueueConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Storage  StorageConfig
	Cache    CacheConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	Env     string
	BaseURL string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// QueueConfig holds task queue configuration
type QueueConfig struct {
	Name       string
	MaxRetries int
	Workers    int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SMTPConfig holds outbound email configuration
type SMTPConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	SenderName  string
	TemplateDir string
	// ContactInbox receives contact form notifications; empty disables them.
	ContactInbox string
}

// StorageConfig holds file storage configuration
type StorageConfig struct {
	Backend      string // "local" or "oss"
	LocalRoot    string
	LocalBaseURL string
	OSSEndpoint  string
	OSSBucket    string
	OSSKeyID     string
	OSSKeySecret string
	MaxFileSize  int64
}

// CacheConfig holds response cache configuration
type CacheConfig struct {
	Prefix string
	TTL    time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnv("SERVER_PORT", "8080"),
			Env:     getEnv("SERVER_ENV", "development"),
			BaseURL: getEnv("BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "swea"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Queue: QueueConfig{
			Name:       getEnv("QUEUE_NAME", "task_queue"),
			MaxRetries: getEnvAsInt("QUEUE_MAX_RETRIES", 3),
			Workers:    getEnvAsInt("QUEUE_WORKERS", 5),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		SMTP: SMTPConfig{
			Host:         getEnv("SMTP_HOST", "localhost"),
			Port:         getEnvAsInt("SMTP_PORT", 587),
			User:         getEnv("SMTP_USER", ""),
			Password:     getEnv("SMTP_PASS", ""),
			SenderName:   getEnv("SMTP_SENDER_NAME", "SWEA"),
			TemplateDir:  getEnv("EMAIL_TEMPLATE_DIR", "templates/email"),
			ContactInbox: getEnv("CONTACT_INBOX", ""),
		},
		Storage: StorageConfig{
			Backend:      getEnv("STORAGE_BACKEND", "local"),
			LocalRoot:    getEnv("UPLOAD_FOLDER", "uploads"),
			LocalBaseURL: getEnv("UPLOAD_BASE_URL", "/static/uploads"),
			OSSEndpoint:  getEnv("OSS_ENDPOINT", ""),
			OSSBucket:    getEnv("OSS_BUCKET", ""),
			OSSKeyID:     getEnv("OSS_ACCESS_KEY_ID", ""),
			OSSKeySecret: getEnv("OSS_ACCESS_KEY_SECRET", ""),
			MaxFileSize:  getEnvAsInt64("MAX_FILE_SIZE", 10<<20),
		},
		Cache: CacheConfig{
			Prefix: getEnv("CACHE_KEY_PREFIX", "swea"),
			TTL:    getEnvAsDuration("CACHE_TTL", 5*time.Minute),
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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
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
