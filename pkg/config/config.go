package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Groq     GroqConfig
	Assembly AssemblyConfig
	Pipeline PipelineConfig
	Storage  StorageConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	MaxUploadMB     int64         `envconfig:"MAX_UPLOAD_MB" default:"50"`
}

// GroqConfig holds the chat/transcription service settings.
// APIKey may be empty; requests that need it fail with a missing-credential error.
type GroqConfig struct {
	APIKey       string        `envconfig:"GROQ_API_KEY"`
	BaseURL      string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	ChatModel    string        `envconfig:"GROQ_CHAT_MODEL" default:"llama-3.3-70b-versatile"`
	WhisperModel string        `envconfig:"GROQ_WHISPER_MODEL" default:"whisper-large-v3"`
	Timeout      time.Duration `envconfig:"GROQ_TIMEOUT" default:"60s"`
}

// AssemblyConfig holds AssemblyAI settings
type AssemblyConfig struct {
	APIKey string `envconfig:"ASSEMBLYAI_API_KEY"`
}

// PipelineConfig holds orchestrator settings
type PipelineConfig struct {
	Transcriber string        `envconfig:"TRANSCRIBER" default:"groq"`
	Timeout     time.Duration `envconfig:"PIPELINE_TIMEOUT" default:"5m"`
}

// StorageConfig holds audio storage configuration
type StorageConfig struct {
	Type            string        `envconfig:"STORAGE_TYPE" default:"local"` // "local" or "minio"
	Dir             string        `envconfig:"STORAGE_DIR" default:"./uploads"`
	Endpoint        string        `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string        `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string        `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string        `envconfig:"STORAGE_BUCKET" default:"meeting-insights"`
	UseSSL          bool          `envconfig:"STORAGE_USE_SSL" default:"false"`
	UploadTTL       time.Duration `envconfig:"UPLOAD_TTL" default:"1h"`
}

// CacheConfig selects the key/value backend
type CacheConfig struct {
	Type string `envconfig:"CACHE_TYPE" default:"memory"` // "memory" or "redis"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level     string `envconfig:"LOG_LEVEL" default:"info"`
	ErrorFile string `envconfig:"LOG_ERROR_FILE" default:"app.log"`
}

// Load loads configuration from .env and environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only
func FromEnv() (*Config, error) {
	config := &Config{}
	sections := []interface{}{
		&config.Server,
		&config.Groq,
		&config.Assembly,
		&config.Pipeline,
		&config.Storage,
		&config.Cache,
		&config.Redis,
		&config.Log,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to process environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch strings.ToLower(c.Pipeline.Transcriber) {
	case "groq", "assemblyai":
	default:
		return fmt.Errorf("TRANSCRIBER must be groq or assemblyai, got %q", c.Pipeline.Transcriber)
	}
	switch strings.ToLower(c.Storage.Type) {
	case "local", "minio":
	default:
		return fmt.Errorf("STORAGE_TYPE must be local or minio, got %q", c.Storage.Type)
	}
	switch strings.ToLower(c.Cache.Type) {
	case "memory", "redis":
	default:
		return fmt.Errorf("CACHE_TYPE must be memory or redis, got %q", c.Cache.Type)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	if c.Pipeline.Timeout <= 0 {
		return fmt.Errorf("PIPELINE_TIMEOUT must be positive")
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// MaxUploadBytes returns the upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB << 20
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Environment, "development")
}
