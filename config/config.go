// Package config reads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"batas-backend/service"
	"batas-backend/storage"
)

// Config holds all configuration for the server
type Config struct {
	// Server settings
	Port    string
	GinMode string

	// Language model settings
	GeminiAPIKey    string
	PreferredModels []string
	FallbackModels  []string
	Temperature     *float32 // nil keeps the provider default
	OutputLanguage  string

	// Analysis output
	LawyerLimit int
	LawLimit    int // 0 keeps every cited law

	// Reference data
	DatabaseURL       string // empty serves the built-in catalog
	ReferenceCacheTTL time.Duration

	// Attachments
	Storage            storage.StorageConfig
	MaxAttachmentBytes int64
}

// Load creates a Config from environment variables. Malformed values are
// reported rather than silently replaced by defaults.
func Load() (*Config, error) {
	var err error
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "release"),
		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		PreferredModels: getEnvSlice("LLM_PREFERRED_MODELS", service.DefaultPreferredModels),
		FallbackModels:  getEnvSlice("LLM_FALLBACK_MODELS", service.DefaultFallbackModels),
		OutputLanguage:  getEnv("OUTPUT_LANGUAGE", "fil"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Storage: storage.StorageConfig{
			Type:         storage.StorageType(strings.ToLower(getEnv("STORAGE_TYPE", string(storage.StorageTypeNone)))),
			LocalPath:    getEnv("STORAGE_LOCAL_PATH", "./storage/files"),
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     getEnv("AWS_REGION", "us-east-1"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	if cfg.Temperature, err = getEnvFloat32("LLM_TEMPERATURE"); err != nil {
		return nil, err
	}
	if cfg.LawyerLimit, err = getEnvInt("LAWYER_LIMIT", service.DefaultLawyerLimit); err != nil {
		return nil, err
	}
	if cfg.LawLimit, err = getEnvInt("LAW_LIMIT", 0); err != nil {
		return nil, err
	}
	if cfg.ReferenceCacheTTL, err = getEnvDuration("REFERENCE_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	maxBytes, err := getEnvInt("MAX_ATTACHMENT_BYTES", int(service.DefaultMaxAttachmentBytes))
	if err != nil {
		return nil, err
	}
	cfg.MaxAttachmentBytes = int64(maxBytes)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE: %q (want debug, release or test)", c.GinMode)
	}
	if _, err := service.LocaleFor(c.OutputLanguage); err != nil {
		return fmt.Errorf("invalid OUTPUT_LANGUAGE: %w", err)
	}
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		return fmt.Errorf("invalid LLM_TEMPERATURE: %v is outside 0-2", *c.Temperature)
	}
	if c.LawyerLimit < 1 {
		return fmt.Errorf("invalid LAWYER_LIMIT: must be at least 1, got %d", c.LawyerLimit)
	}
	if c.LawLimit < 0 {
		return fmt.Errorf("invalid LAW_LIMIT: must not be negative, got %d", c.LawLimit)
	}
	if c.MaxAttachmentBytes < 1 {
		return fmt.Errorf("invalid MAX_ATTACHMENT_BYTES: must be positive, got %d", c.MaxAttachmentBytes)
	}

	switch c.Storage.Type {
	case storage.StorageTypeNone, storage.StorageTypeLocal:
	case storage.StorageTypeS3:
		if c.Storage.S3Bucket == "" {
			return errors.New("AWS_S3_BUCKET is required when STORAGE_TYPE=s3")
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE: %q (want none, local or s3)", c.Storage.Type)
	}
	return nil
}

// HasDatabase reports whether a Postgres connection is configured
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasProvider reports whether a language model credential is configured
func (c *Config) HasProvider() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}

func getEnvFloat32(key string) (*float32, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	f32 := float32(f)
	return &f32, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %s", key, d)
	}
	return d, nil
}

// getEnvSlice splits a comma-separated list, dropping blanks. An unset or
// all-blank value yields defaultValue.
func getEnvSlice(key string, defaultValue []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaultValue...)
	}
	return out
}
