package videostore

import (
	"errors"
	"fmt"
	"time"

	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/env"
)

// Config holds object-storage configuration for practice videos
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
	Enabled         bool
	URLExpiry       time.Duration
}

// LoadConfig loads video storage configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "ap-southeast-1"),
		BucketName:      env.GetEnv("S3_BUCKET_NAME", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		Enabled:         env.GetEnv("VIDEO_STORAGE_ENABLED", "false") == "true",
		URLExpiry:       15 * time.Minute,
	}

	if v := env.GetEnv("VIDEO_URL_EXPIRY_MINUTES", ""); v != "" {
		var minutes int
		if _, err := fmt.Sscanf(v, "%d", &minutes); err == nil && minutes > 0 {
			config.URLExpiry = time.Duration(minutes) * time.Minute
		}
	}

	// Validate required fields if video storage is enabled
	if config.Enabled {
		if config.AccessKeyID == "" {
			return nil, errors.New("S3_ACCESS_KEY_ID is required when video storage is enabled")
		}
		if config.SecretAccessKey == "" {
			return nil, errors.New("S3_SECRET_ACCESS_KEY is required when video storage is enabled")
		}
		if config.BucketName == "" {
			return nil, errors.New("S3_BUCKET_NAME is required when video storage is enabled")
		}
	}

	return config, nil
}

// IsEnabled returns true if video storage is enabled
func (c *Config) IsEnabled() bool {
	return c.Enabled
}

// GetObjectKey generates a standardized object key for a practice video.
// Format: videos/<courseID>/YYYY/MM/<name>
func (c *Config) GetObjectKey(courseID uint, year int, month int, name string) string {
	return fmt.Sprintf("videos/%d/%04d/%02d/%s", courseID, year, month, name)
}
