package config

import (
	"os"
	"strconv"

	"pdf-style-reader/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort  string
	MaxFileSize int64
	LogLevel    string
	SupabaseURL string
	SupabaseKey string
	Bucket      string
	Thresholds  domain.ClassifierThresholds
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:  getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize: getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		SupabaseURL: getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey: getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		Bucket:      getEnvOrDefault("STORAGE_BUCKET", "documents"),
		Thresholds:  classifierThresholdsFromEnv(),
	}
}

// classifierThresholdsFromEnv starts from the calibrated defaults and applies
// any CLASSIFIER_* overrides.
func classifierThresholdsFromEnv() domain.ClassifierThresholds {
	t := domain.DefaultClassifierThresholds()
	t.MinAspect = getEnvFloatOrDefault("CLASSIFIER_MIN_ASPECT", t.MinAspect)
	t.StrokeRatio = getEnvFloatOrDefault("CLASSIFIER_STROKE_RATIO", t.StrokeRatio)
	t.ThinLineMin = getEnvFloatOrDefault("CLASSIFIER_THIN_LINE_MIN", t.ThinLineMin)
	t.ThinLineScale = getEnvFloatOrDefault("CLASSIFIER_THIN_LINE_SCALE", t.ThinLineScale)
	t.SquigglyMin = getEnvFloatOrDefault("CLASSIFIER_SQUIGGLY_MIN", t.SquigglyMin)
	t.SquigglyScale = getEnvFloatOrDefault("CLASSIFIER_SQUIGGLY_SCALE", t.SquigglyScale)
	t.HighlightMin = getEnvFloatOrDefault("CLASSIFIER_HIGHLIGHT_MIN", t.HighlightMin)
	t.HighlightScale = getEnvFloatOrDefault("CLASSIFIER_HIGHLIGHT_SCALE", t.HighlightScale)
	t.HighlightCoverage = getEnvFloatOrDefault("CLASSIFIER_HIGHLIGHT_COVERAGE", t.HighlightCoverage)
	return t
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetStorageBucket returns the storage bucket for uploaded PDFs
func (c *AppConfig) GetStorageBucket() string {
	return c.Bucket
}

// GetClassifierThresholds returns the decoration classifier tuning constants
func (c *AppConfig) GetClassifierThresholds() domain.ClassifierThresholds {
	return c.Thresholds
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
