package config

import (
	"fmt"
	"strings"

	"github.com/MeKo-Tech/langid/internal/models"
	"github.com/MeKo-Tech/langid/internal/pipeline"
	"github.com/MeKo-Tech/langid/internal/script"
)

// Config represents the complete configuration for the langid application.
// It includes settings for all commands (text, batch, serve) and supports
// loading from configuration files, environment variables, and command-line flags.
type Config struct {
	// Global settings
	ModelsDir string `mapstructure:"models_dir" yaml:"models_dir" json:"models_dir"`
	ModelPath string `mapstructure:"model_path" yaml:"model_path" json:"model_path"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Detection configuration
	Detection DetectionConfig `mapstructure:"detection" yaml:"detection" json:"detection"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`

	// Batch processing configuration
	Batch BatchConfig `mapstructure:"batch" yaml:"batch" json:"batch"`
}

// DetectionConfig contains language detection settings.
type DetectionConfig struct {
	MinTextLength int      `mapstructure:"min_text_length" yaml:"min_text_length" json:"min_text_length"`
	MaxTextLength int      `mapstructure:"max_text_length" yaml:"max_text_length" json:"max_text_length"`
	TieBand       float64  `mapstructure:"tie_band" yaml:"tie_band" json:"tie_band"`
	Whitelist     []string `mapstructure:"whitelist" yaml:"whitelist" json:"whitelist"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	File   string `mapstructure:"file" yaml:"file" json:"file"`
	All    bool   `mapstructure:"all" yaml:"all" json:"all"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host              string `mapstructure:"host" yaml:"host" json:"host"`
	Port              int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin        string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	MaxBodyKB         int    `mapstructure:"max_body_kb" yaml:"max_body_kb" json:"max_body_kb"`
	TimeoutSec        int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout   int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute" yaml:"requests_per_minute" json:"requests_per_minute"`
	MaxRequestsPerDay int    `mapstructure:"max_requests_per_day" yaml:"max_requests_per_day" json:"max_requests_per_day"`
	MaxDataPerDayMB   int    `mapstructure:"max_data_per_day_mb" yaml:"max_data_per_day_mb" json:"max_data_per_day_mb"`
}

// BatchConfig contains batch processing settings.
type BatchConfig struct {
	Workers   int  `mapstructure:"workers" yaml:"workers" json:"workers"`
	Recursive bool `mapstructure:"recursive" yaml:"recursive" json:"recursive"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ModelsDir: models.DefaultModelsDir,
		LogLevel:  "info",
		Verbose:   false,
		Detection: DetectionConfig{
			MinTextLength: pipeline.DefaultMinTextLength,
			MaxTextLength: pipeline.DefaultMaxTextLength,
			TieBand:       script.DefaultTieBand,
			Whitelist:     nil,
		},
		Output: OutputConfig{
			Format: "text",
			All:    false,
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORSOrigin:      "*",
			MaxBodyKB:       512,
			TimeoutSec:      30,
			ShutdownTimeout: 10,
		},
		Batch: BatchConfig{
			Workers:   4,
			Recursive: false,
		},
	}
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)",
			c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	validFormats := []string{"text", "json", "csv"}
	if c.Output.Format != "" && !contains(validFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)",
			c.Output.Format, strings.Join(validFormats, ", "))
	}

	if c.Detection.MinTextLength < 0 {
		return fmt.Errorf("invalid min text length: %d (must be non-negative)", c.Detection.MinTextLength)
	}
	if c.Detection.MaxTextLength > 0 && c.Detection.MaxTextLength < c.Detection.MinTextLength {
		return fmt.Errorf("invalid max text length: %d (must be at least min text length %d)",
			c.Detection.MaxTextLength, c.Detection.MinTextLength)
	}
	if c.Detection.TieBand <= 0 || c.Detection.TieBand > 1.0 {
		return fmt.Errorf("invalid tie band: %g (must be in (0, 1])", c.Detection.TieBand)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be between 1 and 65535)", c.Server.Port)
	}
	if c.Server.MaxBodyKB <= 0 {
		return fmt.Errorf("invalid max body size: %d (must be positive)", c.Server.MaxBodyKB)
	}
	if c.Server.TimeoutSec <= 0 {
		return fmt.Errorf("invalid timeout: %d (must be positive)", c.Server.TimeoutSec)
	}

	if c.Batch.Workers <= 0 {
		return fmt.Errorf("invalid batch workers: %d (must be positive)", c.Batch.Workers)
	}

	return nil
}

// ToPipelineConfig converts the config to the internal pipeline configuration format.
func (c *Config) ToPipelineConfig() pipeline.Config {
	cfg := pipeline.DefaultConfig()
	if c.ModelsDir != "" {
		cfg.ModelsDir = models.GetModelsDir(c.ModelsDir)
	}
	cfg.ModelPath = c.ModelPath
	cfg.MinTextLength = c.Detection.MinTextLength
	cfg.MaxTextLength = c.Detection.MaxTextLength
	cfg.TieBand = c.Detection.TieBand
	cfg.Whitelist = c.Detection.Whitelist
	cfg.Parallel.MaxWorkers = c.Batch.Workers
	return cfg
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
