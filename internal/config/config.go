package config

import (
	"fmt"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Convert  ConvertConfig  `yaml:"convert"`
	Watch    WatchConfig    `yaml:"watch"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AnalysisConfig struct {
	Profile string `yaml:"profile"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type ConvertConfig struct {
	FFmpegBinary string `yaml:"ffmpeg_binary"`
}

type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) Validate() error {
	if _, err := model.ParseProfile(c.Analysis.Profile); err != nil {
		return fmt.Errorf("analysis.profile: %w", err)
	}
	if _, err := model.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative")
	}

	c.setDefaults()
	return nil
}

// setDefaults fills every unset field.
func (c *Config) setDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Analysis.Profile == "" {
		c.Analysis.Profile = string(model.ProfileTopics)
	}
	if c.Output.Format == "" {
		c.Output.Format = string(model.FormatMarkdown)
	}
	if c.Convert.FFmpegBinary == "" {
		c.Convert.FFmpegBinary = "ffmpeg"
	}
	if c.Watch.DebounceMS == 0 {
		c.Watch.DebounceMS = 500
	}
}
