package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/goccy/go-yaml"
)

var (
	ErrInvalidCompression = errors.New("invalid compression")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidSize        = errors.New("size must not be negative")
)

// Config represents the complete configuration of the jsonsplit tool.
type Config struct {
	// Input handling
	Compression    string `yaml:"compression"`
	BufferSize     int    `yaml:"buffer_size"`
	MaxElementSize int    `yaml:"max_element_size"` // 0 = unlimited

	// Element handling
	Validate  bool `yaml:"validate"`
	KeepGoing bool `yaml:"keep_going"`

	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Compression: compressionAuto,
		BufferSize:  64 * 1024,
		LogLevel:    "info",
	}
}

// LoadConfig reads a YAML configuration file over cfg.
func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f, yaml.DisallowUnknownField()).Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return nil
}

// Check validates the configuration.
func (c *Config) Check() error {
	switch c.Compression {
	case compressionAuto, compressionNone, compressionGzip, compressionZstd, compressionLZ4:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCompression, c.Compression)
	}
	if c.BufferSize < 0 || c.MaxElementSize < 0 {
		return ErrInvalidSize
	}
	if _, err := levelOption(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Logger returns a logfmt logger writing to stderr filtered by LogLevel.
func (c *Config) Logger() log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if opt, err := levelOption(c.LogLevel); err == nil {
		logger = level.NewFilter(logger, opt)
	}
	return logger
}

func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info", "":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}
