// Package config loads the CLI settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Log formats accepted in log_format.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	defaultRetentionMillis = 1000
	defaultWaitMillis      = 1500
)

// Settings represents configuration loaded from a YAML file.
// Field names match snake_case YAML keys.
type Settings struct {
	RetentionMillis int64  `yaml:"retention_ms"`
	WaitMillis      int64  `yaml:"wait_ms"`
	LogFormat       string `yaml:"log_format"`
}

// Defaults returns the settings used when no file is present.
func Defaults() Settings {
	return Settings{
		RetentionMillis: defaultRetentionMillis,
		WaitMillis:      defaultWaitMillis,
		LogFormat:       LogFormatJSON,
	}
}

// Load reads path on top of Defaults. An empty path or a missing file is not
// an error; keys absent from the file keep their default.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Validate checks field values. Non-positive retention is allowed: the cache
// treats it as already expired.
func (s Settings) Validate() error {
	if s.WaitMillis < 0 {
		return fmt.Errorf("%w: wait_ms must not be negative, got %d", ErrInvalidSettings, s.WaitMillis)
	}
	switch s.LogFormat {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("%w: log_format %q (want %q or %q)", ErrInvalidSettings, s.LogFormat, LogFormatJSON, LogFormatText)
	}
	return nil
}

// Retention is RetentionMillis as a time.Duration.
func (s Settings) Retention() time.Duration {
	return time.Duration(s.RetentionMillis) * time.Millisecond
}

// Wait is WaitMillis as a time.Duration.
func (s Settings) Wait() time.Duration {
	return time.Duration(s.WaitMillis) * time.Millisecond
}
