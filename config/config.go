package config

import (
	"github.com/spf13/cast"

	"github.com/philipp01105/sinklog/core"
)

// Override keys recognized by Merge
const (
	KeyConsoleEnabled = "console_enabled"
	KeyPublishEnabled = "publish_enabled"
	KeyConsoleLevel   = "console_level"
	KeyPublishLevel   = "publish_level"
)

// Config holds the enable flag and threshold of each sink
type Config struct {
	ConsoleEnabled bool
	PublishEnabled bool
	ConsoleLevel   core.Level
	PublishLevel   core.Level
}

// Defaults returns the default configuration
func Defaults() Config {
	return Config{
		ConsoleEnabled: true,
		PublishEnabled: true,
		ConsoleLevel:   core.InfoLevel,
		PublishLevel:   core.InfoLevel,
	}
}

// Merge returns base with the recognized keys of overrides applied.
// Boolean keys accept booleans, numbers and truthy/falsy strings; level
// keys accept level names. Values that fail to convert are skipped.
func Merge(base Config, overrides map[string]any) Config {
	cfg := base
	for key, val := range overrides {
		switch key {
		case KeyConsoleEnabled:
			if b, err := cast.ToBoolE(val); err == nil {
				cfg.ConsoleEnabled = b
			}
		case KeyPublishEnabled:
			if b, err := cast.ToBoolE(val); err == nil {
				cfg.PublishEnabled = b
			}
		case KeyConsoleLevel:
			if l, ok := toLevel(val); ok {
				cfg.ConsoleLevel = l
			}
		case KeyPublishLevel:
			if l, ok := toLevel(val); ok {
				cfg.PublishLevel = l
			}
		}
	}
	return cfg
}

func toLevel(val any) (core.Level, bool) {
	if l, ok := val.(core.Level); ok {
		return l, true
	}
	s, err := cast.ToStringE(val)
	if err != nil {
		return core.InfoLevel, false
	}
	l, err := core.ParseLevel(s)
	return l, err == nil
}
