// Package config loads phat CLI settings from defaults, an optional YAML
// file, PHAT_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/phat/markov"
)

// EnvPrefix prefixes every environment override, e.g. PHAT_LOG_LEVEL.
const EnvPrefix = "PHAT"

// Config holds all configuration values.
type Config struct {
	Workers   int       `mapstructure:"workers"   validate:"min=1,max=256"`
	Format    string    `mapstructure:"format"    validate:"oneof=ascii markdown"`
	Tolerance float64   `mapstructure:"tolerance" validate:"gt=0"`
	Log       LogConfig `mapstructure:"log"`
}

// LogConfig selects the log level and an optional JSON log file.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

// New returns a viper instance preloaded with defaults and environment
// lookup. Callers bind flags to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("workers", 4)
	v.SetDefault("format", "ascii")
	v.SetDefault("tolerance", markov.DefaultTolerance)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (when non-empty) into v, unmarshals and validates.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := validator.New().Struct(&cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("config validation failed: %s", describe(verrs))
		}
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		parts[i] = fmt.Sprintf("%s=%v violates %s", strings.ToLower(fe.Namespace()), fe.Value(), fe.Tag())
		if fe.Param() != "" {
			parts[i] += "(" + fe.Param() + ")"
		}
	}

	return strings.Join(parts, "; ")
}

// SlogLevel maps Log.Level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	return ParseLogLevel(c.Log.Level)
}

// ParseLogLevel parses debug/info/warn/error case-insensitively,
// falling back to info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
