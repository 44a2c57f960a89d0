package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/patrickspencer/croninfo/internal/crontab"
	"github.com/patrickspencer/croninfo/internal/tz"
)

// Config holds user preferences read from croninfo.yaml. Command-line flags
// override every field.
type Config struct {
	TZType       string `yaml:"tz_type"`
	Timezone     string `yaml:"timezone"`
	DayMatch     string `yaml:"day_match"`
	HorizonYears int    `yaml:"horizon_years"`
	Color        string `yaml:"color"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var c Config
	applyDefaults(&c)
	return &c
}

func applyDefaults(c *Config) {
	c.TZType = strings.ToLower(strings.TrimSpace(c.TZType))
	if c.TZType == "" {
		c.TZType = tz.KindUTC
	}
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.DayMatch == "" {
		c.DayMatch = crontab.DayMatchBoth.String()
	}
	if c.HorizonYears <= 0 {
		c.HorizonYears = crontab.DefaultHorizonYears
	}
	if c.Color == "" {
		c.Color = "auto"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports values no command can work with.
func (c *Config) Validate() error {
	switch c.TZType {
	case tz.KindUTC, tz.KindLocal:
	default:
		return fmt.Errorf("tz_type must be one of %s, got %q", strings.Join(tz.Kinds(), ", "), c.TZType)
	}
	if _, err := crontab.ParseDayMatch(c.DayMatch); err != nil {
		return fmt.Errorf("day_match: %w", err)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be one of auto, always, never, got %q", c.Color)
	}
	switch c.LogLevel {
	case "info", "debug":
	default:
		return fmt.Errorf("log_level must be info or debug, got %q", c.LogLevel)
	}
	return nil
}

// ScheduleOptions converts the config into parser options.
func (c *Config) ScheduleOptions() ([]crontab.Option, error) {
	dm, err := crontab.ParseDayMatch(c.DayMatch)
	if err != nil {
		return nil, err
	}
	return []crontab.Option{
		crontab.WithDayMatch(dm),
		crontab.WithHorizon(c.HorizonYears),
	}, nil
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "croninfo.yaml"
	}
	return filepath.Join(home, ".config", "croninfo", "config.yaml")
}

func expandPath(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return value
	}

	v = os.ExpandEnv(v)

	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return v
	}

	if v == "~" {
		return home
	}
	if strings.HasPrefix(v, "~/") {
		return filepath.Join(home, v[2:])
	}
	if strings.HasPrefix(v, "~\\") {
		return filepath.Join(home, v[2:])
	}
	return v
}

// LoadConfig reads a YAML configuration file from path and returns a Config
// with defaults applied for any unset fields. An empty path means
// DefaultPath, which may be absent; an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath()
	}
	path = expandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}
