package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/ogmi/pkg/ogmi"
	"github.com/vvka-141/ogmi/pkg/opengraph"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "ogmi.yaml"

// Environment variables that override ogmi.yaml.
const (
	EnvUserAgent   = "OGMI_USER_AGENT"
	EnvTimeout     = "OGMI_TIMEOUT"
	EnvDatabaseURL = "OGMI_DATABASE_URL"
)

type RetrySettings struct {
	MaxAttempts  *int   `yaml:"max_attempts,omitempty"`
	InitialDelay string `yaml:"initial_delay,omitempty"`
	MaxDelay     string `yaml:"max_delay,omitempty"`
}

// NamespaceConfig registers an extra namespace, e.g. a site-specific prefix
// declared in page heads.
type NamespaceConfig struct {
	Prefix   string   `yaml:"prefix"`
	URI      string   `yaml:"uri"`
	Required []string `yaml:"required,omitempty"`
}

type ProjectConfig struct {
	UserAgent   string            `yaml:"user_agent,omitempty"`
	Referrer    string            `yaml:"referrer,omitempty"`
	Timeout     string            `yaml:"timeout,omitempty"`
	Validate    bool              `yaml:"validate,omitempty"`
	DatabaseURL string            `yaml:"database_url,omitempty"`
	Retry       RetrySettings     `yaml:"retry,omitempty"`
	Namespaces  []NamespaceConfig `yaml:"namespaces,omitempty"`
}

// Load reads ogmi.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file at an explicit path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from OGMI_* environment variables.
func (c *ProjectConfig) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvUserAgent); v != "" {
		c.UserAgent = v
	}
	if v := getenv(EnvTimeout); v != "" {
		c.Timeout = v
	}
	if v := getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
}

// TimeoutDuration parses Timeout; an empty value yields 0.
func (c *ProjectConfig) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(c.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, ogmi.ErrInvalidConfig)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout cannot be negative: %w", ogmi.ErrInvalidConfig)
	}
	return d, nil
}

// RetryConfig merges the retry section over ogmi's defaults.
func (c *ProjectConfig) RetryConfig() (ogmi.RetryConfig, error) {
	cfg := ogmi.DefaultRetryConfig()
	var errs []error

	if c.Retry.MaxAttempts != nil {
		cfg.MaxAttempts = *c.Retry.MaxAttempts
	}
	if c.Retry.InitialDelay != "" {
		d, err := time.ParseDuration(c.Retry.InitialDelay)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid retry.initial_delay %q: %w", c.Retry.InitialDelay, ogmi.ErrInvalidConfig))
		}
		cfg.InitialDelay = d
	}
	if c.Retry.MaxDelay != "" {
		d, err := time.ParseDuration(c.Retry.MaxDelay)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid retry.max_delay %q: %w", c.Retry.MaxDelay, ogmi.ErrInvalidConfig))
		}
		cfg.MaxDelay = d
	}
	if err := errors.Join(errs...); err != nil {
		return ogmi.RetryConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ogmi.RetryConfig{}, err
	}
	return cfg, nil
}

// Registry returns base extended with the configured namespaces. A
// configured prefix that base already knows replaces the built-in entry.
func (c *ProjectConfig) Registry(base *opengraph.Registry) (*opengraph.Registry, error) {
	if base == nil {
		base = opengraph.DefaultRegistry()
	}

	var errs []error
	reg := base
	for i, ns := range c.Namespaces {
		prefix := strings.TrimSpace(ns.Prefix)
		uri := strings.TrimSpace(ns.URI)
		if prefix == "" || strings.Contains(prefix, ":") {
			errs = append(errs, fmt.Errorf("namespaces[%d]: invalid prefix %q: %w", i, ns.Prefix, ogmi.ErrInvalidConfig))
			continue
		}
		if uri == "" {
			errs = append(errs, fmt.Errorf("namespaces[%d]: uri is required for prefix %q: %w", i, prefix, ogmi.ErrInvalidConfig))
			continue
		}
		reg = reg.With(prefix, uri, ns.Required...)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return reg, nil
}
