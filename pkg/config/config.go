// Package config provides per-root configuration for fimon.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fimon-project/fimon/pkg/errclass"
	"github.com/fimon-project/fimon/pkg/pathutil"
)

// FileName is the configuration file looked up in the monitored root.
const FileName = ".fimon.yaml"

// Config represents the fimon configuration.
type Config struct {
	BaselineFile string `yaml:"baseline_file"`
	KeyFile      string `yaml:"key_file"`
	// LogFile names the forensic log appended in the monitored root.
	// An empty value disables the forensic log.
	LogFile  string        `yaml:"log_file"`
	Interval string        `yaml:"interval"`
	Ignore   []string      `yaml:"ignore"`
	Logging  LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the operational logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		BaselineFile: ".baseline.txt",
		KeyFile:      ".key.key",
		LogFile:      ".fimon.log",
		Interval:     "1s",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from <root>/.fimon.yaml.
// Returns the default config if the file doesn't exist.
func Load(root string) (*Config, error) {
	cfg := Default()
	cfgPath := filepath.Join(root, FileName)

	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return cfg, nil // No config file is OK, use defaults
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that configured file names are bare names and the
// polling interval is positive.
func (c *Config) Validate() error {
	for _, name := range []string{c.BaselineFile, c.KeyFile} {
		if !pathutil.ValidFileName(name) {
			return errclass.ErrTargetInvalid.WithMessagef("invalid file name in config: %q", name)
		}
	}
	if c.LogFile != "" && !pathutil.ValidFileName(c.LogFile) {
		return errclass.ErrTargetInvalid.WithMessagef("invalid file name in config: %q", c.LogFile)
	}
	if _, err := c.PollInterval(); err != nil {
		return err
	}
	return nil
}

// PollInterval parses the configured polling interval.
func (c *Config) PollInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, errclass.ErrTargetInvalid.WithMessagef("invalid interval %q: %v", c.Interval, err)
	}
	if d <= 0 {
		return 0, errclass.ErrTargetInvalid.WithMessagef("interval must be positive: %s", c.Interval)
	}
	return d, nil
}

// IgnoreNames returns the base names excluded from enumeration: the
// baseline, key, log, and config files, common OS housekeeping files,
// plus any config-supplied extras.
func (c *Config) IgnoreNames() []string {
	names := []string{
		c.BaselineFile,
		c.KeyFile,
		FileName,
		".DS_Store",
		"Thumbs.db",
	}
	if c.LogFile != "" {
		names = append(names, c.LogFile)
	}
	return append(names, c.Ignore...)
}
