package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang-persistent-eth/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// RenameConfig represents settings for the rename pipeline
type RenameConfig struct {
	ConfigDir      string `yaml:"config_dir"`      // directory holding the ifcfg files
	TempPrefix     string `yaml:"temp_prefix"`     // prefix for quarantine names, must stay outside the ethN namespace
	TimeoutSeconds int    `yaml:"timeout_seconds"` // per-operation timeout for link commands
}

// InstallConfig represents settings for service installation
type InstallConfig struct {
	BinaryPath string `yaml:"binary_path"` // where the binary is copied
	UnitPath   string `yaml:"unit_path"`   // where the systemd unit is written
	UnitName   string `yaml:"unit_name"`   // unit name passed to systemctl enable
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Rename  RenameConfig      `yaml:"rename"`
	Install InstallConfig     `yaml:"install"`
}

// Default returns the built-in configuration, matching the paths the tool
// has always used.
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "simple",
		},
		Rename: RenameConfig{
			ConfigDir:      "/etc/sysconfig/network-scripts",
			TempPrefix:     "temp",
			TimeoutSeconds: 10,
		},
		Install: InstallConfig{
			BinaryPath: "/usr/sbin/golang-persistent-eth",
			UnitPath:   "/etc/systemd/system/persistent-eth.service",
			UnitName:   "persistent-eth",
		},
	}
}

// Load loads configuration from a YAML file. An empty path returns the
// defaults unchanged; a file only needs to set the keys it overrides.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// OperationTimeout returns the per-operation timeout as a duration.
func (c *Config) OperationTimeout() time.Duration {
	return time.Duration(c.Rename.TimeoutSeconds) * time.Second
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Rename.ConfigDir == "" {
		return fmt.Errorf("rename config_dir is required")
	}
	if c.Rename.TempPrefix == "" {
		return fmt.Errorf("rename temp_prefix is required")
	}
	// Quarantine names must never collide with final targets, which are
	// always ethN or administrator-chosen names from the ifcfg files.
	if strings.Contains(c.Rename.TempPrefix, "eth") {
		return fmt.Errorf("rename temp_prefix %q must not contain \"eth\"", c.Rename.TempPrefix)
	}
	if c.Rename.TimeoutSeconds <= 0 {
		return fmt.Errorf("rename timeout_seconds must be positive")
	}
	if c.Install.BinaryPath == "" {
		return fmt.Errorf("install binary_path is required")
	}
	if c.Install.UnitPath == "" {
		return fmt.Errorf("install unit_path is required")
	}
	if c.Install.UnitName == "" {
		return fmt.Errorf("install unit_name is required")
	}
	return nil
}
