// Package config loads the library's configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the toolpick configuration.
type Config struct {
	Paths     PathsConfig     `mapstructure:"paths"`
	Toolchain ToolchainConfig `mapstructure:"toolchain"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// PathsConfig contains path-related configuration.
type PathsConfig struct {
	RustupHome string `mapstructure:"rustup_home"`
	LogFile    string `mapstructure:"log_file"`
}

// ToolchainConfig describes how installed toolchains report their version.
type ToolchainConfig struct {
	Compiler    string `mapstructure:"compiler"`
	VersionFlag string `mapstructure:"version_flag"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from file and environment. A missing config file
// is not an error; defaults and environment variables apply either way.
// RUSTUP_HOME is honored directly so the library agrees with rustup itself
// about where toolchains live.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "toolpick"))
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("TOOLPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("paths.rustup_home", "RUSTUP_HOME", "TOOLPICK_PATHS_RUSTUP_HOME"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Paths.RustupHome = expandPath(cfg.Paths.RustupHome)
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("paths.rustup_home", "")
	v.SetDefault("paths.log_file", "")

	v.SetDefault("toolchain.compiler", "rustc")
	v.SetDefault("toolchain.version_flag", "-V")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.color", "auto")
}

// expandPath expands ~ and environment variables in paths.
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
