// Package xdgconfig loads configuration for the prodash demo CLI from XDG
// paths, a project-level override file, and environment variables.
package xdgconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the prodash demo CLI.
type Config struct {
	Line LineConfig `mapstructure:"line"`
	TUI  TUIConfig  `mapstructure:"tui"`
}

// LineConfig holds defaults for the line renderer.
type LineConfig struct {
	FramesPerSecond float64       `mapstructure:"frames_per_second"`
	Colored         bool          `mapstructure:"colored"`
	Timestamp       bool          `mapstructure:"timestamp"`
	InitialDelay    time.Duration `mapstructure:"initial_delay"`
}

// TUIConfig holds defaults for the TUI renderer.
type TUIConfig struct {
	FramesPerSecond                   float64 `mapstructure:"frames_per_second"`
	RecomputeColumnWidthEveryNthFrame int     `mapstructure:"recompute_column_width_every_nth_frame"`
	Throughput                        bool    `mapstructure:"throughput"`
	Colored                           bool    `mapstructure:"colored"`
}

// Load loads configuration from XDG paths, a project override, and
// environment variables.
// Precedence (highest to lowest):
//  1. Environment variables (PRODASH_*)
//  2. Project config (.prodash.yaml in the current directory or a parent)
//  3. User config (~/.config/prodash/config.yaml)
//  4. Built-in defaults
func Load() (*Config, error) {
	v, err := build()
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

func build() (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectPath := findProjectConfig(); projectPath != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectPath)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("PRODASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// Watch loads configuration exactly like Load, then keeps watching the
// resolved user config file for edits made while the caller keeps running
// (a line or TUI render loop can run for hours). onChange fires with a
// freshly unmarshaled Config every time the file is rewritten, or with a
// non-nil error if the rewritten file fails to unmarshal; it is never
// called for the initial load, which Watch returns directly.
//
// Only the user config file is watched and re-read on change: viper's own
// WatchConfig watches exactly one file, the one it loaded its config from.
// The reloaded Config carries no values from the project override file,
// which was merged only at call time; PRODASH_* environment variables are
// looked up again on every reload and still take precedence. There is
// no corresponding Unwatch, since viper doesn't expose a way to stop the
// underlying fsnotify watcher short of process exit.
func Watch(onChange func(*Config, error)) (*Config, error) {
	v, err := build()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	v.OnConfigChange(func(fsnotify.Event) {
		reloaded := &Config{}
		if err := v.Unmarshal(reloaded); err != nil {
			onChange(nil, fmt.Errorf("unmarshaling config: %w", err))
			return
		}
		onChange(reloaded, nil)
	})
	v.WatchConfig()

	return cfg, nil
}

// Default returns a Config populated with built-in defaults, bypassing any
// file or environment lookup.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("line.frames_per_second", 10.0)
	v.SetDefault("line.colored", true)
	v.SetDefault("line.timestamp", false)
	v.SetDefault("line.initial_delay", "0s")

	v.SetDefault("tui.frames_per_second", 10.0)
	v.SetDefault("tui.recompute_column_width_every_nth_frame", 10)
	v.SetDefault("tui.throughput", false)
	v.SetDefault("tui.colored", true)
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "prodash")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "prodash")
	}
	return filepath.Join(home, ".config", "prodash")
}

func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(cwd, ".prodash.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			return ""
		}
		cwd = parent
	}
}
