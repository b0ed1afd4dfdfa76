// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Typing TypingConfig `toml:"typing"`
	Log    LogConfig    `toml:"log"`
}

// TypingConfig maps run-related settings. Unset keys stay nil so flag
// defaults apply.
type TypingConfig struct {
	Time      *int    `toml:"time"`
	Lines     *int    `toml:"lines"`
	Theme     *string `toml:"theme"`
	Extension *string `toml:"extension"`
	Dir       *string `toml:"dir"`
}

// LogConfig maps log settings.
type LogConfig struct {
	Debug *bool `toml:"debug"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
