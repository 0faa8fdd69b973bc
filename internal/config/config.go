// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/nhemsley/terrain-renderer/pkg/terrain"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig        `yaml:"graphics"`
	Logging  LoggingConfig         `yaml:"logging"`
	Map      terrain.MapParameters `yaml:"map"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Map: terrain.DefaultMapParameters(),
	}
}
