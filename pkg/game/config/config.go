// Package config provides the game settings with compiled defaults and an
// optional YAML override file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// localConfigFile is picked up from the working directory when no explicit
// path is given.
const localConfigFile = "quantumlab.yaml"

// Settings holds the static configuration for a session. Only TileSize and
// InteractDistance affect core logic (collision-grid geometry and trigger
// radius); the rest drive the frontend.
type Settings struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	TPS          int `yaml:"tps"`

	TileSize float64 `yaml:"tile_size"`

	PlayerSpeed      float64 `yaml:"player_speed"`      // units per second
	CompanionSpeed   float64 `yaml:"companion_speed"`   // follow speed of the idle scientist
	InteractDistance float64 `yaml:"interact_distance"` // trigger radius for interactions and exits

	DialogueLineDuration float64 `yaml:"dialogue_line_duration"` // seconds each line stays on screen
}

// Default returns the compiled-in settings.
func Default() Settings {
	return Settings{
		ScreenWidth:          1280,
		ScreenHeight:         720,
		TPS:                  60,
		TileSize:             64,
		PlayerSpeed:          220,
		CompanionSpeed:       120,
		InteractDistance:     72,
		DialogueLineDuration: 6.0,
	}
}

// GridWidth returns the number of tile columns that fit the screen.
func (s Settings) GridWidth() int {
	return s.ScreenWidth / int(s.TileSize)
}

// GridHeight returns the number of tile rows that fit the screen.
func (s Settings) GridHeight() int {
	return s.ScreenHeight / int(s.TileSize)
}

// Validate reports the first nonsensical value. Invalid settings are a
// startup error, not a recoverable condition.
func (s Settings) Validate() error {
	switch {
	case s.ScreenWidth <= 0 || s.ScreenHeight <= 0:
		return fmt.Errorf("screen size must be positive, got %dx%d", s.ScreenWidth, s.ScreenHeight)
	case s.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", s.TPS)
	case s.TileSize <= 0:
		return fmt.Errorf("tile size must be positive, got %v", s.TileSize)
	case s.TileSize > float64(s.ScreenWidth) || s.TileSize > float64(s.ScreenHeight):
		return fmt.Errorf("tile size %v exceeds screen %dx%d", s.TileSize, s.ScreenWidth, s.ScreenHeight)
	case s.PlayerSpeed <= 0:
		return fmt.Errorf("player speed must be positive, got %v", s.PlayerSpeed)
	case s.InteractDistance <= 0:
		return fmt.Errorf("interact distance must be positive, got %v", s.InteractDistance)
	case s.DialogueLineDuration <= 0:
		return fmt.Errorf("dialogue line duration must be positive, got %v", s.DialogueLineDuration)
	}
	return nil
}

// Load loads settings.
// Search order: customPath -> ./quantumlab.yaml -> compiled defaults.
// The YAML file only needs to name the fields it overrides.
func Load(customPath string) (Settings, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if data, err := os.ReadFile(localConfigFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", localConfigFile, err)
		}
	}

	return cfg, cfg.Validate()
}
