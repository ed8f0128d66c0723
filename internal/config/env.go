package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable read by Load.
const EnvPrefix = "PARTICLES_"

// Settings is everything the desktop demo reads from its environment.
type Settings struct {
	WindowWidth  int        `env:"WINDOW_WIDTH" envDefault:"1024"`
	WindowHeight int        `env:"WINDOW_HEIGHT" envDefault:"512"`
	Title        string     `env:"TITLE" envDefault:"Particle Field"`
	ThemeFile    string     `env:"THEME_FILE"`
	Page         string     `env:"PAGE" envDefault:"index.html"`
	Background   RGB        `env:"BACKGROUND" envDefault:"#101018"`
	LogLevel     slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	Field Config
}

// Load parses PARTICLES_* environment variables.
func Load() (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Field.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
