package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
)

func main() {
	if err := run(); err != nil {
		slog.Error("particle field failed", "err", err)
		_ = zenity.Error(err.Error(), zenity.Title("Particle Field"), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel}))
	slog.SetDefault(log)

	themes := config.DefaultThemes()
	if settings.ThemeFile != "" {
		if themes, err = config.LoadThemes(settings.ThemeFile); err != nil {
			return err
		}
	}

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	host := game.NewHost(settings.WindowWidth, settings.WindowHeight)
	g := game.NewGame(host, settings, themes, log)
	if err := g.Start(); err != nil {
		return err
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
