package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/younwookim/riseai/internal/application/game"
	"github.com/younwookim/riseai/internal/application/scene"
	"github.com/younwookim/riseai/internal/application/scene/playing"
	"github.com/younwookim/riseai/internal/infrastructure/audio"
	"github.com/younwookim/riseai/internal/infrastructure/config"
	"github.com/younwookim/riseai/internal/infrastructure/logging"
)

var (
	flagStage       string
	flagRecord      string
	flagScale       int
	flagContactRule string
)

// applyOverrides copies command line overrides into the loaded config
func applyOverrides(cfg *config.GameConfig, scale int, contactRule string) {
	if scale > 0 {
		cfg.Display.Scale = scale
	}
	if contactRule != "" {
		cfg.Rules.Contact = contactRule
	}
}

func runGame(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyOverrides(cfg, flagScale, flagContactRule)

	w, err := loadWorld(loader, cfg, flagStage)
	if err != nil {
		return err
	}

	var sink audio.Sink = audio.Nop{}
	if cfg.Audio.Enabled {
		sink = audio.NewPlayer(ebaudio.NewContext(cfg.Audio.SampleRate), cfg.Audio.Volume, cfg.Audio.Music, logger)
	}

	p, err := playing.New(cfg, flagStage, w, playing.Options{
		Sound:      sink,
		Logger:     logger,
		RecordPath: flagRecord,
	})
	if err != nil {
		return err
	}

	g := game.New(p, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, scene.ErrQuit) {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("bye")
	return nil
}
