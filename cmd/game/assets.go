package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/younwookim/riseai/internal/application/system"
	"github.com/younwookim/riseai/internal/domain/world"
	"github.com/younwookim/riseai/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// newLoader reads from dir when given, from the embedded configs otherwise
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadWorld loads a stage and builds its world
func loadWorld(loader *config.Loader, cfg *config.GameConfig, stage string) (*world.World, error) {
	stageCfg, err := loader.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	w, err := system.LoadStage(cfg, stageCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build stage %s: %w", stage, err)
	}
	return w, nil
}
