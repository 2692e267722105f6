package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadStage loads a stage YAML file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stage %s: %w", name, err)
	}
	return &cfg, nil
}

// applyDefaults fills values the file may leave out
func (c *GameConfig) applyDefaults() {
	if c.Display.Scale <= 0 {
		c.Display.Scale = 1
	}
	if c.Timestep.Step <= 0 {
		c.Timestep.Step = DefaultStep
	}
	if c.Rules.Contact == "" {
		c.Rules.Contact = "defeat-enemy"
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = 44100
	}
}

// DefaultStep is the fixed simulation step in seconds
const DefaultStep = 0.0166666

// Validate reports configuration values the game cannot run with
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, errors.New("display size must be positive"))
	}
	if c.Projection.Right <= c.Projection.Left || c.Projection.Top <= c.Projection.Bottom {
		errs = append(errs, errors.New("projection volume is empty"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	return errors.Join(errs...)
}

// Validate reports stage values the loader cannot build a world from
func (c *StageConfig) Validate() error {
	var errs []error
	if c.TileSize <= 0 {
		errs = append(errs, errors.New("tileSize must be positive"))
	}
	for i, e := range c.Enemies {
		if e.Width < 0 || e.Height < 0 {
			errs = append(errs, fmt.Errorf("enemy %d: negative size", i))
		}
	}
	return errors.Join(errs...)
}
