// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/riseai/internal/application/loop"
	"github.com/younwookim/riseai/internal/application/scene"
	"github.com/younwookim/riseai/internal/application/session"
	"github.com/younwookim/riseai/internal/application/state"
	"github.com/younwookim/riseai/internal/application/system"
	"github.com/younwookim/riseai/internal/domain/entity"
	"github.com/younwookim/riseai/internal/domain/world"
	"github.com/younwookim/riseai/internal/infrastructure/audio"
	"github.com/younwookim/riseai/internal/infrastructure/config"
	"github.com/younwookim/riseai/internal/infrastructure/logging"
	"github.com/younwookim/riseai/internal/infrastructure/render"
)

// Messages shown over the world
const (
	MessageLost   = "You lose"
	MessageWon    = "Congratulations!"
	MessagePaused = "Paused"
)

// InputReader produces one frame of input
type InputReader interface {
	GetInput() system.InputState
}

// Options carries the scene's optional collaborators
type Options struct {
	Input      InputReader      // defaults to keyboard input
	Sound      audio.Sink       // defaults to audio.Nop
	Renderer   *render.Renderer // defaults to render.New(cfg)
	Logger     *log.Logger      // defaults to a discarding logger
	RecordPath string           // empty disables recording
}

// Playing is the main gameplay scene
type Playing struct {
	cfg       *config.GameConfig
	stageName string
	session   *session.Session
	input     InputReader
	sound     audio.Sink
	renderer  *render.Renderer
	logger    *log.Logger

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene over an already loaded world
func New(cfg *config.GameConfig, stageName string, w *world.World, opts Options) (*Playing, error) {
	rule, err := system.ParseContactRule(cfg.Rules.Contact)
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	if opts.Input == nil {
		opts.Input = system.NewInputSystem()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(cfg)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	acc := loop.NewAccumulator(loop.StepFromSeconds(cfg.Timestep.Step), cfg.Timestep.MaxSteps)
	sess := session.New(w, system.NewSimulation(w.Bounds, rule), acc)

	p := &Playing{
		cfg:            cfg,
		stageName:      stageName,
		session:        sess,
		input:          opts.Input,
		sound:          opts.Sound,
		renderer:       opts.Renderer,
		logger:         opts.Logger,
		recordFilename: opts.RecordPath,
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		p.recorder = NewRecorder(stageName, rule.String(), cfg.Timestep.Step)
		p.logger.Info("recording enabled", "path", opts.RecordPath)
	}

	// Set up callbacks
	sess.Input.OnJump = opts.Sound.PlayJump
	sess.Sim.Contact.OnEnemyDefeated = func(e *entity.Enemy) {
		p.logger.Debug("enemy defeated", "id", e.ID, "ai", e.AIType, "remaining", w.ActiveEnemies())
	}
	sess.Sim.Contact.OnPlayerDefeated = func(by *entity.Enemy) {
		p.logger.Debug("player defeated", "by", by.ID)
	}
	sess.OnOutcome = func(outcome world.Outcome) {
		p.logger.Info("round over", "outcome", outcome, "defeated", w.DefeatedEnemies())
	}
	sess.OnRestart = func() {
		p.logger.Info("stage restarted", "stage", stageName)
	}

	return p, nil
}

// Update reads input and advances the session (implements scene.Scene)
func (p *Playing) Update(elapsed time.Duration) (scene.Scene, error) {
	input := p.input.GetInput()
	if input.Quit {
		return nil, scene.ErrQuit
	}

	steps := p.session.Update(input, elapsed)

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input, steps)
	}

	return nil, nil // nil = stay on this scene
}

// Draw renders the world and the state message
func (p *Playing) Draw(screen *ebiten.Image) {
	p.renderer.Draw(screen, p.session.World)

	if msg := p.Message(); msg != "" {
		p.renderer.DrawMessage(screen, msg)
	}
}

// Message returns the text to overlay for the current state
func (p *Playing) Message() string {
	switch p.session.State() {
	case state.StateLost:
		return MessageLost
	case state.StateWon:
		return MessageWon
	case state.StatePaused:
		return MessagePaused
	default:
		return ""
	}
}

// State returns the current game state
func (p *Playing) State() state.GameState {
	return p.session.State()
}

// World returns the world being played
func (p *Playing) World() *world.World {
	return p.session.World
}

// Recorder returns the active recorder, nil when not recording
func (p *Playing) Recorder() *Recorder {
	return p.recorder
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	w := p.session.World
	p.logger.Info("stage started",
		"stage", p.stageName,
		"enemies", len(w.Enemies),
		"platforms", len(w.Platforms),
		"rule", p.session.Sim.Contact.Rule())
	p.sound.PlayMusic()
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
