package audio

import (
	"bytes"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Sink receives fire-and-forget sound requests from the game
type Sink interface {
	PlayJump()
	PlayMusic()
}

// Nop discards every sound request
type Nop struct{}

// PlayJump does nothing
func (Nop) PlayJump() {}

// PlayMusic does nothing
func (Nop) PlayMusic() {}

// Player plays pre-rendered effects on an Ebiten audio context
type Player struct {
	ctx    *ebaudio.Context
	jump   []byte
	voices []*ebaudio.Player
	logger *log.Logger

	music      []byte // one bar of PCM; nil when music is off
	musicVoice *ebaudio.Player
}

// NewPlayer renders the effects once for the context's sample rate.
// The background bar is rendered only when music is true.
func NewPlayer(ctx *ebaudio.Context, volume float64, music bool, logger *log.Logger) *Player {
	rate := beep.SampleRate(ctx.SampleRate())
	p := &Player{
		ctx:    ctx,
		jump:   RenderPCM(NewJumpSound(rate, volume)),
		logger: logger,
	}
	if music {
		p.music = RenderPCM(NewMusic(rate, volume))
	}
	logger.Debug("audio ready", "sampleRate", ctx.SampleRate(), "jumpBytes", len(p.jump), "musicBytes", len(p.music))
	return p
}

// PlayJump starts a new voice for the jump chirp
func (p *Player) PlayJump() {
	// Finished voices are dropped; playing ones stay referenced until done
	live := p.voices[:0]
	for _, v := range p.voices {
		if v.IsPlaying() {
			live = append(live, v)
		}
	}

	voice := p.ctx.NewPlayerFromBytes(p.jump)
	voice.Play()
	p.voices = append(live, voice)
}

// PlayMusic starts the background loop. It keeps playing until the
// process exits; calling it again while it plays does nothing.
func (p *Player) PlayMusic() {
	if len(p.music) == 0 {
		return
	}
	if p.musicVoice == nil {
		loop := ebaudio.NewInfiniteLoop(bytes.NewReader(p.music), int64(len(p.music)))
		voice, err := p.ctx.NewPlayer(loop)
		if err != nil {
			p.logger.Error("music player", "err", err)
			return
		}
		p.musicVoice = voice
	}
	if !p.musicVoice.IsPlaying() {
		p.musicVoice.Play()
	}
}
