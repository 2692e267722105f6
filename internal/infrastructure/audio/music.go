package audio

import (
	"errors"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Background groove shape
const (
	MusicBeat   = 250 * time.Millisecond // 120 BPM eighth notes
	kickLength  = 90 * time.Millisecond
	bassLevel   = 0.3
	kickLevel   = 0.5
	musicVolume = 0.5 // relative to the effects volume
)

// bassLine is one bar of eighth notes in Hz; 0 is a rest
var bassLine = []float64{
	110, 0, 110, 130.81,
	146.83, 0, 130.81, 98,
}

// groove is one bar of kick and bass. It implements beep.StreamSeeker
// so beep.Loop can repeat it.
type groove struct {
	rate     beep.SampleRate
	beat     int
	kick     int
	notes    []float64
	position int
}

// NewGroove creates a single bar of background music
func NewGroove(rate beep.SampleRate) beep.StreamSeeker {
	return &groove{
		rate:  rate,
		beat:  rate.N(MusicBeat),
		kick:  rate.N(kickLength),
		notes: bassLine,
	}
}

func (g *groove) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.position >= g.Len() {
			return i, i > 0
		}
		val := g.sample(g.position)
		samples[i][0] = val
		samples[i][1] = val
		g.position++
	}
	return len(samples), true
}

func (g *groove) sample(pos int) float64 {
	step := pos / g.beat
	inBeat := pos % g.beat
	t := float64(inBeat) / float64(g.rate)

	val := 0.0

	// Kick on every other eighth
	if step%2 == 0 && inBeat < g.kick {
		env := 1 - float64(inBeat)/float64(g.kick)
		val += kickLevel * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
	}

	if freq := g.notes[step]; freq > 0 {
		// Triangle wave, released over the note
		phase := freq * t
		phase -= math.Floor(phase)
		tri := 4*math.Abs(phase-0.5) - 1
		val += bassLevel * tri * (1 - float64(inBeat)/float64(g.beat))
	}
	return val
}

func (g *groove) Err() error { return nil }

func (g *groove) Len() int { return g.beat * len(g.notes) }

func (g *groove) Position() int { return g.position }

func (g *groove) Seek(p int) error {
	if p < 0 || p > g.Len() {
		return errors.New("groove: seek out of range")
	}
	g.position = p
	return nil
}

// NewMusic returns one bar of the groove at the given effects volume (0..1).
// Callers loop it with beep.Loop or an Ebiten infinite-loop player.
func NewMusic(rate beep.SampleRate, volume float64) beep.Streamer {
	g := NewGroove(rate)
	volume *= musicVolume
	if volume <= 0 {
		return &effects.Volume{Streamer: g, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: g, Base: 2, Volume: math.Log2(volume)}
}
