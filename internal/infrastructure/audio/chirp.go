// Package audio synthesises the game's sound effects and plays them through Ebiten.
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Jump chirp shape
const (
	JumpDuration  = 120 * time.Millisecond
	jumpStartFreq = 320.0
	jumpEndFreq   = 880.0
)

// sweep is a square-wave oscillator whose pitch glides linearly
// from start to end over its duration, fading out as it goes
type sweep struct {
	start, end float64
	phase      float64
	position   int
	duration   int
	rate       beep.SampleRate
}

// NewSweep creates a pitch sweep streamer
func NewSweep(start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start:    start,
		end:      end,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.start + (s.end-s.start)*progress

		val := 1.0
		if s.phase >= 0.5 {
			val = -1.0
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// NewJumpSound returns the jump chirp at the given volume (0..1)
func NewJumpSound(rate beep.SampleRate, volume float64) beep.Streamer {
	s := NewSweep(jumpStartFreq, jumpEndFreq, JumpDuration, rate)
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// RenderPCM drains a streamer into signed 16-bit little-endian stereo PCM,
// the format Ebiten's audio players consume
func RenderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][ch])))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
