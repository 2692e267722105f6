package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func TestSweep_LengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewSweep(300, 900, JumpDuration, rate)

	total := 0
	buf := make([][2]float64, 1000)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, buf[i][0], 1.0)
			assert.GreaterOrEqual(t, buf[i][0], -1.0)
			assert.Equal(t, buf[i][0], buf[i][1], "mono on both channels")
		}
		total += n
		if !ok {
			break
		}
	}

	assert.Equal(t, rate.N(JumpDuration), total)
	assert.NoError(t, s.Err())
}

func TestSweep_FadesOut(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewSweep(100, 100, JumpDuration, rate)

	buf := make([][2]float64, rate.N(JumpDuration))
	n, _ := s.Stream(buf)

	assert.Equal(t, 1.0, buf[0][0])
	last := buf[n-1][0]
	if last < 0 {
		last = -last
	}
	assert.Less(t, last, 0.05)
}

func TestRenderPCM(t *testing.T) {
	rate := beep.SampleRate(44100)

	pcm := RenderPCM(NewJumpSound(rate, 0.5))

	// 2 channels, 2 bytes per sample
	assert.Len(t, pcm, rate.N(JumpDuration)*4)

	silent := RenderPCM(NewJumpSound(rate, 0))
	assert.Len(t, silent, len(pcm))
	for _, b := range silent {
		if b != 0 {
			t.Fatal("silent chirp produced non-zero sample")
		}
	}
}

func TestToInt16_Clamps(t *testing.T) {
	assert.Equal(t, int16(32767), toInt16(2))
	assert.Equal(t, int16(-32767), toInt16(-2))
	assert.Equal(t, int16(0), toInt16(0))
}

func TestNop(t *testing.T) {
	var s Sink = Nop{}
	assert.NotPanics(t, s.PlayJump)
	assert.NotPanics(t, s.PlayMusic)
}
