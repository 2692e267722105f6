package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroove_Length(t *testing.T) {
	rate := beep.SampleRate(8000)
	g := NewGroove(rate)

	assert.Equal(t, rate.N(MusicBeat)*len(bassLine), g.Len())

	buf := make([][2]float64, g.Len()+100)
	n, ok := g.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, g.Len(), n)
	assert.Equal(t, g.Len(), g.Position())

	n, ok = g.Stream(buf)
	assert.False(t, ok)
	assert.Equal(t, 0, n)
}

func TestGroove_LoopWrapsAround(t *testing.T) {
	rate := beep.SampleRate(4000)
	bar := NewGroove(rate).Len()

	looped := beep.Loop(-1, NewGroove(rate))
	buf := make([][2]float64, 2*bar+10)
	n, ok := looped.Stream(buf)
	require.True(t, ok)
	require.Equal(t, len(buf), n)

	for i := 0; i < bar+10; i++ {
		require.Equal(t, buf[i], buf[bar+i], "sample %d differs after wrap", i)
	}
}

func TestGroove_Seek(t *testing.T) {
	rate := beep.SampleRate(4000)
	g := NewGroove(rate)

	require.NoError(t, g.Seek(g.Len()/2))
	assert.Equal(t, g.Len()/2, g.Position())
	assert.Error(t, g.Seek(-1))
	assert.Error(t, g.Seek(g.Len()+1))
	assert.NoError(t, g.Err())
}

func TestRenderPCM_MusicBar(t *testing.T) {
	rate := beep.SampleRate(8000)

	pcm := RenderPCM(NewMusic(rate, 0.4))
	assert.Len(t, pcm, NewGroove(rate).Len()*4)

	silent := RenderPCM(NewMusic(rate, 0))
	for _, b := range silent {
		if b != 0 {
			t.Fatal("muted music produced non-zero sample")
		}
	}
}
