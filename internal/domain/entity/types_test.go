package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAIType(t *testing.T) {
	tests := []struct {
		in      string
		want    AIType
		wantErr bool
	}{
		{"walker", AIWalker, false},
		{"waitandgo", AIWaitAndGo, false},
		{"wait-and-go", AIWaitAndGo, false},
		{"flyer", AIWalker, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAIType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParseAIType(t, got.String()))
		})
	}
}

func mustParseAIType(t *testing.T, s string) AIType {
	t.Helper()
	v, err := ParseAIType(s)
	require.NoError(t, err)
	return v
}

func TestParseAIState(t *testing.T) {
	for _, st := range []AIState{AIIdle, AIWalking, AIAttacking} {
		got, err := ParseAIState(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := ParseAIState("sleeping")
	assert.Error(t, err)
	assert.Equal(t, "unknown", AIState(9).String())
}
