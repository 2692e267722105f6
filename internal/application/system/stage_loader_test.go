package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/riseai/internal/domain/entity"
	"github.com/younwookim/riseai/internal/domain/world"
	"github.com/younwookim/riseai/internal/infrastructure/config"
)

const testConfigPath = "../../../cmd/game/configs"

func loadTestWorld(t *testing.T) (*config.GameConfig, *world.World) {
	t.Helper()
	loader := config.NewLoader(testConfigPath)

	gameCfg, err := loader.LoadGame()
	require.NoError(t, err)
	stageCfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	w, err := LoadStage(gameCfg, stageCfg)
	require.NoError(t, err)
	return gameCfg, w
}

func TestLoadStage_Demo(t *testing.T) {
	_, w := loadTestWorld(t)

	t.Run("platform row", func(t *testing.T) {
		require.Len(t, w.Platforms, 11)
		for i, p := range w.Platforms {
			assert.InDelta(t, -4.5+float32(i), p.Position.X(), 1e-5)
			assert.InDelta(t, -3.25, p.Position.Y(), 1e-5)
			assert.Equal(t, float32(1), p.Width)
			assert.Equal(t, "jungle", p.Texture)
			assert.True(t, p.Active)
		}
	})

	t.Run("player", func(t *testing.T) {
		require.NotNil(t, w.Player)
		assert.Equal(t, float32(-4), w.Player.Position.X())
		assert.Equal(t, float32(-1), w.Player.Position.Y())
		assert.Equal(t, float32(0.8), w.Player.Width)
		assert.Equal(t, float32(1.5), w.Player.Speed)
		assert.Equal(t, float32(-3), w.Player.Acceleration.Y())
		assert.False(t, w.Player.WasDefeated)
	})

	t.Run("enemies", func(t *testing.T) {
		require.Len(t, w.Enemies, 3)

		assert.Equal(t, entity.AIWaitAndGo, w.Enemies[0].AIType)
		assert.Equal(t, entity.AIIdle, w.Enemies[0].AIState)
		assert.Equal(t, float32(3), w.Enemies[0].DetectRange)

		assert.Equal(t, entity.AIWalker, w.Enemies[1].AIType)
		assert.Equal(t, entity.AIWalking, w.Enemies[1].AIState)

		assert.Equal(t, entity.AIWalker, w.Enemies[2].AIType)
		assert.Equal(t, entity.AIAttacking, w.Enemies[2].AIState)
		assert.Equal(t, float32(2.5), w.Enemies[2].AttackJump)

		for i, e := range w.Enemies {
			assert.Equal(t, entity.EntityID(i+1), e.ID)
			assert.True(t, e.Active)
			assert.Equal(t, float32(-5), e.Acceleration.Y())
		}
	})

	assert.Equal(t, world.Bounds{MinX: -5, MaxX: 5}, w.Bounds)
}

func TestLoadStage_Errors(t *testing.T) {
	gameCfg := &config.GameConfig{}

	tests := []struct {
		name  string
		spawn config.EnemySpawnConfig
	}{
		{"unknown ai type", config.EnemySpawnConfig{AI: "flyer", State: "idle"}},
		{"unknown ai state", config.EnemySpawnConfig{AI: "walker", State: "sleeping"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := &config.StageConfig{
				TileSize: 1,
				Enemies:  []config.EnemySpawnConfig{tt.spawn},
			}

			w, err := LoadStage(gameCfg, stage)
			assert.Error(t, err)
			assert.Nil(t, w)
		})
	}
}

func TestBuildPlatforms_RowsCountFromBottom(t *testing.T) {
	stage := &config.StageConfig{
		TileSize: 0.5,
		Origin:   config.PositionConfig{X: 1, Y: 2},
		Layers: config.LayersConfig{Collision: []string{
			"#.",
			".#",
		}},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "platform", Solid: true, Texture: "stone"},
		},
	}

	platforms := buildPlatforms(stage)

	require.Len(t, platforms, 2)
	// Top row
	assert.Equal(t, float32(1), platforms[0].Position.X())
	assert.Equal(t, float32(2.5), platforms[0].Position.Y())
	// Bottom row
	assert.Equal(t, float32(1.5), platforms[1].Position.X())
	assert.Equal(t, float32(2), platforms[1].Position.Y())
	assert.Equal(t, float32(0.5), platforms[1].Height)
}
