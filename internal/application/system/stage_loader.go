package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/riseai/internal/domain/entity"
	"github.com/younwookim/riseai/internal/domain/world"
	"github.com/younwookim/riseai/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a World with settled platforms
func LoadStage(gameCfg *config.GameConfig, cfg *config.StageConfig) (*world.World, error) {
	player := newPlayer(gameCfg.Player, cfg.PlayerSpawn)

	platforms := buildPlatforms(cfg)

	enemies := make([]entity.Enemy, 0, len(cfg.Enemies))
	for i, spawn := range cfg.Enemies {
		enemy, err := newEnemy(entity.EntityID(i+1), spawn)
		if err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		enemies = append(enemies, enemy)
	}

	bounds := world.Bounds{MinX: cfg.Bounds.MinX, MaxX: cfg.Bounds.MaxX}

	// Platforms get their resting update before the world is snapshotted
	NewPhysicsSystem(bounds, nil).SettlePlatforms(platforms)

	return world.New(player, enemies, platforms, bounds), nil
}

func newPlayer(cfg config.PlayerConfig, spawn config.PositionConfig) *entity.Player {
	player := entity.NewPlayer(spawn.X, spawn.Y, cfg.Texture)
	player.Width = cfg.Width
	player.Height = cfg.Height
	player.Speed = cfg.Speed
	player.JumpPower = cfg.JumpPower
	player.Acceleration = mgl32.Vec3{0, cfg.Gravity, 0}
	player.UpdateModel()
	return player
}

func newEnemy(id entity.EntityID, spawn config.EnemySpawnConfig) (entity.Enemy, error) {
	aiType, err := entity.ParseAIType(spawn.AI)
	if err != nil {
		return entity.Enemy{}, err
	}
	aiState, err := entity.ParseAIState(spawn.State)
	if err != nil {
		return entity.Enemy{}, err
	}

	enemy := entity.NewEnemy(id, spawn.X, spawn.Y, spawn.Texture, aiType, aiState)
	if spawn.Width > 0 {
		enemy.Width = spawn.Width
	}
	if spawn.Height > 0 {
		enemy.Height = spawn.Height
	}
	enemy.Speed = spawn.Speed
	enemy.Acceleration = mgl32.Vec3{0, spawn.Gravity, 0}
	enemy.DetectRange = spawn.DetectRange
	enemy.AttackJump = spawn.AttackJump
	enemy.UpdateModel()
	return enemy, nil
}

// buildPlatforms turns the collision layer into platform entities.
// Row 0 is the top row; the last row sits at Origin.Y.
func buildPlatforms(cfg *config.StageConfig) []entity.Platform {
	rows := len(cfg.Layers.Collision)
	platforms := make([]entity.Platform, 0, rows*8)

	for r, row := range cfg.Layers.Collision {
		y := cfg.Origin.Y + float32(rows-1-r)*cfg.TileSize
		for c, char := range row {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok || !mapping.Solid {
				continue
			}

			x := cfg.Origin.X + float32(c)*cfg.TileSize
			p := entity.NewPlatform(x, y, mapping.Texture)
			p.Width = cfg.TileSize
			p.Height = cfg.TileSize
			if mapping.Width > 0 {
				p.Width = mapping.Width
			}
			if mapping.Height > 0 {
				p.Height = mapping.Height
			}
			platforms = append(platforms, p)
		}
	}

	return platforms
}
