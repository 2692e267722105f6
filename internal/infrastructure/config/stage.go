package config

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	TileSize    float32                      `yaml:"tileSize"`
	Origin      PositionConfig               `yaml:"origin"` // center of the bottom-left tile
	Bounds      BoundsConfig                 `yaml:"bounds"`
	PlayerSpawn PositionConfig               `yaml:"playerSpawn"`
	Layers      LayersConfig                 `yaml:"layers"`
	TileMapping map[string]TileMappingConfig `yaml:"tileMapping"`
	Enemies     []EnemySpawnConfig           `yaml:"enemies"`
}

type PositionConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

type BoundsConfig struct {
	MinX float32 `yaml:"minX"`
	MaxX float32 `yaml:"maxX"`
}

type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

type TileMappingConfig struct {
	Type    string  `yaml:"type"`
	Solid   bool    `yaml:"solid"`
	Texture string  `yaml:"texture"`
	Width   float32 `yaml:"width,omitempty"`
	Height  float32 `yaml:"height,omitempty"`
}

type EnemySpawnConfig struct {
	AI          string  `yaml:"ai"`
	State       string  `yaml:"state"`
	X           float32 `yaml:"x"`
	Y           float32 `yaml:"y"`
	Width       float32 `yaml:"width"`
	Height      float32 `yaml:"height"`
	Speed       float32 `yaml:"speed"`
	Gravity     float32 `yaml:"gravity"`
	DetectRange float32 `yaml:"detectRange,omitempty"`
	AttackJump  float32 `yaml:"attackJump,omitempty"`
	Texture     string  `yaml:"texture"`
}
