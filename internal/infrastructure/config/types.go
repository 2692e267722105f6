package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Timestep   TimestepConfig   `yaml:"timestep"`
	Projection ProjectionConfig `yaml:"projection"`
	Player     PlayerConfig     `yaml:"player"`
	Rules      RulesConfig      `yaml:"rules"`
	Audio      AudioConfig      `yaml:"audio"`
	Textures   map[string]Color `yaml:"textures"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Title        string `yaml:"title"`
	Background   Color  `yaml:"background"`
}

// TimestepConfig configures the fixed-step accumulator
type TimestepConfig struct {
	Step     float64 `yaml:"step"`     // seconds per simulation step
	MaxSteps int     `yaml:"maxSteps"` // catch-up cap per frame (0 = unlimited)
}

// ProjectionConfig is the orthographic view volume in world units
type ProjectionConfig struct {
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Top    float32 `yaml:"top"`
}

type PlayerConfig struct {
	Width     float32 `yaml:"width"`
	Height    float32 `yaml:"height"`
	Speed     float32 `yaml:"speed"`
	Gravity   float32 `yaml:"gravity"`
	JumpPower float32 `yaml:"jumpPower"`
	Texture   string  `yaml:"texture"`
}

type RulesConfig struct {
	// Contact selects what happens when an enemy touches the player:
	// "defeat-enemy", "defeat-player" or "stomp"
	Contact string `yaml:"contact"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sampleRate"`
	Volume     float64 `yaml:"volume"`
	// Music loops the background groove while a stage is playing
	Music bool `yaml:"music"`
}

// Color is an RGBA color in config files
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}
