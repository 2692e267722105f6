package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/riseai/internal/domain/entity"
	"github.com/younwookim/riseai/internal/domain/world"
	"github.com/younwookim/riseai/internal/infrastructure/config"
)

// fallback is used for texture keys missing from the palette
var fallback = color.RGBA{255, 0, 255, 255}

// Renderer draws platforms, enemies and the player as solid quads
type Renderer struct {
	camera     Camera
	screenW    int
	screenH    int
	background color.RGBA
	palette    map[string]color.RGBA
	textures   map[string]*ebiten.Image
}

// New creates a renderer from the display, projection and texture config.
// Texture images are created lazily on first draw.
func New(cfg *config.GameConfig) *Renderer {
	palette := make(map[string]color.RGBA, len(cfg.Textures))
	for key, c := range cfg.Textures {
		palette[key] = toRGBA(c)
	}

	p := cfg.Projection
	return &Renderer{
		camera:     NewCamera(p.Left, p.Right, p.Bottom, p.Top, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
		screenW:    cfg.Display.ScreenWidth,
		screenH:    cfg.Display.ScreenHeight,
		background: toRGBA(cfg.Display.Background),
		palette:    palette,
		textures:   make(map[string]*ebiten.Image),
	}
}

// Camera returns the renderer's camera
func (r *Renderer) Camera() Camera {
	return r.camera
}

// Color returns the palette color for a texture key
func (r *Renderer) Color(texture string) color.RGBA {
	if c, ok := r.palette[texture]; ok {
		return c
	}
	return fallback
}

// Draw renders every active entity: platforms, then enemies, then the player
func (r *Renderer) Draw(screen *ebiten.Image, w *world.World) {
	screen.Fill(r.background)

	for i := range w.Platforms {
		r.drawBody(screen, &w.Platforms[i].Body)
	}
	for i := range w.Enemies {
		r.drawBody(screen, &w.Enemies[i].Body)
	}
	if w.Player != nil {
		r.drawBody(screen, &w.Player.Body)
	}
}

// DrawMessage prints a line of text centered on the screen
func (r *Renderer) DrawMessage(screen *ebiten.Image, msg string) {
	// Debug font glyphs are 6x16 pixels
	x := r.screenW/2 - len(msg)*3
	y := r.screenH/2 - 8
	ebitenutil.DebugPrintAt(screen, msg, x, y)
}

func (r *Renderer) drawBody(screen *ebiten.Image, b *entity.Body) {
	if !b.Active {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = r.camera.QuadGeoM(b.Model)
	screen.DrawImage(r.texture(b.Texture), op)
}

func (r *Renderer) texture(key string) *ebiten.Image {
	if img, ok := r.textures[key]; ok {
		return img
	}
	img := ebiten.NewImage(1, 1)
	img.Fill(r.Color(key))
	r.textures[key] = img
	return img
}

func toRGBA(c config.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
