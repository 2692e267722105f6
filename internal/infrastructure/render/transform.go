// Package render draws the world with an orthographic camera on Ebiten images.
package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// quadToLocal maps a 1x1 source pixel (y down) onto the unit quad
// centered on the origin (y up), the shape every model matrix scales
var quadToLocal = mgl32.Translate3D(-0.5, 0.5, 0).Mul4(mgl32.Scale3D(1, -1, 1))

// Viewport maps normalized device coordinates onto a screen of the given size
func Viewport(screenW, screenH int) mgl32.Mat4 {
	w := float32(screenW) / 2
	h := float32(screenH) / 2
	return mgl32.Translate3D(w, h, 0).Mul4(mgl32.Scale3D(w, -h, 1))
}

// GeoM converts a 4x4 affine transform into Ebiten's 2D GeoM.
// Only the XY part is kept.
func GeoM(m mgl32.Mat4) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, float64(m.At(0, 0)))
	g.SetElement(0, 1, float64(m.At(0, 1)))
	g.SetElement(0, 2, float64(m.At(0, 3)))
	g.SetElement(1, 0, float64(m.At(1, 0)))
	g.SetElement(1, 1, float64(m.At(1, 1)))
	g.SetElement(1, 2, float64(m.At(1, 3)))
	return g
}

// Camera holds the view-projection for one screen size
type Camera struct {
	viewProjection mgl32.Mat4
}

// NewCamera builds a camera for an orthographic volume rendered to screenW x screenH
func NewCamera(left, right, bottom, top float32, screenW, screenH int) Camera {
	projection := mgl32.Ortho2D(left, right, bottom, top)
	return Camera{viewProjection: Viewport(screenW, screenH).Mul4(projection)}
}

// QuadGeoM returns the GeoM that draws a 1x1 image as the quad of the given model matrix
func (c Camera) QuadGeoM(model mgl32.Mat4) ebiten.GeoM {
	return GeoM(c.viewProjection.Mul4(model).Mul4(quadToLocal))
}

// ToScreen projects a world point into screen pixels
func (c Camera) ToScreen(x, y float32) (float64, float64) {
	p := c.viewProjection.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return float64(p.X()), float64(p.Y())
}
