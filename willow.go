package willow

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to an 8-bit premultiplied color.
func (c Color) toRGBA() color.RGBA {
	a := clampUnit(c.A)
	return color.RGBA{
		R: uint8(clampUnit(c.R)*a*255 + 0.5),
		G: uint8(clampUnit(c.G)*a*255 + 0.5),
		B: uint8(clampUnit(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// colorScale returns the ebiten color scale for a tint with the given alpha.
func (c Color) colorScale(alpha float64) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	cs.ScaleAlpha(float32(alpha))
	return cs
}

func clampUnit(v float64) float64 {
	return max(0, min(v, 1))
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renders an image, or its grid when one is active
)
