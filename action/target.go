package action

import "github.com/go-gl/mathgl/mgl64"

// Positioner is a target with a 2D position.
type Positioner interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
}

// Rotator is a target with a rotation in radians.
type Rotator interface {
	RotationAngle() float64
	SetRotation(r float64)
}

// Scaler is a target with independent X and Y scale factors.
type Scaler interface {
	Scale() (sx, sy float64)
	SetScale(sx, sy float64)
}

// Skewer is a target with X and Y skew angles in radians.
type Skewer interface {
	Skew() (kx, ky float64)
	SetSkew(kx, ky float64)
}

// Visibility is a target that can be shown and hidden.
type Visibility interface {
	IsVisible() bool
	SetVisible(v bool)
}

// Tintable is the RGBA capability. Components are in [0, 1]. Fade and tint
// actions bound to a target without it do nothing.
type Tintable interface {
	Opacity() float64
	SetAlpha(a float64)
	Tint() (r, g, b float64)
	SetTint(r, g, b float64)
}

// Progressor is a target with a fill percentage in [0, 100], such as a
// progress bar.
type Progressor interface {
	Percentage() float64
	SetPercentage(p float64)
}

// Detachable is a target that can remove itself from its parent.
type Detachable interface {
	RemoveFromParent()
}

// Viewpoint is a 3D look-at camera.
type Viewpoint interface {
	Eye() mgl64.Vec3
	SetEye(eye mgl64.Vec3)
	Center() mgl64.Vec3
	SetCenter(center mgl64.Vec3)
	Up() mgl64.Vec3
	SetUp(up mgl64.Vec3)
}

// Grid is a deformable vertex grid of (cols+1) x (rows+1) vertices laid over
// a target.
type Grid interface {
	Size() (cols, rows int)
	Vertex(i, j int) mgl64.Vec3
	OriginalVertex(i, j int) mgl64.Vec3
	SetVertex(i, j int, v mgl64.Vec3)

	Active() bool
	SetActive(active bool)

	// ReuseCount is how many more grid actions may start from the current
	// deformation instead of the original vertices.
	ReuseCount() int
	SetReuseCount(n int)
	// Reuse bakes the current vertices in as the new originals and spends
	// one reuse.
	Reuse()
}

// GridHolder is a target that carries a Grid.
type GridHolder interface {
	Grid() Grid
	SetGrid(g Grid)
	NewGrid(cols, rows int) Grid
}
