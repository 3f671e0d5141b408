package willow

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/willow-actions/action"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the scene: position, zoom, rotation, and
// viewport. It is also an action target: MoveBy, RotateBy and friends move
// the 2D view, and OrbitCamera drives its 3D eye, center and up vectors.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	eye, center, up mgl64.Vec3

	followTarget  *Node
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	viewMatrix    transform2D
	invViewMatrix transform2D
	dirty         bool

	scrollTween *scrollAnim
}

// newCamera creates a Camera with default values and the given viewport.
// The eye sits just in front of the center looking down -Z with +Y up.
func newCamera(viewport Rect) *Camera {
	c := &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
	c.ResetEye()
	return c
}

// Follow makes the camera track a target node with the given offset and lerp factor.
// A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *Camera) Follow(node *Node, offsetX, offsetY, lerp float64) {
	c.followTarget = node
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// update advances follow and scroll. Called from Scene.Update().
func (c *Camera) update(dt float64) {
	prevX, prevY := c.X, c.Y

	if c.followTarget != nil && !c.followTarget.IsDisposed() {
		tx, ty := transformPoint(c.followTarget.worldTransform, 0, 0)
		c.X += (tx + c.followOffsetX - c.X) * c.followLerp
		c.Y += (ty + c.followOffsetY - c.Y) * c.followLerp
	}

	if s := c.scrollTween; s != nil {
		if !s.doneX {
			val, done := s.tweenX.Update(float32(dt))
			c.X = float64(val)
			s.doneX = done
		}
		if !s.doneY {
			val, done := s.tweenY.Update(float32(dt))
			c.Y = float64(val)
			s.doneY = done
		}
		if s.doneX && s.doneY {
			c.scrollTween = nil
		}
	}

	if c.X != prevX || c.Y != prevY {
		c.dirty = true
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
//	viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
//
// where cx, cy is the viewport center.
func (c *Camera) computeViewMatrix() transform2D {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	c.viewMatrix = mgl64.Translate2D(cx, cy).
		Mul3(mgl64.Scale2D(c.Zoom, c.Zoom)).
		Mul3(mgl64.HomogRotate2D(-c.Rotation)).
		Mul3(mgl64.Translate2D(-c.X, -c.Y))
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.computeViewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// --- Action capabilities ---

// Position returns the camera's world position.
func (c *Camera) Position() (x, y float64) { return c.X, c.Y }

// SetPosition moves the camera.
func (c *Camera) SetPosition(x, y float64) {
	c.X, c.Y = x, y
	c.dirty = true
}

// RotationAngle returns the camera rotation in radians.
func (c *Camera) RotationAngle() float64 { return c.Rotation }

// SetRotation rotates the camera.
func (c *Camera) SetRotation(r float64) {
	c.Rotation = r
	c.dirty = true
}

// Eye returns the 3D eye position.
func (c *Camera) Eye() mgl64.Vec3 { return c.eye }

// SetEye moves the 3D eye.
func (c *Camera) SetEye(eye mgl64.Vec3) { c.eye = eye }

// Center returns the point the eye looks at.
func (c *Camera) Center() mgl64.Vec3 { return c.center }

// SetCenter sets the point the eye looks at.
func (c *Camera) SetCenter(center mgl64.Vec3) { c.center = center }

// Up returns the up vector.
func (c *Camera) Up() mgl64.Vec3 { return c.up }

// SetUp sets the up vector.
func (c *Camera) SetUp(up mgl64.Vec3) { c.up = up }

// ResetEye restores the default eye, center and up vectors.
func (c *Camera) ResetEye() {
	c.eye = mgl64.Vec3{0, 0, action.Epsilon}
	c.center = mgl64.Vec3{}
	c.up = mgl64.Vec3{0, 1, 0}
}

// LookAt returns the view matrix of the 3D eye. If the eye sits on the
// center the identity is returned.
func (c *Camera) LookAt() mgl64.Mat4 {
	if c.eye.Sub(c.center).Len() == 0 {
		return mgl64.Ident4()
	}
	return mgl64.LookAtV(c.eye, c.center, c.up)
}
