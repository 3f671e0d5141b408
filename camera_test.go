package willow

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/willow-actions/action"
)

var (
	_ action.Positioner = (*Camera)(nil)
	_ action.Rotator    = (*Camera)(nil)
	_ action.Viewpoint  = (*Camera)(nil)
)

func TestCameraCentersOnPosition(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 100, 50
	cam.MarkDirty()
	sx, sy := cam.WorldToScreen(100, 50)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen = (%v, %v), want (400, 300)", sx, sy)
	}
}

func TestCameraZoomAndRoundTrip(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.Zoom = 2
	cam.SetRotation(0.3)
	cam.SetPosition(10, 20)

	ax, ay := cam.WorldToScreen(10, 20)
	bx, by := cam.WorldToScreen(11, 20)
	if d := math.Hypot(bx-ax, by-ay); !approxEqual(d, 2, epsilon) {
		t.Errorf("one world unit = %v screen units, want 2", d)
	}

	wx, wy := cam.ScreenToWorld(123, 456)
	sx, sy := cam.WorldToScreen(wx, wy)
	if !approxEqual(sx, 123, 1e-6) || !approxEqual(sy, 456, 1e-6) {
		t.Errorf("round trip = (%v, %v), want (123, 456)", sx, sy)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(200, 150, 1.0, ease.Linear)
	cam.update(0.5)
	cam.update(0.5)
	if !approxEqual(cam.X, 200, 1e-3) || !approxEqual(cam.Y, 150, 1e-3) {
		t.Errorf("camera = (%v, %v), want (200, 150)", cam.X, cam.Y)
	}
	if cam.scrollTween != nil {
		t.Error("scroll tween should be cleared when done")
	}
}

func TestCameraFollow(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	target := NewContainer("target")
	target.SetPosition(100, 70)
	updateWorldTransform(target, identityTransform(), 1, false)

	cam.Follow(target, 10, 10, 1)
	cam.update(1.0 / 60)
	if !approxEqual(cam.X, 110, epsilon) || !approxEqual(cam.Y, 80, epsilon) {
		t.Errorf("camera = (%v, %v), want (110, 80)", cam.X, cam.Y)
	}

	target.Dispose()
	cam.update(1.0 / 60)
	if !approxEqual(cam.X, 110, epsilon) {
		t.Errorf("camera followed a disposed node to %v", cam.X)
	}
}

func TestCameraDefaultEye(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	if cam.Eye() != (mgl64.Vec3{0, 0, action.Epsilon}) {
		t.Errorf("Eye = %v", cam.Eye())
	}
	if cam.Up() != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("Up = %v", cam.Up())
	}

	cam.SetEye(cam.Center())
	if cam.LookAt() != mgl64.Ident4() {
		t.Error("LookAt should be identity when eye and center coincide")
	}

	cam.SetEye(mgl64.Vec3{0, 0, 10})
	got := cam.LookAt().Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	if !approxEqual(got[2], -10, 1e-9) {
		t.Errorf("center in view space = %v, want z = -10", got)
	}

	cam.ResetEye()
	if cam.Eye() != (mgl64.Vec3{0, 0, action.Epsilon}) {
		t.Errorf("ResetEye left eye at %v", cam.Eye())
	}
}

func TestCameraOrbitAction(t *testing.T) {
	s := NewScene()
	cam := s.NewCamera(Rect{Width: 800, Height: 600})
	s.RunAction(cam, action.NewOrbitCamera(1, action.Orbit{
		Radius: 5, AngleZ: math.Pi / 2, DeltaAngleX: math.Pi,
	}))
	s.Advance(1)

	eye := cam.Eye()
	if !approxEqual(eye[0], -5, 1e-9) || !approxEqual(eye[1], 0, 1e-9) {
		t.Errorf("eye = %v, want (-5, 0, 0)", eye)
	}
	if s.Actions().NumActions() != 0 {
		t.Error("orbit should be retired when done")
	}
}

func TestCameraMoveAction(t *testing.T) {
	s := NewScene()
	cam := s.NewCamera(Rect{Width: 800, Height: 600})
	s.RunAction(cam, action.NewMoveBy(2, mgl64.Vec2{40, 0}))
	s.Advance(1)
	if !approxEqual(cam.X, 20, epsilon) {
		t.Errorf("camera X = %v, want 20", cam.X)
	}
	sx, _ := cam.WorldToScreen(20, 0)
	if !approxEqual(sx, 400, epsilon) {
		t.Errorf("view not refreshed: screen x = %v, want 400", sx)
	}
}
