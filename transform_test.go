package willow

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approxEqual(got, want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPoint(t *testing.T, name string, m transform2D, x, y, wantX, wantY float64) {
	t.Helper()
	gx, gy := transformPoint(m, x, y)
	if !approxEqual(gx, wantX, epsilon) || !approxEqual(gy, wantY, epsilon) {
		t.Errorf("%s: (%v, %v) -> (%v, %v), want (%v, %v)", name, x, y, gx, gy, wantX, wantY)
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("test")
	got := computeLocalTransform(n)
	if !got.ApproxEqualThreshold(identityTransform(), epsilon) {
		t.Errorf("identity = %v", got)
	}
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("test")
	n.X = 10
	n.Y = 20
	assertPoint(t, "translation", computeLocalTransform(n), 1, 2, 11, 22)
}

func TestLocalTransformScaleAndPivot(t *testing.T) {
	n := NewContainer("test")
	n.ScaleX, n.ScaleY = 2, 3
	n.SetPivot(5, 5)
	m := computeLocalTransform(n)
	// The pivot stays put under scaling.
	assertPoint(t, "pivot", m, 5, 5, 0, 0)
	assertPoint(t, "corner", m, 6, 6, 2, 3)
}

func TestLocalTransformRotation(t *testing.T) {
	n := NewContainer("test")
	n.Rotation = math.Pi / 2
	assertPoint(t, "quarter turn", computeLocalTransform(n), 1, 0, 0, 1)
}

func TestLocalTransformSkew(t *testing.T) {
	n := NewContainer("test")
	n.SkewX = math.Pi / 4
	assertPoint(t, "skew x", computeLocalTransform(n), 0, 1, 1, 1)

	n.SkewX, n.SkewY = 0, math.Pi/4
	assertPoint(t, "skew y", computeLocalTransform(n), 1, 0, 1, 1)
}

// --- World transforms ---

func TestWorldTransformComposesParent(t *testing.T) {
	parent := NewContainer("parent")
	parent.SetPosition(100, 0)
	parent.SetScale(2, 2)
	child := NewContainer("child")
	child.SetPosition(10, 5)
	child.SetAlpha(0.5)
	parent.AddChild(child)
	parent.SetAlpha(0.5)

	updateWorldTransform(parent, identityTransform(), 1, false)
	x, y := child.LocalToWorld(0, 0)
	assertNear(t, "x", x, 120)
	assertNear(t, "y", y, 10)
	assertNear(t, "worldAlpha", child.worldAlpha, 0.25)

	lx, ly := child.WorldToLocal(x, y)
	assertNear(t, "local x", lx, 0)
	assertNear(t, "local y", ly, 0)
}

func TestWorldTransformRecomputesOnlyWhenDirty(t *testing.T) {
	n := NewContainer("n")
	updateWorldTransform(n, identityTransform(), 1, false)
	n.X = 50 // direct field write without MarkDirty
	updateWorldTransform(n, identityTransform(), 1, false)
	if x, _ := n.LocalToWorld(0, 0); x != 0 {
		t.Errorf("x = %v, want stale 0", x)
	}
	n.MarkDirty()
	updateWorldTransform(n, identityTransform(), 1, false)
	if x, _ := n.LocalToWorld(0, 0); x != 50 {
		t.Errorf("x = %v, want 50", x)
	}
}

func TestInvertAffineSingular(t *testing.T) {
	n := NewContainer("flat")
	n.ScaleX = 0
	got := invertAffine(computeLocalTransform(n))
	if got != identityTransform() {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestGeoMMatchesTransform(t *testing.T) {
	n := NewContainer("n")
	n.SetPosition(3, 4)
	n.SetRotation(0.7)
	n.SetScale(1.5, 0.5)
	m := computeLocalTransform(n)
	g := geoM(m)
	gx, gy := g.Apply(2, -1)
	wx, wy := transformPoint(m, 2, -1)
	assertNear(t, "x", gx, wx)
	assertNear(t, "y", gy, wy)
}
