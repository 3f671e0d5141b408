package willow

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// transform2D is a homogeneous 2D affine matrix (column-major).
type transform2D = mgl64.Mat3

func identityTransform() transform2D { return mgl64.Ident3() }

// computeLocalTransform computes the local affine matrix from the node's
// transform properties.
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Skew -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) transform2D {
	var tanX, tanY float64
	if n.SkewX != 0 {
		tanX = math.Tan(n.SkewX)
	}
	if n.SkewY != 0 {
		tanY = math.Tan(n.SkewY)
	}
	skew := mgl64.Mat3{1, tanY, 0, tanX, 1, 0, 0, 0, 1}

	return mgl64.Translate2D(n.X, n.Y).
		Mul3(mgl64.HomogRotate2D(n.Rotation)).
		Mul3(skew).
		Mul3(mgl64.Scale2D(n.ScaleX, n.ScaleY)).
		Mul3(mgl64.Translate2D(-n.PivotX, -n.PivotY))
}

// invertAffine returns the inverse of m, or the identity if m is singular.
func invertAffine(m transform2D) transform2D {
	if det := m.Det(); det > -1e-12 && det < 1e-12 {
		return identityTransform()
	}
	return m.Inv()
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m transform2D, x, y float64) (float64, float64) {
	p := m.Mul3x1(mgl64.Vec3{x, y, 1})
	return p[0], p[1]
}

// geoM converts m to an ebiten.GeoM.
func geoM(m transform2D) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.At(0, 0))
	g.SetElement(0, 1, m.At(0, 1))
	g.SetElement(0, 2, m.At(0, 2))
	g.SetElement(1, 0, m.At(1, 0))
	g.SetElement(1, 1, m.At(1, 1))
	g.SetElement(1, 2, m.At(1, 2))
	return g
}

// updateWorldTransform recomputes a node's worldTransform and worldAlpha.
// parentRecomputed forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parent transform2D, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parent.Mul3(computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetSkew sets the node's SkewX and SkewY and marks it dirty.
func (n *Node) SetSkew(kx, ky float64) {
	n.SkewX = kx
	n.SkewY = ky
	n.transformDirty = true
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// SetAlpha sets the node's alpha and marks it dirty.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(n.worldTransform), wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.worldTransform, lx, ly)
}
