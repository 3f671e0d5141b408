package willow

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/willow-actions/action"
)

// nodeIDCounter is a plain counter (no atomic; willow is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used
// for all node types. Besides the exported fields, Node implements every
// target capability of the action package, so any action can run on it.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	PivotX       float64
	PivotY       float64

	// Computed during Scene.Update.
	worldTransform transform2D
	worldAlpha     float64
	transformDirty bool

	Alpha   float64
	Visible bool
	Color   Color

	// Progress is the fill percentage in [0, 100] for progress-bar nodes.
	Progress float64

	// Image is drawn by sprite nodes. Width and Height default to its size
	// and bound the node's grid.
	Image         *ebiten.Image
	Width, Height float64

	// Metadata
	UserData any
	EntityID uint32

	grid     action.Grid
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
	n.worldTransform = identityTransform()
	n.worldAlpha = 1
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node that draws img. A nil img is allowed; the
// node then draws nothing until Image is set.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Image: img}
	nodeDefaults(n)
	if img != nil {
		b := img.Bounds()
		n.Width, n.Height = float64(b.Dx()), float64(b.Dy())
	}
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("willow: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("willow: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("willow: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed, and
// recursively disposes all descendants. Actions scheduled on disposed nodes
// are dropped by the ActionManager on its next update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Image = nil
	n.grid = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Action capabilities ---

// Position returns the local position.
func (n *Node) Position() (x, y float64) { return n.X, n.Y }

// RotationAngle returns the local rotation in radians.
func (n *Node) RotationAngle() float64 { return n.Rotation }

// Scale returns the local scale factors.
func (n *Node) Scale() (sx, sy float64) { return n.ScaleX, n.ScaleY }

// Skew returns the local skew angles in radians.
func (n *Node) Skew() (kx, ky float64) { return n.SkewX, n.SkewY }

// IsVisible reports whether the node is drawn.
func (n *Node) IsVisible() bool { return n.Visible }

// SetVisible shows or hides the node and its subtree.
func (n *Node) SetVisible(v bool) { n.Visible = v }

// Opacity returns the node's own alpha.
func (n *Node) Opacity() float64 { return n.Alpha }

// Tint returns the RGB components of the node color.
func (n *Node) Tint() (r, g, b float64) { return n.Color.R, n.Color.G, n.Color.B }

// SetTint sets the RGB components of the node color, keeping its alpha.
func (n *Node) SetTint(r, g, b float64) {
	n.Color.R, n.Color.G, n.Color.B = r, g, b
}

// Percentage returns Progress.
func (n *Node) Percentage() float64 { return n.Progress }

// SetPercentage sets Progress, clamped to [0, 100].
func (n *Node) SetPercentage(p float64) { n.Progress = max(0, min(p, 100)) }

// Grid returns the node's grid, or nil if it has none.
func (n *Node) Grid() action.Grid { return n.grid }

// SetGrid replaces the node's grid. Panics if g is not a *Grid3D, the only
// grid the scene knows how to draw.
func (n *Node) SetGrid(g action.Grid) {
	if g == nil {
		n.grid = nil
		return
	}
	if _, ok := g.(*Grid3D); !ok {
		panic(fmt.Sprintf("willow: node %q cannot draw grid %T", n.Name, g))
	}
	n.grid = g
}

// NewGrid creates a grid of cols x rows cells over the node's bounds.
func (n *Node) NewGrid(cols, rows int) action.Grid {
	return NewGrid3D(cols, rows, Rect{Width: n.Width, Height: n.Height})
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
