package action

import "github.com/go-gl/mathgl/mgl64"

const eps = 1e-9

// fakeNode implements every target capability the leaves use.
type fakeNode struct {
	x, y     float64
	rot      float64
	sx, sy   float64
	kx, ky   float64
	visible  bool
	alpha    float64
	r, g, b  float64
	pct      float64
	detached bool

	eye, center, up mgl64.Vec3
	grid            Grid

	// moves records every SetPosition call.
	moves []mgl64.Vec2
}

func newFakeNode() *fakeNode {
	return &fakeNode{sx: 1, sy: 1, visible: true, alpha: 1, r: 1, g: 1, b: 1, up: mgl64.Vec3{0, 1, 0}}
}

func (n *fakeNode) SetPosition(x, y float64) {
	n.x, n.y = x, y
	n.moves = append(n.moves, mgl64.Vec2{x, y})
}

func (n *fakeNode) Position() (float64, float64)      { return n.x, n.y }
func (n *fakeNode) RotationAngle() float64            { return n.rot }
func (n *fakeNode) SetRotation(r float64)             { n.rot = r }
func (n *fakeNode) Scale() (float64, float64)         { return n.sx, n.sy }
func (n *fakeNode) SetScale(sx, sy float64)           { n.sx, n.sy = sx, sy }
func (n *fakeNode) Skew() (float64, float64)          { return n.kx, n.ky }
func (n *fakeNode) SetSkew(kx, ky float64)            { n.kx, n.ky = kx, ky }
func (n *fakeNode) IsVisible() bool                   { return n.visible }
func (n *fakeNode) SetVisible(v bool)                 { n.visible = v }
func (n *fakeNode) Opacity() float64                  { return n.alpha }
func (n *fakeNode) SetAlpha(a float64)                { n.alpha = a }
func (n *fakeNode) Tint() (float64, float64, float64) { return n.r, n.g, n.b }
func (n *fakeNode) SetTint(r, g, b float64)           { n.r, n.g, n.b = r, g, b }
func (n *fakeNode) Percentage() float64               { return n.pct }
func (n *fakeNode) SetPercentage(p float64)           { n.pct = p }
func (n *fakeNode) RemoveFromParent()                 { n.detached = true }
func (n *fakeNode) Eye() mgl64.Vec3                   { return n.eye }
func (n *fakeNode) SetEye(v mgl64.Vec3)               { n.eye = v }
func (n *fakeNode) Center() mgl64.Vec3                { return n.center }
func (n *fakeNode) SetCenter(v mgl64.Vec3)            { n.center = v }
func (n *fakeNode) Up() mgl64.Vec3                    { return n.up }
func (n *fakeNode) SetUp(v mgl64.Vec3)                { n.up = v }
func (n *fakeNode) Grid() Grid                        { return n.grid }
func (n *fakeNode) SetGrid(g Grid)                    { n.grid = g }
func (n *fakeNode) NewGrid(cols, rows int) Grid       { return newFakeGrid(cols, rows) }

// plainTarget has no capabilities at all.
type plainTarget struct{}

// fakeGrid is a flat vertex grid with original vertices at (i*10, j*10, 0).
type fakeGrid struct {
	cols, rows int
	verts      []mgl64.Vec3
	orig       []mgl64.Vec3
	active     bool
	reuse      int
}

func newFakeGrid(cols, rows int) *fakeGrid {
	g := &fakeGrid{cols: cols, rows: rows}
	n := (cols + 1) * (rows + 1)
	g.verts = make([]mgl64.Vec3, n)
	g.orig = make([]mgl64.Vec3, n)
	for i := 0; i <= cols; i++ {
		for j := 0; j <= rows; j++ {
			v := mgl64.Vec3{float64(i * 10), float64(j * 10), 0}
			g.verts[g.idx(i, j)] = v
			g.orig[g.idx(i, j)] = v
		}
	}
	return g
}

func (g *fakeGrid) idx(i, j int) int                   { return i*(g.rows+1) + j }
func (g *fakeGrid) Size() (int, int)                   { return g.cols, g.rows }
func (g *fakeGrid) Vertex(i, j int) mgl64.Vec3         { return g.verts[g.idx(i, j)] }
func (g *fakeGrid) OriginalVertex(i, j int) mgl64.Vec3 { return g.orig[g.idx(i, j)] }
func (g *fakeGrid) SetVertex(i, j int, v mgl64.Vec3)   { g.verts[g.idx(i, j)] = v }
func (g *fakeGrid) Active() bool                       { return g.active }
func (g *fakeGrid) SetActive(a bool)                   { g.active = a }
func (g *fakeGrid) ReuseCount() int                    { return g.reuse }
func (g *fakeGrid) SetReuseCount(n int)                { g.reuse = n }
func (g *fakeGrid) Reuse() {
	if g.reuse > 0 {
		copy(g.orig, g.verts)
		g.reuse--
	}
}

// start binds a to target and consumes the zeroing first tick, as the
// scheduler does when an action is added.
func start(a Action, target Target) {
	a.StartWithTarget(target)
	a.Step(0)
}

// drive starts a and steps it with each dt in turn.
func drive(a Action, target Target, dts ...float64) {
	start(a, target)
	for _, dt := range dts {
		a.Step(dt)
	}
}

// recorder is an interval action that records every progress it is given.
type recorder struct {
	Interval
	ts     []float64
	starts int
	stops  int
}

func newRecorder(d float64) *recorder {
	r := &recorder{}
	r.init(r, d)
	return r
}

func (r *recorder) StartWithTarget(target Target) {
	r.Interval.StartWithTarget(target)
	r.starts++
}

func (r *recorder) Stop() {
	r.stops++
	r.Interval.Stop()
}

func (r *recorder) Update(t float64)          { r.ts = append(r.ts, t) }
func (r *recorder) Reverse() FiniteTimeAction { return newRecorder(r.duration) }
func (r *recorder) Clone() Action             { return newRecorder(r.duration) }

func (r *recorder) last() float64 {
	if len(r.ts) == 0 {
		return -1
	}
	return r.ts[len(r.ts)-1]
}
