package willow

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// eyeDistanceRatio is the height-to-eye-distance ratio of the default
// 60 degree perspective the grid is projected with.
const eyeDistanceRatio = 1.1566

// Grid3D is a deformable grid of (cols+1) x (rows+1) vertices laid over a
// rectangle. Grid actions move its vertices; the scene draws an image
// through the deformed grid with Mesh.
type Grid3D struct {
	cols, rows int
	bounds     Rect
	verts      []mgl64.Vec3
	orig       []mgl64.Vec3
	active     bool
	reuse      int

	// Preallocated mesh buffers, grown on demand and never shrunk.
	meshVerts   []ebiten.Vertex
	meshIndices []uint16
}

// NewGrid3D creates a flat grid of cols x rows cells covering bounds.
// Panics if either dimension is less than 1.
func NewGrid3D(cols, rows int, bounds Rect) *Grid3D {
	if cols < 1 || rows < 1 {
		panic(fmt.Sprintf("willow: grid size must be positive, got %dx%d", cols, rows))
	}
	g := &Grid3D{cols: cols, rows: rows, bounds: bounds}
	n := (cols + 1) * (rows + 1)
	g.verts = make([]mgl64.Vec3, n)
	g.orig = make([]mgl64.Vec3, n)
	cw := bounds.Width / float64(cols)
	ch := bounds.Height / float64(rows)
	for i := 0; i <= cols; i++ {
		for j := 0; j <= rows; j++ {
			v := mgl64.Vec3{bounds.X + float64(i)*cw, bounds.Y + float64(j)*ch, 0}
			g.verts[g.index(i, j)] = v
			g.orig[g.index(i, j)] = v
		}
	}
	return g
}

func (g *Grid3D) index(i, j int) int { return i*(g.rows+1) + j }

// Size returns the number of cells.
func (g *Grid3D) Size() (cols, rows int) { return g.cols, g.rows }

// Bounds returns the rectangle the grid covers.
func (g *Grid3D) Bounds() Rect { return g.bounds }

// Vertex returns the current position of vertex (i, j).
func (g *Grid3D) Vertex(i, j int) mgl64.Vec3 { return g.verts[g.index(i, j)] }

// OriginalVertex returns the undeformed position of vertex (i, j).
func (g *Grid3D) OriginalVertex(i, j int) mgl64.Vec3 { return g.orig[g.index(i, j)] }

// SetVertex moves vertex (i, j).
func (g *Grid3D) SetVertex(i, j int, v mgl64.Vec3) { g.verts[g.index(i, j)] = v }

// Active reports whether the grid replaces normal drawing of its node.
func (g *Grid3D) Active() bool { return g.active }

// SetActive turns grid drawing on or off. Turning it off restores the
// original vertices.
func (g *Grid3D) SetActive(active bool) {
	g.active = active
	if !active {
		copy(g.verts, g.orig)
	}
}

// ReuseCount returns how many more grid actions may start from the current
// deformation.
func (g *Grid3D) ReuseCount() int { return g.reuse }

// SetReuseCount sets the reuse count.
func (g *Grid3D) SetReuseCount(n int) { g.reuse = n }

// Reuse bakes the current vertices in as the originals and spends one reuse.
func (g *Grid3D) Reuse() {
	if g.reuse > 0 {
		copy(g.orig, g.verts)
		g.reuse--
	}
}

// project maps a deformed vertex to the plane z = 0, as seen from an eye on
// the grid's center axis.
func (g *Grid3D) project(v mgl64.Vec3) (x, y float64) {
	eye := g.bounds.Height / eyeDistanceRatio
	if eye <= v[2] || eye == 0 {
		return v[0], v[1]
	}
	cx := g.bounds.X + g.bounds.Width/2
	cy := g.bounds.Y + g.bounds.Height/2
	f := eye / (eye - v[2])
	return cx + (v[0]-cx)*f, cy + (v[1]-cy)*f
}

// Mesh returns the triangles that draw src through the deformed grid. src
// is mapped onto the grid's original layout. The returned slices are
// reused by the next call.
func (g *Grid3D) Mesh(src Rect, tint Color, alpha float64) ([]ebiten.Vertex, []uint16) {
	n := (g.cols + 1) * (g.rows + 1)
	if cap(g.meshVerts) < n {
		g.meshVerts = make([]ebiten.Vertex, n)
	}
	g.meshVerts = g.meshVerts[:n]

	r := float32(tint.R * alpha)
	gr := float32(tint.G * alpha)
	b := float32(tint.B * alpha)
	a := float32(alpha)
	for i := 0; i <= g.cols; i++ {
		for j := 0; j <= g.rows; j++ {
			x, y := g.project(g.Vertex(i, j))
			g.meshVerts[g.index(i, j)] = ebiten.Vertex{
				DstX:   float32(x),
				DstY:   float32(y),
				SrcX:   float32(src.X + src.Width*float64(i)/float64(g.cols)),
				SrcY:   float32(src.Y + src.Height*float64(j)/float64(g.rows)),
				ColorR: r,
				ColorG: gr,
				ColorB: b,
				ColorA: a,
			}
		}
	}

	need := g.cols * g.rows * 6
	if cap(g.meshIndices) < need {
		g.meshIndices = make([]uint16, 0, need)
	}
	g.meshIndices = g.meshIndices[:0]
	for i := 0; i < g.cols; i++ {
		for j := 0; j < g.rows; j++ {
			tl := uint16(g.index(i, j))
			bl := uint16(g.index(i, j+1))
			tr := uint16(g.index(i+1, j))
			br := uint16(g.index(i+1, j+1))
			g.meshIndices = append(g.meshIndices, tl, tr, bl, tr, br, bl)
		}
	}
	return g.meshVerts, g.meshIndices
}
