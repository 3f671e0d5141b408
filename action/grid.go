package action

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// gridAction is the clock and grid binding shared by the grid leaves. The
// grid is created on start unless the target's current grid has reuses
// left, in which case the new effect continues from its deformation.
type gridAction struct {
	Interval
	cols, rows int
	grid       Grid
}

func (g *gridAction) init(self updater, duration float64, cols, rows int) {
	if cols < 1 || rows < 1 {
		panic(fmt.Sprintf("action: grid size must be positive, got %dx%d", cols, rows))
	}
	g.Interval.init(self, duration)
	g.cols, g.rows = cols, rows
}

// GridSize returns the number of cells.
func (g *gridAction) GridSize() (cols, rows int) { return g.cols, g.rows }

func (g *gridAction) StartWithTarget(target Target) {
	g.Interval.StartWithTarget(target)
	holder := mustHave[GridHolder](target, "grid action")
	cur := holder.Grid()
	if cur != nil && cur.ReuseCount() > 0 {
		c, r := cur.Size()
		if !cur.Active() || c != g.cols || r != g.rows {
			panic(fmt.Sprintf("action: cannot reuse grid %dx%d for a %dx%d grid action", c, r, g.cols, g.rows))
		}
		cur.Reuse()
		g.grid = cur
		return
	}
	if cur != nil && cur.Active() {
		cur.SetActive(false)
	}
	g.grid = holder.NewGrid(g.cols, g.rows)
	holder.SetGrid(g.grid)
	g.grid.SetActive(true)
}

// deform replaces every vertex with fn applied to its original position.
func (g *gridAction) deform(fn func(i, j int, v mgl64.Vec3) mgl64.Vec3) {
	for i := 0; i <= g.cols; i++ {
		for j := 0; j <= g.rows; j++ {
			g.grid.SetVertex(i, j, fn(i, j, g.grid.OriginalVertex(i, j)))
		}
	}
}

// --- Waves3D ---

// Waves3D ripples the grid in Z with a sine wave running diagonally.
type Waves3D struct {
	gridAction
	waves         int
	amplitude     float64
	amplitudeRate float64
}

// NewWaves3D runs waves full waves of the given amplitude over duration.
func NewWaves3D(duration float64, cols, rows, waves int, amplitude float64) *Waves3D {
	a := &Waves3D{waves: waves, amplitude: amplitude, amplitudeRate: 1}
	a.init(a, duration, cols, rows)
	return a
}

// SetAmplitudeRate scales the amplitude.
func (a *Waves3D) SetAmplitudeRate(r float64) { a.amplitudeRate = r }

func (a *Waves3D) Update(t float64) {
	amp := a.amplitude * a.amplitudeRate
	phase := math.Pi * t * float64(a.waves) * 2
	a.deform(func(_, _ int, v mgl64.Vec3) mgl64.Vec3 {
		v[2] += math.Sin(phase+(v[1]+v[0])*0.01) * amp
		return v
	})
}

func (a *Waves3D) Reverse() FiniteTimeAction { return NewReverseTime(a.clone()) }
func (a *Waves3D) Clone() Action             { return a.clone() }

func (a *Waves3D) clone() *Waves3D {
	c := NewWaves3D(a.duration, a.cols, a.rows, a.waves, a.amplitude)
	c.amplitudeRate = a.amplitudeRate
	return c
}

// --- Ripple3D ---

// Ripple3D sends circular waves outward from a point.
type Ripple3D struct {
	gridAction
	center        mgl64.Vec2
	radius        float64
	waves         int
	amplitude     float64
	amplitudeRate float64
}

// NewRipple3D ripples the grid around center out to radius.
func NewRipple3D(duration float64, cols, rows int, center mgl64.Vec2, radius float64, waves int, amplitude float64) *Ripple3D {
	a := &Ripple3D{center: center, radius: radius, waves: waves, amplitude: amplitude, amplitudeRate: 1}
	a.init(a, duration, cols, rows)
	return a
}

// SetAmplitudeRate scales the amplitude.
func (a *Ripple3D) SetAmplitudeRate(r float64) { a.amplitudeRate = r }

func (a *Ripple3D) Update(t float64) {
	amp := a.amplitude * a.amplitudeRate
	a.deform(func(_, _ int, v mgl64.Vec3) mgl64.Vec3 {
		r := a.center.Sub(v.Vec2()).Len()
		if r < a.radius {
			r = a.radius - r
			rate := math.Pow(r/a.radius, 2)
			v[2] += math.Sin(t*math.Pi*float64(a.waves)*2+r*0.1) * amp * rate
		}
		return v
	})
}

func (a *Ripple3D) Reverse() FiniteTimeAction { return NewReverseTime(a.clone()) }
func (a *Ripple3D) Clone() Action             { return a.clone() }

func (a *Ripple3D) clone() *Ripple3D {
	c := NewRipple3D(a.duration, a.cols, a.rows, a.center, a.radius, a.waves, a.amplitude)
	c.amplitudeRate = a.amplitudeRate
	return c
}

// --- Lens3D ---

// Lens3D bulges the grid under a circular lens.
type Lens3D struct {
	gridAction
	center  mgl64.Vec2
	radius  float64
	effect  float64
	concave bool
	dirty   bool
}

// NewLens3D places a lens of radius over center.
func NewLens3D(duration float64, cols, rows int, center mgl64.Vec2, radius float64) *Lens3D {
	a := &Lens3D{center: center, radius: radius, effect: 0.7}
	a.init(a, duration, cols, rows)
	return a
}

// SetLensEffect sets the strength of the lens. The default is 0.7.
func (a *Lens3D) SetLensEffect(e float64) { a.effect = e; a.dirty = true }

// SetConcave makes the lens push the grid away instead of toward the viewer.
func (a *Lens3D) SetConcave(c bool) { a.concave = c; a.dirty = true }

// SetCenter moves the lens.
func (a *Lens3D) SetCenter(c mgl64.Vec2) {
	if c != a.center {
		a.center = c
		a.dirty = true
	}
}

func (a *Lens3D) StartWithTarget(target Target) {
	a.gridAction.StartWithTarget(target)
	a.dirty = true
}

func (a *Lens3D) Update(t float64) {
	if !a.dirty {
		return
	}
	sign := 1.0
	if a.concave {
		sign = -1
	}
	a.deform(func(_, _ int, v mgl64.Vec3) mgl64.Vec3 {
		vect := a.center.Sub(v.Vec2())
		r := vect.Len()
		if r < a.radius && r > 0 {
			pre := (a.radius - r) / a.radius
			if pre == 0 {
				pre = 0.001
			}
			newR := math.Exp(math.Log(pre)*a.effect) * a.radius
			v[2] += sign * vect.Normalize().Mul(newR).Len() * a.effect
		}
		return v
	})
	a.dirty = false
}

func (a *Lens3D) Reverse() FiniteTimeAction { return NewReverseTime(a.clone()) }
func (a *Lens3D) Clone() Action             { return a.clone() }

func (a *Lens3D) clone() *Lens3D {
	c := NewLens3D(a.duration, a.cols, a.rows, a.center, a.radius)
	c.effect = a.effect
	c.concave = a.concave
	return c
}

// --- Twirl ---

// Twirl spins the grid around a point.
type Twirl struct {
	gridAction
	center        mgl64.Vec2
	twirls        int
	amplitude     float64
	amplitudeRate float64
}

// NewTwirl twirls the grid twirls times around center.
func NewTwirl(duration float64, cols, rows int, center mgl64.Vec2, twirls int, amplitude float64) *Twirl {
	a := &Twirl{center: center, twirls: twirls, amplitude: amplitude, amplitudeRate: 1}
	a.init(a, duration, cols, rows)
	return a
}

// SetAmplitudeRate scales the amplitude.
func (a *Twirl) SetAmplitudeRate(r float64) { a.amplitudeRate = r }

func (a *Twirl) Update(t float64) {
	c := a.center
	amp := 0.1 * a.amplitude * a.amplitudeRate
	a.deform(func(i, j int, v mgl64.Vec3) mgl64.Vec3 {
		avg := mgl64.Vec2{float64(i) - float64(a.cols)/2, float64(j) - float64(a.rows)/2}
		r := avg.Len()
		ang := r * math.Cos(math.Pi/2+t*math.Pi*float64(a.twirls)*2) * amp
		s, co := math.Sincos(ang)
		dx := s*(v[1]-c[1]) + co*(v[0]-c[0])
		dy := co*(v[1]-c[1]) - s*(v[0]-c[0])
		v[0] = c[0] + dx
		v[1] = c[1] + dy
		return v
	})
}

func (a *Twirl) Reverse() FiniteTimeAction { return NewReverseTime(a.clone()) }
func (a *Twirl) Clone() Action             { return a.clone() }

func (a *Twirl) clone() *Twirl {
	c := NewTwirl(a.duration, a.cols, a.rows, a.center, a.twirls, a.amplitude)
	c.amplitudeRate = a.amplitudeRate
	return c
}

// --- Shaky3D ---

// Shaky3D jitters every vertex by a random offset each tick.
type Shaky3D struct {
	gridAction
	rng    int
	shakeZ bool
	rand   *rand.Rand
}

// NewShaky3D shakes vertices by up to rng units, in Z as well when shakeZ
// is set.
func NewShaky3D(duration float64, cols, rows, rng int, shakeZ bool) *Shaky3D {
	a := &Shaky3D{rng: rng, shakeZ: shakeZ}
	a.init(a, duration, cols, rows)
	return a
}

// SetRand replaces the random source, for reproducible shakes.
func (a *Shaky3D) SetRand(r *rand.Rand) { a.rand = r }

func (a *Shaky3D) jitter() float64 {
	if a.rng <= 0 {
		return 0
	}
	n := 2 * a.rng
	if a.rand != nil {
		return float64(a.rand.IntN(n) - a.rng)
	}
	return float64(rand.IntN(n) - a.rng)
}

func (a *Shaky3D) Update(t float64) {
	a.deform(func(_, _ int, v mgl64.Vec3) mgl64.Vec3 {
		v[0] += a.jitter()
		v[1] += a.jitter()
		if a.shakeZ {
			v[2] += a.jitter()
		}
		return v
	})
}

func (a *Shaky3D) Reverse() FiniteTimeAction { return NewReverseTime(a.clone()) }
func (a *Shaky3D) Clone() Action             { return a.clone() }

func (a *Shaky3D) clone() *Shaky3D {
	c := NewShaky3D(a.duration, a.cols, a.rows, a.rng, a.shakeZ)
	c.rand = a.rand
	return c
}

// --- StopGrid / ReuseGrid ---

// StopGrid deactivates the target's grid, returning it to normal drawing.
type StopGrid struct{ Instant }

// NewStopGrid creates a StopGrid action.
func NewStopGrid() *StopGrid {
	a := &StopGrid{}
	a.Instant.init(a)
	return a
}

func (a *StopGrid) Update(t float64) {
	if g := mustHave[GridHolder](a.target, "StopGrid").Grid(); g != nil && g.Active() {
		g.SetActive(false)
	}
	a.finish()
}

func (a *StopGrid) Reverse() FiniteTimeAction { return NewStopGrid() }
func (a *StopGrid) Clone() Action             { return NewStopGrid() }

// ReuseGrid lets the next grid actions continue from the current
// deformation instead of the original vertices.
type ReuseGrid struct {
	Instant
	times int
}

// NewReuseGrid allows times more grid actions to reuse the grid.
func NewReuseGrid(times int) *ReuseGrid {
	a := &ReuseGrid{times: times}
	a.Instant.init(a)
	return a
}

func (a *ReuseGrid) Update(t float64) {
	if g := mustHave[GridHolder](a.target, "ReuseGrid").Grid(); g != nil {
		g.SetReuseCount(g.ReuseCount() + a.times)
	}
	a.finish()
}

func (a *ReuseGrid) Reverse() FiniteTimeAction { return NewReuseGrid(a.times) }
func (a *ReuseGrid) Clone() Action             { return NewReuseGrid(a.times) }
