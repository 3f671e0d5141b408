package action

import "github.com/go-gl/mathgl/mgl64"

// Orbit describes an orbit of a camera eye around its center in spherical
// coordinates. AngleZ is the polar angle from +Z and AngleX the azimuth in
// the XY plane, both in radians.
type Orbit struct {
	Radius, DeltaRadius float64
	AngleZ, DeltaAngleZ float64
	AngleX, DeltaAngleX float64
	// FromCurrent takes Radius, AngleZ and AngleX from the camera's eye
	// when the action starts.
	FromCurrent bool
}

// OrbitCamera moves a camera's eye around its center.
type OrbitCamera struct {
	Interval
	vp    Viewpoint
	orbit Orbit
	// start holds the orbit resolved against the camera at start.
	start Orbit
}

// NewOrbitCamera orbits the target camera over duration seconds.
func NewOrbitCamera(duration float64, orbit Orbit) *OrbitCamera {
	a := &OrbitCamera{orbit: orbit, start: orbit}
	a.init(a, duration)
	return a
}

// Orbit returns the orbit as configured.
func (a *OrbitCamera) Orbit() Orbit { return a.orbit }

func (a *OrbitCamera) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.vp = mustHave[Viewpoint](target, "OrbitCamera")
	a.start = a.orbit
	if a.orbit.FromCurrent {
		r, zenith, azimuth := sphericalOf(a.vp.Eye().Sub(a.vp.Center()))
		a.start.Radius = r
		a.start.AngleZ = zenith
		a.start.AngleX = azimuth
	}
}

// sphericalOf converts v to (radius, polar, azimuth). A zero vector maps to
// all zeros.
func sphericalOf(v mgl64.Vec3) (r, zenith, azimuth float64) {
	if v.Len() == 0 {
		return 0, 0, 0
	}
	return mgl64.CartesianToSpherical(v)
}

func (a *OrbitCamera) Update(t float64) {
	o := a.start
	r := o.Radius + o.DeltaRadius*t
	za := o.AngleZ + o.DeltaAngleZ*t
	xa := o.AngleX + o.DeltaAngleX*t
	a.vp.SetEye(a.vp.Center().Add(mgl64.SphericalToCartesian(r, za, xa)))
}

// Reverse orbits from the end of this orbit back to its start. An orbit
// that starts from the current eye is reversed around the values it
// resolved when it last started.
func (a *OrbitCamera) Reverse() FiniteTimeAction {
	o := a.start
	return NewOrbitCamera(a.duration, Orbit{
		Radius:      o.Radius + o.DeltaRadius,
		DeltaRadius: -o.DeltaRadius,
		AngleZ:      o.AngleZ + o.DeltaAngleZ,
		DeltaAngleZ: -o.DeltaAngleZ,
		AngleX:      o.AngleX + o.DeltaAngleX,
		DeltaAngleX: -o.DeltaAngleX,
	})
}

func (a *OrbitCamera) Clone() Action { return NewOrbitCamera(a.duration, a.orbit) }
