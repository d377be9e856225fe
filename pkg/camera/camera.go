// Package camera implements core.Camera: a thin-lens perspective camera
// with optional depth-of-field and shutter-time motion blur, grounded on
// the teacher's pkg/renderer/camera.go (pinhole projection geometry) and
// original_source's core/camera.rs (lens/shutter sampling, which the
// teacher's camera never implements).
package camera

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/sampling"
)

// Options configures a thin-lens Camera.
type Options struct {
	LookFrom, LookAt, ViewUp core.Vec3
	VerticalFOVDegrees       float64
	AspectRatio              float64
	Aperture                 float64 // 0 disables lens sampling (a pinhole)
	FocusDist                float64
	Time0, Time1             float64 // shutter open/close; Time0==Time1 disables motion blur
}

type Camera struct {
	origin               core.Vec3
	lowerLeftCorner      core.Vec3
	horizontal, vertical core.Vec3
	u, v                 core.Vec3
	lensRadius           float64
	time0, time1         float64
}

func NewCamera(opt Options) *Camera {
	theta := opt.VerticalFOVDegrees * math.Pi / 180.0
	halfHeight := opt.FocusDist * math.Tan(theta/2)
	halfWidth := opt.AspectRatio * halfHeight

	w := opt.LookFrom.Subtract(opt.LookAt).Normalize()
	u := opt.ViewUp.Cross(w).Normalize()
	v := w.Cross(u)

	return &Camera{
		origin: opt.LookFrom,
		lowerLeftCorner: opt.LookFrom.
			Subtract(u.Multiply(halfWidth)).
			Subtract(v.Multiply(halfHeight)).
			Subtract(w.Multiply(opt.FocusDist)),
		horizontal:  u.Multiply(2 * halfWidth),
		vertical:    v.Multiply(2 * halfHeight),
		u:           u,
		v:           v,
		lensRadius:  opt.Aperture / 2,
		time0:       opt.Time0,
		time1:       opt.Time1,
	}
}

// GetRay generates a ray for normalized screen coordinates (s, t),
// offsetting the origin by a lens sample when depth-of-field is enabled
// and drawing a shutter-time sample for motion blur (spec §4.C).
func (c *Camera) GetRay(s, t float64, rng *rand.Rand) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := sampling.RandomInUnitDisk(rng).Multiply(c.lensRadius)
		offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
		origin = c.origin.Add(offset)
	}

	time := c.time0
	if c.time1 > c.time0 {
		time = c.time0 + rng.Float64()*(c.time1-c.time0)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayTimed(origin, direction, time)
}
