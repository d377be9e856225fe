package core

import "math/rand"

// Logger is the sole logging abstraction used by the core; see DESIGN.md
// for why this stays on the standard library rather than a third-party
// structured logger.
type Logger interface {
	Printf(format string, args ...interface{})
}

// SurfaceInteraction is the hit record produced by intersecting a ray with
// geometry (spec §3). Normal is oriented so it lies on the same hemisphere
// as Wo, Wo and Normal are unit length, and THit is within the ray's
// [tMin, tMax] search interval.
type SurfaceInteraction struct {
	THit      float64
	Point     Vec3
	UV        Vec2
	Wo        Vec3
	Normal    Vec3
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients the interaction's normal against the incoming ray
// direction and records which face was hit. outwardNormal must be unit
// length and point away from the shape's interior.
func (si *SurfaceInteraction) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	si.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if si.FrontFace {
		si.Normal = outwardNormal
	} else {
		si.Normal = outwardNormal.Negate()
	}
}

// Shape is pure geometry (spec §4.D): no material, no world transform.
// SamplePdf/SampleWi operate in whatever space the shape itself lives in
// (object space for primitive-wrapped shapes); Primitive implementations
// are responsible for transporting samples to world space.
type Shape interface {
	Intersect(ray Ray, tMin, tMax float64) (*SurfaceInteraction, bool)
	BoundingBox() AABB
	Area() float64
	// SamplePdf returns the solid-angle PDF of sampling direction wi from
	// the reference point.
	SamplePdf(point Vec3, wi Vec3) float64
	// SampleWi draws a unit direction from point toward a uniformly
	// distributed point on the shape's surface.
	SampleWi(point Vec3, rng *rand.Rand) Vec3
}

// Primitive couples a Shape with its world transform and Material (spec
// §4.E). Intersect/BoundingBox operate in world space; the area-light
// sampling methods delegate to the underlying shape after transporting
// points and directions between spaces.
type Primitive interface {
	Intersect(ray Ray, tMin, tMax float64) (*SurfaceInteraction, bool)
	BoundingBox() AABB
	PrimitiveMaterial() Material
	SamplePdf(point Vec3, wi Vec3) float64
	SampleWi(point Vec3, rng *rand.Rand) Vec3
}

// PrimitiveContainer aggregates many primitives behind a single
// Intersect/BoundingBox interface; both PrimitiveList (linear search) and
// the BVH implement it, and a Scene's World field is typed as this
// interface so the integrator never knows which one it was handed.
type PrimitiveContainer interface {
	Intersect(ray Ray, tMin, tMax float64) (*SurfaceInteraction, bool)
	BoundingBox() AABB
}

// Camera generates a ray for normalized screen coordinates (s, t) in
// [0,1]x[0,1], drawing its own lens and shutter-time samples from rng.
type Camera interface {
	GetRay(s, t float64, rng *rand.Rand) Ray
}
