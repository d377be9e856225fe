package shape

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Triangle is a single triangle with a cached normal and bounding box,
// grounded on the teacher's pkg/geometry/triangle.go (Möller-Trumbore
// intersection).
type Triangle struct {
	V0, V1, V2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	hasUVs        bool
	normal        core.Vec3
	bbox          core.AABB
	area          float64
}

func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2}
	t.init()
	return t
}

func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, hasUVs: true}
	t.init()
	return t
}

func (t *Triangle) init() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	cross := edge1.Cross(edge2)
	t.normal = cross.Normalize()
	t.area = cross.Length() / 2
	t.bbox = core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}

func (t *Triangle) Intersect(ray core.Ray, tMin, tMax float64) (*core.SurfaceInteraction, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return nil, false
	}

	tHit := f * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return nil, false
	}

	hitPoint := ray.At(tHit)
	var uv core.Vec2
	if t.hasUVs {
		w := 1.0 - u - v
		uv = t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))
	} else {
		uv = core.NewVec2(u, v)
	}

	si := &core.SurfaceInteraction{THit: tHit, Point: hitPoint, UV: uv, Wo: ray.Direction.Negate().Normalize()}
	si.SetFaceNormal(ray, t.normal)
	return si, true
}

func (t *Triangle) BoundingBox() core.AABB { return t.bbox }

func (t *Triangle) Area() float64 { return t.area }

// SampleWi draws a uniform point in the triangle via the standard
// sqrt(r1)-folded barycentric parametrization.
func (t *Triangle) SampleWi(point core.Vec3, rng *rand.Rand) core.Vec3 {
	r1, r2 := rng.Float64(), rng.Float64()
	sqrtR1 := math.Sqrt(r1)
	b0 := 1 - sqrtR1
	b1 := r2 * sqrtR1
	samplePoint := t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(1 - b0 - b1))
	return samplePoint.Subtract(point).Normalize()
}

func (t *Triangle) SamplePdf(point core.Vec3, wi core.Vec3) float64 {
	ray := core.NewRay(point, wi)
	si, hit := t.Intersect(ray, 1e-4, math.Inf(1))
	if !hit {
		return 0
	}
	distanceSquared := si.THit * si.THit * wi.LengthSquared()
	cosine := math.Abs(wi.Dot(t.normal))
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * t.area)
}
