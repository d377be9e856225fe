package shape

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Rect is a planar quadrilateral spanned by two edge vectors from a
// corner, grounded on the teacher's pkg/geometry/quad.go. Sampling treats
// it as a uniformly-weighted area light source (spec §4.D/§4.I). Its front
// face, the side an emissive material lights, faces along V×U.
type Rect struct {
	Corner, U, V core.Vec3
	normal       core.Vec3
	d            float64
	w            core.Vec3
	area         float64
}

func NewRect(corner, u, v core.Vec3) *Rect {
	normal := v.Cross(u).Normalize()
	cross := u.Cross(v)
	return &Rect{
		Corner: corner, U: u, V: v,
		normal: normal,
		d:      normal.Dot(corner),
		w:      normal.Multiply(1.0 / normal.Dot(cross)),
		area:   cross.Length(),
	}
}

func (q *Rect) Intersect(ray core.Ray, tMin, tMax float64) (*core.SurfaceInteraction, bool) {
	denom := ray.Direction.Dot(q.normal)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}
	t := (q.d - ray.Origin.Dot(q.normal)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	si := &core.SurfaceInteraction{
		THit: t, Point: hitPoint, UV: core.NewVec2(alpha, beta),
		Wo: ray.Direction.Negate().Normalize(),
	}
	si.SetFaceNormal(ray, q.normal)
	return si, true
}

func (q *Rect) BoundingBox() core.AABB {
	corners := []core.Vec3{
		q.Corner, q.Corner.Add(q.U), q.Corner.Add(q.V), q.Corner.Add(q.U).Add(q.V),
	}
	box := core.NewAABBFromPoints(corners[0], corners[1])
	box = box.UnionPoint(corners[2])
	box = box.UnionPoint(corners[3])
	// Inflate degenerate axes so a BVH leaf never gets a zero-thickness box.
	const eps = 1e-4
	size := box.Size()
	pad := core.NewVec3(0, 0, 0)
	if size.X < eps {
		pad.X = eps
	}
	if size.Y < eps {
		pad.Y = eps
	}
	if size.Z < eps {
		pad.Z = eps
	}
	return core.NewAABB(box.Min.Subtract(pad), box.Max.Add(pad))
}

func (q *Rect) Area() float64 { return q.area }

func (q *Rect) SampleWi(point core.Vec3, rng *rand.Rand) core.Vec3 {
	samplePoint := q.Corner.Add(q.U.Multiply(rng.Float64())).Add(q.V.Multiply(rng.Float64()))
	return samplePoint.Subtract(point).Normalize()
}

func (q *Rect) SamplePdf(point core.Vec3, wi core.Vec3) float64 {
	ray := core.NewRay(point, wi)
	si, hit := q.Intersect(ray, 1e-4, math.Inf(1))
	if !hit {
		return 0
	}
	distanceSquared := si.THit * si.THit * wi.LengthSquared()
	cosine := math.Abs(wi.Dot(q.normal))
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * q.area)
}
