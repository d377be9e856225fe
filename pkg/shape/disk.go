package shape

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Disk is a flat circular disk with the given center, outward Normal and
// Radius, extracted from the cap logic in the teacher's cylinder.go into
// its own standalone shape.
type Disk struct {
	Center, Normal core.Vec3
	Radius         float64
}

func NewDisk(center, normal core.Vec3, radius float64) *Disk {
	return &Disk{Center: center, Normal: normal.Normalize(), Radius: radius}
}

func (d *Disk) tangentFrame() (tangent, bitangent core.Vec3) {
	refVector := core.NewVec3(0, 1, 0)
	if math.Abs(d.Normal.Y) >= 0.9 {
		refVector = core.NewVec3(1, 0, 0)
	}
	tangent = d.Normal.Cross(refVector).Normalize()
	bitangent = d.Normal.Cross(tangent)
	return
}

func (d *Disk) Intersect(ray core.Ray, tMin, tMax float64) (*core.SurfaceInteraction, bool) {
	const epsilon = 1e-8
	denom := ray.Direction.Dot(d.Normal)
	if math.Abs(denom) < epsilon {
		return nil, false
	}

	t := d.Center.Subtract(ray.Origin).Dot(d.Normal) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	local := point.Subtract(d.Center)
	if local.Length() > d.Radius {
		return nil, false
	}

	tangent, bitangent := d.tangentFrame()
	u := (local.Dot(tangent)/d.Radius + 1) / 2
	v := (local.Dot(bitangent)/d.Radius + 1) / 2

	si := &core.SurfaceInteraction{THit: t, Point: point, UV: core.NewVec2(u, v), Wo: ray.Direction.Negate().Normalize()}
	si.SetFaceNormal(ray, d.Normal)
	return si, true
}

func (d *Disk) BoundingBox() core.AABB {
	tangent, bitangent := d.tangentFrame()
	extent := tangent.Multiply(d.Radius).Add(bitangent.Multiply(d.Radius))
	r := core.NewVec3(math.Abs(extent.X), math.Abs(extent.Y), math.Abs(extent.Z))
	const eps = 1e-4
	pad := core.NewVec3(eps, eps, eps)
	return core.NewAABB(d.Center.Subtract(r).Subtract(pad), d.Center.Add(r).Add(pad))
}

func (d *Disk) Area() float64 { return math.Pi * d.Radius * d.Radius }

func (d *Disk) SampleWi(point core.Vec3, rng *rand.Rand) core.Vec3 {
	r := d.Radius * math.Sqrt(rng.Float64())
	theta := 2 * math.Pi * rng.Float64()
	tangent, bitangent := d.tangentFrame()
	samplePoint := d.Center.Add(tangent.Multiply(r * math.Cos(theta))).Add(bitangent.Multiply(r * math.Sin(theta)))
	return samplePoint.Subtract(point).Normalize()
}

func (d *Disk) SamplePdf(point core.Vec3, wi core.Vec3) float64 {
	ray := core.NewRay(point, wi)
	si, hit := d.Intersect(ray, 1e-4, math.Inf(1))
	if !hit {
		return 0
	}
	distanceSquared := si.THit * si.THit * wi.LengthSquared()
	cosine := math.Abs(wi.Dot(d.Normal))
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * d.Area())
}
