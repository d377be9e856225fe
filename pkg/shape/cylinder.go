package shape

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Cylinder is a finite, optionally capped cylinder, grounded on the
// teacher's pkg/geometry/cylinder.go.
type Cylinder struct {
	BaseCenter, TopCenter core.Vec3
	Radius                float64
	Capped                bool

	axis   core.Vec3
	height float64
}

func NewCylinder(baseCenter, topCenter core.Vec3, radius float64, capped bool) *Cylinder {
	axisVector := topCenter.Subtract(baseCenter)
	return &Cylinder{
		BaseCenter: baseCenter, TopCenter: topCenter, Radius: radius, Capped: capped,
		axis: axisVector.Normalize(), height: axisVector.Length(),
	}
}

func (c *Cylinder) BoundingBox() core.AABB {
	minCorner := core.NewVec3(
		math.Min(c.BaseCenter.X, c.TopCenter.X),
		math.Min(c.BaseCenter.Y, c.TopCenter.Y),
		math.Min(c.BaseCenter.Z, c.TopCenter.Z),
	)
	maxCorner := core.NewVec3(
		math.Max(c.BaseCenter.X, c.TopCenter.X),
		math.Max(c.BaseCenter.Y, c.TopCenter.Y),
		math.Max(c.BaseCenter.Z, c.TopCenter.Z),
	)

	const parallelThreshold = 0.9999
	extent := core.NewVec3(c.Radius, c.Radius, c.Radius)
	if math.Abs(c.axis.X) > parallelThreshold {
		extent.X = 0
	}
	if math.Abs(c.axis.Y) > parallelThreshold {
		extent.Y = 0
	}
	if math.Abs(c.axis.Z) > parallelThreshold {
		extent.Z = 0
	}
	return core.NewAABB(minCorner.Subtract(extent), maxCorner.Add(extent))
}

func (c *Cylinder) Intersect(ray core.Ray, tMin, tMax float64) (*core.SurfaceInteraction, bool) {
	var closest *core.SurfaceInteraction
	closestT := tMax

	if si := c.hitBody(ray, tMin, closestT); si != nil {
		closest = si
		closestT = si.THit
	}
	if c.Capped {
		if si := c.hitCap(ray, c.BaseCenter, c.axis.Negate(), tMin, closestT); si != nil {
			closest = si
			closestT = si.THit
		}
		if si := c.hitCap(ray, c.TopCenter, c.axis, tMin, closestT); si != nil {
			closest = si
			closestT = si.THit
		}
	}
	return closest, closest != nil
}

func (c *Cylinder) hitBody(ray core.Ray, tMin, tMax float64) *core.SurfaceInteraction {
	delta := ray.Origin.Subtract(c.BaseCenter)

	dv := ray.Direction.Dot(c.axis)
	deltaV := delta.Dot(c.axis)

	a := ray.Direction.LengthSquared() - dv*dv
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*dv)
	cc := delta.LengthSquared() - deltaV*deltaV - c.Radius*c.Radius

	const epsilon = 1e-8
	if math.Abs(a) < epsilon {
		return nil
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	tryRoot := func(t float64) (core.Vec3, float64, bool) {
		if t < tMin || t > tMax {
			return core.Vec3{}, 0, false
		}
		point := ray.At(t)
		h := point.Subtract(c.BaseCenter).Dot(c.axis)
		if h < 0 || h > c.height {
			return core.Vec3{}, 0, false
		}
		return point, h, true
	}

	t := (-b - sqrtD) / (2 * a)
	point, h, ok := tryRoot(t)
	if !ok {
		t = (-b + sqrtD) / (2 * a)
		point, h, ok = tryRoot(t)
		if !ok {
			return nil
		}
	}

	axisPoint := c.BaseCenter.Add(c.axis.Multiply(h))
	outwardNormal := point.Subtract(axisPoint).Normalize()

	v := h / c.height
	radial := point.Subtract(axisPoint)
	tangent, bitangent := c.tangentFrame(c.axis)
	u := math.Atan2(radial.Dot(bitangent), radial.Dot(tangent))
	u = (u + math.Pi) / (2 * math.Pi)

	si := &core.SurfaceInteraction{THit: t, Point: point, UV: core.NewVec2(u, v), Wo: ray.Direction.Negate().Normalize()}
	si.SetFaceNormal(ray, outwardNormal)
	return si
}

func (c *Cylinder) hitCap(ray core.Ray, center, normal core.Vec3, tMin, tMax float64) *core.SurfaceInteraction {
	const epsilon = 1e-8
	denom := ray.Direction.Dot(normal)
	if math.Abs(denom) < epsilon {
		return nil
	}

	t := center.Subtract(ray.Origin).Dot(normal) / denom
	if t < tMin || t > tMax {
		return nil
	}

	point := ray.At(t)
	if point.Subtract(center).Length() > c.Radius {
		return nil
	}

	localPoint := point.Subtract(center)
	tangent, bitangent := c.tangentFrame(normal)
	u := (localPoint.Dot(tangent)/c.Radius + 1) / 2
	v := (localPoint.Dot(bitangent)/c.Radius + 1) / 2

	si := &core.SurfaceInteraction{THit: t, Point: point, UV: core.NewVec2(u, v), Wo: ray.Direction.Negate().Normalize()}
	si.SetFaceNormal(ray, normal)
	return si
}

func (c *Cylinder) tangentFrame(axis core.Vec3) (tangent, bitangent core.Vec3) {
	refVector := core.NewVec3(0, 1, 0)
	if math.Abs(axis.Y) >= 0.9 {
		refVector = core.NewVec3(1, 0, 0)
	}
	tangent = axis.Cross(refVector).Normalize()
	bitangent = axis.Cross(tangent)
	return
}

func (c *Cylinder) Area() float64 {
	bodyArea := 2 * math.Pi * c.Radius * c.height
	if !c.Capped {
		return bodyArea
	}
	return bodyArea + 2*math.Pi*c.Radius*c.Radius
}

// SampleWi draws a uniform point on the cylinder's surface (body weighted
// against the two caps by area) and returns the direction toward it.
func (c *Cylinder) SampleWi(point core.Vec3, rng *rand.Rand) core.Vec3 {
	bodyArea := 2 * math.Pi * c.Radius * c.height
	capArea := math.Pi * c.Radius * c.Radius
	total := bodyArea
	if c.Capped {
		total += 2 * capArea
	}

	pick := rng.Float64() * total
	var samplePoint core.Vec3
	switch {
	case pick < bodyArea:
		theta := 2 * math.Pi * rng.Float64()
		h := rng.Float64() * c.height
		tangent, bitangent := c.tangentFrame(c.axis)
		radial := tangent.Multiply(math.Cos(theta)).Add(bitangent.Multiply(math.Sin(theta)))
		samplePoint = c.BaseCenter.Add(c.axis.Multiply(h)).Add(radial.Multiply(c.Radius))
	case pick < bodyArea+capArea:
		samplePoint = c.diskSample(c.BaseCenter, c.axis.Negate(), rng)
	default:
		samplePoint = c.diskSample(c.TopCenter, c.axis, rng)
	}
	return samplePoint.Subtract(point).Normalize()
}

func (c *Cylinder) diskSample(center, normal core.Vec3, rng *rand.Rand) core.Vec3 {
	r := c.Radius * math.Sqrt(rng.Float64())
	theta := 2 * math.Pi * rng.Float64()
	tangent, bitangent := c.tangentFrame(normal)
	return center.Add(tangent.Multiply(r * math.Cos(theta))).Add(bitangent.Multiply(r * math.Sin(theta)))
}

func (c *Cylinder) SamplePdf(point core.Vec3, wi core.Vec3) float64 {
	ray := core.NewRay(point, wi)
	si, hit := c.Intersect(ray, 1e-4, math.Inf(1))
	if !hit {
		return 0
	}
	distanceSquared := si.THit * si.THit * wi.LengthSquared()
	cosine := math.Abs(wi.Dot(si.Normal))
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * c.Area())
}
