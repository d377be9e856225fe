// Package shape implements core.Shape (spec §4.D): pure geometry with no
// material and no world transform. GeometricPrimitive (pkg/primitive) is
// responsible for attaching a material and transporting rays/samples
// between object and world space.
package shape

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/sampling"
)

// Sphere is centered at Center with the given Radius, grounded on the
// teacher's pkg/geometry/sphere.go and pkg/geometry/sphere_light.go.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64) (*core.SurfaceInteraction, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	uv := core.NewVec2(phi/(2*math.Pi), theta/math.Pi)

	si := &core.SurfaceInteraction{THit: root, Point: point, UV: uv, Wo: ray.Direction.Negate().Normalize()}
	si.SetFaceNormal(ray, outwardNormal)
	return si, true
}

func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

func (s *Sphere) Area() float64 { return 4 * math.Pi * s.Radius * s.Radius }

// SampleWi draws a direction toward the visible cone of the sphere as seen
// from point, falling back to uniform-sphere sampling when point is inside.
func (s *Sphere) SampleWi(point core.Vec3, rng *rand.Rand) core.Vec3 {
	return sampling.SampleSphereCone(point, s.Center, s.Radius, rng)
}

// SamplePdf is the solid-angle PDF matching SampleWi, conditioned on wi
// actually hitting the sphere.
func (s *Sphere) SamplePdf(point core.Vec3, wi core.Vec3) float64 {
	ray := core.NewRay(point, wi)
	if _, hit := s.Intersect(ray, 1e-4, math.Inf(1)); !hit {
		return 0
	}
	distance := s.Center.Subtract(point).Length()
	return sampling.SphereConePDF(distance, s.Radius)
}
