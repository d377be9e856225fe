// Package primitive implements core.Primitive (spec §4.E): a Shape coupled
// with its world transform and Material. Grounded on the Rust original's
// primitives/transform.rs and primitives/geometry.rs (the teacher itself
// never separates shape geometry from its material/transform, so this
// package's structure follows original_source rather than the teacher).
package primitive

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// GeometricPrimitive places a core.Shape in the world via a core.Transform
// and attaches a core.Material. Rays are transported into object space for
// intersection and the resulting SurfaceInteraction is transported back to
// world space.
type GeometricPrimitive struct {
	Shape     core.Shape
	Transform core.Transform
	Material  core.Material
}

func NewGeometricPrimitive(shape core.Shape, transform core.Transform, material core.Material) *GeometricPrimitive {
	return &GeometricPrimitive{Shape: shape, Transform: transform, Material: material}
}

func (p *GeometricPrimitive) Intersect(ray core.Ray, tMin, tMax float64) (*core.SurfaceInteraction, bool) {
	objectRay := p.Transform.Inverse().Ray(ray)
	si, hit := p.Shape.Intersect(objectRay, tMin, tMax)
	if !hit {
		return nil, false
	}

	si.Point = p.Transform.Point(si.Point)
	si.Normal = p.Transform.Normal(si.Normal)
	si.Wo = p.Transform.Vector(si.Wo).Normalize()
	si.Material = p.Material
	return si, true
}

func (p *GeometricPrimitive) BoundingBox() core.AABB {
	return p.Transform.AABB(p.Shape.BoundingBox())
}

func (p *GeometricPrimitive) PrimitiveMaterial() core.Material { return p.Material }

// SampleWi draws a direction in world space toward a point on the shape's
// surface, transporting the reference point into object space and the
// sampled direction back out.
func (p *GeometricPrimitive) SampleWi(point core.Vec3, rng *rand.Rand) core.Vec3 {
	inv := p.Transform.Inverse()
	objectPoint := inv.Point(point)
	objectWi := p.Shape.SampleWi(objectPoint, rng)
	return p.Transform.Vector(objectWi).Normalize()
}

func (p *GeometricPrimitive) SamplePdf(point core.Vec3, wi core.Vec3) float64 {
	inv := p.Transform.Inverse()
	objectPoint := inv.Point(point)
	objectWi := inv.Vector(wi)
	return p.Shape.SamplePdf(objectPoint, objectWi)
}
