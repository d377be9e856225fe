package primitive

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// FlipFacePrimitive inverts the hit normal and front-face flag of the
// wrapped primitive, used to turn an outward-facing shape into an
// inward-facing one (e.g. a box used as a room). Grounded on the Rust
// original's primitives/transform.rs FlipFacePrimitive.
type FlipFacePrimitive struct {
	Primitive core.Primitive
}

func NewFlipFacePrimitive(p core.Primitive) *FlipFacePrimitive {
	return &FlipFacePrimitive{Primitive: p}
}

func (f *FlipFacePrimitive) Intersect(ray core.Ray, tMin, tMax float64) (*core.SurfaceInteraction, bool) {
	si, hit := f.Primitive.Intersect(ray, tMin, tMax)
	if !hit {
		return nil, false
	}
	si.Normal = si.Normal.Negate()
	si.FrontFace = !si.FrontFace
	return si, true
}

func (f *FlipFacePrimitive) BoundingBox() core.AABB { return f.Primitive.BoundingBox() }

func (f *FlipFacePrimitive) PrimitiveMaterial() core.Material { return f.Primitive.PrimitiveMaterial() }

func (f *FlipFacePrimitive) SampleWi(point core.Vec3, rng *rand.Rand) core.Vec3 {
	return f.Primitive.SampleWi(point, rng)
}

func (f *FlipFacePrimitive) SamplePdf(point core.Vec3, wi core.Vec3) float64 {
	return f.Primitive.SamplePdf(point, wi)
}
