// Package light implements core.Light (spec §4.I): area lights wrapping
// an emissive primitive's own sampling, and a constant/image-driven
// infinite environment light. Grounded on the teacher's
// pkg/lights/quad_light.go and pkg/lights/sphere_light.go, generalized to
// delegate entirely to core.Primitive's SampleWi/SamplePdf rather than
// duplicating per-shape sampling math.
package light

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// AreaLight turns any emissive primitive into a core.Light by delegating
// sampling entirely to the primitive itself, which already knows how to
// sample its own surface uniformly by area. The integrator reaches the
// light's actual emitted radiance by tracing the sampled direction and
// querying the hit material, not through this type.
type AreaLight struct {
	Primitive core.Primitive
}

func NewAreaLight(p core.Primitive) *AreaLight { return &AreaLight{Primitive: p} }

func (a *AreaLight) Kind() core.LightKind { return core.LightKindArea }

func (a *AreaLight) BackgroundL(ray core.Ray) core.ColorRGB { return core.ColorRGB{} }

func (a *AreaLight) SampleWi(point core.Vec3, rng *rand.Rand) core.Vec3 {
	return a.Primitive.SampleWi(point, rng)
}

func (a *AreaLight) SamplePdf(point core.Vec3, wi core.Vec3) float64 {
	return a.Primitive.SamplePdf(point, wi)
}
