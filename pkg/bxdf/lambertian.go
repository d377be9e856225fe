// Package bxdf implements the concrete scattering distributions behind
// core.BxDF (spec §4.G): Lambertian diffuse, fuzzy-specular metal, smooth
// and rough dielectric glass, and the glTF metallic-roughness model.
// Grounded throughout on original_source/toy_ray_tracer/src/bxdfs/mod.rs,
// since the teacher merges BxDF and Material into one interface and has no
// equivalent standalone layer.
package bxdf

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/sampling"
)

// Lambertian is a perfectly diffuse reflector with the given albedo,
// grounded on LambertianReflection.
type Lambertian struct {
	Albedo core.ColorRGB
}

func NewLambertian(albedo core.ColorRGB) *Lambertian { return &Lambertian{Albedo: albedo} }

func (l *Lambertian) IsDelta() bool { return false }

func (l *Lambertian) F(wi, wo, normal core.Vec3) core.ColorRGB {
	if wi.Dot(normal) <= 0 || wo.Dot(normal) <= 0 {
		return core.ColorRGB{}
	}
	return l.Albedo.Multiply(1.0 / math.Pi)
}

func (l *Lambertian) SampleWi(wo, normal core.Vec3, rng *rand.Rand) core.Vec3 {
	return sampling.RandomCosineDirection(upNormal(wo, normal), rng)
}

func (l *Lambertian) SamplePdf(wi, wo, normal core.Vec3) float64 {
	return sampling.CosineHemispherePDF(upNormal(wo, normal), wi)
}

// upNormal flips normal to the side wo lies on, grounded on get_up_normal.
func upNormal(wo, normal core.Vec3) core.Vec3 {
	if normal.Dot(wo) > 0 {
		return normal
	}
	return normal.Negate()
}
