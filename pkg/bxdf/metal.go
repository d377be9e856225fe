package bxdf

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/sampling"
)

// Metal is a fuzzy specular reflector: a perfect mirror perturbed by a
// random offset scaled by Fuzz, grounded on NaiveSpecularReflection. It is
// always treated as a delta distribution (the fuzz perturbation is folded
// into the sampled direction rather than an evaluable lobe), matching the
// original's is_delta=true.
type Metal struct {
	Albedo core.ColorRGB
	Fuzz   float64
}

func NewMetal(albedo core.ColorRGB, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) IsDelta() bool { return true }

func (m *Metal) F(wi, wo, normal core.Vec3) core.ColorRGB {
	if wi.Dot(normal) <= 0 {
		return core.ColorRGB{}
	}
	return m.Albedo
}

func (m *Metal) SampleWi(wo, normal core.Vec3, rng *rand.Rand) core.Vec3 {
	reflected := sampling.Reflect(wo, normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(sampling.RandomInUnitSphere(rng).Multiply(m.Fuzz))
	}
	return reflected.Normalize()
}

func (m *Metal) SamplePdf(wi, wo, normal core.Vec3) float64 { return 1.0 }
