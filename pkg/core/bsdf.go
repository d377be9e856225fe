package core

import (
	"math"
	"math/rand"
)

// BxDF is a single scattering mechanism evaluated in world space, with the
// shading normal passed explicitly so a BxDF never has to carry one of its
// own (spec §4.G). Implementations live in package bxdf.
type BxDF interface {
	// IsDelta reports whether sampling this BxDF is a Dirac distribution
	// (a perfect mirror or perfect refractor). Callers must not evaluate F
	// for a delta BxDF outside of a just-sampled direction.
	IsDelta() bool
	F(wi, wo, normal Vec3) ColorRGB
	SampleWi(wo, normal Vec3, rng *rand.Rand) Vec3
	SamplePdf(wi, wo, normal Vec3) float64
}

// Bsdf wraps a single BxDF with the oriented shading normal at a hit point
// (spec §3). All directions passed to and returned from a Bsdf are in
// world space.
type Bsdf struct {
	Normal Vec3
	BxDF   BxDF
}

func NewBsdf(normal Vec3, b BxDF) Bsdf {
	return Bsdf{Normal: normal, BxDF: b}
}

func (b Bsdf) IsDelta() bool { return b.BxDF.IsDelta() }

func (b Bsdf) F(wi, wo Vec3) ColorRGB { return b.BxDF.F(wi, wo, b.Normal) }

// FCos is the BxDF value scaled by |cos theta_i|, the quantity that
// appears directly in the rendering-equation estimator.
func (b Bsdf) FCos(wi, wo Vec3) ColorRGB {
	return b.BxDF.F(wi, wo, b.Normal).Multiply(math.Abs(wi.Dot(b.Normal)))
}

func (b Bsdf) SampleWi(wo Vec3, rng *rand.Rand) Vec3 {
	return b.BxDF.SampleWi(wo, b.Normal, rng)
}

func (b Bsdf) SamplePdf(wi, wo Vec3) float64 {
	return b.BxDF.SamplePdf(wi, wo, b.Normal)
}

// Material is the texture-parameterized BSDF factory (spec §4.H): given a
// hit point it either returns nil (the surface does not scatter — a pure
// emitter) or a Bsdf built from its textures evaluated at si.UV/si.Point.
type Material interface {
	Emission(si *SurfaceInteraction) ColorRGB
	ComputeBSDF(si *SurfaceInteraction) (Bsdf, bool)
}
