package bxdf

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/sampling"
)

// DeltaDielectric is a smooth dielectric interface (glass) that either
// perfectly reflects or perfectly transmits, chosen stochastically by the
// Fresnel term at sample time. Grounded on DeltaTransparentTransmission.
type DeltaDielectric struct {
	Eta    float64 // relative index of refraction, inside/outside (1.5 for glass in air)
	Albedo core.ColorRGB
}

func NewDeltaDielectric(eta float64, albedo core.ColorRGB) *DeltaDielectric {
	return &DeltaDielectric{Eta: eta, Albedo: albedo}
}

func (d *DeltaDielectric) IsDelta() bool { return true }

func (d *DeltaDielectric) F(wi, wo, normal core.Vec3) core.ColorRGB {
	sameHemisphere := sampling.IsSameHemisphere(wi, wo, normal)
	n := upNormal(wo, normal)
	if sameHemisphere {
		f := sampling.FresnelDielectric(wo.Dot(n), d.Eta)
		return core.ColorRGB{X: f, Y: f, Z: f}
	}
	f := sampling.FresnelDielectric(n.Dot(wo), d.Eta)
	return d.Albedo.Multiply(1 - f)
}

func (d *DeltaDielectric) SampleWi(wo, normal core.Vec3, rng *rand.Rand) core.Vec3 {
	n := upNormal(wo, normal)
	cosWo := n.Dot(wo)
	if rng.Float64() < sampling.FresnelDielectric(cosWo, d.Eta) {
		return sampling.Reflect(wo, n)
	}
	return wo.Negate()
}

func (d *DeltaDielectric) SamplePdf(wi, wo, normal core.Vec3) float64 {
	sameHemisphere := sampling.IsSameHemisphere(wi, wo, normal)
	n := upNormal(wo, normal)
	cosWo := wo.Dot(n)
	f := sampling.FresnelDielectric(cosWo, d.Eta)
	if sameHemisphere {
		return f
	}
	return 1 - f
}

// RoughDielectric is a microfacet (GGX) dielectric: the same reflect-or-
// transmit interface as DeltaDielectric but with a rough, evaluable lobe.
// Grounded on TransparentTransmission.
type RoughDielectric struct {
	Eta       float64
	Roughness float64
	Color     core.ColorRGB
}

func NewRoughDielectric(eta, roughness float64, color core.ColorRGB) *RoughDielectric {
	if roughness < sampling.MinRoughness {
		roughness = sampling.MinRoughness
	}
	return &RoughDielectric{Eta: eta, Roughness: roughness, Color: color}
}

func (d *RoughDielectric) IsDelta() bool { return false }

func (d *RoughDielectric) F(wi, wo, normal core.Vec3) core.ColorRGB {
	sameHemisphere := sampling.IsSameHemisphere(wi, wo, normal)
	n := upNormal(wo, normal)
	alpha := d.Roughness

	if sameHemisphere {
		halfway := wi.Add(wo).Normalize()
		cosHalf := n.Dot(halfway)
		cosWi := n.Dot(wi)
		cosWo := n.Dot(wo)
		cosHalfWo := halfway.Dot(wo)

		f := sampling.FresnelDielectric(cosHalfWo, d.Eta)
		dist := sampling.GGXDistribution(cosHalf, alpha)
		g := sampling.GGXSmithShadowing(cosWi, cosWo, alpha)
		value := f * dist * g / math.Abs(4*cosWi*cosWo)
		return core.ColorRGB{X: value, Y: value, Z: value}
	}

	reflected := sampling.Reflect(wi.Negate(), n)
	halfway := reflected.Add(wo).Normalize()
	cosHalf := n.Dot(halfway)
	cosHalfWo := halfway.Dot(wo)
	cosReflected := reflected.Dot(n)
	cosWo := wo.Dot(n)

	f := sampling.FresnelDielectric(cosHalfWo, d.Eta)
	dist := sampling.GGXDistribution(cosHalf, alpha)
	g := sampling.GGXSmithShadowing(cosReflected, cosWo, alpha)
	return d.Color.Multiply((1 - f) * dist * g / math.Abs(4*cosWo*cosReflected))
}

func (d *RoughDielectric) SampleWi(wo, normal core.Vec3, rng *rand.Rand) core.Vec3 {
	n := upNormal(wo, normal)
	halfway := sampling.SampleMicrofacetNormal(n, d.Roughness, rng)
	cosHalfWo := wo.Dot(halfway)

	if rng.Float64() < sampling.FresnelDielectric(cosHalfWo, d.Eta) {
		wi := sampling.Reflect(wo, halfway)
		if !sampling.IsSameHemisphere(wi, wo, n) {
			return core.Vec3{}
		}
		return wi
	}
	reflected := sampling.Reflect(wo, halfway)
	wi := sampling.Reflect(reflected, n).Negate()
	if sampling.IsSameHemisphere(wi, wo, n) {
		return core.Vec3{}
	}
	return wi
}

func (d *RoughDielectric) SamplePdf(wi, wo, normal core.Vec3) float64 {
	sameHemisphere := sampling.IsSameHemisphere(wi, wo, normal)
	n := upNormal(wo, normal)

	if sameHemisphere {
		halfway := wi.Add(wo).Normalize()
		cosHalfWo := halfway.Dot(wo)
		cosHalf := halfway.Dot(n)
		return sampling.FresnelDielectric(cosHalfWo, d.Eta) *
			sampling.SampleMicrofacetPDF(cosHalf, d.Roughness) / math.Abs(4*cosHalfWo)
	}

	reflected := sampling.Reflect(wi.Negate(), n)
	halfway := reflected.Add(wo).Normalize()
	cosHalfWo := halfway.Dot(wo)
	cosHalf := n.Dot(halfway)
	weight := (1 - sampling.FresnelDielectric(cosHalfWo, d.Eta)) *
		sampling.SampleMicrofacetPDF(cosHalf, d.Roughness)
	return weight / math.Abs(4*cosHalfWo)
}
