package bxdf

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/sampling"
)

// GltfPbr is the glTF metallic-roughness shading model: a diffuse lobe
// weighted by (1-metallic) and a GGX specular lobe whose Fresnel term uses
// a base reflectance lerped between the dielectric value implied by Eta and
// BaseColor by Metallic. Grounded on GltfPbrBxdf.
type GltfPbr struct {
	Eta       float64
	BaseColor core.ColorRGB
	Roughness float64
	Metallic  float64
}

func NewGltfPbr(eta float64, baseColor core.ColorRGB, roughness, metallic float64) *GltfPbr {
	if roughness < sampling.MinRoughness {
		roughness = sampling.MinRoughness
	}
	return &GltfPbr{Eta: eta, BaseColor: baseColor, Roughness: roughness, Metallic: metallic}
}

func (g *GltfPbr) IsDelta() bool { return false }

// f0 is the normal-incidence reflectance, lerped between the dielectric
// value etaToReflectivity(Eta) and BaseColor by Metallic.
func (g *GltfPbr) f0() core.ColorRGB {
	r := etaToReflectivity(g.Eta)
	dielectric := core.ColorRGB{X: r, Y: r, Z: r}
	return dielectric.Multiply(1 - g.Metallic).Add(g.BaseColor.Multiply(g.Metallic))
}

func etaToReflectivity(eta float64) float64 {
	v := (1 - eta) / (1 + eta)
	return v * v
}

func (g *GltfPbr) F(wi, wo, normal core.Vec3) core.ColorRGB {
	if !sampling.IsSameHemisphere(wi, wo, normal) {
		return core.ColorRGB{}
	}
	n := upNormal(wo, normal)

	cosWi := n.Dot(wi)
	cosWo := n.Dot(wo)
	halfway := wi.Add(wo).Normalize()
	cosHalfWi := halfway.Dot(wi)
	cosHalf := halfway.Dot(n)

	rf0 := g.f0()
	// The diffuse term's Fresnel transmittance is evaluated at both wi and
	// wo (not wo alone) so F(wi,wo) == F(wo,wi): swapping the two arguments
	// just swaps the two factors of this product.
	fWi := sampling.FresnelSchlick(cosWi, rf0)
	fWo := sampling.FresnelSchlick(cosWo, rf0)
	f := sampling.FresnelSchlick(cosHalfWi, rf0)

	dist := sampling.GGXDistribution(cosHalf, g.Roughness)
	shadow := sampling.GGXSmithShadowing(cosWi, cosWo, g.Roughness)

	cDiffuse := g.BaseColor.Multiply(1 - g.Metallic)
	one := core.ColorRGB{X: 1, Y: 1, Z: 1}
	transmittance := one.Subtract(fWi).MultiplyVec(one.Subtract(fWo))
	fDiffuse := cDiffuse.MultiplyVec(transmittance).Multiply(1 / math.Pi)
	fSpecular := f.Multiply(dist * shadow / (4 * cosWo * cosWi))

	return fDiffuse.Add(fSpecular)
}

// specularWeight is the Fresnel-derived mixture weight, evaluated at wo
// only since SampleWi must choose a lobe before wi exists; SamplePdf uses
// the identical function so the combined density matches what SampleWi
// actually draws.
func (g *GltfPbr) specularWeight(wo, normal core.Vec3) float64 {
	n := upNormal(wo, normal)
	f := sampling.FresnelSchlick(n.Dot(wo), g.f0())
	return (f.X + f.Y + f.Z) / 3
}

// SampleWi draws from a Fresnel-weighted mixture of the GGX half-vector
// lobe and the cosine-weighted diffuse hemisphere, matching spec's glTF PBR
// sampling strategy and SamplePdf's mixture density below.
func (g *GltfPbr) SampleWi(wo, normal core.Vec3, rng *rand.Rand) core.Vec3 {
	n := upNormal(wo, normal)
	var wi core.Vec3
	if rng.Float64() < g.specularWeight(wo, n) {
		halfway := sampling.SampleMicrofacetNormal(n, g.Roughness, rng)
		wi = sampling.Reflect(wo, halfway)
	} else {
		wi = sampling.RandomCosineDirection(n, rng)
	}
	if !sampling.IsSameHemisphere(wi, wo, n) {
		return core.Vec3{}
	}
	return wi
}

func (g *GltfPbr) SamplePdf(wi, wo, normal core.Vec3) float64 {
	if !sampling.IsSameHemisphere(wi, wo, normal) {
		return 0
	}
	n := upNormal(wo, normal)
	halfway := wi.Add(wo).Normalize()

	cosHalf := n.Dot(halfway)
	cosHalfWo := halfway.Dot(wo)

	fScalar := g.specularWeight(wo, n)

	specularPdf := sampling.SampleMicrofacetPDF(cosHalf, g.Roughness) / math.Abs(4*cosHalfWo)
	diffusePdf := sampling.CosineHemispherePDF(n, wi)

	return fScalar*specularPdf + (1-fScalar)*diffusePdf
}
