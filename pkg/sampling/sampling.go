// Package sampling is the math-and-sampling layer (spec §4.A): cosine-
// weighted hemisphere, disk, sphere and cone samplers, the GGX microfacet
// distribution and Smith shadowing term, and the Fresnel equations the
// bxdf package builds its concrete scattering models on top of.
//
// Every function here is a pure function of its inputs plus an explicit
// *rand.Rand; none of them touch a shared or global RNG, so a caller that
// threads one *rand.Rand per worker goroutine gets the thread-local RNG
// policy spec §5 requires for free.
package sampling

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RandomCosineDirection draws a direction about normal whose density is
// max(0, w.n)/pi (spec §4.A). Uses Malley's method: sample a unit disk,
// project up to the hemisphere, then rotate into normal's local frame.
func RandomCosineDirection(normal core.Vec3, rng *rand.Rand) core.Vec3 {
	r1, r2 := rng.Float64(), rng.Float64()
	phi := 2 * math.Pi * r1
	cosTheta := math.Sqrt(1 - r2)
	sinTheta := math.Sqrt(r2)

	local := core.Vec3{X: math.Cos(phi) * sinTheta, Y: math.Sin(phi) * sinTheta, Z: cosTheta}
	onb := core.NewONBFromW(normal)
	return onb.Local(local).Normalize()
}

// CosineHemispherePDF returns the PDF of RandomCosineDirection for wi.
func CosineHemispherePDF(normal, wi core.Vec3) float64 {
	cosTheta := normal.Dot(wi)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// RandomInUnitDisk draws a uniform point in the unit disk (z=0), used by
// the thin-lens camera for aperture sampling.
func RandomInUnitDisk(rng *rand.Rand) core.Vec3 {
	for {
		p := core.Vec3{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInUnitSphere draws a uniform point within the unit ball, used as
// the fuzz offset for the rough-metal BxDF.
func RandomInUnitSphere(rng *rand.Rand) core.Vec3 {
	for {
		p := core.Vec3{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1, Z: 2*rng.Float64() - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector draws a uniform direction on the unit sphere, used by
// the environment light's sample_wi.
func RandomUnitVector(rng *rand.Rand) core.Vec3 {
	z := 2*rng.Float64() - 1
	a := 2 * math.Pi * rng.Float64()
	r := math.Sqrt(math.Max(0, 1-z*z))
	return core.Vec3{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
}

// SphereConePDF is the solid-angle PDF of uniformly sampling the cone
// subtended by a sphere of the given radius at the given distance (spec
// §4.A); falls back to uniform-sphere density when the reference point is
// inside the sphere.
func SphereConePDF(distance, radius float64) float64 {
	if distance <= radius {
		return 1.0 / (4 * math.Pi)
	}
	sinThetaMax := radius / distance
	cosThetaMax := math.Sqrt(math.Max(0, 1-sinThetaMax*sinThetaMax))
	return 1.0 / (2 * math.Pi * (1 - cosThetaMax))
}

func SphereUniformPDF(radius float64) float64 {
	return 1.0 / (4 * math.Pi * radius * radius)
}

// SampleSphereCone draws a unit direction from point toward a sphere of
// the given center/radius by uniformly sampling the cone the sphere
// subtends at point, falling back to a uniform sphere-surface sample when
// point lies inside the sphere.
func SampleSphereCone(point, center core.Vec3, radius float64, rng *rand.Rand) core.Vec3 {
	toCenter := center.Subtract(point)
	distance := toCenter.Length()
	if distance <= radius {
		return RandomUnitVector(rng)
	}

	dir := toCenter.Multiply(1.0 / distance)
	sinThetaMax2 := (radius * radius) / (distance * distance)
	cosThetaMax := math.Sqrt(math.Max(0, 1-sinThetaMax2))

	r1, r2 := rng.Float64(), rng.Float64()
	cosTheta := 1 - r1*(1-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * r2

	onb := core.NewONBFromW(dir)
	local := core.Vec3{X: math.Cos(phi) * sinTheta, Y: math.Sin(phi) * sinTheta, Z: cosTheta}
	return onb.Local(local).Normalize()
}

// Reflect mirrors v about normal n (both assumed unit length); v and the
// result both point away from the surface.
func Reflect(v, n core.Vec3) core.Vec3 {
	return n.Multiply(2 * v.Dot(n)).Subtract(v)
}

// IsSameHemisphere reports whether wi and wo lie on the same side of the
// plane through normal.
func IsSameHemisphere(wi, wo, normal core.Vec3) bool {
	return wi.Dot(normal)*wo.Dot(normal) > 0
}

// MinRoughness is the floor every rough BxDF clamps its alpha to; below it
// the microfacet lobe collapses numerically to a delta spike, so the bxdf
// package substitutes its delta variant directly instead (spec §4.G edge
// case).
const MinRoughness = 0.009

// GGXDistribution evaluates the Trowbridge-Reitz / GGX normal distribution
// D(h) for a half-vector h and shading normal n, given roughness alpha.
// Grounded on toy_ray_tracer's microfacet_distribution.
func GGXDistribution(nDotH, alpha float64) float64 {
	if nDotH <= 0 {
		return 0
	}
	a2 := alpha * alpha
	d := nDotH*nDotH*(a2-1) + 1
	return a2 / (math.Pi * d * d)
}

// smithG1 is the single-direction Smith masking term for GGX.
func smithG1(nDotV, alpha float64) float64 {
	if nDotV <= 0 {
		return 0
	}
	a2 := alpha * alpha
	return 2 * nDotV / (nDotV + math.Sqrt(a2+(1-a2)*nDotV*nDotV))
}

// GGXSmithShadowing is the combined (height-correlated-free, separable)
// Smith shadowing-masking term G(wi, wo) for GGX, grounded on
// toy_ray_tracer's microfacet_shadowing.
func GGXSmithShadowing(nDotWi, nDotWo, alpha float64) float64 {
	return smithG1(nDotWi, alpha) * smithG1(nDotWo, alpha)
}

// SampleMicrofacetNormal draws a half-vector about shading normal n from
// the GGX visible-normal-free distribution-only importance sampling
// strategy (spec §4.G), grounded on toy_ray_tracer's sample_microfacet.
func SampleMicrofacetNormal(normal core.Vec3, alpha float64, rng *rand.Rand) core.Vec3 {
	r1, r2 := rng.Float64(), rng.Float64()
	phi := 2 * math.Pi * r1
	cosTheta := math.Sqrt(math.Max(0, (1-r2)/(1+(alpha*alpha-1)*r2)))
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	local := core.Vec3{X: math.Cos(phi) * sinTheta, Y: math.Sin(phi) * sinTheta, Z: cosTheta}
	onb := core.NewONBFromW(normal)
	return onb.Local(local).Normalize()
}

// SampleMicrofacetPDF is the half-vector-space PDF of SampleMicrofacetNormal
// (D(h)*cosTheta_h); callers are responsible for the 1/(4 wo.h) Jacobian
// that converts it to a PDF over wi, grounded on toy_ray_tracer's
// sample_microfacet_pdf (which leaves that division to its callers too).
func SampleMicrofacetPDF(nDotH, alpha float64) float64 {
	if nDotH < 0 {
		return 0
	}
	return GGXDistribution(nDotH, alpha) * nDotH
}

// FresnelDielectric is the unpolarized Fresnel reflectance at a dielectric
// interface given cosThetaI and the relative index of refraction eta =
// etaT/etaI, grounded on toy_ray_tracer's fresnel_dielectric.
func FresnelDielectric(cosThetaI, eta float64) float64 {
	cosThetaI = math.Min(1, math.Max(-1, cosThetaI))
	if cosThetaI < 0 {
		eta = 1 / eta
		cosThetaI = -cosThetaI
	}

	sin2ThetaI := math.Max(0, 1-cosThetaI*cosThetaI)
	sin2ThetaT := sin2ThetaI / (eta * eta)
	if sin2ThetaT >= 1 {
		return 1 // total internal reflection
	}
	cosThetaT := math.Sqrt(1 - sin2ThetaT)

	rParl := (eta*cosThetaI - cosThetaT) / (eta*cosThetaI + cosThetaT)
	rPerp := (cosThetaI - eta*cosThetaT) / (cosThetaI + eta*cosThetaT)
	return (rParl*rParl + rPerp*rPerp) / 2
}

// FresnelSchlick is Schlick's approximation to FresnelDielectric, returning
// a per-channel reflectance given the normal-incidence reflectance f0
// (used for the glTF-PBR BxDF's specular lobe).
func FresnelSchlick(cosTheta float64, f0 core.ColorRGB) core.ColorRGB {
	m := math.Min(1, math.Max(0, 1-cosTheta))
	m2 := m * m
	weight := m2 * m2 * m // (1-cosTheta)^5
	one := core.ColorRGB{X: 1, Y: 1, Z: 1}
	return f0.Add(one.Subtract(f0).Multiply(weight))
}
