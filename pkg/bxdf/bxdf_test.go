package bxdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/sampling"
)

var up = core.Vec3{X: 0, Y: 0, Z: 1}

func randomHemisphereDir(rng *rand.Rand) core.Vec3 {
	for {
		v := core.Vec3{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1, Z: rng.Float64()}
		if v.LengthSquared() > 0 && v.LengthSquared() < 1 {
			return v.Normalize()
		}
	}
}

func TestLambertianReciprocity(t *testing.T) {
	l := NewLambertian(core.ColorRGB{X: 0.5, Y: 0.5, Z: 0.5})
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		wi := randomHemisphereDir(rng)
		wo := randomHemisphereDir(rng)
		f1 := l.F(wi, wo, up)
		f2 := l.F(wo, wi, up)
		if math.Abs(f1.X-f2.X) > 1e-9 {
			t.Fatalf("not reciprocal: f(wi,wo)=%v f(wo,wi)=%v", f1, f2)
		}
	}
}

func TestLambertianEnergyConservation(t *testing.T) {
	l := NewLambertian(core.ColorRGB{X: 0.9, Y: 0.9, Z: 0.9})
	rng := rand.New(rand.NewSource(2))
	wo := randomHemisphereDir(rng)

	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		wi := sampling.RandomCosineDirection(up, rng)
		pdf := sampling.CosineHemispherePDF(up, wi)
		if pdf <= 0 {
			continue
		}
		fcos := l.F(wi, wo, up).X * math.Abs(wi.Dot(up))
		sum += fcos / pdf
	}
	avg := sum / n
	if avg > 1.0+0.02 {
		t.Errorf("lambertian reflectance %v exceeds energy bound", avg)
	}
}

func TestGGXDielectricReciprocity(t *testing.T) {
	d := NewRoughDielectric(1.5, 0.3, core.ColorRGB{X: 1, Y: 1, Z: 1})
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		wi := randomHemisphereDir(rng)
		wo := randomHemisphereDir(rng)
		f1 := d.F(wi, wo, up)
		f2 := d.F(wo, wi, up)
		if math.Abs(f1.X-f2.X) > 1e-6 {
			t.Fatalf("not reciprocal: f(wi,wo)=%v f(wo,wi)=%v", f1, f2)
		}
	}
}

func TestMetalIsDeltaReflectsAboutNormal(t *testing.T) {
	m := NewMetal(core.ColorRGB{X: 1, Y: 1, Z: 1}, 0)
	rng := rand.New(rand.NewSource(4))
	wo := core.Vec3{X: 0.3, Y: 0.4, Z: 0.866}.Normalize()
	wi := m.SampleWi(wo, up, rng)
	if math.Abs(wi.Z-wo.Z) > 1e-9 || math.Abs(wi.X+wo.X) > 1e-9 {
		t.Errorf("reflected direction %v not mirrored from %v about Z", wi, wo)
	}
}

func TestGltfPbrReciprocity(t *testing.T) {
	g := NewGltfPbr(1.5, core.ColorRGB{X: 0.6, Y: 0.3, Z: 0.2}, 0.3, 0.5)
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		wi := randomHemisphereDir(rng)
		wo := randomHemisphereDir(rng)
		f1 := g.F(wi, wo, up)
		f2 := g.F(wo, wi, up)
		if math.Abs(f1.X-f2.X) > 1e-6 || math.Abs(f1.Y-f2.Y) > 1e-6 || math.Abs(f1.Z-f2.Z) > 1e-6 {
			t.Fatalf("not reciprocal: f(wi,wo)=%v f(wo,wi)=%v", f1, f2)
		}
	}
}

func TestGltfPbrEnergyConservation(t *testing.T) {
	g := NewGltfPbr(1.5, core.ColorRGB{X: 0.8, Y: 0.8, Z: 0.8}, 0.5, 0.0)
	rng := rand.New(rand.NewSource(6))
	wo := core.Vec3{X: 0.2, Y: 0.1, Z: 0.97}.Normalize()

	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		wi := g.SampleWi(wo, up, rng)
		if wi.IsZero() {
			continue
		}
		pdf := g.SamplePdf(wi, wo, up)
		if pdf <= 0 {
			continue
		}
		fcos := g.F(wi, wo, up).X * math.Abs(wi.Dot(up))
		sum += fcos / pdf
	}
	avg := sum / n
	if avg > 1.0+0.05 {
		t.Errorf("gltf pbr reflectance %v exceeds energy bound", avg)
	}
}

// TestGltfPbrSampleWiUsesBothLobes guards against SampleWi collapsing to
// GGX-only sampling: with metallic=0 the diffuse lobe dominates the mixture
// weight at grazing-to-normal incidence, so samples must spread well away
// from the mirror-reflection direction, not cluster on it the way a
// GGX-half-vector-only sampler would.
func TestGltfPbrSampleWiUsesBothLobes(t *testing.T) {
	g := NewGltfPbr(1.5, core.ColorRGB{X: 0.6, Y: 0.6, Z: 0.6}, 0.3, 0.0)
	rng := rand.New(rand.NewSource(8))
	wo := core.Vec3{X: 0.3, Y: 0, Z: 0.9539}.Normalize()
	mirror := sampling.Reflect(wo, up)

	farFromMirror := 0
	const n = 2000
	for i := 0; i < n; i++ {
		wi := g.SampleWi(wo, up, rng)
		if wi.IsZero() {
			continue
		}
		if wi.Dot(mirror) < 0.9 {
			farFromMirror++
		}
	}
	if farFromMirror == 0 {
		t.Error("SampleWi never drew away from the mirror direction; expected a Fresnel-weighted mixture of GGX and cosine-hemisphere directions")
	}
}

// TestGltfPbrSamplerConsistency checks that SamplePdf never reports a zero
// or negative density for a direction SampleWi actually produced (spec's
// sampler-consistency property: sample_wi's support must match sample_pdf).
func TestGltfPbrSamplerConsistency(t *testing.T) {
	g := NewGltfPbr(1.4, core.ColorRGB{X: 0.5, Y: 0.4, Z: 0.3}, 0.2, 0.7)
	rng := rand.New(rand.NewSource(9))
	wo := core.Vec3{X: 0.1, Y: 0.2, Z: 0.97}.Normalize()

	const n = 20000
	for i := 0; i < n; i++ {
		wi := g.SampleWi(wo, up, rng)
		if wi.IsZero() {
			continue
		}
		if pdf := g.SamplePdf(wi, wo, up); pdf <= 0 {
			t.Fatalf("SampleWi produced direction %v with non-positive SamplePdf %v", wi, pdf)
		}
	}
}
