package light

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/primitive"
	"github.com/df07/go-pathtracer/pkg/shape"
	"github.com/df07/go-pathtracer/pkg/texture"
)

func TestAreaLightSampleWiLandsOnPrimitive(t *testing.T) {
	s := shape.NewRect(core.Vec3{X: -1, Y: -1, Z: 2}, core.Vec3{X: 2, Y: 0, Z: 0}, core.Vec3{X: 0, Y: 2, Z: 0})
	mat := material.NewDiffuseLight(core.ColorRGB{X: 3, Y: 3, Z: 3})
	prim := primitive.NewGeometricPrimitive(s, core.Identity(), mat)
	al := NewAreaLight(prim)
	rng := rand.New(rand.NewSource(7))

	point := core.Vec3{X: 0, Y: 0, Z: 0}
	for i := 0; i < 100; i++ {
		wi := al.SampleWi(point, rng)
		ray := core.NewRay(point, wi)
		si, hit := prim.Intersect(ray, 1e-4, math.Inf(1))
		if !hit {
			t.Fatalf("sample %d: direction %v missed the light's own primitive", i, wi)
		}
		if le := si.Material.Emission(si); le.X < 2.999 {
			t.Errorf("sample %d: hit primitive emission = %v, want (3,3,3)", i, le)
		}
	}
}

func TestAreaLightSamplePdfMatchesPrimitivePdf(t *testing.T) {
	s := shape.NewRect(core.Vec3{X: -1, Y: -1, Z: 2}, core.Vec3{X: 2, Y: 0, Z: 0}, core.Vec3{X: 0, Y: 2, Z: 0})
	mat := material.NewDiffuseLight(core.ColorRGB{X: 3, Y: 3, Z: 3})
	prim := primitive.NewGeometricPrimitive(s, core.Identity(), mat)
	al := NewAreaLight(prim)

	point := core.Vec3{X: 0, Y: 0, Z: 0}
	wi := core.Vec3{X: 0, Y: 0, Z: 1}
	if got, want := al.SamplePdf(point, wi), prim.SamplePdf(point, wi); got != want {
		t.Errorf("AreaLight.SamplePdf = %v, want %v (delegated to the primitive)", got, want)
	}
}

func TestEnvironmentPDFNormalizesOverSphere(t *testing.T) {
	env := NewEnvironment(texture.NewConstant(core.ColorRGB{X: 1, Y: 1, Z: 1}))
	rng := rand.New(rand.NewSource(9))
	point := core.Vec3{}

	const n = 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		wi := env.SampleWi(point, rng)
		pdf := env.SamplePdf(point, wi)
		sum += 1.0 / pdf
	}
	avg := sum / n
	want := 4 * math.Pi
	if math.Abs(avg-want)/want > 0.05 {
		t.Errorf("integrated solid angle = %v, want ~%v", avg, want)
	}
}
