package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLightEmitsOnlyFrontFace(t *testing.T) {
	dl := NewDiffuseLight(core.ColorRGB{X: 1, Y: 1, Z: 1})
	front := &core.SurfaceInteraction{FrontFace: true}
	back := &core.SurfaceInteraction{FrontFace: false}

	if dl.Emission(front).X != 1 {
		t.Errorf("expected front-face emission, got %v", dl.Emission(front))
	}
	if dl.Emission(back).X != 0 {
		t.Errorf("expected zero back-face emission, got %v", dl.Emission(back))
	}
	if _, ok := dl.ComputeBSDF(front); ok {
		t.Error("diffuse light should not scatter")
	}
}

func TestLambertianComputeBSDF(t *testing.T) {
	l := NewLambertian(core.ColorRGB{X: 0.8, Y: 0.2, Z: 0.2})
	si := &core.SurfaceInteraction{Normal: core.Vec3{X: 0, Y: 0, Z: 1}}
	bsdf, ok := l.ComputeBSDF(si)
	if !ok {
		t.Fatal("expected lambertian to produce a bsdf")
	}
	if bsdf.IsDelta() {
		t.Error("lambertian bsdf should not be delta")
	}
}

func TestDielectricSubstitutesDeltaBelowMinRoughness(t *testing.T) {
	d := NewDielectric(1.5, 0.0, core.ColorRGB{X: 1, Y: 1, Z: 1})
	si := &core.SurfaceInteraction{Normal: core.Vec3{X: 0, Y: 0, Z: 1}}
	bsdf, ok := d.ComputeBSDF(si)
	if !ok || !bsdf.IsDelta() {
		t.Error("expected delta dielectric substitution for zero roughness")
	}
}
