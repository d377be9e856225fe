package render

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/light"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/primitive"
	"github.com/df07/go-pathtracer/pkg/shape"
	"github.com/df07/go-pathtracer/pkg/texture"
)

func simpleLitScene() *core.Scene {
	floor := shape.NewSphere(core.Vec3{X: 0, Y: -100.5, Z: -1}, 100)
	floorMat := material.NewLambertian(core.ColorRGB{X: 0.6, Y: 0.6, Z: 0.6})
	floorPrim := primitive.NewGeometricPrimitive(floor, core.Identity(), floorMat)

	world := primitive.NewPrimitiveList([]core.Primitive{floorPrim})
	env := light.NewEnvironment(texture.NewConstant(core.ColorRGB{X: 0.5, Y: 0.7, Z: 1.0}))
	lights := core.NewLightList([]core.Light{env})

	cam := camera.NewCamera(camera.Options{
		LookFrom: core.Vec3{X: 0, Y: 0, Z: 1}, LookAt: core.Vec3{X: 0, Y: 0, Z: -1},
		ViewUp: core.Vec3{X: 0, Y: 1, Z: 0}, VerticalFOVDegrees: 60, AspectRatio: 1.0,
		Aperture: 0, FocusDist: 1,
	})

	return &core.Scene{Camera: cam, World: world, Lights: lights}
}

func TestRenderRejectsEmptyScene(t *testing.T) {
	scene := &core.Scene{}
	settings := core.DefaultSettings()
	settings.Width, settings.Height, settings.NSamples, settings.MaxDepth = 4, 4, 1, 2

	_, err := Render(scene, settings, Options{})
	if err == nil {
		t.Fatal("expected EmptySceneError for an unpopulated scene")
	}
}

func TestRenderProducesCorrectlySizedImage(t *testing.T) {
	scene := simpleLitScene()
	settings := core.DefaultSettings()
	settings.Width, settings.Height, settings.NSamples, settings.MaxDepth = 8, 6, 4, 3

	img, err := Render(scene, settings, Options{NumWorkers: 2, Seed: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Fatalf("image size = %v, want 8x6", img.Bounds())
	}
}

func TestRenderIsDeterministicForFixedSeed(t *testing.T) {
	settings := core.DefaultSettings()
	settings.Width, settings.Height, settings.NSamples, settings.MaxDepth = 6, 6, 2, 3

	img1, err := Render(simpleLitScene(), settings, Options{NumWorkers: 1, Seed: 42})
	if err != nil {
		t.Fatal(err)
	}
	img2, err := Render(simpleLitScene(), settings, Options{NumWorkers: 1, Seed: 42})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(img1.Pix); i++ {
		if img1.Pix[i] != img2.Pix[i] {
			t.Fatalf("same-seed single-worker renders diverged at byte %d: %d != %d", i, img1.Pix[i], img2.Pix[i])
		}
	}
}
