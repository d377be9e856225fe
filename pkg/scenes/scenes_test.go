package scenes

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/render"
)

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func baseSettings() core.Settings {
	s := core.DefaultSettings()
	s.Width, s.Height, s.NSamples, s.MaxDepth = 16, 16, 8, 10
	return s
}

func TestEmptyWorldSkyMatchesConstantColor(t *testing.T) {
	fixtures, err := integrator.LoadScenarioFixtures()
	if err != nil {
		t.Fatalf("loading golden fixtures: %v", err)
	}
	golden, ok := fixtures.Find("empty_world_sky")
	if !ok || len(golden.ReferenceRGB255) != 3 {
		t.Fatal("missing empty_world_sky fixture")
	}

	scene := EmptyWorldSky(1.0)
	settings := baseSettings()
	settings.NSamples = 1

	img, err := render.Render(scene, settings, render.Options{NumWorkers: 1, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	wantR, wantG, wantB := byte(golden.ReferenceRGB255[0]), byte(golden.ReferenceRGB255[1]), byte(golden.ReferenceRGB255[2])
	if byte(r>>8) != wantR || byte(g>>8) != wantG || byte(b>>8) != wantB {
		t.Errorf("pixel = (%d,%d,%d), want (%d,%d,%d)", r>>8, g>>8, b>>8, wantR, wantG, wantB)
	}
}

func TestBlackHoleCentrePixelIsBlack(t *testing.T) {
	scene := BlackHole(1.0)
	settings := baseSettings()

	img, err := render.Render(scene, settings, render.Options{NumWorkers: 1, Seed: 2})
	if err != nil {
		t.Fatal(err)
	}
	cx, cy := img.Bounds().Dx()/2, img.Bounds().Dy()/2
	r, g, b, _ := img.At(cx, cy).RGBA()
	if r>>8 != 0 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("centre pixel = (%d,%d,%d), want black", r>>8, g>>8, b>>8)
	}
}

func TestCornellCeilingLightIlluminatesFloor(t *testing.T) {
	scene := CornellCeilingLight()
	pt := integrator.NewPathTracer(core.Settings{MaxDepth: 12, RussianRouletteMinBounces: 3, MisWeight: 0.5})

	// Shoot straight up from the floor centre toward the ceiling light.
	ray := core.NewRay(core.Vec3{X: 278, Y: 1, Z: 278}, core.Vec3{X: 0, Y: 1, Z: 0})
	rngSeeded := newRNG(5)
	var sum core.ColorRGB
	const n = 500
	for i := 0; i < n; i++ {
		sum = sum.Add(pt.Li(ray, scene, rngSeeded))
	}
	avg := sum.Divide(n)
	if avg.Luminance() <= 0 {
		t.Errorf("expected positive floor-centre radiance under the ceiling light, got %v", avg)
	}
}

func TestMirrorCorridorTerminatesFinitely(t *testing.T) {
	scene := MirrorCorridor()
	settings := core.Settings{MaxDepth: 5, RussianRouletteMinBounces: 3, MisWeight: 0.5}
	pt := integrator.NewPathTracer(settings)
	rng := newRNG(9)

	ray := core.NewRay(core.Vec3{X: 0, Y: 0, Z: 0}, core.Vec3{X: 1, Y: 0.001, Z: 0})
	c := pt.Li(ray, scene, rng)
	if !c.IsFinite() {
		t.Errorf("expected finite radiance with max_depth=5, got %v", c)
	}
}

func TestRefractiveSphereOverCheckerCentreIsLit(t *testing.T) {
	scene := RefractiveSphereOverChecker()
	settings := baseSettings()

	img, err := render.Render(scene, settings, render.Options{NumWorkers: 1, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	cx, cy := img.Bounds().Dx()/2, img.Bounds().Dy()/2
	r, g, b, _ := img.At(cx, cy).RGBA()
	if r == 0 && g == 0 && b == 0 {
		t.Error("expected some illumination through the glass sphere at image centre")
	}
}

func TestMisBalancePlaneConvergesAcrossWeights(t *testing.T) {
	fixtures, err := integrator.LoadScenarioFixtures()
	if err != nil {
		t.Fatalf("loading golden fixtures: %v", err)
	}
	golden, ok := fixtures.Find("mis_balance")
	if !ok {
		t.Fatal("missing mis_balance fixture")
	}

	weights := []float64{0.0, 0.5, 1.0}
	var means []float64
	for _, w := range weights {
		scene := MisBalancePlane()
		settings := core.Settings{MaxDepth: 8, RussianRouletteMinBounces: 3, MisWeight: w}
		pt := integrator.NewPathTracer(settings)
		rng := newRNG(int64(100 + w*10))

		ray := core.NewRay(core.Vec3{X: 0, Y: 2, Z: 4}, core.Vec3{X: 0, Y: -0.4, Z: -1})
		var sum core.ColorRGB
		const n = 20000
		for i := 0; i < n; i++ {
			sum = sum.Add(pt.Li(ray, scene, rng))
		}
		means = append(means, sum.Divide(n).Luminance())
	}

	for i, m := range means {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			t.Fatalf("weight %v produced non-finite mean radiance", weights[i])
		}
	}

	// All three mixture weights should converge to near each other (spec §8
	// scenario 6's 5% figure is measured at 1024 samples per pixel across a
	// whole image; this unit test traces a single fixed ray at a smaller
	// sample count, so it checks against a generously widened multiple of
	// the fixture's documented tolerance rather than the bare figure).
	const varianceSafetyFactor = 6
	lo, hi := means[0], means[0]
	for _, m := range means {
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	if lo > 0 && (hi-lo)/lo > golden.TolerancePct*varianceSafetyFactor {
		t.Errorf("mis_weight means %v spread by more than %.0f%%", means, golden.TolerancePct*varianceSafetyFactor*100)
	}
}
