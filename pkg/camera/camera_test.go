package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPinholeRayPointsTowardLookAt(t *testing.T) {
	lookFrom := core.Vec3{X: 0, Y: 0, Z: 5}
	lookAt := core.Vec3{X: 0, Y: 0, Z: 0}
	c := NewCamera(Options{
		LookFrom: lookFrom, LookAt: lookAt, ViewUp: core.Vec3{X: 0, Y: 1, Z: 0},
		VerticalFOVDegrees: 40, AspectRatio: 1.0, Aperture: 0, FocusDist: lookFrom.Subtract(lookAt).Length(),
	})
	rng := rand.New(rand.NewSource(1))
	ray := c.GetRay(0.5, 0.5, rng)

	want := lookAt.Subtract(lookFrom).Normalize()
	got := ray.Direction.Normalize()
	if got.Subtract(want).Length() > 1e-6 {
		t.Errorf("center ray direction = %v, want %v", got, want)
	}
}

func TestLensSampleStaysWithinAperture(t *testing.T) {
	lookFrom := core.Vec3{X: 0, Y: 0, Z: 5}
	lookAt := core.Vec3{X: 0, Y: 0, Z: 0}
	aperture := 0.5
	c := NewCamera(Options{
		LookFrom: lookFrom, LookAt: lookAt, ViewUp: core.Vec3{X: 0, Y: 1, Z: 0},
		VerticalFOVDegrees: 40, AspectRatio: 1.0, Aperture: aperture, FocusDist: 5,
	})
	rng := rand.New(rand.NewSource(2))
	maxDist := 0.0
	for i := 0; i < 1000; i++ {
		ray := c.GetRay(0.5, 0.5, rng)
		d := ray.Origin.Subtract(lookFrom).Length()
		if d > maxDist {
			maxDist = d
		}
	}
	if maxDist > aperture/2+1e-9 {
		t.Errorf("lens sample distance %v exceeds lens radius %v", maxDist, aperture/2)
	}
	if maxDist < 1e-6 {
		t.Error("expected some nonzero lens-sample spread")
	}
}

func TestShutterTimeSampleWithinBounds(t *testing.T) {
	c := NewCamera(Options{
		LookFrom: core.Vec3{X: 0, Y: 0, Z: 1}, LookAt: core.Vec3{}, ViewUp: core.Vec3{X: 0, Y: 1, Z: 0},
		VerticalFOVDegrees: 90, AspectRatio: 1.0, Aperture: 0, FocusDist: 1,
		Time0: 0.0, Time1: 1.0,
	})
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		ray := c.GetRay(0.5, 0.5, rng)
		if ray.Time < 0 || ray.Time > 1 {
			t.Fatalf("shutter time %v out of bounds [0,1]", ray.Time)
		}
	}
}

func TestZeroShutterIntervalIsDeterministic(t *testing.T) {
	c := NewCamera(Options{
		LookFrom: core.Vec3{X: 0, Y: 0, Z: 1}, LookAt: core.Vec3{}, ViewUp: core.Vec3{X: 0, Y: 1, Z: 0},
		VerticalFOVDegrees: 90, AspectRatio: 1.0, Aperture: 0, FocusDist: 1,
		Time0: 0.25, Time1: 0.25,
	})
	rng := rand.New(rand.NewSource(4))
	ray := c.GetRay(0.5, 0.5, rng)
	if math.Abs(ray.Time-0.25) > 1e-12 {
		t.Errorf("time = %v, want 0.25", ray.Time)
	}
}
