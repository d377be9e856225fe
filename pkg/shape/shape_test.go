package shape

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSphereIntersectRoundTrip(t *testing.T) {
	s := NewSphere(core.Vec3{X: 0, Y: 0, Z: 0}, 1)
	ray := core.NewRay(core.Vec3{X: 0, Y: 0, Z: -5}, core.Vec3{X: 0, Y: 0, Z: 1})
	si, hit := s.Intersect(ray, 1e-4, math.Inf(1))
	if !hit {
		t.Fatal("expected hit")
	}
	if math.Abs(si.THit-4) > 1e-9 {
		t.Errorf("THit = %v, want 4", si.THit)
	}
	if si.Normal.Dot(core.Vec3{X: 0, Y: 0, Z: -1}) < 0.999 {
		t.Errorf("normal = %v, want ~(0,0,-1)", si.Normal)
	}
}

// TestSpherePDFMatchesSubtendedSolidAngle Monte-Carlo integrates 1/pdf over
// directions drawn from SampleWi, which (since they're drawn from that same
// pdf) should average to the solid angle the sphere subtends from point.
func TestSpherePDFMatchesSubtendedSolidAngle(t *testing.T) {
	s := NewSphere(core.Vec3{X: 0, Y: 0, Z: 0}, 1)
	point := core.Vec3{X: 0, Y: 0, Z: -5}
	rng := rand.New(rand.NewSource(42))

	sinThetaMax := 1.0 / 5.0
	cosThetaMax := math.Sqrt(1 - sinThetaMax*sinThetaMax)
	wantSolidAngle := 2 * math.Pi * (1 - cosThetaMax)

	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		wi := s.SampleWi(point, rng)
		pdf := s.SamplePdf(point, wi)
		if pdf <= 0 {
			t.Fatalf("sampled direction has zero pdf")
		}
		sum += 1.0 / pdf
	}
	got := sum / n
	if math.Abs(got-wantSolidAngle)/wantSolidAngle > 0.02 {
		t.Errorf("got solid angle %v, want ~%v", got, wantSolidAngle)
	}
}

func TestRectIntersectWithinBounds(t *testing.T) {
	q := NewRect(core.Vec3{X: -1, Y: -1, Z: 0}, core.Vec3{X: 2, Y: 0, Z: 0}, core.Vec3{X: 0, Y: 2, Z: 0})
	ray := core.NewRay(core.Vec3{X: 0, Y: 0, Z: -1}, core.Vec3{X: 0, Y: 0, Z: 1})
	si, hit := q.Intersect(ray, 1e-4, math.Inf(1))
	if !hit {
		t.Fatal("expected hit at quad center")
	}
	if math.Abs(si.THit-1) > 1e-9 {
		t.Errorf("THit = %v, want 1", si.THit)
	}

	missRay := core.NewRay(core.Vec3{X: 10, Y: 10, Z: -1}, core.Vec3{X: 0, Y: 0, Z: 1})
	if _, hit := q.Intersect(missRay, 1e-4, math.Inf(1)); hit {
		t.Error("expected miss outside quad bounds")
	}
}

func TestBoxBoundingBoxMatchesCorners(t *testing.T) {
	box := NewBox(core.Vec3{X: -1, Y: -1, Z: -1}, core.Vec3{X: 1, Y: 1, Z: 1})
	bbox := box.BoundingBox()
	if bbox.Min.X > -1+1e-6 || bbox.Max.X < 1-1e-6 {
		t.Errorf("box bounding box = %v, want to contain [-1,1]", bbox)
	}
}

func TestTriangleAreaMatchesFormula(t *testing.T) {
	tri := NewTriangle(
		core.Vec3{X: 0, Y: 0, Z: 0},
		core.Vec3{X: 1, Y: 0, Z: 0},
		core.Vec3{X: 0, Y: 1, Z: 0},
	)
	if math.Abs(tri.Area()-0.5) > 1e-9 {
		t.Errorf("area = %v, want 0.5", tri.Area())
	}
}

func TestPyramidApexIsHitFromAbove(t *testing.T) {
	pyramid := NewPyramid(core.Vec3{X: 0, Y: 0, Z: 0}, 1, 2)
	ray := core.NewRay(core.Vec3{X: 0.1, Y: 10, Z: 0.1}, core.Vec3{X: 0, Y: -1, Z: 0})
	if _, hit := pyramid.Intersect(ray, 1e-4, math.Inf(1)); !hit {
		t.Error("expected a hit on one of the pyramid's sloped faces")
	}

	bbox := pyramid.BoundingBox()
	if bbox.Max.Y < 2-1e-6 {
		t.Errorf("pyramid bounding box max.Y = %v, want to contain apex at y=2", bbox.Max.Y)
	}
}

func TestRegularPolygonCoversItsCircumradius(t *testing.T) {
	hexagon := NewRegularPolygon(core.Vec3{X: 0, Y: 0, Z: 0}, 2, 6)
	ray := core.NewRay(core.Vec3{X: 0.3, Y: 1, Z: 0.3}, core.Vec3{X: 0, Y: -1, Z: 0})
	if _, hit := hexagon.Intersect(ray, 1e-4, math.Inf(1)); !hit {
		t.Error("expected a hit near the polygon's center")
	}

	missRay := core.NewRay(core.Vec3{X: 10, Y: 1, Z: 10}, core.Vec3{X: 0, Y: -1, Z: 0})
	if _, hit := hexagon.Intersect(missRay, 1e-4, math.Inf(1)); hit {
		t.Error("expected a miss well outside the polygon's circumradius")
	}
}
