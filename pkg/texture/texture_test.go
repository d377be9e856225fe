package texture

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCheckerAlternates(t *testing.T) {
	red := NewConstant(core.ColorRGB{X: 1})
	blue := NewConstant(core.ColorRGB{Z: 1})
	c := NewChecker(1.0, red, blue)

	a := c.Evaluate(core.Vec2{}, core.Vec3{X: 0.1, Y: 0.1, Z: 0.1})
	b := c.Evaluate(core.Vec2{}, core.Vec3{X: 4.0, Y: 0.1, Z: 0.1})
	if a.Equals(b) {
		t.Error("expected adjacent checker cells to differ")
	}
}

func TestImageNearestLookupClampsUV(t *testing.T) {
	pixels := []core.ColorRGB{
		{X: 1}, {Y: 1},
		{Z: 1}, {X: 1, Y: 1, Z: 1},
	}
	img := NewImage(2, 2, pixels)

	c := img.Evaluate(core.Vec2{X: 1.5, Y: -0.5}, core.Vec3{})
	if !c.IsFinite() {
		t.Errorf("expected finite color for out-of-range UV, got %v", c)
	}
}
