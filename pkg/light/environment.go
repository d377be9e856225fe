package light

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/sampling"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// Environment is an infinite background light: every ray that escapes the
// scene samples it via Texture, evaluated on direction rather than a
// surface UV (spec §4.I). A constant-color environment is just
// texture.NewConstant; an image-driven one uses an equirectangular
// lat-long mapping, grounded on the teacher's image-texture machinery
// generalized from surface UVs to ray directions.
type Environment struct {
	Texture texture.Texture
}

func NewEnvironment(t texture.Texture) *Environment { return &Environment{Texture: t} }

func (e *Environment) Kind() core.LightKind { return core.LightKindInfinite }

func (e *Environment) BackgroundL(ray core.Ray) core.ColorRGB {
	dir := ray.Direction.Normalize()
	theta := math.Acos(clampUnit(dir.Y))
	phi := math.Atan2(dir.Z, dir.X) + math.Pi
	uv := core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
	return e.Texture.Evaluate(uv, dir)
}

func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

// SampleWi draws a uniform direction on the sphere (spec §4.A); an
// environment light has no geometry to sample more cleverly toward.
func (e *Environment) SampleWi(point core.Vec3, rng *rand.Rand) core.Vec3 {
	return sampling.RandomUnitVector(rng)
}

func (e *Environment) SamplePdf(point core.Vec3, wi core.Vec3) float64 {
	return 1.0 / (4 * math.Pi)
}
