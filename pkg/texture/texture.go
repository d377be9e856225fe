// Package texture implements the texture-evaluation layer materials sample
// to parameterize their BSDFs (spec §4.H), grounded on the teacher's
// pkg/material/image_texture.go and procedural_textures.go.
package texture

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture evaluates a color at a surface point's UV and world position.
type Texture interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.ColorRGB
}

// Constant always returns the same color, regardless of UV/point.
type Constant struct {
	Color core.ColorRGB
}

func NewConstant(c core.ColorRGB) *Constant { return &Constant{Color: c} }

func (c *Constant) Evaluate(uv core.Vec2, point core.Vec3) core.ColorRGB { return c.Color }

// Checker alternates between two child textures in a 3D grid whose cells
// span π·Scale along each axis (the sign of sin(x/Scale)·sin(y/Scale)·
// sin(z/Scale) picks the child), so it tiles consistently across a surface regardless of its UV
// parametrization.
type Checker struct {
	Scale float64
	Odd   Texture
	Even  Texture
}

func NewChecker(scale float64, odd, even Texture) *Checker {
	return &Checker{Scale: scale, Odd: odd, Even: even}
}

func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.ColorRGB {
	inv := 1.0 / c.Scale
	sines := math.Sin(inv*point.X) * math.Sin(inv*point.Y) * math.Sin(inv*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
