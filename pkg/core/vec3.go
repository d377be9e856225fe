// Package core holds the math primitives and cross-package contracts shared
// by every other package in the tracer: vectors, rays, bounding boxes,
// transforms, the surface-interaction record, and the Shape/Primitive/
// Material/Light/BxDF interfaces that let the shape, primitive, bxdf,
// material and light packages plug into the accelerator and integrator
// without importing each other.
package core

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D vector or point.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 represents a 2D vector, used for texture coordinates and [0,1) samples.
type Vec2 struct {
	X, Y float64
}

// ColorRGB is an RGB radiance/reflectance value. It is the same shape as
// Vec3 (three float channels) so arithmetic on colors reuses Vec3's methods.
type ColorRGB = Vec3

func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }
func NewVec2(x, y float64) Vec2    { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Multiply(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec3) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Subtract(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) Divide(s float64) Vec3 { return v.Multiply(1.0 / s) }

// MultiplyVec returns the component-wise (Hadamard) product of two vectors.
// Used throughout the integrator for throughput and color attenuation.
func (v Vec3) MultiplyVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vec3) Length() float64        { return math.Sqrt(v.LengthSquared()) }
func (v Vec3) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

func (v Vec3) Dot(o Vec3) float64    { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) AbsDot(o Vec3) float64 { return math.Abs(v.Dot(o)) }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Multiply(1.0 / l)
}

// Clamp clamps each component to [minVal, maxVal].
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: math.Max(minVal, math.Min(maxVal, v.X)),
		Y: math.Max(minVal, math.Min(maxVal, v.Y)),
		Z: math.Max(minVal, math.Min(maxVal, v.Z)),
	}
}

// GammaCorrect applies a component-wise pow(1/gamma); the driver uses this
// with gamma=2.0 to approximate sRGB encoding before quantizing to bytes.
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{math.Pow(math.Max(0, v.X), invGamma), math.Pow(math.Max(0, v.Y), invGamma), math.Pow(math.Max(0, v.Z), invGamma)}
}

func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// MaxComponent returns the largest of the three channels; used for the
// Russian-roulette continue-probability.
func (v Vec3) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// Luminance returns the Rec. 709 perceptual luminance of an RGB color.
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// IsFinite reports whether every component is a finite, non-NaN number.
// Used by the driver's last-line-of-defense NonFiniteRadiance guard.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Equals compares two vectors within a small absolute tolerance.
func (v Vec3) Equals(o Vec3) bool {
	const eps = 1e-9
	return math.Abs(v.X-o.X) < eps && math.Abs(v.Y-o.Y) < eps && math.Abs(v.Z-o.Z) < eps
}
