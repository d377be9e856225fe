package core

import "math"

// Matrix4 is a row-major 4x4 matrix.
type Matrix4 [4][4]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// Mul multiplies two matrices, m*o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// Inverse computes the matrix inverse via Gauss-Jordan elimination with
// partial pivoting. Every transform built by the constructors below
// (translation, scale, rotation and their products) is invertible, so this
// panics only if the caller hands it a degenerate matrix directly.
func (m Matrix4) Inverse() Matrix4 {
	a := m
	inv := Identity4()

	for col := 0; col < 4; col++ {
		pivot := col
		maxVal := math.Abs(a[col][col])
		for row := col + 1; row < 4; row++ {
			if v := math.Abs(a[row][col]); v > maxVal {
				maxVal = v
				pivot = row
			}
		}
		if maxVal < 1e-12 {
			panic("core: singular matrix has no inverse")
		}
		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
			inv[col], inv[pivot] = inv[pivot], inv[col]
		}

		pivotVal := a[col][col]
		for j := 0; j < 4; j++ {
			a[col][j] /= pivotVal
			inv[col][j] /= pivotVal
		}

		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := a[row][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 4; j++ {
				a[row][j] -= factor * a[col][j]
				inv[row][j] -= factor * inv[col][j]
			}
		}
	}
	return inv
}

// Transform is an affine transform stored as the forward matrix and its
// cached inverse (spec §3/§4.C), so repeated point/vector/ray transport
// never re-derives the inverse.
type Transform struct {
	m    Matrix4
	mInv Matrix4
}

func NewTransform(m Matrix4) Transform {
	return Transform{m: m, mInv: m.Inverse()}
}

func NewTransformWithInverse(m, mInv Matrix4) Transform {
	return Transform{m: m, mInv: mInv}
}

func Identity() Transform { return Transform{m: Identity4(), mInv: Identity4()} }

func Translate(d Vec3) Transform {
	m := Identity4()
	m[0][3], m[1][3], m[2][3] = d.X, d.Y, d.Z
	return NewTransform(m)
}

func Scale(s Vec3) Transform {
	m := Identity4()
	m[0][0], m[1][1], m[2][2] = s.X, s.Y, s.Z
	return NewTransform(m)
}

// Rotate builds a rotation of angleDeg degrees about the given axis
// (Rodrigues' rotation formula).
func Rotate(axis Vec3, angleDeg float64) Transform {
	a := axis.Normalize()
	theta := angleDeg * math.Pi / 180.0
	sinT, cosT := math.Sin(theta), math.Cos(theta)

	m := Identity4()
	m[0][0] = a.X*a.X + (1-a.X*a.X)*cosT
	m[0][1] = a.X*a.Y*(1-cosT) - a.Z*sinT
	m[0][2] = a.X*a.Z*(1-cosT) + a.Y*sinT
	m[1][0] = a.X*a.Y*(1-cosT) + a.Z*sinT
	m[1][1] = a.Y*a.Y + (1-a.Y*a.Y)*cosT
	m[1][2] = a.Y*a.Z*(1-cosT) - a.X*sinT
	m[2][0] = a.X*a.Z*(1-cosT) - a.Y*sinT
	m[2][1] = a.Y*a.Z*(1-cosT) + a.X*sinT
	m[2][2] = a.Z*a.Z + (1-a.Z*a.Z)*cosT
	return NewTransform(m)
}

// Compose returns the transform that applies t first, then o (o.t in
// matrix terms: o's matrix times t's matrix).
func Compose(o, t Transform) Transform {
	return Transform{m: o.m.Mul(t.m), mInv: t.mInv.Mul(o.mInv)}
}

// Inverse returns the transform with forward and inverse matrices swapped.
func (t Transform) Inverse() Transform {
	return Transform{m: t.mInv, mInv: t.m}
}

func (t Transform) transformPointM(m Matrix4, p Vec3) Vec3 {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	if w != 1 && w != 0 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

func (t Transform) transformVectorM(m Matrix4, v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Point transforms a point (w=1) by this transform's forward matrix.
// Primitives build their transform from local-to-world parameters, so for
// them Point maps object space to world space, and Inverse() supplies the
// world-to-object direction where object space is needed; see
// pkg/primitive.
func (t Transform) Point(p Vec3) Vec3 { return t.transformPointM(t.m, p) }

// Vector transforms a direction (w=0): no translation component.
func (t Transform) Vector(v Vec3) Vec3 { return t.transformVectorM(t.m, v) }

// Normal transports a surface normal. Only rigid+uniform/non-uniform-scale
// transforms are supported in this tracer (spec §3), so the normal is
// approximated by the forward matrix applied as a vector and renormalized,
// rather than the full inverse-transpose.
func (t Transform) Normal(n Vec3) Vec3 { return t.transformVectorM(t.m, n).Normalize() }

func (t Transform) Ray(r Ray) Ray {
	return Ray{Origin: t.Point(r.Origin), Direction: t.Vector(r.Direction), Time: r.Time}
}

// AABB transports a bounding box by transforming its 8 corners and taking
// the component-wise min/max of the results (spec §4.C).
func (t Transform) AABB(b AABB) AABB {
	corners := [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z}, {b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z}, {b.Max.X, b.Max.Y, b.Max.Z},
	}
	out := NewAABBFromPoints(t.Point(corners[0]))
	for _, c := range corners[1:] {
		out = out.UnionPoint(t.Point(c))
	}
	return out
}
