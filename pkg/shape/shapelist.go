package shape

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ShapeList composes several shapes into one core.Shape by linear search,
// used for triangle meshes and the built-in polyhedra (cube, pyramid). It
// mirrors the teacher's TriangleMesh at a scale where a BVH isn't worth it
// (a handful to a few hundred triangles) — primitives large enough to
// benefit from sub-acceleration should instead be wrapped individually and
// accelerated by pkg/accel's BVH one level up.
type ShapeList struct {
	Shapes []core.Shape
	bbox   core.AABB
	area   float64
}

func NewShapeList(shapes []core.Shape) *ShapeList {
	sl := &ShapeList{Shapes: shapes}
	if len(shapes) > 0 {
		sl.bbox = shapes[0].BoundingBox()
		for _, s := range shapes[1:] {
			sl.bbox = sl.bbox.Union(s.BoundingBox())
		}
	}
	for _, s := range shapes {
		sl.area += s.Area()
	}
	return sl
}

func (sl *ShapeList) Intersect(ray core.Ray, tMin, tMax float64) (*core.SurfaceInteraction, bool) {
	var closest *core.SurfaceInteraction
	closestT := tMax
	for _, s := range sl.Shapes {
		if si, hit := s.Intersect(ray, tMin, closestT); hit {
			closest = si
			closestT = si.THit
		}
	}
	return closest, closest != nil
}

func (sl *ShapeList) BoundingBox() core.AABB { return sl.bbox }

func (sl *ShapeList) Area() float64 { return sl.area }

// SampleWi picks a child shape with probability proportional to its area
// and samples a direction from it, so the mesh behaves as a single uniform
// area emitter when used as a light.
func (sl *ShapeList) SampleWi(point core.Vec3, rng *rand.Rand) core.Vec3 {
	if len(sl.Shapes) == 0 {
		return core.Vec3{}
	}
	target := rng.Float64() * sl.area
	for _, s := range sl.Shapes {
		target -= s.Area()
		if target <= 0 {
			return s.SampleWi(point, rng)
		}
	}
	return sl.Shapes[len(sl.Shapes)-1].SampleWi(point, rng)
}

// SamplePdf averages the per-triangle solid-angle PDF weighted by area,
// matching the probability SampleWi uses to pick a child.
func (sl *ShapeList) SamplePdf(point core.Vec3, wi core.Vec3) float64 {
	if sl.area == 0 {
		return 0
	}
	total := 0.0
	for _, s := range sl.Shapes {
		total += s.Area() * s.SamplePdf(point, wi)
	}
	return total / sl.area
}

// NewBox builds an axis-aligned box from two opposite corners as twelve
// triangles, analogous to the teacher's box/cube scene helpers.
func NewBox(min, max core.Vec3) *ShapeList {
	p := [8]core.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z}, {X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z}, {X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z}, {X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z}, {X: min.X, Y: max.Y, Z: max.Z},
	}
	quad := func(a, b, c, d core.Vec3) []core.Shape {
		return []core.Shape{NewTriangle(a, b, c), NewTriangle(a, c, d)}
	}
	var shapes []core.Shape
	shapes = append(shapes, quad(p[0], p[3], p[2], p[1])...) // -Z
	shapes = append(shapes, quad(p[4], p[5], p[6], p[7])...) // +Z
	shapes = append(shapes, quad(p[0], p[1], p[5], p[4])...) // -Y
	shapes = append(shapes, quad(p[3], p[7], p[6], p[2])...) // +Y
	shapes = append(shapes, quad(p[0], p[4], p[7], p[3])...) // -X
	shapes = append(shapes, quad(p[1], p[2], p[6], p[5])...) // +X
	return NewShapeList(shapes)
}

// NewPyramid builds a square-based pyramid (four triangular sides plus a
// quad base) centered at base with the given half-width and height.
func NewPyramid(base core.Vec3, halfWidth, height float64) *ShapeList {
	apex := base.Add(core.Vec3{Y: height})
	p0 := base.Add(core.Vec3{X: -halfWidth, Z: -halfWidth})
	p1 := base.Add(core.Vec3{X: halfWidth, Z: -halfWidth})
	p2 := base.Add(core.Vec3{X: halfWidth, Z: halfWidth})
	p3 := base.Add(core.Vec3{X: -halfWidth, Z: halfWidth})

	shapes := []core.Shape{
		NewTriangle(p0, p1, apex),
		NewTriangle(p1, p2, apex),
		NewTriangle(p2, p3, apex),
		NewTriangle(p3, p0, apex),
		NewTriangle(p0, p2, p1),
		NewTriangle(p0, p3, p2),
	}
	return NewShapeList(shapes)
}

// NewRegularPolygon builds a fan of triangles approximating an n-sided
// regular polygon in the XZ plane, centered at center with the given
// circumradius.
func NewRegularPolygon(center core.Vec3, radius float64, n int) *ShapeList {
	if n < 3 {
		n = 3
	}
	pts := make([]core.Vec3, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = center.Add(core.Vec3{X: radius * math.Cos(a), Z: radius * math.Sin(a)})
	}
	var shapes []core.Shape
	for i := 1; i < n-1; i++ {
		shapes = append(shapes, NewTriangle(pts[0], pts[i], pts[i+1]))
	}
	return NewShapeList(shapes)
}
