package primitive

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PrimitiveList is a flat, linearly-searched collection of primitives. It
// implements both core.Primitive (so a group of primitives can itself be
// sampled as a compound light) and core.PrimitiveContainer (so it can
// serve as Scene.World directly, e.g. for scenes too small to bother
// building a BVH for). Grounded on the Rust original's
// primitives/primitive_list.rs.
type PrimitiveList struct {
	Items []core.Primitive
}

func NewPrimitiveList(items []core.Primitive) *PrimitiveList {
	return &PrimitiveList{Items: items}
}

func (l *PrimitiveList) Add(p core.Primitive) { l.Items = append(l.Items, p) }

func (l *PrimitiveList) Intersect(ray core.Ray, tMin, tMax float64) (*core.SurfaceInteraction, bool) {
	var closest *core.SurfaceInteraction
	closestT := tMax
	for _, item := range l.Items {
		if si, hit := item.Intersect(ray, tMin, closestT); hit {
			closest = si
			closestT = si.THit
		}
	}
	return closest, closest != nil
}

func (l *PrimitiveList) BoundingBox() core.AABB {
	if len(l.Items) == 0 {
		return core.AABB{}
	}
	box := l.Items[0].BoundingBox()
	for _, item := range l.Items[1:] {
		box = box.Union(item.BoundingBox())
	}
	return box
}

// PrimitiveMaterial is nil: a list has no single material of its own. It
// only implements core.Primitive so it can be sampled as a compound light.
func (l *PrimitiveList) PrimitiveMaterial() core.Material { return nil }

func (l *PrimitiveList) SampleWi(point core.Vec3, rng *rand.Rand) core.Vec3 {
	if len(l.Items) == 0 {
		return core.Vec3{}
	}
	idx := rng.Intn(len(l.Items))
	return l.Items[idx].SampleWi(point, rng)
}

// SamplePdf averages each member's PDF with equal weight, matching the
// uniform-random pick in SampleWi.
func (l *PrimitiveList) SamplePdf(point core.Vec3, wi core.Vec3) float64 {
	if len(l.Items) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.Items))
	sum := 0.0
	for _, item := range l.Items {
		sum += item.SamplePdf(point, wi) * weight
	}
	return sum
}
