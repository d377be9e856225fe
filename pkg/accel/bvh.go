// Package accel implements the acceleration-structure layer (spec §4.B):
// a BVH that splits each node at the spatial midpoint of the longest axis
// of the node's bounding box, sending each primitive to the side its
// bounding-box centre falls on. Primitives are not sorted and the split is
// not at the median, so the two halves need not hold equal counts; a node
// of at most leafThreshold primitives, or one whose primitives all fall on
// one side of the midpoint, stays a leaf. Leaf nodes are tested by linear
// search, and traversal goes left child first, tightening tMax as closer
// hits are found.
//
// Grounded on the teacher's pkg/core/bvh.go, generalized from core.Shape to
// core.Primitive so it accelerates the full scene graph (shapes plus
// material/transform) rather than raw geometry.
package accel

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// leafThreshold is the primitive count below which a node becomes a leaf
// rather than splitting further.
const leafThreshold = 4

type bvhNode struct {
	BoundingBox core.AABB
	Left, Right *bvhNode
	Primitives  []core.Primitive
}

// BVH implements core.PrimitiveContainer over a set of primitives.
type BVH struct {
	root *bvhNode
}

// NewBVH constructs a BVH from primitives (spec §4.B, table row F).
// Construction fails with core.ErrEmptyInput given zero primitives, and
// with a NoBoundingBoxError if a primitive's bounding box fails
// AABB.IsValid (a Min component above its Max, or NaN); infinite bounds
// are not rejected. An empty *world*, as
// opposed to an empty BVH, is still representable — pkg/scenes assembles
// geometry-free scenes (e.g. EmptyWorldSky) on primitive.NewPrimitiveList
// directly, which never calls NewBVH and has no such restriction.
func NewBVH(primitives []core.Primitive) (*BVH, error) {
	if len(primitives) == 0 {
		return nil, core.ErrEmptyInput
	}

	items := make([]core.Primitive, len(primitives))
	copy(items, primitives)

	for i, p := range items {
		box := p.BoundingBox()
		if !box.IsValid() {
			return nil, core.NewNoBoundingBoxError(i)
		}
	}

	return &BVH{root: buildBVH(items)}, nil
}

func buildBVH(primitives []core.Primitive) *bvhNode {
	box := primitives[0].BoundingBox()
	for _, p := range primitives[1:] {
		box = box.Union(p.BoundingBox())
	}

	if len(primitives) <= leafThreshold {
		return &bvhNode{BoundingBox: box, Primitives: primitives}
	}

	axis := box.LongestAxis()
	minVal, maxVal := axisRange(box, axis)
	if maxVal <= minVal {
		return &bvhNode{BoundingBox: box, Primitives: primitives}
	}
	splitPos := (minVal + maxVal) * 0.5

	var left, right []core.Primitive
	for _, p := range primitives {
		center := p.BoundingBox().Center()
		if axisValue(center, axis) < splitPos {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &bvhNode{BoundingBox: box, Primitives: primitives}
	}

	return &bvhNode{BoundingBox: box, Left: buildBVH(left), Right: buildBVH(right)}
}

func axisRange(box core.AABB, axis int) (float64, float64) {
	switch axis {
	case 0:
		return box.Min.X, box.Max.X
	case 1:
		return box.Min.Y, box.Max.Y
	default:
		return box.Min.Z, box.Max.Z
	}
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (b *BVH) Intersect(ray core.Ray, tMin, tMax float64) (*core.SurfaceInteraction, bool) {
	if b.root == nil {
		return nil, false
	}
	return intersectNode(b.root, ray, tMin, tMax)
}

// intersectNode traverses left-child-first, tightening tMax to the closest
// hit found so far so the right subtree only needs to beat it (spec §4.B).
func intersectNode(node *bvhNode, ray core.Ray, tMin, tMax float64) (*core.SurfaceInteraction, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.Primitives != nil {
		var closest *core.SurfaceInteraction
		closestT := tMax
		for _, p := range node.Primitives {
			if si, hit := p.Intersect(ray, tMin, closestT); hit {
				closest = si
				closestT = si.THit
			}
		}
		return closest, closest != nil
	}

	leftSi, leftHit := intersectNode(node.Left, ray, tMin, tMax)
	closestT := tMax
	if leftHit {
		closestT = leftSi.THit
	}
	rightSi, rightHit := intersectNode(node.Right, ray, tMin, closestT)
	if rightHit {
		return rightSi, true
	}
	return leftSi, leftHit
}

func (b *BVH) BoundingBox() core.AABB {
	if b.root == nil {
		return core.AABB{}
	}
	return b.root.BoundingBox
}
