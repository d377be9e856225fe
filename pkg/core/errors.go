package core

import "github.com/pkg/errors"

// EmptySceneError is the only error the core can surface to a caller
// (spec §7): the scene has no lights, no primitives, or no camera, so
// rendering was never attempted.
type EmptySceneError struct {
	Reason string
}

func (e *EmptySceneError) Error() string {
	return "empty scene: " + e.Reason
}

// NewEmptySceneError wraps a reason with the package's error context so
// callers can use errors.Cause to recover the *EmptySceneError.
func NewEmptySceneError(reason string) error {
	return errors.WithStack(&EmptySceneError{Reason: reason})
}

// NoBoundingBoxError is returned by BVH construction when a primitive
// reports no bounding box (spec §4.F); every in-scope shape is bounded, so
// this indicates a caller bug upstream, not a renderable condition.
type NoBoundingBoxError struct {
	PrimitiveIndex int
}

func (e *NoBoundingBoxError) Error() string {
	return "primitive has no bounding box"
}

func NewNoBoundingBoxError(index int) error {
	return errors.Wrapf(&NoBoundingBoxError{PrimitiveIndex: index}, "bvh: primitive %d", index)
}

// ErrEmptyInput is returned by BVH construction when given zero primitives.
var ErrEmptyInput = errors.New("bvh: empty primitive list")

// DegenerateGeometryError marks a shape (typically a triangle) with zero
// area or collinear vertices. No code path returns it: such a triangle
// simply never reports a hit, and BVH construction neither checks for
// degenerate shapes nor logs them.
type DegenerateGeometryError struct {
	Detail string
}

func (e *DegenerateGeometryError) Error() string {
	return "degenerate geometry: " + e.Detail
}
