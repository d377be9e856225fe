package core

// Settings is the only configuration the core consumes (spec §6). Loaders
// and the CLI are responsible for producing one; the core never parses or
// validates it beyond the checks Render performs against the Scene.
type Settings struct {
	Width, Height int
	NSamples      int
	MaxDepth      int
	// MisWeight biases the fixed-mixture MIS coin toward BSDF sampling
	// (1.0) or light sampling (0.0); spec default is 0.5.
	MisWeight float64
	// RussianRouletteMinBounces is the bounce count after which Russian
	// roulette termination may fire (spec §4.K: "never before bounce 4").
	RussianRouletteMinBounces int
	OutputDir                 string
}

// DefaultSettings returns settings with the spec's documented defaults
// filled in; callers still must set Width/Height/NSamples/MaxDepth.
func DefaultSettings() Settings {
	return Settings{
		MisWeight:                 0.5,
		RussianRouletteMinBounces: 3,
	}
}

// Scene is the immutable aggregate the core renders (spec §3): built once,
// shared read-only by every render worker, and discarded after the render
// completes. Loaders/scene-builders are responsible for populating it and
// for building World, as a pkg/primitive PrimitiveList or a pkg/accel BVH.
type Scene struct {
	Camera Camera
	World  PrimitiveContainer
	Lights *LightList
}

// Validate checks the minimal precondition the core requires before
// rendering (spec §6/§7): at least one light and a populated camera.
// DegenerateGeometry, NumericEdge and NonFiniteRadiance are never surfaced
// here — they are recovered locally during rendering.
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return NewEmptySceneError("no camera")
	}
	if s.Lights == nil || s.Lights.Len() == 0 {
		return NewEmptySceneError("no lights")
	}
	if s.World == nil {
		return NewEmptySceneError("no primitives")
	}
	return nil
}
