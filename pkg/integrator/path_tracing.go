// Package integrator implements the light-transport core (spec §4.K): a
// single unidirectional path-tracing estimator combining BSDF sampling and
// light sampling via one-sample multiple importance sampling. Grounded on
// the teacher's pkg/integrator/path_tracing.go, rewritten from a recursive
// rayColorRecursive into an explicit iterative loop (the spec's resolution
// of the "recursive vs iterative" open question: a path has no need for a
// call stack, and an iterative loop keeps stack depth independent of
// MaxDepth).
package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const (
	shadowEpsilon = 1e-4
	minPdf        = 1e-7
)

// PathTracer evaluates radiance along camera rays by iteratively bouncing
// through the scene. At every non-delta vertex it draws a single
// continuation direction from a fixed mixture of the BSDF and light
// sampling strategies (weighted by Settings.MisWeight) and divides by the
// mixture's own combined PDF — a one-sample MIS estimator, not a
// balance/power-heuristic combination of two separately-sampled
// directions (spec §4.K).
type PathTracer struct {
	Settings core.Settings
}

func NewPathTracer(settings core.Settings) *PathTracer {
	return &PathTracer{Settings: settings}
}

// Li estimates the radiance arriving along ray from the scene.
func (pt *PathTracer) Li(ray core.Ray, scene *core.Scene, rng *rand.Rand) core.ColorRGB {
	var L core.ColorRGB
	beta := core.ColorRGB{X: 1, Y: 1, Z: 1}

	for bounce := 0; bounce <= pt.Settings.MaxDepth; bounce++ {
		si, hit := scene.World.Intersect(ray, shadowEpsilon, math.Inf(1))
		if !hit {
			L = L.Add(beta.MultiplyVec(scene.Lights.BackgroundL(ray)))
			break
		}

		L = L.Add(beta.MultiplyVec(si.Material.Emission(si)))

		if bounce == pt.Settings.MaxDepth {
			break
		}

		bsdf, scatters := si.Material.ComputeBSDF(si)
		if !scatters {
			break
		}

		wi, pdf, ok := pt.sampleContinuation(scene, si, bsdf, rng)
		if !ok || pdf < minPdf {
			break
		}

		fCos := bsdf.FCos(wi, si.Wo)
		if fCos.IsZero() {
			break
		}
		beta = beta.MultiplyVec(fCos).Divide(pdf)
		if beta.IsZero() {
			break
		}

		if bounce >= pt.Settings.RussianRouletteMinBounces {
			continueProb := math.Min(0.99, beta.MaxComponent())
			if continueProb <= 0 || rng.Float64() > continueProb {
				break
			}
			beta = beta.Divide(continueProb)
		}

		ray = core.NewRayTimed(si.Point, wi, ray.Time)
	}

	return L
}

// sampleContinuation draws the single direction that carries the path
// across this vertex. A delta BSDF always samples itself (there is no
// light-sampling alternative: the BSDF is a spike the light strategy would
// almost never hit). A non-delta BSDF flips a coin weighted by
// Settings.MisWeight — heads draws from the BSDF, tails draws from the
// light list — and returns the fixed-mixture combined PDF
// mis_weight*bsdf_pdf + (1-mis_weight)*light_pdf regardless of which arm
// produced wi, per spec §4.K.
func (pt *PathTracer) sampleContinuation(scene *core.Scene, si *core.SurfaceInteraction, bsdf core.Bsdf, rng *rand.Rand) (wi core.Vec3, pdf float64, ok bool) {
	if bsdf.IsDelta() {
		wi = bsdf.SampleWi(si.Wo, rng)
		if wi.IsZero() {
			return core.Vec3{}, 0, false
		}
		return wi, bsdf.SamplePdf(wi, si.Wo), true
	}

	misWeight := pt.Settings.MisWeight
	if rng.Float64() < misWeight {
		wi = bsdf.SampleWi(si.Wo, rng)
	} else {
		var sampled bool
		wi, sampled = scene.Lights.SampleWi(si.Point, rng)
		if !sampled {
			wi = bsdf.SampleWi(si.Wo, rng)
		}
	}
	if wi.IsZero() {
		return core.Vec3{}, 0, false
	}

	bsdfPdf := bsdf.SamplePdf(wi, si.Wo)
	lightPdf := scene.Lights.SamplePdf(si.Point, wi)
	pdf = misWeight*bsdfPdf + (1-misWeight)*lightPdf
	return wi, pdf, true
}
