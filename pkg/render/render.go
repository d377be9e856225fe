// Package render is the parallel row-partitioned render driver (spec
// §4.L): it partitions the image into row ranges and runs one goroutine per
// worker, each with its own RNG seeded from Options.Seed plus the worker
// index. All workers write into one shared pixel accumulator, each only
// into its own rows, so there is no per-worker pixel buffer and no
// reduction step; once every worker is done the accumulator is
// gamma-corrected and quantized into the final image. Grounded on
// the teacher's pkg/renderer/{worker_pool,raytracer,tile_renderer}.go,
// simplified from the teacher's adaptive/progressive sampling loop to a
// single fixed-NSamples pass per the spec's "no progressive/preview
// rendering" Non-goal.
package render

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Options configures a render beyond what core.Settings already carries.
type Options struct {
	NumWorkers  int // 0 selects runtime.NumCPU()
	ProgressHUD bool
	Seed        int64
}

// Render validates scene, then renders it with settings into an RGBA
// image. EmptySceneError is the only error this can return (spec §7);
// every other recoverable condition (degenerate geometry, non-finite
// radiance) is absorbed pixel-locally and never propagates here.
func Render(scene *core.Scene, settings core.Settings, opts Options) (*image.RGBA, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}

	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	width, height := settings.Width, settings.Height
	pt := integrator.NewPathTracer(settings)

	accum := make([]core.ColorRGB, width*height)

	var rowsDone atomic.Int64
	var hud *progressHUD
	if opts.ProgressHUD {
		hud = newProgressHUD(height)
		hud.start(&rowsDone)
		defer hud.stop()
	}

	rowsPerWorker := (height + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		rowStart := w * rowsPerWorker
		rowEnd := rowStart + rowsPerWorker
		if rowEnd > height {
			rowEnd = height
		}
		if rowStart >= rowEnd {
			continue
		}

		wg.Add(1)
		go func(rowStart, rowEnd, workerID int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(opts.Seed + int64(workerID)))
			renderRows(scene, pt, settings, rowStart, rowEnd, width, height, accum, rng, &rowsDone)
		}(rowStart, rowEnd, w)
	}
	wg.Wait()

	return quantize(accum, width, height), nil
}

// renderRows is the per-worker loop: non-overlapping row ranges mean every
// worker writes disjoint slots of accum, so no locking is needed.
func renderRows(scene *core.Scene, pt *integrator.PathTracer, settings core.Settings, rowStart, rowEnd, width, height int, accum []core.ColorRGB, rng *rand.Rand, rowsDone *atomic.Int64) {
	camera := scene.Camera
	for j := rowStart; j < rowEnd; j++ {
		for i := 0; i < width; i++ {
			var sum core.ColorRGB
			for s := 0; s < settings.NSamples; s++ {
				su := (float64(i) + rng.Float64()) / float64(width)
				sv := 1.0 - (float64(j)+rng.Float64())/float64(height)
				ray := camera.GetRay(su, sv, rng)
				c := pt.Li(ray, scene, rng)
				if !c.IsFinite() {
					continue // NonFiniteRadiance: drop the sample, never the pixel
				}
				sum = sum.Add(c)
			}
			accum[j*width+i] = sum.Divide(float64(settings.NSamples))
		}
		rowsDone.Add(1)
	}
}

// quantize gamma-corrects, clamps to [0, 0.9999], scales to [0, 256) and
// truncates each accumulated pixel to a byte (spec §4.L, literal clamp/
// scale/truncate arithmetic — the worked example in spec §8 scenario 1
// depends on this exact procedure, so it is not delegated to a color
// library's own round-to-nearest quantization path).
func quantize(accum []core.ColorRGB, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			c := accum[j*width+i].GammaCorrect(2.0)
			r := quantizeChannel(c.X)
			g := quantizeChannel(c.Y)
			b := quantizeChannel(c.Z)
			img.SetRGBA(i, j, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

func quantizeChannel(x float64) uint8 {
	return uint8(clampUnit(x) * 256)
}

func clampUnit(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	if x < 0 {
		return 0
	}
	if x > 0.9999 {
		return 0.9999
	}
	return x
}
