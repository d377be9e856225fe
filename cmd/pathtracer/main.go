// Command pathtracer renders one of the built-in scenes to a PNG file.
// Scene description, image encoding, and flag parsing all live outside the
// core's contract (spec §6: "no CLI in core scope") — this is the external
// collaborator that wires pkg/scenes and pkg/render together, trimmed from
// the teacher's main.go of its PBRT/PLY loading and progressive-pass event
// loop, since neither file-format scene loading nor progressive rendering
// is in scope here.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/render"
	"github.com/df07/go-pathtracer/pkg/scenes"
)

var logger core.Logger = render.NewDefaultLogger()

// config holds the command-line configuration.
type config struct {
	SceneName   string
	Width       int
	AspectW     float64
	AspectH     float64
	NSamples    int
	MaxDepth    int
	MisWeight   float64
	NumWorkers  int
	ProgressHUD bool
	Seed        int64
	OutputDir   string
	Help        bool
}

func main() {
	cfg := parseFlags()
	if cfg.Help {
		showHelp()
		return
	}

	scene, height, err := buildScene(cfg)
	if err != nil {
		fmt.Printf("Error building scene: %+v\n", err)
		os.Exit(1)
	}

	settings := core.DefaultSettings()
	settings.Width, settings.Height = cfg.Width, height
	settings.NSamples, settings.MaxDepth = cfg.NSamples, cfg.MaxDepth
	settings.MisWeight = cfg.MisWeight
	settings.OutputDir = cfg.OutputDir

	logger.Printf("Rendering %q at %dx%d, %d spp, max depth %d...\n",
		cfg.SceneName, settings.Width, settings.Height, settings.NSamples, settings.MaxDepth)
	start := time.Now()

	img, err := render.Render(scene, settings, render.Options{
		NumWorkers:  cfg.NumWorkers,
		ProgressHUD: cfg.ProgressHUD,
		Seed:        cfg.Seed,
	})
	if err != nil {
		fmt.Printf("Error rendering scene: %+v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render completed in %v\n", time.Since(start))

	outPath, err := savePNG(img, cfg.OutputDir, cfg.SceneName)
	if err != nil {
		fmt.Printf("Error saving image: %+v\n", err)
		os.Exit(1)
	}
	logger.Printf("Render saved as %s\n", outPath)
}

func parseFlags() config {
	cfg := config{}
	flag.StringVar(&cfg.SceneName, "scene", "cornell", "Scene to render (see -help for the list)")
	flag.IntVar(&cfg.Width, "width", 400, "Output image width in pixels")
	flag.Float64Var(&cfg.AspectW, "aspect-w", 1, "Aspect ratio width component")
	flag.Float64Var(&cfg.AspectH, "aspect-h", 1, "Aspect ratio height component")
	flag.IntVar(&cfg.NSamples, "samples", 64, "Samples per pixel")
	flag.IntVar(&cfg.MaxDepth, "max-depth", 12, "Maximum path length")
	flag.Float64Var(&cfg.MisWeight, "mis-weight", 0.5, "BSDF vs. light sampling mixture weight, in [0,1]")
	flag.IntVar(&cfg.NumWorkers, "workers", 0, "Number of parallel row workers (0 = auto-detect CPU count)")
	flag.BoolVar(&cfg.ProgressHUD, "progress", false, "Show a terminal progress line while rendering")
	flag.Int64Var(&cfg.Seed, "seed", 1, "Base RNG seed (each worker adds its index)")
	flag.StringVar(&cfg.OutputDir, "output-dir", "output", "Directory PNGs are written to")
	flag.BoolVar(&cfg.Help, "help", false, "Show help information")
	flag.Parse()
	return cfg
}

func showHelp() {
	fmt.Println("pathtracer: an offline Monte-Carlo path tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  empty-sky   - constant-sky environment light, no geometry")
	fmt.Println("  black-hole  - perfectly absorbing sphere silhouetted against the sky")
	fmt.Println("  cornell     - Cornell box lit by a single ceiling area light")
	fmt.Println("  mirrors     - two facing perfect mirrors with a small emitter")
	fmt.Println("  glass       - glass sphere over a checker ground under sky light")
	fmt.Println("  mis-plane   - rough-metal plane under a small bright area light")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pathtracer -scene=cornell -samples=256 -max-depth=16")
	fmt.Println("  pathtracer -scene=glass -width=800 -aspect-w=16 -aspect-h=9")
}

// buildScene dispatches to the matching pkg/scenes builder and returns the
// scene along with the image height implied by width and the aspect ratio.
func buildScene(cfg config) (*core.Scene, int, error) {
	aspect := cfg.AspectW / cfg.AspectH
	height := int(float64(cfg.Width) / aspect)

	switch cfg.SceneName {
	case "empty-sky":
		return scenes.EmptyWorldSky(aspect), height, nil
	case "black-hole":
		return scenes.BlackHole(aspect), height, nil
	case "cornell":
		// the Cornell box scene fixes its own square aspect and camera FOV
		return scenes.CornellCeilingLight(), cfg.Width, nil
	case "mirrors":
		return scenes.MirrorCorridor(), cfg.Width, nil
	case "glass":
		// fixed square aspect, like cornell/mirrors/mis-plane
		return scenes.RefractiveSphereOverChecker(), cfg.Width, nil
	case "mis-plane":
		return scenes.MisBalancePlane(), cfg.Width, nil
	default:
		return nil, 0, errors.Errorf("unknown scene %q (use -help to list scenes)", cfg.SceneName)
	}
}

// savePNG writes img to <outputDir>/<sceneName>_<timestamp>.png, creating
// outputDir if needed (spec §6: "the driver also serialises it to PNG").
func savePNG(img *image.RGBA, outputDir, sceneName string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", errors.Wrap(err, "creating output directory")
	}

	filename := fmt.Sprintf("%s_%s.png", sceneName, time.Now().Format("20060102_150405"))
	outPath := filepath.Join(outputDir, filename)

	file, err := os.Create(outPath)
	if err != nil {
		return "", errors.Wrapf(err, "creating %s", outPath)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", errors.Wrapf(err, "encoding %s", outPath)
	}
	return outPath, nil
}
