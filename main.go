package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"github.com/davawen/go-raytracing/pkg/integrator"
	"github.com/davawen/go-raytracing/pkg/renderer"
	"github.com/davawen/go-raytracing/pkg/scene"
)

// Config holds the command-line configuration
type Config struct {
	Scene      string
	Output     string
	Width      int
	Height     int
	Samples    int
	MaxDepth   int
	NumWorkers int
	Seed       int64
	Gamma      string
	CPUProfile string
	Help       bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(config Config) error {
	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	sceneObj, err := createScene(config.Scene)
	if err != nil {
		return err
	}

	// CLI overrides beat the scene's own settings
	applyOverrides(sceneObj, config)

	bvh, err := sceneObj.BuildBVH()
	if err != nil {
		return err
	}

	camera := renderer.NewCamera(
		sceneObj.Camera.Position,
		sceneObj.Camera.Orientation,
		sceneObj.Camera.Fov,
		sceneObj.Width,
		sceneObj.Height,
	)

	tracer := integrator.NewPathTracer(sceneObj.Sun)
	if sceneObj.MaxDepth > 0 {
		tracer.MaxDepth = sceneObj.MaxDepth
	}

	gamma := renderer.GammaLegacy
	if config.Gamma == "linear" {
		gamma = renderer.GammaLinear
	}

	rt := renderer.NewRaytracer(bvh, camera, tracer, renderer.Config{
		Width:      sceneObj.Width,
		Height:     sceneObj.Height,
		Samples:    sceneObj.Samples,
		TileSize:   64,
		NumWorkers: config.NumWorkers,
		Seed:       config.Seed,
		Gamma:      gamma,
	}, renderer.NewDefaultLogger())

	canvas, stats := rt.Render()
	fmt.Printf("Traced %d primary rays over %d pixels\n", stats.TotalSamples, stats.TotalPixels)

	if err := saveCanvas(canvas, config.Output); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", config.Output)

	return nil
}

// parseFlags parses command line flags and returns the configuration
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.Scene, "scene", "default", "Scene name or yaml scene file path")
	flag.StringVar(&config.Output, "out", "render.png", "Output file (.png or .ppm)")
	flag.IntVar(&config.Width, "width", 0, "Override image width")
	flag.IntVar(&config.Height, "height", 0, "Override image height")
	flag.IntVar(&config.Samples, "samples", 0, "Override samples per pixel")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Override maximum path depth")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&config.Seed, "seed", 1, "Base random seed (fixed seed gives a deterministic image)")
	flag.StringVar(&config.Gamma, "gamma", "legacy", "Gamma pipeline: 'legacy' (tone map + sqrt pass) or 'linear'")
	flag.StringVar(&config.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

// showHelp displays help information
func showHelp() {
	fmt.Println("Path-traced renderer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  default - ground plane, diffuse/mirror spheres, hollow glass shell, pyramid")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  raytracer --samples=512 --out=render.png")
	fmt.Println("  raytracer --scene=scenes/example.yaml --out=example.ppm")
	fmt.Println("  raytracer --scene=default --gamma=linear --workers=4")
}

// createScene resolves a scene name or yaml path
func createScene(name string) (*scene.Scene, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return scene.LoadYAML(name)
	}

	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", name)
	}
}

func applyOverrides(s *scene.Scene, config Config) {
	if config.Width > 0 {
		s.Width = config.Width
	}
	if config.Height > 0 {
		s.Height = config.Height
	}
	if config.Samples > 0 {
		s.Samples = config.Samples
	}
	if config.MaxDepth > 0 {
		s.MaxDepth = config.MaxDepth
	}
}

// saveCanvas writes the canvas in the format matching the file extension
func saveCanvas(canvas *renderer.Canvas, filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ppm":
		return canvas.WritePPM(file)
	default:
		return png.Encode(file, canvas.ToImage())
	}
}
