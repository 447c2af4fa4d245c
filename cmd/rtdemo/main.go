// Command rtdemo renders a scene, built from built-in defaults optionally
// overridden by a TOML file and a glTF mesh, to a PNG file. It exercises
// the scenepkg/render pipeline as a runnable example of spec.md §6's
// external interface. Flag parsing follows
// deepteams-webp/cmd/gwebp/main.go's flag-then-validate-then-run shape.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/mario007/rtlib/accum"
	"github.com/mario007/rtlib/camera"
	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/light"
	"github.com/mario007/rtlib/material"
	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/primitive"
	"github.com/mario007/rtlib/render"
	"github.com/mario007/rtlib/scenepkg"
	"github.com/mario007/rtlib/transform"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "rtdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("rtdemo", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML scene file (defaults built in if omitted)")
	meshPath := fs.String("mesh", "", "optional glTF/GLB mesh file to add to the scene")
	output := fs.String("o", "", "output PNG path (overrides config)")
	width := fs.Int("width", 0, "image width in pixels (overrides config, 0=use config)")
	height := fs.Int("height", 0, "image height in pixels (overrides config, 0=use config)")
	spp := fs.Int("spp", 0, "samples per pixel (overrides config, 0=use config)")
	algorithm := fs.String("algo", "", "ao|direct|randomwalk (overrides config)")
	threads := fs.Int("threads", 0, "worker count (overrides config, 0=use config)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *meshPath != "" {
		cfg.Mesh = *meshPath
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *spp > 0 {
		cfg.SamplesPerPixel = *spp
	}
	if *algorithm != "" {
		cfg.Algorithm = *algorithm
	}
	if *threads > 0 {
		cfg.NumThreads = *threads
	}

	scene, err := buildScene(cfg)
	if err != nil {
		return err
	}

	pixels := render.Image(scene)
	if err := writePNG(cfg.Output, cfg.Width, cfg.Height, pixels); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "rtdemo: wrote %s (%dx%d, %d spp)\n", cfg.Output, cfg.Width, cfg.Height, cfg.SamplesPerPixel)
	return nil
}

func buildScene(cfg config) (*scenepkg.Scene, error) {
	c2w, ok := transform.LookAt(toVec3(cfg.Camera.Eye), toVec3(cfg.Camera.Target), toVec3(cfg.Camera.Up))
	if !ok {
		return nil, fmt.Errorf("camera: eye, target and up are degenerate")
	}
	cam := camera.NewPerspective(cfg.Width, cfg.Height, float32(cfg.Camera.FovY), float32(cfg.Camera.Near), float32(cfg.Camera.Far), c2w)

	settings := scenepkg.DefaultSettings()
	settings.Width, settings.Height = cfg.Width, cfg.Height
	settings.SamplesPerPixel = cfg.SamplesPerPixel
	settings.NumThreads = cfg.NumThreads
	settings.TileSize = cfg.TileSize
	settings.OutputPath = cfg.Output
	settings.AmbientOcclusion = scenepkg.AmbientOcclusionParams{CosSample: cfg.AOCosSample, MaxDistance: float32(cfg.AOMaxDistance)}
	settings.RandomWalk = scenepkg.RandomWalkParams{MaxDepth: cfg.MaxDepth}

	algo, err := parseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	settings.Algorithm = algo

	toneMap, err := parseToneMap(cfg.ToneMap)
	if err != nil {
		return nil, err
	}
	settings.ToneMap = toneMap

	b := scenepkg.NewBuilder(settings, cam)

	for _, mc := range cfg.Materials {
		mat, err := buildMaterial(mc)
		if err != nil {
			return nil, err
		}
		b.AddMaterial(mat)
	}

	for i, sc := range cfg.Spheres {
		if sc.Material < 0 || sc.Material >= len(cfg.Materials) {
			return nil, fmt.Errorf("sphere %d: material index %d out of range", i, sc.Material)
		}
		b.Spheres().Add(toPoint3(sc.Center), float32(sc.Radius), primitive.MaterialID(sc.Material), nil)
	}

	for i, lc := range cfg.Lights {
		lt, err := buildLight(lc)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		b.AddLight(lt)
	}

	if cfg.Mesh != "" {
		if cfg.MeshMaterial < 0 || cfg.MeshMaterial >= len(cfg.Materials) {
			return nil, fmt.Errorf("mesh: material index %d out of range", cfg.MeshMaterial)
		}
		meshes, err := loadMeshes(cfg.Mesh)
		if err != nil {
			return nil, err
		}
		for _, m := range meshes {
			b.Meshes().Add(m, primitive.MaterialID(cfg.MeshMaterial), nil)
		}
	}

	return b.Build()
}

func buildMaterial(mc materialConfig) (material.Material, error) {
	switch mc.Kind {
	case "", "matte":
		return material.NewMatte(toColor(mc.Reflectance)), nil
	case "emissive":
		return material.NewEmissiveMatte(toColor(mc.Reflectance), toColor(mc.Emission)), nil
	default:
		return nil, fmt.Errorf("material: unknown kind %q", mc.Kind)
	}
}

func buildLight(lc lightConfig) (light.Light, error) {
	switch lc.Kind {
	case "", "point":
		return light.NewPoint(toColor(lc.Intensity), toPoint3(lc.Position)), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", lc.Kind)
	}
}

func parseAlgorithm(s string) (scenepkg.Algorithm, error) {
	switch s {
	case "", "ao":
		return scenepkg.AmbientOcclusion, nil
	case "direct":
		return scenepkg.DirectLighting, nil
	case "randomwalk":
		return scenepkg.RandomWalk, nil
	default:
		return 0, fmt.Errorf("algo: unknown algorithm %q (use ao|direct|randomwalk)", s)
	}
}

func parseToneMap(s string) (accum.ToneMap, error) {
	switch s {
	case "", "linear":
		return accum.Linear, nil
	case "gamma":
		return accum.Gamma, nil
	case "reinhard":
		return accum.Reinhard, nil
	default:
		return 0, fmt.Errorf("tonemap: unknown operator %q (use linear|gamma|reinhard)", s)
	}
}

func toVec3(v vec3) rmath.Vec3     { return rmath.NewVec3(float32(v[0]), float32(v[1]), float32(v[2])) }
func toPoint3(v vec3) rmath.Point3 { return rmath.NewPoint3(float32(v[0]), float32(v[1]), float32(v[2])) }
func toColor(v vec3) color.RGB     { return color.New(float32(v[0]), float32(v[1]), float32(v[2])) }

// writePNG encodes pixels (row-major, top-left origin, per spec.md §6) as
// an 8-bit RGB PNG.
func writePNG(path string, width, height int, pixels []color.RGB8) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			off := img.PixOffset(x, y)
			img.Pix[off] = p.R
			img.Pix[off+1] = p.G
			img.Pix[off+2] = p.B
			img.Pix[off+3] = 255
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %q: %w", path, err)
	}
	return f.Close()
}
