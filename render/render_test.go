package render

import (
	"testing"

	"github.com/mario007/rtlib/camera"
	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/light"
	"github.com/mario007/rtlib/material"
	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/sampler"
	"github.com/mario007/rtlib/scenepkg"
	"github.com/mario007/rtlib/transform"
)

func buildSmallScene(t *testing.T, algo scenepkg.Algorithm) *scenepkg.Scene {
	t.Helper()
	c2w, _ := transform.LookAt(rmath.NewVec3(0, 0, 5), rmath.NewVec3(0, 0, 0), rmath.NewVec3(0, 1, 0))
	cam := camera.NewPerspective(8, 8, 1.0, 0.01, 100, c2w)

	settings := scenepkg.DefaultSettings()
	settings.Width, settings.Height = 8, 8
	settings.SamplesPerPixel = 2
	settings.Algorithm = algo
	settings.NumThreads = 4
	settings.TileSize = 4

	b := scenepkg.NewBuilder(settings, cam)
	b.Sampler = sampler.NewIndependent(7)
	id := b.AddMaterial(material.NewMatte(color.New(0.6, 0.6, 0.6)))
	b.Spheres().Add(rmath.NewPoint3(0, 0, 0), 1, id, nil)
	b.AddLight(light.NewPoint(color.New(20, 20, 20), rmath.NewPoint3(3, 3, 5)))

	scene, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return scene
}

func TestRenderAmbientOcclusionProducesFullBuffer(t *testing.T) {
	scene := buildSmallScene(t, scenepkg.AmbientOcclusion)
	buf := Render(scene)
	if buf.Width != 8 || buf.Height != 8 {
		t.Fatalf("unexpected buffer size %dx%d", buf.Width, buf.Height)
	}
	covered := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if buf.Get(x, y).Weight > 0 {
				covered++
			}
		}
	}
	if covered == 0 {
		t.Fatal("expected some pixels to receive weight")
	}
}

func TestImageProducesCorrectLength(t *testing.T) {
	scene := buildSmallScene(t, scenepkg.DirectLighting)
	img := Image(scene)
	if len(img) != 8*8 {
		t.Fatalf("expected %d pixels, got %d", 8*8, len(img))
	}
}

func TestRenderRandomWalkDoesNotPanic(t *testing.T) {
	scene := buildSmallScene(t, scenepkg.RandomWalk)
	scene.Settings.RandomWalk.MaxDepth = 2
	_ = Render(scene)
}
