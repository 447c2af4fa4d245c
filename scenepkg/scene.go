// Package scenepkg aggregates materials, geometry, lights, camera,
// sampler and filter behind a single immutable-after-construction Scene,
// per spec.md §4.1 and grounded on original_source/src/scene.rs's
// SceneDescription/Scene split. Construction reports descriptive errors
// for the structural invariants a programmatic caller can still violate
// (out-of-range or non-triple mesh indices, out-of-range material ids)
// rather than panicking deep inside the tracer, per spec.md
// §7's construction-time fatal-error list.
package scenepkg

import (
	"fmt"

	"github.com/mario007/rtlib/accum"
	"github.com/mario007/rtlib/camera"
	"github.com/mario007/rtlib/filter"
	"github.com/mario007/rtlib/light"
	"github.com/mario007/rtlib/material"
	"github.com/mario007/rtlib/primitive"
	"github.com/mario007/rtlib/sampler"
)

// Algorithm selects the rendering algorithm and carries its parameters,
// per spec.md §6's algorithm tags.
type Algorithm int

const (
	AmbientOcclusion Algorithm = iota
	DirectLighting
	RandomWalk
)

// AmbientOcclusionParams configures the ambient-occlusion algorithm.
type AmbientOcclusionParams struct {
	CosSample   bool
	MaxDistance float32
}

// DefaultAmbientOcclusionParams matches original_source/src/scene.rs's
// AmbientOcclusionProperties::default.
func DefaultAmbientOcclusionParams() AmbientOcclusionParams {
	return AmbientOcclusionParams{CosSample: true, MaxDistance: 1e38}
}

// RandomWalkParams configures the depth-limited random-walk algorithm.
type RandomWalkParams struct {
	MaxDepth int
}

// DefaultRandomWalkParams matches original_source/src/scene.rs's
// RandomWalkProperties::default.
func DefaultRandomWalkParams() RandomWalkParams {
	return RandomWalkParams{MaxDepth: 5}
}

// Settings carries the render-wide options from spec.md §6's scene
// description record.
type Settings struct {
	Width, Height      int
	SamplesPerPixel    int
	Algorithm          Algorithm
	AmbientOcclusion   AmbientOcclusionParams
	RandomWalk         RandomWalkParams
	ToneMap            accum.ToneMap
	OutputPath         string
	NumThreads         int
	TileSize           int
}

// DefaultSettings mirrors original_source/src/scene.rs's Settings::default.
func DefaultSettings() Settings {
	return Settings{
		Width: 256, Height: 256,
		SamplesPerPixel: 1,
		Algorithm:       AmbientOcclusion,
		AmbientOcclusion: DefaultAmbientOcclusionParams(),
		RandomWalk:       DefaultRandomWalkParams(),
		ToneMap:          accum.Linear,
		OutputPath:       "output.png",
		NumThreads:       1,
		TileSize:         32,
	}
}

// Scene is the fully constructed, immutable-after-construction render
// input, per spec.md §5: shared by reference across worker goroutines,
// never mutated once PrepareForRendering has returned.
type Scene struct {
	Settings  Settings
	Camera    camera.Perspective
	Materials []material.Material
	Geometry  primitive.Geometry
	Lights    []light.Light
	Sampler   sampler.Sampler
	Filter    filter.Filter
}

// Builder accumulates materials/shapes/lights programmatically before a
// single validating Build call, generalizing
// original_source/src/scene.rs's SceneDescription -> Scene conversion
// away from a textual scene-description format (deliberately out of
// scope per spec.md).
type Builder struct {
	Settings Settings
	Camera   camera.Perspective
	Sampler  sampler.Sampler
	Filter   filter.Filter

	materials []material.Material
	geometry  primitive.Geometry
	lights    []light.Light
}

// NewBuilder starts a scene under construction. The Builder's Sampler and
// Filter fields may be left nil; Build substitutes spec.md §6's documented defaults
// (independent sampler, box filter) when so.
func NewBuilder(settings Settings, cam camera.Perspective) *Builder {
	return &Builder{Settings: settings, Camera: cam}
}

// AddMaterial appends a material and returns its MaterialID for use with
// Spheres().Add / Meshes().Add.
func (b *Builder) AddMaterial(m material.Material) primitive.MaterialID {
	b.materials = append(b.materials, m)
	return primitive.MaterialID(len(b.materials) - 1)
}

// AddLight appends a light.
func (b *Builder) AddLight(l light.Light) {
	b.lights = append(b.lights, l)
}

// Spheres and Meshes expose the underlying primitive tables so a caller
// can add shapes directly with primitive.SphereTable.Add /
// primitive.MeshTable.Add, validated as a whole by Build.
func (b *Builder) Spheres() *primitive.SphereTable { return &b.geometry.Spheres }
func (b *Builder) Meshes() *primitive.MeshTable     { return &b.geometry.Meshes }

// Build validates the accumulated scene and returns it, or a descriptive
// error if a construction-time invariant is violated (spec.md §7):
// an out-of-range or non-multiple-of-three mesh index list, or a shape
// whose material id is outside [0, number of added materials).
func (b *Builder) Build() (*Scene, error) {
	if err := validateMeshes(&b.geometry.Meshes); err != nil {
		return nil, err
	}
	if err := validateMaterialIDs(&b.geometry, len(b.materials)); err != nil {
		return nil, err
	}

	s := b.Sampler
	if s == nil {
		s = sampler.NewIndependent(1234567890)
	}
	f := b.Filter
	if f == nil {
		f = filter.Box{XRadius: 0.5, YRadius: 0.5}
	}

	b.geometry.PrepareForRendering()

	return &Scene{
		Settings:  b.Settings,
		Camera:    b.Camera,
		Materials: b.materials,
		Geometry:  b.geometry,
		Lights:    b.lights,
		Sampler:   s,
		Filter:    f,
	}, nil
}

func validateMeshes(meshes *primitive.MeshTable) error {
	for i, mesh := range meshes.Instances() {
		if len(mesh.Indices)%3 != 0 {
			return fmt.Errorf("scenepkg: mesh %d has %d indices, not a multiple of 3", i, len(mesh.Indices))
		}
		nv := len(mesh.Vertices)
		for _, idx := range mesh.Indices {
			if int(idx) >= nv {
				return fmt.Errorf("scenepkg: mesh %d references vertex index %d, have %d vertices", i, idx, nv)
			}
		}
	}
	return nil
}

func validateMaterialIDs(g *primitive.Geometry, numMaterials int) error {
	for i, id := range g.Spheres.MaterialIDs() {
		if int(id) < 0 || int(id) >= numMaterials {
			return fmt.Errorf("scenepkg: sphere %d references material %d, have %d materials", i, id, numMaterials)
		}
	}
	for i, id := range g.Meshes.MaterialIDs() {
		if int(id) < 0 || int(id) >= numMaterials {
			return fmt.Errorf("scenepkg: mesh %d references material %d, have %d materials", i, id, numMaterials)
		}
	}
	return nil
}
