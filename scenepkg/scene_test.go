package scenepkg

import (
	"testing"

	"github.com/mario007/rtlib/camera"
	"github.com/mario007/rtlib/color"
	"github.com/mario007/rtlib/material"
	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/primitive"
	"github.com/mario007/rtlib/transform"
)

func testCamera() camera.Perspective {
	c2w, _ := transform.LookAt(rmath.NewVec3(0, 0, 5), rmath.NewVec3(0, 0, 0), rmath.NewVec3(0, 1, 0))
	return camera.NewPerspective(64, 64, 1.0, 0.01, 100, c2w)
}

func triangleMesh(indices []uint32) *primitive.Mesh {
	return &primitive.Mesh{
		Vertices: []rmath.Point3{
			rmath.NewPoint3(0, 0, 0),
			rmath.NewPoint3(1, 0, 0),
			rmath.NewPoint3(0, 1, 0),
		},
		Indices: indices,
	}
}

func TestBuildValidSceneSucceeds(t *testing.T) {
	b := NewBuilder(DefaultSettings(), testCamera())
	id := b.AddMaterial(material.NewMatte(color.New(0.8, 0.8, 0.8)))
	b.Spheres().Add(rmath.NewPoint3(0, 0, 0), 1, id, nil)

	scene, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scene.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(scene.Materials))
	}
	if scene.Sampler == nil {
		t.Fatal("expected a default sampler to be substituted")
	}
	if scene.Filter == nil {
		t.Fatal("expected a default filter to be substituted")
	}
}

func TestBuildRejectsOutOfRangeMaterialID(t *testing.T) {
	b := NewBuilder(DefaultSettings(), testCamera())
	b.Spheres().Add(rmath.NewPoint3(0, 0, 0), 1, 7, nil)

	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for out-of-range material id")
	}
}

func TestBuildRejectsNonTripleMeshIndices(t *testing.T) {
	b := NewBuilder(DefaultSettings(), testCamera())
	id := b.AddMaterial(material.NewMatte(color.New(1, 1, 1)))
	b.Meshes().Add(triangleMesh([]uint32{0, 1}), id, nil)

	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for index count not a multiple of 3")
	}
}

func TestBuildRejectsOutOfRangeMeshIndex(t *testing.T) {
	b := NewBuilder(DefaultSettings(), testCamera())
	id := b.AddMaterial(material.NewMatte(color.New(1, 1, 1)))
	b.Meshes().Add(triangleMesh([]uint32{0, 1, 5}), id, nil)

	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for out-of-range vertex index")
	}
}

func TestBuildAcceptsValidMesh(t *testing.T) {
	b := NewBuilder(DefaultSettings(), testCamera())
	id := b.AddMaterial(material.NewMatte(color.New(1, 1, 1)))
	b.Meshes().Add(triangleMesh([]uint32{0, 1, 2}), id, nil)

	if _, err := b.Build(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
