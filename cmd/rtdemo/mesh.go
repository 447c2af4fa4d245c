package main

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	rmath "github.com/mario007/rtlib/math"
	"github.com/mario007/rtlib/primitive"
)

// loadMeshes opens a .gltf/.glb file and flattens every mesh primitive's
// POSITION/indices accessors into primitive.Mesh values, dropping
// materials, textures and the node hierarchy: this binary places the
// loaded geometry itself with the builder's own material/transform, per
// spec.md §6's "optional mesh input" interface. Grounded on
// mrigankad-gorenderengine/scene/gltf_loader.go's accessor reads, trimmed
// to geometry only since the ray tracer's material model has no
// glTF-PBR equivalent to approximate into.
func loadMeshes(path string) ([]*primitive.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rtdemo: gltf open %q: %w", path, err)
	}

	var out []*primitive.Mesh
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := meshFromPrimitive(doc, *prim)
			if err != nil {
				return nil, fmt.Errorf("rtdemo: mesh %d primitive %d: %w", mi, pi, err)
			}
			out = append(out, m)
		}
	}
	return out, nil
}

func meshFromPrimitive(doc *gltf.Document, prim gltf.Primitive) (*primitive.Mesh, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	vertices := make([]rmath.Point3, len(positions))
	for i, p := range positions {
		vertices[i] = rmath.NewPoint3(p[0], p[1], p[2])
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	return &primitive.Mesh{Vertices: vertices, Indices: indices}, nil
}
