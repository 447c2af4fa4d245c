// Package bvh implements a flat, midpoint-split bounding volume hierarchy
// used to accelerate ray intersection against a large primitive set.
// Grounded on original_source/src/bvh.rs, with traversal style (explicit
// stack, inv-direction precomputed once) following
// editor/raycast.go's rayAABBIntersect/RaycastScene shape.
package bvh

import (
	"github.com/mario007/rtlib/geom"
	rmath "github.com/mario007/rtlib/math"
)

const maxStackDepth = 64

type node struct {
	bbox      geom.AABB
	leftNode  uint32
	firstPrim uint32
	numPrims  uint32
}

func (n node) isLeaf() bool { return n.numPrims > 0 }

// BVH is a flat array-of-nodes bounding volume hierarchy over an opaque
// set of n primitives, built from caller-supplied per-primitive AABBs.
type BVH struct {
	nodes    []node
	primIdx  []uint32
	computed func(prim int) geom.AABB
}

// Hit is the result of BVH.Intersect: the nearest hit distance and the
// index (into the original primitive numbering) of the hit primitive.
type Hit struct {
	T    float32
	Prim int
}

// Build constructs the hierarchy over n primitives. bboxOf returns the
// world-space AABB of primitive i; it's called repeatedly during
// construction and must be stable and side-effect free.
func Build(n int, bboxOf func(prim int) geom.AABB) *BVH {
	b := &BVH{computed: bboxOf}
	b.primIdx = make([]uint32, n)
	for i := range b.primIdx {
		b.primIdx[i] = uint32(i)
	}
	if n == 0 {
		return b
	}

	b.nodes = make([]node, 0, n)
	b.nodes = append(b.nodes, node{
		bbox:      b.boundPrims(0, n),
		firstPrim: 0,
		numPrims:  uint32(n),
	})

	var stack [maxStackDepth]int
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		sp--
		nodeIdx := stack[sp]

		cur := b.nodes[nodeIdx]
		if cur.numPrims <= 2 {
			continue
		}

		splitIdx := b.partition(cur.bbox, int(cur.firstPrim), int(cur.numPrims))
		leftCount := splitIdx - int(cur.firstPrim)
		if leftCount == 0 || leftCount == int(cur.numPrims) {
			splitIdx = int(cur.firstPrim) + int(cur.numPrims)/2
			leftCount = splitIdx - int(cur.firstPrim)
		}
		rightCount := int(cur.numPrims) - leftCount

		leftNode := node{
			bbox:      b.boundPrims(int(cur.firstPrim), leftCount),
			firstPrim: cur.firstPrim,
			numPrims:  uint32(leftCount),
		}
		rightNode := node{
			bbox:      b.boundPrims(splitIdx, rightCount),
			firstPrim: uint32(splitIdx),
			numPrims:  uint32(rightCount),
		}

		leftIdx := len(b.nodes)
		b.nodes[nodeIdx].leftNode = uint32(leftIdx)
		b.nodes[nodeIdx].numPrims = 0

		b.nodes = append(b.nodes, leftNode, rightNode)

		stack[sp] = leftIdx
		sp++
		stack[sp] = leftIdx + 1
		sp++
	}
	return b
}

func (b *BVH) boundPrims(start, count int) geom.AABB {
	box := b.computed(int(b.primIdx[start]))
	for i := start + 1; i < start+count; i++ {
		box = box.Union(b.computed(int(b.primIdx[i])))
	}
	return box
}

func vecAxis(v rmath.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func splitAxis(box geom.AABB) (axis int, pos float32) {
	axis = box.LongestAxis()
	minVal := box.AxisValue(axis, box.Min)
	extent := vecAxis(box.Max.Sub(box.Min), axis)
	return axis, minVal + extent*0.5
}

// partition reorders primIdx[first:first+count] around the midpoint split
// of box's longest axis and returns the split index, Hoare-partition
// style, matching original_source/src/bvh.rs's partition_primitives.
func (b *BVH) partition(box geom.AABB, first, count int) int {
	axis, splitPos := splitAxis(box)
	i, j := first, first+count-1
	for i <= j {
		centroid := b.computed(int(b.primIdx[i])).Centroid()
		if box.AxisValue(axis, centroid) < splitPos {
			i++
		} else {
			b.primIdx[i], b.primIdx[j] = b.primIdx[j], b.primIdx[i]
			j--
		}
	}
	return i
}

// Intersect walks the hierarchy with an explicit stack, calling isect for
// every primitive whose leaf node's bbox the ray overlaps, and keeps the
// closest hit whose t lies within isect's accepted range. isect returns
// (t, true) on a hit, or (_, false) on a miss.
func (b *BVH) Intersect(r geom.Ray, tMin, tMax float32, isect func(prim int, r geom.Ray, tMin, tMax float32) (float32, bool)) (Hit, bool) {
	if len(b.nodes) == 0 {
		return Hit{}, false
	}
	invDir := r.InvDirection()
	closest := tMax
	found := false
	var best Hit

	var stack [maxStackDepth]int
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		sp--
		nodeIdx := stack[sp]
		n := b.nodes[nodeIdx]

		if !n.bbox.Hit(r, invDir, tMin, closest) {
			continue
		}
		if n.isLeaf() {
			for i := n.firstPrim; i < n.firstPrim+n.numPrims; i++ {
				prim := int(b.primIdx[i])
				if t, ok := isect(prim, r, tMin, closest); ok && t < closest {
					closest = t
					best = Hit{T: t, Prim: prim}
					found = true
				}
			}
			continue
		}
		stack[sp] = int(n.leftNode)
		sp++
		stack[sp] = int(n.leftNode) + 1
		sp++
	}
	return best, found
}

// AnyHit walks the hierarchy looking for any primitive intersection within
// (tMin, tMax), stopping at the first one found — for shadow/occlusion
// rays where the identity of the nearest hit doesn't matter.
func (b *BVH) AnyHit(r geom.Ray, tMin, tMax float32, isect func(prim int, r geom.Ray, tMin, tMax float32) (float32, bool)) bool {
	if len(b.nodes) == 0 {
		return false
	}
	invDir := r.InvDirection()

	var stack [maxStackDepth]int
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		sp--
		nodeIdx := stack[sp]
		n := b.nodes[nodeIdx]

		if !n.bbox.Hit(r, invDir, tMin, tMax) {
			continue
		}
		if n.isLeaf() {
			for i := n.firstPrim; i < n.firstPrim+n.numPrims; i++ {
				if _, ok := isect(int(b.primIdx[i]), r, tMin, tMax); ok {
					return true
				}
			}
			continue
		}
		stack[sp] = int(n.leftNode)
		sp++
		stack[sp] = int(n.leftNode) + 1
		sp++
	}
	return false
}
