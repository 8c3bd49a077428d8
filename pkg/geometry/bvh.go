package geometry

import (
	"errors"
	"math"
	"sort"

	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/material"
)

// ErrEmptyScene is returned when a BVH is constructed from zero shapes
var ErrEmptyScene = errors.New("bvh: cannot construct hierarchy from an empty scene")

// BVHNode is a node in the bounding volume hierarchy: either an inner
// node with exactly two children, or a leaf carrying exactly one shape.
// The node bound contains the bounds of every shape in its subtree.
type BVHNode struct {
	Bound core.AABB
	Left  *BVHNode
	Right *BVHNode
	Shape Shape // Non-nil for leaf nodes only
}

// IsLeaf reports whether the node carries a shape
func (n *BVHNode) IsLeaf() bool {
	return n.Shape != nil
}

// BVH is a median-split bounding volume hierarchy for fast ray-shape
// intersection. It is built once and read-only afterwards, so it can be
// shared by every render worker.
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of shapes. The input slice is
// copied before sorting so concurrent builds over the same scene stay safe.
func NewBVH(shapes []Shape) (*BVH, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyScene
	}

	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy, 0)}, nil
}

// buildBVH recursively partitions shapes into a binary hierarchy. Shapes
// are ordered by their position along the axis cycling with depth
// (X, Y, Z) and split at the middle index; the stable sort breaks ties
// by input order.
func buildBVH(shapes []Shape, depth int) *BVHNode {
	if len(shapes) == 1 {
		shape := shapes[0]
		return &BVHNode{
			Bound: shape.BoundingBox(),
			Shape: shape,
		}
	}

	axis := depth % 3
	sort.SliceStable(shapes, func(i, j int) bool {
		return axisValue(shapes[i].Position(), axis) < axisValue(shapes[j].Position(), axis)
	})

	mid := len(shapes) / 2
	left := buildBVH(shapes[:mid], depth+1)
	right := buildBVH(shapes[mid:], depth+1)

	return &BVHNode{
		Bound: left.Bound.Union(right.Bound),
		Left:  left,
		Right: right,
	}
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit returns the nearest intersection of the ray with any shape in the
// hierarchy, or false when the ray escapes the scene.
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return hitNode(bvh.Root, ray, tMin, tMax)
}

// hitNode recursively tests ray intersection with BVH nodes. Both
// children are queried; shrinking tMax to the best hit so far prunes
// subtrees that cannot contain a nearer intersection while preserving
// nearest-hit semantics.
func hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !node.Bound.Hit(ray) {
		return nil, false
	}

	if node.IsLeaf() {
		return node.Shape.Hit(ray, tMin, tMax)
	}

	var closest *material.HitRecord
	closestSoFar := tMax

	if hit, isHit := hitNode(node.Left, ray, tMin, closestSoFar); isHit {
		closest = hit
		closestSoFar = hit.T
	}
	if hit, isHit := hitNode(node.Right, ray, tMin, closestSoFar); isHit {
		closest = hit
	}

	return closest, closest != nil
}

// HitBruteForce intersects the ray against a flat shape list, keeping
// the nearest hit. The BVH query must agree with this for any ray.
func HitBruteForce(shapes []Shape, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, shape := range shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// Walk visits every node of the hierarchy in depth-first order
func (bvh *BVH) Walk(visit func(node *BVHNode, depth int)) {
	walkNode(bvh.Root, 0, visit)
}

func walkNode(node *BVHNode, depth int, visit func(node *BVHNode, depth int)) {
	if node == nil {
		return
	}
	visit(node, depth)
	walkNode(node.Left, depth+1, visit)
	walkNode(node.Right, depth+1, visit)
}

// Stats summarizes the structure of the hierarchy
type Stats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
}

// Stats collects structural statistics for logging
func (bvh *BVH) Stats() Stats {
	stats := Stats{}
	bvh.Walk(func(node *BVHNode, depth int) {
		stats.TotalNodes++
		if node.IsLeaf() {
			stats.LeafNodes++
		}
		stats.MaxDepth = int(math.Max(float64(stats.MaxDepth), float64(depth)))
	})
	return stats
}
