// Copyright 2024 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultNodeSize is the conventional leaf threshold. It is a good
// all-round value: lower settings speed queries up slightly at the
// cost of a slower build.
const DefaultNodeSize = 64

// concurrentCutoff is the minimum number of points in a sub-range for
// the build to keep splitting work across goroutines. Below it the
// scheduling overhead outweighs the sort work remaining in the range.
const concurrentCutoff = 8192

// A KDBush is a static spatial index over a fixed set of 2D points.
//
// The index is an implicit KD-tree laid out over two parallel flat
// arrays: ids holds the original input position of each point and
// points holds its coordinates, with both arrays always reordered
// together. Sub-ranges no longer than the leaf threshold are left
// internally unsorted and scanned linearly at query time.
//
// A KDBush is immutable once New returns and is safe for concurrent
// use by multiple goroutines.
type KDBush struct {
	// ids maps each array position to the original input position of
	// the point stored there.
	ids []int
	// points holds the point coordinates, parallel to ids.
	points []Point
	// nodeSize is the leaf threshold: sub-ranges of length <= nodeSize
	// are leaf buckets.
	nodeSize int
	// bounds is the extent of all indexed points, EmptyBox when the
	// index is empty.
	bounds Box
}

// New builds a static spatial index over the given points. Each point
// is identified by its position in the input slice, and query methods
// report those positions. The input slice is copied and may be reused
// or discarded by the caller once New returns.
//
// nodeSize is the leaf threshold: sub-ranges of at most this many
// points are left unsorted and scanned linearly at query time.
// DefaultNodeSize is a good choice when in doubt. Panics if nodeSize
// is zero.
//
// An empty input builds an empty index whose queries match nothing.
func New(points []Point, nodeSize uint16) *KDBush {
	if nodeSize < 1 {
		textPanic("node size must be at least 1")
	}
	kd := &KDBush{
		ids:      make([]int, len(points)),
		points:   make([]Point, len(points)),
		nodeSize: int(nodeSize),
		bounds:   EmptyBox,
	}
	for i := range points {
		kd.ids[i] = i
		kd.points[i] = points[i]
		kd.bounds.Expand(&points[i])
	}
	if n := len(points); n > concurrentCutoff {
		// Sibling sub-ranges after a selection step are disjoint, so
		// they sort concurrently without coordination and produce the
		// same layout as the sequential build.
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		kd.sortKDConc(&g, 0, n-1, 0)
		_ = g.Wait() // tasks never return a non-nil error
	} else if n > 1 {
		kd.sortKD(0, n-1, 0)
	}
	return kd
}

// sortKD recursively lays the range [left, right] of the parallel
// arrays out as an implicit KD-tree: the midpoint element is moved to
// its order-statistic position along the current splitting axis, then
// each half is laid out the same way with the axis flipped. Ranges no
// longer than the leaf threshold are left as unsorted leaf buckets.
func (kd *KDBush) sortKD(left, right, axis int) {
	if right-left <= kd.nodeSize {
		return
	}
	m := (left + right) >> 1
	kd.floydRivestSelect(m, left, right, axis)
	kd.sortKD(left, m-1, axis^1)
	kd.sortKD(m+1, right, axis^1)
}

// sortKDConc is sortKD with the two child recursions of large ranges
// run concurrently. TryGo never blocks: when the group is at its
// limit the child range is sorted on the calling goroutine instead.
func (kd *KDBush) sortKDConc(g *errgroup.Group, left, right, axis int) {
	if right-left <= kd.nodeSize {
		return
	}
	m := (left + right) >> 1
	kd.floydRivestSelect(m, left, right, axis)
	if right-left > concurrentCutoff {
		if !g.TryGo(func() error {
			kd.sortKDConc(g, left, m-1, axis^1)
			return nil
		}) {
			kd.sortKDConc(g, left, m-1, axis^1)
		}
		kd.sortKDConc(g, m+1, right, axis^1)
	} else {
		kd.sortKD(left, m-1, axis^1)
		kd.sortKD(m+1, right, axis^1)
	}
}

// Range finds every indexed point within the axis-aligned bounding
// box [minX, maxX] x [minY, maxY] and calls visit once with each
// matching point's original input position. Containment is
// boundary-inclusive on all four edges.
//
// Matches are visited in the deterministic traversal order of the
// underlying tree layout, which is neither input order nor any
// coordinate order. An inverted box matches nothing.
func (kd *KDBush) Range(minX, minY, maxX, maxY float64, visit func(id int)) {
	if len(kd.ids) == 0 {
		return
	}
	kd.rangeIdx(minX, minY, maxX, maxY, func(i int) {
		visit(kd.ids[i])
	}, 0, len(kd.ids)-1, 0)
}

// RangeBox is Range with the query rectangle expressed as a Box.
func (kd *KDBush) RangeBox(b Box, visit func(id int)) {
	kd.Range(b.XMin, b.YMin, b.XMax, b.YMax, visit)
}

// rangeIdx visits the array position of every point in the range
// [left, right] contained in the query box, mirroring the recursion
// shape sortKD built: leaf buckets are scanned linearly, while
// internal ranges test their midpoint and descend into whichever
// halves the box could still reach on the current splitting axis.
func (kd *KDBush) rangeIdx(minX, minY, maxX, maxY float64, visit func(i int), left, right, axis int) {
	if right-left <= kd.nodeSize {
		for i := left; i <= right; i++ {
			p := &kd.points[i]
			if p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY {
				visit(i)
			}
		}
		return
	}

	m := (left + right) >> 1
	p := &kd.points[m]
	if p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY {
		visit(m)
	}

	var lte, gte bool
	if axis == 0 {
		lte = minX <= p.X
		gte = maxX >= p.X
	} else {
		lte = minY <= p.Y
		gte = maxY >= p.Y
	}
	if lte {
		kd.rangeIdx(minX, minY, maxX, maxY, visit, left, m-1, axis^1)
	}
	if gte {
		kd.rangeIdx(minX, minY, maxX, maxY, visit, m+1, right, axis^1)
	}
}

// Within finds every indexed point whose Euclidean distance from
// (qx, qy) is at most r and calls visit once with each matching
// point's original input position. The distance test is
// boundary-inclusive: points exactly r away match.
//
// Matches are visited in the deterministic traversal order of the
// underlying tree layout. The radius is expected to be non-negative;
// a zero radius matches only points exactly at (qx, qy).
func (kd *KDBush) Within(qx, qy, r float64, visit func(id int)) {
	if len(kd.ids) == 0 {
		return
	}
	kd.withinIdx(qx, qy, r, func(i int) {
		visit(kd.ids[i])
	}, 0, len(kd.ids)-1, 0)
}

// withinIdx is rangeIdx with squared-distance containment and a
// pruning predicate that widens the query center by r on the current
// splitting axis.
func (kd *KDBush) withinIdx(qx, qy, r float64, visit func(i int), left, right, axis int) {
	r2 := r * r

	if right-left <= kd.nodeSize {
		for i := left; i <= right; i++ {
			p := &kd.points[i]
			if sqDist(p.X, p.Y, qx, qy) <= r2 {
				visit(i)
			}
		}
		return
	}

	m := (left + right) >> 1
	p := &kd.points[m]
	if sqDist(p.X, p.Y, qx, qy) <= r2 {
		visit(m)
	}

	var lte, gte bool
	if axis == 0 {
		lte = qx-r <= p.X
		gte = qx+r >= p.X
	} else {
		lte = qy-r <= p.Y
		gte = qy+r >= p.Y
	}
	if lte {
		kd.withinIdx(qx, qy, r, visit, left, m-1, axis^1)
	}
	if gte {
		kd.withinIdx(qx, qy, r, visit, m+1, right, axis^1)
	}
}

// Search finds every indexed point contained in the given box and
// returns one Result per match, in traversal order. Sort the returned
// Results to normalize the order.
func (kd *KDBush) Search(b Box) Results {
	rs := make(Results, 0)
	if len(kd.ids) == 0 {
		return rs
	}
	kd.rangeIdx(b.XMin, b.YMin, b.XMax, b.YMax, func(i int) {
		rs = append(rs, Result{ID: kd.ids[i], Point: kd.points[i]})
	}, 0, len(kd.ids)-1, 0)
	return rs
}

// SearchWithin finds every indexed point within distance r of (qx, qy)
// and returns one Result per match, in traversal order. Sort the
// returned Results to normalize the order.
func (kd *KDBush) SearchWithin(qx, qy, r float64) Results {
	rs := make(Results, 0)
	if len(kd.ids) == 0 {
		return rs
	}
	kd.withinIdx(qx, qy, r, func(i int) {
		rs = append(rs, Result{ID: kd.ids[i], Point: kd.points[i]})
	}, 0, len(kd.ids)-1, 0)
	return rs
}

// Bounds returns the bounding box around all indexed points, or
// EmptyBox if the index is empty.
func (kd *KDBush) Bounds() Box {
	return kd.bounds
}

// NumPoints returns the number of indexed points.
func (kd *KDBush) NumPoints() int {
	return len(kd.ids)
}

// NodeSize returns the leaf threshold the index was built with.
func (kd *KDBush) NodeSize() uint16 {
	return uint16(kd.nodeSize)
}

// String returns a summary description of the index.
func (kd *KDBush) String() string {
	return fmt.Sprintf("KDBush{Bounds:%s,NumPoints:%d,NodeSize:%d}", kd.Bounds(), len(kd.ids), kd.nodeSize)
}
