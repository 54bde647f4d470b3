// Copyright 2024 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package kdbush provides a fast static spatial index for 2D points.
//
// The index is built once, up front, from a fixed point collection,
// and thereafter answers axis-aligned bounding-box queries and radius
// queries, reporting the original input positions of matching points.
// It suits workloads where the point set is known in advance and
// queried many times, trading rebuild cost for fast repeated querying.
//
// Internally the points are laid out into an implicit KD-tree over two
// parallel flat arrays, so the built index performs no per-node
// allocation and no pointer chasing. Once New returns, the index is
// immutable and safe for concurrent use by multiple goroutines.
package kdbush
