// Copyright 2024 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

import "strconv"

// A Point is an immutable pair of 2D coordinates to be indexed.
type Point struct {
	X float64
	Y float64
}

// coord returns the point's coordinate along the given splitting axis,
// where axis 0 is X and axis 1 is Y.
func (p *Point) coord(axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// String returns a compact text representation of the point.
func (p Point) String() string {
	var sb []byte
	sb = append(sb, '(')
	sb = strconv.AppendFloat(sb, p.X, 'g', -1, 32)
	sb = append(sb, ',')
	sb = strconv.AppendFloat(sb, p.Y, 'g', -1, 32)
	sb = append(sb, ')')
	return string(sb)
}

// sqDist returns the squared Euclidean distance between (ax, ay) and
// (bx, by).
func sqDist(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}
