// Copyright 2024 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

import (
	"math"
	"strconv"
)

// A Box is an axis-aligned 2D bounding rectangle.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the empty bounding rectangle. Unlike the zero value Box,
// which contains the single point (0, 0), EmptyBox contains no points
// at all, making it the correct starting value when accumulating a
// bounding rectangle with Expand.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// Width returns the width of the box along the X-axis.
func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the height of the box along the Y-axis.
func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

// Expand grows the box to include the given point.
func (b *Box) Expand(p *Point) {
	if p.X < b.XMin {
		b.XMin = p.X
	}
	if p.Y < b.YMin {
		b.YMin = p.Y
	}
	if p.X > b.XMax {
		b.XMax = p.X
	}
	if p.Y > b.YMax {
		b.YMax = p.Y
	}
}

// Contains indicates whether the given point lies within the box.
// Containment is boundary-inclusive on all four edges.
func (b *Box) Contains(p *Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// String returns a compact text representation of the box.
func (b Box) String() string {
	var sb []byte
	sb = append(sb, '[')
	sb = strconv.AppendFloat(sb, b.XMin, 'g', -1, 32)
	sb = append(sb, ',')
	sb = strconv.AppendFloat(sb, b.YMin, 'g', -1, 32)
	sb = append(sb, ',')
	sb = strconv.AppendFloat(sb, b.XMax, 'g', -1, 32)
	sb = append(sb, ',')
	sb = strconv.AppendFloat(sb, b.YMax, 'g', -1, 32)
	sb = append(sb, ']')
	return string(sb)
}
