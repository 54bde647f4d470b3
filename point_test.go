// Copyright 2024 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_coord(t *testing.T) {
	p := Point{X: 1.5, Y: -2.5}

	assert.Equal(t, 1.5, p.coord(0))
	assert.Equal(t, -2.5, p.coord(1))
}

func TestPoint_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Point
		expected string
	}{
		{"Zero", Point{}, "(0,0)"},
		{"Integers", Point{-1, 2}, "(-1,2)"},
		{"Exact", Point{-100.5, 1234.125}, "(-100.5,1234.125)"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestSqDist(t *testing.T) {
	testCases := []struct {
		name           string
		ax, ay, bx, by float64
		expected       float64
	}{
		{"Same", 1, 2, 1, 2, 0},
		{"Unit", 0, 0, 1, 0, 1},
		{"PythagoreanTriple", 0, 0, 3, 4, 25},
		{"Negative", -3, -4, 0, 0, 25},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := sqDist(testCase.ax, testCase.ay, testCase.bx, testCase.by)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}
