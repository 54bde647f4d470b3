// Copyright 2024 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush_test

import (
	"fmt"
	"sort"

	"github.com/gogama/kdbush"
)

// Create a small point slice for example purposes.
var points = []kdbush.Point{
	{X: 54, Y: 1},
	{X: 97, Y: 21},
	{X: 65, Y: 35},
	{X: 33, Y: 54},
	{X: 95, Y: 39},
}

func ExampleNew() {
	index := kdbush.New(points, 10)

	fmt.Println(index)
	// Output: KDBush{Bounds:[33,1,97,54],NumPoints:5,NodeSize:10}
}

func ExampleKDBush_Range() {
	index := kdbush.New(points, 10)

	var ids []int
	index.Range(30, 30, 70, 60, func(id int) {
		ids = append(ids, id)
	})

	fmt.Println(ids)
	// Output: [2 3]
}

func ExampleKDBush_Within() {
	index := kdbush.New(points, 10)

	var ids []int
	index.Within(50, 50, 25, func(id int) {
		ids = append(ids, id)
	})

	fmt.Println(ids)
	// Output: [2 3]
}

func ExampleKDBush_Search() {
	index := kdbush.New(points, 10)

	rs := index.Search(kdbush.Box{XMin: 30, YMin: 30, XMax: 70, YMax: 60})
	sort.Sort(rs) // Normalize traversal order to ID order.

	for _, r := range rs {
		fmt.Println(r.ID, r.Point)
	}
	// Output: 2 (65,35)
	// 3 (33,54)
}
