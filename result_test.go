// Copyright 2024 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResults(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		var rs Results

		assert.Equal(t, 0, rs.Len())
	})

	t.Run("Less", func(t *testing.T) {
		rs := Results{
			Result{ID: 0},
			Result{ID: 1},
		}

		assert.False(t, rs.Less(0, 0))
		assert.True(t, rs.Less(0, 1))
		assert.False(t, rs.Less(1, 0))
		assert.False(t, rs.Less(1, 1))
	})

	t.Run("Swap", func(t *testing.T) {
		rs1 := Results{
			Result{ID: 0, Point: Point{1, 2}},
			Result{ID: 1, Point: Point{3, 4}},
		}
		rs2 := make(Results, len(rs1))
		copy(rs2, rs1)

		rs1.Swap(0, 0)

		assert.Equal(t, rs2, rs1)

		rs1.Swap(0, 1)

		assert.Equal(t, Results{rs2[1], rs2[0]}, rs1)
	})

	t.Run("Sorts", func(t *testing.T) {
		m := 10
		for n := 0; n <= m; n++ {
			t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
				expected := make(Results, n)
				actual := make(Results, n)
				for i := 0; i < n; i++ {
					expected[i] = Result{ID: i}
					actual[i] = Result{ID: i}
				}
				r := rand.New(rand.NewSource(int64(n)))
				r.Shuffle(n, func(i, j int) {
					actual[i], actual[j] = actual[j], actual[i]
				})

				sort.Sort(actual)

				assert.Equal(t, expected, actual)
			})
		}
	})
}
