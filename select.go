// Copyright 2024 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

import "math"

// floydRivestSelect rearranges the range [left, right] of the parallel
// arrays so that position k holds the element which would occupy it
// under a full sort by the given axis's coordinate, every position
// before k holds a coordinate <= it, and every position after k holds
// a coordinate >= it. Elements whose coordinate equals the one settled
// at k may end up on either side.
//
// This is Floyd-Rivest selection (CACM 18(3), Algorithm 489), which
// runs in expected linear time in the range size. Ranges longer than
// 600 elements are first narrowed around k using a sampling estimate
// of the pivot's final rank, which cuts the expected comparison count
// without changing the postcondition.
func (kd *KDBush) floydRivestSelect(k, left, right, axis int) {
	for right > left {
		if right-left > 600 {
			n := float64(right - left + 1)
			m := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(1-s/n))
			if 2*m < n {
				sd = -sd
			}
			r := float64(k) - m*s/n + sd
			kd.floydRivestSelect(k, max(left, int(r)), min(right, int(r+s)), axis)
		}

		t := kd.points[k].coord(axis)
		i := left
		j := right

		kd.swap(left, k)
		if kd.points[right].coord(axis) > t {
			kd.swap(left, right)
		}

		for i < j {
			kd.swap(i, j)
			i++
			j--
			for kd.points[i].coord(axis) < t {
				i++
			}
			for kd.points[j].coord(axis) > t {
				j--
			}
		}

		// Settle the pivot at the boundary where the two scans met.
		if kd.points[left].coord(axis) == t {
			kd.swap(left, j)
		} else {
			j++
			kd.swap(j, right)
		}

		// Narrow the working range toward k.
		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

// swap exchanges two positions of the parallel arrays, keeping ids
// and points aligned.
func (kd *KDBush) swap(i, j int) {
	kd.ids[i], kd.ids[j] = kd.ids[j], kd.ids[i]
	kd.points[i], kd.points[j] = kd.points[j], kd.points[i]
}
