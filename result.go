// Copyright 2024 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdbush

// Result is a single index search result.
type Result struct {
	// ID is the result point's position in the input slice the index
	// was built from.
	ID int
	// Point is the result point's coordinates.
	Point Point
}

// Results is a slice of Result structures which implements
// sort.Interface. The sort.Sort function will sort Results in
// ascending order of Result.ID.
type Results []Result

// Len returns the length of the slice. It implements the
// corresponding method of sort.Interface.
func (rs Results) Len() int {
	return len(rs)
}

// Less establishes an absolute ordering by ascending order of
// Result.ID. It implements the corresponding method of
// sort.Interface.
func (rs Results) Less(i, j int) bool {
	return rs[i].ID < rs[j].ID
}

// Swap swaps two elements of the slice. It implements the
// corresponding method of sort.Interface.
func (rs Results) Swap(i, j int) {
	rs[i], rs[j] = rs[j], rs[i]
}
