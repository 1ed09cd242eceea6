// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/snap/math32"
)

var (
	//	In C, FLT_EPSILON = 1.19209e-07

	// Epsilon is the smallest number below which we assume the value to be zero.
	// This is to avoid numerical floating point issues.
	Epsilon = float32(1e-7)
)

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float32) bool {
	// avoid math32.Abs
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}
