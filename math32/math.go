// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector, matrix, and math package
// for 2D graphics.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	Pi = math.Pi

	// Kappa is the distance of the cubic Bézier control points from the
	// on-curve points, relative to the radius, for a quarter circle.
	Kappa = 0.55228474983079339840
)

// Floating-point limit values.
const (
	MaxFloat32             = math.MaxFloat32
	SmallestNonzeroFloat32 = math.SmallestNonzeroFloat32
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float32 {
	return math32.Inf(sign)
}

// IsInf reports whether f is an infinity, according to sign.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Clamp clamps x to the provided closed interval [a, b]
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
