// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

// FromPoint returns a new [Vector2] from the given [image.Point].
func FromPoint(pt image.Point) Vector2 {
	return Vector2{float32(pt.X), float32(pt.Y)}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Set sets this vector X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// MulScalar returns the vector multiplied by the given scalar.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Min returns min of this vector components vs. other vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

// Max returns max of this vector components vs. other vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the cross product of this vector with other.
func (v Vector2) Cross(other Vector2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dim returns the value along the given dimension.
func (v Vector2) Dim(d Dims) float32 {
	if d == X {
		return v.X
	}
	return v.Y
}

// SetDim sets the value along the given dimension.
func (v *Vector2) SetDim(d Dims, value float32) {
	if d == X {
		v.X = value
	} else {
		v.Y = value
	}
}

// ToPointCeil returns the vector as an [image.Point], with ceil of each component.
func (v Vector2) ToPointCeil() image.Point {
	return image.Point{int(Ceil(v.X)), int(Ceil(v.Y))}
}

// ToPointFloor returns the vector as an [image.Point], with floor of each component.
func (v Vector2) ToPointFloor() image.Point {
	return image.Point{int(Floor(v.X)), int(Floor(v.Y))}
}

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
)

// Other returns the other dimension.
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}
