// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix2 is a 3x2 matrix for 2D affine transforms.
// [XX YX XY YY X0 Y0] maps (x, y) to
// (XX*x + XY*y + X0, YX*x + YY*y + Y0).
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns the identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 2D matrix with given scaling factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Mul returns a*b: b is applied first, then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// IsIdentity returns true if the matrix is the identity.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// ExtractScale extracts the scaling factors along each axis.
// Only meaningful for matrices without rotation or skew.
func (a Matrix2) ExtractScale() (scx, scy float32) {
	return a.XX, a.YY
}

func (a Matrix2) String() string {
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}
