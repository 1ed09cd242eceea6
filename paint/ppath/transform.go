// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/snap/math32"
)

// Transform transforms the path by the given transformation matrix
// and returns the path. It modifies the path in-place.
func (p Path) Transform(m math32.Matrix2) Path {
	if m.IsIdentity() {
		return p
	}
	for i := 0; i < len(p); {
		cmd := p[i]
		switch cmd {
		case MoveTo, LineTo, Close:
			end := m.MulVector2AsPoint(math32.Vec2(p[i+1], p[i+2]))
			p[i+1] = end.X
			p[i+2] = end.Y
		case CubeTo:
			cp1 := m.MulVector2AsPoint(math32.Vec2(p[i+1], p[i+2]))
			cp2 := m.MulVector2AsPoint(math32.Vec2(p[i+3], p[i+4]))
			end := m.MulVector2AsPoint(math32.Vec2(p[i+5], p[i+6]))
			p[i+1] = cp1.X
			p[i+2] = cp1.Y
			p[i+3] = cp2.X
			p[i+4] = cp2.Y
			p[i+5] = end.X
			p[i+6] = end.Y
		}
		i += CmdLen(cmd)
	}
	return p
}

// Translate translates the path by (x,y) and returns the path.
// It modifies the path in-place.
func (p Path) Translate(x, y float32) Path {
	return p.Transform(math32.Translate2D(x, y))
}

// Scale scales the path by (x,y) and returns the path.
// It modifies the path in-place.
func (p Path) Scale(x, y float32) Path {
	return p.Transform(math32.Scale2D(x, y))
}
