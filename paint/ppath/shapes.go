// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/snap/math32"
)

// Polyline adds multiple connected lines, with no final Close.
func (p *Path) Polyline(points ...math32.Vector2) *Path {
	sz := len(points)
	if sz < 2 {
		return p
	}
	p.MoveTo(points[0].X, points[0].Y)
	for i := 1; i < sz; i++ {
		p.LineTo(points[i].X, points[i].Y)
	}
	return p
}

// Polygon adds multiple connected lines with a final Close.
func (p *Path) Polygon(points ...math32.Vector2) *Path {
	p.Polyline(points...)
	p.Close()
	return p
}

// Rectangle adds a rectangle of width w and height h,
// clockwise in y-down coordinates.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return p
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// Circle adds a full circle at given center coordinates of radius r,
// as its own closed subpath.
func (p *Path) Circle(cx, cy, r float32) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds a full ellipse at given center coordinates of radii rx and ry,
// as its own closed subpath made of four cubic Béziers. It starts at
// (cx+rx, cy) and runs clockwise in y-down coordinates (toward +y first),
// the same direction as [Path.Rectangle], so that under the nonzero fill
// rule it adds to, rather than cancels, other clockwise shapes.
// Zero radii degenerate to nothing: all segments coincide and are dropped.
func (p *Path) Ellipse(cx, cy, rx, ry float32) *Path {
	kx := math32.Kappa * rx
	ky := math32.Kappa * ry
	p.MoveTo(cx+rx, cy)
	p.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
	return p
}
