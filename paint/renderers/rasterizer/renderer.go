// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterizer is the default image renderer, filling paths
// with the anti-aliasing golang.org/x/image/vector rasterizer.
package rasterizer

import (
	"image"

	"cogentcore.org/snap/paint"
	"cogentcore.org/snap/paint/ppath"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

type Renderer struct {
	image *image.RGBA
	ras   *vector.Rasterizer
}

func New(img *image.RGBA) paint.Renderer {
	rs := &Renderer{image: img}
	rs.ras = &vector.Rasterizer{}
	return rs
}

func (rs *Renderer) Image() *image.RGBA { return rs.image }

func (rs *Renderer) Render(r paint.Render) {
	for _, ri := range r {
		switch x := ri.(type) {
		case *paint.Path:
			rs.RenderPath(x)
		}
	}
}

// RenderPath fills the path item source-over onto the image.
// The vector rasterizer accumulates signed coverage per winding
// and clamps its magnitude to 1, which is the nonzero fill rule:
// overlapping subpaths of the same direction merge, opposite
// directions cancel.
func (rs *Renderer) RenderPath(pt *paint.Path) {
	p := pt.TransformedPath()
	bounds := p.Bounds().ToRect().Intersect(rs.image.Bounds())
	if bounds.Empty() {
		return
	}
	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
	rs.ras.Reset(bounds.Dx(), bounds.Dy())
	rs.ras.DrawOp = draw.Over

	open := false
	for s := p.Scanner(); s.Scan(); {
		end := s.End()
		switch s.Cmd() {
		case ppath.MoveTo:
			if open {
				rs.ras.ClosePath()
			}
			rs.ras.MoveTo(end.X-ox, end.Y-oy)
			open = true
		case ppath.LineTo:
			rs.ras.LineTo(end.X-ox, end.Y-oy)
		case ppath.CubeTo:
			cp1, cp2 := s.CP1(), s.CP2()
			rs.ras.CubeTo(cp1.X-ox, cp1.Y-oy, cp2.X-ox, cp2.Y-oy, end.X-ox, end.Y-oy)
		case ppath.Close:
			rs.ras.ClosePath()
			open = false
		}
	}
	if open {
		rs.ras.ClosePath()
	}
	rs.ras.Draw(rs.image, bounds, pt.Paint.Uniform(), image.Point{})
}
