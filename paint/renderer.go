// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"

	"cogentcore.org/snap/math32"
	"cogentcore.org/snap/paint/ppath"
)

// NewImageRenderer returns a new [Renderer] that draws onto the given image.
// It is set by the renderers package.
var NewImageRenderer func(img *image.RGBA) Renderer

// Renderer is the interface for all backend rendering outputs.
type Renderer interface {
	// Image returns the image being rendered onto.
	Image() *image.RGBA

	// Render renders the list of render items.
	Render(r Render)
}

// Render represents a collection of render [Item]s to be rendered.
type Render []Item

// Item is a union interface for render items.
type Item interface {
	isRenderItem()
}

// Add adds item(s) to render.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Reset resets back to an empty Render state.
// It preserves the existing slice memory for re-use.
func (r *Render) Reset() Render {
	*r = (*r)[:0]
	return *r
}

// Path is a path fill render item.
type Path struct {
	// Path specifies the shape(s) to be filled, in the coordinates
	// given to the paint functions, without any transform applied.
	Path ppath.Path

	// Paint is the solid fill color.
	Paint Paint

	// Transform is applied to the path before rasterizing.
	Transform math32.Matrix2
}

// interface assertion.
func (p *Path) isRenderItem() {}

// TransformedPath returns a copy of the path with [Path.Transform] applied.
func (p *Path) TransformedPath() ppath.Path {
	return p.Path.Clone().Transform(p.Transform)
}
