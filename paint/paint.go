// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/snap/colors"
	"cogentcore.org/snap/math32"
	"cogentcore.org/snap/paint/ppath"
	"github.com/anthonynsimon/bild/clone"
)

// Paint is a solid fill color with integer, non alpha-premultiplied
// 8-bit channels.
type Paint struct {
	Color color.NRGBA
}

// NewPaint returns the [Paint] for the given normalized color, converting
// each channel with truncation toward zero (see [colors.NRGBAf32.AsNRGBA8]).
func NewPaint(c colors.NRGBAf32) Paint {
	return Paint{Color: c.AsNRGBA8()}
}

// Uniform returns the paint as a uniform source image.
func (pt Paint) Uniform() *image.Uniform {
	return image.NewUniform(pt.Color)
}

// Context provides the painting state: the target image, the current
// transform, and the list of pending render items. Painting methods
// add items to [Context.Render]; nothing touches the image until
// [Context.RenderDone] is called.
type Context struct {

	// Image is the image we are painting onto.
	Image *image.RGBA

	// Transform is the current transform applied to all new items.
	Transform math32.Matrix2

	// Render is the list of pending render items.
	Render Render

	// Renderer rasterizes the items onto Image.
	Renderer Renderer
}

// NewContext returns a new [Context] associated with a new transparent
// [image.RGBA] with the given width and height.
func NewContext(width, height int) *Context {
	return NewContextFromRGBA(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewContextFromImage returns a new [Context] associated with an [image.RGBA]
// copy of the given [image.Image]. It does not render directly onto the given
// image; see [NewContextFromRGBA] for a version that renders directly.
func NewContextFromImage(img image.Image) *Context {
	return NewContextFromRGBA(clone.AsRGBA(img))
}

// NewContextFromRGBA returns a new [Context] associated with the given [image.RGBA].
// It renders directly onto the given image; see [NewContextFromImage] for a version
// that makes a copy.
func NewContextFromRGBA(img *image.RGBA) *Context {
	pc := &Context{Image: img, Transform: math32.Identity2()}
	if NewImageRenderer != nil {
		pc.Renderer = NewImageRenderer(img)
	}
	return pc
}

// FillPath adds a fill of the given path with the given paint under the
// nonzero winding rule, using the current transform.
func (pc *Context) FillPath(p ppath.Path, pt Paint) {
	if p.Empty() {
		return
	}
	pc.Render.Add(&Path{Path: p, Paint: pt, Transform: pc.Transform})
}

// RenderDone renders the pending items onto the image and resets
// the render list.
func (pc *Context) RenderDone() {
	if len(pc.Render) == 0 {
		return
	}
	if pc.Renderer == nil {
		slog.Error("programmer error: paint.Context.RenderDone: no Renderer; import cogentcore.org/snap/paint/renderers")
		pc.Render.Reset()
		return
	}
	pc.Renderer.Render(pc.Render)
	pc.Render.Reset()
}
