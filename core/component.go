// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"

	"cogentcore.org/snap/math32"
	"cogentcore.org/snap/styles"
)

// Component is the interface that all drawable nodes in a component
// tree satisfy. A parent owns its children; there are no references
// back up the tree.
type Component interface {
	// Children returns the ordered children of the component.
	// The returned slice must not be modified by the caller.
	Children() []Component

	// Style returns the declared style of the component, which is
	// the input to [Layout].
	Style() styles.Style

	// DrawSelf paints only the component's own visual contribution
	// onto the surface; children are drawn separately by the [Renderer].
	// pos is the absolute top-left position of the component in logical
	// units, st is its resolved box, and parent is the resolved box of
	// its parent, which is nil for the root. DrawSelf must not panic
	// on malformed input, and must not modify the surface when it
	// returns an error.
	DrawSelf(surface *image.RGBA, ctx *Context, pos math32.Vector2, st, parent *styles.Computed) error
}

// Context contains the parameters of one render pass,
// which are supplied by the caller and not owned by any component.
type Context struct {
	// ScaleFactor is the uniform multiplier applied to all
	// painted geometry, such as a device pixel ratio.
	ScaleFactor float32
}

// NewContext returns a new [Context] with the given scale factor.
func NewContext(scale float32) *Context {
	return &Context{ScaleFactor: scale}
}

// scale returns the scale factor of the given context,
// which is 1 for a nil context.
func (ctx *Context) scale() float32 {
	if ctx == nil {
		return 1
	}
	return ctx.ScaleFactor
}

// Validator is an interface for components to provide a Validate
// method that reports invalid construction-time attributes without
// drawing anything. It is used by [Check].
type Validator interface {
	// Validate returns an error if the component is invalid.
	Validate() error
}
