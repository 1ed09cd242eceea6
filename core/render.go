// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/snap/math32"
)

// Rendering logic:
//
// A render pass lays out the whole tree with [Layout], and then walks it
// depth-first, calling [Component.DrawSelf] on each node before any of
// its children, so that children paint over their parents. Each call
// runs to completion with exclusive access to the surface.

// Renderer renders component trees onto raster images.
type Renderer struct {

	// Context is the context passed to every [Component.DrawSelf] call.
	Context Context

	// KeepGoing is whether to continue drawing the rest of the tree
	// after a component returns an error. If it is false, the pass is
	// aborted on the first error. If it is true, all errors are returned
	// joined together with [errors.Join].
	KeepGoing bool
}

// NewRenderer returns a new [Renderer] with the given scale factor.
func NewRenderer(scale float32) *Renderer {
	return &Renderer{Context: Context{ScaleFactor: scale}}
}

// SetKeepGoing sets the [Renderer.KeepGoing] option.
func (r *Renderer) SetKeepGoing(v bool) *Renderer { r.KeepGoing = v; return r }

// Render lays out the given tree and renders it onto a new transparent
// image sized to the scaled root box, rounded up to whole pixels.
// The image is returned even when there is an error.
func (r *Renderer) Render(root Component) (*image.RGBA, error) {
	if err := r.validate(root); err != nil {
		return nil, err
	}
	lt := Layout(root, math32.Vector2{})
	sz := lt.Computed.Size().MulScalar(r.Context.ScaleFactor).ToPointCeil()
	img := image.NewRGBA(image.Rectangle{Max: sz})
	return img, r.draw(img, lt)
}

// RenderInto lays out the given tree at the origin and renders it
// onto the given surface.
func (r *Renderer) RenderInto(surface *image.RGBA, root Component) error {
	if err := r.validate(root); err != nil {
		return err
	}
	if surface == nil {
		return errors.New("core.Renderer.RenderInto: nil surface")
	}
	return r.draw(surface, Layout(root, math32.Vector2{}))
}

func (r *Renderer) validate(root Component) error {
	if root == nil {
		return errors.New("core.Renderer: nil root component")
	}
	k := r.Context.ScaleFactor
	if !(k > 0) || math32.IsInf(k, 1) {
		return fmt.Errorf("core.Renderer: scale factor must be positive and finite, not %g", k)
	}
	return nil
}

// draw draws the given layout tree onto the surface.
func (r *Renderer) draw(surface *image.RGBA, lt *LayoutTree) error {
	st := time.Now()
	var errs []error
	stop := false
	n := 0
	lt.WalkDown(func(nd *LayoutTree) bool {
		if stop {
			return Break
		}
		n++
		err := nd.Component.DrawSelf(surface, &r.Context, nd.Pos, &nd.Computed, nd.Parent)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", nd.Path, err))
			if !r.KeepGoing {
				stop = true
				return Break
			}
		}
		return Continue
	})
	slog.Debug("core.Renderer: render pass done", "nodes", n, "errors", len(errs), "size", lt.Computed, "scale", r.Context.ScaleFactor, "time", time.Since(st))
	return errors.Join(errs...)
}

// Check lays out the given tree and calls [Validator.Validate] on every
// component that implements it, without drawing anything. It returns all
// errors joined together, each wrapped with the path of its component.
func Check(root Component) error {
	if root == nil {
		return errors.New("core.Check: nil root component")
	}
	var errs []error
	Layout(root, math32.Vector2{}).WalkDown(func(nd *LayoutTree) bool {
		if v, ok := nd.Component.(Validator); ok {
			if err := v.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", nd.Path, err))
			}
		}
		return Continue
	})
	return errors.Join(errs...)
}
