// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"image"

	"cogentcore.org/snap/colors"
	"cogentcore.org/snap/math32"
	"cogentcore.org/snap/paint"
	"cogentcore.org/snap/paint/ppath"
	_ "cogentcore.org/snap/paint/renderers"
	"cogentcore.org/snap/styles"
)

// EditorPadding is the uniform padding, in logical units,
// that a [Panel] declares on all four sides.
const EditorPadding = 20

// Panel is a rounded rectangle background that stacks its children
// vertically inside a uniform [EditorPadding].
type Panel struct {

	// Radius is the corner radius in logical units.
	// It is clamped to half of the smaller side of the resolved box.
	Radius float32

	// MinWidth is the minimum width of the panel in logical units.
	MinWidth float32

	// Background is the optional hex background color.
	// If it is nil, [colors.PanelBackground] is used.
	// If it is present but not a valid hex color, drawing fails with an
	// [InvalidHexColorError].
	Background *string

	// Kids are the children of the panel, in order.
	Kids []Component
}

// NewPanel returns a new [Panel] with the given corner radius and children.
func NewPanel(radius float32, children ...Component) *Panel {
	return &Panel{Radius: radius, Kids: children}
}

// SetMinWidth sets the [Panel.MinWidth].
func (p *Panel) SetMinWidth(v float32) *Panel { p.MinWidth = v; return p }

// SetBackground sets the [Panel.Background] to the given hex string.
func (p *Panel) SetBackground(hex string) *Panel { p.Background = &hex; return p }

// AddChild adds the given children to the end of [Panel.Kids].
func (p *Panel) AddChild(kids ...Component) *Panel {
	p.Kids = append(p.Kids, kids...)
	return p
}

func (p *Panel) Children() []Component {
	return p.Kids
}

func (p *Panel) Style() styles.Style {
	s := styles.Style{Direction: styles.Column}
	s.Min.X = p.MinWidth
	s.Padding.Set(EditorPadding)
	return s
}

// BackgroundColor resolves the [Panel.Background] to a normalized color.
// It is computed fresh on every call.
func (p *Panel) BackgroundColor() (colors.NRGBAf32, error) {
	if p.Background == nil {
		return colors.PanelBackground, nil
	}
	c, err := colors.FromHexFloat(*p.Background)
	if err != nil {
		return colors.NRGBAf32{}, &InvalidHexColorError{Color: *p.Background}
	}
	return c, nil
}

// Validate returns an [InvalidHexColorError] if the background is invalid.
func (p *Panel) Validate() error {
	_, err := p.BackgroundColor()
	return err
}

func (p *Panel) DrawSelf(surface *image.RGBA, ctx *Context, pos math32.Vector2, st, parent *styles.Computed) error {
	clr, err := p.BackgroundColor()
	if err != nil {
		return err
	}
	if st == nil || surface == nil {
		return nil
	}
	w, h := st.Width, st.Height
	for _, v := range [...]float32{pos.X, pos.Y, w, h} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("core.Panel: non-finite box %v at %v", *st, pos)
		}
	}
	if !(w > 0 && h > 0) {
		return nil
	}
	r := p.Radius
	if math32.IsNaN(r) {
		r = 0
	}
	r = math32.Clamp(r, 0, math32.Min(w, h)/2)

	k := ctx.scale()
	pc := paint.NewContextFromRGBA(surface)
	pc.Transform = math32.Scale2D(k, k)
	pc.FillPath(PanelPath(pos.X, pos.Y, w, h, r), paint.NewPaint(clr))
	pc.RenderDone()
	return nil
}

// PanelPath returns the closed path of a rounded panel with the given
// top-left position, size and corner radius, to be filled with the
// nonzero winding rule. The path is an inset outline that runs r short of
// each corner, followed by a full circle of radius r at each of the four
// inset corners. Every subpath winds clockwise in y-down coordinates,
// so the overlaps merge into a rectangle with rounded corners.
// A zero radius yields a plain rectangle. The radius is not clamped.
func PanelPath(x, y, w, h, r float32) ppath.Path {
	rw := w - 2*r
	rh := h - 2*r
	p := ppath.Path{}
	p.MoveTo(x+r, y)
	p.LineTo(x+r+rw, y)
	p.LineTo(x+r+rw, y+r)
	p.LineTo(x+rw+2*r, y+r)
	p.LineTo(x+rw+2*r, y+rh+r)
	p.LineTo(x+rw+r, y+rh+r)
	p.LineTo(x+rw+r, y+rh+2*r)
	p.LineTo(x+r, y+rh+2*r)
	p.LineTo(x+r, y+rh+r)
	p.LineTo(x, y+rh+r)
	p.LineTo(x, y+r)
	p.LineTo(x+r, y+r)
	p.LineTo(x+r, y)
	p.LineTo(x+r+rw, y)

	p.Circle(x+rw+r, y+rh+r, r)
	p.Circle(x+r+rw, y+r, r)
	p.Circle(x+r, y+r, r)
	p.Circle(x+r, y+rh+r, r)
	p.Close()
	return p
}
