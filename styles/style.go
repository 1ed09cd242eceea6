// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the declared style of a component, which is
// the input to layout, and the [Computed] box that layout resolves it to.
package styles

import (
	"fmt"

	"cogentcore.org/snap/math32"
	"cogentcore.org/snap/styles/sides"
)

// Style is the declared style of a component. It is an input to the
// layout engine, not a resolved box.
type Style struct {

	// Direction specifies the way in which children are laid out:
	// stacked vertically for [Column] or horizontally for [Row].
	Direction Directions

	// Min is the minimum size of the box, inclusive of Padding.
	// 0 = default means the box is as large as its content.
	Min math32.Vector2

	// Padding is the transparent space around the children,
	// which is included in the size of the box.
	Padding sides.Floats

	// Gap is the extra space added between children along the Direction axis.
	Gap float32
}

// NewStyle returns a new [Style] with default values.
func NewStyle() *Style {
	s := &Style{}
	s.Defaults()
	return s
}

// Defaults sets the default style values: a column with no padding.
func (s *Style) Defaults() {
	*s = Style{Direction: Column}
}

// MainAxis returns the dimension along which children are stacked.
func (s *Style) MainAxis() math32.Dims {
	if s.Direction == Row {
		return math32.X
	}
	return math32.Y
}

// Directions are the directions children of a box can be laid out in.
type Directions int32

const (
	// Row lays out children horizontally, left to right.
	Row Directions = iota

	// Column lays out children vertically, top to bottom.
	Column
)

func (d Directions) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	}
	return fmt.Sprintf("Directions(%d)", int32(d))
}

// Computed is the resolved box of a component for one render pass,
// in logical units. Both dimensions are non-negative.
type Computed struct {
	Width  float32
	Height float32
}

// Size returns the computed size as a vector.
func (c Computed) Size() math32.Vector2 {
	return math32.Vec2(c.Width, c.Height)
}

func (c Computed) String() string {
	return fmt.Sprintf("%gx%g", c.Width, c.Height)
}
