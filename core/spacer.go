// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"

	"cogentcore.org/snap/math32"
	"cogentcore.org/snap/styles"
)

// Spacer is an invisible component of a fixed size,
// used to reserve space inside a [Panel].
type Spacer struct {
	Width  float32
	Height float32
}

// NewSpacer returns a new [Spacer] of the given size.
func NewSpacer(width, height float32) *Spacer {
	return &Spacer{Width: width, Height: height}
}

func (sp *Spacer) Children() []Component { return nil }

func (sp *Spacer) Style() styles.Style {
	return styles.Style{Direction: styles.Column, Min: math32.Vec2(sp.Width, sp.Height)}
}

func (sp *Spacer) DrawSelf(surface *image.RGBA, ctx *Context, pos math32.Vector2, st, parent *styles.Computed) error {
	return nil
}
