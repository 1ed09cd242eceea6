// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rasterizer

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/snap/colors"
	"cogentcore.org/snap/math32"
	"cogentcore.org/snap/paint"
	"cogentcore.org/snap/paint/ppath"
	"github.com/stretchr/testify/assert"
)

var red = paint.Paint{Color: color.NRGBA{255, 0, 0, 255}}

func fill(img *image.RGBA, p ppath.Path, m math32.Matrix2) {
	rs := New(img)
	rs.Render(paint.Render{&paint.Path{Path: p, Paint: red, Transform: m}})
}

func TestRenderRectangle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	p := ppath.Path{}
	p.Rectangle(2, 3, 10, 5)
	fill(img, p, math32.Identity2())

	assert.Equal(t, colors.Red, img.RGBAAt(2, 3))
	assert.Equal(t, colors.Red, img.RGBAAt(11, 7))
	assert.Equal(t, colors.Transparent, img.RGBAAt(12, 7))
	assert.Equal(t, colors.Transparent, img.RGBAAt(11, 8))
	assert.Equal(t, colors.Transparent, img.RGBAAt(1, 3))
	assert.Equal(t, colors.Transparent, img.RGBAAt(2, 2))
}

func TestRenderScale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	p := ppath.Path{}
	p.Rectangle(2, 3, 10, 5)
	fill(img, p, math32.Scale2D(2, 2))

	assert.Equal(t, colors.Transparent, img.RGBAAt(3, 5))
	assert.Equal(t, colors.Red, img.RGBAAt(4, 6))
	assert.Equal(t, colors.Red, img.RGBAAt(23, 15))
	assert.Equal(t, colors.Transparent, img.RGBAAt(24, 15))
	assert.Equal(t, colors.Transparent, img.RGBAAt(23, 16))
}

func TestRenderNonZero(t *testing.T) {
	// two overlapping clockwise squares merge
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	p := ppath.Path{}
	p.Rectangle(0, 0, 10, 10)
	p.Rectangle(5, 5, 10, 10)
	fill(img, p, math32.Identity2())
	assert.Equal(t, colors.Red, img.RGBAAt(7, 7))
	assert.Equal(t, colors.Red, img.RGBAAt(2, 2))
	assert.Equal(t, colors.Red, img.RGBAAt(12, 12))

	// a counter-clockwise inner square cuts a hole
	img = image.NewRGBA(image.Rect(0, 0, 20, 20))
	p = ppath.Path{}
	p.Rectangle(0, 0, 10, 10)
	p.Polygon(math32.Vec2(2, 2), math32.Vec2(2, 8), math32.Vec2(8, 8), math32.Vec2(8, 2))
	fill(img, p, math32.Identity2())
	assert.Equal(t, colors.Transparent, img.RGBAAt(5, 5))
	assert.Equal(t, colors.Red, img.RGBAAt(1, 1))
}

func TestRenderCircleCoverage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	p := ppath.Path{}
	p.Circle(10, 10, 8)
	fill(img, p, math32.Identity2())
	assert.Equal(t, colors.Red, img.RGBAAt(10, 10))
	assert.Equal(t, colors.Transparent, img.RGBAAt(1, 1))
	// edge pixel is anti-aliased
	a := img.RGBAAt(10, 2).A
	assert.Greater(t, a, uint8(0))
	assert.Equal(t, colors.Transparent, img.RGBAAt(10, 1))
}

func TestRenderOutOfBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	p := ppath.Path{}
	p.Rectangle(20, 20, 5, 5)
	fill(img, p, math32.Identity2())
	for _, b := range img.Pix {
		assert.Equal(t, uint8(0), b)
	}

	p = ppath.Path{}
	p.Rectangle(-5, -5, 10, 10)
	fill(img, p, math32.Identity2())
	assert.Equal(t, colors.Red, img.RGBAAt(0, 0))
	assert.Equal(t, colors.Red, img.RGBAAt(4, 4))
	assert.Equal(t, colors.Transparent, img.RGBAAt(5, 5))
}
