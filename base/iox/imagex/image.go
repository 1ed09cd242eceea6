// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/draw"
)

// CloneAsRGBA returns an RGBA copy of the supplied image.
func CloneAsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	return clone.AsRGBA(src)
}

// AsRGBA returns the image as an RGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	return CloneAsRGBA(src)
}

// FitWidth returns the image scaled down with [draw.CatmullRom] so that it
// is no wider than the given width, preserving the aspect ratio.
// Images that already fit, and non-positive widths, are returned as is.
func FitWidth(src image.Image, width int) image.Image {
	sb := src.Bounds()
	if width <= 0 || sb.Dx() <= width {
		return src
	}
	height := max(1, sb.Dy()*width/sb.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}
