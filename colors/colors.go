// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and conversion
// for the panel renderer.
package colors

import (
	"fmt"
	"image/color"
)

// Standard colors.
var (
	Transparent = color.RGBA{}
	Black       = color.RGBA{0, 0, 0, 255}
	White       = color.RGBA{255, 255, 255, 255}
	Red         = color.RGBA{255, 0, 0, 255}
)

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsNRGBA returns the given color as a non alpha-premultiplied NRGBA color
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	if f, ok := c.(NRGBAf32); ok {
		return f.AsNRGBA8()
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsNRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}
