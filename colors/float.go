// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// NRGBAf32 stores non-alpha-premultiplied RGBA values in float32 0..1
// normalized format.
type NRGBAf32 struct {
	R, G, B, A float32
}

// PanelBackground is the default background of a panel:
// a dark, slightly translucent neutral.
var PanelBackground = FromNRGBA8(40, 44, 52, 237)

// FromNRGBA8 returns the normalized color for the given 8-bit channels.
func FromNRGBA8(r, g, b, a uint8) NRGBAf32 {
	return NRGBAf32{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// Implements the color.Color interface
func (c NRGBAf32) RGBA() (r, g, b, a uint32) {
	return c.AsNRGBA8().RGBA()
}

// AsNRGBA8 converts to 8-bit channels by multiplying each channel
// by 255 and truncating toward zero. It does not round:
// 0.999 * 255 = 254.7 becomes 254. Channels outside of [0, 1]
// are clamped first.
func (c NRGBAf32) AsNRGBA8() color.NRGBA {
	return color.NRGBA{to8(c.R), to8(c.G), to8(c.B), to8(c.A)}
}

func to8(v float32) uint8 {
	switch {
	case !(v > 0): // also NaN
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v * 255)
}
