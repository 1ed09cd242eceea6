// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by [FromHex] and [FromHexFloat]
// for strings that do not pass [IsHex].
var ErrInvalidHex = errors.New("invalid hex color")

// IsHex returns whether the given string is a well-formed hex color:
// an optional leading '#' followed by 3, 6, or 8 hexadecimal digits,
// in either case (#rgb, #rrggbb, #rrggbbaa).
func IsHex(hex string) bool {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// FromHex parses the given hex color string and returns the resulting
// non alpha-premultiplied color. A missing alpha component means fully
// opaque, and the 3 digit form expands each digit (#f80 == #ff8800).
// It returns an error wrapping [ErrInvalidHex] if ![IsHex].
func FromHex(hex string) (color.NRGBA, error) {
	if !IsHex(hex) {
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: %w: %q", ErrInvalidHex, hex)
	}
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// FromHexFloat parses the given hex color string into
// normalized [NRGBAf32] channels. See [FromHex].
func FromHexFloat(hex string) (NRGBAf32, error) {
	c, err := FromHex(hex)
	if err != nil {
		return NRGBAf32{}, err
	}
	return FromNRGBA8(c.R, c.G, c.B, c.A), nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.NRGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}
