// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsNRGBA8Truncates(t *testing.T) {
	assert.Equal(t, color.NRGBA{254, 0, 127, 255}, NRGBAf32{0.999, 0.001, 0.5, 1}.AsNRGBA8())
	assert.Equal(t, color.NRGBA{0, 255, 0, 0}, NRGBAf32{-0.5, 1.5, float32(math.NaN()), 0}.AsNRGBA8())
}

func TestPanelBackground(t *testing.T) {
	assert.Equal(t, color.NRGBA{40, 44, 52, 237}, PanelBackground.AsNRGBA8())
	assert.Equal(t, "#282C34ED", AsHex(PanelBackground))
}

func TestAsRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{}, AsRGBA(nil))
	assert.Equal(t, Red, AsRGBA(NRGBAf32{1, 0, 0, 1}))
	assert.Equal(t, color.RGBA{0x80, 0, 0, 0x80}, AsRGBA(color.NRGBA{255, 0, 0, 0x80}))
	assert.Equal(t, "nil", AsHex(nil))
}
