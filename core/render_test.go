// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/snap/base/iox/imagex"
	"cogentcore.org/snap/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
)

// nested returns a black root panel containing a child panel with the
// given background, which contains a green panel.
//
//	root   (0, 0)   130x130
//	child  (20, 20) 90x90
//	inner  (40, 40) 50x50
func nested(background string) *Panel {
	inner := NewPanel(0, NewSpacer(10, 10)).SetBackground("#00ff00")
	child := NewPanel(0, inner).SetBackground(background)
	return NewPanel(0, child).SetBackground("#000000")
}

func TestRender(t *testing.T) {
	img, err := NewRenderer(1).Render(nested("#ff0000"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 130, 130), img.Bounds())
	assert.Equal(t, black, img.RGBAAt(5, 5))
	assert.Equal(t, red, img.RGBAAt(25, 25))
	assert.Equal(t, green, img.RGBAAt(50, 50))
	assert.Equal(t, red, img.RGBAAt(100, 100))
	assert.Equal(t, black, img.RGBAAt(125, 125))
}

func TestRenderScale(t *testing.T) {
	img, err := NewRenderer(2).Render(nested("#ff0000"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 260, 260), img.Bounds())
	assert.Equal(t, black, img.RGBAAt(39, 39))
	assert.Equal(t, red, img.RGBAAt(40, 40))
	assert.Equal(t, green, img.RGBAAt(80, 80))
	assert.Equal(t, green, img.RGBAAt(179, 179))
	assert.Equal(t, red, img.RGBAAt(180, 180))

	img, err = NewRenderer(1.5).Render(NewPanel(0, NewSpacer(1, 1)))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 62, 62), img.Bounds())
}

func TestRenderAbort(t *testing.T) {
	img, err := NewRenderer(1).Render(nested("bad"))
	var ie *InvalidHexColorError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "bad", ie.Color)
	assert.EqualError(t, err, `panel/panel[0]: invalid hex color: "bad"`)

	assert.Equal(t, black, img.RGBAAt(25, 25))
	assert.Equal(t, black, img.RGBAAt(50, 50))
}

func TestRenderKeepGoing(t *testing.T) {
	root := nested("bad")
	root.AddChild(NewPanel(0).SetBackground("nope"))
	img, err := NewRenderer(1).SetKeepGoing(true).Render(root)
	var ie *InvalidHexColorError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "bad", ie.Color)
	assert.ErrorIs(t, err, colors.ErrInvalidHex)
	assert.EqualError(t, err, `panel/panel[0]: invalid hex color: "bad"`+"\n"+`panel/panel[1]: invalid hex color: "nope"`)

	assert.Equal(t, black, img.RGBAAt(25, 25))
	assert.Equal(t, green, img.RGBAAt(50, 50))
}

func TestRenderInto(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	err := NewRenderer(1).RenderInto(img, nested("#ff0000"))
	require.NoError(t, err)
	assert.Equal(t, green, img.RGBAAt(50, 50))
	assert.Equal(t, colors.Transparent, img.RGBAAt(150, 150))

	assert.Error(t, NewRenderer(1).RenderInto(nil, nested("#ff0000")))
}

func TestRenderInvalid(t *testing.T) {
	_, err := NewRenderer(0).Render(nested("#ff0000"))
	assert.Error(t, err)
	_, err = (&Renderer{}).Render(nested("#ff0000"))
	assert.Error(t, err)
	_, err = NewRenderer(1).Render(nil)
	assert.Error(t, err)
}

func TestRenderRounded(t *testing.T) {
	p := NewPanel(12,
		NewPanel(8, NewSpacer(200, 40)).SetBackground("#61afef"),
		NewSpacer(0, 10),
		NewPanel(8, NewSpacer(120, 30)).SetBackground("#e06c75cc"),
	).SetMinWidth(300)
	img, err := NewRenderer(2).Render(p)
	require.NoError(t, err)
	imagex.Assert(t, img, "render/rounded")
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(nested("#fff")))
	root := nested("bad")
	root.AddChild(NewSpacer(1, 1), NewPanel(0).SetBackground(""))
	err := Check(root)
	assert.EqualError(t, err, `panel/panel[0]: invalid hex color: "bad"`+"\n"+`panel/panel[2]: invalid hex color: ""`)
	assert.Error(t, Check(nil))
}
