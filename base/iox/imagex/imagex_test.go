// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 30), uint8(y * 60), 128, 255})
		}
	}
	return img
}

func TestExtToFormat(t *testing.T) {
	tests := []struct {
		ext  string
		want Formats
	}{
		{".png", PNG},
		{"PNG", PNG},
		{".jpg", JPEG},
		{"jpeg", JPEG},
		{".gif", GIF},
		{".tif", TIFF},
		{".TIFF", TIFF},
		{".bmp", BMP},
		{".webp", WebP},
	}
	for _, test := range tests {
		f, err := ExtToFormat(test.ext)
		assert.NoError(t, err, test.ext)
		assert.Equal(t, test.want, f, test.ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
}

func TestFormatsString(t *testing.T) {
	assert.Equal(t, "PNG", PNG.String())
	assert.Equal(t, "WebP", WebP.String())
	assert.Equal(t, "Formats(42)", Formats(42).String())
}

func TestWriteRead(t *testing.T) {
	img := testImage()
	for _, f := range []Formats{PNG, TIFF, BMP} {
		t.Run(f.String(), func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, Write(img, &b, f))
			res, rf, err := Read(&b)
			require.NoError(t, err)
			assert.Equal(t, f, rf)
			assert.Equal(t, img.Bounds(), res.Bounds())
			assert.Equal(t, img.Pix, CloneAsRGBA(res).Pix)
		})
	}
	assert.Error(t, Write(img, &bytes.Buffer{}, WebP))
}

func TestSaveOpen(t *testing.T) {
	img := testImage()
	fn := filepath.Join(t.TempDir(), "img.png")
	require.NoError(t, Save(img, fn))
	res, f, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, img.Pix, AsRGBA(res).Pix)

	assert.Error(t, Save(img, filepath.Join(t.TempDir(), "img.txt")))
	_, _, err = Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAsRGBA(t *testing.T) {
	img := testImage()
	assert.Same(t, img, AsRGBA(img))
	assert.NotSame(t, img, CloneAsRGBA(img))
	assert.Nil(t, AsRGBA(nil))

	n := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	n.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 128})
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, AsRGBA(n).RGBAAt(1, 1))
}

func TestFitWidth(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 200))
	assert.Same(t, img, FitWidth(img, 0))
	assert.Same(t, img, FitWidth(img, 400))
	assert.Equal(t, image.Rect(0, 0, 100, 50), FitWidth(img, 100).Bounds())
}

type recorder struct {
	errs []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func TestAssert(t *testing.T) {
	t.Chdir(t.TempDir())
	img := testImage()
	r := &recorder{}
	Assert(r, img, "basic")
	assert.Empty(t, r.errs)
	assert.FileExists(t, filepath.Join("testdata", "basic.png"))

	Assert(r, img, "basic")
	assert.Empty(t, r.errs)

	other := testImage()
	other.SetRGBA(3, 2, color.RGBA{255, 255, 255, 255})
	Assert(r, other, "basic")
	assert.Len(t, r.errs, 1)
	assert.FileExists(t, filepath.Join("testdata", "basic.fail.png"))
	assert.FileExists(t, filepath.Join("testdata", "basic.diff.png"))
}
