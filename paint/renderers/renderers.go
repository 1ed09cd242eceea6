// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package renderers registers the default renderers for package paint.
package renderers

import (
	"cogentcore.org/snap/paint"
	"cogentcore.org/snap/paint/renderers/rasterizer"
)

func init() {
	paint.NewImageRenderer = rasterizer.New
}
