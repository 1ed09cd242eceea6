// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package paint is the compositing layer: a [Context] collects solid path
fills in a [Render] list, which a [Renderer] then rasterizes onto an
*image.RGBA. Fills always use the nonzero winding rule, so overlapping
subpaths wound in the same direction merge into one region.

The default image renderer is registered by importing
cogentcore.org/snap/paint/renderers.
*/
package paint
