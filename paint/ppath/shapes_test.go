// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/snap/math32"
	"github.com/stretchr/testify/assert"
)

func TestCircle(t *testing.T) {
	p := Path{}
	p.Circle(10, 20, 5)
	assert.Equal(t, 1, p.Subpaths())
	assert.True(t, p.Closed())
	assert.Equal(t, math32.B2(5, 15, 15, 25), p.Bounds())

	// clockwise in y-down: the first quarter heads toward +y
	s := p.Scanner()
	s.Scan()
	assert.Equal(t, math32.Vec2(15, 20), s.End())
	s.Scan()
	assert.Equal(t, CubeTo, s.Cmd())
	assert.Equal(t, math32.Vec2(10, 25), s.End())
}

func TestCircleZeroRadius(t *testing.T) {
	p := Path{}
	p.Circle(10, 20, 0)
	assert.True(t, p.Empty())
	assert.Equal(t, 0, len(p))

	p.Rectangle(0, 0, 2, 2)
	p.Circle(1, 1, 0)
	assert.Equal(t, 1, p.Subpaths())
}

func TestPolygon(t *testing.T) {
	p := Path{}
	p.Polyline(math32.Vec2(0, 0))
	assert.True(t, p.Empty())

	p.Polygon(math32.Vec2(0, 0), math32.Vec2(4, 0), math32.Vec2(4, 3))
	assert.True(t, p.Closed())
	assert.Equal(t, []math32.Vector2{{0, 0}, {4, 0}, {4, 3}, {0, 0}}, p.Coords())

	q := Path{}
	q.Rectangle(0, 0, 0, 5)
	assert.True(t, q.Empty())
}
