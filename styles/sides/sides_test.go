// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sides

import (
	"testing"

	"cogentcore.org/snap/math32"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	assert.Equal(t, Sides[int]{}, *NewSides[int]())
	assert.Equal(t, Sides[int]{1, 1, 1, 1}, *NewSides(1))
	assert.Equal(t, Sides[int]{1, 2, 1, 2}, *NewSides(1, 2))
	assert.Equal(t, Sides[int]{1, 2, 3, 2}, *NewSides(1, 2, 3))
	assert.Equal(t, Sides[int]{1, 2, 3, 4}, *NewSides(1, 2, 3, 4))
	assert.Equal(t, Sides[int]{1, 2, 3, 4}, *NewSides(1, 2, 3, 4, 5))
	assert.Equal(t, Sides[int]{}, *NewSides(1, 2, 3, 4).Zero())

	assert.True(t, AreSame(*NewSides(7)))
	assert.False(t, AreSame(*NewSides(7, 8)))
}

func TestFloats(t *testing.T) {
	f := NewFloats(20)
	assert.Equal(t, math32.Vec2(20, 20), f.Pos())
	assert.Equal(t, math32.Vec2(40, 40), f.Size())

	f = NewFloats(1, 2, 3, 4)
	assert.Equal(t, math32.Vec2(4, 1), f.Pos())
	assert.Equal(t, math32.Vec2(6, 4), f.Size())
	assert.Equal(t, NewFloats(2, 4, 6, 8), f.MulScalar(2))
}
