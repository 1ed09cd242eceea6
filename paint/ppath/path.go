// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

// Package ppath is the path geometry used for painting: a compact
// command buffer of straight and cubic segments, with helpers for
// building standard shapes.
package ppath

import (
	"slices"

	"cogentcore.org/snap/math32"
)

// Path is a collection of MoveTo, LineTo, CubeTo, and Close
// commands, each followed the float32 coordinate data for it.
// To enable support bidirectional processing, the command verb is also added
// to the end of the coordinate data as well.
// The last two coordinate values are the end point position of the pen after
// the action (x,y).
// CubeTo defines two control points in between.
// Only valid commands are appended, so that LineTo has a non-zero length,
// and CubeTo's control points don't all overlap with the start and end point.
type Path []float32

func New() *Path {
	return &Path{}
}

// Commands
const (
	MoveTo float32 = 0
	LineTo float32 = 1
	CubeTo float32 = 2
	Close  float32 = 3
)

var cmdLens = [4]int{4, 4, 8, 4}

// CmdLen returns the overall length of the command, including
// the command op itself.
func CmdLen(cmd float32) int {
	return cmdLens[int(cmd)]
}

// Reset clears the path but retains the same memory.
// This can be used in loops where you append and process
// paths every iteration, and avoid new memory allocations.
func (p *Path) Reset() {
	*p = (*p)[:0]
}

// Empty returns true if p is an empty path or consists of only MoveTos and Closes.
func (p Path) Empty() bool {
	return len(p) <= CmdLen(MoveTo)
}

// Equals returns true if p and q are equal within tolerance Epsilon.
func (p Path) Equals(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := 0; i < len(p); i++ {
		if !Equal(p[i], q[i]) {
			return false
		}
	}
	return true
}

// Closed returns true if the last subpath of p is a closed path.
func (p Path) Closed() bool {
	return 0 < len(p) && p[len(p)-1] == Close
}

// Subpaths returns the number of subpaths, i.e. the number of MoveTo commands.
func (p Path) Subpaths() int {
	n := 0
	for i := 0; i < len(p); {
		if p[i] == MoveTo {
			n++
		}
		i += CmdLen(p[i])
	}
	return n
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Len returns the number of commands in the path.
func (p Path) Len() int {
	n := 0
	for i := 0; i < len(p); {
		i += CmdLen(p[i])
		n++
	}
	return n
}

// Pos returns the current position of the path,
// which is the end point of the last command.
func (p Path) Pos() math32.Vector2 {
	if 0 < len(p) {
		return math32.Vec2(p[len(p)-3], p[len(p)-2])
	}
	return math32.Vector2{}
}

// StartPos returns the start point of the current subpath,
// i.e. it returns the position of the last MoveTo command.
func (p Path) StartPos() math32.Vector2 {
	for i := len(p); 0 < i; {
		cmd := p[i-1]
		if cmd == MoveTo {
			return math32.Vec2(p[i-3], p[i-2])
		}
		i -= CmdLen(cmd)
	}
	return math32.Vector2{}
}

// Coords returns all the coordinates of the segment
// start/end points. It omits zero-length Closes.
func (p Path) Coords() []math32.Vector2 {
	coords := []math32.Vector2{}
	for i := 0; i < len(p); {
		cmd := p[i]
		i += CmdLen(cmd)
		if len(coords) == 0 || cmd != Close || !EqualPoint(coords[len(coords)-1], math32.Vec2(p[i-3], p[i-2])) {
			coords = append(coords, math32.Vec2(p[i-3], p[i-2]))
		}
	}
	return coords
}

// Bounds returns the bounding box of all the points of the path,
// including Bézier control points, which is exact for axis-aligned
// circles and lines.
func (p Path) Bounds() math32.Box2 {
	b := math32.B2Empty()
	for i := 0; i < len(p); {
		cmd := p[i]
		n := CmdLen(cmd)
		for j := i + 1; j+1 < i+n; j += 2 {
			b.ExpandByPoint(math32.Vec2(p[j], p[j+1]))
		}
		i += n
	}
	return b
}

/////// Constructors

// MoveTo moves the path to (x,y) without connecting the path.
// It starts a new independent subpath. Multiple subpaths can be useful
// when negating parts of a previous path by overlapping it with a path
// in the opposite direction. The behaviour for overlapping paths depends
// on the fill rule.
func (p *Path) MoveTo(x, y float32) {
	if 0 < len(*p) && (*p)[len(*p)-1] == MoveTo {
		(*p)[len(*p)-3] = x
		(*p)[len(*p)-2] = y
		return
	}
	*p = append(*p, MoveTo, x, y, MoveTo)
}

// LineTo adds a linear path to (x,y).
// Zero-length lines are dropped.
func (p *Path) LineTo(x, y float32) {
	start := p.Pos()
	end := math32.Vector2{x, y}
	if len(*p) != 0 && EqualPoint(start, end) {
		return
	}
	if len(*p) == 0 {
		p.MoveTo(0.0, 0.0)
	} else if (*p)[len(*p)-1] == Close {
		p.MoveTo((*p)[len(*p)-3], (*p)[len(*p)-2])
	}
	*p = append(*p, LineTo, end.X, end.Y, LineTo)
}

// CubeTo adds a cubic Bézier path with control points
// (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
// A segment whose points all coincide is dropped.
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float32) {
	start := p.Pos()
	cp1 := math32.Vector2{cpx1, cpy1}
	cp2 := math32.Vector2{cpx2, cpy2}
	end := math32.Vector2{x, y}
	if len(*p) != 0 && EqualPoint(start, end) && EqualPoint(start, cp1) && EqualPoint(start, cp2) {
		return
	}
	if len(*p) == 0 {
		p.MoveTo(0.0, 0.0)
	} else if (*p)[len(*p)-1] == Close {
		p.MoveTo((*p)[len(*p)-3], (*p)[len(*p)-2])
	}
	*p = append(*p, CubeTo, cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y, CubeTo)
}

// Close closes a (sub)path with a LineTo to the start of the path
// (the most recent MoveTo command). It also signals the path closes
// as opposed to being just a LineTo command.
func (p *Path) Close() {
	if len(*p) == 0 || (*p)[len(*p)-1] == Close {
		// already closed or empty
		return
	} else if (*p)[len(*p)-1] == MoveTo {
		// remove MoveTo + Close
		*p = (*p)[:len(*p)-CmdLen(MoveTo)]
		return
	}

	end := p.StartPos()
	if (*p)[len(*p)-1] == LineTo && Equal((*p)[len(*p)-3], end.X) && Equal((*p)[len(*p)-2], end.Y) {
		// replace LineTo by Close if equal
		(*p)[len(*p)-1] = Close
		(*p)[len(*p)-CmdLen(LineTo)] = Close
		return
	}
	*p = append(*p, Close, end.X, end.Y, Close)
}
