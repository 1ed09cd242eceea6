// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/snap/math32"
	"cogentcore.org/snap/styles"
)

// Layout logic:
//
// Sizes are computed bottom-up: the content size of a node is the sum
// of its children along the main axis (plus [styles.Style.Gap] between
// them) and the maximum across the other axis. The node size is the
// content size plus padding, grown to at least [styles.Style.Min].
//
// Positions are assigned top-down: children start at the node position
// offset by the left and top padding, and advance along the main axis.

// LayoutTree is the result of laying out a component tree for one render
// pass. It mirrors the component tree, with one node per component.
type LayoutTree struct {

	// Component is the component laid out by this node.
	Component Component

	// Path is a slash-separated description of the location of the
	// node in the tree, used in error messages.
	Path string

	// Pos is the absolute top-left position of the component.
	Pos math32.Vector2

	// Computed is the resolved box of the component.
	Computed styles.Computed

	// Parent is the resolved box of the parent component,
	// which is nil for the root.
	Parent *styles.Computed

	// Kids are the layout nodes of the children.
	Kids []*LayoutTree

	// style is the declared style of the component.
	style styles.Style
}

// Layout lays out the given component tree with its root at the given origin.
func Layout(root Component, origin math32.Vector2) *LayoutTree {
	lt := sizeUp(root, typeName(root))
	lt.positionDown(origin, nil)
	return lt
}

// sizeUp computes the sizes of the given component and its children.
func sizeUp(c Component, path string) *LayoutTree {
	lt := &LayoutTree{Component: c, Path: path, style: c.Style()}
	st := &lt.style
	ma := st.MainAxis()
	ca := ma.Other()
	content := math32.Vector2{}
	for i, kid := range c.Children() {
		if kid == nil {
			continue
		}
		kl := sizeUp(kid, fmt.Sprintf("%s/%s[%d]", path, typeName(kid), i))
		ksz := kl.Computed.Size()
		if len(lt.Kids) > 0 {
			content.SetDim(ma, content.Dim(ma)+st.Gap)
		}
		content.SetDim(ma, content.Dim(ma)+ksz.Dim(ma))
		content.SetDim(ca, math32.Max(content.Dim(ca), ksz.Dim(ca)))
		lt.Kids = append(lt.Kids, kl)
	}
	sz := content.Add(st.Padding.Size()).Max(st.Min).Max(math32.Vector2{})
	lt.Computed = styles.Computed{Width: sz.X, Height: sz.Y}
	return lt
}

// positionDown assigns the positions of the node and its children.
func (lt *LayoutTree) positionDown(pos math32.Vector2, parent *styles.Computed) {
	lt.Pos = pos
	lt.Parent = parent
	ma := lt.style.MainAxis()
	cur := pos.Add(lt.style.Padding.Pos())
	for _, kl := range lt.Kids {
		kl.positionDown(cur, &lt.Computed)
		cur.SetDim(ma, cur.Dim(ma)+kl.Computed.Size().Dim(ma)+lt.style.Gap)
	}
}

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkDown calls the given function on the node and all of its descendants
// in depth-first order, parents before children. If fun returns [Break],
// the children of that node are skipped, but its siblings are still visited.
func (lt *LayoutTree) WalkDown(fun func(n *LayoutTree) bool) {
	if !fun(lt) {
		return
	}
	for _, kl := range lt.Kids {
		kl.WalkDown(fun)
	}
}

// NumNodes returns the total number of nodes in the tree.
func (lt *LayoutTree) NumNodes() int {
	n := 0
	lt.WalkDown(func(*LayoutTree) bool {
		n++
		return Continue
	})
	return n
}

// typeName returns the lowercase name of the concrete type of the component.
func typeName(c Component) string {
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}
