// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene reads and writes scene documents, which describe a
// component tree in TOML or YAML, and builds them into [core.Component]s.
package scene

import (
	"errors"
	"fmt"

	"cogentcore.org/snap/core"
)

// Scene is a scene document: a component tree and the scale
// factor to render it at.
type Scene struct {

	// Scale is the scale factor of the render pass.
	// 0 means the default of 1.
	Scale float32 `toml:"scale,omitempty" yaml:"scale,omitempty"`

	// Root is the root node of the tree.
	Root Node `toml:"root" yaml:"root"`
}

// Kinds of [Node].
const (
	KindPanel  = "panel"
	KindSpacer = "spacer"
)

// Node is one node of the component tree in a scene document.
// The fields that apply depend on the Kind.
type Node struct {

	// Kind is the kind of component: "panel" or "spacer".
	Kind string `toml:"kind" yaml:"kind"`

	// Radius is the corner radius of a panel.
	Radius float32 `toml:"radius,omitempty" yaml:"radius,omitempty"`

	// MinWidth is the minimum width of a panel.
	MinWidth float32 `toml:"min_width,omitempty" yaml:"min_width,omitempty"`

	// Background is the optional hex background color of a panel.
	// A key that is present but empty is kept, and fails when drawn.
	Background *string `toml:"background,omitempty" yaml:"background,omitempty"`

	// Width is the width of a spacer.
	Width float32 `toml:"width,omitempty" yaml:"width,omitempty"`

	// Height is the height of a spacer.
	Height float32 `toml:"height,omitempty" yaml:"height,omitempty"`

	// Children are the children of a panel.
	Children []Node `toml:"children,omitempty" yaml:"children,omitempty"`
}

// ScaleFactor returns the scale factor of the scene,
// which is 1 if [Scene.Scale] is unset.
func (s *Scene) ScaleFactor() float32 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}

// Build builds the component tree of the scene.
func (s *Scene) Build() (core.Component, error) {
	return s.Root.build("root")
}

// Build builds the component tree rooted at the node.
func (n *Node) Build() (core.Component, error) {
	return n.build(n.Kind)
}

func (n *Node) build(path string) (core.Component, error) {
	switch n.Kind {
	case KindPanel:
		p := core.NewPanel(n.Radius)
		p.MinWidth = n.MinWidth
		if n.Background != nil {
			p.SetBackground(*n.Background)
		}
		var errs []error
		for i := range n.Children {
			kid, err := n.Children[i].build(fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				errs = append(errs, err)
				continue
			}
			p.AddChild(kid)
		}
		if len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
		return p, nil
	case KindSpacer:
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("scene: %s: a spacer can not have children", path)
		}
		return core.NewSpacer(n.Width, n.Height), nil
	case "":
		return nil, fmt.Errorf("scene: %s: missing kind", path)
	}
	return nil, fmt.Errorf("scene: %s: unknown kind %q", path, n.Kind)
}

// Panel returns a new panel [Node] with the given radius and children.
func Panel(radius float32, children ...Node) Node {
	return Node{Kind: KindPanel, Radius: radius, Children: children}
}

// Spacer returns a new spacer [Node] of the given size.
func Spacer(width, height float32) Node {
	return Node{Kind: KindSpacer, Width: width, Height: height}
}

// Example returns an example scene, used as a starting point for new
// scene documents.
func Example() *Scene {
	bg := "#282c34ee"
	accent := "#61afef"
	code := Panel(8, Spacer(360, 120))
	code.Background = &accent
	root := Panel(12, code, Spacer(0, 16), Spacer(200, 24))
	root.MinWidth = 440
	root.Background = &bg
	return &Scene{Scale: 2, Root: root}
}
