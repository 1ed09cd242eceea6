// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the snap tool.
package cmd

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"cogentcore.org/snap/base/iox/imagex"
	"cogentcore.org/snap/cmd/snap/config"
	"cogentcore.org/snap/core"
	"cogentcore.org/snap/scene"
	"github.com/mitchellh/go-homedir"
)

// Render renders the scene document [config.Config.Scene] and
// saves the image to [config.Config.Output].
func Render(c *config.Config) error {
	img, err := renderScene(c)
	if img == nil {
		return err
	}
	var out image.Image = img
	if c.MaxWidth > 0 {
		out = imagex.FitWidth(img, c.MaxWidth)
	}
	if serr := imagex.Save(out, c.Output); serr != nil {
		return errors.Join(err, serr)
	}
	slog.Info("saved image", "file", c.Output, "size", out.Bounds().Size())
	return err
}

// renderScene opens, builds and renders the scene document.
// The image is nil if the render pass did not complete.
func renderScene(c *config.Config) (*image.RGBA, error) {
	if c.Scene == "" {
		return nil, errors.New("no scene document specified")
	}
	s, err := scene.Open(c.Scene)
	if err != nil {
		return nil, err
	}
	root, err := s.Build()
	if err != nil {
		return nil, err
	}
	scale := s.ScaleFactor()
	if c.Scale > 0 {
		scale = c.Scale
	}
	r := core.NewRenderer(scale).SetKeepGoing(c.KeepGoing)
	img, err := r.Render(root)
	if err != nil {
		if !c.KeepGoing || img == nil {
			return nil, fmt.Errorf("%s: %w", c.Scene, err)
		}
		return img, fmt.Errorf("%s: %w", c.Scene, err)
	}
	return img, nil
}

// Check validates the scene document [config.Config.Scene]
// without rendering it.
func Check(c *config.Config) error {
	if c.Scene == "" {
		return errors.New("no scene document specified")
	}
	s, err := scene.Open(c.Scene)
	if err != nil {
		return err
	}
	root, err := s.Build()
	if err != nil {
		return err
	}
	if err := core.Check(root); err != nil {
		return fmt.Errorf("%s: %w", c.Scene, err)
	}
	return nil
}

// Init writes an example scene document to [config.Config.Scene].
// It does not overwrite an existing file.
func Init(c *config.Config) error {
	if c.Scene == "" {
		return errors.New("no scene document specified")
	}
	fn, err := homedir.Expand(c.Scene)
	if err != nil {
		return err
	}
	if _, err := os.Stat(fn); err == nil {
		return fmt.Errorf("scene document %q already exists", c.Scene)
	}
	return scene.Save(scene.Example(), c.Scene)
}
