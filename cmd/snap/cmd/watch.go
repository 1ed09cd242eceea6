// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/snap/base/errors"
	"cogentcore.org/snap/cmd/snap/config"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch renders the scene document once, and then again every time
// it changes, until the context is done. Render errors are logged and
// do not stop watching. If rendered is non-nil, it is called with the
// result of every render.
func Watch(ctx context.Context, c *config.Config, rendered func(err error)) error {
	fn, err := homedir.Expand(c.Scene)
	if err != nil {
		return err
	}
	fn = filepath.Clean(fn)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { errors.Log(watcher.Close()) }()

	// editors often replace the file, so we watch the directory
	if err := watcher.Add(filepath.Dir(fn)); err != nil {
		return err
	}

	render := func() {
		err := errors.Log(Render(c))
		if rendered != nil {
			rendered(err)
		}
	}
	render()
	slog.Info("watching scene document", "file", fn)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fn {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				slog.Debug("scene document changed", "op", event.Op)
				render()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
