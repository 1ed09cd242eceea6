// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command snap renders declarative panel scenes onto images.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/snap/base/logx"
	"cogentcore.org/snap/cmd/snap/cmd"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
