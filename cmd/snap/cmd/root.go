// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"

	"cogentcore.org/snap/base/logx"
	"cogentcore.org/snap/cmd/snap/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRootCommand returns the root command of the snap tool,
// with all of its subcommands.
func NewRootCommand() *cobra.Command {
	var vv, v, q bool
	root := &cobra.Command{
		Use:           "snap",
		Short:         "snap renders declarative panel scenes onto images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "show debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only show errors")

	renderCmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render a scene document to an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return Render(c)
		},
	}
	outputFlags(renderCmd.Flags())

	watchCmd := &cobra.Command{
		Use:   "watch <scene>",
		Short: "Render a scene document every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return Watch(cmd.Context(), c, nil)
		},
	}
	outputFlags(watchCmd.Flags())

	checkCmd := &cobra.Command{
		Use:   "check <scene>",
		Short: "Check that a scene document is valid without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd.Flags(), args)
			if err != nil {
				return err
			}
			if err := Check(c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", c.Scene)
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init <scene>",
		Short: "Write an example scene document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return Init(c)
		},
	}

	root.AddCommand(renderCmd, watchCmd, checkCmd, initCmd)
	return root
}

// outputFlags adds the flags that control the output image.
func outputFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "snap.png", "the image file to write (png, jpg, gif, tif or bmp)")
	fs.Float32("scale", 0, "the scale factor (default: the scale of the scene)")
	fs.Bool("keep-going", false, "keep drawing after a component fails and save the partial image")
	fs.Int("max-width", 0, "scale the image down to at most this many pixels wide")
}

// load loads the config with the given flags and scene argument.
func load(fs *pflag.FlagSet, args []string) (*config.Config, error) {
	c, err := config.Load(fs)
	if err != nil {
		return nil, err
	}
	c.Scene = args[0]
	return c, nil
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
