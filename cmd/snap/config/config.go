// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration information for the snap tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the configuration information for the snap tool.
// Values are taken, in increasing order of priority, from the defaults,
// the config file, SNAP_* environment variables, and command line flags.
type Config struct {

	// Scene is the scene document to render.
	Scene string `mapstructure:"scene"`

	// Output is the image file to write. The format is inferred
	// from the extension: png, jpg, gif, tif or bmp.
	Output string `mapstructure:"output"`

	// Scale is the scale factor of the render pass.
	// 0 uses the scale of the scene document.
	Scale float32 `mapstructure:"scale"`

	// KeepGoing is whether to keep drawing after a component fails,
	// saving the partial image and reporting all errors.
	KeepGoing bool `mapstructure:"keep-going"`

	// MaxWidth is the maximum width of the output image in pixels.
	// Wider images are scaled down. 0 means no limit.
	MaxWidth int `mapstructure:"max-width"`
}

// Dir returns the default directory of the config file, ~/.config/snap.
func Dir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "snap"), nil
}

// Load loads the configuration, with the given flags having the
// highest priority. The config file is read from SNAP_CONFIG if it is set,
// and otherwise from config.toml in [Dir] if it exists.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("scene", "")
	v.SetDefault("output", "snap.png")
	v.SetDefault("scale", 0)
	v.SetDefault("keep-going", false)
	v.SetDefault("max-width", 0)

	v.SetConfigType("toml")
	if fn := os.Getenv("SNAP_CONFIG"); fn != "" {
		fn, err := homedir.Expand(fn)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(fn)
	} else {
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SNAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
