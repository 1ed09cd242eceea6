// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported scene document formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

func (f Formats) String() string {
	switch f {
	case TOML:
		return "TOML"
	case YAML:
		return "YAML"
	}
	return fmt.Sprintf("Formats(%d)", int32(f))
}

// ExtToFormat returns the format for the given filename extension,
// which can start with a . or not.
func ExtToFormat(ext string) (Formats, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("scene.ExtToFormat: extension %q not recognized", ext)
}

// Open reads the scene document at the given path, with the format
// inferred from the extension. A leading ~ is expanded to the home directory.
func Open(path string) (*Scene, error) {
	fn, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := ExtToFormat(filepath.Ext(fn))
	if err != nil {
		return nil, err
	}
	file, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	s, err := Read(bufio.NewReader(file), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read reads a scene document in the given format.
// Unknown keys are an error.
func Read(r io.Reader, f Formats) (*Scene, error) {
	s := &Scene{}
	var err error
	switch f {
	case TOML:
		d := toml.NewDecoder(r)
		d.DisallowUnknownFields()
		err = d.Decode(s)
	case YAML:
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		err = d.Decode(s)
		if err == io.EOF {
			err = nil
		}
	default:
		err = fmt.Errorf("scene.Read: format %v not valid", f)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the scene to the given path,
// with the format inferred from the extension.
func Save(s *Scene, path string) error {
	fn, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	f, err := ExtToFormat(filepath.Ext(fn))
	if err != nil {
		return err
	}
	file, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(s, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the scene in the given format.
func Write(s *Scene, w io.Writer, f Formats) error {
	switch f {
	case TOML:
		e := toml.NewEncoder(w)
		e.SetIndentTables(true)
		return e.Encode(s)
	case YAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(s); err != nil {
			return err
		}
		return e.Close()
	}
	return fmt.Errorf("scene.Write: format %v not valid", f)
}
