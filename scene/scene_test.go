// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/snap/core"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlScene = `
scale = 2.0

[root]
kind = "panel"
radius = 12
min_width = 400
background = "#282c34ee"

  [[root.children]]
  kind = "spacer"
  width = 300
  height = 80

  [[root.children]]
  kind = "panel"
  radius = 4
  background = ""

    [[root.children.children]]
    kind = "spacer"
    width = 10
    height = 10
`

const yamlScene = `
scale: 2
root:
  kind: panel
  radius: 12
  min_width: 400
  background: "#282c34ee"
  children:
    - kind: spacer
      width: 300
      height: 80
    - kind: panel
      radius: 4
      background: ""
      children:
        - kind: spacer
          width: 10
          height: 10
`

func checkScene(t *testing.T, s *Scene) {
	t.Helper()
	assert.Equal(t, float32(2), s.ScaleFactor())
	root := s.Root
	assert.Equal(t, KindPanel, root.Kind)
	assert.Equal(t, float32(12), root.Radius)
	assert.Equal(t, float32(400), root.MinWidth)
	require.NotNil(t, root.Background)
	assert.Equal(t, "#282c34ee", *root.Background)
	require.Len(t, root.Children, 2)
	assert.Equal(t, Spacer(300, 80), root.Children[0])
	inner := root.Children[1]
	require.NotNil(t, inner.Background)
	assert.Equal(t, "", *inner.Background)
	assert.Equal(t, []Node{Spacer(10, 10)}, inner.Children)
}

func TestReadTOML(t *testing.T) {
	s, err := Read(strings.NewReader(tomlScene), TOML)
	require.NoError(t, err)
	checkScene(t, s)
}

func TestReadYAML(t *testing.T) {
	s, err := Read(strings.NewReader(yamlScene), YAML)
	require.NoError(t, err)
	checkScene(t, s)
}

func TestReadUnknownKey(t *testing.T) {
	_, err := Read(strings.NewReader("[root]\nkind = \"panel\"\ncolor = \"#fff\"\n"), TOML)
	assert.Error(t, err)
	_, err = Read(strings.NewReader("root:\n  kind: panel\n  color: \"#fff\"\n"), YAML)
	assert.Error(t, err)
	_, err = Read(strings.NewReader(""), Formats(7))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	s, err := Read(strings.NewReader(tomlScene), TOML)
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)
	p, ok := c.(*core.Panel)
	require.True(t, ok)
	assert.Equal(t, float32(12), p.Radius)
	assert.Equal(t, float32(400), p.MinWidth)
	require.Len(t, p.Children(), 2)
	assert.Equal(t, core.NewSpacer(300, 80), p.Children()[0])

	// the empty background is kept and fails validation
	var ie *core.InvalidHexColorError
	require.ErrorAs(t, core.Check(c), &ie)
	assert.Equal(t, "", ie.Color)
}

func TestBuildAbsentBackground(t *testing.T) {
	n := Panel(0)
	c, err := n.Build()
	require.NoError(t, err)
	assert.Nil(t, c.(*core.Panel).Background)
	assert.NoError(t, core.Check(c))
}

func TestBuildErrors(t *testing.T) {
	root := Panel(0, Spacer(1, 1), Node{Kind: "circle"}, Node{})
	_, err := (&Scene{Root: root}).Build()
	assert.EqualError(t, err, `scene: root.children[1]: unknown kind "circle"`+"\n"+`scene: root.children[2]: missing kind`)

	sp := Spacer(1, 1)
	sp.Children = []Node{Spacer(2, 2)}
	_, err = sp.Build()
	assert.EqualError(t, err, "scene: spacer: a spacer can not have children")
}

func TestWriteRoundTrip(t *testing.T) {
	for _, f := range []Formats{TOML, YAML} {
		t.Run(f.String(), func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, Write(Example(), &b, f))
			s, err := Read(&b, f)
			require.NoError(t, err)
			assert.Equal(t, Example(), s)
		})
	}
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"scene.toml", "scene.yaml", "scene.YML"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, Save(Example(), fn))
		s, err := Open(fn)
		require.NoError(t, err, name)
		assert.Equal(t, Example(), s, name)
	}
	assert.Error(t, Save(Example(), filepath.Join(dir, "scene.json")))
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("root = ["), 0666))
	_, err = Open(fn)
	assert.ErrorContains(t, err, fn)
}

func TestOpenHome(t *testing.T) {
	homedir.DisableCache = true
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, Save(Example(), filepath.Join(home, "example.toml")))
	s, err := Open("~/example.toml")
	require.NoError(t, err)
	assert.Equal(t, Example(), s)
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".toml")
	assert.NoError(t, err)
	assert.Equal(t, TOML, f)
	f, err = ExtToFormat("yml")
	assert.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = ExtToFormat(".json")
	assert.Error(t, err)
	assert.Equal(t, "Formats(3)", Formats(3).String())
}

func TestExampleRenders(t *testing.T) {
	s := Example()
	c, err := s.Build()
	require.NoError(t, err)
	img, err := core.NewRenderer(s.ScaleFactor()).Render(c)
	require.NoError(t, err)
	assert.Equal(t, 2*440, img.Bounds().Dx())
	assert.Equal(t, 2*(20+160+16+24+20), img.Bounds().Dy())
}
