package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/neo3d/internal/logger"
)

const delta = 1e-4

// isolate keeps config lookup away from the user's files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Cleanup(logger.Nop)
	return dir
}

func TestDecomposeMat4(t *testing.T) {
	m := []float32{
		2, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		1, 2, 3, 1,
	}
	r := decompose(m, false)

	assert.InDelta(t, 2, r.get("determinant"), delta)
	assert.InDeltaSlice(t, []float32{1, 2, 3}, r.get("translation"), delta)
	assert.InDeltaSlice(t, []float32{2, 1, 1}, r.get("scale"), delta)
	assert.InDeltaSlice(t, []float32{0, 0, 0, 1}, r.get("rotation"), delta)
	assert.InDelta(t, 0, r.get("angle"), delta)
}

func TestDecomposeMat3As2D(t *testing.T) {
	m := []float32{0, 1, 0, -1, 0, 0, 5, 6, 1}
	r := decompose(m, true)

	assert.InDeltaSlice(t, []float32{5, 6}, r.get("translation"), delta)
	assert.InDeltaSlice(t, []float32{1, 1}, r.get("scale"), delta)
	assert.InDelta(t, 90, r.get("angle"), delta)
	assert.Nil(t, r.get("rotation"))
}

func TestDecomposeMat3(t *testing.T) {
	m := []float32{0, 3, 0, -3, 0, 0, 0, 0, 3}
	r := decompose(m, false)

	assert.InDelta(t, 27, r.get("determinant"), delta)
	assert.InDeltaSlice(t, []float32{3, 3, 3}, r.get("scale"), delta)
	assert.InDeltaSlice(t, []float32{0, 0, 1}, r.get("axis"), delta)
	assert.InDelta(t, 90, r.get("angle"), delta)
}

func TestDecomposeMat2(t *testing.T) {
	r := decompose([]float32{0, 2, -2, 0}, false)

	assert.InDelta(t, 4, r.get("determinant"), delta)
	assert.InDeltaSlice(t, []float32{2, 2}, r.get("scale"), delta)
	assert.InDelta(t, 90, r.get("angle"), delta)
}

func TestInvert(t *testing.T) {
	r := invert([]float32{2, 0, 0, 4})
	assert.Equal(t, false, r.get("singular"))
	assert.InDeltaSlice(t, []float32{0.5, 0, 0, 0.25}, r.get("inverse").(matrix).values, delta)

	r = invert([]float32{1, 2, 2, 4})
	assert.Equal(t, true, r.get("singular"))
	for _, v := range r.get("inverse").(matrix).values {
		assert.True(t, math32.IsInf(v, 1), "want +Inf, got %v", v)
	}
}

func TestCmdInvertYAML(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	err := cmdInvert([]string{"-m", "2 0 0 4", "-format", "yaml", "-precision", "2"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "inverse: [0.50, 0.00, 0.00, 0.25]")
	assert.Contains(t, out.String(), "singular: false")
}

func TestCmdDecomposeBadSize(t *testing.T) {
	isolate(t)

	err := cmdDecompose([]string{"-m", "1 2 3"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errBadMatrixSize)
}

func TestCmdHelp(t *testing.T) {
	isolate(t)

	c := newCommand("invert")
	c.fs.SetOutput(&bytes.Buffer{})
	_, err := c.parse([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestCmdView(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	err := cmdView([]string{"-width", "800", "-height", "600", "-uniforms"}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "mode: orbit")
	assert.Contains(t, text, "view_projection:")
	assert.Contains(t, text, "uniforms[2]:")
	assert.Contains(t, text, "type: mat4")
}

func TestCmdViewFPSFromConfig(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("camera:\n  mode: fps\n  eye: [0, 1, 5]\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, cmdView([]string{"-config", cfgPath, "-precision", "1"}, &out))
	assert.Contains(t, out.String(), "mode: fps")
	assert.Contains(t, out.String(), "eye: (0.0, 1.0, 5.0)")
}

const doorTrack = `
name: door
keys:
  - time: 0
    position: [0, 0, 0]
    axis: [0, 1, 0]
    angle: 0
  - time: 1
    position: [2, 0, 0]
    axis: [0, 1, 0]
    angle: 90
  - time: 3
    position: [2, 4, 0]
    axis: [0, 1, 0]
    angle: 180
`

func TestCmdTrack(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "door.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doorTrack), 0644))

	var out bytes.Buffer
	err := cmdTrack([]string{"-samples", "4", "-uniforms", "-precision", "1", path}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "name: door")
	assert.Contains(t, text, "keys: 3")
	assert.Contains(t, text, "range: (0.0, 3.0)")
	assert.Contains(t, text, "samples[3]:")
	assert.NotContains(t, text, "samples[4]:")
	assert.Contains(t, text, "translation: (2.0, 0.0, 0.0)")
	assert.Contains(t, text, "count: 4")
}

func TestCmdTrackFlagsAfterPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "door.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doorTrack), 0644))

	var out bytes.Buffer
	err := cmdTrack([]string{path, "-samples", "4", "-uniforms"}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "samples[3]:")
	assert.NotContains(t, text, "samples[4]:")
	assert.Contains(t, text, "count: 4")
}

func TestCmdTrackSampleCount(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "door.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doorTrack), 0644))

	for _, n := range []string{"-1", "-16"} {
		assert.NotPanics(t, func() {
			err := cmdTrack([]string{"-samples", n, path}, &bytes.Buffer{})
			assert.ErrorContains(t, err, "need at least 1")
		}, n)
	}

	// 0 falls back to the configured count.
	var out bytes.Buffer
	require.NoError(t, cmdTrack([]string{"-samples", "0", path}, &out))
	assert.Contains(t, out.String(), "samples[9]:")
	assert.NotContains(t, out.String(), "samples[10]:")
}

func TestCommandParseInterleaved(t *testing.T) {
	isolate(t)

	c := newCommand("test")
	n := c.fs.Int("n", 0, "")
	_, err := c.parse([]string{"a", "-n", "3", "b", "--", "-c"})
	require.NoError(t, err)

	assert.Equal(t, 3, *n)
	assert.Equal(t, []string{"a", "b", "-c"}, c.args)
}

func TestCmdTrackMissingFile(t *testing.T) {
	isolate(t)

	assert.Error(t, cmdTrack(nil, &bytes.Buffer{}))
	assert.Error(t, cmdTrack([]string{"nope.yaml"}, &bytes.Buffer{}))
}

func TestCmdConfig(t *testing.T) {
	dir := isolate(t)

	var out bytes.Buffer
	require.NoError(t, cmdConfig([]string{"-toml"}, &out))
	assert.Contains(t, out.String(), "[camera]")

	saved := filepath.Join(dir, "out", "neo3d.yaml")
	require.NoError(t, cmdConfig([]string{"-save", saved, "-precision", "3"}, &bytes.Buffer{}))
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Contains(t, string(data), "precision: 3")
}

func TestCmdViewPick(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "scene.yaml")
	cfg := "camera:\n  mode: fps\n  eye: [0, 5, 0]\n  pitch: -45\n  near: 1\n  far: 100\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	var out bytes.Buffer
	err := cmdView([]string{"-config", cfgPath, "-width", "800", "-height", "600", "-pick", "400,300", "-precision", "2"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ray:")
	assert.Contains(t, out.String(), "ground: (0.00, 0.00, -5.00)")

	err = cmdView([]string{"-pick", "1,2"}, &bytes.Buffer{})
	assert.Error(t, err)
}
