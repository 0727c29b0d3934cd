package track

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doorYAML = `
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
    scale: [2, 2, 2]
  - time: 3
    position: [2, 4, 0]
    axis: [0, 1, 0]
    angle: 180
`

const liftTOML = `
name = "lift"

[[keys]]
time = 0.0
position = [0.0, 0.0, 0.0]
axis = [1.0, 0.0, 0.0]
angle = 0.0

[[keys]]
time = 2.0
position = [0.0, 10.0, 0.0]
axis = [1.0, 0.0, 0.0]
angle = 45.0
scale = [1.0, 3.0, 1.0]
`

func TestParseYAML(t *testing.T) {
	tr, err := Parse([]byte(doorYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "door", tr.Name)
	require.Len(t, tr.Keys, 3)
	assert.Equal(t, Key{
		Time:     1,
		Position: [3]float32{2, 0, 0},
		Axis:     [3]float32{0, 1, 0},
		Angle:    90,
		Scale:    [3]float32{2, 2, 2},
	}, tr.Keys[1])

	// Keys without a scale get a unit scale.
	assert.Equal(t, [3]float32{1, 1, 1}, tr.Keys[0].Scale)
	assert.Equal(t, [3]float32{1, 1, 1}, tr.Keys[2].Scale)
}

func TestParseTOML(t *testing.T) {
	tr, err := Parse([]byte(liftTOML), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "lift", tr.Name)
	require.Len(t, tr.Keys, 2)
	assert.Equal(t, float32(2), tr.Keys[1].Time)
	assert.Equal(t, [3]float32{0, 10, 0}, tr.Keys[1].Position)
	assert.Equal(t, [3]float32{1, 3, 1}, tr.Keys[1].Scale)
	assert.Equal(t, [3]float32{1, 1, 1}, tr.Keys[0].Scale)
}

func TestParseZeroScaleIsUnit(t *testing.T) {
	const src = `
name: flat
keys:
  - time: 0
    scale: [0, 0, 0]
  - time: 1
    scale: [0, 2, 0]
`
	tr, err := Parse([]byte(src), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, [3]float32{1, 1, 1}, tr.Keys[0].Scale)
	// Only the all-zero scale is replaced.
	assert.Equal(t, [3]float32{0, 2, 0}, tr.Keys[1].Scale)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		target error
	}{
		{
			name:   "single key",
			data:   "keys:\n  - time: 0\n",
			format: FormatYAML,
			target: ErrTooFewKeys,
		},
		{
			name:   "no keys",
			data:   `name = "empty"`,
			format: FormatTOML,
			target: ErrTooFewKeys,
		},
		{
			name:   "unsorted",
			data:   "keys:\n  - time: 1\n  - time: 2\n  - time: 2\n",
			format: FormatYAML,
			target: ErrUnsortedKeys,
		},
		{
			name:   "unknown format",
			data:   "{}",
			format: Format("json"),
			target: ErrUnknownFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	_, err := Parse([]byte("keys:\n  - time: 0\n    rotation: 4\n"), FormatYAML)
	assert.Error(t, err, "unknown yaml field")
	_, err = Parse([]byte("[[keys]]\ntime = \"soon\"\n"), FormatTOML)
	assert.Error(t, err, "bad toml type")
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml":      FormatYAML,
		"dir/b.YML":   FormatYAML,
		"c.toml":      FormatTOML,
		"/abs/d.Toml": FormatTOML,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("track.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "door.yaml")
	tomlPath := filepath.Join(dir, "lift.toml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(doorYAML), 0644))
	require.NoError(t, os.WriteFile(tomlPath, []byte(liftTOML), 0644))

	tr, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, tr.Keys, 3)

	tr, err = Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "lift", tr.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "door.txt"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("keys: []\n"), 0644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrTooFewKeys)
	assert.Contains(t, err.Error(), bad)
}
