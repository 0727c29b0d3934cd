// Package track loads keyframe tracks and samples them into world matrices.
//
// A track is a list of keys, each holding a time, a position, a rotation
// given as axis and angle in degrees, and a per-axis scale. Positions are
// interpolated with Catmull-Rom splines, scales linearly and rotations with
// squad.
package track

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/neo3d/internal/logger"
)

var (
	ErrTooFewKeys    = errors.New("track needs at least two keys")
	ErrUnsortedKeys  = errors.New("key times must be strictly increasing")
	ErrUnknownFormat = errors.New("unknown track format")
)

// Format is the encoding of a track file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Key is one keyframe. An omitted Scale defaults to (1, 1, 1); an explicit
// (0, 0, 0) collapses the pose and is read the same way as an omitted one.
type Key struct {
	Time     float32    `yaml:"time" toml:"time"`
	Position [3]float32 `yaml:"position" toml:"position"`
	Axis     [3]float32 `yaml:"axis" toml:"axis"`
	Angle    float32    `yaml:"angle" toml:"angle"` // degrees
	Scale    [3]float32 `yaml:"scale" toml:"scale"`
}

// Track is a named list of keys sorted by time.
type Track struct {
	Name string `yaml:"name" toml:"name"`
	Keys []Key  `yaml:"keys" toml:"keys"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads and validates a track file.
func Load(path string) (*Track, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading track: %w", err)
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("track loaded",
		zap.String("path", path),
		zap.String("name", t.Name),
		zap.Int("keys", len(t.Keys)))
	return t, nil
}

// Parse decodes and validates a track.
func Parse(data []byte, format Format) (*Track, error) {
	var t Track
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&t); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&t); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	for i := range t.Keys {
		if t.Keys[i].Scale == ([3]float32{}) {
			t.Keys[i].Scale = [3]float32{1, 1, 1}
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the key count and ordering.
func (t *Track) Validate() error {
	if len(t.Keys) < 2 {
		return fmt.Errorf("%d keys: %w", len(t.Keys), ErrTooFewKeys)
	}
	for i := 1; i < len(t.Keys); i++ {
		if t.Keys[i].Time <= t.Keys[i-1].Time {
			return fmt.Errorf("key %d at %v after %v: %w",
				i, t.Keys[i].Time, t.Keys[i-1].Time, ErrUnsortedKeys)
		}
	}
	return nil
}
