// Package config handles configuration loading and management for the neo3d
// tools.
package config

import (
	"errors"
	"fmt"
)

// Camera modes.
const (
	CameraOrbit = "orbit"
	CameraFPS   = "fps"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Track   TrackConfig   `yaml:"track" toml:"track"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format    string `yaml:"format" toml:"format"`       // text or yaml
	Precision int    `yaml:"precision" toml:"precision"` // digits after the decimal point
}

// CameraConfig describes the camera used by the view command. Angles are in
// degrees.
type CameraConfig struct {
	Mode   string  `yaml:"mode" toml:"mode"` // orbit or fps
	FOV    float32 `yaml:"fov" toml:"fov"`
	Aspect float32 `yaml:"aspect" toml:"aspect"`
	Near   float32 `yaml:"near" toml:"near"`
	Far    float32 `yaml:"far" toml:"far"`

	Eye    [3]float32 `yaml:"eye" toml:"eye"`
	Target [3]float32 `yaml:"target" toml:"target"`
	Up     [3]float32 `yaml:"up" toml:"up"`

	Pitch    float32 `yaml:"pitch" toml:"pitch"`
	Yaw      float32 `yaml:"yaw" toml:"yaw"`
	Distance float32 `yaml:"distance" toml:"distance"`
}

// TrackConfig holds keyframe track sampling settings.
type TrackConfig struct {
	Samples int  `yaml:"samples" toml:"samples"`
	Loop    bool `yaml:"loop" toml:"loop"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Output: OutputConfig{
			Format:    FormatText,
			Precision: 6,
		},
		Camera: CameraConfig{
			Mode:     CameraOrbit,
			FOV:      60,
			Aspect:   16.0 / 9.0,
			Near:     0.1,
			Far:      1000,
			Eye:      [3]float32{0, 2, 10},
			Target:   [3]float32{0, 0, 0},
			Up:       [3]float32{0, 1, 0},
			Pitch:    30,
			Yaw:      0,
			Distance: 10,
		},
		Track: TrackConfig{
			Samples: 10,
			Loop:    false,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 9 {
		return fmt.Errorf("output.precision: %d out of range [0, 9]", c.Output.Precision)
	}

	cam := c.Camera
	switch cam.Mode {
	case CameraOrbit, CameraFPS:
	default:
		return fmt.Errorf("camera.mode: unknown mode %q", cam.Mode)
	}
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return fmt.Errorf("camera.fov: %v out of range (0, 180)", cam.FOV)
	}
	if cam.Aspect <= 0 {
		return errors.New("camera.aspect: must be positive")
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("camera: need 0 < near < far, got near=%v far=%v", cam.Near, cam.Far)
	}

	if c.Track.Samples < 2 {
		return fmt.Errorf("track.samples: need at least 2, got %d", c.Track.Samples)
	}
	return nil
}
