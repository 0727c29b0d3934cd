// Package glbackend implements uniform.Uploader on top of an OpenGL 4.1 core
// context. A context must be current on the calling goroutine.
//
// The tools in this module record uploads with uniform.Recorder and never
// open a context, so nothing here imports this package. It builds with cgo
// and its tests run only with the gl build tag.
package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/neo3d/internal/engine/uniform"
)

// Uploader sends uniforms to the currently bound program.
type Uploader struct{}

var _ uniform.Uploader = Uploader{}

// Init loads the GL function pointers. Call it once after creating the
// context.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing gl: %w", err)
	}
	return nil
}

// Location returns the uniform location for the given name, or -1 if the
// uniform is not found or inactive.
func Location(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// MustLocation returns the uniform location for the given name.
// Panics if the uniform is not found (useful for required uniforms).
func MustLocation(program uint32, name string) int32 {
	loc := Location(program, name)
	if loc < 0 {
		panic(fmt.Sprintf("uniform %q not found in program %d", name, program))
	}
	return loc
}

func (Uploader) UniformMatrix4fv(location, count int32, value *float32) {
	gl.UniformMatrix4fv(location, count, false, value)
}

func (Uploader) UniformMatrix3fv(location, count int32, value *float32) {
	gl.UniformMatrix3fv(location, count, false, value)
}

func (Uploader) UniformMatrix2fv(location, count int32, value *float32) {
	gl.UniformMatrix2fv(location, count, false, value)
}

func (Uploader) Uniform4fv(location, count int32, value *float32) {
	gl.Uniform4fv(location, count, value)
}

func (Uploader) Uniform3fv(location, count int32, value *float32) {
	gl.Uniform3fv(location, count, value)
}

func (Uploader) Uniform2fv(location, count int32, value *float32) {
	gl.Uniform2fv(location, count, value)
}
