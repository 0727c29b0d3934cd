// Package uniform uploads vectors, quaternions and matrices to shader
// uniforms. Values are handed over as raw column-major float32 storage.
package uniform

import (
	"errors"
	"fmt"

	"github.com/Faultbox/neo3d/pkg/math"
)

// ErrRaggedBuffer is returned when a matrix array buffer does not hold a
// whole number of matrices.
var ErrRaggedBuffer = errors.New("buffer length is not a multiple of the matrix size")

// Uploader receives uniform values. count is the number of array elements
// starting at value. Matrices are column-major and never transposed.
type Uploader interface {
	UniformMatrix4fv(location, count int32, value *float32)
	UniformMatrix3fv(location, count int32, value *float32)
	UniformMatrix2fv(location, count int32, value *float32)
	Uniform4fv(location, count int32, value *float32)
	Uniform3fv(location, count int32, value *float32)
	Uniform2fv(location, count int32, value *float32)
}

// Inactive uniforms have a negative location; setting them is a no-op.

func SetMat4(u Uploader, location int32, m *math.Mat4) {
	if location >= 0 {
		u.UniformMatrix4fv(location, 1, m.Ptr())
	}
}

func SetMat3(u Uploader, location int32, m *math.Mat3) {
	if location >= 0 {
		u.UniformMatrix3fv(location, 1, m.Ptr())
	}
}

func SetMat2(u Uploader, location int32, m *math.Mat2) {
	if location >= 0 {
		u.UniformMatrix2fv(location, 1, m.Ptr())
	}
}

func SetVec4(u Uploader, location int32, v *math.Vec4) {
	if location >= 0 {
		u.Uniform4fv(location, 1, &v[0])
	}
}

func SetVec3(u Uploader, location int32, v *math.Vec3) {
	if location >= 0 {
		u.Uniform3fv(location, 1, &v[0])
	}
}

func SetVec2(u Uploader, location int32, v *math.Vec2) {
	if location >= 0 {
		u.Uniform2fv(location, 1, &v[0])
	}
}

// SetQuat uploads q as a vec4 (x, y, z, w).
func SetQuat(u Uploader, location int32, q *math.Quat) {
	if location >= 0 {
		u.Uniform4fv(location, 1, &q[0])
	}
}

// SetMat4Array uploads a buffer of consecutive Mat4 values, such as the
// output of a batched transform, as a mat4 array uniform.
func SetMat4Array(u Uploader, location int32, buf []float32) error {
	n, err := count(buf, 16)
	if err != nil || n == 0 || location < 0 {
		return err
	}
	u.UniformMatrix4fv(location, n, &buf[0])
	return nil
}

// SetVec3Array uploads a buffer of consecutive Vec3 values as a vec3 array.
func SetVec3Array(u Uploader, location int32, buf []float32) error {
	n, err := count(buf, 3)
	if err != nil || n == 0 || location < 0 {
		return err
	}
	u.Uniform3fv(location, n, &buf[0])
	return nil
}

func count(buf []float32, size int) (int32, error) {
	if len(buf)%size != 0 {
		return 0, fmt.Errorf("%d floats for elements of %d: %w", len(buf), size, ErrRaggedBuffer)
	}
	return int32(len(buf) / size), nil
}
