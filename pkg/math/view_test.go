package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFrustumProj(t *testing.T) {
	m := mat4A
	want := []float32{
		0.1, 0, 0, 0,
		0, 0.1, 0, 0,
		0, 0, -1.020202, -1,
		0, 0, -0.2020202, 0,
	}
	assertSliceNear(t, want, m.BuildFrustumProj(-1, 1, -1, 1, 0.1, 10)[:])
}

func TestBuildPerspectiveProj(t *testing.T) {
	m := mat4A
	want := []float32{
		1, 0, 0, 0,
		0, 1.7777778, 0, 0,
		0, 0, -1.020202, -1,
		0, 0, -0.2020202, 0,
	}
	assertSliceNear(t, want, m.BuildPerspectiveProj(HalfPi, 16.0/9.0, 0.1, 10)[:])

	// Points on the near and far planes land on the clip depth bounds.
	var near, far Vec4
	m.TransformVec4(&near, &Vec4{0, 0, -0.1, 1})
	m.TransformVec4(&far, &Vec4{0, 0, -10, 1})
	assert.InDelta(t, -1, near[2]/near[3], delta)
	assert.InDelta(t, 1, far[2]/far[3], 1e-4)
}

func TestBuildPerspectiveProjHorizontalFOV(t *testing.T) {
	var m Mat4
	m.BuildPerspectiveProj(HalfPi, 2, 1, 100)

	// With a 90 degree fov the right edge at depth 5 is x = 5, and the top
	// edge is y = 5 / aspect.
	var right, top Vec4
	m.TransformVec4(&right, &Vec4{5, 0, -5, 1})
	m.TransformVec4(&top, &Vec4{0, 2.5, -5, 1})
	assert.InDelta(t, 1, right[0]/right[3], delta)
	assert.InDelta(t, 1, top[1]/top[3], delta)
}

func TestBuildOrthoProj(t *testing.T) {
	m := mat4A
	want := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -0.2020202, 0,
		0, 0, -1.020202, 1,
	}
	assertSliceNear(t, want, m.BuildOrthoProj(-1, 1, -1, 1, 0.1, 10)[:])

	var p Vec3
	m.BuildOrthoProj(0, 800, 600, 0, -1, 1)
	assertSliceNear(t, []float32{-1, 1, 0}, m.TransformVec3Pos(&p, &Vec3{0, 0, 0})[:])
	assertSliceNear(t, []float32{1, -1, 0}, m.TransformVec3Pos(&p, &Vec3{800, 600, 0})[:])
}

func TestBuildLookAtView(t *testing.T) {
	m := mat4A
	eye := Vec3{5, -5, 8}
	target := Vec3{5.0000001, -4.9999998, 8.0000004}
	assert.Equal(t, Mat4Identity(), *m.BuildLookAtView(&eye, &target, &Vec3K))

	target = Vec3{3, 4, 0}
	want := []float32{
		0.9761871, -0.1421731, 0.1638464, 0,
		0.2169305, 0.6397789, -0.7373087, 0,
		0, 0.7552946, 0.6553855, 0,
		-3.7962832, -2.1325965, -9.748859, 1,
	}
	assertSliceNear(t, want, m.BuildLookAtView(&eye, &target, &Vec3K)[:])

	// The eye goes to the origin and the target lies on -Z.
	var p Vec3
	assertSliceNear(t, []float32{0, 0, 0}, m.TransformVec3Pos(&p, &eye)[:])
	m.TransformVec3Pos(&p, &target)
	assert.InDelta(t, 0, p[0], delta)
	assert.InDelta(t, 0, p[1], delta)
	assert.Less(t, p[2], float32(0))
}

func TestBuildFPSView(t *testing.T) {
	var m Mat4
	eye := Vec3{1.4, -4.3, 8.5}

	m.BuildFPSView(&eye, 0, 0)
	assert.Equal(t, Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, -1.4, 4.3, -8.5, 1}, m)

	const pitch, yaw = 0.7853982, 1.0471975
	m.BuildFPSView(&eye, pitch, yaw)

	var p Vec3
	assertSliceNear(t, []float32{0, 0, 0}, m.TransformVec3Pos(&p, &eye)[:])

	var rot Mat3
	rot.SetFromMat4RotScale(&m)
	assert.InDelta(t, 1, rot.Determinant(), delta)
	var rt, id Mat3
	rt.Transpose(&rot)
	assert.True(t, id.Multiply(&rot, &rt).IsIdentity())

	// Looking along the yawed and pitched forward direction matches lookAt
	// with a +Y up vector.
	cp := Cos(pitch)
	forward := Vec3{-Sin(yaw) * cp, Sin(pitch), -Cos(yaw) * cp}
	var target Vec3
	target.Add(&eye, &forward)
	var look Mat4
	look.BuildLookAtView(&eye, &target, &Vec3J)
	assertSliceNear(t, look[:], m[:])

	m.TransformVec3Pos(&p, &target)
	assertSliceNear(t, []float32{0, 0, -1}, p[:])
}

func TestBuildViewBuffers(t *testing.T) {
	buf := NewMat4Buffer(2)
	Mat4BuildPerspectiveProj(buf[16:], HalfPi, 1, 1, 100)
	assert.True(t, Mat4IsIdentity(buf[0:]))
	assert.InDelta(t, 1, buf[16], delta)
	assert.Equal(t, float32(-1), buf[27])
	assert.Equal(t, float32(0), buf[31])
}
