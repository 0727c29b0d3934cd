package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	mat2A = Mat2{1.2, 0.5, -0.5, 2.7}
	mat2B = Mat2{-4.1, 4.4, 2.7, 0.2}
)

func TestMat2Identity(t *testing.T) {
	assert.Equal(t, Mat2{1, 0, 0, 1}, Mat2Identity())
	assert.Equal(t, []float32{1, 0, 0, 1, 1, 0, 0, 1}, NewMat2Buffer(2))

	m := mat2A
	assert.False(t, m.IsIdentity())
	assert.True(t, m.SetIdentity().IsIdentity())

	m = Mat2{1.0000001, -0.0000002, 0.0000001, 0.9999998}
	assert.True(t, m.IsIdentity())
	m[2] = 0.1
	assert.False(t, m.IsIdentity())
}

func TestMat2Setters(t *testing.T) {
	var m Mat2
	m.SetFromSlice([]float32{9, 1, 2, 3, 4, 5})
	assert.Equal(t, Mat2{1, 2, 3, 4}, m)

	i, j := Vec2{1.5, -2}, Vec2{3, 0.5}
	assert.Equal(t, Mat2{1.5, -2, 3, 0.5}, *m.SetFromColumnsVec2(&i, &j))
	assert.Equal(t, Mat2{1.5, -2, 1.5, -2}, *m.SetColumnVec2(1, &i))

	m3 := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, Mat2{1, 2, 4, 5}, *m.SetFromMat3RotScale(&m3))

	var c Mat2
	assert.Equal(t, m, *c.Copy(&m))
}

func TestMat2Rotation(t *testing.T) {
	var m Mat2
	assertSliceNear(t, []float32{0.5, 0.8660254, -0.8660254, 0.5}, m.SetFromRotAngle(1.0471975)[:])

	scale := Vec2{1.2, 2.3}
	assertSliceNear(t, []float32{0.6, 1.0392305, -1.9918584, 1.15}, m.SetFromRSTransfo(1.0471975, &scale)[:])

	var s Vec2
	assert.InDelta(t, 1.0471975, m.RSTransfo(&s), delta)
	assertSliceNear(t, scale[:], s[:])
}

func TestMat2NormalizeRSTransfo(t *testing.T) {
	m := Mat2{0.60001, 1.03924, -1.99185, 1.15002}
	want := []float32{0.60001, 1.03924, -1.991857, 1.1500078}
	var n Mat2
	assertSliceNear(t, want, n.NormalizeRSTransfo(&m)[:])
	assertSliceNear(t, want, m.NormalizeRSTransfoInPlace()[:])

	// The columns of the result are orthogonal.
	assert.InDelta(t, 0, m[0]*m[2]+m[1]*m[3], delta)

	// Normalizing again changes nothing.
	var again Mat2
	assertSliceNear(t, n[:], again.NormalizeRSTransfo(&n)[:])

	// A null column stays null.
	m = Mat2{0.0000001, 0, 2, 3}
	var s Vec2
	m.NormalizeRSTransfoInPlace()
	assert.Equal(t, float32(0), m[0])
	assert.Equal(t, float32(0), m[1])
	m.RSTransfo(&s)
	assert.Equal(t, float32(0), s[0])
}

func TestMat2Equals(t *testing.T) {
	a := mat2A
	b := a
	b[3] += 0.5 * Epsilon
	assert.True(t, a.Equals(&b))
	b[3] += Epsilon
	assert.False(t, a.Equals(&b))
}

func TestMat2Multiply(t *testing.T) {
	var m Mat2
	a, b := mat2A, mat2B
	assertSliceNear(t, []float32{-7.12, 9.83, 3.14, 1.89}, m.Multiply(&a, &b)[:])
	assertSliceNear(t, []float32{-3.57, 5.38, 9.34, -1.66}, m.Multiply(&b, &a)[:])

	m = a
	assertSliceNear(t, []float32{-7.12, 9.83, 3.14, 1.89}, m.MultiplyInPlace(&b)[:])

	id := Mat2Identity()
	assert.Equal(t, a, *m.Multiply(&id, &a))
}

func TestMat2DeterminantAndInvert(t *testing.T) {
	b := mat2B
	assert.InDelta(t, -12.7, b.Determinant(), delta)

	var inv, p Mat2
	assertSliceNear(t, []float32{-0.015748, 0.3464567, 0.2125984, 0.3228346}, inv.Invert(&b)[:])
	assert.True(t, p.Multiply(&b, &inv).IsIdentity())

	b.InvertInPlace()
	assert.Equal(t, inv, b)
}

func TestMat2InvertSingular(t *testing.T) {
	var inv Mat2
	m := Mat2{-4.1, 8.2, 2.7, -5.4}
	assertAllInf(t, inv.Invert(&m)[:], 1)

	m = Mat2{-4.1, 4.4, -0.0000033, 0.0000036}
	assertAllInf(t, inv.Invert(&m)[:], -1)
}

func TestMat2Transpose(t *testing.T) {
	var m Mat2
	a := mat2A
	assert.Equal(t, Mat2{1.2, -0.5, 0.5, 2.7}, *m.Transpose(&a))
	a.TransposeInPlace()
	assert.Equal(t, m, a)
}

func TestMat2TransformVec2(t *testing.T) {
	a := mat2A
	v := Vec2{1.3, -5.4}
	var out Vec2
	assertSliceNear(t, []float32{4.26, -13.93}, a.TransformVec2(&out, &v)[:])
	assertSliceNear(t, []float32{4.26, -13.93}, a.TransformVec2InPlace(&v)[:])
}

func TestMat2BufferOffsets(t *testing.T) {
	buf := NewMat2Buffer(3)
	copy(buf[4:8], mat2A[:])
	copy(buf[8:12], mat2B[:])
	Mat2Multiply(buf[0:], buf[4:], buf[8:])
	assertSliceNear(t, []float32{-7.12, 9.83, 3.14, 1.89}, buf[0:4])
	Mat2Invert(buf[8:], buf[8:])
	assertSliceNear(t, []float32{-0.015748, 0.3464567, 0.2125984, 0.3228346}, buf[8:12])
}
