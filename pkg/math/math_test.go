package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	assert.InDelta(t, 1e-6, Epsilon, 1e-12)
	assert.InDelta(t, 1e-12, Epsilon2, 1e-18)
	assert.InDelta(t, 3.1415927, Pi, 1e-7)
	assert.InDelta(t, 1.5707964, HalfPi, 1e-7)
	assert.InDelta(t, 6.2831855, TwoPi, 1e-7)
	assert.InDelta(t, 180, Pi*Rad2Deg, 1e-4)
	assert.InDelta(t, 1, 180*Deg2Rad/Pi, 1e-7)
}

func TestSignedInf(t *testing.T) {
	assert.True(t, IsInf(signedInf(0), 1))
	assert.True(t, IsInf(signedInf(2.5e-7), 1))
	assert.True(t, IsInf(signedInf(-2.5e-7), -1))
}

func TestSameStorage(t *testing.T) {
	buf := NewVec3Buffer(2)
	assert.True(t, sameStorage(buf, buf[:3]))
	assert.False(t, sameStorage(buf, buf[3:]))
	assert.False(t, sameStorage(nil, buf))
}

func TestScalarWrappers(t *testing.T) {
	assert.InDelta(t, 0.5, Cos(Pi/3), delta)
	assert.InDelta(t, 0.8660254, Sin(Pi/3), delta)
	assert.InDelta(t, 1, Tan(Pi/4), delta)
	assert.InDelta(t, HalfPi, Acos(0), delta)
	assert.InDelta(t, Pi/4, Atan2(1, 1), delta)
	assert.InDelta(t, 8, Pow(2, 3), delta)
	assert.Equal(t, float32(-2), Floor(-1.5))
	assert.InDelta(t, 1, Log(Exp(1)), delta)
	assert.Equal(t, float32(3), Sqrt(9))
	assert.Equal(t, float32(2.5), Abs(-2.5))
}
