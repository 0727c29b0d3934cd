package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/neo3d/pkg/math"
)

const delta = 1e-4

func keyPose(k Key) math.Mat4 {
	var q math.Quat
	var m math.Mat4
	axis, pos, scale := math.Vec3(k.Axis), math.Vec3(k.Position), math.Vec3(k.Scale)
	q.SetFromAxisAndAngle(&axis, k.Angle*math.Deg2Rad)
	m.SetFromTRSTransfo(&pos, &q, &scale)
	return m
}

func compileYAML(t *testing.T, data string) (*Track, *Compiled) {
	t.Helper()
	tr, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)
	c, err := tr.Compile()
	require.NoError(t, err)
	return tr, c
}

func TestCompile(t *testing.T) {
	_, c := compileYAML(t, doorYAML)
	assert.Equal(t, "door", c.Name)
	assert.Equal(t, 3, c.Len())

	start, end := c.Range()
	assert.Equal(t, float32(0), start)
	assert.Equal(t, float32(3), end)

	for i := 0; i < c.Len(); i++ {
		assert.InDelta(t, 1, math.QuatNorm(c.rotations[i*4:]), 1e-5)
		assert.InDelta(t, 1, math.QuatNorm(c.inner[i*4:]), 1e-5)
	}

	_, err := (&Track{Keys: []Key{{Time: 0}}}).Compile()
	assert.ErrorIs(t, err, ErrTooFewKeys)
}

func TestSampleHitsKeys(t *testing.T) {
	tr, c := compileYAML(t, doorYAML)

	var m math.Mat4
	for _, k := range tr.Keys {
		want := keyPose(k)
		assert.InDeltaSlice(t, want[:], c.Sample(k.Time, &m)[:], delta, "t=%v", k.Time)
	}
}

func TestSampleClampsAndLoops(t *testing.T) {
	tr, c := compileYAML(t, doorYAML)
	first, last := keyPose(tr.Keys[0]), keyPose(tr.Keys[2])

	var m math.Mat4
	assert.InDeltaSlice(t, first[:], c.Sample(-5, &m)[:], delta)
	assert.InDeltaSlice(t, last[:], c.Sample(7, &m)[:], delta)

	var want math.Mat4
	c.Sample(0.5, &want)
	c.Loop = true
	assert.InDeltaSlice(t, want[:], c.Sample(3.5, &m)[:], delta)
	assert.InDeltaSlice(t, want[:], c.Sample(-2.5, &m)[:], delta)
	assert.InDeltaSlice(t, last[:], c.Sample(3, &m)[:], delta)
}

func TestSamplePositionSpline(t *testing.T) {
	_, c := compileYAML(t, `
keys:
  - {time: 0, position: [0, 0, 0]}
  - {time: 1, position: [2, 0, 0]}
  - {time: 2, position: [4, 0, 0]}
  - {time: 3, position: [6, 0, 0]}
`)
	var m math.Mat4
	c.Sample(1.5, &m)
	assert.InDeltaSlice(t, []float32{3, 0, 0}, m[12:15], delta)
	c.Sample(1.25, &m)
	assert.InDeltaSlice(t, []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		2.5, 0, 0, 1,
	}, m[:], delta)
}

func TestSampleShortestRotation(t *testing.T) {
	tr, c := compileYAML(t, `
keys:
  - {time: 0, axis: [0, 1, 0], angle: 0}
  - {time: 1, axis: [0, 1, 0], angle: 350}
`)
	// The second rotation is stored in the hemisphere of the first.
	assert.Greater(t, c.rotations[7], float32(0))

	var m math.Mat4
	var trans, scale math.Vec3
	var got, want math.Quat
	c.Sample(0.5, &m).TRSTransfo(&trans, &got, &scale)
	want.SetFromAxisAndAngle(&math.Vec3J, -5*math.Deg2Rad)
	assert.True(t, got.RotationEquals(&want), "got %v want %v", got, want)

	end := keyPose(tr.Keys[1])
	assert.InDeltaSlice(t, end[:], c.Sample(1, &m)[:], delta)
}

func TestSampleScale(t *testing.T) {
	_, c := compileYAML(t, `
keys:
  - {time: 0, scale: [1, 1, 1]}
  - {time: 4, scale: [3, 5, 1]}
`)
	var m math.Mat4
	var trans, scale math.Vec3
	var q math.Quat
	c.Sample(1, &m).TRSTransfo(&trans, &q, &scale)
	assert.InDeltaSlice(t, []float32{1.5, 2, 1}, scale[:], delta)
	assert.True(t, q.IsIdentity())
}

func TestSampleInto(t *testing.T) {
	tr, c := compileYAML(t, doorYAML)

	assert.Equal(t, []float32{0, 1.5, 3}, c.Times(3))
	assert.Equal(t, []float32{0}, c.Times(1))
	assert.Empty(t, c.Times(0))
	assert.Nil(t, c.Times(-2))

	buf := math.NewMat4Buffer(4)
	require.NoError(t, c.SampleInto(buf, 4))

	first, last := keyPose(tr.Keys[0]), keyPose(tr.Keys[2])
	assert.InDeltaSlice(t, first[:], buf[0:16], delta)
	assert.InDeltaSlice(t, last[:], buf[48:64], delta)

	var m math.Mat4
	c.Sample(1, &m)
	assert.InDeltaSlice(t, m[:], buf[16:32], delta)

	assert.Error(t, c.SampleInto(buf, 5))
	assert.Error(t, c.SampleInto(buf, 0))
}
