package uniform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/neo3d/pkg/math"
)

func TestSetSingleValues(t *testing.T) {
	var r Recorder
	m4 := math.Mat4Identity()
	m3 := math.Mat3Identity()
	m2 := math.Mat2{1, 2, 3, 4}
	v4 := math.Vec4{1, 2, 3, 4}
	v3 := math.Vec3{1, 2, 3}
	v2 := math.Vec2{1, 2}
	q := math.QuatIdentity()

	SetMat4(&r, 0, &m4)
	SetMat3(&r, 1, &m3)
	SetMat2(&r, 2, &m2)
	SetVec4(&r, 3, &v4)
	SetVec3(&r, 4, &v3)
	SetVec2(&r, 5, &v2)
	SetQuat(&r, 6, &q)

	require.Len(t, r.Calls, 7)
	kinds := []string{"mat4", "mat3", "mat2", "vec4", "vec3", "vec2", "vec4"}
	for i, c := range r.Calls {
		assert.Equal(t, kinds[i], c.Kind)
		assert.Equal(t, int32(i), c.Location)
		assert.Equal(t, int32(1), c.Count)
	}
	assert.Equal(t, m4[:], r.Calls[0].Values)
	assert.Equal(t, m3[:], r.Calls[1].Values)
	assert.Equal(t, []float32{1, 2, 3, 4}, r.Calls[2].Values)
	assert.Equal(t, []float32{1, 2, 3}, r.Calls[4].Values)
	assert.Equal(t, []float32{0, 0, 0, 1}, r.Calls[6].Values)
}

func TestRecorderCopiesValues(t *testing.T) {
	var r Recorder
	v := math.Vec3{1, 2, 3}
	SetVec3(&r, 0, &v)
	v[0] = 9
	assert.Equal(t, []float32{1, 2, 3}, r.Calls[0].Values)

	r.Reset()
	assert.Empty(t, r.Calls)
}

func TestInactiveLocationIsSkipped(t *testing.T) {
	var r Recorder
	m := math.Mat4Identity()
	SetMat4(&r, -1, &m)
	require.NoError(t, SetMat4Array(&r, -1, math.NewMat4Buffer(2)))
	assert.Empty(t, r.Calls)
}

func TestSetMat4Array(t *testing.T) {
	var r Recorder
	buf := math.NewMat4Buffer(3)
	buf[16+12] = 5

	require.NoError(t, SetMat4Array(&r, 2, buf))
	require.Len(t, r.Calls, 1)
	assert.Equal(t, int32(3), r.Calls[0].Count)
	assert.Equal(t, buf, r.Calls[0].Values)

	r.Reset()
	require.NoError(t, SetMat4Array(&r, 2, nil))
	assert.Empty(t, r.Calls)

	err := SetMat4Array(&r, 2, make([]float32, 20))
	assert.ErrorIs(t, err, ErrRaggedBuffer)
	assert.Empty(t, r.Calls)
}

func TestSetVec3Array(t *testing.T) {
	var r Recorder
	require.NoError(t, SetVec3Array(&r, 0, []float32{1, 2, 3, 4, 5, 6}))
	assert.Equal(t, int32(2), r.Calls[0].Count)

	assert.ErrorIs(t, SetVec3Array(&r, 0, []float32{1, 2}), ErrRaggedBuffer)
}
