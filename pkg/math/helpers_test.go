package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// delta is the tolerance of reference values given with seven significant
// digits.
const delta = 1e-5

func assertSliceNear(t *testing.T, want, got []float32) {
	t.Helper()
	assert.InDeltaSlice(t, want, got, delta)
}

func assertAllInf(t *testing.T, got []float32, sign int) {
	t.Helper()
	for i, v := range got {
		assert.Truef(t, IsInf(v, sign), "component %d = %v", i, v)
	}
}
