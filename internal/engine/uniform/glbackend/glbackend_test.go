//go:build gl

package glbackend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/neo3d/internal/engine/uniform"
	"github.com/Faultbox/neo3d/pkg/math"
)

// These tests need no GL context: they check the signatures the renderer
// relies on and that every upload path goes through uniform.Uploader.

func TestLocationSignatures(t *testing.T) {
	var (
		loc     func(uint32, string) int32 = Location
		mustLoc func(uint32, string) int32 = MustLocation
	)
	assert.NotNil(t, loc)
	assert.NotNil(t, mustLoc)
}

func TestUploaderSatisfiesInterface(t *testing.T) {
	var up uniform.Uploader = Uploader{}
	assert.Implements(t, (*uniform.Uploader)(nil), up)

	// Negative locations are skipped before reaching GL.
	m := math.Mat4Identity()
	assert.NotPanics(t, func() { uniform.SetMat4(up, -1, &m) })
}
