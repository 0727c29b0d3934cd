package main

import (
	"bytes"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1.50", formatFloat(1.5, 2))
	assert.Equal(t, "0.000", formatFloat(-1e-7, 3))
	assert.Equal(t, "-0.25", formatFloat(-0.25, 2))
	assert.Equal(t, "+Inf", formatFloat(math32.Inf(1), 2))
	assert.Equal(t, "-Inf", formatFloat(math32.Inf(-1), 2))
}

func TestWriteTextMatrixByRows(t *testing.T) {
	r := report{
		{"name", "m"},
		{"m", newMatrix([]float32{1, 2, 30, 4})},
	}

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, r, 0))
	assert.Equal(t, "name: m\nm:\n   1 30\n   2  4\n", buf.String())
}

func TestWriteTextNested(t *testing.T) {
	r := report{
		{"v", []float32{1, -2}},
		{"items", []report{{{"n", 1}}, {{"n", 2}}}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, r, 1))
	assert.Equal(t, "v: (1.0, -2.0)\nitems[0]:\n  n: 1\nitems[1]:\n  n: 2\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	r := report{
		{"det", float32(2)},
		{"singular", false},
		{"v", []float32{1, 2}},
		{"inf", math32.Inf(-1)},
	}

	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, r, 1))
	assert.Equal(t, "det: 2.0\nsingular: false\nv: [1.0, 2.0]\ninf: -.inf\n", buf.String())
}

func TestReportGet(t *testing.T) {
	r := report{}.add("a", 1).add("b", "x")
	assert.Equal(t, "x", r.get("b"))
	assert.Nil(t, r.get("c"))
}
