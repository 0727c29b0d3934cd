package math

// Stabilized Gram–Schmidt orthonormalization of rotation+scale blocks. The
// source block is read column by column, stride floats apart, so the same
// routine serves a Mat2 (stride 2), the 2D part of a Mat3 (stride 3), a Mat3
// (stride 3) and the 3D part of a Mat4 (stride 4).
//
// A column whose remainder has a squared length below Epsilon2 collapses to
// the null vector with a recorded scale of 0.

// basis2 is an orthonormal 2D basis, column-major, with the original column
// lengths.
type basis2 struct {
	m     [4]float32
	scale [2]float32
}

// basis3 is an orthonormal 3D basis, column-major, with the original column
// lengths.
type basis3 struct {
	m     [9]float32
	scale [3]float32
}

// normalizeColumn scales c to unit length in place and returns its original
// length, or nulls it and returns 0.
func normalizeColumn(c []float32) float32 {
	n := tupleDot(c, c, len(c))
	if n < Epsilon2 {
		for i := range c {
			c[i] = 0
		}
		return 0
	}
	n = Sqrt(n)
	tupleScale(c, 1/n, c, len(c))
	return n
}

// removeProjection subtracts from c its projection on the unit vector u.
func removeProjection(c, u []float32) {
	d := tupleDot(c, u, len(c))
	tupleAddScaled(c, c, -d, u, len(c))
}

func orthoNormalize2(m []float32, stride int) basis2 {
	var b basis2
	c0, c1 := b.m[0:2], b.m[2:4]
	copy(c0, m[0:2])
	copy(c1, m[stride:stride+2])

	b.scale[0] = normalizeColumn(c0)
	removeProjection(c1, c0)
	b.scale[1] = normalizeColumn(c1)
	return b
}

func orthoNormalize3(m []float32, stride int) basis3 {
	var b basis3
	c0, c1, c2 := b.m[0:3], b.m[3:6], b.m[6:9]
	copy(c0, m[0:3])
	copy(c1, m[stride:stride+3])
	copy(c2, m[2*stride:2*stride+3])

	b.scale[0] = normalizeColumn(c0)
	removeProjection(c1, c0)
	removeProjection(c2, c0)
	b.scale[1] = normalizeColumn(c1)
	removeProjection(c2, c1)
	b.scale[2] = normalizeColumn(c2)
	return b
}

// angle returns the rotation angle of the basis' first column.
func (b *basis2) angle() float32 {
	return Atan2(b.m[1], b.m[0])
}

// rescale writes the basis columns scaled back by their lengths to out,
// stride floats apart.
func (b *basis2) rescale(out []float32, stride int) {
	out[0], out[1] = b.m[0]*b.scale[0], b.m[1]*b.scale[0]
	out[stride], out[stride+1] = b.m[2]*b.scale[1], b.m[3]*b.scale[1]
}

func (b *basis3) rescale(out []float32, stride int) {
	for col := 0; col < 3; col++ {
		s := b.scale[col]
		o := out[col*stride:]
		c := b.m[col*3:]
		o[0], o[1], o[2] = c[0]*s, c[1]*s, c[2]*s
	}
}
