package math

// Mat2 is a 2x2 matrix in column-major order.
//
//	| m0 m2 |
//	| m1 m3 |
type Mat2 [4]float32

// Mat2Identity returns the identity matrix.
func Mat2Identity() Mat2 {
	return Mat2{1, 0, 0, 1}
}

// NewMat2Buffer allocates storage for n matrices, each set to identity.
func NewMat2Buffer(n int) []float32 {
	buf := make([]float32, 4*n)
	for i := 0; i < len(buf); i += 4 {
		buf[i], buf[i+3] = 1, 1
	}
	return buf
}

// Ptr returns a pointer to the first element for GL uniform upload.
func (m *Mat2) Ptr() *float32 {
	return &m[0]
}

// Buffer functions.

// Mat2SetIdentity writes the identity matrix to out.
func Mat2SetIdentity(out []float32) []float32 {
	out[0], out[1], out[2], out[3] = 1, 0, 0, 1
	return out
}

// Mat2SetFromRotAngle writes the rotation by angle radians.
func Mat2SetFromRotAngle(out []float32, angle float32) []float32 {
	c, s := Cos(angle), Sin(angle)
	out[0], out[1], out[2], out[3] = c, s, -s, c
	return out
}

// Mat2SetFromMat3RotScale copies the upper-left 2x2 block of a Mat3 buffer.
func Mat2SetFromMat3RotScale(out, m3 []float32) []float32 {
	out[0], out[1], out[2], out[3] = m3[0], m3[1], m3[3], m3[4]
	return out
}

// Mat2SetFromRSTransfo builds the rotation by angle with its columns scaled by
// scale.
func Mat2SetFromRSTransfo(out []float32, angle float32, scale []float32) []float32 {
	c, s := Cos(angle), Sin(angle)
	sx, sy := scale[0], scale[1]
	out[0], out[1] = c*sx, s*sx
	out[2], out[3] = -s*sy, c*sy
	return out
}

// Mat2RSTransfo decomposes a rotation+scale matrix: the column lengths go to
// outScale and the rotation angle is returned.
func Mat2RSTransfo(outScale, m []float32) float32 {
	b := orthoNormalize2(m, 2)
	outScale[0], outScale[1] = b.scale[0], b.scale[1]
	return b.angle()
}

// Mat2NormalizeRSTransfo removes any shear from m, keeping its rotation and
// column lengths.
func Mat2NormalizeRSTransfo(out, m []float32) []float32 {
	b := orthoNormalize2(m, 2)
	b.rescale(out, 2)
	return out
}

// Mat2IsIdentity reports whether m is within Epsilon of the identity.
func Mat2IsIdentity(m []float32) bool {
	return Abs(m[0]-1) < Epsilon && Abs(m[1]) < Epsilon &&
		Abs(m[2]) < Epsilon && Abs(m[3]-1) < Epsilon
}

// Mat2Equals reports whether a and b match component-wise within Epsilon.
func Mat2Equals(a, b []float32) bool { return tupleEquals(a, b, 4) }

// Mat2Multiply writes a·b to out.
func Mat2Multiply(out, a, b []float32) []float32 {
	a00, a01, a10, a11 := a[0], a[1], a[2], a[3]
	b00, b01, b10, b11 := b[0], b[1], b[2], b[3]
	out[0] = b00*a00 + b01*a10
	out[1] = b00*a01 + b01*a11
	out[2] = b10*a00 + b11*a10
	out[3] = b10*a01 + b11*a11
	return out
}

// mat2Det accumulates the determinant in float64, where products of float32
// inputs are exact, so an exactly singular matrix yields exactly 0. The
// explicit conversions forbid fused multiply-add.
func mat2Det(m []float32) float64 {
	m00, m01, m10, m11 := float64(m[0]), float64(m[1]), float64(m[2]), float64(m[3])
	return float64(m00*m11) - float64(m10*m01)
}

// Mat2Determinant returns det(m), computed in float64.
func Mat2Determinant(m []float32) float32 { return float32(mat2Det(m)) }

// Mat2Invert writes the inverse of m. When |det| < Epsilon every component is
// set to +Inf (det >= 0) or -Inf.
func Mat2Invert(out, m []float32) []float32 {
	m00, m01, m10, m11 := m[0], m[1], m[2], m[3]
	det := mat2Det(m)
	if d := float32(det); Abs(d) < Epsilon {
		inf := signedInf(d)
		out[0], out[1], out[2], out[3] = inf, inf, inf, inf
		return out
	}
	inv := float32(1 / det)
	out[0], out[1] = m11*inv, -m01*inv
	out[2], out[3] = -m10*inv, m00*inv
	return out
}

// Mat2Transpose writes mᵀ to out.
func Mat2Transpose(out, m []float32) []float32 {
	m01 := m[1]
	out[0], out[1], out[2], out[3] = m[0], m[2], m01, m[3]
	return out
}

// Mat2TransformVec2 writes m·v to out.
func Mat2TransformVec2(out, m, v []float32) []float32 {
	x, y := v[0], v[1]
	out[0] = x*m[0] + y*m[2]
	out[1] = x*m[1] + y*m[3]
	return out
}

// Object API.

// SetFromSlice copies the first four elements of s.
func (m *Mat2) SetFromSlice(s []float32) *Mat2 {
	copy(m[:], s[:4])
	return m
}

// SetColumnVec2 sets column col (0 or 1) to v.
func (m *Mat2) SetColumnVec2(col int, v *Vec2) *Mat2 {
	copy(m[col*2:col*2+2], v[:])
	return m
}

// SetFromColumnsVec2 sets the columns of m to i and j.
func (m *Mat2) SetFromColumnsVec2(i, j *Vec2) *Mat2 {
	m[0], m[1] = i[0], i[1]
	m[2], m[3] = j[0], j[1]
	return m
}

// SetFromRotAngle sets m to the rotation by angle radians.
func (m *Mat2) SetFromRotAngle(angle float32) *Mat2 {
	Mat2SetFromRotAngle(m[:], angle)
	return m
}

// SetFromMat3RotScale sets m to the upper-left block of m3.
func (m *Mat2) SetFromMat3RotScale(m3 *Mat3) *Mat2 {
	Mat2SetFromMat3RotScale(m[:], m3[:])
	return m
}

// SetFromRSTransfo sets m to the rotation by angle with columns scaled by scale.
func (m *Mat2) SetFromRSTransfo(angle float32, scale *Vec2) *Mat2 {
	Mat2SetFromRSTransfo(m[:], angle, scale[:])
	return m
}

// SetIdentity resets m to the identity.
func (m *Mat2) SetIdentity() *Mat2 { Mat2SetIdentity(m[:]); return m }

// Copy sets m to o.
func (m *Mat2) Copy(o *Mat2) *Mat2 {
	*m = *o
	return m
}

// RSTransfo writes the scale of m to outScale and returns its rotation angle.
func (m *Mat2) RSTransfo(outScale *Vec2) float32 {
	return Mat2RSTransfo(outScale[:], m[:])
}

// NormalizeRSTransfo sets m to o with its shear removed.
func (m *Mat2) NormalizeRSTransfo(o *Mat2) *Mat2 {
	Mat2NormalizeRSTransfo(m[:], o[:])
	return m
}

// NormalizeRSTransfoInPlace removes any shear from m.
func (m *Mat2) NormalizeRSTransfoInPlace() *Mat2 {
	Mat2NormalizeRSTransfo(m[:], m[:])
	return m
}

// IsIdentity reports whether m is the identity.
func (m *Mat2) IsIdentity() bool { return Mat2IsIdentity(m[:]) }

// Equals reports whether m and o match within Epsilon.
func (m *Mat2) Equals(o *Mat2) bool { return Mat2Equals(m[:], o[:]) }

// Multiply sets m to a·b.
func (m *Mat2) Multiply(a, b *Mat2) *Mat2 { Mat2Multiply(m[:], a[:], b[:]); return m }

// MultiplyInPlace sets m to m·o.
func (m *Mat2) MultiplyInPlace(o *Mat2) *Mat2 { Mat2Multiply(m[:], m[:], o[:]); return m }

// Invert sets m to o⁻¹; see Mat2Invert for singular input.
func (m *Mat2) Invert(o *Mat2) *Mat2 { Mat2Invert(m[:], o[:]); return m }

// InvertInPlace inverts m.
func (m *Mat2) InvertInPlace() *Mat2 { Mat2Invert(m[:], m[:]); return m }

// Transpose sets m to oᵀ.
func (m *Mat2) Transpose(o *Mat2) *Mat2 { Mat2Transpose(m[:], o[:]); return m }

// TransposeInPlace transposes m.
func (m *Mat2) TransposeInPlace() *Mat2 { Mat2Transpose(m[:], m[:]); return m }

// Determinant returns det(m).
func (m *Mat2) Determinant() float32 { return Mat2Determinant(m[:]) }

// TransformVec2 writes m·in to out and returns out.
func (m *Mat2) TransformVec2(out, in *Vec2) *Vec2 {
	Mat2TransformVec2(out[:], m[:], in[:])
	return out
}

// TransformVec2InPlace replaces v by m·v.
func (m *Mat2) TransformVec2InPlace(v *Vec2) *Vec2 {
	Mat2TransformVec2(v[:], m[:], v[:])
	return v
}
