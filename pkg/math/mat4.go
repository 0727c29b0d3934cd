package math

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
//
//	| m0 m4 m8  m12 |
//	| m1 m5 m9  m13 |
//	| m2 m6 m10 m14 |
//	| m3 m7 m11 m15 |
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMat4Buffer allocates storage for n matrices, each set to identity.
func NewMat4Buffer(n int) []float32 {
	buf := make([]float32, 16*n)
	for i := 0; i < len(buf); i += 16 {
		buf[i], buf[i+5], buf[i+10], buf[i+15] = 1, 1, 1, 1
	}
	return buf
}

// Ptr returns a pointer to the first element for GL uniform upload.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Buffer functions.

// Mat4SetIdentity writes the identity matrix to out.
func Mat4SetIdentity(out []float32) []float32 {
	for i := 0; i < 16; i++ {
		out[i] = 0
	}
	out[0], out[5], out[10], out[15] = 1, 1, 1, 1
	return out
}

// Mat4SetRotationFromQuat writes the rotation of the unit quaternion q to the
// upper-left 3x3 block and zeroes the rest of the first three columns. The
// translation column is kept.
func Mat4SetRotationFromQuat(out, q []float32) []float32 {
	rotationFromQuat(out, q, 1, 1, 1, 4)
	out[3], out[7], out[11] = 0, 0, 0
	return out
}

// Mat4SetRotScaleFromMat3 copies a Mat3 into the upper-left 3x3 block. The
// translation column is kept.
func Mat4SetRotScaleFromMat3(out, m3 []float32) []float32 {
	out[0], out[1], out[2], out[3] = m3[0], m3[1], m3[2], 0
	out[4], out[5], out[6], out[7] = m3[3], m3[4], m3[5], 0
	out[8], out[9], out[10], out[11] = m3[6], m3[7], m3[8], 0
	return out
}

// Mat4SetFromTRSTransfo builds the transform scaling by scale, rotating by the
// unit quaternion q, then translating by trans.
func Mat4SetFromTRSTransfo(out, trans, q, scale []float32) []float32 {
	rotationFromQuat(out, q, scale[0], scale[1], scale[2], 4)
	out[3], out[7], out[11] = 0, 0, 0
	out[12], out[13], out[14], out[15] = trans[0], trans[1], trans[2], 1
	return out
}

// Mat4TRSTransfo decomposes an affine transform into translation, unit
// quaternion and per-axis scale.
func Mat4TRSTransfo(outTrans, outQuat, outScale, m []float32) {
	outTrans[0], outTrans[1], outTrans[2] = m[12], m[13], m[14]
	b := orthoNormalize3(m, 4)
	copy(outScale[:3], b.scale[:])
	QuatSetFromRotationMat3(outQuat, b.m[:])
}

// Mat4NormalizeTRSTransfo removes any shear from the upper-left block of an
// affine transform and resets its last row to (0, 0, 0, 1).
func Mat4NormalizeTRSTransfo(out, m []float32) []float32 {
	b := orthoNormalize3(m, 4)
	tx, ty, tz := m[12], m[13], m[14]
	b.rescale(out, 4)
	out[3], out[7], out[11] = 0, 0, 0
	out[12], out[13], out[14], out[15] = tx, ty, tz, 1
	return out
}

// Mat4IsIdentity reports whether m is within Epsilon of the identity.
func Mat4IsIdentity(m []float32) bool {
	for i := 0; i < 16; i++ {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if Abs(m[i]-want) >= Epsilon {
			return false
		}
	}
	return true
}

// Mat4Equals reports whether a and b match component-wise within Epsilon.
func Mat4Equals(a, b []float32) bool { return tupleEquals(a, b, 16) }

// Mat4Multiply writes a·b to out.
func Mat4Multiply(out, a, b []float32) []float32 {
	var r [16]float32
	for col := 0; col < 4; col++ {
		x, y, z, w := b[col*4], b[col*4+1], b[col*4+2], b[col*4+3]
		for row := 0; row < 4; row++ {
			r[col*4+row] = x*a[row] + y*a[4+row] + z*a[8+row] + w*a[12+row]
		}
	}
	copy(out[:16], r[:])
	return out
}

// mat4Minors holds the 2x2 minors of the first two columns (s) and of the
// last two columns (c) that both the determinant and the inverse are built
// from. They are accumulated in float64, where the minor products of float32
// inputs are exact; the explicit conversions forbid fused multiply-add.
type mat4Minors struct {
	s00, s01, s02, s03, s04, s05 float64
	c00, c01, c02, c03, c04, c05 float64
}

func newMat4Minors(m []float64) mat4Minors {
	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	m30, m31, m32, m33 := m[12], m[13], m[14], m[15]
	return mat4Minors{
		s00: float64(m00*m11) - float64(m10*m01),
		s01: float64(m00*m12) - float64(m10*m02),
		s02: float64(m00*m13) - float64(m10*m03),
		s03: float64(m01*m12) - float64(m11*m02),
		s04: float64(m01*m13) - float64(m11*m03),
		s05: float64(m02*m13) - float64(m12*m03),
		c00: float64(m22*m33) - float64(m32*m23),
		c01: float64(m21*m33) - float64(m31*m23),
		c02: float64(m21*m32) - float64(m31*m22),
		c03: float64(m20*m33) - float64(m30*m23),
		c04: float64(m20*m32) - float64(m30*m22),
		c05: float64(m20*m31) - float64(m30*m21),
	}
}

func (k *mat4Minors) det() float64 {
	return float64(k.s00*k.c00) - float64(k.s01*k.c01) + float64(k.s02*k.c02) +
		float64(k.s03*k.c03) - float64(k.s04*k.c04) + float64(k.s05*k.c05)
}

func widenMat4(m []float32) (w [16]float64) {
	for i := range w {
		w[i] = float64(m[i])
	}
	return w
}

// Mat4Determinant returns det(m), computed in float64.
func Mat4Determinant(m []float32) float32 {
	w := widenMat4(m)
	k := newMat4Minors(w[:])
	return float32(k.det())
}

// Mat4Invert writes the inverse of m. When |det| < Epsilon every component is
// set to +Inf (det >= 0) or -Inf.
func Mat4Invert(out, m []float32) []float32 {
	w := widenMat4(m)
	k := newMat4Minors(w[:])
	det := k.det()
	if d := float32(det); Abs(d) < Epsilon {
		inf := signedInf(d)
		for i := 0; i < 16; i++ {
			out[i] = inf
		}
		return out
	}
	m00, m01, m02, m03 := w[0], w[1], w[2], w[3]
	m10, m11, m12, m13 := w[4], w[5], w[6], w[7]
	m20, m21, m22, m23 := w[8], w[9], w[10], w[11]
	m30, m31, m32, m33 := w[12], w[13], w[14], w[15]
	det = 1 / det

	out[0] = float32((m11*k.c00 - m12*k.c01 + m13*k.c02) * det)
	out[1] = float32((m02*k.c01 - m01*k.c00 - m03*k.c02) * det)
	out[2] = float32((m31*k.s05 - m32*k.s04 + m33*k.s03) * det)
	out[3] = float32((m22*k.s04 - m21*k.s05 - m23*k.s03) * det)
	out[4] = float32((m12*k.c03 - m10*k.c00 - m13*k.c04) * det)
	out[5] = float32((m00*k.c00 - m02*k.c03 + m03*k.c04) * det)
	out[6] = float32((m32*k.s02 - m30*k.s05 - m33*k.s01) * det)
	out[7] = float32((m20*k.s05 - m22*k.s02 + m23*k.s01) * det)
	out[8] = float32((m10*k.c01 - m11*k.c03 + m13*k.c05) * det)
	out[9] = float32((m01*k.c03 - m00*k.c01 - m03*k.c05) * det)
	out[10] = float32((m30*k.s04 - m31*k.s02 + m33*k.s00) * det)
	out[11] = float32((m21*k.s02 - m20*k.s04 - m23*k.s00) * det)
	out[12] = float32((m11*k.c04 - m10*k.c02 - m12*k.c05) * det)
	out[13] = float32((m00*k.c02 - m01*k.c04 + m02*k.c05) * det)
	out[14] = float32((m31*k.s01 - m30*k.s03 - m32*k.s00) * det)
	out[15] = float32((m20*k.s03 - m21*k.s01 + m22*k.s00) * det)
	return out
}

// Mat4Transpose writes mᵀ to out.
func Mat4Transpose(out, m []float32) []float32 {
	var r [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			r[row*4+col] = m[col*4+row]
		}
	}
	copy(out[:16], r[:])
	return out
}

// Mat4TransformVec4 writes m·v to out.
func Mat4TransformVec4(out, m, v []float32) []float32 {
	x, y, z, w := v[0], v[1], v[2], v[3]
	out[0] = x*m[0] + y*m[4] + z*m[8] + w*m[12]
	out[1] = x*m[1] + y*m[5] + z*m[9] + w*m[13]
	out[2] = x*m[2] + y*m[6] + z*m[10] + w*m[14]
	out[3] = x*m[3] + y*m[7] + z*m[11] + w*m[15]
	return out
}

// Mat4TransformVec3Pos transforms the point v, translation included. The
// homogeneous w is assumed to stay 1.
func Mat4TransformVec3Pos(out, m, v []float32) []float32 {
	x, y, z := v[0], v[1], v[2]
	out[0] = x*m[0] + y*m[4] + z*m[8] + m[12]
	out[1] = x*m[1] + y*m[5] + z*m[9] + m[13]
	out[2] = x*m[2] + y*m[6] + z*m[10] + m[14]
	return out
}

// Mat4TransformVec3Dir transforms the direction v, translation ignored.
func Mat4TransformVec3Dir(out, m, v []float32) []float32 {
	x, y, z := v[0], v[1], v[2]
	out[0] = x*m[0] + y*m[4] + z*m[8]
	out[1] = x*m[1] + y*m[5] + z*m[9]
	out[2] = x*m[2] + y*m[6] + z*m[10]
	return out
}

// Object API.

// SetFromSlice copies the first sixteen elements of s.
func (m *Mat4) SetFromSlice(s []float32) *Mat4 {
	copy(m[:], s[:16])
	return m
}

// SetColumnVec4 sets column col (0 to 3) to v.
func (m *Mat4) SetColumnVec4(col int, v *Vec4) *Mat4 {
	copy(m[col*4:col*4+4], v[:])
	return m
}

// SetFromColumnsVec4 sets the columns of m to i, j, k and t.
func (m *Mat4) SetFromColumnsVec4(i, j, k, t *Vec4) *Mat4 {
	copy(m[0:4], i[:])
	copy(m[4:8], j[:])
	copy(m[8:12], k[:])
	copy(m[12:16], t[:])
	return m
}

// SetColumnVec3 sets column col to the homogeneous (v, h) where h is 1 for
// the translation column (col 3) and 0 otherwise.
func (m *Mat4) SetColumnVec3(col int, v *Vec3) *Mat4 {
	h := float32(0)
	if col == 3 {
		h = 1
	}
	m[col*4], m[col*4+1], m[col*4+2], m[col*4+3] = v[0], v[1], v[2], h
	return m
}

// SetFromColumnsVec3 builds an affine transform from its three axes and its
// translation.
func (m *Mat4) SetFromColumnsVec3(i, j, k, t *Vec3) *Mat4 {
	return m.SetColumnVec3(0, i).SetColumnVec3(1, j).SetColumnVec3(2, k).SetColumnVec3(3, t)
}

// SetRotationFromQuat sets the rotation block of m from q, keeping its translation.
func (m *Mat4) SetRotationFromQuat(q *Quat) *Mat4 {
	Mat4SetRotationFromQuat(m[:], q[:])
	return m
}

// SetRotScaleFromMat3 sets the upper-left block of m to m3.
func (m *Mat4) SetRotScaleFromMat3(m3 *Mat3) *Mat4 {
	Mat4SetRotScaleFromMat3(m[:], m3[:])
	return m
}

// SetFromTRSTransfo sets m to the transform built from trans, q and scale.
func (m *Mat4) SetFromTRSTransfo(trans *Vec3, q *Quat, scale *Vec3) *Mat4 {
	Mat4SetFromTRSTransfo(m[:], trans[:], q[:], scale[:])
	return m
}

// SetIdentity resets m to the identity.
func (m *Mat4) SetIdentity() *Mat4 { Mat4SetIdentity(m[:]); return m }

// Copy sets m to o.
func (m *Mat4) Copy(o *Mat4) *Mat4 {
	*m = *o
	return m
}

// TRSTransfo decomposes m into translation, rotation and per-axis scale.
func (m *Mat4) TRSTransfo(outTrans *Vec3, outQuat *Quat, outScale *Vec3) {
	Mat4TRSTransfo(outTrans[:], outQuat[:], outScale[:], m[:])
}

// NormalizeTRSTransfo sets m to o with its shear removed.
func (m *Mat4) NormalizeTRSTransfo(o *Mat4) *Mat4 {
	Mat4NormalizeTRSTransfo(m[:], o[:])
	return m
}

// NormalizeTRSTransfoInPlace removes any shear from m.
func (m *Mat4) NormalizeTRSTransfoInPlace() *Mat4 {
	Mat4NormalizeTRSTransfo(m[:], m[:])
	return m
}

// IsIdentity reports whether m is the identity.
func (m *Mat4) IsIdentity() bool { return Mat4IsIdentity(m[:]) }

// Equals reports whether m and o match within Epsilon.
func (m *Mat4) Equals(o *Mat4) bool { return Mat4Equals(m[:], o[:]) }

// Multiply sets m to a·b.
func (m *Mat4) Multiply(a, b *Mat4) *Mat4 { Mat4Multiply(m[:], a[:], b[:]); return m }

// MultiplyInPlace sets m to m·o.
func (m *Mat4) MultiplyInPlace(o *Mat4) *Mat4 { Mat4Multiply(m[:], m[:], o[:]); return m }

// Invert sets m to o⁻¹; see Mat4Invert for singular input.
func (m *Mat4) Invert(o *Mat4) *Mat4 { Mat4Invert(m[:], o[:]); return m }

// InvertInPlace inverts m.
func (m *Mat4) InvertInPlace() *Mat4 { Mat4Invert(m[:], m[:]); return m }

// Transpose sets m to oᵀ.
func (m *Mat4) Transpose(o *Mat4) *Mat4 { Mat4Transpose(m[:], o[:]); return m }

// TransposeInPlace transposes m.
func (m *Mat4) TransposeInPlace() *Mat4 { Mat4Transpose(m[:], m[:]); return m }

// Determinant returns det(m).
func (m *Mat4) Determinant() float32 { return Mat4Determinant(m[:]) }

// TransformVec4 writes m·in to out and returns out.
func (m *Mat4) TransformVec4(out, in *Vec4) *Vec4 {
	Mat4TransformVec4(out[:], m[:], in[:])
	return out
}

// TransformVec4InPlace replaces v by m·v.
func (m *Mat4) TransformVec4InPlace(v *Vec4) *Vec4 {
	Mat4TransformVec4(v[:], m[:], v[:])
	return v
}

// TransformVec3Pos transforms the point in into out.
func (m *Mat4) TransformVec3Pos(out, in *Vec3) *Vec3 {
	Mat4TransformVec3Pos(out[:], m[:], in[:])
	return out
}

// TransformVec3PosInPlace transforms the point v.
func (m *Mat4) TransformVec3PosInPlace(v *Vec3) *Vec3 {
	Mat4TransformVec3Pos(v[:], m[:], v[:])
	return v
}

// TransformVec3Dir transforms the direction in into out.
func (m *Mat4) TransformVec3Dir(out, in *Vec3) *Vec3 {
	Mat4TransformVec3Dir(out[:], m[:], in[:])
	return out
}

// TransformVec3DirInPlace transforms the direction v.
func (m *Mat4) TransformVec3DirInPlace(v *Vec3) *Vec3 {
	Mat4TransformVec3Dir(v[:], m[:], v[:])
	return v
}
