package math

// Mat3 is a 3x3 matrix in column-major order.
//
//	| m0 m3 m6 |
//	| m1 m4 m7 |
//	| m2 m5 m8 |
//
// It is used both as a 3D rotation+scale and as a 2D affine transform whose
// last column holds the translation.
type Mat3 [9]float32

// Mat3Identity returns the identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// NewMat3Buffer allocates storage for n matrices, each set to identity.
func NewMat3Buffer(n int) []float32 {
	buf := make([]float32, 9*n)
	for i := 0; i < len(buf); i += 9 {
		buf[i], buf[i+4], buf[i+8] = 1, 1, 1
	}
	return buf
}

// Ptr returns a pointer to the first element for GL uniform upload.
func (m *Mat3) Ptr() *float32 {
	return &m[0]
}

// Buffer functions.

// Mat3SetIdentity writes the identity matrix to out.
func Mat3SetIdentity(out []float32) []float32 {
	out[0], out[1], out[2] = 1, 0, 0
	out[3], out[4], out[5] = 0, 1, 0
	out[6], out[7], out[8] = 0, 0, 1
	return out
}

// rotationFromQuat writes the rotation of the unit quaternion q, each column
// multiplied by the matching scale factor, to out with the given column stride.
func rotationFromQuat(out, q []float32, sx, sy, sz float32, stride int) {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z
	x2x, x2y, x2z, x2w := x2*x, x2*y, x2*z, x2*w
	y2y, y2z, y2w := y2*y, y2*z, y2*w
	z2z, z2w := z2*z, z2*w

	c := out[0:]
	c[0], c[1], c[2] = (1-y2y-z2z)*sx, (z2w+x2y)*sx, (x2z-y2w)*sx
	c = out[stride:]
	c[0], c[1], c[2] = (x2y-z2w)*sy, (1-x2x-z2z)*sy, (x2w+y2z)*sy
	c = out[2*stride:]
	c[0], c[1], c[2] = (y2w+x2z)*sz, (y2z-x2w)*sz, (1-x2x-y2y)*sz
}

// Mat3SetFromQuat writes the rotation of the unit quaternion q.
func Mat3SetFromQuat(out, q []float32) []float32 {
	rotationFromQuat(out, q, 1, 1, 1, 3)
	return out
}

// Mat3SetFromMat4RotScale copies the upper-left 3x3 block of a Mat4 buffer.
func Mat3SetFromMat4RotScale(out, m4 []float32) []float32 {
	copy(out[0:3], m4[0:3])
	copy(out[3:6], m4[4:7])
	copy(out[6:9], m4[8:11])
	return out
}

// Mat3SetFromRSTransfo3D writes the rotation of the unit quaternion q with its
// columns scaled by scale.
func Mat3SetFromRSTransfo3D(out, q, scale []float32) []float32 {
	rotationFromQuat(out, q, scale[0], scale[1], scale[2], 3)
	return out
}

// Mat3SetRotation2D sets the 2D rotation part; the translation column is kept.
func Mat3SetRotation2D(out []float32, angle float32) []float32 {
	c, s := Cos(angle), Sin(angle)
	out[0], out[1], out[2] = c, s, 0
	out[3], out[4], out[5] = -s, c, 0
	return out
}

// Mat3SetRotScale2DFromMat2 sets the 2D rotation+scale part from a Mat2
// buffer; the translation column is kept.
func Mat3SetRotScale2DFromMat2(out, m2 []float32) []float32 {
	out[0], out[1], out[2] = m2[0], m2[1], 0
	out[3], out[4], out[5] = m2[2], m2[3], 0
	return out
}

// Mat3SetFromTRSTransfo2D builds the 2D affine transform scaling by scale,
// rotating by angle, then translating by trans.
func Mat3SetFromTRSTransfo2D(out, trans []float32, angle float32, scale []float32) []float32 {
	c, s := Cos(angle), Sin(angle)
	sx, sy := scale[0], scale[1]
	out[0], out[1], out[2] = c*sx, s*sx, 0
	out[3], out[4], out[5] = -s*sy, c*sy, 0
	out[6], out[7], out[8] = trans[0], trans[1], 1
	return out
}

// Mat3RSTransfo3D decomposes a 3D rotation+scale matrix into a unit
// quaternion and per-axis scale.
func Mat3RSTransfo3D(outQuat, outScale, m []float32) {
	b := orthoNormalize3(m, 3)
	copy(outScale[:3], b.scale[:])
	QuatSetFromRotationMat3(outQuat, b.m[:])
}

// Mat3NormalizeRSTransfo3D removes any shear from a 3D rotation+scale matrix.
func Mat3NormalizeRSTransfo3D(out, m []float32) []float32 {
	b := orthoNormalize3(m, 3)
	b.rescale(out, 3)
	return out
}

// Mat3TRSTransfo2D decomposes a 2D affine transform: translation to outTrans,
// scale to outScale, and the rotation angle is returned.
func Mat3TRSTransfo2D(outTrans, outScale, m []float32) float32 {
	b := orthoNormalize2(m, 3)
	outScale[0], outScale[1] = b.scale[0], b.scale[1]
	outTrans[0], outTrans[1] = m[6], m[7]
	return b.angle()
}

// Mat3NormalizeTRSTransfo2D removes any shear from a 2D affine transform and
// resets its homogeneous row to (0, 0, 1).
func Mat3NormalizeTRSTransfo2D(out, m []float32) []float32 {
	b := orthoNormalize2(m, 3)
	tx, ty := m[6], m[7]
	b.rescale(out, 3)
	out[2], out[5] = 0, 0
	out[6], out[7], out[8] = tx, ty, 1
	return out
}

// Mat3IsIdentity reports whether m is within Epsilon of the identity.
func Mat3IsIdentity(m []float32) bool {
	for i := 0; i < 9; i++ {
		want := float32(0)
		if i%4 == 0 {
			want = 1
		}
		if Abs(m[i]-want) >= Epsilon {
			return false
		}
	}
	return true
}

// Mat3Equals reports whether a and b match component-wise within Epsilon.
func Mat3Equals(a, b []float32) bool { return tupleEquals(a, b, 9) }

// Mat3Multiply writes a·b to out.
func Mat3Multiply(out, a, b []float32) []float32 {
	var r [9]float32
	for col := 0; col < 3; col++ {
		x, y, z := b[col*3], b[col*3+1], b[col*3+2]
		for row := 0; row < 3; row++ {
			r[col*3+row] = x*a[row] + y*a[3+row] + z*a[6+row]
		}
	}
	copy(out[:9], r[:])
	return out
}

// mat3Cofactors returns the first row of cofactors and the determinant, all
// accumulated in float64. Cofactor products of float32 inputs are exact; the
// explicit conversions round every product on its own, forbidding fused
// multiply-add.
func mat3Cofactors(m []float32) (c00, c01, c02, det float64) {
	m00, m01, m02 := float64(m[0]), float64(m[1]), float64(m[2])
	m10, m11, m12 := float64(m[3]), float64(m[4]), float64(m[5])
	m20, m21, m22 := float64(m[6]), float64(m[7]), float64(m[8])
	c00 = float64(m11*m22) - float64(m21*m12)
	c01 = float64(m20*m12) - float64(m10*m22)
	c02 = float64(m10*m21) - float64(m20*m11)
	det = float64(m00*c00) + float64(m01*c01) + float64(m02*c02)
	return
}

// Mat3Determinant returns det(m), computed in float64.
func Mat3Determinant(m []float32) float32 {
	_, _, _, det := mat3Cofactors(m)
	return float32(det)
}

// Mat3Invert writes the inverse of m. When |det| < Epsilon every component is
// set to +Inf (det >= 0) or -Inf.
func Mat3Invert(out, m []float32) []float32 {
	c00, c01, c02, det := mat3Cofactors(m)
	if d := float32(det); Abs(d) < Epsilon {
		inf := signedInf(d)
		for i := 0; i < 9; i++ {
			out[i] = inf
		}
		return out
	}
	m00, m01, m02 := float64(m[0]), float64(m[1]), float64(m[2])
	m10, m11, m12 := float64(m[3]), float64(m[4]), float64(m[5])
	m20, m21, m22 := float64(m[6]), float64(m[7]), float64(m[8])
	det = 1 / det
	out[0] = float32(c00 * det)
	out[1] = float32((m21*m02 - m01*m22) * det)
	out[2] = float32((m01*m12 - m11*m02) * det)
	out[3] = float32(c01 * det)
	out[4] = float32((m00*m22 - m20*m02) * det)
	out[5] = float32((m10*m02 - m00*m12) * det)
	out[6] = float32(c02 * det)
	out[7] = float32((m20*m01 - m00*m21) * det)
	out[8] = float32((m00*m11 - m10*m01) * det)
	return out
}

// Mat3Transpose writes mᵀ to out.
func Mat3Transpose(out, m []float32) []float32 {
	m01, m02, m12 := m[1], m[2], m[5]
	out[0], out[4], out[8] = m[0], m[4], m[8]
	out[1], out[2], out[5] = m[3], m[6], m[7]
	out[3], out[6], out[7] = m01, m02, m12
	return out
}

// Mat3TransformVec3 writes m·v to out.
func Mat3TransformVec3(out, m, v []float32) []float32 {
	x, y, z := v[0], v[1], v[2]
	out[0] = x*m[0] + y*m[3] + z*m[6]
	out[1] = x*m[1] + y*m[4] + z*m[7]
	out[2] = x*m[2] + y*m[5] + z*m[8]
	return out
}

// Mat3TransformVec2Pos transforms the 2D point v, translation included.
func Mat3TransformVec2Pos(out, m, v []float32) []float32 {
	x, y := v[0], v[1]
	out[0] = x*m[0] + y*m[3] + m[6]
	out[1] = x*m[1] + y*m[4] + m[7]
	return out
}

// Mat3TransformVec2Dir transforms the 2D direction v, translation ignored.
func Mat3TransformVec2Dir(out, m, v []float32) []float32 {
	x, y := v[0], v[1]
	out[0] = x*m[0] + y*m[3]
	out[1] = x*m[1] + y*m[4]
	return out
}

// Object API.

// SetFromSlice copies the first nine elements of s.
func (m *Mat3) SetFromSlice(s []float32) *Mat3 {
	copy(m[:], s[:9])
	return m
}

// SetColumnVec3 sets column col (0 to 2) to v.
func (m *Mat3) SetColumnVec3(col int, v *Vec3) *Mat3 {
	copy(m[col*3:col*3+3], v[:])
	return m
}

// SetFromColumnsVec3 sets the columns of m to i, j and k.
func (m *Mat3) SetFromColumnsVec3(i, j, k *Vec3) *Mat3 {
	copy(m[0:3], i[:])
	copy(m[3:6], j[:])
	copy(m[6:9], k[:])
	return m
}

// SetColumnVec2 sets column col to the homogeneous (v, h) where h is 1 for
// the translation column (col 2) and 0 otherwise.
func (m *Mat3) SetColumnVec2(col int, v *Vec2) *Mat3 {
	h := float32(0)
	if col == 2 {
		h = 1
	}
	m[col*3], m[col*3+1], m[col*3+2] = v[0], v[1], h
	return m
}

// SetFromColumnsVec2 builds a 2D affine transform from its two axes and its
// translation.
func (m *Mat3) SetFromColumnsVec2(i, j, t *Vec2) *Mat3 {
	m[0], m[1], m[2] = i[0], i[1], 0
	m[3], m[4], m[5] = j[0], j[1], 0
	m[6], m[7], m[8] = t[0], t[1], 1
	return m
}

// SetFromQuat sets m to the rotation of q.
func (m *Mat3) SetFromQuat(q *Quat) *Mat3 {
	Mat3SetFromQuat(m[:], q[:])
	return m
}

// SetFromMat4RotScale sets m to the upper-left block of m4.
func (m *Mat3) SetFromMat4RotScale(m4 *Mat4) *Mat3 {
	Mat3SetFromMat4RotScale(m[:], m4[:])
	return m
}

// SetFromRSTransfo3D sets m to the rotation q with columns scaled by scale.
func (m *Mat3) SetFromRSTransfo3D(q *Quat, scale *Vec3) *Mat3 {
	Mat3SetFromRSTransfo3D(m[:], q[:], scale[:])
	return m
}

// SetRotation2D sets the 2D rotation part of m, keeping its translation.
func (m *Mat3) SetRotation2D(angle float32) *Mat3 {
	Mat3SetRotation2D(m[:], angle)
	return m
}

// SetRotScale2DFromMat2 sets the 2D rotation+scale part of m from m2.
func (m *Mat3) SetRotScale2DFromMat2(m2 *Mat2) *Mat3 {
	Mat3SetRotScale2DFromMat2(m[:], m2[:])
	return m
}

// SetFromTRSTransfo2D sets m to the 2D transform built from trans, angle and scale.
func (m *Mat3) SetFromTRSTransfo2D(trans *Vec2, angle float32, scale *Vec2) *Mat3 {
	Mat3SetFromTRSTransfo2D(m[:], trans[:], angle, scale[:])
	return m
}

// SetIdentity resets m to the identity.
func (m *Mat3) SetIdentity() *Mat3 { Mat3SetIdentity(m[:]); return m }

// Copy sets m to o.
func (m *Mat3) Copy(o *Mat3) *Mat3 {
	*m = *o
	return m
}

// RSTransfo3D decomposes m into a rotation and a per-axis scale.
func (m *Mat3) RSTransfo3D(outQuat *Quat, outScale *Vec3) {
	Mat3RSTransfo3D(outQuat[:], outScale[:], m[:])
}

// NormalizeRSTransfo3D sets m to o with its shear removed.
func (m *Mat3) NormalizeRSTransfo3D(o *Mat3) *Mat3 {
	Mat3NormalizeRSTransfo3D(m[:], o[:])
	return m
}

// NormalizeRSTransfo3DInPlace removes any shear from m.
func (m *Mat3) NormalizeRSTransfo3DInPlace() *Mat3 {
	Mat3NormalizeRSTransfo3D(m[:], m[:])
	return m
}

// TRSTransfo2D decomposes m as a 2D affine transform and returns its rotation
// angle.
func (m *Mat3) TRSTransfo2D(outTrans, outScale *Vec2) float32 {
	return Mat3TRSTransfo2D(outTrans[:], outScale[:], m[:])
}

// NormalizeTRSTransfo2D sets m to the 2D affine transform o with its shear removed.
func (m *Mat3) NormalizeTRSTransfo2D(o *Mat3) *Mat3 {
	Mat3NormalizeTRSTransfo2D(m[:], o[:])
	return m
}

// NormalizeTRSTransfo2DInPlace removes any shear from the 2D affine transform m.
func (m *Mat3) NormalizeTRSTransfo2DInPlace() *Mat3 {
	Mat3NormalizeTRSTransfo2D(m[:], m[:])
	return m
}

// IsIdentity reports whether m is the identity.
func (m *Mat3) IsIdentity() bool { return Mat3IsIdentity(m[:]) }

// Equals reports whether m and o match within Epsilon.
func (m *Mat3) Equals(o *Mat3) bool { return Mat3Equals(m[:], o[:]) }

// Multiply sets m to a·b.
func (m *Mat3) Multiply(a, b *Mat3) *Mat3 { Mat3Multiply(m[:], a[:], b[:]); return m }

// MultiplyInPlace sets m to m·o.
func (m *Mat3) MultiplyInPlace(o *Mat3) *Mat3 { Mat3Multiply(m[:], m[:], o[:]); return m }

// Invert sets m to o⁻¹; see Mat3Invert for singular input.
func (m *Mat3) Invert(o *Mat3) *Mat3 { Mat3Invert(m[:], o[:]); return m }

// InvertInPlace inverts m.
func (m *Mat3) InvertInPlace() *Mat3 { Mat3Invert(m[:], m[:]); return m }

// Transpose sets m to oᵀ.
func (m *Mat3) Transpose(o *Mat3) *Mat3 { Mat3Transpose(m[:], o[:]); return m }

// TransposeInPlace transposes m.
func (m *Mat3) TransposeInPlace() *Mat3 { Mat3Transpose(m[:], m[:]); return m }

// Determinant returns det(m).
func (m *Mat3) Determinant() float32 { return Mat3Determinant(m[:]) }

// TransformVec3 writes m·in to out and returns out.
func (m *Mat3) TransformVec3(out, in *Vec3) *Vec3 {
	Mat3TransformVec3(out[:], m[:], in[:])
	return out
}

// TransformVec3InPlace replaces v by m·v.
func (m *Mat3) TransformVec3InPlace(v *Vec3) *Vec3 {
	Mat3TransformVec3(v[:], m[:], v[:])
	return v
}

// TransformVec2Pos transforms the 2D point in into out.
func (m *Mat3) TransformVec2Pos(out, in *Vec2) *Vec2 {
	Mat3TransformVec2Pos(out[:], m[:], in[:])
	return out
}

// TransformVec2PosInPlace transforms the 2D point v.
func (m *Mat3) TransformVec2PosInPlace(v *Vec2) *Vec2 {
	Mat3TransformVec2Pos(v[:], m[:], v[:])
	return v
}

// TransformVec2Dir transforms the 2D direction in into out.
func (m *Mat3) TransformVec2Dir(out, in *Vec2) *Vec2 {
	Mat3TransformVec2Dir(out[:], m[:], in[:])
	return out
}

// TransformVec2DirInPlace transforms the 2D direction v.
func (m *Mat3) TransformVec2DirInPlace(v *Vec2) *Vec2 {
	Mat3TransformVec2Dir(v[:], m[:], v[:])
	return v
}
