package math

// Quat is a quaternion stored as (x, y, z, w) where w is the scalar part.
// Rotation operations expect unit quaternions; that is not checked.
type Quat [4]float32

// QuatIdentity returns the identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// NewQuatBuffer allocates storage for n quaternions, each set to identity.
func NewQuatBuffer(n int) []float32 {
	buf := make([]float32, 4*n)
	for i := 3; i < len(buf); i += 4 {
		buf[i] = 1
	}
	return buf
}

// 4-tuple arithmetic delegates to Vec4.

// QuatIsNull reports whether every component of q is within Epsilon of 0.
func QuatIsNull(q []float32) bool { return Vec4IsNull(q) }

// QuatEquals reports whether a and b match component-wise within Epsilon.
func QuatEquals(a, b []float32) bool { return Vec4Equals(a, b) }

// QuatScale writes s·q to out.
func QuatScale(out []float32, s float32, q []float32) []float32 { return Vec4Scale(out, s, q) }

// QuatNegate writes -q to out.
func QuatNegate(out, q []float32) []float32 { return Vec4Negate(out, q) }

// QuatSquareNorm returns |q|².
func QuatSquareNorm(q []float32) float32 { return Vec4SquareNorm(q) }

// QuatNorm returns |q|.
func QuatNorm(q []float32) float32 { return Vec4Norm(q) }

// QuatNormalize writes q/|q| to out, or the null quaternion when q is too short.
func QuatNormalize(out, q []float32) []float32 { return Vec4Normalize(out, q) }

// QuatDot returns the 4D dot product of a and b.
func QuatDot(a, b []float32) float32 { return Vec4Dot(a, b) }

// QuatLerp blends component-wise without renormalizing.
func QuatLerp(out, q0 []float32, t float32, q1 []float32) []float32 {
	return Vec4Linear(out, q0, t, q1)
}

func quatSetIdentity(out []float32) []float32 {
	out[0], out[1], out[2], out[3] = 0, 0, 0, 1
	return out
}

// QuatSetFromAxisAndAngle builds the rotation of angle radians around axis.
// A null axis gives identity.
func QuatSetFromAxisAndAngle(out, axis []float32, angle float32) []float32 {
	x, y, z := axis[0], axis[1], axis[2]
	n := x*x + y*y + z*z
	if n < Epsilon2 {
		return quatSetIdentity(out)
	}
	angle *= 0.5
	n = Sin(angle) / Sqrt(n)
	out[0], out[1], out[2], out[3] = x*n, y*n, z*n, Cos(angle)
	return out
}

// QuatSetFromRotationTo builds the shortest rotation taking the direction of
// start onto the direction of end. Inputs need not be unit vectors. A null
// input gives identity; opposite directions give a half-turn around an axis
// perpendicular to start.
func QuatSetFromRotationTo(out, start, end []float32) []float32 {
	x0, y0, z0 := start[0], start[1], start[2]
	n0 := x0*x0 + y0*y0 + z0*z0
	if n0 < Epsilon2 {
		return quatSetIdentity(out)
	}
	x1, y1, z1 := end[0], end[1], end[2]
	n1 := x1*x1 + y1*y1 + z1*z1
	if n1 < Epsilon2 {
		return quatSetIdentity(out)
	}

	n0 = 1 / Sqrt(n0)
	x0, y0, z0 = x0*n0, y0*n0, z0*n0
	n1 = 1 / Sqrt(n1)
	x1, y1, z1 = x1*n1, y1*n1, z1*n1

	dot := x0*x1 + y0*y1 + z0*z1
	if dot > 1-Epsilon {
		return quatSetIdentity(out)
	}

	if dot < Epsilon-1 {
		// Cross product vanishes: try I × start, then J × start.
		var x float32
		y, z := -z0, y0
		n := y*y + z*z
		if n < Epsilon2 {
			x, y, z = z0, 0, -x0
			n = x*x + z*z
		}
		n = 1 / Sqrt(n)
		out[0], out[1], out[2], out[3] = x*n, y*n, z*n, 0
		return out
	}

	x := y0*z1 - z0*y1
	y := z0*x1 - x0*z1
	z := x0*y1 - y0*x1
	dot++
	n := 1 / Sqrt(x*x+y*y+z*z+dot*dot)
	out[0], out[1], out[2], out[3] = x*n, y*n, z*n, dot*n
	return out
}

// quatFromRotation converts a pure rotation block to a unit quaternion.
// stride is the column length of the source matrix (3 or 4).
func quatFromRotation(out, m []float32, stride int) []float32 {
	at := func(col, row int) float32 { return m[col*stride+row] }

	trace := at(0, 0) + at(1, 1) + at(2, 2)
	if trace > 0 {
		f := Sqrt(trace + 1)
		out[3] = 0.5 * f
		f = 0.5 / f
		out[0] = (at(1, 2) - at(2, 1)) * f
		out[1] = (at(2, 0) - at(0, 2)) * f
		out[2] = (at(0, 1) - at(1, 0)) * f
	} else {
		i := 0
		if at(1, 1) > at(0, 0) {
			i = 1
		}
		if at(2, 2) > at(i, i) {
			i = 2
		}
		j := (i + 1) % 3
		k := (i + 2) % 3
		f := Sqrt(at(i, i) - at(j, j) - at(k, k) + 1)
		out[i] = 0.5 * f
		f = 0.5 / f
		out[3] = (at(j, k) - at(k, j)) * f
		out[j] = (at(j, i) + at(i, j)) * f
		out[k] = (at(k, i) + at(i, k)) * f
	}
	return Vec4Normalize(out, out)
}

// QuatSetFromRotationMat3 converts a pure rotation Mat3 buffer.
func QuatSetFromRotationMat3(out, m []float32) []float32 {
	return quatFromRotation(out, m, 3)
}

// QuatSetFromRotationMat4 converts the upper-left rotation block of a Mat4 buffer.
func QuatSetFromRotationMat4(out, m []float32) []float32 {
	return quatFromRotation(out, m, 4)
}

// QuatAxisAndAngle writes the rotation axis of q to outAxis and returns the
// angle in [0, 2Pi). For a null q the axis is null and the angle 0; when the
// vector part vanishes the axis is (1, 0, 0) and the angle 0 or 2Pi.
func QuatAxisAndAngle(outAxis, q []float32) float32 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	m := x*x + y*y + z*z
	if m < Epsilon2 {
		if Abs(w) < Epsilon {
			outAxis[0], outAxis[1], outAxis[2] = 0, 0, 0
			return 0
		}
		outAxis[0], outAxis[1], outAxis[2] = 1, 0, 0
		if w > 0 {
			return 0
		}
		return TwoPi
	}
	m = Sqrt(m)
	theta := Atan2(m, w)
	m = 1 / m
	outAxis[0], outAxis[1], outAxis[2] = x*m, y*m, z*m
	return 2 * theta
}

// QuatIsIdentity reports whether q is within Epsilon of (0, 0, 0, 1).
func QuatIsIdentity(q []float32) bool {
	return Abs(q[0]) < Epsilon && Abs(q[1]) < Epsilon &&
		Abs(q[2]) < Epsilon && Abs(q[3]-1) < Epsilon
}

// QuatFastRotationEquals reports whether a and b encode the same rotation,
// treating q and -q as equal. Only valid when a and b have the same norm.
func QuatFastRotationEquals(a, b []float32) bool {
	if sameStorage(a, b) {
		return !tupleIsNull(a, 4)
	}
	if tupleIsNull(a, 4) || tupleIsNull(b, 4) {
		return false
	}
	if tupleEquals(a, b, 4) {
		return true
	}
	for i := 0; i < 4; i++ {
		if Abs(b[i]+a[i]) >= Epsilon {
			return false
		}
	}
	return true
}

// QuatRotationEquals reports whether a and b encode the same rotation
// whatever their norms, treating q and -q as equal.
func QuatRotationEquals(a, b []float32) bool {
	if sameStorage(a, b) {
		return !tupleIsNull(a, 4)
	}
	na := tupleDot(a, a, 4)
	if na < Epsilon2 {
		return false
	}
	nb := tupleDot(b, b, 4)
	if nb < Epsilon2 {
		return false
	}
	dot := Abs(tupleDot(a, b, 4))
	if dot < Epsilon {
		return false
	}
	return dot/Sqrt(na*nb) > 1-Epsilon
}

// QuatConjugate writes q* = (-x, -y, -z, w) to out.
func QuatConjugate(out, q []float32) []float32 {
	out[0], out[1], out[2], out[3] = -q[0], -q[1], -q[2], q[3]
	return out
}

// QuatMultiply writes the Hamilton product a∘b: rotating by the result
// applies b first, then a.
func QuatMultiply(out, a, b []float32) []float32 {
	xa, ya, za, wa := a[0], a[1], a[2], a[3]
	xb, yb, zb, wb := b[0], b[1], b[2], b[3]
	out[0] = wa*xb + wb*xa + ya*zb - yb*za
	out[1] = wa*yb + wb*ya + za*xb - zb*xa
	out[2] = wa*zb + wb*za + xa*yb - xb*ya
	out[3] = wa*wb - xa*xb - ya*yb - za*zb
	return out
}

// QuatInvert writes q⁻¹. A null q gives (0, 0, 0, ±Inf), signed like w.
func QuatInvert(out, q []float32) []float32 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	n := x*x + y*y + z*z + w*w
	if n < Epsilon2 {
		out[0], out[1], out[2], out[3] = 0, 0, 0, signedInf(w)
		return out
	}
	n = 1 / n
	out[0], out[1], out[2], out[3] = -x*n, -y*n, -z*n, w*n
	return out
}

// QuatLog writes the logarithm of q. Degenerate inputs with a vanishing vector
// part give (0, 0, 0, ln w) for w > 0, (Pi, 0, 0, ln -w) for w < 0 and
// (0, 0, 0, -Inf) for a null q.
func QuatLog(out, q []float32) []float32 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	m := x*x + y*y + z*z
	if m < Epsilon2 {
		switch {
		case w > 0:
			out[0], out[1], out[2], out[3] = 0, 0, 0, Log(w)
		case w < 0:
			out[0], out[1], out[2], out[3] = Pi, 0, 0, Log(-w)
		default:
			out[0], out[1], out[2], out[3] = 0, 0, 0, Inf(-1)
		}
		return out
	}
	n2 := m + w*w
	m = Sqrt(m)
	theta := Atan2(m, w) / m
	out[0], out[1], out[2], out[3] = x*theta, y*theta, z*theta, 0.5*Log(n2)
	return out
}

// QuatExp writes the exponential of q.
func QuatExp(out, q []float32) []float32 {
	x, y, z := q[0], q[1], q[2]
	expW := Exp(q[3])
	m := x*x + y*y + z*z
	if m < Epsilon2 {
		out[0], out[1], out[2], out[3] = 0, 0, 0, expW
		return out
	}
	m = Sqrt(m)
	w := expW * Cos(m)
	m = expW * Sin(m) / m
	out[0], out[1], out[2], out[3] = x*m, y*m, z*m, w
	return out
}

// QuatPow writes q raised to the real power p.
func QuatPow(out, q []float32, p float32) []float32 {
	if Abs(p) < Epsilon {
		return quatSetIdentity(out)
	}
	if Abs(p-1) < Epsilon2 {
		copy(out[:4], q[:4])
		return out
	}

	x, y, z, w := q[0], q[1], q[2], q[3]
	m := x*x + y*y + z*z
	if m < Epsilon2 {
		out[0], out[1], out[2] = 0, 0, 0
		if Abs(w) < Epsilon {
			out[3] = 0
		} else {
			out[3] = Pow(w, p)
		}
		return out
	}

	n := Pow(m+w*w, 0.5*p)
	m = Sqrt(m)
	theta := p * Atan2(m, w)
	nw := n * Cos(theta)
	s := n * Sin(theta) / m
	out[0], out[1], out[2], out[3] = x*s, y*s, z*s, nw
	return out
}

// QuatTransformVec3 rotates v by the unit quaternion q (q·v·q*).
func QuatTransformVec3(out, q, v []float32) []float32 {
	vx, vy, vz := v[0], v[1], v[2]
	qx, qy, qz, qw := q[0], q[1], q[2], q[3]

	// r = v·q*
	rx := qw*vx - vy*qz + qy*vz
	ry := qw*vy - vz*qx + qz*vx
	rz := qw*vz - vx*qy + qx*vy
	rw := vx*qx + vy*qy + vz*qz

	out[0] = qw*rx + rw*qx + qy*rz - ry*qz
	out[1] = qw*ry + rw*qy + qz*rx - rz*qx
	out[2] = qw*rz + rw*qz + qx*ry - rx*qy
	return out
}

// QuatSlerp interpolates along the shortest arc between the unit quaternions
// q0 and q1, falling back to a linear blend when they are almost parallel.
func QuatSlerp(out, q0 []float32, t float32, q1 []float32) []float32 {
	x0, y0, z0, w0 := q0[0], q0[1], q0[2], q0[3]
	x1, y1, z1, w1 := q1[0], q1[1], q1[2], q1[3]
	dot := x0*x1 + y0*y1 + z0*z1 + w0*w1
	if dot < 0 {
		dot = -dot
		x1, y1, z1, w1 = -x1, -y1, -z1, -w1
	}

	if dot > 1-Epsilon {
		out[0] = x0 + t*(x1-x0)
		out[1] = y0 + t*(y1-y0)
		out[2] = z0 + t*(z1-z0)
		out[3] = w0 + t*(w1-w0)
		return out
	}

	theta := Acos(dot)
	invSin := 1 / Sin(theta)
	s0 := Sin((1-t)*theta) * invSin
	s1 := Sin(t*theta) * invSin
	out[0] = s0*x0 + s1*x1
	out[1] = s0*y0 + s1*y1
	out[2] = s0*z0 + s1*z1
	out[3] = s0*w0 + s1*w1
	return out
}

// QuatSquad interpolates between q0 and q1 using their squad intermediates s0
// and s1: slerp(slerp(q0, t, q1), 2t(1-t), slerp(s0, t, s1)).
func QuatSquad(out, s0, q0 []float32, t float32, q1, s1 []float32) []float32 {
	var tmp [4]float32
	QuatSlerp(tmp[:], s0, t, s1)
	QuatSlerp(out, q0, t, q1)
	return QuatSlerp(out, out, 2*t*(1-t), tmp[:])
}

// QuatSquadIntermediate computes the squad intermediate of q1 given its
// neighbors q0 and q2:
//
//	s1 = exp(-(log(q2·q1⁻¹) + log(q0·q1⁻¹)) / 4)·q1
//
// The result is normalized.
func QuatSquadIntermediate(out, q0, q1, q2 []float32) []float32 {
	var a, b [4]float32
	QuatInvert(b[:], q1)
	QuatMultiply(a[:], q2, b[:])
	QuatLog(a[:], a[:])
	QuatMultiply(b[:], q0, b[:])
	QuatLog(b[:], b[:])
	for i := range a {
		a[i] = -0.25 * (a[i] + b[i])
	}
	QuatExp(a[:], a[:])
	QuatMultiply(out, a[:], q1)
	return Vec4Normalize(out, out)
}

// Object API.

// Set sets q to (x, y, z, w).
func (q *Quat) Set(x, y, z, w float32) *Quat {
	q[0], q[1], q[2], q[3] = x, y, z, w
	return q
}

// SetFromSlice copies the first four elements of s.
func (q *Quat) SetFromSlice(s []float32) *Quat {
	copy(q[:], s[:4])
	return q
}

// SetIdentity resets q to the identity rotation.
func (q *Quat) SetIdentity() *Quat { *q = QuatIdentity(); return q }

// Copy sets q to o.
func (q *Quat) Copy(o *Quat) *Quat {
	*q = *o
	return q
}

// SetFromAxisAndAngle sets q to the rotation of angle radians around axis.
func (q *Quat) SetFromAxisAndAngle(axis *Vec3, angle float32) *Quat {
	QuatSetFromAxisAndAngle(q[:], axis[:], angle)
	return q
}

// SetFromRotationTo sets q to the shortest rotation taking start onto end.
func (q *Quat) SetFromRotationTo(start, end *Vec3) *Quat {
	QuatSetFromRotationTo(q[:], start[:], end[:])
	return q
}

// SetFromRotationMat3 sets q from a pure rotation matrix.
func (q *Quat) SetFromRotationMat3(m *Mat3) *Quat {
	QuatSetFromRotationMat3(q[:], m[:])
	return q
}

// SetFromRotationMat4 sets q from the rotation block of m.
func (q *Quat) SetFromRotationMat4(m *Mat4) *Quat {
	QuatSetFromRotationMat4(q[:], m[:])
	return q
}

// AxisAndAngle writes the rotation axis to outAxis and returns the angle.
func (q *Quat) AxisAndAngle(outAxis *Vec3) float32 {
	return QuatAxisAndAngle(outAxis[:], q[:])
}

// IsNull reports whether q is null.
func (q *Quat) IsNull() bool { return QuatIsNull(q[:]) }

// IsIdentity reports whether q is the identity rotation.
func (q *Quat) IsIdentity() bool { return QuatIsIdentity(q[:]) }

// Equals reports whether q and o match within Epsilon.
func (q *Quat) Equals(o *Quat) bool { return QuatEquals(q[:], o[:]) }

// FastRotationEquals is QuatFastRotationEquals applied to q and o.
func (q *Quat) FastRotationEquals(o *Quat) bool { return QuatFastRotationEquals(q[:], o[:]) }

// RotationEquals reports whether q and o encode the same rotation.
func (q *Quat) RotationEquals(o *Quat) bool { return QuatRotationEquals(q[:], o[:]) }

// Scale sets q to s·o.
func (q *Quat) Scale(s float32, o *Quat) *Quat { QuatScale(q[:], s, o[:]); return q }

// ScaleInPlace multiplies q by s.
func (q *Quat) ScaleInPlace(s float32) *Quat { QuatScale(q[:], s, q[:]); return q }

// Negate sets q to -o.
func (q *Quat) Negate(o *Quat) *Quat { QuatNegate(q[:], o[:]); return q }

// NegateInPlace negates q.
func (q *Quat) NegateInPlace() *Quat { QuatNegate(q[:], q[:]); return q }

// Conjugate sets q to o*.
func (q *Quat) Conjugate(o *Quat) *Quat { QuatConjugate(q[:], o[:]); return q }

// ConjugateInPlace conjugates q.
func (q *Quat) ConjugateInPlace() *Quat { QuatConjugate(q[:], q[:]); return q }

// Multiply sets q to a∘b.
func (q *Quat) Multiply(a, b *Quat) *Quat { QuatMultiply(q[:], a[:], b[:]); return q }

// MultiplyInPlace sets q to q∘o.
func (q *Quat) MultiplyInPlace(o *Quat) *Quat { QuatMultiply(q[:], q[:], o[:]); return q }

// Invert sets q to o⁻¹.
func (q *Quat) Invert(o *Quat) *Quat { QuatInvert(q[:], o[:]); return q }

// InvertInPlace inverts q.
func (q *Quat) InvertInPlace() *Quat { QuatInvert(q[:], q[:]); return q }

// SquareNorm returns |q|².
func (q *Quat) SquareNorm() float32 { return QuatSquareNorm(q[:]) }

// Norm returns |q|.
func (q *Quat) Norm() float32 { return QuatNorm(q[:]) }

// Dot returns q·o.
func (q *Quat) Dot(o *Quat) float32 { return QuatDot(q[:], o[:]) }

// Normalize sets q to o/|o|.
func (q *Quat) Normalize(o *Quat) *Quat { QuatNormalize(q[:], o[:]); return q }

// NormalizeInPlace scales q to unit length.
func (q *Quat) NormalizeInPlace() *Quat { QuatNormalize(q[:], q[:]); return q }

// Log sets q to log(o).
func (q *Quat) Log(o *Quat) *Quat { QuatLog(q[:], o[:]); return q }

// LogInPlace replaces q by its logarithm.
func (q *Quat) LogInPlace() *Quat { QuatLog(q[:], q[:]); return q }

// Exp sets q to exp(o).
func (q *Quat) Exp(o *Quat) *Quat { QuatExp(q[:], o[:]); return q }

// ExpInPlace replaces q by its exponential.
func (q *Quat) ExpInPlace() *Quat { QuatExp(q[:], q[:]); return q }

// Pow sets q to o raised to p.
func (q *Quat) Pow(o *Quat, p float32) *Quat { QuatPow(q[:], o[:], p); return q }

// PowInPlace raises q to p.
func (q *Quat) PowInPlace(p float32) *Quat { QuatPow(q[:], q[:], p); return q }

// TransformVec3 writes in rotated by q to out and returns out. q must be a
// unit quaternion.
func (q *Quat) TransformVec3(out, in *Vec3) *Vec3 {
	QuatTransformVec3(out[:], q[:], in[:])
	return out
}

// TransformVec3InPlace rotates v by q.
func (q *Quat) TransformVec3InPlace(v *Vec3) *Vec3 {
	QuatTransformVec3(v[:], q[:], v[:])
	return v
}

// Lerp is a component-wise blend; the result is not renormalized.
func (q *Quat) Lerp(q0 *Quat, t float32, q1 *Quat) *Quat {
	QuatLerp(q[:], q0[:], t, q1[:])
	return q
}

// Slerp sets q to QuatSlerp(q0, t, q1).
func (q *Quat) Slerp(q0 *Quat, t float32, q1 *Quat) *Quat {
	QuatSlerp(q[:], q0[:], t, q1[:])
	return q
}

// Squad sets q to QuatSquad(s0, q0, t, q1, s1).
func (q *Quat) Squad(s0, q0 *Quat, t float32, q1, s1 *Quat) *Quat {
	QuatSquad(q[:], s0[:], q0[:], t, q1[:], s1[:])
	return q
}

// SquadIntermediate sets q to the squad intermediate of q1 between q0 and q2.
func (q *Quat) SquadIntermediate(q0, q1, q2 *Quat) *Quat {
	QuatSquadIntermediate(q[:], q0[:], q1[:], q2[:])
	return q
}
