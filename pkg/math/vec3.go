package math

// Vec3 is a 3D vector. The zero value is the null vector.
type Vec3 [3]float32

// Unit vectors.
var (
	Vec3I = Vec3{1, 0, 0}
	Vec3J = Vec3{0, 1, 0}
	Vec3K = Vec3{0, 0, 1}
)

// NewVec3Buffer allocates zeroed storage for n Vec3 values.
func NewVec3Buffer(n int) []float32 {
	return make([]float32, 3*n)
}

// Buffer functions.

// Vec3Set sets out to (x, y, z).
func Vec3Set(out []float32, x, y, z float32) []float32 {
	out[0], out[1], out[2] = x, y, z
	return out
}

// Vec3IsNull reports whether every component of v is within Epsilon of 0.
func Vec3IsNull(v []float32) bool { return tupleIsNull(v, 3) }

// Vec3Equals reports whether a and b match component-wise within Epsilon.
func Vec3Equals(a, b []float32) bool { return tupleEquals(a, b, 3) }

// Vec3Add writes a + b to out.
func Vec3Add(out, a, b []float32) []float32 { return tupleAdd(out, a, b, 3) }

// Vec3Sub writes a - b to out.
func Vec3Sub(out, a, b []float32) []float32 { return tupleSub(out, a, b, 3) }

// Vec3Scale writes s·v to out.
func Vec3Scale(out []float32, s float32, v []float32) []float32 {
	return tupleScale(out, s, v, 3)
}

// Vec3AddScaled writes a + s·b to out.
func Vec3AddScaled(out, a []float32, s float32, b []float32) []float32 {
	return tupleAddScaled(out, a, s, b, 3)
}

// Vec3Negate writes -v to out.
func Vec3Negate(out, v []float32) []float32 { return tupleNegate(out, v, 3) }

// Vec3Dot returns a·b.
func Vec3Dot(a, b []float32) float32 { return tupleDot(a, b, 3) }

// Vec3SquareNorm returns |v|².
func Vec3SquareNorm(v []float32) float32 { return tupleDot(v, v, 3) }

// Vec3Norm returns |v|.
func Vec3Norm(v []float32) float32 { return Sqrt(tupleDot(v, v, 3)) }

// Vec3SquareDistance returns |b - a|².
func Vec3SquareDistance(a, b []float32) float32 { return tupleSquareDistance(a, b, 3) }

// Vec3Distance returns |b - a|.
func Vec3Distance(a, b []float32) float32 { return Sqrt(tupleSquareDistance(a, b, 3)) }

// Vec3Normalize writes v/|v| to out, or the null vector when v is too short.
func Vec3Normalize(out, v []float32) []float32 { return tupleNormalize(out, v, 3) }

// Vec3Cross writes a × b to out. out may alias a or b.
func Vec3Cross(out, a, b []float32) []float32 {
	xa, ya, za := a[0], a[1], a[2]
	xb, yb, zb := b[0], b[1], b[2]
	out[0] = ya*zb - za*yb
	out[1] = za*xb - xa*zb
	out[2] = xa*yb - ya*xb
	return out
}

// Vec3ShortestAngle returns the unsigned angle in [0, Pi] between a and b, or 0
// when either is null.
func Vec3ShortestAngle(a, b []float32) float32 {
	na := tupleDot(a, a, 3)
	if na < Epsilon2 {
		return 0
	}
	nb := tupleDot(b, b, 3)
	if nb < Epsilon2 {
		return 0
	}
	return angleFromDot(tupleDot(a, b, 3), na, nb)
}

// Vec3ArePerpendicular reports whether a and b are non-null and orthogonal.
func Vec3ArePerpendicular(a, b []float32) bool {
	return !tupleIsNull(a, 3) && !tupleIsNull(b, 3) && Abs(tupleDot(a, b, 3)) < Epsilon
}

// Vec3AreColinear reports whether a and b are non-null and parallel or opposite.
func Vec3AreColinear(a, b []float32) bool {
	if tupleIsNull(a, 3) || tupleIsNull(b, 3) {
		return false
	}
	return Abs(a[1]*b[2]-b[1]*a[2]) < Epsilon &&
		Abs(a[2]*b[0]-b[2]*a[0]) < Epsilon &&
		Abs(a[0]*b[1]-b[0]*a[1]) < Epsilon
}

// Vec3Linear interpolates linearly from p0 (t = 0) to p1 (t = 1).
func Vec3Linear(out, p0 []float32, t float32, p1 []float32) []float32 {
	return tupleLinear(out, p0, t, p1, 3)
}

// Vec3Quadratic evaluates the parabola through p0 (t = -1), p1 (t = 0) and p2 (t = 1).
func Vec3Quadratic(out, p0, p1 []float32, t float32, p2 []float32) []float32 {
	return tupleBlend3(out, quadraticWeights(t), p0, p1, p2, 3)
}

// Vec3Hermite evaluates the Hermite curve from p0 to p1 with tangents tan0 and tan1.
func Vec3Hermite(out, tan0, p0 []float32, t float32, p1, tan1 []float32) []float32 {
	return tupleBlend4(out, hermiteWeights(t), tan0, p0, p1, tan1, 3)
}

// Vec3Bezier evaluates the cubic Bezier curve from p0 to p1 with control
// points ctrl0 and ctrl1.
func Vec3Bezier(out, ctrl0, p0 []float32, t float32, p1, ctrl1 []float32) []float32 {
	return tupleBlend4(out, bezierWeights(t), ctrl0, p0, p1, ctrl1, 3)
}

// Vec3CatmullRom evaluates the Catmull-Rom spline between p1 and p2 at t.
func Vec3CatmullRom(out, p0, p1 []float32, t float32, p2, p3 []float32) []float32 {
	return tupleBlend4(out, catmullRomWeights(t), p0, p1, p2, p3, 3)
}

// Object API.

// Set sets v to (x, y, z).
func (v *Vec3) Set(x, y, z float32) *Vec3 {
	v[0], v[1], v[2] = x, y, z
	return v
}

// SetFromSlice copies the first three elements of s.
func (v *Vec3) SetFromSlice(s []float32) *Vec3 {
	copy(v[:], s[:3])
	return v
}

// SetFromVec2Pos sets v to the homogeneous point (p.x, p.y, 1).
func (v *Vec3) SetFromVec2Pos(p *Vec2) *Vec3 {
	v[0], v[1], v[2] = p[0], p[1], 1
	return v
}

// SetFromVec2Dir sets v to the homogeneous direction (d.x, d.y, 0).
func (v *Vec3) SetFromVec2Dir(d *Vec2) *Vec3 {
	v[0], v[1], v[2] = d[0], d[1], 0
	return v
}

// SetNull zeroes v.
func (v *Vec3) SetNull() *Vec3 { *v = Vec3{}; return v }

// SetOne sets v to (1, 1, 1).
func (v *Vec3) SetOne() *Vec3 { *v = Vec3{1, 1, 1}; return v }

// Copy sets v to o.
func (v *Vec3) Copy(o *Vec3) *Vec3 {
	*v = *o
	return v
}

// IsNull reports whether v is null; see Vec3IsNull.
func (v *Vec3) IsNull() bool { return Vec3IsNull(v[:]) }

// Equals reports whether v and o match within Epsilon.
func (v *Vec3) Equals(o *Vec3) bool { return Vec3Equals(v[:], o[:]) }

// Add sets v to a + b.
func (v *Vec3) Add(a, b *Vec3) *Vec3 { Vec3Add(v[:], a[:], b[:]); return v }

// AddInPlace adds o to v.
func (v *Vec3) AddInPlace(o *Vec3) *Vec3 { Vec3Add(v[:], v[:], o[:]); return v }

// Sub sets v to a - b.
func (v *Vec3) Sub(a, b *Vec3) *Vec3 { Vec3Sub(v[:], a[:], b[:]); return v }

// SubInPlace subtracts o from v.
func (v *Vec3) SubInPlace(o *Vec3) *Vec3 { Vec3Sub(v[:], v[:], o[:]); return v }

// Scale sets v to s·o.
func (v *Vec3) Scale(s float32, o *Vec3) *Vec3 { Vec3Scale(v[:], s, o[:]); return v }

// ScaleInPlace multiplies v by s.
func (v *Vec3) ScaleInPlace(s float32) *Vec3 { Vec3Scale(v[:], s, v[:]); return v }

// AddScaled sets v to a + s*b.
func (v *Vec3) AddScaled(a *Vec3, s float32, b *Vec3) *Vec3 {
	Vec3AddScaled(v[:], a[:], s, b[:])
	return v
}

// AddScaledInPlace adds s·o to v.
func (v *Vec3) AddScaledInPlace(s float32, o *Vec3) *Vec3 {
	Vec3AddScaled(v[:], v[:], s, o[:])
	return v
}

// Negate sets v to -o.
func (v *Vec3) Negate(o *Vec3) *Vec3 { Vec3Negate(v[:], o[:]); return v }

// NegateInPlace negates v.
func (v *Vec3) NegateInPlace() *Vec3 { Vec3Negate(v[:], v[:]); return v }

// SquareNorm returns |v|².
func (v *Vec3) SquareNorm() float32 { return Vec3SquareNorm(v[:]) }

// Norm returns |v|.
func (v *Vec3) Norm() float32 { return Vec3Norm(v[:]) }

// SquareDistance returns |o - v|².
func (v *Vec3) SquareDistance(o *Vec3) float32 { return Vec3SquareDistance(v[:], o[:]) }

// Distance returns |o - v|.
func (v *Vec3) Distance(o *Vec3) float32 { return Vec3Distance(v[:], o[:]) }

// Dot returns v·o.
func (v *Vec3) Dot(o *Vec3) float32 { return Vec3Dot(v[:], o[:]) }

// Normalize sets v to o scaled to unit length, or to the null vector when o is
// (almost) null.
func (v *Vec3) Normalize(o *Vec3) *Vec3 { Vec3Normalize(v[:], o[:]); return v }

// NormalizeInPlace scales v to unit length.
func (v *Vec3) NormalizeInPlace() *Vec3 { Vec3Normalize(v[:], v[:]); return v }

// Cross sets v to a × b.
func (v *Vec3) Cross(a, b *Vec3) *Vec3 { Vec3Cross(v[:], a[:], b[:]); return v }

// CrossInPlace sets v to v × o.
func (v *Vec3) CrossInPlace(o *Vec3) *Vec3 { Vec3Cross(v[:], v[:], o[:]); return v }

// ShortestAngle returns the unsigned angle between v and o.
func (v *Vec3) ShortestAngle(o *Vec3) float32 { return Vec3ShortestAngle(v[:], o[:]) }

// IsPerpendicular reports whether v and o are orthogonal.
func (v *Vec3) IsPerpendicular(o *Vec3) bool { return Vec3ArePerpendicular(v[:], o[:]) }

// IsColinear reports whether v and o are colinear.
func (v *Vec3) IsColinear(o *Vec3) bool { return Vec3AreColinear(v[:], o[:]) }

// Linear sets v to Vec3Linear(p0, t, p1).
func (v *Vec3) Linear(p0 *Vec3, t float32, p1 *Vec3) *Vec3 {
	Vec3Linear(v[:], p0[:], t, p1[:])
	return v
}

// Quadratic sets v to Vec3Quadratic(p0, p1, t, p2).
func (v *Vec3) Quadratic(p0, p1 *Vec3, t float32, p2 *Vec3) *Vec3 {
	Vec3Quadratic(v[:], p0[:], p1[:], t, p2[:])
	return v
}

// Hermite sets v to Vec3Hermite(tan0, p0, t, p1, tan1).
func (v *Vec3) Hermite(tan0, p0 *Vec3, t float32, p1, tan1 *Vec3) *Vec3 {
	Vec3Hermite(v[:], tan0[:], p0[:], t, p1[:], tan1[:])
	return v
}

// Bezier sets v to Vec3Bezier(ctrl0, p0, t, p1, ctrl1).
func (v *Vec3) Bezier(ctrl0, p0 *Vec3, t float32, p1, ctrl1 *Vec3) *Vec3 {
	Vec3Bezier(v[:], ctrl0[:], p0[:], t, p1[:], ctrl1[:])
	return v
}

// CatmullRom sets v to Vec3CatmullRom(p0, p1, t, p2, p3).
func (v *Vec3) CatmullRom(p0, p1 *Vec3, t float32, p2, p3 *Vec3) *Vec3 {
	Vec3CatmullRom(v[:], p0[:], p1[:], t, p2[:], p3[:])
	return v
}
