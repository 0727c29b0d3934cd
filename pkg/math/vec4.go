package math

// Vec4 is a 4D vector, typically a homogeneous point or direction. The zero
// value is the null vector.
type Vec4 [4]float32

// NewVec4Buffer allocates zeroed storage for n Vec4 values.
func NewVec4Buffer(n int) []float32 {
	return make([]float32, 4*n)
}

// Buffer functions. Quat reuses these for its 4-tuple arithmetic.

// Vec4Set sets out to (x, y, z, w).
func Vec4Set(out []float32, x, y, z, w float32) []float32 {
	out[0], out[1], out[2], out[3] = x, y, z, w
	return out
}

// Vec4IsNull reports whether every component of v is within Epsilon of 0.
func Vec4IsNull(v []float32) bool { return tupleIsNull(v, 4) }

// Vec4Equals reports whether a and b match component-wise within Epsilon.
func Vec4Equals(a, b []float32) bool { return tupleEquals(a, b, 4) }

// Vec4Add writes a + b to out.
func Vec4Add(out, a, b []float32) []float32 { return tupleAdd(out, a, b, 4) }

// Vec4Sub writes a - b to out.
func Vec4Sub(out, a, b []float32) []float32 { return tupleSub(out, a, b, 4) }

// Vec4Scale writes s·v to out.
func Vec4Scale(out []float32, s float32, v []float32) []float32 {
	return tupleScale(out, s, v, 4)
}

// Vec4AddScaled writes a + s·b to out.
func Vec4AddScaled(out, a []float32, s float32, b []float32) []float32 {
	return tupleAddScaled(out, a, s, b, 4)
}

// Vec4Negate writes -v to out.
func Vec4Negate(out, v []float32) []float32 { return tupleNegate(out, v, 4) }

// Vec4Dot returns a·b.
func Vec4Dot(a, b []float32) float32 { return tupleDot(a, b, 4) }

// Vec4SquareNorm returns |v|².
func Vec4SquareNorm(v []float32) float32 { return tupleDot(v, v, 4) }

// Vec4Norm returns |v|.
func Vec4Norm(v []float32) float32 { return Sqrt(tupleDot(v, v, 4)) }

// Vec4SquareDistance returns |b - a|².
func Vec4SquareDistance(a, b []float32) float32 { return tupleSquareDistance(a, b, 4) }

// Vec4Distance returns |b - a|.
func Vec4Distance(a, b []float32) float32 { return Sqrt(tupleSquareDistance(a, b, 4)) }

// Vec4Normalize writes v/|v| to out, or the null vector when v is too short.
func Vec4Normalize(out, v []float32) []float32 { return tupleNormalize(out, v, 4) }

// Vec4Linear interpolates linearly from p0 (t = 0) to p1 (t = 1).
func Vec4Linear(out, p0 []float32, t float32, p1 []float32) []float32 {
	return tupleLinear(out, p0, t, p1, 4)
}

// Vec4Quadratic evaluates the parabola through p0 (t = -1), p1 (t = 0) and p2 (t = 1).
func Vec4Quadratic(out, p0, p1 []float32, t float32, p2 []float32) []float32 {
	return tupleBlend3(out, quadraticWeights(t), p0, p1, p2, 4)
}

// Vec4Hermite evaluates the Hermite curve from p0 to p1 with tangents tan0 and tan1.
func Vec4Hermite(out, tan0, p0 []float32, t float32, p1, tan1 []float32) []float32 {
	return tupleBlend4(out, hermiteWeights(t), tan0, p0, p1, tan1, 4)
}

// Vec4Bezier evaluates the cubic Bezier curve from p0 to p1 with control
// points ctrl0 and ctrl1.
func Vec4Bezier(out, ctrl0, p0 []float32, t float32, p1, ctrl1 []float32) []float32 {
	return tupleBlend4(out, bezierWeights(t), ctrl0, p0, p1, ctrl1, 4)
}

// Vec4CatmullRom evaluates the Catmull-Rom spline between p1 and p2 at t.
func Vec4CatmullRom(out, p0, p1 []float32, t float32, p2, p3 []float32) []float32 {
	return tupleBlend4(out, catmullRomWeights(t), p0, p1, p2, p3, 4)
}

// Object API.

// Set sets v to (x, y, z, w).
func (v *Vec4) Set(x, y, z, w float32) *Vec4 {
	v[0], v[1], v[2], v[3] = x, y, z, w
	return v
}

// SetFromSlice copies the first four elements of s.
func (v *Vec4) SetFromSlice(s []float32) *Vec4 {
	copy(v[:], s[:4])
	return v
}

// SetFromVec3Pos sets v to the homogeneous point (p, 1).
func (v *Vec4) SetFromVec3Pos(p *Vec3) *Vec4 {
	v[0], v[1], v[2], v[3] = p[0], p[1], p[2], 1
	return v
}

// SetFromVec3Dir sets v to the homogeneous direction (d, 0).
func (v *Vec4) SetFromVec3Dir(d *Vec3) *Vec4 {
	v[0], v[1], v[2], v[3] = d[0], d[1], d[2], 0
	return v
}

// SetNull zeroes v.
func (v *Vec4) SetNull() *Vec4 { *v = Vec4{}; return v }

// SetOne sets v to (1, 1, 1, 1).
func (v *Vec4) SetOne() *Vec4 { *v = Vec4{1, 1, 1, 1}; return v }

// Copy sets v to o.
func (v *Vec4) Copy(o *Vec4) *Vec4 {
	*v = *o
	return v
}

// IsNull reports whether v is null; see Vec4IsNull.
func (v *Vec4) IsNull() bool { return Vec4IsNull(v[:]) }

// Equals reports whether v and o match within Epsilon.
func (v *Vec4) Equals(o *Vec4) bool { return Vec4Equals(v[:], o[:]) }

// Add sets v to a + b.
func (v *Vec4) Add(a, b *Vec4) *Vec4 { Vec4Add(v[:], a[:], b[:]); return v }

// AddInPlace adds o to v.
func (v *Vec4) AddInPlace(o *Vec4) *Vec4 { Vec4Add(v[:], v[:], o[:]); return v }

// Sub sets v to a - b.
func (v *Vec4) Sub(a, b *Vec4) *Vec4 { Vec4Sub(v[:], a[:], b[:]); return v }

// SubInPlace subtracts o from v.
func (v *Vec4) SubInPlace(o *Vec4) *Vec4 { Vec4Sub(v[:], v[:], o[:]); return v }

// Scale sets v to s·o.
func (v *Vec4) Scale(s float32, o *Vec4) *Vec4 { Vec4Scale(v[:], s, o[:]); return v }

// ScaleInPlace multiplies v by s.
func (v *Vec4) ScaleInPlace(s float32) *Vec4 { Vec4Scale(v[:], s, v[:]); return v }

// AddScaled sets v to a + s*b.
func (v *Vec4) AddScaled(a *Vec4, s float32, b *Vec4) *Vec4 {
	Vec4AddScaled(v[:], a[:], s, b[:])
	return v
}

// AddScaledInPlace adds s·o to v.
func (v *Vec4) AddScaledInPlace(s float32, o *Vec4) *Vec4 {
	Vec4AddScaled(v[:], v[:], s, o[:])
	return v
}

// Negate sets v to -o.
func (v *Vec4) Negate(o *Vec4) *Vec4 { Vec4Negate(v[:], o[:]); return v }

// NegateInPlace negates v.
func (v *Vec4) NegateInPlace() *Vec4 { Vec4Negate(v[:], v[:]); return v }

// SquareNorm returns |v|².
func (v *Vec4) SquareNorm() float32 { return Vec4SquareNorm(v[:]) }

// Norm returns |v|.
func (v *Vec4) Norm() float32 { return Vec4Norm(v[:]) }

// SquareDistance returns |o - v|².
func (v *Vec4) SquareDistance(o *Vec4) float32 { return Vec4SquareDistance(v[:], o[:]) }

// Distance returns |o - v|.
func (v *Vec4) Distance(o *Vec4) float32 { return Vec4Distance(v[:], o[:]) }

// Dot returns v·o.
func (v *Vec4) Dot(o *Vec4) float32 { return Vec4Dot(v[:], o[:]) }

// Normalize sets v to o/|o|; see Vec4Normalize.
func (v *Vec4) Normalize(o *Vec4) *Vec4 { Vec4Normalize(v[:], o[:]); return v }

// NormalizeInPlace scales v to unit length.
func (v *Vec4) NormalizeInPlace() *Vec4 { Vec4Normalize(v[:], v[:]); return v }

// Linear sets v to Vec4Linear(p0, t, p1).
func (v *Vec4) Linear(p0 *Vec4, t float32, p1 *Vec4) *Vec4 {
	Vec4Linear(v[:], p0[:], t, p1[:])
	return v
}

// Quadratic sets v to Vec4Quadratic(p0, p1, t, p2).
func (v *Vec4) Quadratic(p0, p1 *Vec4, t float32, p2 *Vec4) *Vec4 {
	Vec4Quadratic(v[:], p0[:], p1[:], t, p2[:])
	return v
}

// Hermite sets v to Vec4Hermite(tan0, p0, t, p1, tan1).
func (v *Vec4) Hermite(tan0, p0 *Vec4, t float32, p1, tan1 *Vec4) *Vec4 {
	Vec4Hermite(v[:], tan0[:], p0[:], t, p1[:], tan1[:])
	return v
}

// Bezier sets v to Vec4Bezier(ctrl0, p0, t, p1, ctrl1).
func (v *Vec4) Bezier(ctrl0, p0 *Vec4, t float32, p1, ctrl1 *Vec4) *Vec4 {
	Vec4Bezier(v[:], ctrl0[:], p0[:], t, p1[:], ctrl1[:])
	return v
}

// CatmullRom sets v to Vec4CatmullRom(p0, p1, t, p2, p3).
func (v *Vec4) CatmullRom(p0, p1 *Vec4, t float32, p2, p3 *Vec4) *Vec4 {
	Vec4CatmullRom(v[:], p0[:], p1[:], t, p2[:], p3[:])
	return v
}
