package math

// Vec2 is a 2D vector. The zero value is the null vector.
type Vec2 [2]float32

// Unit vectors.
var (
	Vec2I = Vec2{1, 0}
	Vec2J = Vec2{0, 1}
)

// NewVec2Buffer allocates zeroed storage for n Vec2 values.
func NewVec2Buffer(n int) []float32 {
	return make([]float32, 2*n)
}

// Buffer functions.

// Vec2Set sets out to (x, y).
func Vec2Set(out []float32, x, y float32) []float32 {
	out[0], out[1] = x, y
	return out
}

// Vec2IsNull reports whether every component of v is within Epsilon of 0.
func Vec2IsNull(v []float32) bool { return tupleIsNull(v, 2) }

// Vec2Equals reports whether a and b match component-wise within Epsilon.
func Vec2Equals(a, b []float32) bool { return tupleEquals(a, b, 2) }

// Vec2Add writes a + b to out.
func Vec2Add(out, a, b []float32) []float32 { return tupleAdd(out, a, b, 2) }

// Vec2Sub writes a - b to out.
func Vec2Sub(out, a, b []float32) []float32 { return tupleSub(out, a, b, 2) }

// Vec2Scale writes s·v to out.
func Vec2Scale(out []float32, s float32, v []float32) []float32 {
	return tupleScale(out, s, v, 2)
}

// Vec2AddScaled writes a + s·b to out.
func Vec2AddScaled(out, a []float32, s float32, b []float32) []float32 {
	return tupleAddScaled(out, a, s, b, 2)
}

// Vec2Negate writes -v to out.
func Vec2Negate(out, v []float32) []float32 { return tupleNegate(out, v, 2) }

// Vec2Dot returns a·b.
func Vec2Dot(a, b []float32) float32 { return tupleDot(a, b, 2) }

// Vec2SquareNorm returns |v|².
func Vec2SquareNorm(v []float32) float32 { return tupleDot(v, v, 2) }

// Vec2Norm returns |v|.
func Vec2Norm(v []float32) float32 { return Sqrt(tupleDot(v, v, 2)) }

// Vec2SquareDistance returns |b - a|².
func Vec2SquareDistance(a, b []float32) float32 { return tupleSquareDistance(a, b, 2) }

// Vec2Distance returns |b - a|.
func Vec2Distance(a, b []float32) float32 { return Sqrt(tupleSquareDistance(a, b, 2)) }

// Vec2Normalize writes v/|v| to out, or the null vector when v is too short.
func Vec2Normalize(out, v []float32) []float32 { return tupleNormalize(out, v, 2) }

// Vec2ShortestAngle returns the unsigned angle in [0, Pi] between a and b, or 0
// when either is null.
func Vec2ShortestAngle(a, b []float32) float32 {
	na := a[0]*a[0] + a[1]*a[1]
	if na < Epsilon2 {
		return 0
	}
	nb := b[0]*b[0] + b[1]*b[1]
	if nb < Epsilon2 {
		return 0
	}
	return angleFromDot(a[0]*b[0]+a[1]*b[1], na, nb)
}

// angleFromDot turns a dot product and the squared norms of its operands into
// an angle, snapping near-aligned cosines to 0 or Pi.
func angleFromDot(dot, na, nb float32) float32 {
	if Abs(dot) < Epsilon {
		return HalfPi
	}
	dot /= Sqrt(na * nb)
	switch {
	case dot > 1-Epsilon:
		return 0
	case dot < Epsilon-1:
		return Pi
	}
	return Acos(dot)
}

// Vec2ArePerpendicular reports whether a and b are non-null and orthogonal.
func Vec2ArePerpendicular(a, b []float32) bool {
	return !tupleIsNull(a, 2) && !tupleIsNull(b, 2) && Abs(a[0]*b[0]+a[1]*b[1]) < Epsilon
}

// Vec2AreColinear reports whether a and b are non-null and parallel or opposite.
func Vec2AreColinear(a, b []float32) bool {
	return !tupleIsNull(a, 2) && !tupleIsNull(b, 2) && Abs(a[0]*b[1]-b[0]*a[1]) < Epsilon
}

// Vec2Linear interpolates linearly from p0 (t = 0) to p1 (t = 1).
func Vec2Linear(out, p0 []float32, t float32, p1 []float32) []float32 {
	return tupleLinear(out, p0, t, p1, 2)
}

// Vec2Quadratic evaluates the parabola through p0 (t = -1), p1 (t = 0) and p2 (t = 1).
func Vec2Quadratic(out, p0, p1 []float32, t float32, p2 []float32) []float32 {
	return tupleBlend3(out, quadraticWeights(t), p0, p1, p2, 2)
}

// Vec2Hermite evaluates the Hermite curve from p0 to p1 with tangents tan0 and tan1.
func Vec2Hermite(out, tan0, p0 []float32, t float32, p1, tan1 []float32) []float32 {
	return tupleBlend4(out, hermiteWeights(t), tan0, p0, p1, tan1, 2)
}

// Vec2Bezier evaluates the cubic Bezier curve from p0 to p1 with control
// points ctrl0 and ctrl1.
func Vec2Bezier(out, ctrl0, p0 []float32, t float32, p1, ctrl1 []float32) []float32 {
	return tupleBlend4(out, bezierWeights(t), ctrl0, p0, p1, ctrl1, 2)
}

// Vec2CatmullRom evaluates the Catmull-Rom spline between p1 and p2 at t.
func Vec2CatmullRom(out, p0, p1 []float32, t float32, p2, p3 []float32) []float32 {
	return tupleBlend4(out, catmullRomWeights(t), p0, p1, p2, p3, 2)
}

// Object API.

// Set sets v to (x, y).
func (v *Vec2) Set(x, y float32) *Vec2 {
	v[0], v[1] = x, y
	return v
}

// SetFromSlice copies the first two elements of s.
func (v *Vec2) SetFromSlice(s []float32) *Vec2 {
	copy(v[:], s[:2])
	return v
}

// SetNull zeroes v.
func (v *Vec2) SetNull() *Vec2 { *v = Vec2{}; return v }

// SetOne sets v to (1, 1).
func (v *Vec2) SetOne() *Vec2 { *v = Vec2{1, 1}; return v }

// Copy sets v to o.
func (v *Vec2) Copy(o *Vec2) *Vec2 {
	*v = *o
	return v
}

// IsNull reports whether v is null; see Vec2IsNull.
func (v *Vec2) IsNull() bool { return Vec2IsNull(v[:]) }

// Equals reports whether v and o match within Epsilon.
func (v *Vec2) Equals(o *Vec2) bool { return Vec2Equals(v[:], o[:]) }

// Add sets v to a + b.
func (v *Vec2) Add(a, b *Vec2) *Vec2 { Vec2Add(v[:], a[:], b[:]); return v }

// AddInPlace adds o to v.
func (v *Vec2) AddInPlace(o *Vec2) *Vec2 { Vec2Add(v[:], v[:], o[:]); return v }

// Sub sets v to a - b.
func (v *Vec2) Sub(a, b *Vec2) *Vec2 { Vec2Sub(v[:], a[:], b[:]); return v }

// SubInPlace subtracts o from v.
func (v *Vec2) SubInPlace(o *Vec2) *Vec2 { Vec2Sub(v[:], v[:], o[:]); return v }

// Scale sets v to s·o.
func (v *Vec2) Scale(s float32, o *Vec2) *Vec2 { Vec2Scale(v[:], s, o[:]); return v }

// ScaleInPlace multiplies v by s.
func (v *Vec2) ScaleInPlace(s float32) *Vec2 { Vec2Scale(v[:], s, v[:]); return v }

// AddScaled sets v to a + s*b.
func (v *Vec2) AddScaled(a *Vec2, s float32, b *Vec2) *Vec2 {
	Vec2AddScaled(v[:], a[:], s, b[:])
	return v
}

// AddScaledInPlace adds s·o to v.
func (v *Vec2) AddScaledInPlace(s float32, o *Vec2) *Vec2 {
	Vec2AddScaled(v[:], v[:], s, o[:])
	return v
}

// Negate sets v to -o.
func (v *Vec2) Negate(o *Vec2) *Vec2 { Vec2Negate(v[:], o[:]); return v }

// NegateInPlace negates v.
func (v *Vec2) NegateInPlace() *Vec2 { Vec2Negate(v[:], v[:]); return v }

// SquareNorm returns |v|².
func (v *Vec2) SquareNorm() float32 { return Vec2SquareNorm(v[:]) }

// Norm returns |v|.
func (v *Vec2) Norm() float32 { return Vec2Norm(v[:]) }

// SquareDistance returns |o - v|².
func (v *Vec2) SquareDistance(o *Vec2) float32 { return Vec2SquareDistance(v[:], o[:]) }

// Distance returns |o - v|.
func (v *Vec2) Distance(o *Vec2) float32 { return Vec2Distance(v[:], o[:]) }

// Dot returns v·o.
func (v *Vec2) Dot(o *Vec2) float32 { return Vec2Dot(v[:], o[:]) }

// Normalize sets v to o scaled to unit length, or to the null vector when o is
// (almost) null.
func (v *Vec2) Normalize(o *Vec2) *Vec2 { Vec2Normalize(v[:], o[:]); return v }

// NormalizeInPlace scales v to unit length.
func (v *Vec2) NormalizeInPlace() *Vec2 { Vec2Normalize(v[:], v[:]); return v }

// ShortestAngle returns the unsigned angle between v and o.
func (v *Vec2) ShortestAngle(o *Vec2) float32 { return Vec2ShortestAngle(v[:], o[:]) }

// IsPerpendicular reports whether v and o are orthogonal.
func (v *Vec2) IsPerpendicular(o *Vec2) bool { return Vec2ArePerpendicular(v[:], o[:]) }

// IsColinear reports whether v and o are colinear.
func (v *Vec2) IsColinear(o *Vec2) bool { return Vec2AreColinear(v[:], o[:]) }

// Linear sets v to Vec2Linear(p0, t, p1).
func (v *Vec2) Linear(p0 *Vec2, t float32, p1 *Vec2) *Vec2 {
	Vec2Linear(v[:], p0[:], t, p1[:])
	return v
}

// Quadratic sets v to Vec2Quadratic(p0, p1, t, p2).
func (v *Vec2) Quadratic(p0, p1 *Vec2, t float32, p2 *Vec2) *Vec2 {
	Vec2Quadratic(v[:], p0[:], p1[:], t, p2[:])
	return v
}

// Hermite sets v to Vec2Hermite(tan0, p0, t, p1, tan1).
func (v *Vec2) Hermite(tan0, p0 *Vec2, t float32, p1, tan1 *Vec2) *Vec2 {
	Vec2Hermite(v[:], tan0[:], p0[:], t, p1[:], tan1[:])
	return v
}

// Bezier sets v to Vec2Bezier(ctrl0, p0, t, p1, ctrl1).
func (v *Vec2) Bezier(ctrl0, p0 *Vec2, t float32, p1, ctrl1 *Vec2) *Vec2 {
	Vec2Bezier(v[:], ctrl0[:], p0[:], t, p1[:], ctrl1[:])
	return v
}

// CatmullRom sets v to Vec2CatmullRom(p0, p1, t, p2, p3).
func (v *Vec2) CatmullRom(p0, p1 *Vec2, t float32, p2, p3 *Vec2) *Vec2 {
	Vec2CatmullRom(v[:], p0[:], p1[:], t, p2[:], p3[:])
	return v
}
