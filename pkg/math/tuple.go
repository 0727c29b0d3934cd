package math

// Component-wise routines shared by the vector and quaternion types. n is the
// tuple size; out may alias any input as long as both start at the same
// element.

func tupleIsNull(a []float32, n int) bool {
	for i := 0; i < n; i++ {
		if Abs(a[i]) >= Epsilon {
			return false
		}
	}
	return true
}

func tupleEquals(a, b []float32, n int) bool {
	if sameStorage(a, b) {
		return true
	}
	for i := 0; i < n; i++ {
		if Abs(b[i]-a[i]) >= Epsilon {
			return false
		}
	}
	return true
}

func tupleAdd(out, a, b []float32, n int) []float32 {
	for i := 0; i < n; i++ {
		out[i] = a[i] + b[i]
	}
	return out
}

func tupleSub(out, a, b []float32, n int) []float32 {
	for i := 0; i < n; i++ {
		out[i] = a[i] - b[i]
	}
	return out
}

func tupleScale(out []float32, s float32, in []float32, n int) []float32 {
	for i := 0; i < n; i++ {
		out[i] = s * in[i]
	}
	return out
}

func tupleAddScaled(out, a []float32, s float32, b []float32, n int) []float32 {
	for i := 0; i < n; i++ {
		out[i] = a[i] + s*b[i]
	}
	return out
}

func tupleNegate(out, in []float32, n int) []float32 {
	for i := 0; i < n; i++ {
		out[i] = -in[i]
	}
	return out
}

func tupleDot(a, b []float32, n int) float32 {
	var d float32
	for i := 0; i < n; i++ {
		d += a[i] * b[i]
	}
	return d
}

func tupleSquareDistance(a, b []float32, n int) float32 {
	var d float32
	for i := 0; i < n; i++ {
		c := b[i] - a[i]
		d += c * c
	}
	return d
}

// tupleNormalize writes in/|in| to out, or the null tuple when |in|² < Epsilon2.
func tupleNormalize(out, in []float32, n int) []float32 {
	sq := tupleDot(in, in, n)
	if sq < Epsilon2 {
		for i := 0; i < n; i++ {
			out[i] = 0
		}
		return out
	}
	return tupleScale(out, 1/Sqrt(sq), in, n)
}

func tupleLinear(out, p0 []float32, t float32, p1 []float32, n int) []float32 {
	for i := 0; i < n; i++ {
		out[i] = p0[i] + t*(p1[i]-p0[i])
	}
	return out
}

func tupleBlend3(out []float32, w [3]float32, a, b, c []float32, n int) []float32 {
	for i := 0; i < n; i++ {
		out[i] = w[0]*a[i] + w[1]*b[i] + w[2]*c[i]
	}
	return out
}

func tupleBlend4(out []float32, w [4]float32, a, b, c, d []float32, n int) []float32 {
	for i := 0; i < n; i++ {
		out[i] = w[0]*a[i] + w[1]*b[i] + w[2]*c[i] + w[3]*d[i]
	}
	return out
}
