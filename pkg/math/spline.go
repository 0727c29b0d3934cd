package math

// Blend weights of the spline interpolators. All are polynomials in t and are
// valid outside [0, 1], where they extrapolate.

// quadraticWeights weights (p0, p1, p2); the curve runs from p1 (t=0) to p2 (t=1).
func quadraticWeights(t float32) [3]float32 {
	return [3]float32{
		0.5 * (t - 1) * t,
		1 - t*t,
		0.5 * (t + 1) * t,
	}
}

// hermiteWeights weights (tan0, p0, p1, tan1).
func hermiteWeights(t float32) [4]float32 {
	tt := t * t
	return [4]float32{
		tt*(t-2) + t,
		tt*(2*t-3) + 1,
		tt * (3 - 2*t),
		tt * (t - 1),
	}
}

// bezierWeights weights (ctrl0, p0, p1, ctrl1). A cubic Bezier is a Hermite
// curve with tan0 = 3(ctrl0-p0) and tan1 = 3(p1-ctrl1).
func bezierWeights(t float32) [4]float32 {
	tt := t * t
	s := 1 - t
	ss := s * s
	return [4]float32{
		3 * ss * t,
		ss * s,
		tt * t,
		3 * s * tt,
	}
}

// catmullRomWeights weights (p0, p1, p2, p3); the curve runs from p1 to p2
// with tangents 0.5(p[i+1]-p[i-1]).
func catmullRomWeights(t float32) [4]float32 {
	tt := t * t
	h := -0.5 * t
	return [4]float32{
		h*(tt+1) + tt,
		h*(5*t-3*tt) + 1,
		h * (3*tt - 4*t - 1),
		h * (t - tt),
	}
}
