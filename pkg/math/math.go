// Package math provides float32 vectors, quaternions and column-major matrices
// for real-time 3D rendering.
//
// Every type comes in two flavors. Buffer functions (Vec3Add, Mat4Invert, ...)
// operate on []float32 slices so values can live in shared batched storage; an
// element at offset i is addressed by reslicing, e.g. buf[i*16:]. Object types
// (Vec3, Mat4, ...) are fixed-size arrays whose pointer methods write into the
// receiver and forward to the buffer functions.
package math

import "github.com/chewxy/math32"

// Thresholds below which values are treated as zero.
const (
	Epsilon  float32 = 1e-6
	Epsilon2 float32 = Epsilon * Epsilon
)

// MaxFloat32 is the largest finite float32.
const MaxFloat32 float32 = math32.MaxFloat32

// Angle constants.
const (
	Pi      float32 = math32.Pi
	HalfPi  float32 = 0.5 * math32.Pi
	TwoPi   float32 = 2 * math32.Pi
	Rad2Deg float32 = 180 / math32.Pi
	Deg2Rad float32 = math32.Pi / 180
)

// Scalar wrappers shared by every type of the package.

func Abs(x float32) float32 { return math32.Abs(x) }
func Sqrt(x float32) float32 { return math32.Sqrt(x) }
func Sin(x float32) float32 { return math32.Sin(x) }
func Cos(x float32) float32 { return math32.Cos(x) }
func Acos(x float32) float32 { return math32.Acos(x) }
func Atan2(y, x float32) float32 { return math32.Atan2(y, x) }
func Tan(x float32) float32 { return math32.Tan(x) }
func Log(x float32) float32 { return math32.Log(x) }
func Exp(x float32) float32 { return math32.Exp(x) }
func Pow(x, y float32) float32 { return math32.Pow(x, y) }
func Floor(x float32) float32 { return math32.Floor(x) }
func Inf(sign int) float32 { return math32.Inf(sign) }
func IsInf(x float32, sign int) bool { return math32.IsInf(x, sign) }

// signedInf returns +Inf when x >= 0 and -Inf otherwise.
func signedInf(x float32) float32 {
	if x >= 0 {
		return math32.Inf(1)
	}
	return math32.Inf(-1)
}

// sameStorage reports whether a and b start at the same element.
func sameStorage(a, b []float32) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
