package math

// Projection and view builders. All of them overwrite the whole matrix and
// follow the OpenGL conventions: right-handed view space looking down -Z,
// clip space depth in [-1, 1].

// Mat4BuildFrustumProj builds a perspective projection from the near plane
// rectangle.
func Mat4BuildFrustumProj(out []float32, left, right, bottom, top, near, far float32) []float32 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	nf := 1 / (near - far)
	n2 := near * 2

	Mat4SetIdentity(out)
	out[0] = n2 * rl
	out[5] = n2 * tb
	out[8] = (right + left) * rl
	out[9] = (top + bottom) * tb
	out[10] = (far + near) * nf
	out[11] = -1
	out[14] = far * n2 * nf
	out[15] = 0
	return out
}

// Mat4BuildPerspectiveProj builds a symmetric perspective projection. fov is
// the horizontal field of view in radians; the vertical axis is scaled by
// aspect (width / height).
func Mat4BuildPerspectiveProj(out []float32, fov, aspect, near, far float32) []float32 {
	f := 1 / Tan(fov/2)
	nf := 1 / (near - far)

	Mat4SetIdentity(out)
	out[0] = f
	out[5] = f * aspect
	out[10] = (far + near) * nf
	out[11] = -1
	out[14] = far * 2 * near * nf
	out[15] = 0
	return out
}

// Mat4BuildOrthoProj builds an orthographic projection.
func Mat4BuildOrthoProj(out []float32, left, right, bottom, top, near, far float32) []float32 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	nf := 1 / (near - far)

	Mat4SetIdentity(out)
	out[0] = 2 * rl
	out[5] = 2 * tb
	out[10] = 2 * nf
	out[12] = -(right + left) * rl
	out[13] = -(top + bottom) * tb
	out[14] = (far + near) * nf
	return out
}

// Mat4BuildLookAtView builds the view matrix of a camera at eye looking at
// target. When eye and target coincide the identity is returned. A side axis
// that cannot be derived (up parallel to the view direction) is left null.
func Mat4BuildLookAtView(out, eye, target, up []float32) []float32 {
	var x, y, z [3]float32
	Vec3Sub(z[:], eye, target)
	if Vec3SquareNorm(z[:]) < Epsilon2 {
		return Mat4SetIdentity(out)
	}
	Vec3Normalize(z[:], z[:])
	Vec3Cross(x[:], up, z[:])
	Vec3Normalize(x[:], x[:])
	Vec3Cross(y[:], z[:], x[:])
	Vec3Normalize(y[:], y[:])

	out[0], out[1], out[2], out[3] = x[0], y[0], z[0], 0
	out[4], out[5], out[6], out[7] = x[1], y[1], z[1], 0
	out[8], out[9], out[10], out[11] = x[2], y[2], z[2], 0
	out[12] = -Vec3Dot(x[:], eye)
	out[13] = -Vec3Dot(y[:], eye)
	out[14] = -Vec3Dot(z[:], eye)
	out[15] = 1
	return out
}

// Mat4BuildFPSView builds the view matrix of a first-person camera at eye,
// turned by yaw around +Y then by pitch around its own X axis. Angles are in
// radians.
func Mat4BuildFPSView(out, eye []float32, pitch, yaw float32) []float32 {
	cy, sy := Cos(yaw), Sin(yaw)
	cp, sp := Cos(pitch), Sin(pitch)

	x0, x2 := cy, -sy
	y1, z1 := cp, -sp
	y0, y2 := x2*z1, -x0*z1
	z0, z2 := -x2*y1, x0*y1

	ex, ey, ez := eye[0], eye[1], eye[2]
	out[0], out[1], out[2], out[3] = x0, y0, z0, 0
	out[4], out[5], out[6], out[7] = 0, y1, z1, 0
	out[8], out[9], out[10], out[11] = x2, y2, z2, 0
	out[12] = -(x0*ex + x2*ez)
	out[13] = -(y0*ex + y1*ey + y2*ez)
	out[14] = -(z0*ex + z1*ey + z2*ez)
	out[15] = 1
	return out
}

// BuildFrustumProj sets m to the perspective projection of the near plane rectangle.
func (m *Mat4) BuildFrustumProj(left, right, bottom, top, near, far float32) *Mat4 {
	Mat4BuildFrustumProj(m[:], left, right, bottom, top, near, far)
	return m
}

// BuildPerspectiveProj sets m to a perspective projection, fov being the
// horizontal field of view in radians.
func (m *Mat4) BuildPerspectiveProj(fov, aspect, near, far float32) *Mat4 {
	Mat4BuildPerspectiveProj(m[:], fov, aspect, near, far)
	return m
}

// BuildOrthoProj sets m to an orthographic projection.
func (m *Mat4) BuildOrthoProj(left, right, bottom, top, near, far float32) *Mat4 {
	Mat4BuildOrthoProj(m[:], left, right, bottom, top, near, far)
	return m
}

// BuildLookAtView sets m to the view matrix of a camera at eye looking at target.
func (m *Mat4) BuildLookAtView(eye, target, up *Vec3) *Mat4 {
	Mat4BuildLookAtView(m[:], eye[:], target[:], up[:])
	return m
}

// BuildFPSView sets m to the view matrix of a first-person camera at eye.
func (m *Mat4) BuildFPSView(eye *Vec3, pitch, yaw float32) *Mat4 {
	Mat4BuildFPSView(m[:], eye[:], pitch, yaw)
	return m
}
