// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/Faultbox/neo3d/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates from the top-left corner, viewportW/H
// are viewport dimensions. invViewProj is the inverse of the view-projection
// matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj *math.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // Flip Y

	near := unproject(invViewProj, ndcX, ndcY, -1)
	far := unproject(invViewProj, ndcX, ndcY, 1)

	var r Ray
	r.Origin = near
	r.Direction.Sub(&far, &near).NormalizeInPlace()
	return r
}

// unproject maps a clip-space point back to world space, perspective divide
// included.
func unproject(invViewProj *math.Mat4, x, y, z float32) math.Vec3 {
	var p math.Vec4
	invViewProj.TransformVec4(&p, &math.Vec4{x, y, z, 1})
	if p[3] != 0 {
		return math.Vec3{p[0] / p[3], p[1] / p[3], p[2] / p[3]}
	}
	return math.Vec3{p[0], p[1], p[2]}
}

// At returns the point at distance t along the ray.
func (r *Ray) At(t float32) math.Vec3 {
	var p math.Vec3
	p.AddScaled(&r.Origin, t, &r.Direction)
	return p
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r *Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if math.Abs(r.Direction[1]) < 0.001 {
		return 0, 0, false // Ray parallel to plane
	}

	t := (planeY - r.Origin[1]) / r.Direction[1]
	if t < 0 {
		return 0, 0, false // Intersection behind ray origin
	}

	x = r.Origin[0] + t*r.Direction[0]
	z = r.Origin[2] + t*r.Direction[2]
	return x, z, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r *Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := -math.MaxFloat32
	tmax := math.MaxFloat32

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < box.Min[axis] || o > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - o) / d
		t2 := (box.Max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// NewAABB creates an AABB from two opposite corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	var box AABB
	for i := 0; i < 3; i++ {
		box.Min[i] = min(a[i], b[i])
		box.Max[i] = max(a[i], b[i])
	}
	return box
}

// Center returns the middle of the box.
func (b AABB) Center() math.Vec3 {
	var c math.Vec3
	c.Add(&b.Min, &b.Max).ScaleInPlace(0.5)
	return c
}

// Union returns the smallest box holding both b and o.
func (b AABB) Union(o AABB) AABB {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], o.Min[i])
		b.Max[i] = max(b.Max[i], o.Max[i])
	}
	return b
}

// TransformAABB returns the world box enclosing the local box transformed by
// m, which may hold any rotation, scale and translation.
func TransformAABB(local AABB, m *math.Mat4) AABB {
	var out AABB
	for corner := 0; corner < 8; corner++ {
		p := local.Min
		for axis := 0; axis < 3; axis++ {
			if corner&(1<<axis) != 0 {
				p[axis] = local.Max[axis]
			}
		}
		m.TransformVec3PosInPlace(&p)
		if corner == 0 {
			out.Min, out.Max = p, p
			continue
		}
		for i := 0; i < 3; i++ {
			out.Min[i] = min(out.Min[i], p[i])
			out.Max[i] = max(out.Max[i], p[i])
		}
	}
	return out
}
