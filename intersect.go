package geom

import "github.com/aurelien-rainone/math32"

// BBoxMayHit is the cheap 2D bounding-box rejection test applied before
// any cross products: a ray at (x, y) can only hit tri if (x, y) falls
// inside tri's precomputed XY bounding rectangle.
func BBoxMayHit(x, y float32, tri *Triangle) bool {
	return x >= tri.BBoxMinX && x <= tri.BBoxMaxX &&
		y >= tri.BBoxMinY && y <= tri.BBoxMaxY
}

// IntersectRayTriangle implements Möller–Trumbore ray–triangle
// intersection, preceded by the 2D bbox rejection of BBoxMayHit. Rays
// cast by the mesh sampler are always (0, 0, 1) starting below the mesh,
// but dir is general here for clarity and testability.
//
// Fail conditions, checked in order (spec.md §4.1):
//
//	(a) 2D bbox miss
//	(b) determinant |a| < Epsilon (ray parallel to the triangle's plane)
//	(c) barycentric u not in [0, 1]
//	(d) v < 0 or u+v > 1
//	(e) t <= Epsilon
//
// On success it returns the intersection point and true.
func IntersectRayTriangle(origin, dir Vec3, tri *Triangle) (Vec3, bool) {
	if !BBoxMayHit(origin.X(), origin.Y(), tri) {
		return Vec3{}, false
	}

	e1 := tri.V1.Sub(tri.V0)
	e2 := tri.V2.Sub(tri.V0)

	h := NewVec3XYZ(
		dir.Y()*e2.Z()-dir.Z()*e2.Y(),
		dir.Z()*e2.X()-dir.X()*e2.Z(),
		dir.X()*e2.Y()-dir.Y()*e2.X(),
	)

	a := e1.X()*h.X() + e1.Y()*h.Y() + e1.Z()*h.Z()
	if math32.Abs(a) < Epsilon {
		return Vec3{}, false
	}
	f := 1.0 / a

	s := origin.Sub(tri.V0)
	u := f * (s.X()*h.X() + s.Y()*h.Y() + s.Z()*h.Z())
	if u < 0 || u > 1 {
		return Vec3{}, false
	}

	q := NewVec3XYZ(
		s.Y()*e1.Z()-s.Z()*e1.Y(),
		s.Z()*e1.X()-s.X()*e1.Z(),
		s.X()*e1.Y()-s.Y()*e1.X(),
	)
	v := f * (dir.X()*q.X() + dir.Y()*q.Y() + dir.Z()*q.Z())
	if v < 0 || u+v > 1 {
		return Vec3{}, false
	}

	t := f * (e2.X()*q.X() + e2.Y()*q.Y() + e2.Z()*q.Z())
	if t <= Epsilon {
		return Vec3{}, false
	}

	return origin.SAdd(dir, t), true
}
