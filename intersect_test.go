package geom

import "testing"

func upwardTri() Triangle {
	return NewTriangle(
		NewVec3XYZ(-5, -5, 2),
		NewVec3XYZ(5, -5, 2),
		NewVec3XYZ(0, 5, 2),
	)
}

func TestIntersectRayTriangleHit(t *testing.T) {
	tri := upwardTri()
	origin := NewVec3XYZ(0, -1, 0)
	dir := NewVec3XYZ(0, 0, 1)

	hit, ok := IntersectRayTriangle(origin, dir, &tri)
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	if !ApproxEqual(hit.Z(), 2) {
		t.Errorf("hit.Z() = %v, want 2", hit.Z())
	}
}

func TestIntersectRayTriangleBBoxMiss(t *testing.T) {
	tri := upwardTri()
	origin := NewVec3XYZ(100, 100, 0)
	dir := NewVec3XYZ(0, 0, 1)

	if _, ok := IntersectRayTriangle(origin, dir, &tri); ok {
		t.Error("expected miss outside bbox, got hit")
	}
}

func TestIntersectRayTriangleParallel(t *testing.T) {
	tri := upwardTri()
	origin := NewVec3XYZ(0, -1, 0)
	dir := NewVec3XYZ(0, 1, 0) // lies in the plane z=2's parallel direction relative to this ray

	if _, ok := IntersectRayTriangle(origin, dir, &tri); ok {
		t.Error("expected miss for ray parallel to triangle plane, got hit")
	}
}

func TestIntersectRayTriangleOutsideBarycentric(t *testing.T) {
	tri := upwardTri()
	// inside the 2D bbox but outside the actual triangle (near a corner).
	origin := NewVec3XYZ(-4.9, 4.9, 0)
	dir := NewVec3XYZ(0, 0, 1)

	if _, ok := IntersectRayTriangle(origin, dir, &tri); ok {
		t.Error("expected miss for point outside triangle but inside bbox, got hit")
	}
}

func TestIntersectRayTriangleBehindOrigin(t *testing.T) {
	tri := upwardTri()
	origin := NewVec3XYZ(0, -1, 10)
	dir := NewVec3XYZ(0, 0, 1) // triangle is behind the ray's origin along dir

	if _, ok := IntersectRayTriangle(origin, dir, &tri); ok {
		t.Error("expected miss for triangle behind ray origin, got hit")
	}
}

func TestIntersectRayTriangleEdgeOnNzZero(t *testing.T) {
	// A triangle edge-on to Z (Nz == 0): vertical wall, never hit by a
	// vertical sampling ray, regardless of FilterMode.
	tri := NewTriangle(
		NewVec3XYZ(0, 0, 0),
		NewVec3XYZ(0, 0, 10),
		NewVec3XYZ(5, 0, 0),
	)
	if tri.Nz != 0 {
		t.Fatalf("test fixture Nz = %v, want 0", tri.Nz)
	}
	origin := NewVec3XYZ(1, 0, -1)
	dir := NewVec3XYZ(0, 0, 1)
	if _, ok := IntersectRayTriangle(origin, dir, &tri); ok {
		t.Error("expected miss for vertical ray against edge-on triangle, got hit")
	}
}
