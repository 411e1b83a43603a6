package sampler

import (
	"math"
	"testing"

	"github.com/stewartoallen/mesh-to-points/geom"
)

func flatPlateAt(z float32) []geom.Triangle {
	verts := []float32{
		0, 0, z, 20, 0, z, 0, 20, z,
		20, 0, z, 20, 20, z, 0, 20, z,
	}
	return geom.TrianglesFromFlatBuffer(verts, 2)
}

func TestSampleFlatPlateAllHitsAtConstantZ(t *testing.T) {
	tris := flatPlateAt(3)
	s := New()

	pts := s.Sample(tris, 5, geom.FilterUpward)
	if len(pts) == 0 {
		t.Fatal("expected at least one sample point")
	}
	for _, p := range pts {
		if !geom.ApproxEqual(p.Z(), 3) {
			t.Errorf("point %v has Z=%v, want 3", p, p.Z())
		}
	}
}

func TestSampleStepSizeAffectsDensity(t *testing.T) {
	tris := flatPlateAt(0)
	s := New()

	coarse := len(s.Sample(tris, 10, geom.FilterUpward))
	fine := len(s.Sample(tris, 2, geom.FilterUpward))

	if fine <= coarse {
		t.Errorf("finer step (2) produced %d points, want more than coarse step's %d", fine, coarse)
	}
}

func TestSampleRetainedBufferReusedAcrossCalls(t *testing.T) {
	tris := flatPlateAt(0)
	s := New()

	first := s.Sample(tris, 5, geom.FilterUpward)
	firstLen := len(first)

	// A second call must not leak points from the first: re-sampling the
	// same mesh at the same step must reproduce the same count, not grow
	// unbounded.
	second := s.Sample(tris, 5, geom.FilterUpward)
	if len(second) != firstLen {
		t.Errorf("second Sample() returned %d points, want %d (same as first call)", len(second), firstLen)
	}
}

func TestSampleDownwardKeepsLowestZ(t *testing.T) {
	// Two overlapping downward-facing triangles at different Z: the
	// FilterDownward rule must keep the lower one.
	upper := geom.NewTriangle(
		geom.NewVec3XYZ(0, 0, 10),
		geom.NewVec3XYZ(0, 10, 10),
		geom.NewVec3XYZ(10, 0, 10),
	)
	lower := geom.NewTriangle(
		geom.NewVec3XYZ(0, 0, 5),
		geom.NewVec3XYZ(0, 10, 5),
		geom.NewVec3XYZ(10, 0, 5),
	)
	if upper.Nz >= 0 || lower.Nz >= 0 {
		t.Fatalf("fixture triangles must be downward-facing, got Nz=%v,%v", upper.Nz, lower.Nz)
	}

	s := New()
	pts := s.Sample([]geom.Triangle{upper, lower}, 5, geom.FilterDownward)
	if len(pts) == 0 {
		t.Fatal("expected at least one sample point")
	}
	for _, p := range pts {
		if !geom.ApproxEqual(p.Z(), 5) {
			t.Errorf("point %v has Z=%v, want 5 (lowest surface)", p, p.Z())
		}
	}
}

func TestSampleEmptyInputYieldsNoPoints(t *testing.T) {
	if pts := New().Sample(nil, 1, geom.FilterUpward); len(pts) != 0 {
		t.Fatalf("Sample on an empty triangle set returned %d points, want 0", len(pts))
	}
}

func TestBoundsMatchesMeshExtent(t *testing.T) {
	tris := flatPlateAt(7)
	s := New()
	s.Sample(tris, 5, geom.FilterUpward)

	bbox, ok := s.Bounds()
	if !ok {
		t.Fatal("expected Bounds to report a valid bbox after Sample")
	}
	if !geom.ApproxEqual(bbox.Min.X(), 0) || !geom.ApproxEqual(bbox.Max.X(), 20) {
		t.Errorf("bbox X = [%v, %v], want [0, 20]", bbox.Min.X(), bbox.Max.X())
	}
	if math.IsNaN(float64(bbox.Min.Z())) {
		t.Error("bbox.Min.Z() is NaN")
	}
}
