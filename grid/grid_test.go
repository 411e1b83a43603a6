package grid

import (
	"testing"

	"github.com/stewartoallen/mesh-to-points/geom"
)

func flatPlate() ([]geom.Triangle, geom.BoundingBox) {
	verts := []float32{
		0, 0, 1, 20, 0, 1, 0, 20, 1,
		20, 0, 1, 20, 20, 1, 0, 20, 1,
	}
	tris := geom.TrianglesFromFlatBuffer(verts, 2)
	bbox := geom.BoundsOfVerts(verts, 6)
	return tris, bbox
}

func TestResolutionClamps(t *testing.T) {
	ttable := []struct {
		span float32
		want int32
	}{
		{0, minRes},    // degenerate span still clamps to the floor
		{1, minRes},    // (1/5)+1 = 1, clamped up to 10
		{20, minRes},   // (20/5)+1 = 5, clamped up to 10
		{250, 51},      // (250/5)+1 = 51, within range
		{1000, maxRes}, // far past ceiling
	}
	for _, tt := range ttable {
		if got := resolution(tt.span); got != tt.want {
			t.Errorf("resolution(%v) = %v, want %v", tt.span, got, tt.want)
		}
	}
}

func TestBuildBinsTrianglesAndRespectsFilter(t *testing.T) {
	tris, bbox := flatPlate()

	g := Build(tris, bbox, geom.FilterUpward)
	resX, resY := g.Dims()
	if resX < minRes || resY < minRes {
		t.Fatalf("resolution below floor: %dx%d", resX, resY)
	}

	cands := g.CandidatesAt(10, 10)
	if len(cands) == 0 {
		t.Fatal("expected at least one candidate triangle at the plate's center")
	}

	// Both triangles of the flat plate face upward (Nz > 0); FilterDownward
	// must therefore keep none of them.
	gDown := Build(tris, bbox, geom.FilterDownward)
	for _, idx := range gDown.CandidatesAt(10, 10) {
		t.Errorf("FilterDownward unexpectedly kept triangle %d", idx)
	}
}

func TestCandidatesAtClampsOutOfBounds(t *testing.T) {
	tris, bbox := flatPlate()
	g := Build(tris, bbox, geom.FilterNone)

	// Querying past the mesh's bounds must clamp into the nearest edge
	// cell rather than panicking.
	_ = g.CandidatesAt(-1000, -1000)
	_ = g.CandidatesAt(1000, 1000)
}
