package tool

import (
	"testing"

	"github.com/stewartoallen/mesh-to-points/geom"
	"github.com/stewartoallen/mesh-to-points/heightmap"
)

func TestBuildReferenceCellIsIntegerCentre(t *testing.T) {
	pts := []geom.Vec3{
		geom.NewVec3XYZ(0, 0, 10),
		geom.NewVec3XYZ(10, 0, 12),
		geom.NewVec3XYZ(0, 10, 14),
		geom.NewVec3XYZ(10, 10, 16),
	}
	hm := heightmap.BuildTool(pts, 5)
	sp := Build(hm)

	if sp.Len() == 0 {
		t.Fatal("expected a non-empty sparse tool")
	}
	for i := 0; i < sp.Len(); i++ {
		if sp.DX[i] < -hm.W/2 || sp.DX[i] > hm.W-1-hm.W/2 {
			t.Errorf("DX[%d] = %d out of bounds for W=%d", i, sp.DX[i], hm.W)
		}
		if sp.DY[i] < -hm.H/2 || sp.DY[i] > hm.H-1-hm.H/2 {
			t.Errorf("DY[%d] = %d out of bounds for H=%d", i, sp.DY[i], hm.H)
		}
	}
}

func TestBuildNoNaNsOrDuplicates(t *testing.T) {
	pts := []geom.Vec3{
		geom.NewVec3XYZ(0, 0, 1),
		geom.NewVec3XYZ(5, 0, 2),
		geom.NewVec3XYZ(0, 5, 3),
	}
	hm := heightmap.BuildTool(pts, 5)
	sp := Build(hm)

	seen := make(map[[2]int32]bool)
	for i := 0; i < sp.Len(); i++ {
		if heightmap.IsEmpty(sp.DZ[i]) {
			t.Errorf("Δz at index %d is NaN", i)
		}
		key := [2]int32{sp.DX[i], sp.DY[i]}
		if seen[key] {
			t.Errorf("duplicate (Δx,Δy) pair %v at index %d", key, i)
		}
		seen[key] = true
	}
}

func TestBuildMinDZIsZero(t *testing.T) {
	pts := []geom.Vec3{
		geom.NewVec3XYZ(0, 0, 10),
		geom.NewVec3XYZ(5, 0, 15),
		geom.NewVec3XYZ(0, 5, 20),
	}
	hm := heightmap.BuildTool(pts, 5)
	sp := Build(hm)

	minDZ := sp.DZ[0]
	for _, z := range sp.DZ {
		if z < minDZ {
			minDZ = z
		}
	}
	if minDZ != 0 {
		t.Errorf("min Δz = %v, want 0 (the tool tip)", minDZ)
	}
}
