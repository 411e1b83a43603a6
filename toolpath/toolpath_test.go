package toolpath

import (
	"testing"

	"github.com/stewartoallen/mesh-to-points/geom"
	"github.com/stewartoallen/mesh-to-points/heightmap"
	"github.com/stewartoallen/mesh-to-points/tool"
)

// flatTerrain builds an 11x11 terrain at z=0, step 1, matching spec
// scenario 1 ("flat plate").
func flatTerrain(t *testing.T, step float32) *heightmap.HeightMap {
	t.Helper()
	var pts []geom.Vec3
	for y := float32(0); y <= 10; y += step {
		for x := float32(0); x <= 10; x += step {
			pts = append(pts, geom.NewVec3XYZ(x, y, 0))
		}
	}
	return heightmap.BuildTerrain(pts, step)
}

// pointTool is a single-point tool at its own reference cell, Δz = 0.
func pointTool() *tool.Sparse {
	return &tool.Sparse{
		DX: []int32{0},
		DY: []int32{0},
		DZ: []float32{0},
	}
}

func TestGenerateFlatPlateYieldsZero(t *testing.T) {
	terrain := flatTerrain(t, 1)
	sp := pointTool()

	path := Generate(terrain, sp, 1, 1, -100, SkipOutOfBounds)
	s, p := path.Dims()
	if s != 11 || p != 11 {
		t.Fatalf("dims = %dx%d, want 11x11", s, p)
	}
	for _, v := range path.Data {
		if !geom.ApproxEqual(v, 0) {
			t.Errorf("value = %v, want 0", v)
		}
	}
}

func TestGenerateFlatPlateStride2(t *testing.T) {
	terrain := flatTerrain(t, 1)
	sp := pointTool()

	path := Generate(terrain, sp, 2, 2, -100, SkipOutOfBounds)
	s, p := path.Dims()
	if s != 6 || p != 6 {
		t.Fatalf("dims = %dx%d, want 6x6", s, p)
	}
}

func TestGeneratePartialMatchesFullOverSameRows(t *testing.T) {
	terrain := flatTerrain(t, 1)
	sp := pointTool()

	full := Generate(terrain, sp, 1, 1, -100, SkipOutOfBounds)
	partial := GeneratePartial(terrain, sp, 1, 1, -100, SkipOutOfBounds, 2, 5)

	_, p := full.Dims()
	for row := int32(2); row < 5; row++ {
		for col := int32(0); col < p; col++ {
			fv := full.Data[row*p+col]
			pv := partial.Data[row*p+col]
			if !geom.ApproxEqual(fv, pv) {
				t.Errorf("row %d col %d: full=%v partial=%v", row, col, fv, pv)
			}
		}
	}
}

func TestGenerateTiledMatchesFlat(t *testing.T) {
	terrain := flatTerrain(t, 1)

	// A tool with more than one footprint point so the tiled access
	// pattern actually exercises neighbouring cells.
	sp := &tool.Sparse{
		DX: []int32{0, 1, -1, 0},
		DY: []int32{0, 0, 0, 1},
		DZ: []float32{0, 1, 1, 2},
	}

	flat := Generate(terrain, sp, 1, 1, -100, SkipOutOfBounds)
	tiled := GenerateTiled(terrain, sp, 1, 1, -100, SkipOutOfBounds, 4)

	if len(flat.Data) != len(tiled.Data) {
		t.Fatalf("len mismatch: flat=%d tiled=%d", len(flat.Data), len(tiled.Data))
	}
	for i := range flat.Data {
		if diff := flat.Data[i] - tiled.Data[i]; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("index %d: flat=%v tiled=%v", i, flat.Data[i], tiled.Data[i])
		}
	}
}

func TestGenerateEmptyHoleUnconstrainedOnlyByHole(t *testing.T) {
	// Terrain with an interior NaN hole the tool footprint straddles at
	// one sample; the skip policy means that sample is still
	// constrained by the tool points that do land on real terrain.
	terrain := flatTerrain(t, 1)
	holeX, holeY := int32(5), int32(5)
	terrain.Grid[holeY*terrain.W+holeX] = float32(nan())

	sp := &tool.Sparse{
		DX: []int32{0, 0},
		DY: []int32{0, -3}, // second point lands on real terrain well away from the hole
		DZ: []float32{0, 0},
	}

	path := Generate(terrain, sp, 1, 1, -100, SkipOutOfBounds)
	_, p := path.Dims()
	v := path.Data[int(holeY)*int(p)+int(holeX)]
	if !geom.ApproxEqual(v, 0) {
		t.Errorf("sample over hole = %v, want 0 (constrained by the non-hole tool point)", v)
	}
}

func TestGenerateAllPointsOverHoleYieldsOOBZ(t *testing.T) {
	terrain := flatTerrain(t, 1)
	for y := int32(4); y <= 6; y++ {
		for x := int32(4); x <= 6; x++ {
			terrain.Grid[y*terrain.W+x] = float32(nan())
		}
	}

	sp := pointTool()
	path := Generate(terrain, sp, 1, 1, -77, SkipOutOfBounds)
	_, p := path.Dims()
	v := path.Data[5*int(p)+5]
	if !geom.ApproxEqual(v, -77) {
		t.Errorf("sample entirely over hole = %v, want oob_z -77", v)
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
