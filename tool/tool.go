// Package tool compacts a dense tool height map into a sparse list of
// (Δx, Δy, Δz) offsets from the tool's reference cell — the
// representation the toolpath synthesiser actually scans against.
package tool

import (
	"github.com/stewartoallen/mesh-to-points/heightmap"
)

// Sparse is three parallel arrays of length N: DX, DY are the integer
// offset in grid cells from the tool's reference cell (the integer
// centre of its height map), DZ is the tool-map Z at that cell, i.e.
// height above the tool tip. Never contains NaNs or duplicate
// (DX, DY) pairs.
type Sparse struct {
	DX, DY []int32
	DZ     []float32
}

// Len returns the number of populated tool-map cells.
func (s *Sparse) Len() int {
	return len(s.DZ)
}

// Build compacts a tool height map into its sparse representation. The
// reference cell is the integer centre (W/2, H/2); every populated cell
// contributes one (Δx, Δy, Δz) in row-major order.
func Build(hm *heightmap.HeightMap) *Sparse {
	refX, refY := hm.W/2, hm.H/2

	count := 0
	for _, v := range hm.Grid {
		if !heightmap.IsEmpty(v) {
			count++
		}
	}

	s := &Sparse{
		DX: make([]int32, 0, count),
		DY: make([]int32, 0, count),
		DZ: make([]float32, 0, count),
	}

	for ty := int32(0); ty < hm.H; ty++ {
		for tx := int32(0); tx < hm.W; tx++ {
			z := hm.Grid[ty*hm.W+tx]
			if heightmap.IsEmpty(z) {
				continue
			}
			s.DX = append(s.DX, tx-refX)
			s.DY = append(s.DY, ty-refY)
			s.DZ = append(s.DZ, z)
		}
	}

	return s
}
