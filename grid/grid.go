// Package grid implements the dense XY spatial index used to accelerate
// vertical ray casts against a triangle mesh: rather than testing every
// ray against every triangle, each triangle is binned once into every
// grid cell its 2D bounding box overlaps, and a ray at (x, y) need only
// test the triangles in the one cell (x, y) falls into.
package grid

import (
	"github.com/aurelien-rainone/assertgo"
	"github.com/aurelien-rainone/math32"

	"github.com/stewartoallen/mesh-to-points/geom"
)

const (
	minRes = 10
	maxRes = 100

	// targetCellSize is the per-axis cell size the resolution formula
	// aims for before the [minRes, maxRes] clamp kicks in.
	targetCellSize = 5.0
)

// Grid is a dense res_x*res_y array of triangle-index cells spanning the
// XY bounding box of a mesh. Cells are stored row-major, y-major (cell
// index = cy*resX + cx), matching the flat height-map layout used
// throughout the rest of the pipeline.
type Grid struct {
	resX, resY         int32
	cellSizeX, cellSizeY float32
	minX, minY         float32

	cells [][]int32
}

// resolution derives a grid axis resolution from its span, per the
// "~5mm cells, clamped to [10,100]" rule. Truncates rather than rounds,
// matching the reference implementation; this only changes the
// acceleration grid's cell count, never the sampled output.
func resolution(span float32) int32 {
	res := int32(span/targetCellSize) + 1
	if res < minRes {
		res = minRes
	}
	if res > maxRes {
		res = maxRes
	}
	return res
}

// Build indexes tris by their precomputed XY bounding boxes, keeping only
// those mode.Keep accepts. bbox is the XY extent the grid should cover;
// callers pass the mesh's own bounding box (see geom.BoundsOfVerts).
func Build(tris []geom.Triangle, bbox geom.BoundingBox, mode geom.FilterMode) *Grid {
	xRange := bbox.Max.X() - bbox.Min.X()
	yRange := bbox.Max.Y() - bbox.Min.Y()

	g := &Grid{
		resX: resolution(xRange),
		resY: resolution(yRange),
		minX: bbox.Min.X(),
		minY: bbox.Min.Y(),
	}
	g.cellSizeX = xRange / float32(g.resX)
	g.cellSizeY = yRange / float32(g.resY)
	assert.True(g.cellSizeX > 0 && g.cellSizeY > 0, "grid cell size must be positive")

	g.cells = make([][]int32, g.resX*g.resY)

	for i := range tris {
		tri := &tris[i]
		if !mode.Keep(tri.Nz) {
			continue
		}

		minCellX := g.cellIndexX(tri.BBoxMinX)
		maxCellX := g.cellIndexX(tri.BBoxMaxX)
		minCellY := g.cellIndexY(tri.BBoxMinY)
		maxCellY := g.cellIndexY(tri.BBoxMaxY)

		for cy := minCellY; cy <= maxCellY; cy++ {
			for cx := minCellX; cx <= maxCellX; cx++ {
				idx := cy*g.resX + cx
				g.cells[idx] = append(g.cells[idx], int32(i))
			}
		}
	}

	return g
}

func (g *Grid) cellIndexX(x float32) int32 {
	cx := int32(math32.Floor((x - g.minX) / g.cellSizeX))
	return geom.ClampInt(cx, 0, g.resX-1)
}

func (g *Grid) cellIndexY(y float32) int32 {
	cy := int32(math32.Floor((y - g.minY) / g.cellSizeY))
	return geom.ClampInt(cy, 0, g.resY-1)
}

// Dims returns the grid's resolution.
func (g *Grid) Dims() (resX, resY int32) {
	return g.resX, g.resY
}

// CandidatesAt returns the indices (into the Triangle slice Build was
// called with) of the triangles binned into the cell containing (x, y).
// The returned slice is owned by the grid and must not be retained or
// mutated past the next call to Build.
func (g *Grid) CandidatesAt(x, y float32) []int32 {
	cx := g.cellIndexX(x)
	cy := g.cellIndexY(y)
	return g.cells[cy*g.resX+cx]
}
