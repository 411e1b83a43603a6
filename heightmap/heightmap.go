// Package heightmap builds dense Z-height grids from a sampled point
// cloud: a terrain map (absolute Z) or a tool map (Z shifted so its
// lowest point, the tool tip, sits at zero). Both are the same
// underlying representation; only the construction differs.
package heightmap

import (
	"math"

	"github.com/aurelien-rainone/assertgo"

	"github.com/stewartoallen/mesh-to-points/geom"
)

// empty is the NaN sentinel marking a cell with no sampled data.
var empty = float32(math.NaN())

// HeightMap is a dense W*H grid of Z values, row-major, grid[y*W+x].
// A cell holding NaN is empty. MinZ/MaxZ are the extrema over populated
// cells only.
type HeightMap struct {
	W, H       int32
	Grid       []float32
	MinZ, MaxZ float32
}

// At returns the Z value at integer grid coordinates (x, y), or NaN if
// out of bounds or empty.
func (hm *HeightMap) At(x, y int32) float32 {
	if x < 0 || x >= hm.W || y < 0 || y >= hm.H {
		return empty
	}
	return hm.Grid[y*hm.W+x]
}

// IsEmpty reports whether v is the NaN empty-cell sentinel.
func IsEmpty(v float32) bool {
	return math.IsNaN(float64(v))
}

// dims computes (W, H) for a point cloud's XY span at the given step,
// per the "W = round(range/s)+1" rule shared by terrain and tool maps.
func dims(bbox geom.BoundingBox, step float32) (w, h int32) {
	xRange := bbox.Max.X() - bbox.Min.X()
	yRange := bbox.Max.Y() - bbox.Min.Y()
	w = geom.RoundToInt(xRange/step) + 1
	h = geom.RoundToInt(yRange/step) + 1
	return w, h
}

func build(points []geom.Vec3, step float32) *HeightMap {
	assert.True(len(points) > 0, "cannot build a height map from an empty point cloud")
	assert.True(step > 0, "height map step size must be positive")

	bbox := geom.BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X() < bbox.Min.X() {
			bbox.Min = geom.NewVec3XYZ(p.X(), bbox.Min.Y(), bbox.Min.Z())
		}
		if p.X() > bbox.Max.X() {
			bbox.Max = geom.NewVec3XYZ(p.X(), bbox.Max.Y(), bbox.Max.Z())
		}
		if p.Y() < bbox.Min.Y() {
			bbox.Min = geom.NewVec3XYZ(bbox.Min.X(), p.Y(), bbox.Min.Z())
		}
		if p.Y() > bbox.Max.Y() {
			bbox.Max = geom.NewVec3XYZ(bbox.Max.X(), p.Y(), bbox.Max.Z())
		}
	}

	w, h := dims(bbox, step)
	hm := &HeightMap{
		W:    w,
		H:    h,
		Grid: make([]float32, w*h),
		MinZ: float32(math.Inf(1)),
		MaxZ: float32(math.Inf(-1)),
	}
	for i := range hm.Grid {
		hm.Grid[i] = empty
	}

	for _, p := range points {
		gx := geom.ClampInt(geom.RoundToInt((p.X()-bbox.Min.X())/step), 0, w-1)
		gy := geom.ClampInt(geom.RoundToInt((p.Y()-bbox.Min.Y())/step), 0, h-1)
		hm.Grid[gy*w+gx] = p.Z() // last writer wins on duplicate cells
	}

	for _, v := range hm.Grid {
		if IsEmpty(v) {
			continue
		}
		if v < hm.MinZ {
			hm.MinZ = v
		}
		if v > hm.MaxZ {
			hm.MaxZ = v
		}
	}

	return hm
}

// BuildTerrain builds an absolute-Z terrain height map from a sampled
// point cloud. An empty point cloud yields nil.
func BuildTerrain(points []geom.Vec3, step float32) *HeightMap {
	if len(points) == 0 {
		return nil
	}
	return build(points, step)
}

// BuildTool builds a tool height map, shifting every populated cell so
// the tool's lowest sampled point (the tip) reads Z = 0. An empty point
// cloud yields nil.
func BuildTool(points []geom.Vec3, step float32) *HeightMap {
	if len(points) == 0 {
		return nil
	}
	hm := build(points, step)
	shift := hm.MinZ
	for i, v := range hm.Grid {
		if IsEmpty(v) {
			continue
		}
		hm.Grid[i] = v - shift
	}
	hm.MaxZ -= shift
	hm.MinZ = 0
	return hm
}
