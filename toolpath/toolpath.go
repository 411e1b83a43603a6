// Package toolpath synthesises a Z-height raster toolpath by scanning a
// sparse tool over a terrain height map and, at every sample, computing
// the minimum clearance the tool's footprint allows.
package toolpath

import (
	"math"

	"github.com/aurelien-rainone/assertgo"

	"github.com/stewartoallen/mesh-to-points/geom"
	"github.com/stewartoallen/mesh-to-points/heightmap"
	"github.com/stewartoallen/mesh-to-points/tool"
)

// OOBPolicy selects how a tool point that lands outside the terrain or
// on an empty (NaN) terrain cell is treated. Under either policy a
// sample that no tool point constrains reports OOBZ.
type OOBPolicy int

const (
	// SkipOutOfBounds is the specified behaviour: tool points outside
	// the terrain or landing on a NaN cell are simply skipped and do
	// not constrain the tool. If this leaves no usable clearance at
	// all, OOBZ is reported.
	SkipOutOfBounds OOBPolicy = iota

	// ClampOutOfBounds is the older, non-default variant: an
	// out-of-bounds or NaN terrain cell is treated as if it read OOBZ
	// and that virtual clearance participates in the minimum. Kept for
	// compatibility with tooling built against that behaviour; not
	// used unless explicitly selected.
	ClampOutOfBounds
)

// Path is a dense S*P grid of output Z values, row-major, one row per
// terrain Y sample (stride y_step), one column per terrain X sample
// (stride x_step).
type Path struct {
	S, P int32
	Data []float32
}

// Dims returns the path's (S, P) shape.
func (p *Path) Dims() (s, pp int32) {
	return p.S, p.P
}

// CopyTo writes the path's S*P values into out, in row-major order. out
// must have length >= S*P.
func (p *Path) CopyTo(out []float32) {
	assert.True(len(out) >= len(p.Data), "CopyTo destination too small")
	copy(out, p.Data)
}

// Dims returns the (S, P) shape a toolpath over terrain would have at
// the given strides, without generating it.
func Dims(terrain *heightmap.HeightMap, xStep, yStep int32) (s, p int32) {
	return dimsOf(terrain, xStep, yStep)
}

func dimsOf(terrain *heightmap.HeightMap, xStep, yStep int32) (s, p int32) {
	p = ceilDiv(terrain.W, xStep)
	s = ceilDiv(terrain.H, yStep)
	return s, p
}

func ceilDiv(a, b int32) int32 {
	return (a + b - 1) / b
}

// clearanceAt computes the output Z for terrain sample (x, y) per the
// per-sample min-clearance rule: for every (Δx, Δy, Δz) in sp, the tool
// point at (x+Δx, y+Δy) is skipped if out of bounds or over a NaN
// terrain cell (or, under ClampOutOfBounds, treated as reading oobZ);
// otherwise δ = Δz − terrain_z contributes to the minimum. The result is
// −min(δ), or oobZ if no tool point constrained the tool.
func clearanceAt(terrain *heightmap.HeightMap, sp *tool.Sparse, x, y int32, oobZ float32, policy OOBPolicy) float32 {
	best := float32(math.Inf(1))
	found := false

	for i := 0; i < sp.Len(); i++ {
		tx := x + sp.DX[i]
		ty := y + sp.DY[i]

		tz := terrain.At(tx, ty)
		outOfBounds := tx < 0 || tx >= terrain.W || ty < 0 || ty >= terrain.H || heightmap.IsEmpty(tz)

		var delta float32
		switch {
		case outOfBounds && policy == SkipOutOfBounds:
			continue
		case outOfBounds && policy == ClampOutOfBounds:
			delta = sp.DZ[i] - oobZ
		default:
			delta = sp.DZ[i] - tz
		}

		if delta < best {
			best = delta
			found = true
		}
	}

	if !found {
		return oobZ
	}
	return -best
}

// Generate scans the sparse tool sp over terrain at strides (xStep,
// yStep), producing a full S*P Path. xStep and yStep must be >= 1.
func Generate(terrain *heightmap.HeightMap, sp *tool.Sparse, xStep, yStep int32, oobZ float32, policy OOBPolicy) *Path {
	return GeneratePartial(terrain, sp, xStep, yStep, oobZ, policy, 0, -1)
}

// GeneratePartial is Generate restricted to output rows [start, end).
// end == -1 means "through the last row". Used to split a large
// toolpath across worker goroutines (see package session).
func GeneratePartial(terrain *heightmap.HeightMap, sp *tool.Sparse, xStep, yStep int32, oobZ float32, policy OOBPolicy, start, end int32) *Path {
	assert.True(xStep >= 1 && yStep >= 1, "x_step and y_step must be >= 1")

	s, p := dimsOf(terrain, xStep, yStep)
	if end < 0 || end > s {
		end = s
	}

	path := &Path{S: s, P: p, Data: make([]float32, s*p)}
	for i := range path.Data {
		path.Data[i] = oobZ
	}

	for row := start; row < end; row++ {
		y := row * yStep
		for col := int32(0); col < p; col++ {
			x := col * xStep
			path.Data[row*p+col] = clearanceAt(terrain, sp, x, y, oobZ, policy)
		}
	}

	return path
}

// GenerateTiled is equivalent to Generate but reads the terrain height
// map through a tiled T x T decomposition (tile = i >> log2(T), local =
// i & (T-1)) instead of direct row-major indexing. T must be a power of
// two. Numerically identical to Generate for the same inputs; provided
// so callers can exercise (and benchmark) the tiled access pattern
// without changing output semantics.
func GenerateTiled(terrain *heightmap.HeightMap, sp *tool.Sparse, xStep, yStep int32, oobZ float32, policy OOBPolicy, tileSize int32) *Path {
	assert.True(geom.IsPow2(tileSize), "tile size must be a power of two")

	tiled := newTiledHeightMap(terrain, tileSize)

	s, p := dimsOf(terrain, xStep, yStep)
	path := &Path{S: s, P: p, Data: make([]float32, s*p)}

	for row := int32(0); row < s; row++ {
		y := row * yStep
		for col := int32(0); col < p; col++ {
			x := col * xStep
			path.Data[row*p+col] = clearanceAtTiled(tiled, sp, x, y, oobZ, policy)
		}
	}

	return path
}
