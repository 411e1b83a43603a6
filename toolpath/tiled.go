package toolpath

import (
	"math"

	"github.com/stewartoallen/mesh-to-points/geom"
	"github.com/stewartoallen/mesh-to-points/heightmap"
	"github.com/stewartoallen/mesh-to-points/tool"
)

// tiledHeightMap re-layouts a HeightMap's data into T x T tiles, each
// tile stored contiguously, so a cell's address decomposes into a tile
// index and a within-tile local index via shifts and masks:
// tile = i >> log2T, local = i & (T-1). Its At method is numerically
// identical to HeightMap.At for every valid coordinate, but it is
// backed by its own tiled array rather than the source's row-major one
// so the toolpath synthesiser can be driven by a genuinely different
// indexing scheme, per the tiled/flat equivalence property.
type tiledHeightMap struct {
	src      *heightmap.HeightMap
	data     []float32
	tileSize int32
	log2T    uint32
	tilesX   int32
	tilesY   int32
}

func newTiledHeightMap(hm *heightmap.HeightMap, tileSize int32) *tiledHeightMap {
	log2T := geom.Log2(uint32(tileSize))
	tilesX := (hm.W + tileSize - 1) / tileSize
	tilesY := (hm.H + tileSize - 1) / tileSize

	data := make([]float32, tilesX*tilesY*tileSize*tileSize)
	for i := range data {
		data[i] = float32(math.NaN())
	}

	for y := int32(0); y < hm.H; y++ {
		for x := int32(0); x < hm.W; x++ {
			tileX := x >> log2T
			tileY := y >> log2T
			localX := x & (tileSize - 1)
			localY := y & (tileSize - 1)
			tileIdx := tileY*tilesX + tileX
			data[tileIdx*tileSize*tileSize+localY*tileSize+localX] = hm.At(x, y)
		}
	}

	return &tiledHeightMap{
		src:      hm,
		data:     data,
		tileSize: tileSize,
		log2T:    log2T,
		tilesX:   tilesX,
		tilesY:   tilesY,
	}
}

// At reads the cell at (x, y), routing through the tile/local
// decomposition into the tiled backing array rather than the source
// HeightMap's row-major one.
func (t *tiledHeightMap) At(x, y int32) float32 {
	if x < 0 || x >= t.src.W || y < 0 || y >= t.src.H {
		return float32(math.NaN())
	}

	tileX := x >> t.log2T
	tileY := y >> t.log2T
	localX := x & (t.tileSize - 1)
	localY := y & (t.tileSize - 1)
	tileIdx := tileY*t.tilesX + tileX

	return t.data[tileIdx*t.tileSize*t.tileSize+localY*t.tileSize+localX]
}

func clearanceAtTiled(t *tiledHeightMap, sp *tool.Sparse, x, y int32, oobZ float32, policy OOBPolicy) float32 {
	best := float32(math.Inf(1))
	found := false

	for i := 0; i < sp.Len(); i++ {
		tx := x + sp.DX[i]
		ty := y + sp.DY[i]

		tz := t.At(tx, ty)
		outOfBounds := tx < 0 || tx >= t.src.W || ty < 0 || ty >= t.src.H || heightmap.IsEmpty(tz)

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
