// Package sampler rasterises a triangulated mesh into a point cloud: a
// vertical ray is cast at every (x, y) of a regular XY lattice, and for
// each ray the best intersection (per the active geom.FilterMode) across
// the whole mesh is kept. This is the "point mesh" the rest of the
// pipeline works from.
package sampler

import (
	"github.com/aurelien-rainone/assertgo"

	"github.com/stewartoallen/mesh-to-points/geom"
	"github.com/stewartoallen/mesh-to-points/grid"
)

// initialCapacity is the point buffer's starting size; it grows by
// doubling, matching the growth policy of the C reference implementation
// this spec was distilled from.
const initialCapacity = 1024

// Sampler owns a single retained point-cloud buffer that is overwritten
// (not appended to) by each call to Sample. The buffer is grown by
// doubling and never shrunk, so repeated sampling of similarly sized
// meshes amortises to zero allocation.
type Sampler struct {
	points   []geom.Vec3
	count    int
	bbox     geom.BoundingBox
	hasBBox  bool
}

// New returns a Sampler with an empty, pre-allocated point buffer.
func New() *Sampler {
	return &Sampler{
		points: make([]geom.Vec3, 0, initialCapacity),
	}
}

func (s *Sampler) reset(bbox geom.BoundingBox) {
	s.count = 0
	s.bbox = bbox
	s.hasBBox = true
}

func (s *Sampler) addPoint(p geom.Vec3) {
	if s.count == cap(s.points) {
		newCap := cap(s.points) * 2
		if newCap == 0 {
			newCap = initialCapacity
		}
		grown := make([]geom.Vec3, len(s.points), newCap)
		copy(grown, s.points)
		s.points = grown
	}
	s.points = s.points[:s.count+1]
	s.points[s.count] = p
	s.count++
}

// Sample rasterises tris at the given step size in both X and Y,
// keeping, at every lattice point, the best ray intersection under mode
// (highest Z for geom.FilterUpward, lowest Z for geom.FilterDownward,
// highest Z as well for geom.FilterNone). Lattice points with no
// intersecting triangle contribute no point at all, and an empty tris
// yields no points and leaves Bounds reporting false.
//
// The lattice is traversed x ascending in the outer loop, y ascending in
// the inner loop, so CopyPoints' order is deterministic and reproducible
// across runs of the same input.
//
// The returned slice aliases the Sampler's retained buffer and is only
// valid until the next call to Sample; callers that need to retain
// results across calls must copy them out (see CopyPoints).
func (s *Sampler) Sample(tris []geom.Triangle, step float32, mode geom.FilterMode) []geom.Vec3 {
	assert.True(step > 0, "sampler step size must be positive")
	if len(tris) == 0 {
		s.count = 0
		s.hasBBox = false
		return s.points[:0]
	}

	bbox := trisBounds(tris)
	s.reset(bbox)

	idx := grid.Build(tris, bbox, mode)

	rayDir := geom.NewVec3XYZ(0, 0, 1)
	originZ := bbox.Min.Z() - 1

	for x := bbox.Min.X(); x <= bbox.Max.X(); x += step {
		for y := bbox.Min.Y(); y <= bbox.Max.Y(); y += step {
			origin := geom.NewVec3XYZ(x, y, originZ)

			found := false
			var best geom.Vec3

			for _, ti := range idx.CandidatesAt(x, y) {
				tri := &tris[ti]
				hit, ok := geom.IntersectRayTriangle(origin, rayDir, tri)
				if !ok {
					continue
				}
				switch {
				case !found:
					best, found = hit, true
				case mode == geom.FilterDownward && hit.Z() < best.Z():
					best = hit
				case mode != geom.FilterDownward && hit.Z() > best.Z():
					best = hit
				}
			}

			if found {
				s.addPoint(best)
			}
		}
	}

	return s.points[:s.count]
}

// CopyPoints returns an independent copy of the points produced by the
// most recent call to Sample.
func (s *Sampler) CopyPoints() []geom.Vec3 {
	out := make([]geom.Vec3, s.count)
	copy(out, s.points[:s.count])
	return out
}

// Bounds returns the XYZ bounding box of the mesh passed to the most
// recent call to Sample.
func (s *Sampler) Bounds() (geom.BoundingBox, bool) {
	return s.bbox, s.hasBBox
}

func trisBounds(tris []geom.Triangle) geom.BoundingBox {
	minX, maxX := tris[0].V0.X(), tris[0].V0.X()
	minY, maxY := tris[0].V0.Y(), tris[0].V0.Y()
	minZ, maxZ := tris[0].V0.Z(), tris[0].V0.Z()

	for i := range tris {
		for _, v := range [3]geom.Vec3{tris[i].V0, tris[i].V1, tris[i].V2} {
			if v.X() < minX {
				minX = v.X()
			}
			if v.X() > maxX {
				maxX = v.X()
			}
			if v.Y() < minY {
				minY = v.Y()
			}
			if v.Y() > maxY {
				maxY = v.Y()
			}
			if v.Z() < minZ {
				minZ = v.Z()
			}
			if v.Z() > maxZ {
				maxZ = v.Z()
			}
		}
	}

	return geom.BoundingBox{
		Min: geom.NewVec3XYZ(minX, minY, minZ),
		Max: geom.NewVec3XYZ(maxX, maxY, maxZ),
	}
}
