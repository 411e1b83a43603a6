package geom

import (
	"github.com/aurelien-rainone/gogeo/f32/d3"
)

// Vec3 is a point or vector in 3D space, x/y/z as single-precision floats.
type Vec3 = d3.Vec3

// BoundingBox is an axis-aligned bounding box in 3D space.
type BoundingBox = d3.Rectangle

// NewVec3XYZ allocates and returns Vec3{x, y, z}.
func NewVec3XYZ(x, y, z float32) Vec3 {
	return d3.NewVec3XYZ(x, y, z)
}

// BoundsOfVerts computes the bounding box of a flat vertex buffer
// (3 floats per vertex, n vertices). It panics if n == 0; callers must
// guard against empty input themselves (see sampler.Sample).
func BoundsOfVerts(verts []float32, n int) BoundingBox {
	bb := BoundingBox{
		Min: NewVec3XYZ(verts[0], verts[1], verts[2]),
		Max: NewVec3XYZ(verts[0], verts[1], verts[2]),
	}
	for i := 1; i < n; i++ {
		v := verts[i*3 : i*3+3]
		d3.Vec3Min(bb.Min, Vec3(v))
		d3.Vec3Max(bb.Max, Vec3(v))
	}
	return bb
}
