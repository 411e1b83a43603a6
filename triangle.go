package geom

// FilterMode selects which triangles a rasterisation pass keeps, based on
// the sign of each triangle's precomputed normal-Z component.
type FilterMode int

const (
	// FilterUpward keeps triangles with Nz > 0 — the visible top surface
	// of a terrain mesh.
	FilterUpward FilterMode = iota
	// FilterDownward keeps triangles with Nz < 0 — the lowest surface of
	// a tool mesh, i.e. the envelope its tip sweeps.
	FilterDownward
	// FilterNone keeps every triangle, orientation notwithstanding.
	FilterNone
)

// Triangle is a single mesh face plus the attributes the rest of the
// pipeline needs precomputed once, at load time: its 2D (XY) bounding
// rectangle, for the cheap ray-culling test in the triangle index
// (package grid), and the signed Z component of its (unnormalised) face
// normal, the sole face-orientation criterion used by FilterMode.
type Triangle struct {
	V0, V1, V2 Vec3

	BBoxMinX, BBoxMaxX float32
	BBoxMinY, BBoxMaxY float32

	// Nz is (V1-V0) × (V2-V0) · ẑ = e1.x*e2.y - e1.y*e2.x. Its sign is
	// the only face-orientation signal used downstream; Nz == 0 means
	// the triangle is edge-on to Z: FilterUpward and FilterDownward drop
	// it, and under FilterNone it is rejected at intersection time by
	// the parallel-ray test in IntersectRayTriangle.
	Nz float32
}

// NewTriangle precomputes a Triangle's bounding rectangle and Nz from its
// three vertices.
func NewTriangle(v0, v1, v2 Vec3) Triangle {
	t := Triangle{V0: v0, V1: v1, V2: v2}

	t.BBoxMinX, t.BBoxMaxX = v0.X(), v0.X()
	t.BBoxMinY, t.BBoxMaxY = v0.Y(), v0.Y()
	for _, v := range [2]Vec3{v1, v2} {
		if v.X() < t.BBoxMinX {
			t.BBoxMinX = v.X()
		}
		if v.X() > t.BBoxMaxX {
			t.BBoxMaxX = v.X()
		}
		if v.Y() < t.BBoxMinY {
			t.BBoxMinY = v.Y()
		}
		if v.Y() > t.BBoxMaxY {
			t.BBoxMaxY = v.Y()
		}
	}

	e1x, e1y := v1.X()-v0.X(), v1.Y()-v0.Y()
	e2x, e2y := v2.X()-v0.X(), v2.Y()-v0.Y()
	t.Nz = e1x*e2y - e1y*e2x

	return t
}

// Keep reports whether mode keeps a triangle whose normal-Z component is nz.
func (m FilterMode) Keep(nz float32) bool {
	switch m {
	case FilterUpward:
		return nz > 0
	case FilterDownward:
		return nz < 0
	default: // FilterNone
		return true
	}
}

// TrianglesFromFlatBuffer decodes a flat 9-float-per-triangle buffer (as
// received across the host boundary, see spec.md §6) into precomputed
// Triangle records.
func TrianglesFromFlatBuffer(flat []float32, count int) []Triangle {
	tris := make([]Triangle, count)
	for i := 0; i < count; i++ {
		base := i * 9
		v0 := NewVec3XYZ(flat[base+0], flat[base+1], flat[base+2])
		v1 := NewVec3XYZ(flat[base+3], flat[base+4], flat[base+5])
		v2 := NewVec3XYZ(flat[base+6], flat[base+7], flat[base+8])
		tris[i] = NewTriangle(v0, v1, v2)
	}
	return tris
}
