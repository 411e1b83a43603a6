// Package geom defines the geometric primitives shared by every stage of
// the mesh-to-toolpath pipeline: vectors and bounding boxes (both aliases
// over gogeo/f32/d3 types), the precomputed Triangle record, and the
// Möller–Trumbore ray–triangle intersection used by the mesh sampler.
//
// The general life-cycle of the pipeline built on top of this package is:
//
//   - Precompute Triangles from a flat vertex buffer.
//   - Rasterise them into a point cloud (package sampler).
//   - Assemble a height map from the point cloud (package heightmap).
//   - Sparsify the tool's height map (package tool).
//   - Synthesise a toolpath by scanning the tool over the terrain
//     (package toolpath).
//
// See package session for the façade that ties these stages together.
package geom
