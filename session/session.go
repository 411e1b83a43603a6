// Package session is the lifecycle façade tying together sampling,
// height-map construction, tool sparsification, and toolpath
// synthesis. A Session owns the sampler's retained point-cloud buffer
// and the built maps/tool/path; nothing else in the pipeline holds
// state across calls.
package session

import (
	"fmt"
	"sync"

	"github.com/fatih/structs"

	"github.com/stewartoallen/mesh-to-points/buildctx"
	"github.com/stewartoallen/mesh-to-points/geom"
	"github.com/stewartoallen/mesh-to-points/heightmap"
	"github.com/stewartoallen/mesh-to-points/sampler"
	"github.com/stewartoallen/mesh-to-points/tool"
	"github.com/stewartoallen/mesh-to-points/toolpath"
)

// Session drives one mesh-to-toolpath build. Construct with New, feed it
// terrain and tool triangles through SampleTerrain/SampleTool, build maps
// and the sparse tool, then Generate (or GenerateConcurrent) a Path.
type Session struct {
	Ctx      *buildctx.Context
	Settings Settings

	terrainSampler *sampler.Sampler
	toolSampler    *sampler.Sampler

	terrainMap *heightmap.HeightMap
	toolMap    *heightmap.HeightMap
	sparse     *tool.Sparse
	path       *toolpath.Path
}

// New returns a Session with the given Settings and a build context with
// logging and timers enabled.
func New(settings Settings) *Session {
	return &Session{
		Ctx:            buildctx.New(true),
		Settings:       settings,
		terrainSampler: sampler.New(),
		toolSampler:    sampler.New(),
	}
}

// DumpSettings prints the session's current Settings as a map, on a
// single line, for debugging.
func (s *Session) DumpSettings() {
	fmt.Println(structs.Map(s.Settings))
}

// SampleTerrain rasterises terrainTris (upward-facing surface) into the
// session's retained terrain point cloud.
func (s *Session) SampleTerrain(terrainTris []geom.Triangle) []geom.Vec3 {
	var pts []geom.Vec3
	s.Ctx.Time(buildctx.TimerSampleTerrain, func() {
		pts = s.terrainSampler.Sample(terrainTris, s.Settings.Step, geom.FilterUpward)
	})
	return pts
}

// SampleTool rasterises toolTris (downward-facing envelope) into the
// session's retained tool point cloud.
func (s *Session) SampleTool(toolTris []geom.Triangle) []geom.Vec3 {
	var pts []geom.Vec3
	s.Ctx.Time(buildctx.TimerSampleTool, func() {
		pts = s.toolSampler.Sample(toolTris, s.Settings.Step, geom.FilterDownward)
	})
	return pts
}

// BuildTerrainMap builds the session's terrain height map from the most
// recent SampleTerrain result.
func (s *Session) BuildTerrainMap() *heightmap.HeightMap {
	s.Ctx.Time(buildctx.TimerBuildTerrainMap, func() {
		s.terrainMap = heightmap.BuildTerrain(s.terrainSampler.CopyPoints(), s.Settings.Step)
	})
	return s.terrainMap
}

// BuildToolMap builds the session's tool height map from the most recent
// SampleTool result.
func (s *Session) BuildToolMap() *heightmap.HeightMap {
	s.Ctx.Time(buildctx.TimerBuildToolMap, func() {
		s.toolMap = heightmap.BuildTool(s.toolSampler.CopyPoints(), s.Settings.Step)
	})
	return s.toolMap
}

// BuildSparseTool compacts the session's tool height map into its sparse
// representation. BuildToolMap must have been called first.
func (s *Session) BuildSparseTool() *tool.Sparse {
	s.Ctx.Time(buildctx.TimerSparsifyTool, func() {
		s.sparse = tool.Build(s.toolMap)
	})
	return s.sparse
}

func (s *Session) policy() toolpath.OOBPolicy {
	if s.Settings.OOBPolicyClamp {
		return toolpath.ClampOutOfBounds
	}
	return toolpath.SkipOutOfBounds
}

// Generate synthesises the full toolpath from the session's terrain map
// and sparse tool. BuildTerrainMap and BuildSparseTool must have been
// called first.
func (s *Session) Generate() *toolpath.Path {
	s.Ctx.Time(buildctx.TimerGenerateToolpath, func() {
		s.path = toolpath.Generate(s.terrainMap, s.sparse, s.Settings.XStep, s.Settings.YStep, s.Settings.OOBZ, s.policy())
	})
	return s.path
}

// GeneratePartial synthesises only rows [start, end) of the toolpath.
func (s *Session) GeneratePartial(start, end int32) *toolpath.Path {
	var p *toolpath.Path
	s.Ctx.Time(buildctx.TimerGenerateToolpath, func() {
		p = toolpath.GeneratePartial(s.terrainMap, s.sparse, s.Settings.XStep, s.Settings.YStep, s.Settings.OOBZ, s.policy(), start, end)
	})
	return p
}

// GenerateConcurrent splits the toolpath's rows across workers
// goroutines, each building its own row range via GeneratePartial, then
// merges the results into one Path. workers <= 1 falls back to Generate.
//
// This is a capability the core's original single-threaded design never
// needed (and the spec it was distilled from has no analogue for): the
// per-row min-clearance scan is embarrassingly parallel, since every row
// reads the terrain map and sparse tool read-only and writes disjoint
// output rows.
func (s *Session) GenerateConcurrent(workers int) *toolpath.Path {
	if workers <= 1 {
		return s.Generate()
	}

	var path *toolpath.Path
	s.Ctx.Time(buildctx.TimerGenerateToolpath, func() {
		sRows, p := toolpath.Dims(s.terrainMap, s.Settings.XStep, s.Settings.YStep)

		full := &toolpath.Path{S: sRows, P: p, Data: make([]float32, sRows*p)}
		rowsPerWorker := (int(sRows) + workers - 1) / workers

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			start := int32(w * rowsPerWorker)
			end := int32((w + 1) * rowsPerWorker)
			if start >= sRows {
				continue
			}
			if end > sRows {
				end = sRows
			}
			wg.Add(1)
			go func(start, end int32) {
				defer wg.Done()
				part := toolpath.GeneratePartial(s.terrainMap, s.sparse, s.Settings.XStep, s.Settings.YStep, s.Settings.OOBZ, s.policy(), start, end)
				// Row ranges are disjoint across workers, so writing
				// directly into the shared buffer needs no locking.
				copy(full.Data[start*p:end*p], part.Data[start*p:end*p])
			}(start, end)
		}
		wg.Wait()

		path = full
	})

	s.path = path
	return path
}

// CopyPath writes the most recently generated path into out, row-major.
func (s *Session) CopyPath(out []float32) {
	s.path.CopyTo(out)
}

// PathDims returns the most recently generated path's (S, P) shape.
func (s *Session) PathDims() (sRows, p int32) {
	return s.path.Dims()
}

// MapDims returns the terrain height map's (W, H) shape.
func (s *Session) MapDims() (w, h int32) {
	return s.terrainMap.W, s.terrainMap.H
}

// Close releases the session's retained buffers. A Session must not be
// used after Close.
func (s *Session) Close() {
	s.terrainSampler = nil
	s.toolSampler = nil
	s.terrainMap = nil
	s.toolMap = nil
	s.sparse = nil
	s.path = nil
}
