package scene

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/yuann3/lrle/internal/engine/camera"
	"github.com/yuann3/lrle/internal/engine/cull"
	"github.com/yuann3/lrle/internal/terrain"
	"github.com/yuann3/lrle/pkg/math"
)

// Set is one generation of renderable terrain: either a single mesh
// (whole modes) or a list of chunks (chunked mode). A Set is immutable
// once built, so the render thread can read it without locks.
type Set struct {
	Mode       Mode
	Generation uint64

	// Whole modes.
	Mesh *terrain.Mesh

	// Chunked mode.
	Chunks []terrain.Chunk

	Bounds    math.AABB
	Vertices  int
	Triangles int
}

func buildSet(g *terrain.Grid, opts terrain.MeshOptions, chunkSize, maxDim int, gen uint64) *Set {
	set := &Set{Generation: gen}
	if g == nil {
		return set
	}

	set.Mode = modeForGridLimited(g.Width(), g.Height(), maxDim)
	set.Bounds = terrain.GridBounds(g, opts.HeightScale)

	if set.Mode == ModeChunked {
		set.Chunks = terrain.BuildChunks(g, chunkSize, opts)
		for i := range set.Chunks {
			m := set.Chunks[i].Mesh
			set.Vertices += len(m.Vertices)
			set.Triangles += m.TriangleCount()
		}
		return set
	}

	set.Mesh = terrain.BuildMesh(g, terrain.WholeRegion(g), opts)
	set.Vertices = len(set.Mesh.Vertices)
	set.Triangles = set.Mesh.TriangleCount()
	return set
}

// DrawItem is one mesh the renderer should draw this frame. Key is
// stable for the lifetime of a Set, so the renderer can key GPU
// buffers on it.
type DrawItem struct {
	Mesh   *terrain.Mesh
	Bounds math.AABB
	Key    uint64
}

// Stats describes what the last Frame call decided to draw.
type Stats struct {
	Mode           Mode
	Generation     uint64
	TotalChunks    int
	VisibleChunks  int
	TotalVertices  int
	TotalTriangles int
	DrawnVertices  int
	DrawnTriangles int
}

// Frame is the per-frame draw plan.
type Frame struct {
	ViewProjection math.Mat4
	Items          []DrawItem
	Stats          Stats
}

// Scene ties a camera to the current terrain set and plans each
// frame's draws. Mesh builds triggered by SetTerrain run on background
// goroutines; the newest finished build is swapped in on Update.
type Scene struct {
	log    *zap.Logger
	Camera *camera.Camera

	// MaxDimension caps the per-axis grid size before chunked mode is
	// forced. Zero means DefaultMaxDimension; set before SetTerrain.
	MaxDimension int

	selector cull.Selector
	current  *Set
	built    atomic.Pointer[Set]

	generation atomic.Uint64
	visible    []*terrain.Chunk
	items      []DrawItem
}

// New creates an empty scene.
func New(log *zap.Logger, cam *camera.Camera) *Scene {
	return &Scene{log: log, Camera: cam}
}

// SetTerrain rebuilds the renderable set for a grid on a background
// goroutine. If several rebuilds overlap, only the newest one wins;
// stale results are discarded.
func (s *Scene) SetTerrain(g *terrain.Grid, opts terrain.MeshOptions, chunkSize int) {
	s.warnIfOversized(g)
	gen := s.generation.Add(1)
	maxDim := s.maxDim()
	go func() {
		s.install(buildSet(g, opts, chunkSize, maxDim, gen))
	}()
}

// SetTerrainSync rebuilds on the calling goroutine and swaps the
// result in immediately. Used at startup so the first frame has
// terrain to draw.
func (s *Scene) SetTerrainSync(g *terrain.Grid, opts terrain.MeshOptions, chunkSize int) {
	s.warnIfOversized(g)
	s.install(buildSet(g, opts, chunkSize, s.maxDim(), s.generation.Add(1)))
	s.Update()
}

func (s *Scene) maxDim() int {
	if s.MaxDimension > 0 {
		return s.MaxDimension
	}
	return DefaultMaxDimension
}

// warnIfOversized logs an advisory when a grid will not render as a
// single mesh: either an axis exceeds the configured maximum, or the
// sample count alone lands the grid in chunked mode.
func (s *Scene) warnIfOversized(g *terrain.Grid) {
	if g == nil || s.log == nil {
		return
	}
	if maxDim := s.maxDim(); g.Width() > maxDim || g.Height() > maxDim {
		s.log.Warn("grid exceeds maximum dimension, chunked rendering forced",
			zap.Int("width", g.Width()),
			zap.Int("height", g.Height()),
			zap.Int("max_dimension", maxDim))
		return
	}
	if ModeForGrid(g.Width(), g.Height()) == ModeChunked {
		s.log.Warn("large grid, chunked rendering forced",
			zap.Int("width", g.Width()),
			zap.Int("height", g.Height()))
	}
}

func (s *Scene) install(set *Set) {
	for {
		old := s.built.Load()
		if old != nil && old.Generation > set.Generation {
			return
		}
		if s.built.CompareAndSwap(old, set) {
			return
		}
	}
}

// Update adopts the newest finished terrain build, if any. Returns
// true when the current set changed. Call once per frame on the
// render thread.
func (s *Scene) Update() bool {
	set := s.built.Load()
	if set == nil || set == s.current {
		return false
	}
	s.current = set
	if s.log != nil {
		s.log.Info("terrain set swapped",
			zap.Uint64("generation", set.Generation),
			zap.String("mode", set.Mode.String()),
			zap.Int("chunks", len(set.Chunks)),
			zap.Int("vertices", set.Vertices),
			zap.Int("triangles", set.Triangles))
	}
	return true
}

// Current returns the active terrain set, or nil before the first
// build lands.
func (s *Scene) Current() *Set {
	return s.current
}

// Frame plans the draws for the current camera and terrain set.
// The returned slice is reused across calls.
func (s *Scene) Frame(aspect float32) Frame {
	vp := s.Camera.ViewProjection(aspect)
	fr := Frame{ViewProjection: vp}

	set := s.current
	if set == nil {
		return fr
	}

	st := Stats{
		Mode:           set.Mode,
		Generation:     set.Generation,
		TotalVertices:  set.Vertices,
		TotalTriangles: set.Triangles,
	}
	s.items = s.items[:0]

	switch set.Mode {
	case ModeWhole:
		if set.Mesh != nil && len(set.Mesh.Vertices) > 0 {
			s.items = append(s.items, DrawItem{Mesh: set.Mesh, Bounds: set.Bounds, Key: itemKey(set.Generation, 0)})
			st.DrawnVertices = set.Vertices
			st.DrawnTriangles = set.Triangles
		}

	case ModeWholeTested:
		s.selector.Update(vp)
		if set.Mesh != nil && len(set.Mesh.Vertices) > 0 && s.selector.VisibleBounds(set.Bounds) {
			s.items = append(s.items, DrawItem{Mesh: set.Mesh, Bounds: set.Bounds, Key: itemKey(set.Generation, 0)})
			st.DrawnVertices = set.Vertices
			st.DrawnTriangles = set.Triangles
		}

	case ModeChunked:
		s.selector.Update(vp)
		s.visible = s.selector.Visible(s.visible[:0], set.Chunks)
		st.TotalChunks = len(set.Chunks)
		st.VisibleChunks = len(s.visible)
		for _, c := range s.visible {
			// Edge chunks one sample wide have no quads to draw.
			if c.Mesh == nil || len(c.Mesh.Vertices) == 0 {
				continue
			}
			s.items = append(s.items, DrawItem{Mesh: c.Mesh, Bounds: c.Bounds, Key: itemKey(set.Generation, c.Ordinal)})
			st.DrawnVertices += len(c.Mesh.Vertices)
			st.DrawnTriangles += c.Mesh.TriangleCount()
		}
	}

	fr.Items = s.items
	fr.Stats = st
	return fr
}

// itemKey packs a set generation and a mesh ordinal into one renderer
// cache key. Ordinals are chunk creation indices, so 32 bits leaves
// room for any buildable chunk count.
func itemKey(generation uint64, ordinal int) uint64 {
	return generation<<32 | uint64(ordinal)
}
