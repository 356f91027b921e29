package terrain

import (
	"runtime"
	"sync"

	"github.com/yuann3/lrle/pkg/math"
)

// DefaultChunkSize is the default chunk edge length in samples.
const DefaultChunkSize = 256

// Chunk is a rectangular sub-region of a grid with its own mesh and
// bounding box. Chunks are the unit of frustum culling.
type Chunk struct {
	// Ordinal is the chunk's position in row-major creation order,
	// a stable identifier within one build.
	Ordinal int
	// Col, Row is the top-left sample index within the parent grid.
	Col, Row int
	// Cols, Rows is the sample extent, including the one-sample overlap
	// into the next chunk where one exists.
	Cols, Rows int
	// Mesh is the chunk's geometry, positioned in whole-grid world space.
	Mesh *Mesh
	// Bounds is the chunk's world-space AABB with tight Y from the
	// chunk's own sample heights.
	Bounds math.AABB
}

// BuildChunks partitions the grid into chunkSize-sample tiles and builds
// one mesh per tile. Chunk regions overlap their right/bottom neighbors
// by one sample so both sides generate identical boundary geometry and no
// seams appear. Chunks are returned in row-major creation order.
//
// Builds run in parallel across chunks; each build reads only its own
// sample window and writes only its own output slot, so no locking is
// needed beyond the final join.
//
// A degenerate grid (either dimension < 2) yields an empty chunk set.
func BuildChunks(g *Grid, chunkSize int, opts MeshOptions) []Chunk {
	if g.Width() < 2 || g.Height() < 2 {
		return nil
	}
	if chunkSize < 2 {
		chunkSize = DefaultChunkSize
	}

	chunksX := (g.Width() + chunkSize - 1) / chunkSize
	chunksZ := (g.Height() + chunkSize - 1) / chunkSize

	chunks := make([]Chunk, chunksX*chunksZ)
	for cz := 0; cz < chunksZ; cz++ {
		for cx := 0; cx < chunksX; cx++ {
			col := cx * chunkSize
			row := cz * chunkSize

			cols := chunkSize
			if col+cols > g.Width() {
				cols = g.Width() - col
			}
			rows := chunkSize
			if row+rows > g.Height() {
				rows = g.Height() - row
			}
			// One-sample overlap into the neighbor, when there is one.
			if col+cols < g.Width() {
				cols++
			}
			if row+rows < g.Height() {
				rows++
			}

			ordinal := cz*chunksX + cx
			chunks[ordinal] = Chunk{Ordinal: ordinal, Col: col, Row: row, Cols: cols, Rows: rows}
		}
	}

	// Fork-join: one task per chunk, results indexed by chunk ordinal so
	// output order is independent of scheduling.
	workers := runtime.GOMAXPROCS(0)
	if workers > len(chunks) {
		workers = len(chunks)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				buildChunk(g, &chunks[i], opts)
			}
		}()
	}
	for i := range chunks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return chunks
}

func buildChunk(g *Grid, ch *Chunk, opts MeshOptions) {
	region := Region{Col: ch.Col, Row: ch.Row, Cols: ch.Cols, Rows: ch.Rows}
	ch.Mesh = BuildMesh(g, region, opts)
	ch.Bounds = regionBounds(g, region, opts.HeightScale)
}

// regionBounds computes the world-space AABB of a sample region. X/Z use
// the same centering transform as mesh vertices; Y uses the region's own
// height range, which keeps per-chunk bounds tight for culling.
func regionBounds(g *Grid, region Region, heightScale float32) math.AABB {
	cx, cz := centerOffsets(g)

	minH := g.Sample(region.Col, region.Row)
	maxH := minH
	for r := region.Row; r < region.Row+region.Rows; r++ {
		for c := region.Col; c < region.Col+region.Cols; c++ {
			h := g.Sample(c, r)
			if h < minH {
				minH = h
			}
			if h > maxH {
				maxH = h
			}
		}
	}

	y0 := minH * heightScale
	y1 := maxH * heightScale
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	return math.AABB{
		Min: math.Vec3{
			X: float32(region.Col) - cx,
			Y: y0,
			Z: float32(region.Row) - cz,
		},
		Max: math.Vec3{
			X: float32(region.Col+region.Cols-1) - cx,
			Y: y1,
			Z: float32(region.Row+region.Rows-1) - cz,
		},
	}
}

// GridBounds returns the world-space AABB of the whole grid at the given
// height scale.
func GridBounds(g *Grid, heightScale float32) math.AABB {
	if g.Width() == 0 || g.Height() == 0 {
		return math.AABB{}
	}
	return regionBounds(g, WholeRegion(g), heightScale)
}
