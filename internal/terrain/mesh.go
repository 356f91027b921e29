package terrain

import "math"

// Vertex is the GPU vertex layout: position, color, normal.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
	Normal   [3]float32
}

// Mesh holds vertex and triangle-list index data ready for GPU upload.
// Triangles wind counter-clockwise when viewed from above (+Y).
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// NormalMode selects how vertex normals are generated.
type NormalMode int

const (
	// NormalsSmooth averages adjacent face normals per vertex. Vertices
	// are shared between triangles (one vertex per grid sample).
	NormalsSmooth NormalMode = iota
	// NormalsFlat assigns each triangle its face normal. Vertex sharing
	// is disabled (three vertices per triangle) so faces stay faceted.
	NormalsFlat
)

// String returns the mode name used in config files and the UI.
func (n NormalMode) String() string {
	if n == NormalsFlat {
		return "flat"
	}
	return "smooth"
}

// MeshOptions controls mesh generation.
type MeshOptions struct {
	// HeightScale multiplies sample heights into world Y.
	HeightScale float32
	// Normals selects flat or smooth shading geometry.
	Normals NormalMode
	// Color maps heights to colors for grids without per-sample colors.
	// Nil defaults to the terrain scheme.
	Color ColorFunc
}

// Region is a rectangular sample-index window into a grid.
type Region struct {
	Col, Row   int // top-left sample
	Cols, Rows int // sample counts
}

// WholeRegion returns the region covering the entire grid.
func WholeRegion(g *Grid) Region {
	return Region{Cols: g.Width(), Rows: g.Height()}
}

// BuildMesh generates a triangle mesh for a sample region of the grid.
//
// Vertex X/Z come from sample indices offset by the whole grid's center,
// so meshes built from different regions of the same grid stay registered
// with each other. Each quad splits along the (c,r)-(c+1,r+1) diagonal,
// always, so regeneration is deterministic.
//
// A region narrower than 2 samples in either axis yields an empty mesh.
func BuildMesh(g *Grid, region Region, opts MeshOptions) *Mesh {
	if region.Cols < 2 || region.Rows < 2 {
		return &Mesh{}
	}
	if opts.Color == nil {
		opts.Color = SchemeColor(SchemeTerrain)
	}

	if opts.Normals == NormalsFlat {
		return buildFlat(g, region, opts)
	}
	return buildSmooth(g, region, opts)
}

// centerOffsets places the whole grid's centroid at the world origin.
func centerOffsets(g *Grid) (float32, float32) {
	cx := float32(g.Width()-1) / 2.0
	cz := float32(g.Height()-1) / 2.0
	return cx, cz
}

// samplePosition returns the world-space position of sample (c, r).
func samplePosition(g *Grid, c, r int, heightScale float32) [3]float32 {
	cx, cz := centerOffsets(g)
	return [3]float32{
		float32(c) - cx,
		g.Sample(c, r) * heightScale,
		float32(r) - cz,
	}
}

func sampleColor(g *Grid, c, r int, colorFn ColorFunc) [3]float32 {
	if g.HasColors() {
		return unpackRGB(g.Color(c, r))
	}
	min, max := g.HeightBounds()
	return colorFn(g.Sample(c, r), min, max)
}

// buildSmooth emits one shared vertex per sample. Normals accumulate the
// face normals of adjacent triangles, then normalize.
func buildSmooth(g *Grid, region Region, opts MeshOptions) *Mesh {
	cols, rows := region.Cols, region.Rows
	vertices := make([]Vertex, 0, cols*rows)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			gc, gr := region.Col+c, region.Row+r
			vertices = append(vertices, Vertex{
				Position: samplePosition(g, gc, gr, opts.HeightScale),
				Color:    sampleColor(g, gc, gr, opts.Color),
			})
		}
	}

	indices := make([]uint32, 0, 6*(cols-1)*(rows-1))
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			v00 := uint32(r*cols + c)
			v10 := v00 + 1
			v01 := v00 + uint32(cols)
			v11 := v01 + 1

			// Diagonal v00-v11; CCW seen from +Y.
			indices = append(indices,
				v00, v01, v11,
				v00, v11, v10,
			)
		}
	}

	// Accumulate face normals, then normalize per vertex.
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		n := faceNormal(vertices[a].Position, vertices[b].Position, vertices[c].Position)
		addNormal(&vertices[a], n)
		addNormal(&vertices[b], n)
		addNormal(&vertices[c], n)
	}
	for i := range vertices {
		vertices[i].Normal = normalize(vertices[i].Normal)
	}

	return &Mesh{Vertices: vertices, Indices: indices}
}

// buildFlat emits three unshared vertices per triangle so each face keeps
// its own normal.
func buildFlat(g *Grid, region Region, opts MeshOptions) *Mesh {
	cols, rows := region.Cols, region.Rows
	quadCount := (cols - 1) * (rows - 1)
	vertices := make([]Vertex, 0, 6*quadCount)
	indices := make([]uint32, 0, 6*quadCount)

	corner := func(c, r int) Vertex {
		gc, gr := region.Col+c, region.Row+r
		return Vertex{
			Position: samplePosition(g, gc, gr, opts.HeightScale),
			Color:    sampleColor(g, gc, gr, opts.Color),
		}
	}

	emit := func(a, b, c Vertex) {
		n := faceNormal(a.Position, b.Position, c.Position)
		a.Normal, b.Normal, c.Normal = n, n, n
		base := uint32(len(vertices))
		vertices = append(vertices, a, b, c)
		indices = append(indices, base, base+1, base+2)
	}

	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			v00 := corner(c, r)
			v10 := corner(c+1, r)
			v01 := corner(c, r+1)
			v11 := corner(c+1, r+1)

			emit(v00, v01, v11)
			emit(v00, v11, v10)
		}
	}

	return &Mesh{Vertices: vertices, Indices: indices}
}

func faceNormal(a, b, c [3]float32) [3]float32 {
	e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	return normalize(cross(e1, e2))
}

func addNormal(v *Vertex, n [3]float32) {
	v.Normal[0] += n[0]
	v.Normal[1] += n[1]
	v.Normal[2] += n[2]
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l < 1e-6 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
