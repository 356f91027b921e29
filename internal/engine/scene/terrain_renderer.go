package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/yuann3/lrle/internal/engine/scene/shaders"
	"github.com/yuann3/lrle/internal/engine/shader"
	"github.com/yuann3/lrle/internal/terrain"
)

// meshBuffers is the GPU residence of one mesh.
type meshBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	generation uint64
}

// TerrainRenderer draws the frame plans produced by Scene. Meshes are
// uploaded on first use and cached by draw key; buffers from older set
// generations are released once a newer generation starts drawing.
type TerrainRenderer struct {
	program     uint32
	locViewProj int32
	locLightDir int32
	locAmbient  int32
	locUnlit    int32

	buffers    map[uint64]*meshBuffers
	generation uint64

	// Lighting knobs.
	LightDir [3]float32
	Ambient  [3]float32
	Unlit    bool

	// Wireframe switches the polygon mode for terrain draws.
	Wireframe bool
}

// NewTerrainRenderer compiles the terrain shader. Requires a current
// OpenGL context.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	program, err := shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	tr := &TerrainRenderer{
		program:  program,
		buffers:  make(map[uint64]*meshBuffers),
		LightDir: [3]float32{-0.4, -1, -0.3},
		Ambient:  [3]float32{0.35, 0.35, 0.35},
	}
	tr.locViewProj = shader.GetUniform(program, "uViewProj")
	tr.locLightDir = shader.GetUniform(program, "uLightDir")
	tr.locAmbient = shader.GetUniform(program, "uAmbient")
	tr.locUnlit = shader.GetUniform(program, "uUnlit")
	return tr, nil
}

// Render draws every item in the frame plan.
func (tr *TerrainRenderer) Render(fr Frame) {
	if len(fr.Items) == 0 {
		tr.evictBefore(fr.Stats.Generation)
		return
	}

	gl.UseProgram(tr.program)
	gl.UniformMatrix4fv(tr.locViewProj, 1, false, &fr.ViewProjection[0])
	gl.Uniform3f(tr.locLightDir, tr.LightDir[0], tr.LightDir[1], tr.LightDir[2])
	gl.Uniform3f(tr.locAmbient, tr.Ambient[0], tr.Ambient[1], tr.Ambient[2])
	if tr.Unlit {
		gl.Uniform1i(tr.locUnlit, 1)
	} else {
		gl.Uniform1i(tr.locUnlit, 0)
	}

	if tr.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	for _, item := range fr.Items {
		buf, ok := tr.buffers[item.Key]
		if !ok {
			buf = tr.upload(item.Mesh, fr.Stats.Generation)
			tr.buffers[item.Key] = buf
		}
		gl.BindVertexArray(buf.vao)
		gl.DrawElements(gl.TRIANGLES, buf.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)

	if tr.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	tr.evictBefore(fr.Stats.Generation)
}

func (tr *TerrainRenderer) upload(m *terrain.Mesh, generation uint64) *meshBuffers {
	buf := &meshBuffers{
		indexCount: int32(len(m.Indices)),
		generation: generation,
	}

	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Color (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// Normal (location 2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &buf.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return buf
}

// evictBefore releases GPU buffers built for set generations older
// than the one currently drawing.
func (tr *TerrainRenderer) evictBefore(generation uint64) {
	if generation <= tr.generation {
		return
	}
	tr.generation = generation
	for key, buf := range tr.buffers {
		if buf.generation < generation {
			tr.release(buf)
			delete(tr.buffers, key)
		}
	}
}

func (tr *TerrainRenderer) release(buf *meshBuffers) {
	if buf.vao != 0 {
		gl.DeleteVertexArrays(1, &buf.vao)
	}
	if buf.vbo != 0 {
		gl.DeleteBuffers(1, &buf.vbo)
	}
	if buf.ebo != 0 {
		gl.DeleteBuffers(1, &buf.ebo)
	}
}

// Destroy releases the shader and all cached mesh buffers.
func (tr *TerrainRenderer) Destroy() {
	for key, buf := range tr.buffers {
		tr.release(buf)
		delete(tr.buffers, key)
	}
	if tr.program != 0 {
		gl.DeleteProgram(tr.program)
		tr.program = 0
	}
}
