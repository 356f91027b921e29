// Package debug provides debug visualization utilities.
package debug

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/yuann3/lrle/internal/engine/scene/shaders"
	"github.com/yuann3/lrle/internal/engine/shader"
	"github.com/yuann3/lrle/pkg/math"
)

// BoxEdgeVertexCount is the number of line vertices per box (12 edges,
// 2 endpoints each).
const BoxEdgeVertexCount = 24

// AppendBoxEdges appends the 24 wireframe line vertices of a box to
// dst as x,y,z triples and returns the extended slice.
func AppendBoxEdges(dst []float32, b math.AABB) []float32 {
	minX, minY, minZ := b.Min.X, b.Min.Y, b.Min.Z
	maxX, maxY, maxZ := b.Max.X, b.Max.Y, b.Max.Z
	return append(dst,
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	)
}

// BoundsOverlay draws bounding boxes as wireframe lines, used to
// visualize chunk partitions and culling.
type BoundsOverlay struct {
	program     uint32
	locViewProj int32
	locColor    int32

	vao      uint32
	vbo      uint32
	capacity int

	verts []float32

	// Color of the wireframe lines.
	Color [3]float32
}

// NewBoundsOverlay compiles the line shader. Requires a current OpenGL
// context.
func NewBoundsOverlay() (*BoundsOverlay, error) {
	program, err := shader.CompileProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}

	o := &BoundsOverlay{
		program: program,
		Color:   [3]float32{1, 0.8, 0.1},
	}
	o.locViewProj = shader.GetUniform(program, "uViewProj")
	o.locColor = shader.GetUniform(program, "uColor")

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return o, nil
}

// Render draws the wireframes of all boxes. The vertex buffer grows as
// needed and is reused between frames.
func (o *BoundsOverlay) Render(viewProj math.Mat4, boxes []math.AABB) {
	if len(boxes) == 0 {
		return
	}

	o.verts = o.verts[:0]
	for _, b := range boxes {
		o.verts = AppendBoxEdges(o.verts, b)
	}

	gl.UseProgram(o.program)
	gl.UniformMatrix4fv(o.locViewProj, 1, false, &viewProj[0])
	gl.Uniform3f(o.locColor, o.Color[0], o.Color[1], o.Color[2])

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	if len(o.verts) > o.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(o.verts)*4, unsafe.Pointer(&o.verts[0]), gl.DYNAMIC_DRAW)
		o.capacity = len(o.verts)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(o.verts)*4, unsafe.Pointer(&o.verts[0]))
	}

	gl.DrawArrays(gl.LINES, 0, int32(len(o.verts)/3))
	gl.BindVertexArray(0)
}

// Destroy releases GL resources.
func (o *BoundsOverlay) Destroy() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.program != 0 {
		gl.DeleteProgram(o.program)
		o.program = 0
	}
}
