// Package opengl provides the OpenGL 4.1 backend for the demo package.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gl-course/demo"
)

// Device implements demo.Device against the current OpenGL context.
type Device struct{}

// NewDevice creates a Device. The OpenGL context must already be current;
// NewWindow makes it current and initializes the bindings.
func NewDevice() *Device {
	return &Device{}
}

// SetClearColor sets the color the framebuffer is cleared to.
func (d *Device) SetClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// EnableDepthTest enables depth testing for the 3D programs.
func (d *Device) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

// SetWireframe switches polygon rasterization between line and fill mode.
func (d *Device) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Clear clears the color buffer, and the depth buffer when depth is true.
func (d *Device) Clear(depth bool) {
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

// Mesh is a VAO with its vertex and index buffers. Geometry is uploaded
// once at creation and never updated.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// CreateMesh uploads the vertex and index arrays and records the attribute
// layout matching the demo.Vertex memory layout.
func (d *Device) CreateMesh(data demo.MeshData) (demo.Mesh, error) {
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return nil, fmt.Errorf("mesh requires vertices and indices")
	}

	m := &Mesh{indexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*int(unsafe.Sizeof(demo.Vertex{})),
		gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4,
		gl.Ptr(data.Indices), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(demo.Vertex{}))

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(demo.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	return m, nil
}

// Draw issues one indexed draw call for the whole mesh.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers. Safe to call more than once.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
