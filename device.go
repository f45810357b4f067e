package demo

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Device is the interface for GPU resource creation and per-frame state.
// backend/opengl implements it against a real GL context; tests implement
// it with mocks.
type Device interface {
	CreateMesh(data MeshData) (Mesh, error)
	CreateProgram(vertexSrc, fragmentSrc string) (Program, error)
	CreateTexture(img image.Image) (Texture, error)

	// SetClearColor and EnableDepthTest set static state once during load.
	SetClearColor(r, g, b, a float32)
	EnableDepthTest()

	// SetWireframe switches polygon rasterization between line and fill mode.
	SetWireframe(enabled bool)

	// Clear clears the color buffer, and the depth buffer when depth is true.
	Clear(depth bool)
}

// Mesh is an uploaded vertex/index buffer pair. Geometry is immutable after
// creation; there is no update operation.
type Mesh interface {
	// Draw issues one indexed draw call for the whole mesh.
	Draw()
	// Delete releases the GPU buffers. Safe to call more than once.
	Delete()
}

// Program is a linked shader program.
type Program interface {
	Use()
	// SetMat4 sets a mat4 uniform by name. Unknown names are silently
	// ignored (tolerant binding).
	SetMat4(name string, m mgl32.Mat4)
	// Delete releases the program. Safe to call more than once.
	Delete()
}

// Texture is an uploaded 2D texture.
type Texture interface {
	Bind()
	// Delete releases the texture. Safe to call more than once.
	Delete()
}
