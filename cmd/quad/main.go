// Command quad is the second assignment: draw a static 2D quad colored by
// its texture coordinates. Escape closes the window, F1 toggles wireframe.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/gl-course/demo"
	"github.com/gl-course/demo/backend/opengl"
)

const (
	windowWidth  = 1280
	windowHeight = 768
	windowTitle  = "assignment 2: quad"
)

const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
`

const fragmentShaderSource = `
#version 330 core
in vec2 TexCoord;

out vec4 FragColor;

void main() {
    FragColor = vec4(TexCoord, 0.4, 1.0);
}
`

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	window, err := opengl.NewWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer window.Terminate()

	app := demo.New(demo.Config{
		Mesh:           demo.QuadMesh(),
		VertexShader:   vertexShaderSource,
		FragmentShader: fragmentShaderSource,
		ClearColor:     [4]float32{0.1, 0.1, 0.15, 1.0},
	})

	return window.Run(app, opengl.NewDevice())
}
