// Command cube is the third assignment: a rotating untextured cube, colored
// in the shader from vertex position. Escape closes the window, F1 toggles
// wireframe.
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
	windowTitle  = "assignment 3: rotating cube"
)

const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;

uniform mat4 mvp;

out vec3 Tint;

void main() {
    gl_Position = mvp * vec4(aPos, 1.0);
    Tint = aPos + vec3(0.5);
}
`

const fragmentShaderSource = `
#version 330 core
in vec3 Tint;

out vec4 FragColor;

void main() {
    FragColor = vec4(Tint, 1.0);
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
		Mesh:           demo.CubeMesh(),
		VertexShader:   vertexShaderSource,
		FragmentShader: fragmentShaderSource,
		RotateSpeedX:   0.6,
		RotateSpeedY:   1.0,
		Scale:          1.0,
		ClearColor:     [4]float32{0.1, 0.1, 0.15, 1.0},
		DepthTest:      true,
	})

	return window.Run(app, opengl.NewDevice())
}
