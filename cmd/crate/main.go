// Command crate is the fourth assignment: a rotating cube textured from
// crate.png in the working directory, with mipmaps. Escape closes the
// window, F1 toggles wireframe.
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
	windowTitle  = "assignment 4: textured cube"

	texturePath = "crate.png"
)

const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 mvp;

out vec2 TexCoord;

void main() {
    gl_Position = mvp * vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
`

const fragmentShaderSource = `
#version 330 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D crateTexture;

void main() {
    FragColor = texture(crateTexture, TexCoord);
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

	img, err := opengl.LoadImage(texturePath)
	if err != nil {
		return err
	}

	app := demo.New(demo.Config{
		Mesh:           demo.CrateMesh(),
		VertexShader:   vertexShaderSource,
		FragmentShader: fragmentShaderSource,
		TextureImage:   img,
		RotateSpeedX:   0.5,
		RotateSpeedY:   0.8,
		Scale:          1.0,
		ClearColor:     [4]float32{0.1, 0.1, 0.15, 1.0},
		DepthTest:      true,
	})

	return window.Run(app, opengl.NewDevice())
}
