// Command window is the first assignment: open a 1280x768 window and clear
// it every frame. Escape closes the window.
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
	windowTitle  = "assignment 1: window"
)

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
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
	})

	return window.Run(app, opengl.NewDevice())
}
