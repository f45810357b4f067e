/*
Package demo is the shared core of a set of introductory OpenGL programs:
opening a window, drawing a 2D quad, and rendering a rotating cube with and
without a texture.

# Overview

The package is backend-agnostic. All rendering goes through the Device
interface, implemented for OpenGL in backend/opengl and by mock devices in
tests, so geometry, transforms, input edges and the load/run/unload lifecycle
are all testable without a graphics context.

# Quick Start

	// Setup (on the main OS thread)
	window, _ := opengl.NewWindow(1280, 768, "cube")
	device := opengl.NewDevice()

	app := demo.New(demo.Config{
	    Mesh:           demo.CubeMesh(),
	    VertexShader:   vertexSrc,
	    FragmentShader: fragmentSrc,
	    RotateSpeedX:   0.6,
	    RotateSpeedY:   1.0,
	    Scale:          1.0,
	    DepthTest:      true,
	})

	// The window drives load, per-frame update/render, and unload.
	window.Run(app, device)

Each program in cmd/ builds one Config with compile-time constants; there is
no runtime configuration.
*/
package demo
