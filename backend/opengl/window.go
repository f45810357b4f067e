package opengl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gl-course/demo"
)

// Window wraps the GLFW window and adapts its input events to demo keys.
type Window struct {
	window *glfw.Window
	input  *demo.InputState
}

// NewWindow initializes GLFW, opens a window with a 4.1 core
// forward-compatible context, makes the context current and initializes
// the OpenGL bindings. The caller must be locked to the main OS thread and
// must call Terminate when done.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	slog.Info("opengl context ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	w := &Window{
		window: window,
		input:  demo.NewInputState(),
	}
	window.SetKeyCallback(w.keyCallback)

	return w, nil
}

// Terminate destroys the GLFW context. Call once after Run returns.
func (w *Window) Terminate() {
	glfw.Terminate()
}

// Run drives the app lifecycle: load, then one update/render per display
// refresh until the window or the app requests close, then unload. The
// present call inside SwapBuffers blocks for vsync.
func (w *Window) Run(app *demo.App, dev *Device) error {
	fbWidth, fbHeight := w.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	app.Resize(fbWidth, fbHeight)

	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		app.Resize(width, height)
	})

	if err := app.Load(dev); err != nil {
		app.Unload()
		return fmt.Errorf("load: %w", err)
	}

	lastTime := glfw.GetTime()
	for !w.window.ShouldClose() {
		// Reset before polling so callbacks set this frame's edges.
		w.input.Reset()
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		app.Update(dt, w.input)
		if app.CloseRequested() {
			w.window.SetShouldClose(true)
		}

		app.Render(dev)
		w.window.SwapBuffers()
	}

	app.Unload()
	return nil
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	demoKey := glfwKeyToDemoKey(key)
	if demoKey == demo.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		w.input.SetKey(demoKey, true)
	case glfw.Release:
		w.input.SetKey(demoKey, false)
	}
}

// glfwKeyToDemoKey maps GLFW keys to demo keys.
func glfwKeyToDemoKey(key glfw.Key) demo.Key {
	switch key {
	case glfw.KeyEscape:
		return demo.KeyEscape
	case glfw.KeyF1:
		return demo.KeyF1
	default:
		return demo.KeyNone
	}
}
