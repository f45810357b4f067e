package demo

import (
	"fmt"
	"image"
	"log/slog"
)

// Phase is the lifecycle phase of an App: Loading → Running → Unloaded,
// linear, no re-entry.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseRunning
	PhaseUnloaded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseRunning:
		return "running"
	case PhaseUnloaded:
		return "unloaded"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Config describes one demo program. All fields are compile-time constants
// set by the cmd/ mains; there is no runtime configuration.
type Config struct {
	// Mesh is the geometry to upload. An empty mesh is allowed (the
	// window-only program draws nothing).
	Mesh MeshData

	// Shader sources (GLSL). Both empty means no program is created.
	VertexShader   string
	FragmentShader string

	// TextureImage, when non-nil, is uploaded as a 2D texture and bound
	// for every draw.
	TextureImage image.Image

	// Rotation speeds in radians per second and uniform model scale.
	RotateSpeedX float32
	RotateSpeedY float32
	Scale        float32

	ClearColor [4]float32
	DepthTest  bool

	// Logger receives shader diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// App runs one demo: it owns the GPU resources for its whole lifetime and
// is driven by the windowing host once per display refresh.
type App struct {
	cfg    Config
	logger *slog.Logger
	phase  Phase

	transform      Transform
	wireframe      bool
	appliedWire    bool
	closeRequested bool

	mesh    Mesh
	program Program
	texture Texture
}

// New creates an App in the Loading phase.
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg:       cfg,
		logger:    logger,
		transform: NewTransform(cfg.RotateSpeedX, cfg.RotateSpeedY, cfg.Scale),
	}
}

// Load allocates GPU resources and sets static render state, then moves the
// app to Running.
//
// Shader compile/link failures are not fatal: the diagnostic is logged and
// the app keeps whatever program handle the device returned, so rendering
// continues with possibly degraded output. Mesh and texture failures are
// returned as errors.
func (a *App) Load(dev Device) error {
	if a.phase != PhaseLoading {
		return fmt.Errorf("load called in phase %s", a.phase)
	}

	dev.SetClearColor(a.cfg.ClearColor[0], a.cfg.ClearColor[1], a.cfg.ClearColor[2], a.cfg.ClearColor[3])
	if a.cfg.DepthTest {
		dev.EnableDepthTest()
	}
	dev.SetWireframe(false)
	a.appliedWire = false

	if len(a.cfg.Mesh.Vertices) > 0 {
		mesh, err := dev.CreateMesh(a.cfg.Mesh)
		if err != nil {
			return fmt.Errorf("create mesh: %w", err)
		}
		a.mesh = mesh
	}

	if a.cfg.VertexShader != "" || a.cfg.FragmentShader != "" {
		program, err := dev.CreateProgram(a.cfg.VertexShader, a.cfg.FragmentShader)
		a.program = program
		if err != nil {
			a.logger.Error("shader program failed, rendering may be degraded", "error", err)
		}
	}

	if a.cfg.TextureImage != nil {
		texture, err := dev.CreateTexture(a.cfg.TextureImage)
		if err != nil {
			return fmt.Errorf("create texture: %w", err)
		}
		a.texture = texture
	}

	a.phase = PhaseRunning
	return nil
}

// Update advances the time accumulator and handles input: Escape requests
// close, F1 toggles wireframe (edge-triggered, so a held key toggles once).
func (a *App) Update(dt float32, input *InputState) {
	if a.phase != PhaseRunning {
		return
	}

	a.transform.Advance(dt)

	if input.KeyDown(KeyEscape) {
		a.closeRequested = true
	}
	if input.KeyPressed(KeyF1) {
		a.wireframe = !a.wireframe
	}
}

// Render clears the buffers, binds the program and optional texture, sets
// the combined model-view-projection uniform and issues one indexed draw.
func (a *App) Render(dev Device) {
	if a.phase != PhaseRunning {
		return
	}

	if a.wireframe != a.appliedWire {
		dev.SetWireframe(a.wireframe)
		a.appliedWire = a.wireframe
	}

	dev.Clear(a.cfg.DepthTest)

	if a.program != nil {
		a.program.Use()
		a.program.SetMat4("mvp", a.transform.MVP())
	}
	if a.texture != nil {
		a.texture.Bind()
	}
	if a.mesh != nil {
		a.mesh.Draw()
	}
}

// Resize updates the projection aspect ratio. Model and view are unaffected.
func (a *App) Resize(width, height int) {
	a.transform.SetAspect(width, height)
}

// Unload releases all GPU resources exactly once. Calling it again, or
// after a load that never rendered, is a no-op for already-released
// resources.
func (a *App) Unload() {
	if a.texture != nil {
		a.texture.Delete()
		a.texture = nil
	}
	if a.mesh != nil {
		a.mesh.Delete()
		a.mesh = nil
	}
	if a.program != nil {
		a.program.Delete()
		a.program = nil
	}
	a.phase = PhaseUnloaded
}

// CloseRequested reports whether the quit key was seen.
func (a *App) CloseRequested() bool {
	return a.closeRequested
}

// Wireframe reports the current polygon mode toggle.
func (a *App) Wireframe() bool {
	return a.wireframe
}

// Phase returns the current lifecycle phase.
func (a *App) Phase() Phase {
	return a.phase
}
