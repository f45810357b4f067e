package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gl-course/demo"
)

// Program is a linked shader program with cached uniform locations.
type Program struct {
	id        uint32
	locations map[string]int32
}

// CreateProgram compiles the vertex and fragment sources and links them.
//
// A Program is returned even when compilation or linking fails, so the
// caller can decide whether a broken program is acceptable; the demos log
// the returned diagnostic and keep rendering with it.
func (d *Device) CreateProgram(vertexSrc, fragmentSrc string) (demo.Program, error) {
	var errs []error

	vertex, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		errs = append(errs, fmt.Errorf("vertex shader: %w", err))
	}
	fragment, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		errs = append(errs, fmt.Errorf("fragment shader: %w", err))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		errs = append(errs, fmt.Errorf("link program: %s", programInfoLog(program)))
	}

	// The stage objects are no longer needed once the program is linked.
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	return &Program{
		id:        program,
		locations: make(map[string]int32),
	}, errors.Join(errs...)
}

// Use binds the program for subsequent uniform sets and draws.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetMat4 sets a mat4 uniform by name. Names the program does not declare
// resolve to location -1 and are silently ignored. Call after Use.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	loc, ok := p.locations[name]
	if !ok {
		loc = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		p.locations[name] = loc
	}
	if loc < 0 {
		return
	}
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// Delete releases the program object. Safe to call more than once.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return shader, fmt.Errorf("compile: %s", shaderInfoLog(shader))
	}
	return shader, nil
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "(no info log)"
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "(no info log)"
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}
