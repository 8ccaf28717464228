package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

const vertexShaderSource = `
	#version 410 core
	layout (location = 0) in vec2 aPos;
	layout (location = 1) in vec2 aTexCoord;
	out vec2 TexCoord;
	void main() {
		gl_Position = vec4(aPos, 0.0, 1.0);
		TexCoord = aTexCoord;
	}
` + "\x00"

const fragmentShaderSource = `
	#version 410 core
	out vec4 FragColor;
	in vec2 TexCoord;
	uniform sampler2D frame;
	void main() {
		FragColor = vec4(clamp(texture(frame, TexCoord).rgb, 0.0, 1.0), 1.0);
	}
` + "\x00"

// display draws a frame buffer as a full-window textured quad
type display struct {
	vao, vbo uint32
	program  uint32
	texture  uint32
}

func newDisplay() (*display, error) {
	// Texture (0, 0) is the bottom-left corner, matching buffer row 0
	vertices := []float32{
		-1.0, -1.0, 0.0, 0.0,
		1.0, -1.0, 1.0, 0.0,
		-1.0, 1.0, 0.0, 1.0,
		1.0, 1.0, 1.0, 1.0,
	}

	d := &display{}
	gl.GenVertexArrays(1, &d.vao)
	gl.GenBuffers(1, &d.vbo)

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	program, err := createShaderProgram()
	if err != nil {
		return nil, err
	}
	d.program = program
	gl.UseProgram(d.program)
	gl.Uniform1i(gl.GetUniformLocation(d.program, gl.Str("frame\x00")), 0)

	gl.GenTextures(1, &d.texture)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	return d, nil
}

// draw uploads the frame as an RGB float texture and draws it
func (d *display) draw(frame *renderer.FrameBuffer) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB32F, int32(frame.Width()), int32(frame.Height()), 0,
		gl.RGB, gl.FLOAT, gl.Ptr(frame.Pixels()))

	gl.UseProgram(d.program)
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

func (d *display) delete() {
	gl.DeleteTextures(1, &d.texture)
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteProgram(d.program)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", infoLog)
	}

	return shader, nil
}

func createShaderProgram() (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link shader program")
	}

	return program, nil
}
