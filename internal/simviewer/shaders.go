package simviewer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// shapeVertSrc draws flat-colored world-metre geometry (wall segments,
// the mouse's body/collision polygons, sensor cones, overlay tiles)
// as screen-space NDC, the same camera/zoom/resolution transform the
// teacher's chunk shader uses, simplified to a per-vertex color
// instead of a texture sample.
const shapeVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec4 aColor;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;

void main() {
    vec2 screenPos = (aPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

const shapeFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
