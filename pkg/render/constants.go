package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-livingroom/pkg/controls"
)

// glfwKeys maps the control keys onto GLFW key codes
var glfwKeys = map[controls.Key]glfw.Key{
	controls.KeyEscape: glfw.KeyEscape,
	controls.Key0:      glfw.Key0,
	controls.Key1:      glfw.Key1,
	controls.Key2:      glfw.Key2,
	controls.Key3:      glfw.Key3,
	controls.Key4:      glfw.Key4,
	controls.KeyB:      glfw.KeyB,
	controls.KeyC:      glfw.KeyC,
	controls.KeyE:      glfw.KeyE,
	controls.KeyF:      glfw.KeyF,
	controls.KeyG:      glfw.KeyG,
	controls.KeyH:      glfw.KeyH,
	controls.KeyI:      glfw.KeyI,
	controls.KeyJ:      glfw.KeyJ,
	controls.KeyK:      glfw.KeyK,
	controls.KeyL:      glfw.KeyL,
	controls.KeyM:      glfw.KeyM,
	controls.KeyN:      glfw.KeyN,
	controls.KeyO:      glfw.KeyO,
	controls.KeyP:      glfw.KeyP,
	controls.KeyQ:      glfw.KeyQ,
	controls.KeyS:      glfw.KeyS,
	controls.KeyT:      glfw.KeyT,
	controls.KeyU:      glfw.KeyU,
	controls.KeyV:      glfw.KeyV,
	controls.KeyW:      glfw.KeyW,
	controls.KeyX:      glfw.KeyX,
	controls.KeyY:      glfw.KeyY,
	controls.KeyZ:      glfw.KeyZ,
}

// Mesh attribute locations, matching shaders/vert.glsl
const (
	attribPosition = 0
	attribColor    = 1
)

// Shader file names inside the shader directory
const (
	vertexShaderFile           = "vert.glsl"
	fragmentShaderFile         = "frag.glsl"
	constantFragmentShaderFile = "frag_constant.glsl"
)
