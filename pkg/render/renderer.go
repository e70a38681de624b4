// Package render draws the room with OpenGL and runs the frame loop.
package render

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-livingroom/internal/openglhelper"
	"github.com/leterax/go-livingroom/pkg/config"
	"github.com/leterax/go-livingroom/pkg/controls"
	"github.com/leterax/go-livingroom/pkg/scene"
)

// Options configures a Renderer
type Options struct {
	Program    string // config.ProgramScene or config.ProgramConstant
	ShaderDir  string
	ClearColor mgl32.Vec4
	ApplyKnobs bool
}

// Renderer owns the GL resources and drives the frame loop
type Renderer struct {
	window  *openglhelper.Window
	state   *controls.AppState
	handler *controls.Handler
	opts    Options

	sceneShader    *openglhelper.Shader
	constantShader *openglhelper.Shader
	active         *openglhelper.Shader

	cube *openglhelper.Mesh
	room []scene.Instance

	// Timing
	lastFrameTime float64
	deltaTime     float32
	frames        uint64
}

// NewRenderer loads both shader programs, uploads the cube and hooks window callbacks
func NewRenderer(window *openglhelper.Window, state *controls.AppState, handler *controls.Handler, opts Options) (*Renderer, error) {
	r := &Renderer{
		window:  window,
		state:   state,
		handler: handler,
		opts:    opts,
		room:    scene.Room(),
	}

	var err error
	r.sceneShader, err = loadProgram(opts.ShaderDir, config.ProgramScene, vertexShaderFile, fragmentShaderFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	r.constantShader, err = loadProgram(opts.ShaderDir, config.ProgramConstant, vertexShaderFile, constantFragmentShaderFile)
	if err != nil {
		r.sceneShader.Delete()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	r.active = r.sceneShader
	if opts.Program == config.ProgramConstant {
		r.active = r.constantShader
	}

	r.cube = openglhelper.NewMesh(scene.CubeVertices, scene.CubeIndices, []openglhelper.VertexAttribute{
		{Index: attribPosition, Size: 3},
		{Index: attribColor, Size: 3},
	})

	// Set up callbacks
	window.GLFWWindow().SetScrollCallback(r.scrollCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(r.framebufferSizeCallback)

	slog.Info("room assembled", "instances", len(r.room), "program", r.active.Name)
	return r, nil
}

// Pressed implements controls.KeyState on top of GLFW key polling
func (r *Renderer) Pressed(key controls.Key) bool {
	k, ok := glfwKeys[key]
	if !ok {
		return false
	}
	return r.window.GetKeyState(k) == glfw.Press
}

// Run starts the main rendering loop and releases resources when the window closes
func (r *Renderer) Run() {
	r.lastFrameTime = r.window.Time()
	r.active.Use()

	for !r.window.ShouldClose() {
		// Calculate delta time
		currentTime := r.window.Time()
		r.deltaTime = float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		// Process input
		r.handler.Update(r.state, r, r.deltaTime)
		if r.state.Quit {
			r.window.SetShouldClose(true)
		}

		r.render()

		// The blades are drawn at the current angle before it advances
		r.state.Fan.Advance(r.deltaTime)
		r.frames++

		// Swap buffers and poll events
		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	slog.Info("window closed", "frames", r.frames)
	r.Cleanup()
}

// render draws every room instance with the active program
func (r *Renderer) render() {
	r.window.Clear(r.opts.ClearColor)

	s := r.active
	s.Use()
	s.SetMat4("projection", r.state.Camera.ProjectionMatrix(r.window.AspectRatio()))
	s.SetMat4("view", r.state.Camera.ViewMatrix())

	knobs := mgl32.Ident4()
	if r.opts.ApplyKnobs {
		knobs = r.state.Knobs.Matrix()
	}
	angle := r.state.Fan.RenderAngle()

	r.cube.Bind()
	for _, in := range r.room {
		s.SetMat4("model", knobs.Mul4(in.Model(angle)))
		s.SetVec4("color", in.Color)
		r.cube.Draw()
	}
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.cube != nil {
		r.cube.Delete()
		r.cube = nil
	}
	if r.sceneShader != nil {
		r.sceneShader.Delete()
		r.sceneShader = nil
	}
	if r.constantShader != nil {
		r.constantShader.Delete()
		r.constantShader = nil
	}

	// Close window
	r.window.Close()
}

// Callback functions
func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.state.Camera.Zoom(float32(yoffset))
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
}
