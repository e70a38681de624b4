package render

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/leterax/go-livingroom/internal/openglhelper"
)

//go:embed shaders/*.glsl
var embeddedShaders embed.FS

// embeddedSource returns one of the shader files compiled into the binary
func embeddedSource(name string) (string, error) {
	b, err := embeddedShaders.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("embedded shader %s: %w", name, err)
	}
	return string(b), nil
}

// loadProgram compiles one program from a vertex and a fragment file. Files
// are read from dir when it is set and from the embedded copies otherwise.
func loadProgram(dir, name, vertexFile, fragmentFile string) (*openglhelper.Shader, error) {
	if dir != "" {
		return openglhelper.LoadShaderFromFiles(name, filepath.Join(dir, vertexFile), filepath.Join(dir, fragmentFile))
	}

	vertex, err := embeddedSource(vertexFile)
	if err != nil {
		return nil, err
	}
	fragment, err := embeddedSource(fragmentFile)
	if err != nil {
		return nil, err
	}
	return openglhelper.NewShader(name, vertex, fragment)
}
