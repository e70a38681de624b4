package openglhelper

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// VertexAttribute describes one float attribute inside an interleaved vertex.
type VertexAttribute struct {
	Index uint32
	Size  int32 // number of float components
}

// Mesh represents an indexed, interleaved float mesh
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads vertices and indices and records the attribute layout in a VAO.
// Attributes are packed in the order given, with no padding.
func NewMesh(vertices []float32, indices []uint32, attributes []VertexAttribute) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	var floatsPerVertex int32
	for _, a := range attributes {
		floatsPerVertex += a.Size
	}
	stride := floatsPerVertex * 4

	offset := 0
	for _, a := range attributes {
		vao.SetVertexAttribPointer(a.Index, a.Size, gl.FLOAT, false, stride, offset)
		offset += int(a.Size) * 4
	}

	// The EBO binding is part of the VAO state, so the VAO goes first
	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Bind makes the mesh's VAO current so that several Draw calls can share it
func (m *Mesh) Bind() {
	m.vao.Bind()
}

// Draw issues one indexed draw call for the whole mesh.
// The caller is responsible for the active program and its uniforms.
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
