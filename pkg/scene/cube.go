package scene

// Cube geometry shared by every instance in the room. The cube has side 0.5
// with one corner at the origin, so a placement's translation is the
// position of that corner and its scale is applied to the 0.5 edge.
//
// Each vertex is position (3) followed by a color (3) the shaders ignore.
var CubeVertices = []float32{
	0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.5, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 0.0,

	0.0, 0.0, 0.5, 0.0, 0.0, 0.0,
	0.5, 0.0, 0.5, 0.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 0.0,
	0.0, 0.5, 0.5, 0.0, 0.0, 0.0,
}

// CubeIndices lists the 12 triangles of the cube
var CubeIndices = []uint32{
	1, 2, 3, // back
	3, 0, 1,

	5, 6, 7, // front
	7, 4, 5,

	4, 7, 3, // left
	3, 0, 4,

	5, 6, 2, // right
	2, 1, 5,

	5, 1, 0, // bottom
	0, 4, 5,

	6, 2, 3, // top
	3, 7, 6,
}

const (
	// CubeFloatsPerVertex is the interleaved vertex width
	CubeFloatsPerVertex = 6
	// CubeEdge is the untransformed edge length
	CubeEdge = 0.5
)
