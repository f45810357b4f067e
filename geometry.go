package demo

// Vertex is one vertex as uploaded to the GPU.
// Memory layout matches the OpenGL vertex attribute expectations:
// position at offset 0, texture coordinates after it, tightly packed.
type Vertex struct {
	Pos      [3]float32 // Position (x, y, z)
	TexCoord [2]float32 // Texture coordinates (u, v)
}

// MeshData holds static vertex and index arrays to be uploaded once.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// QuadMesh returns a unit quad in the XY plane, centered at the origin:
// 4 vertices, 2 triangles.
func QuadMesh() MeshData {
	return MeshData{
		Vertices: []Vertex{
			{Pos: [3]float32{-0.5, -0.5, 0}, TexCoord: [2]float32{0, 0}},
			{Pos: [3]float32{0.5, -0.5, 0}, TexCoord: [2]float32{1, 0}},
			{Pos: [3]float32{0.5, 0.5, 0}, TexCoord: [2]float32{1, 1}},
			{Pos: [3]float32{-0.5, 0.5, 0}, TexCoord: [2]float32{0, 1}},
		},
		Indices: []uint32{
			0, 1, 2, // bottom-right triangle
			0, 2, 3, // top-left triangle
		},
	}
}

// CubeMesh returns a unit cube centered at the origin: the 8 corner
// vertices (coordinates in {-0.5, 0.5}) and 36 indices forming 12
// triangles, two per face. Texture coordinates are zero; the untextured
// cube derives its color from position in the shader.
func CubeMesh() MeshData {
	return MeshData{
		Vertices: []Vertex{
			{Pos: [3]float32{-0.5, -0.5, -0.5}}, // 0
			{Pos: [3]float32{0.5, -0.5, -0.5}},  // 1
			{Pos: [3]float32{0.5, 0.5, -0.5}},   // 2
			{Pos: [3]float32{-0.5, 0.5, -0.5}},  // 3
			{Pos: [3]float32{-0.5, -0.5, 0.5}},  // 4
			{Pos: [3]float32{0.5, -0.5, 0.5}},   // 5
			{Pos: [3]float32{0.5, 0.5, 0.5}},    // 6
			{Pos: [3]float32{-0.5, 0.5, 0.5}},   // 7
		},
		Indices: []uint32{
			4, 5, 6, 4, 6, 7, // front  (+z)
			1, 0, 3, 1, 3, 2, // back   (-z)
			0, 4, 7, 0, 7, 3, // left   (-x)
			5, 1, 2, 5, 2, 6, // right  (+x)
			7, 6, 2, 7, 2, 3, // top    (+y)
			0, 1, 5, 0, 5, 4, // bottom (-y)
		},
	}
}

// CrateMesh returns the textured unit cube: 24 vertices (4 per face, so
// each face gets its own texture coordinates) and 36 indices. Positions
// are the same 8 corners as CubeMesh.
func CrateMesh() MeshData {
	// Per-face corner order: bottom-left, bottom-right, top-right, top-left
	// as seen looking at the face from outside.
	faces := [6][4][3]float32{
		{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},     // front  (+z)
		{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}, // back   (-z)
		{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}, // left   (-x)
		{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},     // right  (+x)
		{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},     // top    (+y)
		{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}, // bottom (-y)
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	data := MeshData{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for f, corners := range faces {
		base := uint32(f * 4)
		for i, pos := range corners {
			data.Vertices = append(data.Vertices, Vertex{Pos: pos, TexCoord: uvs[i]})
		}
		data.Indices = append(data.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return data
}
