package demo_test

import (
	"testing"

	"github.com/gl-course/demo"
)

func isCorner(p [3]float32) bool {
	for _, c := range p {
		if c != -0.5 && c != 0.5 {
			return false
		}
	}
	return true
}

func TestQuadMesh(t *testing.T) {
	quad := demo.QuadMesh()

	if len(quad.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(quad.Vertices))
	}
	if len(quad.Indices) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(quad.Indices))
	}
	for i, idx := range quad.Indices {
		if idx > 3 {
			t.Errorf("index %d out of range: %d", i, idx)
		}
	}
}

func TestCubeVertices(t *testing.T) {
	cube := demo.CubeMesh()

	if len(cube.Vertices) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(cube.Vertices))
	}

	seen := make(map[[3]float32]bool)
	for _, v := range cube.Vertices {
		if !isCorner(v.Pos) {
			t.Errorf("position %v not a corner of the unit cube", v.Pos)
		}
		if seen[v.Pos] {
			t.Errorf("duplicate position %v", v.Pos)
		}
		seen[v.Pos] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 unique positions, got %d", len(seen))
	}
}

func TestCubeIndexBuffer(t *testing.T) {
	cube := demo.CubeMesh()

	if len(cube.Indices) != 36 {
		t.Fatalf("expected 36 indices, got %d", len(cube.Indices))
	}
	for i, idx := range cube.Indices {
		if idx > 7 {
			t.Errorf("index %d out of range: %d", i, idx)
		}
	}

	// Each of the 6 faces must be covered by exactly 2 triangles: a
	// triangle belongs to a face when all three of its vertices share
	// that face's fixed coordinate.
	for axis := 0; axis < 3; axis++ {
		for _, side := range []float32{-0.5, 0.5} {
			triangles := 0
			for tri := 0; tri < len(cube.Indices); tri += 3 {
				onFace := true
				for k := 0; k < 3; k++ {
					v := cube.Vertices[cube.Indices[tri+k]]
					if v.Pos[axis] != side {
						onFace = false
						break
					}
				}
				if onFace {
					triangles++
				}
			}
			if triangles != 2 {
				t.Errorf("face axis=%d side=%v covered by %d triangles, want 2", axis, side, triangles)
			}
		}
	}
}

func TestCrateMesh(t *testing.T) {
	crate := demo.CrateMesh()

	if len(crate.Vertices) != 24 {
		t.Fatalf("expected 24 vertices, got %d", len(crate.Vertices))
	}
	if len(crate.Indices) != 36 {
		t.Fatalf("expected 36 indices, got %d", len(crate.Indices))
	}

	positions := make(map[[3]float32]bool)
	for _, v := range crate.Vertices {
		if !isCorner(v.Pos) {
			t.Errorf("position %v not a corner of the unit cube", v.Pos)
		}
		positions[v.Pos] = true

		for _, uv := range v.TexCoord {
			if uv != 0 && uv != 1 {
				t.Errorf("texture coordinate %v not on the unit square", v.TexCoord)
			}
		}
	}
	if len(positions) != 8 {
		t.Errorf("expected the 8 cube corners, got %d unique positions", len(positions))
	}

	for i, idx := range crate.Indices {
		if idx > 23 {
			t.Errorf("index %d out of range: %d", i, idx)
		}
	}
}
