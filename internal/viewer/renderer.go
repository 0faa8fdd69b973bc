package viewer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/nhemsley/terrain-renderer/internal/engine/shader"
	"github.com/nhemsley/terrain-renderer/pkg/math"
	"github.com/nhemsley/terrain-renderer/pkg/terrain"
)

// floatsPerVertex is position (3) + normal (3) + color (4).
const floatsPerVertex = 10

// terrainRenderer owns the GPU resources for one generated map.
type terrainRenderer struct {
	program     uint32
	locViewProj int32
	locLightDir int32
	locAmbient  int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	wireframe  bool
}

func newTerrainRenderer() (*terrainRenderer, error) {
	program, err := shader.CompileProgram(TerrainVertexShader, TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	return &terrainRenderer{
		program:     program,
		locViewProj: shader.GetUniform(program, "uViewProj"),
		locLightDir: shader.GetUniform(program, "uLightDir"),
		locAmbient:  shader.GetUniform(program, "uAmbient"),
	}, nil
}

// Upload replaces the GPU mesh with a freshly generated one. Vertex
// colors are blended on the CPU from the material's layer bands.
func (tr *terrainRenderer) Upload(mesh *terrain.Mesh, material *terrain.Material) {
	tr.clear()

	vertices := make([]float32, 0, mesh.VertexCount()*floatsPerVertex)
	for i := range mesh.Positions {
		p := mesh.Positions[i]
		n := mesh.Normals[i]
		c := material.Blend(float64(mesh.Heights[i]))
		vertices = append(vertices,
			p.X, p.Y, p.Z,
			n.X, n.Y, n.Z,
			c[0], c[1], c[2], c[3],
		)
	}

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// Color (location 2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	tr.indexCount = int32(len(mesh.Indices))
	tr.wireframe = material.Wireframe
}

// Render draws the terrain with the given combined view-projection matrix.
func (tr *terrainRenderer) Render(viewProj math.Mat4) {
	if tr.vao == 0 {
		return
	}

	gl.UseProgram(tr.program)
	gl.UniformMatrix4fv(tr.locViewProj, 1, false, viewProj.Ptr())

	light := math.Vec3{X: -0.5, Y: -1, Z: -0.3}.Normalize()
	gl.Uniform3f(tr.locLightDir, light.X, light.Y, light.Z)
	gl.Uniform1f(tr.locAmbient, 0.35)

	if tr.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	gl.BindVertexArray(tr.vao)
	gl.DrawElements(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	if tr.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (tr *terrainRenderer) clear() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
		tr.ebo = 0
	}
	tr.indexCount = 0
}

// Destroy releases all resources.
func (tr *terrainRenderer) Destroy() {
	tr.clear()
	if tr.program != 0 {
		gl.DeleteProgram(tr.program)
		tr.program = 0
	}
}
