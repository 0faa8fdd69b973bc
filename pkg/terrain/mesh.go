package terrain

import (
	"fmt"
	"sync"

	"github.com/nhemsley/terrain-renderer/pkg/math"
)

// GridSize is the base heightfield resolution per side. 240 is divisible
// by every level-of-detail step (2, 4, 6, 8, 10, 12), so coarser grids
// always land on the map edges.
const GridSize = 241

// MaxLevelOfDetail is the coarsest mesh resolution tier.
const MaxLevelOfDetail = 6

// Mesh holds the triangulated heightfield, ready for rendering. All
// slices are parallel per vertex except Indices, which groups triples of
// vertex indices into counter-clockwise, upward-facing triangles. A mesh
// is created fresh per generation and never mutated afterwards.
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       [][2]float32
	Heights   []float32 // normalized per-vertex height, input to material blending
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// lodStep maps a level of detail to a grid stride. LOD 0 is the finest
// (stride 1); each higher tier doubles the coarsening increment.
func lodStep(lod int) (int, error) {
	if lod < 0 || lod > MaxLevelOfDetail {
		return 0, fmt.Errorf("%w: level of detail %d outside [0,%d]", ErrGeometryConfig, lod, MaxLevelOfDetail)
	}
	if lod == 0 {
		return 1, nil
	}
	return lod * 2, nil
}

// BuildMesh triangulates a GridSize x GridSize area of the heightfield at
// the given level of detail. The grid is centered on the origin in the XZ
// plane with one world unit per base cell.
//
// Heights are sampled row-parallel in a first pass; normals are derived by
// central finite differences over the completed height grid in a second
// pass, so each vertex only ever reads finished data.
func BuildMesh(field *Heightfield, lod int) (*Mesh, error) {
	step, err := lodStep(lod)
	if err != nil {
		return nil, err
	}
	if (GridSize-1)%step != 0 {
		return nil, fmt.Errorf("%w: step %d does not divide grid size %d", ErrGeometryConfig, step, GridSize-1)
	}

	side := (GridSize-1)/step + 1
	if side < 2 {
		return nil, fmt.Errorf("%w: grid of %d vertices per side cannot be triangulated", ErrGeometryConfig, side)
	}

	halfW := float64(GridSize-1) / 2
	spacing := float64(step)

	// Pass one: sample normalized heights. Rows are independent, so each
	// goroutine owns a disjoint slice of the grid.
	norm := make([][]float64, side)
	var wg sync.WaitGroup
	for row := 0; row < side; row++ {
		norm[row] = make([]float64, side)
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			z := -halfW + float64(row)*spacing
			for col := 0; col < side; col++ {
				x := -halfW + float64(col)*spacing
				norm[row][col] = field.Normalized(x, z)
			}
		}(row)
	}
	wg.Wait()

	scale := field.VerticalScale()
	mesh := &Mesh{
		Positions: make([]math.Vec3, side*side),
		Normals:   make([]math.Vec3, side*side),
		UVs:       make([][2]float32, side*side),
		Heights:   make([]float32, side*side),
		Indices:   make([]uint32, 0, (side-1)*(side-1)*6),
	}

	// Pass two: positions, UVs and finite-difference normals over the
	// completed height grid.
	for row := 0; row < side; row++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			z := -halfW + float64(row)*spacing
			for col := 0; col < side; col++ {
				x := -halfW + float64(col)*spacing
				i := row*side + col

				h := norm[row][col]
				mesh.Positions[i] = math.Vec3{
					X: float32(x),
					Y: float32(h * scale),
					Z: float32(z),
				}
				mesh.Normals[i] = gridNormal(norm, row, col, side, scale, spacing)
				mesh.UVs[i] = [2]float32{
					float32(col) / float32(side-1),
					float32(row) / float32(side-1),
				}
				mesh.Heights[i] = float32(h)
			}
		}(row)
	}
	wg.Wait()

	// Two triangles per cell, wound counter-clockwise seen from above so
	// face normals point up.
	for row := 0; row < side-1; row++ {
		for col := 0; col < side-1; col++ {
			a := uint32(row*side + col)
			b := a + uint32(side)
			c := b + 1
			d := a + 1
			mesh.Indices = append(mesh.Indices, a, b, c, a, c, d)
		}
	}

	return mesh, nil
}

// gridNormal computes the surface normal at a grid point from the world
// height gradient, using one-sided differences at the borders.
func gridNormal(norm [][]float64, row, col, side int, scale, spacing float64) math.Vec3 {
	left, right := col-1, col+1
	if left < 0 {
		left = 0
	}
	if right > side-1 {
		right = side - 1
	}
	back, front := row-1, row+1
	if back < 0 {
		back = 0
	}
	if front > side-1 {
		front = side - 1
	}

	dx := (norm[row][right] - norm[row][left]) * scale / (float64(right-left) * spacing)
	dz := (norm[front][col] - norm[back][col]) * scale / (float64(front-back) * spacing)

	return math.Vec3{
		X: float32(-dx),
		Y: 1,
		Z: float32(-dz),
	}.Normalize()
}
