package terrain

import (
	"errors"
	"reflect"
	"testing"
)

func testHeightfield(t *testing.T) *Heightfield {
	t.Helper()
	field, err := NewHeightfield(DefaultNoiseParameters(), DefaultHeightCurveParameters(), 10.0)
	if err != nil {
		t.Fatalf("NewHeightfield: %v", err)
	}
	return field
}

func TestBuildMeshCounts(t *testing.T) {
	field := testHeightfield(t)

	for lod := 0; lod <= MaxLevelOfDetail; lod++ {
		step := 1
		if lod > 0 {
			step = lod * 2
		}
		side := (GridSize-1)/step + 1

		mesh, err := BuildMesh(field, lod)
		if err != nil {
			t.Fatalf("BuildMesh(lod=%d): %v", lod, err)
		}

		if got, want := mesh.VertexCount(), side*side; got != want {
			t.Errorf("lod %d: vertex count = %d, want %d", lod, got, want)
		}
		if got, want := mesh.TriangleCount(), 2*(side-1)*(side-1); got != want {
			t.Errorf("lod %d: triangle count = %d, want %d", lod, got, want)
		}
		if len(mesh.Normals) != mesh.VertexCount() || len(mesh.UVs) != mesh.VertexCount() || len(mesh.Heights) != mesh.VertexCount() {
			t.Errorf("lod %d: attribute slices not parallel to positions", lod)
		}
	}
}

func TestBuildMeshFinestAtLODZero(t *testing.T) {
	field := testHeightfield(t)

	finest, err := BuildMesh(field, 0)
	if err != nil {
		t.Fatalf("BuildMesh(lod=0): %v", err)
	}

	for lod := 1; lod <= MaxLevelOfDetail; lod++ {
		coarser, err := BuildMesh(field, lod)
		if err != nil {
			t.Fatalf("BuildMesh(lod=%d): %v", lod, err)
		}
		if coarser.VertexCount() >= finest.VertexCount() {
			t.Errorf("lod %d has %d vertices, not fewer than lod 0's %d",
				lod, coarser.VertexCount(), finest.VertexCount())
		}
	}
}

func TestBuildMeshIndicesValid(t *testing.T) {
	field := testHeightfield(t)
	mesh, err := BuildMesh(field, 2)
	if err != nil {
		t.Fatalf("BuildMesh: %v", err)
	}

	if len(mesh.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(mesh.Indices))
	}
	for _, idx := range mesh.Indices {
		if int(idx) >= mesh.VertexCount() {
			t.Fatalf("index %d out of range for %d vertices", idx, mesh.VertexCount())
		}
	}
}

// Every triangle of a heightfield grid should face upward and cover a
// non-zero footprint on the XZ plane.
func TestBuildMeshWindingAndArea(t *testing.T) {
	field := testHeightfield(t)
	mesh, err := BuildMesh(field, 4)
	if err != nil {
		t.Fatalf("BuildMesh: %v", err)
	}

	for i := 0; i < len(mesh.Indices); i += 3 {
		a := mesh.Positions[mesh.Indices[i]]
		b := mesh.Positions[mesh.Indices[i+1]]
		c := mesh.Positions[mesh.Indices[i+2]]

		face := b.Sub(a).Cross(c.Sub(a))
		if face.Y <= 0 {
			t.Fatalf("triangle %d winds downward (face normal Y = %v)", i/3, face.Y)
		}
	}
}

func TestBuildMeshVertexNormalsUnit(t *testing.T) {
	field := testHeightfield(t)
	mesh, err := BuildMesh(field, 1)
	if err != nil {
		t.Fatalf("BuildMesh: %v", err)
	}

	for i, n := range mesh.Normals {
		l := n.Length()
		if l < 0.999 || l > 1.001 {
			t.Fatalf("normal %d has length %v, want ~1", i, l)
		}
		if n.Y <= 0 {
			t.Fatalf("normal %d points downward: %+v", i, n)
		}
	}
}

func TestBuildMeshHeightsMatchPositions(t *testing.T) {
	field := testHeightfield(t)
	mesh, err := BuildMesh(field, 3)
	if err != nil {
		t.Fatalf("BuildMesh: %v", err)
	}

	for i, h := range mesh.Heights {
		if h < 0 || h > 1 {
			t.Fatalf("vertex %d normalized height %v outside [0,1]", i, h)
		}
		want := h * 10.0
		got := mesh.Positions[i].Y
		if diff := got - want; diff > 1e-4 || diff < -1e-4 {
			t.Fatalf("vertex %d: position Y = %v, want normalized height * map height = %v", i, got, want)
		}
	}
}

func TestBuildMeshDeterministic(t *testing.T) {
	field := testHeightfield(t)

	a, err := BuildMesh(field, 0)
	if err != nil {
		t.Fatalf("BuildMesh: %v", err)
	}
	b, err := BuildMesh(field, 0)
	if err != nil {
		t.Fatalf("BuildMesh: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("two builds from the same heightfield differ")
	}
}

func TestBuildMeshRejectsBadLOD(t *testing.T) {
	field := testHeightfield(t)

	for _, lod := range []int{-1, MaxLevelOfDetail + 1, 100} {
		_, err := BuildMesh(field, lod)
		if !errors.Is(err, ErrGeometryConfig) {
			t.Errorf("BuildMesh(lod=%d) error = %v, want ErrGeometryConfig", lod, err)
		}
	}
}
