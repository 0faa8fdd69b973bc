package terrain

import (
	"errors"
	"reflect"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	params := DefaultMapParameters()
	params.Noise.Seed = 99
	params.LevelOfDetail = 2

	meshA, matA, err := Generate(params)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	meshB, matB, err := Generate(params)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !reflect.DeepEqual(meshA, meshB) {
		t.Error("meshes from identical parameters differ")
	}
	if !reflect.DeepEqual(matA, matB) {
		t.Error("materials from identical parameters differ")
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	params := DefaultMapParameters()
	snapshot := DefaultMapParameters()

	if _, _, err := Generate(params); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(params, snapshot) {
		t.Error("Generate mutated its input parameters")
	}
}

func TestGenerateRejectsInvalidParameters(t *testing.T) {
	params := DefaultMapParameters()
	params.Noise.Scale = 0

	mesh, material, err := Generate(params)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Generate error = %v, want ErrInvalidParameter", err)
	}
	if mesh != nil || material != nil {
		t.Error("Generate returned partial output on invalid input")
	}
}

func TestGenerateRejectsBadLOD(t *testing.T) {
	params := DefaultMapParameters()
	params.LevelOfDetail = MaxLevelOfDetail + 1

	_, _, err := Generate(params)
	if !errors.Is(err, ErrGeometryConfig) {
		t.Errorf("Generate error = %v, want ErrGeometryConfig", err)
	}
}

func TestGenerateWireframePassthrough(t *testing.T) {
	params := DefaultMapParameters()
	params.Wireframe = true

	meshA, material, err := Generate(params)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !material.Wireframe {
		t.Error("wireframe hint lost in generation")
	}

	// The display flag must not influence geometry.
	params.Wireframe = false
	meshB, _, err := Generate(params)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(meshA, meshB) {
		t.Error("wireframe flag changed generated geometry")
	}
}

func TestGeneratePairsMeshAndMaterial(t *testing.T) {
	params := DefaultMapParameters()
	mesh, material, err := Generate(params)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Every per-vertex height must be blendable without panicking and
	// produce a color from the configured layers.
	for _, h := range mesh.Heights {
		c := material.Blend(float64(h))
		if c[3] == 0 {
			t.Fatal("blend produced a fully transparent color from opaque layers")
		}
	}
}
