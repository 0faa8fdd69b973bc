package terrain

// Generate produces a mesh and material from one parameter snapshot.
// Parameters are validated up front; generation either fully succeeds or
// returns an error with nothing built. Repeated calls are independent,
// so a caller regenerating on live parameter edits can simply discard
// superseded results.
func Generate(params MapParameters) (*Mesh, *Material, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}

	field, err := NewHeightfield(params.Noise, params.HeightCurve, params.MapHeight)
	if err != nil {
		return nil, nil, err
	}

	mesh, err := BuildMesh(field, params.LevelOfDetail)
	if err != nil {
		return nil, nil, err
	}

	material, err := NewMaterial(params.Materials, params.Wireframe)
	if err != nil {
		return nil, nil, err
	}

	return mesh, material, nil
}
