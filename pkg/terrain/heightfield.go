package terrain

// Heightfield composes the noise field, the height curve and the vertical
// scale into elevation lookup at arbitrary (x, z) coordinates. It is the
// single sampling function the mesh builder calls per vertex; sampling is
// pure and safe to call from multiple goroutines.
type Heightfield struct {
	noise *NoiseField
	curve HeightCurveParameters
	scale float64
}

// NewHeightfield builds a heightfield sampler bound to the given
// noise and curve parameters and vertical scale.
func NewHeightfield(noise NoiseParameters, curve HeightCurveParameters, mapHeight float64) (*Heightfield, error) {
	field, err := NewNoiseField(noise)
	if err != nil {
		return nil, err
	}
	if err := curve.validate(); err != nil {
		return nil, err
	}
	return &Heightfield{
		noise: field,
		curve: curve,
		scale: mapHeight,
	}, nil
}

// Normalized returns the curve-remapped height in [0,1] at (x, z),
// before vertical scaling. This is the value the material blender
// compares against its layer thresholds.
func (h *Heightfield) Normalized(x, z float64) float64 {
	return h.curve.Evaluate(h.noise.Sample(x, z))
}

// Elevation returns the world-space height at (x, z).
func (h *Heightfield) Elevation(x, z float64) float64 {
	return h.Normalized(x, z) * h.scale
}

// VerticalScale returns the map height multiplier.
func (h *Heightfield) VerticalScale() float64 {
	return h.scale
}
