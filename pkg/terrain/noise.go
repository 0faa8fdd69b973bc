package terrain

import (
	"github.com/ojrac/opensimplex-go"
)

// NoiseField produces continuous fractal noise from 2D coordinates by
// summing opensimplex octaves at increasing frequency and decreasing
// amplitude. The seed drives the lattice permutation of the base noise,
// so samples are fully deterministic in (x, z, parameters).
type NoiseField struct {
	params NoiseParameters
	base   opensimplex.Noise
}

// NewNoiseField builds a noise field for the given parameters.
func NewNoiseField(params NoiseParameters) (*NoiseField, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &NoiseField{
		params: params,
		base:   opensimplex.New(params.Seed),
	}, nil
}

// Sample returns the fractal noise value at (x, z), normalized to [0,1].
func (f *NoiseField) Sample(x, z float64) float64 {
	frequency := 1.0
	amplitude := 1.0
	var sum, maxSum float64

	for octave := 0; octave < f.params.Octaves; octave++ {
		sum += amplitude * f.base.Eval2(x/f.params.Scale*frequency, z/f.params.Scale*frequency)
		maxSum += amplitude
		frequency *= f.params.Lacunarity
		amplitude *= f.params.Persistence
	}

	// Per-octave normalization keeps the sum in [-1,1]; clamp guards
	// against base noise slightly exceeding its nominal range.
	n := sum / maxSum
	if n < -1 {
		n = -1
	} else if n > 1 {
		n = 1
	}
	return (n + 1) / 2
}
