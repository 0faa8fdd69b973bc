// Package terrain generates triangulated heightfield meshes and
// elevation-banded materials from a compact set of numeric parameters.
// Generation is pure: the same parameters always produce the same mesh
// and material, and no state is carried between calls.
package terrain

import "fmt"

// NoiseParameters controls the fractal noise field.
type NoiseParameters struct {
	Seed        int64   `yaml:"seed"`
	Scale       float64 `yaml:"scale"`       // spatial frequency divisor, > 0
	Octaves     int     `yaml:"octaves"`     // number of summed layers, 1..6
	Persistence float64 `yaml:"persistence"` // amplitude falloff per octave, 0..1
	Lacunarity  float64 `yaml:"lacunarity"`  // frequency multiplier per octave, >= 1
}

// MaxOctaves is the upper bound on fractal noise layers.
const MaxOctaves = 6

// DefaultNoiseParameters returns the standard noise settings.
func DefaultNoiseParameters() NoiseParameters {
	return NoiseParameters{
		Seed:        0,
		Scale:       40.0,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  3.0,
	}
}

func (p NoiseParameters) validate() error {
	if p.Scale <= 0 {
		return fmt.Errorf("%w: noise scale %v must be > 0", ErrInvalidParameter, p.Scale)
	}
	if p.Octaves < 1 || p.Octaves > MaxOctaves {
		return fmt.Errorf("%w: octaves %d outside [1,%d]", ErrInvalidParameter, p.Octaves, MaxOctaves)
	}
	if p.Persistence < 0 || p.Persistence > 1 {
		return fmt.Errorf("%w: persistence %v outside [0,1]", ErrInvalidParameter, p.Persistence)
	}
	if p.Lacunarity < 1 {
		return fmt.Errorf("%w: lacunarity %v must be >= 1", ErrInvalidParameter, p.Lacunarity)
	}
	return nil
}

// MaterialLayers describes the elevation color bands. N colors are
// separated by N-1 ascending height thresholds, each with a blend
// half-width over which adjacent colors are smoothly mixed.
type MaterialLayers struct {
	LayerColors  [][4]float32 `yaml:"layer_colors"`
	LayerHeights []float64    `yaml:"layer_heights"`
	BlendValues  []float64    `yaml:"blend_values"`
}

// DefaultMaterialLayers returns the standard five-band coloring:
// water, grass, forest, rock, snow.
func DefaultMaterialLayers() MaterialLayers {
	return MaterialLayers{
		LayerColors: [][4]float32{
			{0.0, 0.0, 1.0, 1.0}, // blue
			{0.0, 1.0, 0.0, 1.0}, // green
			{0.0, 0.5, 0.0, 1.0}, // dark green
			{0.5, 0.5, 0.5, 1.0}, // gray
			{1.0, 1.0, 1.0, 1.0}, // white
		},
		LayerHeights: []float64{0.2, 0.35, 0.5, 0.8},
		BlendValues:  []float64{0.05, 0.05, 0.1, 0.15},
	}
}

func (m MaterialLayers) validate() error {
	if len(m.LayerColors) < 1 {
		return fmt.Errorf("%w: at least one layer color required", ErrInvalidParameter)
	}
	if len(m.LayerHeights) != len(m.LayerColors)-1 {
		return fmt.Errorf("%w: %d layer heights for %d colors, want %d",
			ErrInvalidParameter, len(m.LayerHeights), len(m.LayerColors), len(m.LayerColors)-1)
	}
	if len(m.BlendValues) != len(m.LayerHeights) {
		return fmt.Errorf("%w: %d blend values for %d layer heights",
			ErrInvalidParameter, len(m.BlendValues), len(m.LayerHeights))
	}
	prev := -1.0
	for i, h := range m.LayerHeights {
		if h < 0 || h > 1 {
			return fmt.Errorf("%w: layer height %v outside [0,1]", ErrInvalidParameter, h)
		}
		if h <= prev {
			return fmt.Errorf("%w: layer heights must be strictly increasing (index %d)", ErrInvalidParameter, i)
		}
		prev = h
	}
	for _, b := range m.BlendValues {
		if b < 0 {
			return fmt.Errorf("%w: blend value %v must be >= 0", ErrInvalidParameter, b)
		}
	}
	return nil
}

// MapParameters is the full parameter bundle for one map generation.
// It is plain value data with no shared state; Generate never mutates it.
type MapParameters struct {
	Wireframe     bool                  `yaml:"wireframe"` // display hint, untouched by generation
	MapHeight     float64               `yaml:"map_height"`
	LevelOfDetail int                   `yaml:"level_of_detail"`
	Noise         NoiseParameters       `yaml:"noise"`
	HeightCurve   HeightCurveParameters `yaml:"height_curve"`
	Materials     MaterialLayers        `yaml:"materials"`
}

// DefaultMapParameters returns the standard map settings.
func DefaultMapParameters() MapParameters {
	return MapParameters{
		Wireframe:     false,
		MapHeight:     10.0,
		LevelOfDetail: 0,
		Noise:         DefaultNoiseParameters(),
		HeightCurve:   DefaultHeightCurveParameters(),
		Materials:     DefaultMaterialLayers(),
	}
}

// Validate checks every parameter group and reports the first violation.
// Generation refuses to start on invalid input rather than degrade.
func (p MapParameters) Validate() error {
	if p.MapHeight <= 0 {
		return fmt.Errorf("%w: map height %v must be > 0", ErrInvalidParameter, p.MapHeight)
	}
	if err := p.Noise.validate(); err != nil {
		return err
	}
	if err := p.HeightCurve.validate(); err != nil {
		return err
	}
	if err := p.Materials.validate(); err != nil {
		return err
	}
	if _, err := lodStep(p.LevelOfDetail); err != nil {
		return err
	}
	return nil
}
