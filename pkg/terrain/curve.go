package terrain

import (
	"fmt"
	"math"
)

// HeightCurveParameters remap raw normalized noise height to a shaped
// elevation: everything below WaterLevel is flattened to zero, heights
// above it are raised to the Slope exponent.
type HeightCurveParameters struct {
	WaterLevel float64 `yaml:"water_level"` // elevation floor, 0..1
	Slope      float64 `yaml:"slope"`       // steepness exponent, >= 1
}

// DefaultHeightCurveParameters returns the standard curve settings.
func DefaultHeightCurveParameters() HeightCurveParameters {
	return HeightCurveParameters{
		WaterLevel: 0.25,
		Slope:      1.5,
	}
}

func (c HeightCurveParameters) validate() error {
	if c.WaterLevel < 0 || c.WaterLevel > 1 {
		return fmt.Errorf("%w: water level %v outside [0,1]", ErrInvalidParameter, c.WaterLevel)
	}
	if c.Slope < 1 {
		return fmt.Errorf("%w: slope %v must be >= 1", ErrInvalidParameter, c.Slope)
	}
	return nil
}

// Evaluate remaps a height in [0,1] to a shaped height in [0,1].
// The curve is monotonically non-decreasing and stateless.
func (c HeightCurveParameters) Evaluate(input float64) float64 {
	// WaterLevel of 1 would divide by zero below; the curve degenerates
	// to a step at 1.
	if c.WaterLevel >= 1 {
		if input >= 1 {
			return 1
		}
		return 0
	}
	if input < c.WaterLevel {
		return 0
	}
	v := math.Pow((input-c.WaterLevel)/(1-c.WaterLevel), c.Slope)
	if v > 1 {
		return 1
	}
	return v
}
