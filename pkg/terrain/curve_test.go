package terrain

import (
	"math"
	"testing"
)

func TestHeightCurveFlattensWater(t *testing.T) {
	c := DefaultHeightCurveParameters()

	for _, input := range []float64{0, 0.1, 0.2, 0.249, 0.25 - 1e-9} {
		if got := c.Evaluate(input); got != 0 {
			t.Errorf("Evaluate(%v) = %v, want 0", input, got)
		}
	}
	if got := c.Evaluate(0.25); got != 0 {
		t.Errorf("Evaluate(water level) = %v, want 0", got)
	}
}

func TestHeightCurveShape(t *testing.T) {
	c := HeightCurveParameters{WaterLevel: 0.25, Slope: 1.5}

	if got := c.Evaluate(1.0); got != 1.0 {
		t.Errorf("Evaluate(1.0) = %v, want 1.0", got)
	}

	want := math.Pow((0.625-0.25)/0.75, 1.5)
	if got := c.Evaluate(0.625); math.Abs(got-want) > 1e-12 {
		t.Errorf("Evaluate(0.625) = %v, want %v", got, want)
	}
}

func TestHeightCurveMonotonic(t *testing.T) {
	c := HeightCurveParameters{WaterLevel: 0.3, Slope: 2.5}

	prev := -1.0
	for i := 0; i <= 1000; i++ {
		input := float64(i) / 1000
		got := c.Evaluate(input)
		if got < prev {
			t.Fatalf("Evaluate(%v) = %v < previous %v, curve not monotonic", input, got, prev)
		}
		if got < 0 || got > 1 {
			t.Fatalf("Evaluate(%v) = %v outside [0,1]", input, got)
		}
		prev = got
	}
}

func TestHeightCurveWaterLevelOne(t *testing.T) {
	c := HeightCurveParameters{WaterLevel: 1.0, Slope: 1.5}

	if got := c.Evaluate(0.999); got != 0 {
		t.Errorf("Evaluate(0.999) = %v, want 0", got)
	}
	if got := c.Evaluate(1.0); got != 1 {
		t.Errorf("Evaluate(1.0) = %v, want 1", got)
	}
}

func TestHeightCurveValidation(t *testing.T) {
	tests := []struct {
		name  string
		curve HeightCurveParameters
	}{
		{"negative water level", HeightCurveParameters{WaterLevel: -0.1, Slope: 1.5}},
		{"water level above one", HeightCurveParameters{WaterLevel: 1.1, Slope: 1.5}},
		{"slope below one", HeightCurveParameters{WaterLevel: 0.25, Slope: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.curve.validate(); err == nil {
				t.Errorf("validate() accepted %+v", tt.curve)
			}
		})
	}
}
