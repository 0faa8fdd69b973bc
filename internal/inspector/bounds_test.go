package inspector

import "testing"

func TestLookup(t *testing.T) {
	b, ok := Lookup("water_level")
	if !ok {
		t.Fatal("water_level bound not found")
	}
	if b.Min != 0 || b.Max != 1 {
		t.Errorf("water_level bounds = [%v,%v], want [0,1]", b.Min, b.Max)
	}

	if _, ok := Lookup("no_such_parameter"); ok {
		t.Error("Lookup returned a bound for an unknown parameter")
	}
}

func TestAdjustClamps(t *testing.T) {
	b, _ := Lookup("persistence")

	if got := b.Adjust(1.0, 1); got != 1.0 {
		t.Errorf("Adjust above max = %v, want clamped to 1.0", got)
	}
	if got := b.Adjust(0.0, -1); got != 0.0 {
		t.Errorf("Adjust below min = %v, want clamped to 0.0", got)
	}
	if got := b.Adjust(0.5, 1); got != 0.51 {
		t.Errorf("Adjust(0.5, +1) = %v, want 0.51", got)
	}
}

func TestBoundsMatchValidationRanges(t *testing.T) {
	// Editing bounds must never allow a value the core would reject.
	octaves, _ := Lookup("octaves")
	if octaves.Min < 1 || octaves.Max > 6 {
		t.Errorf("octaves bounds [%v,%v] exceed the valid range [1,6]", octaves.Min, octaves.Max)
	}
	scale, _ := Lookup("scale")
	if scale.Min <= 0 {
		t.Errorf("scale minimum %v would permit a zero divisor", scale.Min)
	}
	lod, _ := Lookup("level_of_detail")
	if lod.Min < 0 || lod.Max > 6 {
		t.Errorf("level_of_detail bounds [%v,%v] exceed [0,6]", lod.Min, lod.Max)
	}
}
