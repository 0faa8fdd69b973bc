// Package inspector exposes the editing bounds for map parameters.
// These are pure editing metadata for parameter-adjusting surfaces
// (the viewer's key bindings, a future UI); the generation core never
// consults them and enforces its own invariants through validation.
package inspector

// Bound describes the editable range and adjustment step of one
// numeric map parameter.
type Bound struct {
	Name string
	Min  float64
	Max  float64
	Step float64
}

// Bounds lists every editable numeric parameter.
var Bounds = []Bound{
	{Name: "scale", Min: 1, Max: 100, Step: 1},
	{Name: "octaves", Min: 1, Max: 6, Step: 1},
	{Name: "persistence", Min: 0, Max: 1, Step: 0.01},
	{Name: "lacunarity", Min: 1, Max: 10, Step: 0.01},
	{Name: "water_level", Min: 0, Max: 1, Step: 0.01},
	{Name: "slope", Min: 1, Max: 5, Step: 0.01},
	{Name: "map_height", Min: 1, Max: 100, Step: 1},
	{Name: "level_of_detail", Min: 0, Max: 6, Step: 1},
}

// Lookup returns the bound for a parameter name.
func Lookup(name string) (Bound, bool) {
	for _, b := range Bounds {
		if b.Name == name {
			return b, true
		}
	}
	return Bound{}, false
}

// Clamp restricts a value to the bound's range.
func (b Bound) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Adjust moves a value by direction steps, clamped to the range.
func (b Bound) Adjust(v float64, direction int) float64 {
	return b.Clamp(v + float64(direction)*b.Step)
}
