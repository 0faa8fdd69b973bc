package terrain

// Material is the renderable appearance of a generated map: the layer
// bundle for GPU-side blending plus CPU-side helpers for per-vertex
// coloring and gradient baking. It is paired with the Mesh produced from
// the same parameter snapshot but independently owned after creation.
type Material struct {
	LayerColors  [][4]float32
	LayerHeights []float64
	BlendValues  []float64

	// Wireframe is the display hint forwarded untouched from the map
	// parameters; generation logic never consumes it.
	Wireframe bool
}

// NewMaterial validates the layer configuration and builds a material.
func NewMaterial(layers MaterialLayers, wireframe bool) (*Material, error) {
	if err := layers.validate(); err != nil {
		return nil, err
	}
	return &Material{
		LayerColors:  layers.LayerColors,
		LayerHeights: layers.LayerHeights,
		BlendValues:  layers.BlendValues,
		Wireframe:    wireframe,
	}, nil
}

// Blend returns the color for a normalized height. Within a blend window
// around a threshold the two adjacent layer colors are mixed with a
// smoothstep ramp, giving the exact 50% mix at the threshold itself;
// outside all windows the flat layer color is returned unchanged.
func (m *Material) Blend(height float64) [4]float32 {
	color := m.LayerColors[0]
	for i, threshold := range m.LayerHeights {
		half := m.BlendValues[i]
		var t float64
		if half <= 0 {
			// Degenerate window: hard step, upper layer wins at the threshold.
			if height >= threshold {
				t = 1
			}
		} else {
			t = smoothstep((height - (threshold - half)) / (2 * half))
		}
		color = mix(color, m.LayerColors[i+1], float32(t))
	}
	return color
}

// Gradient bakes the blend into a width x 1 RGBA8 lookup texture spanning
// normalized heights 0..1, for renderers that sample appearance on the GPU.
func (m *Material) Gradient(width int) []byte {
	if width < 2 {
		width = 2
	}
	pix := make([]byte, width*4)
	for i := 0; i < width; i++ {
		c := m.Blend(float64(i) / float64(width-1))
		for ch := 0; ch < 4; ch++ {
			v := c[ch]
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			pix[i*4+ch] = byte(v*255 + 0.5)
		}
	}
	return pix
}

// smoothstep maps t in [0,1] to the cubic ease 3t^2-2t^3, clamped outside.
func smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func mix(a, b [4]float32, t float32) [4]float32 {
	return [4]float32{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
		a[3] + (b[3]-a[3])*t,
	}
}
