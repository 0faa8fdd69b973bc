// Package viewer runs the interactive terrain preview: it owns the
// editable map parameters, regenerates the terrain through the pure
// generation facade on every change, and renders the result.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/nhemsley/terrain-renderer/internal/config"
	"github.com/nhemsley/terrain-renderer/internal/engine/camera"
	"github.com/nhemsley/terrain-renderer/internal/engine/window"
	"github.com/nhemsley/terrain-renderer/internal/inspector"
	"github.com/nhemsley/terrain-renderer/internal/logger"
	"github.com/nhemsley/terrain-renderer/pkg/math"
	"github.com/nhemsley/terrain-renderer/pkg/terrain"
)

// Viewer is the interactive preview loop.
type Viewer struct {
	win      *window.Window
	cam      *camera.OrbitCamera
	renderer *terrainRenderer

	params   terrain.MapParameters
	dragging bool
}

// Run opens a window and drives the preview until the user quits.
func Run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "Terrain Renderer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)

	renderer, err := newTerrainRenderer()
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	v := &Viewer{
		win:      win,
		cam:      camera.NewOrbitCamera(float32(terrain.GridSize)),
		renderer: renderer,
		params:   cfg.Map,
	}

	if err := v.regenerate(); err != nil {
		return err
	}

	for v.handleEvents() {
		v.render()
		win.SwapBuffers()
		sdl.Delay(16)
	}

	return nil
}

// regenerate runs the pure generation facade with the current parameters
// and uploads the result. The previous mesh is simply replaced.
func (v *Viewer) regenerate() error {
	start := time.Now()
	mesh, material, err := terrain.Generate(v.params)
	if err != nil {
		return err
	}
	v.renderer.Upload(mesh, material)

	logger.Info("terrain generated",
		zap.Int64("seed", v.params.Noise.Seed),
		zap.Int("lod", v.params.LevelOfDetail),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// adjust edits one parameter through its inspector bound and regenerates.
func (v *Viewer) adjust(name string, target *float64, direction int) {
	bound, ok := inspector.Lookup(name)
	if !ok {
		return
	}
	next := bound.Adjust(*target, direction)
	if next == *target {
		return
	}
	*target = next
	logger.Info("parameter changed", zap.String("name", name), zap.Float64("value", next))
	v.mustRegenerate()
}

// mustRegenerate regenerates after an edit. Edits go through the
// inspector bounds, so the parameters stay valid; a failure here is a
// programming error worth surfacing loudly.
func (v *Viewer) mustRegenerate() {
	if err := v.regenerate(); err != nil {
		logger.Error("regeneration failed", zap.Error(err))
	}
}

// handleEvents drains the SDL queue. Returns false when the user quits.
func (v *Viewer) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if !v.handleKey(e.Keysym.Scancode) {
					return false
				}
			}

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_LEFT {
				v.dragging = e.Type == sdl.MOUSEBUTTONDOWN
			}

		case *sdl.MouseMotionEvent:
			if v.dragging {
				v.cam.HandleDrag(float32(e.XRel), float32(e.YRel))
			}

		case *sdl.MouseWheelEvent:
			v.cam.HandleZoom(float32(e.Y))
		}
	}
	return true
}

func (v *Viewer) handleKey(code sdl.Scancode) bool {
	switch code {
	case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
		return false

	case sdl.SCANCODE_TAB:
		v.params.Wireframe = !v.params.Wireframe
		v.mustRegenerate()

	case sdl.SCANCODE_R:
		v.params.Noise.Seed++
		logger.Info("reseeded", zap.Int64("seed", v.params.Noise.Seed))
		v.mustRegenerate()

	case sdl.SCANCODE_LEFTBRACKET:
		v.adjustLOD(-1)
	case sdl.SCANCODE_RIGHTBRACKET:
		v.adjustLOD(+1)

	case sdl.SCANCODE_UP:
		v.adjust("water_level", &v.params.HeightCurve.WaterLevel, +1)
	case sdl.SCANCODE_DOWN:
		v.adjust("water_level", &v.params.HeightCurve.WaterLevel, -1)

	case sdl.SCANCODE_RIGHT:
		v.adjust("slope", &v.params.HeightCurve.Slope, +1)
	case sdl.SCANCODE_LEFT:
		v.adjust("slope", &v.params.HeightCurve.Slope, -1)

	case sdl.SCANCODE_PAGEUP:
		v.adjust("map_height", &v.params.MapHeight, +1)
	case sdl.SCANCODE_PAGEDOWN:
		v.adjust("map_height", &v.params.MapHeight, -1)

	case sdl.SCANCODE_P:
		v.adjust("persistence", &v.params.Noise.Persistence, +1)
	case sdl.SCANCODE_O:
		v.adjust("persistence", &v.params.Noise.Persistence, -1)
	}
	return true
}

func (v *Viewer) adjustLOD(direction int) {
	bound, ok := inspector.Lookup("level_of_detail")
	if !ok {
		return
	}
	next := int(bound.Adjust(float64(v.params.LevelOfDetail), direction))
	if next == v.params.LevelOfDetail {
		return
	}
	v.params.LevelOfDetail = next
	logger.Info("level of detail changed", zap.Int("lod", next))
	v.mustRegenerate()
}

func (v *Viewer) render() {
	w, h := v.win.GetSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(0.09, 0.11, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(w) / float32(h)
	proj := math.Perspective(0.8, aspect, 0.1, 4000)
	viewProj := proj.Mul(v.cam.ViewMatrix())

	v.renderer.Render(viewProj)
}
