// Package viewer implements the main application loop: it owns the
// window, the render pipeline and the input wiring, and reacts to
// runtime toggles (color scheme, shading, projection, overlays).
package viewer

import (
	"context"
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/yuann3/lrle/internal/config"
	"github.com/yuann3/lrle/internal/engine/camera"
	"github.com/yuann3/lrle/internal/engine/debug"
	"github.com/yuann3/lrle/internal/engine/input"
	"github.com/yuann3/lrle/internal/engine/picking"
	"github.com/yuann3/lrle/internal/engine/renderer"
	"github.com/yuann3/lrle/internal/engine/scene"
	"github.com/yuann3/lrle/internal/engine/window"
	"github.com/yuann3/lrle/internal/logger"
	"github.com/yuann3/lrle/internal/stats"
	"github.com/yuann3/lrle/internal/terrain"
	"github.com/yuann3/lrle/pkg/math"
)

const controllerFPS = 60

// Viewer is the running application instance.
type Viewer struct {
	cfg     *config.Config
	running bool

	window     *window.Window
	renderer   *renderer.Renderer
	pump       *input.Pump
	controller *input.Controller

	camera       *camera.Camera
	scene        *scene.Scene
	terrainRend  *scene.TerrainRenderer
	boundsOver   *debug.BoundsOverlay
	screenshots  *debug.ScreenshotCapture
	statsSrv     *stats.Server
	statsUpdated time.Time

	grid      *terrain.Grid
	scheme    terrain.Scheme
	normals   terrain.NormalMode
	heightMap string

	showBounds bool
	fps        float64
}

// New creates the viewer. heightMap is the path of a heightmap file to
// load; when empty a procedural grid is generated instead.
func New(cfg *config.Config, heightMap string) (*Viewer, error) {
	v := &Viewer{
		cfg:       cfg,
		heightMap: heightMap,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "lrle",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL context exists only after the window does.
	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.terrainRend, err = scene.NewTerrainRenderer()
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create terrain renderer: %w", err)
	}

	v.boundsOver, err = debug.NewBoundsOverlay()
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create bounds overlay: %w", err)
	}

	v.camera = camera.New()
	if cfg.Camera.FovDegrees > 0 {
		v.camera.FovY = cfg.Camera.FovDegrees * gomath.Pi / 180
	}
	if cfg.Camera.Near > 0 {
		v.camera.Near = cfg.Camera.Near
	}
	if cfg.Camera.Far > 0 {
		v.camera.Far = cfg.Camera.Far
	}
	if cfg.Camera.MaxDistance > 0 {
		v.camera.MaxDistance = cfg.Camera.MaxDistance
	}

	v.scene = scene.New(logger.Named("scene"), v.camera)
	v.scene.MaxDimension = cfg.Terrain.MaxDimension
	v.pump = input.NewPump()
	v.controller = input.NewController(v.camera, controllerFPS)
	v.controller.OnDoubleClick = v.retarget
	v.screenshots = debug.NewScreenshotCapture("screenshots", "lrle")

	if cfg.Stats.Enabled {
		v.statsSrv = stats.NewServer(logger.Named("stats"), cfg.Stats.Addr)
		v.statsSrv.Start()
	}

	if err := v.loadTerrain(); err != nil {
		v.Close()
		return nil, err
	}

	logger.Info("viewer initialized",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("grid_width", v.grid.Width()),
		zap.Int("grid_height", v.grid.Height()),
	)
	return v, nil
}

func (v *Viewer) loadTerrain() error {
	scheme, err := terrain.SchemeFromString(v.cfg.Terrain.Scheme)
	if err != nil {
		return err
	}
	v.scheme = scheme
	if v.cfg.Terrain.FlatNormals {
		v.normals = terrain.NormalsFlat
	}

	if v.heightMap != "" {
		v.grid, err = terrain.LoadFile(v.heightMap)
		if err != nil {
			return fmt.Errorf("failed to load heightmap: %w", err)
		}
		logger.Info("heightmap loaded", zap.String("path", v.heightMap))
	} else {
		opts := terrain.DefaultGenerateOptions()
		opts.Seed = v.cfg.Terrain.Seed
		if v.cfg.Terrain.Octaves > 0 {
			opts.Octaves = v.cfg.Terrain.Octaves
		}
		if v.cfg.Terrain.Amplitude > 0 {
			opts.Amplitude = float64(v.cfg.Terrain.Amplitude)
		}
		v.grid = terrain.Generate(v.cfg.Terrain.GenerateWidth, v.cfg.Terrain.GenerateHeight, opts)
		logger.Info("terrain generated", zap.Int64("seed", opts.Seed))
	}

	// First build is synchronous so the first frame has geometry.
	v.scene.SetTerrainSync(v.grid, v.meshOptions(), v.cfg.Terrain.ChunkSize)
	return nil
}

func (v *Viewer) meshOptions() terrain.MeshOptions {
	return terrain.MeshOptions{
		HeightScale: v.cfg.Terrain.HeightScale,
		Normals:     v.normals,
		Color:       v.colorFunc(),
	}
}

func (v *Viewer) colorFunc() terrain.ColorFunc {
	if v.grid != nil && v.grid.HasColors() {
		return nil // per-sample colors win over schemes
	}
	return terrain.SchemeColor(v.scheme)
}

// rebuild kicks off a background mesh rebuild with the current options.
// The displayed set stays live until the new one is installed.
func (v *Viewer) rebuild() {
	v.scene.SetTerrain(v.grid, v.meshOptions(), v.cfg.Terrain.ChunkSize)
}

// Run starts the main loop and blocks until quit.
func (v *Viewer) Run() error {
	v.running = true

	lastTitle := time.Now()
	frameCount := 0

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()

		if v.pump.Update() {
			v.running = false
			break
		}
		v.handleEvents(now)
		v.controller.Process(v.pump.Events(), now)
		v.controller.Update()
		v.camera.Update(now)
		v.scene.Update()

		fr := v.scene.Frame(v.renderer.Aspect())

		v.renderer.Begin()
		v.terrainRend.Render(fr)
		if v.showBounds {
			v.renderBounds(fr)
		}
		v.window.SwapBuffers()

		v.publishStats(fr, now)

		frameCount++
		if since := time.Since(lastTitle); since >= time.Second {
			v.fps = float64(frameCount) / since.Seconds()
			v.window.SetTitle(fmt.Sprintf("lrle - %s - %.0f fps", fr.Stats.Mode, v.fps))
			frameCount = 0
			lastTitle = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents(now time.Time) {
	for _, ev := range v.pump.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			v.renderer.Resize(ev.Width, ev.Height)

		case input.EventKeyDown:
			v.handleKey(ev.Key, now)
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode, now time.Time) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false

	case sdl.SCANCODE_I:
		v.camera.AnimateTo(v.camera.PresetState(camera.PresetIsometric), 400*time.Millisecond, now)

	case sdl.SCANCODE_T:
		v.camera.AnimateTo(v.camera.PresetState(camera.PresetTop), 400*time.Millisecond, now)

	case sdl.SCANCODE_O:
		if v.camera.Projection == camera.Perspective {
			v.camera.SetProjection(camera.Orthographic)
		} else {
			v.camera.SetProjection(camera.Perspective)
		}
		logger.Info("projection switched", zap.String("kind", v.camera.Projection.String()))

	case sdl.SCANCODE_1:
		v.setScheme(terrain.SchemeTerrain)
	case sdl.SCANCODE_2:
		v.setScheme(terrain.SchemeHeatmap)
	case sdl.SCANCODE_3:
		v.setScheme(terrain.SchemeMonochrome)

	case sdl.SCANCODE_N:
		if v.normals == terrain.NormalsSmooth {
			v.normals = terrain.NormalsFlat
		} else {
			v.normals = terrain.NormalsSmooth
		}
		logger.Info("normals switched", zap.String("mode", v.normals.String()))
		v.rebuild()

	case sdl.SCANCODE_W:
		v.terrainRend.Wireframe = !v.terrainRend.Wireframe

	case sdl.SCANCODE_L:
		v.terrainRend.Unlit = !v.terrainRend.Unlit

	case sdl.SCANCODE_B:
		v.showBounds = !v.showBounds

	case sdl.SCANCODE_F12:
		v.captureScreenshot()
	}
}

func (v *Viewer) setScheme(s terrain.Scheme) {
	if v.scheme == s {
		return
	}
	v.scheme = s
	logger.Info("color scheme switched", zap.String("scheme", s.String()))
	if v.grid.HasColors() {
		return // file colors stay in effect
	}
	v.rebuild()
}

// retarget moves the camera focus to the terrain point under the
// double-clicked pixel.
func (v *Viewer) retarget(x, y int) {
	set := v.scene.Current()
	if set == nil {
		return
	}
	w, h := v.renderer.Size()
	inv := v.camera.ViewProjection(v.renderer.Aspect()).Inverse()
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), inv)

	point, ok := picking.PickTerrain(ray, set.Bounds)
	if !ok {
		return
	}

	to := v.camera.State()
	to.Target = point
	v.camera.AnimateTo(to, 400*time.Millisecond, time.Now())
	logger.Debug("camera retargeted",
		zap.Float32("x", point.X),
		zap.Float32("y", point.Y),
		zap.Float32("z", point.Z),
	)
}

func (v *Viewer) renderBounds(fr scene.Frame) {
	boxes := make([]math.AABB, 0, len(fr.Items))
	for _, item := range fr.Items {
		boxes = append(boxes, item.Bounds)
	}
	v.boundsOver.Render(fr.ViewProjection, boxes)
}

func (v *Viewer) captureScreenshot() {
	w, h := v.renderer.Size()
	path, err := v.screenshots.CaptureFromPixels(v.renderer.ReadPixels(), w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) publishStats(fr scene.Frame, now time.Time) {
	if v.statsSrv == nil || now.Sub(v.statsUpdated) < 250*time.Millisecond {
		return
	}
	v.statsUpdated = now
	v.statsSrv.Publish(stats.Snapshot{
		FPS:            v.fps,
		Mode:           fr.Stats.Mode.String(),
		TotalChunks:    fr.Stats.TotalChunks,
		VisibleChunks:  fr.Stats.VisibleChunks,
		TotalVertices:  fr.Stats.TotalVertices,
		TotalTriangles: fr.Stats.TotalTriangles,
		DrawnVertices:  fr.Stats.DrawnVertices,
		DrawnTriangles: fr.Stats.DrawnTriangles,
		CameraDistance: v.camera.Distance,
		CameraAzimuth:  v.camera.Azimuth,
		CameraElev:     v.camera.Elevation,
	})
}

// Close releases all resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.statsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		v.statsSrv.Close(ctx)
		cancel()
	}
	if v.boundsOver != nil {
		v.boundsOver.Destroy()
	}
	if v.terrainRend != nil {
		v.terrainRend.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
