// fdfview - a graphical browser for .fdf heightmap files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/yuann3/lrle/internal/engine/ui"
	"github.com/yuann3/lrle/internal/terrain"
)

func main() {
	runtime.LockOSThread()

	dir := flag.String("dir", ".", "Directory to scan for .fdf heightmaps")
	flag.Parse()

	app := NewApp(*dir)

	// Optional positional argument: preselect a file.
	if path := flag.Arg(0); path != "" {
		app.selectFile(path)
	}

	app.Run()
}

// App holds the browser state.
type App struct {
	backend *ui.Backend

	dir        string
	files      []string
	searchText string

	// Preview state
	selectedPath string
	grid         *terrain.Grid
	loadErr      error
	previewTex   *backend.Texture
	previewZoom  float32
	scheme       terrain.Scheme
}

// NewApp creates the application and its window.
func NewApp(dir string) *App {
	app := &App{
		dir:         dir,
		previewZoom: 1.0,
	}
	app.scanDir()

	var err error
	app.backend, err = ui.NewBackend("fdfview", 1100, 720)
	if err != nil {
		panic(fmt.Sprintf("failed to create backend: %v", err))
	}

	return app
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// scanDir collects the .fdf files under the configured directory.
func (app *App) scanDir() {
	app.files = app.files[:0]

	filepath.WalkDir(app.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep walking
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".fdf") {
			app.files = append(app.files, path)
		}
		return nil
	})
	sort.Strings(app.files)
}

// selectFile loads a heightmap and rebuilds the preview texture.
func (app *App) selectFile(path string) {
	app.selectedPath = path
	app.grid, app.loadErr = terrain.LoadFile(path)
	app.rebuildPreview()
	app.backend.SetWindowTitle(fmt.Sprintf("fdfview - %s", filepath.Base(path)))
}

// rebuildPreview renders the current grid into an RGBA texture, one
// pixel per sample. File colors win over the selected scheme.
func (app *App) rebuildPreview() {
	if app.grid == nil {
		app.previewTex = nil
		return
	}

	g := app.grid
	rgba := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))

	minH, maxH := g.HeightBounds()
	colorFn := terrain.SchemeColor(app.scheme)

	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			var cr, cg, cb uint8
			if g.HasColors() {
				packed := g.Color(c, r)
				cr = uint8(packed >> 16)
				cg = uint8(packed >> 8)
				cb = uint8(packed)
			} else {
				rgb := colorFn(g.Sample(c, r), minH, maxH)
				cr = uint8(rgb[0] * 255)
				cg = uint8(rgb[1] * 255)
				cb = uint8(rgb[2] * 255)
			}
			rgba.Set(c, r, color.RGBA{R: cr, G: cg, B: cb, A: 255})
		}
	}

	app.previewTex = app.backend.TextureFromImage(rgba)
}

// render draws the UI each frame.
func (app *App) render() {
	if ui.IsKeyPressed(imgui.KeyF5) {
		app.scanDir()
	}

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	leftPanelWidth := float32(320)
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	// Left panel - file list
	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(leftPanelWidth, workSize.Y))
	if imgui.BeginV("Heightmaps", nil, flags) {
		app.renderFileList()
	}
	imgui.End()

	// Right panel - preview
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+leftPanelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X-leftPanelWidth, workSize.Y))
	if imgui.BeginV("Preview", nil, flags) {
		app.renderPreview()
	}
	imgui.End()
}

func (app *App) renderFileList() {
	imgui.InputTextWithHint("##search", "Filter files...", &app.searchText, 0, nil)
	imgui.SameLine()
	if imgui.Button("Rescan") {
		app.scanDir()
	}
	imgui.Separator()

	filter := strings.ToLower(app.searchText)
	shown := 0
	for _, path := range app.files {
		name := filepath.Base(path)
		if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
			continue
		}
		shown++
		if imgui.SelectableBoolV(name, path == app.selectedPath, 0, imgui.NewVec2(0, 0)) {
			app.selectFile(path)
		}
	}

	if shown == 0 {
		imgui.TextDisabled("No .fdf files found")
	}
}

func (app *App) renderPreview() {
	if app.selectedPath == "" {
		imgui.TextDisabled("Select a heightmap on the left")
		return
	}
	if app.loadErr != nil {
		imgui.Text(fmt.Sprintf("Failed to load %s:", filepath.Base(app.selectedPath)))
		imgui.TextDisabled(app.loadErr.Error())
		return
	}

	g := app.grid
	minH, maxH := g.HeightBounds()

	imgui.Text(fmt.Sprintf("Size: %d x %d samples", g.Width(), g.Height()))
	imgui.Text(fmt.Sprintf("Height: %.1f to %.1f", minH, maxH))
	if g.HasColors() {
		imgui.Text("Colors: per-sample (from file)")
	} else {
		imgui.Text(fmt.Sprintf("Colors: %s scheme", app.scheme))
	}

	imgui.Separator()

	// Scheme selection only matters for grids without file colors.
	if !g.HasColors() {
		imgui.Text("Scheme:")
		imgui.SameLine()
		app.schemeButton("Terrain", terrain.SchemeTerrain)
		imgui.SameLine()
		app.schemeButton("Heatmap", terrain.SchemeHeatmap)
		imgui.SameLine()
		app.schemeButton("Mono", terrain.SchemeMonochrome)
		imgui.Separator()
	}

	// Zoom controls
	imgui.Text("Zoom:")
	imgui.SameLine()
	if imgui.Button("-##zoom") && app.previewZoom > 0.25 {
		app.previewZoom -= 0.25
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("%.0f%%", app.previewZoom*100))
	imgui.SameLine()
	if imgui.Button("+##zoom") && app.previewZoom < 16.0 {
		app.previewZoom += 0.25
	}
	imgui.SameLine()
	if imgui.Button("Fit##zoom") {
		avail := imgui.ContentRegionAvail()
		zoomX := avail.X / float32(g.Width())
		zoomY := avail.Y / float32(g.Height())
		app.previewZoom = min(zoomX, zoomY)
		if app.previewZoom < 0.1 {
			app.previewZoom = 0.1
		}
	}

	imgui.Separator()

	if app.previewTex != nil {
		w := float32(g.Width()) * app.previewZoom
		h := float32(g.Height()) * app.previewZoom

		if imgui.BeginChildStrV("HeightmapView", imgui.NewVec2(0, 0), imgui.ChildFlagsBorders, imgui.WindowFlagsHorizontalScrollbar) {
			imgui.ImageWithBgV(
				app.previewTex.ID,
				imgui.NewVec2(w, h),
				imgui.NewVec2(0, 0),
				imgui.NewVec2(1, 1),
				imgui.NewVec4(0.1, 0.1, 0.1, 1.0),
				imgui.NewVec4(1, 1, 1, 1),
			)
		}
		imgui.EndChild()
	}
}

func (app *App) schemeButton(label string, s terrain.Scheme) {
	if imgui.Button(label) && app.scheme != s {
		app.scheme = s
		app.rebuildPreview()
	}
}
