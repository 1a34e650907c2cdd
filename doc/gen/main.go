// Command gen renders the grid in a few interaction states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single grid state to capture.
type screenshot struct {
	name   string               // filename without extension
	width  int                  // viewport width
	height int                  // viewport height
	setup  func(*datagrid.Grid) // puts the grid into the state to show
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("overlay renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func sampleModel() *datagrid.TableModel {
	rows := make([][]any, 200)
	for i := range rows {
		rows[i] = []any{fmt.Sprintf("r%03d", i), (i * 37) % 101, float64(i%13) / 7, i%2 == 0}
	}
	return datagrid.NewTableModel([]string{"id", "score", "ratio", "even"}, rows)
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only the projection changes; the hidden window stays at 800x600,
	// larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh grid per screenshot so state does not leak between captures.
	grid := datagrid.New(sampleModel(), datagrid.WithLogger(datagrid.DiscardLogger()))
	defer grid.Destroy()
	if err := grid.Initialize(datagrid.Config{
		Viewport: datagrid.Rect{W: float32(s.width), H: float32(s.height)},
	}); err != nil {
		return err
	}
	if s.setup != nil {
		s.setup(grid)
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	dl := opengl.NewDrawList()
	opengl.BuildOverlay(dl, grid.Render(), opengl.DefaultTheme())
	renderer.Render(dl)
	gl.Finish()

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "grid", width: 480, height: 320},
		{
			name: "sorted", width: 480, height: 320,
			setup: func(g *datagrid.Grid) {
				g.Columns().SortColumn("score", datagrid.SortDescending)
			},
		},
		{
			name: "heatmap", width: 480, height: 320,
			setup: func(g *datagrid.Grid) {
				g.Columns().ToggleHighlighter("score", datagrid.HighlighterHeatmap)
				g.Columns().ToggleHighlighter("ratio", datagrid.HighlighterDataBars)
			},
		},
		{
			name: "selection", width: 480, height: 320,
			setup: func(g *datagrid.Grid) {
				g.SelectCell(1, 0, datagrid.ColumnTypeBody)
				g.ExtendSelection(4, 2, datagrid.ColumnTypeBody)
				g.SetFocusedCell(4, 2, datagrid.ColumnTypeBody)
			},
		},
		{
			name: "hidden-column", width: 480, height: 320,
			setup: func(g *datagrid.Grid) {
				g.Columns().Hide("ratio")
				g.ScrollTo(0, 240)
			},
		},
	}
}
