// Example shows a datagrid in a GLFW window with the OpenGL overlay.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Click a cell to focus the grid, then use the arrow keys, H/U/B to toggle
// highlighters and 1-9 to change float precision. Click a header to sort.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/glfwinput"
	"github.com/go-theft-auto/datagrid/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "datagrid example"
	sampleRows   = 10000
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	datagrid.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sampleModel builds a model with mixed column kinds, including links.
func sampleModel() *datagrid.TableModel {
	rows := make([][]any, sampleRows)
	for i := range rows {
		rows[i] = []any{
			fmt.Sprintf("item-%05d", i),
			i % 97,
			math.Sin(float64(i) / 10),
			i%3 == 0,
			fmt.Sprintf("https://example.com/items/%d", i),
		}
	}
	return datagrid.NewTableModel([]string{"name", "bucket", "signal", "flag", "link"}, rows)
}

type windowHost struct {
	window *glfw.Window
}

func (h windowHost) SetKeyboardShortcutsEnabled(enabled bool) {
	slog.Debug("host shortcuts", "enabled", enabled)
}

func (h windowHost) HideTooltip() {}

func (h windowHost) OpenURL(rawURL string) {
	// The window title doubles as a status line.
	h.window.SetTitle(windowTitle + " - " + rawURL)
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

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("overlay renderer: %w", err)
	}
	defer renderer.Delete()

	document := datagrid.NewDispatcher()
	grid := datagrid.New(sampleModel(),
		datagrid.WithHost(windowHost{window: window}),
		datagrid.WithDocument(document))
	defer grid.Destroy()

	if err := grid.Initialize(datagrid.Config{
		Viewport:             datagrid.Rect{W: windowWidth, H: windowHeight},
		HasDoubleClickAction: true,
		DoubleClickTag:       "example",
	}); err != nil {
		return fmt.Errorf("initialize grid: %w", err)
	}
	grid.Comm.Connect("example", func(msg datagrid.CommMessage) {
		slog.Info("grid action", "event", msg.Event, "row", msg.Row, "column", msg.Column)
	})

	input := glfwinput.New(grid.Node(), document)
	input.SetBounds(grid.Viewport())
	input.Install(window)

	dirty := true
	grid.RenderRequested.Connect("example", func(datagrid.RenderReason) { dirty = true })
	grid.HoverChanged.Connect("example", func(datagrid.HoverEvent) { dirty = true })

	dl := opengl.NewDrawList()
	theme := opengl.DefaultTheme()
	for !window.ShouldClose() {
		if deadline, ok := grid.NextDeadline(); ok {
			glfw.WaitEventsTimeout(max(time.Until(deadline).Seconds(), 0))
		} else {
			glfw.WaitEvents()
		}
		grid.Tick(time.Now())

		w, h := window.GetFramebufferSize()
		if vp := grid.Viewport(); vp.W != float32(w) || vp.H != float32(h) {
			renderer.Resize(w, h)
			grid.SetViewport(datagrid.Rect{W: float32(w), H: float32(h)})
			input.SetBounds(grid.Viewport())
		}
		if !dirty {
			continue
		}
		dirty = false

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl.Clear()
		opengl.BuildOverlay(dl, grid.Render(), theme)
		renderer.Render(dl)

		window.SwapBuffers()
	}
	return nil
}
