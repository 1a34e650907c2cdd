// Terminal runs the datagrid in a terminal with tcell.
//
//	go run ./example/terminal/
//
// Press q or Ctrl-C to quit.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/terminal"
)

type screenHost struct {
	status *string
}

func (h screenHost) SetKeyboardShortcutsEnabled(bool) {}
func (h screenHost) HideTooltip()                     { *h.status = "" }
func (h screenHost) OpenURL(rawURL string)            { *h.status = "open " + rawURL }

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	rows := make([][]any, 500)
	for i := range rows {
		rows[i] = []any{fmt.Sprintf("row %d", i), i * 7 % 31, float64(i) / 3, fmt.Sprintf("https://example.com/%d", i)}
	}
	model := datagrid.NewTableModel([]string{"label", "n", "ratio", "link"}, rows)

	var status string
	document := datagrid.NewDispatcher()
	grid := datagrid.New(model,
		datagrid.WithHost(screenHost{status: &status}),
		datagrid.WithDocument(document),
		datagrid.WithRowHeight(1),
		datagrid.WithHeaderHeight(1),
		datagrid.WithColumnWidth(14),
		datagrid.WithIndexColumnWidth(6),
		datagrid.WithLogger(datagrid.DiscardLogger()))
	defer grid.Destroy()

	w, h := screen.Size()
	bounds := datagrid.Rect{W: float32(w), H: float32(h - 1)}
	if err := grid.Initialize(datagrid.Config{Viewport: bounds}); err != nil {
		return fmt.Errorf("initialize grid: %w", err)
	}
	input := terminal.NewInput(grid.Node(), document, bounds)
	styles := terminal.DefaultStyles()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(datagrid.DefaultHoverThrottle / 2)
	defer ticker.Stop()
	for {
		screen.Clear()
		terminal.Draw(screen, grid.Render(), styles)
		for i, r := range status {
			screen.SetContent(i, h-1, r, nil, tcell.StyleDefault)
		}
		screen.Show()

		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return nil
				}
			case *tcell.EventResize:
				w, h = ev.Size()
				bounds = datagrid.Rect{W: float32(w), H: float32(h - 1)}
				grid.SetViewport(bounds)
				input.SetBounds(bounds)
				screen.Sync()
				continue
			}
			input.HandleEvent(ev)
		case now := <-ticker.C:
			grid.Tick(now)
		}
	}
}
