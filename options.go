package datagrid

import (
	"log/slog"
	"time"
)

// Default geometry and timing.
const (
	DefaultRowHeight        float32 = 24
	DefaultColumnWidth      float32 = 100
	DefaultIndexColumnWidth float32 = 60
	DefaultHeaderHeight     float32 = 24

	DefaultHoverThrottle = 100 * time.Millisecond
)

// GridOption configures a Grid instance.
type GridOption func(*Grid)

// WithHost sets the host that receives keyboard, tooltip and navigation requests.
func WithHost(h Host) GridOption {
	return func(g *Grid) {
		if h != nil {
			g.host = h
		}
	}
}

// WithDocument sets the document-level target keyboard listeners attach to.
// Without it the grid owns a private document dispatcher.
func WithDocument(doc EventTarget) GridOption {
	return func(g *Grid) {
		if doc != nil {
			g.document = doc
		}
	}
}

// WithClock sets the time source used for events without a timestamp.
func WithClock(now func() time.Time) GridOption {
	return func(g *Grid) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLogger sets the logger for this grid.
func WithLogger(l *slog.Logger) GridOption {
	return func(g *Grid) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRowHeight sets the default row height.
func WithRowHeight(h float32) GridOption {
	return func(g *Grid) { g.rowHeight = h }
}

// WithColumnWidth sets the default body column width.
func WithColumnWidth(w float32) GridOption {
	return func(g *Grid) { g.columnWidth = w }
}

// WithIndexColumnWidth sets the default row-header column width.
func WithIndexColumnWidth(w float32) GridOption {
	return func(g *Grid) { g.indexColumnWidth = w }
}

// WithHeaderHeight sets the column header band height.
func WithHeaderHeight(h float32) GridOption {
	return func(g *Grid) { g.headerHeight = h }
}

// WithHoverThrottle sets the hover coalescing window.
func WithHoverThrottle(d time.Duration) GridOption {
	return func(g *Grid) { g.hoverInterval = d }
}

// WithMultiSort keeps other columns' sort directions when a header is clicked.
func WithMultiSort(enabled bool) GridOption {
	return func(g *Grid) { g.multiSort = enabled }
}
