package opengl

import (
	"github.com/go-theft-auto/datagrid"
)

// Theme holds the overlay colors.
type Theme struct {
	Background    uint32
	HeaderBg      uint32
	IndexBg       uint32
	GridLine      uint32
	Hover         uint32
	Selection     uint32
	FocusBorder   uint32
	FocusedBorder uint32 // Viewport border while the grid has keyboard focus
	SortAscending uint32
	SortDesc      uint32
	Heatmap       uint32
	DataBar       uint32
}

// DefaultTheme returns the default overlay colors.
func DefaultTheme() Theme {
	return Theme{
		Background:    RGBA(30, 30, 34, 255),
		HeaderBg:      RGBA(50, 52, 60, 255),
		IndexBg:       RGBA(42, 44, 50, 255),
		GridLine:      RGBA(70, 72, 80, 255),
		Hover:         RGBA(255, 255, 255, 24),
		Selection:     RGBA(60, 130, 220, 90),
		FocusBorder:   RGBA(90, 170, 255, 255),
		FocusedBorder: RGBA(90, 170, 255, 120),
		SortAscending: RGBA(120, 200, 120, 255),
		SortDesc:      RGBA(220, 140, 90, 255),
		Heatmap:       RGBA(220, 80, 60, 50),
		DataBar:       RGBA(90, 170, 255, 70),
	}
}

// sortMarkerHeight is the height of the strip marking a sorted column.
const sortMarkerHeight = 3

// BuildOverlay appends the quads for one frame: backgrounds, grid lines,
// hover, selection and focus. Body cells are clipped to the body area so
// scrolled content never draws over the headers.
func BuildOverlay(dl *DrawList, f datagrid.Frame, theme Theme) {
	vp := f.Viewport
	dl.PushClipRect(vp.X, vp.Y, vp.X+vp.W, vp.Y+vp.H)
	defer dl.PopClipRect()

	dl.AddRect(vp.X, vp.Y, vp.W, vp.H, theme.Background)

	// Body scrolls in both directions.
	dl.PushClipRect(vp.X+f.HeaderWidth, vp.Y+f.HeaderHeight, vp.X+vp.W, vp.Y+vp.H)
	for _, c := range f.Body {
		addCell(dl, c, theme, 0)
	}
	dl.PopClipRect()

	// Row headers scroll vertically only.
	dl.PushClipRect(vp.X, vp.Y+f.HeaderHeight, vp.X+f.HeaderWidth, vp.Y+vp.H)
	for _, c := range f.Index {
		addCell(dl, c, theme, theme.IndexBg)
	}
	dl.PopClipRect()

	// Column headers scroll horizontally only.
	dl.PushClipRect(vp.X+f.HeaderWidth, vp.Y, vp.X+vp.W, vp.Y+f.HeaderHeight)
	for _, c := range f.Headers {
		addHeader(dl, c, theme)
	}
	dl.PopClipRect()

	for _, c := range f.Corner {
		addHeader(dl, c, theme)
	}

	if f.Focused {
		dl.AddRectOutline(vp.X, vp.Y, vp.W, vp.H, theme.FocusedBorder, 1)
	}
}

func addCell(dl *DrawList, c datagrid.FrameCell, theme Theme, bg uint32) {
	r := c.Rect
	dl.AddRect(r.X, r.Y, r.W, r.H, bg)
	for _, h := range c.Highlighters {
		switch h {
		case datagrid.HighlighterHeatmap, datagrid.HighlighterUniqueEntries:
			dl.AddRect(r.X, r.Y, r.W, r.H, theme.Heatmap)
		case datagrid.HighlighterDataBars:
			dl.AddRect(r.X, r.Y+r.H/4, r.W/2, r.H/2, theme.DataBar)
		}
	}
	if c.Selected {
		dl.AddRect(r.X, r.Y, r.W, r.H, theme.Selection)
	}
	if c.Hovered {
		dl.AddRect(r.X, r.Y, r.W, r.H, theme.Hover)
	}
	dl.AddRect(r.X, r.Y+r.H-1, r.W, 1, theme.GridLine)
	dl.AddRect(r.X+r.W-1, r.Y, 1, r.H, theme.GridLine)
	if c.Focused {
		dl.AddRectOutline(r.X, r.Y, r.W, r.H, theme.FocusBorder, 2)
	}
}

func addHeader(dl *DrawList, c datagrid.FrameCell, theme Theme) {
	r := c.Rect
	dl.AddRect(r.X, r.Y, r.W, r.H, theme.HeaderBg)
	if c.Hovered {
		dl.AddRect(r.X, r.Y, r.W, r.H, theme.Hover)
	}
	switch c.Sort {
	case datagrid.SortAscending:
		dl.AddRect(r.X, r.Y, r.W, sortMarkerHeight, theme.SortAscending)
	case datagrid.SortDescending:
		dl.AddRect(r.X, r.Y+r.H-sortMarkerHeight, r.W, sortMarkerHeight, theme.SortDesc)
	}
	dl.AddRect(r.X+r.W-1, r.Y, 1, r.H, theme.GridLine)
	dl.AddRect(r.X, r.Y+r.H-1, r.W, 1, theme.GridLine)
}
