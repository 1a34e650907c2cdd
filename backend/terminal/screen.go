package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/datagrid"
)

// Styles are the tcell styles used to draw a frame.
type Styles struct {
	Body      tcell.Style
	Header    tcell.Style
	Index     tcell.Style
	Selected  tcell.Style
	Focused   tcell.Style
	Heatmap   tcell.Style
	DataBar   tcell.Style
	Separator tcell.Style
}

// DefaultStyles returns the default terminal styles.
func DefaultStyles() Styles {
	return Styles{
		Body:      tcell.StyleDefault,
		Header:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray).Bold(true),
		Index:     tcell.StyleDefault.Foreground(tcell.ColorGray),
		Selected:  tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite),
		Focused:   tcell.StyleDefault.Reverse(true),
		Heatmap:   tcell.StyleDefault.Background(tcell.ColorDarkRed),
		DataBar:   tcell.StyleDefault.Background(tcell.ColorNavy),
		Separator: tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
	}
}

// Sort markers shown at the end of a sorted header.
const (
	ascendingMarker  = "▲"
	descendingMarker = "▼"
	ellipsis         = "…"
)

// Draw paints a frame onto screen. Each cell is clipped to its region so
// scrolled cells never overwrite headers.
func Draw(screen tcell.Screen, f datagrid.Frame, st Styles) {
	vp := f.Viewport
	body := clipRect{
		x1: int(vp.X + f.HeaderWidth), y1: int(vp.Y + f.HeaderHeight),
		x2: int(vp.X + vp.W), y2: int(vp.Y + vp.H),
	}
	index := clipRect{x1: int(vp.X), y1: body.y1, x2: body.x1, y2: body.y2}
	header := clipRect{x1: body.x1, y1: int(vp.Y), x2: body.x2, y2: body.y1}
	corner := clipRect{x1: int(vp.X), y1: int(vp.Y), x2: body.x1, y2: body.y1}

	for _, c := range f.Body {
		drawCell(screen, c, cellStyle(c, st.Body, st), st.Separator, body)
	}
	for _, c := range f.Index {
		drawCell(screen, c, cellStyle(c, st.Index, st), st.Separator, index)
	}
	for _, c := range f.Headers {
		drawHeader(screen, c, st, header)
	}
	for _, c := range f.Corner {
		drawHeader(screen, c, st, corner)
	}
}

type clipRect struct {
	x1, y1, x2, y2 int
}

func (c clipRect) contains(x, y int) bool {
	return x >= c.x1 && x < c.x2 && y >= c.y1 && y < c.y2
}

func cellStyle(c datagrid.FrameCell, base tcell.Style, st Styles) tcell.Style {
	s := base
	for _, h := range c.Highlighters {
		switch h {
		case datagrid.HighlighterHeatmap, datagrid.HighlighterUniqueEntries:
			s = st.Heatmap
		case datagrid.HighlighterDataBars:
			s = st.DataBar
		}
	}
	switch {
	case c.Focused:
		s = st.Focused
	case c.Selected:
		s = st.Selected
	}
	if c.Hovered {
		s = s.Underline(true)
	}
	return s
}

func drawHeader(screen tcell.Screen, c datagrid.FrameCell, st Styles, clip clipRect) {
	text := c.Text
	switch c.Sort {
	case datagrid.SortAscending:
		text += ascendingMarker
	case datagrid.SortDescending:
		text += descendingMarker
	}
	c.Text = text
	s := st.Header
	if c.Hovered {
		s = s.Underline(true)
	}
	drawCell(screen, c, s, st.Separator, clip)
}

// drawCell writes the cell's text aligned inside its rectangle, leaving the
// last column as a separator.
func drawCell(screen tcell.Screen, c datagrid.FrameCell, style, sep tcell.Style, clip clipRect) {
	x0, y := int(c.Rect.X), int(c.Rect.Y)
	w := int(c.Rect.W) - 1
	if w <= 0 || c.Rect.H < 1 {
		return
	}
	text := runewidth.Truncate(c.Text, w, ellipsis)
	switch c.Align {
	case datagrid.AlignRight:
		text = runewidth.FillLeft(text, w)
	case datagrid.AlignCenter:
		pad := (w - runewidth.StringWidth(text)) / 2
		text = runewidth.FillRight(runewidth.FillLeft(text, runewidth.StringWidth(text)+pad), w)
	default:
		text = runewidth.FillRight(text, w)
	}

	x := x0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if clip.contains(x, y) {
			screen.SetContent(x, y, r, nil, style)
		}
		x += max(rw, 1)
	}
	if clip.contains(x0+w, y) {
		screen.SetContent(x0+w, y, '│', nil, sep)
	}
}
