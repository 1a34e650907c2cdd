package opengl

import (
	"testing"

	"github.com/go-theft-auto/datagrid"
)

func quadsWithColor(dl *DrawList, color uint32) []Vertex {
	var out []Vertex
	for i := 0; i+3 < len(dl.VtxBuffer); i += 4 {
		if dl.VtxBuffer[i].Color == color {
			out = append(out, dl.VtxBuffer[i])
		}
	}
	return out
}

func TestBuildOverlay_ClipsRegions(t *testing.T) {
	theme := DefaultTheme()
	f := datagrid.Frame{
		Viewport:     datagrid.Rect{W: 100, H: 50},
		HeaderWidth:  20,
		HeaderHeight: 10,
		Body:         []datagrid.FrameCell{{Rect: datagrid.Rect{X: 20, Y: 10, W: 40, H: 20}, Selected: true}},
	}

	dl := NewDrawList()
	BuildOverlay(dl, f, theme)

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("commands = %d, want background and body", len(dl.CmdBuffer))
	}
	if got, want := dl.CmdBuffer[0].ClipRect, [4]float32{0, 0, 100, 50}; got != want {
		t.Errorf("background clip = %v, want %v", got, want)
	}
	if got, want := dl.CmdBuffer[1].ClipRect, [4]float32{20, 10, 100, 50}; got != want {
		t.Errorf("body clip = %v, want %v", got, want)
	}
	// Selection plus the two grid lines; the transparent cell background is skipped.
	if got := dl.CmdBuffer[1].ElemCount; got != 18 {
		t.Errorf("body elements = %d, want 18", got)
	}
	if len(quadsWithColor(dl, theme.Selection)) != 1 {
		t.Error("selected cell should draw one selection quad")
	}
}

func TestBuildOverlay_State(t *testing.T) {
	theme := DefaultTheme()
	header := datagrid.Rect{X: 20, W: 40, H: 10}
	f := datagrid.Frame{
		Viewport:     datagrid.Rect{W: 100, H: 50},
		HeaderWidth:  20,
		HeaderHeight: 10,
		Focused:      true,
		Headers: []datagrid.FrameCell{
			{Region: datagrid.RegionColumnHeader, Rect: header, Sort: datagrid.SortAscending},
		},
		Body: []datagrid.FrameCell{
			{Rect: datagrid.Rect{X: 20, Y: 10, W: 40, H: 20}, Focused: true, Hovered: true,
				Highlighters: []datagrid.HighlighterType{datagrid.HighlighterHeatmap}},
		},
	}

	dl := NewDrawList()
	BuildOverlay(dl, f, theme)

	if v := quadsWithColor(dl, theme.SortAscending); len(v) != 1 || v[0].Pos != [2]float32{20, 0} {
		t.Errorf("ascending marker quads = %+v, want one at the header top", v)
	}
	if len(quadsWithColor(dl, theme.Heatmap)) != 1 {
		t.Error("heatmap cell should draw one heatmap quad")
	}
	if len(quadsWithColor(dl, theme.Hover)) != 1 {
		t.Error("hovered cell should draw one hover quad")
	}
	if len(quadsWithColor(dl, theme.FocusBorder)) != 4 {
		t.Error("focused cell should draw a four-sided outline")
	}
	if len(quadsWithColor(dl, theme.FocusedBorder)) != 4 {
		t.Error("focused grid should draw a viewport outline")
	}
}

func TestBuildOverlay_FromGrid(t *testing.T) {
	model := datagrid.NewTableModel([]string{"a", "b"}, [][]any{{1, 2}, {3, 4}})
	g := datagrid.New(model, datagrid.WithLogger(datagrid.DiscardLogger()))
	if err := g.Initialize(datagrid.Config{Viewport: datagrid.Rect{W: 400, H: 200}}); err != nil {
		t.Fatal(err)
	}
	g.SelectCell(1, 1, datagrid.ColumnTypeBody)

	dl := NewDrawList()
	BuildOverlay(dl, g.Render(), DefaultTheme())

	sel := quadsWithColor(dl, DefaultTheme().Selection)
	if len(sel) != 1 {
		t.Fatalf("selection quads = %d, want 1", len(sel))
	}
	// Index column 60 + first body column 100; header 24 + first row 24.
	if got, want := sel[0].Pos, [2]float32{160, 48}; got != want {
		t.Errorf("selection at %v, want %v", got, want)
	}
}
