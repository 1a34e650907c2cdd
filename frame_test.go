package datagrid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVisibleRange(t *testing.T) {
	s := NewUniformSectionList(4, 24)
	tests := []struct {
		name           string
		scroll, extent float32
		want           SectionRange
	}{
		{"exact fit", 0, 48, SectionRange{0, 2}},
		{"partial last", 0, 50, SectionRange{0, 3}},
		{"scrolled partial both ends", 12, 48, SectionRange{0, 3}},
		{"scrolled aligned", 24, 48, SectionRange{1, 3}},
		{"extent past end", 48, 200, SectionRange{2, 4}},
		{"zero extent", 0, 0, SectionRange{}},
		{"scroll past end", 96, 10, SectionRange{4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visibleRange(s, tt.scroll, tt.extent); got != tt.want {
				t.Errorf("visibleRange(%v, %v) = %+v, want %+v", tt.scroll, tt.extent, got, tt.want)
			}
		})
	}
	if got := visibleRange(NewSectionList(), 0, 100); got != (SectionRange{}) {
		t.Errorf("empty list range = %+v", got)
	}
}

func TestFrame_Ranges(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{Viewport: Rect{W: 260, H: 72}})

	f := g.Render()
	if f.Rows != (SectionRange{0, 2}) || f.Columns != (SectionRange{0, 2}) || f.IndexColumns != (SectionRange{0, 1}) {
		t.Errorf("ranges = rows %+v columns %+v index %+v", f.Rows, f.Columns, f.IndexColumns)
	}
	if len(f.Corner) != 1 || len(f.Headers) != 2 || len(f.Index) != 2 || len(f.Body) != 4 {
		t.Errorf("cell counts = corner %d headers %d index %d body %d",
			len(f.Corner), len(f.Headers), len(f.Index), len(f.Body))
	}

	g.ScrollTo(50, 12)
	f = g.Render()
	if f.Rows != (SectionRange{0, 3}) || f.Columns != (SectionRange{0, 3}) {
		t.Errorf("scrolled ranges = rows %+v columns %+v", f.Rows, f.Columns)
	}
	if f.Scroll != (Vec2{X: 50, Y: 12}) {
		t.Errorf("Scroll = %+v", f.Scroll)
	}
}

func TestFrame_OnlyVisibleRowsMaterialized(t *testing.T) {
	g := newTestGrid(t, tallModel(100000), Config{})

	f := g.Render()
	if len(f.Body) != 24 || len(f.Index) != 24 {
		t.Errorf("body %d index %d cells, want 24 each", len(f.Body), len(f.Index))
	}

	g.ScrollTo(0, 24*5000)
	f = g.Render()
	if f.Rows.Start != 5000 {
		t.Errorf("first visible row = %d, want 5000", f.Rows.Start)
	}
	if f.Body[0].Text != "5000" {
		t.Errorf("first body text = %q, want 5000", f.Body[0].Text)
	}
}

func TestCellRect(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{Viewport: Rect{X: 10, Y: 20, W: 260, H: 72}})

	tests := []struct {
		name   string
		region Region
		row    int
		column int
		typ    ColumnType
		want   Rect
	}{
		{"body", RegionBody, 1, 1, ColumnTypeBody, Rect{X: 170, Y: 68, W: 100, H: 24}},
		{"column header", RegionColumnHeader, 3, 1, ColumnTypeBody, Rect{X: 170, Y: 20, W: 100, H: 24}},
		{"row header", RegionRowHeader, 1, 0, ColumnTypeIndex, Rect{X: 10, Y: 68, W: 60, H: 24}},
		{"corner", RegionCornerHeader, 0, 0, ColumnTypeIndex, Rect{X: 10, Y: 20, W: 60, H: 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CellRect(tt.region, tt.row, tt.column, tt.typ); got != tt.want {
				t.Errorf("CellRect = %+v, want %+v", got, tt.want)
			}
		})
	}

	g.ScrollTo(50, 12)
	if got, want := g.CellRect(RegionBody, 1, 1, ColumnTypeBody), (Rect{X: 120, Y: 56, W: 100, H: 24}); got != want {
		t.Errorf("scrolled body rect = %+v, want %+v", got, want)
	}
	if got, want := g.CellRect(RegionRowHeader, 1, 0, ColumnTypeIndex), (Rect{X: 10, Y: 56, W: 60, H: 24}); got != want {
		t.Errorf("scrolled row header rect = %+v, want %+v", got, want)
	}
}

func TestFrame_CellState(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{Viewport: Rect{W: 260, H: 72}})
	g.Columns().SortColumn("score", SortAscending)
	g.Columns().ToggleHighlighter("name", HighlighterHeatmap)
	focus(g, 0, 0)
	hoverAt(g, colX(1), rowY(0))

	f := g.Render()
	if !f.Focused {
		t.Error("frame should report focus")
	}

	if got := f.Headers[1]; got.Text != "score" || got.Sort != SortAscending || got.Hovered {
		t.Errorf("score header = %+v", got)
	}
	if got := f.Corner[0].Text; got != "" {
		t.Errorf("corner text = %q, want empty", got)
	}

	// Sorted ascending by score: beta is first.
	first := f.Body[0]
	if first.Text != "beta" || !first.Selected || !first.Focused || first.Hovered {
		t.Errorf("body (0, 0) = %+v", first)
	}
	if diff := cmp.Diff([]HighlighterType{HighlighterHeatmap}, first.Highlighters); diff != "" {
		t.Errorf("highlighters (-want +got):\n%s", diff)
	}
	if second := f.Body[1]; second.Text != "1" || second.Align != AlignRight || !second.Hovered || second.Selected {
		t.Errorf("body (0, 1) = %+v", second)
	}
	if got := f.Index[0].Text; got != "1" {
		t.Errorf("row header text = %q, want the data row number 1", got)
	}
}
