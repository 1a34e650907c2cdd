package datagrid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGrid_CellData(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{})

	tests := []struct {
		name   string
		x, y   float32
		want   CellData
		wantOk bool
	}{
		{"corner", indexX, headerY,
			CellData{Region: RegionCornerHeader, Type: ColumnTypeIndex, OffsetTop: 24, Delta: 10, Value: ""}, true},
		{"column header", colX(0), headerY,
			CellData{Region: RegionColumnHeader, Type: ColumnTypeBody, Delta: 50, Value: "name"}, true},
		{"body", colX(1), rowY(1),
			CellData{Row: 1, Column: 1, Region: RegionBody, Type: ColumnTypeBody, Offset: 100, OffsetTop: 48, Delta: 50, Value: 1}, true},
		{"row header", indexX, rowY(1),
			CellData{Row: 1, Region: RegionRowHeader, Type: ColumnTypeIndex, OffsetTop: 48, Delta: 30, Value: 1}, true},
		{"last body cell", 359, 119,
			CellData{Row: 3, Column: 2, Region: RegionBody, Type: ColumnTypeBody, Offset: 200, OffsetTop: 96, Delta: 99}, true},
		{"right of last column", 360, rowY(0), CellData{}, false},
		// A column matches but no row does: the cell carries no value.
		{"below last row", colX(0), 130,
			CellData{Region: RegionBody, Type: ColumnTypeBody, Delta: 50}, true},
		{"left of grid", -1, rowY(0), CellData{}, false},
		// The right edge of the index columns belongs to the first body column.
		{"index edge", 60, rowY(0),
			CellData{Region: RegionBody, Type: ColumnTypeBody, OffsetTop: 24, Value: "alpha"}, true},
		{"index edge in header", 60, headerY,
			CellData{Region: RegionColumnHeader, Type: ColumnTypeBody, Value: "name"}, true},
		{"just inside index", 59.5, rowY(0),
			CellData{Region: RegionRowHeader, Type: ColumnTypeIndex, OffsetTop: 24, Delta: 59.5, Value: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.CellData(tt.x, tt.y)
			if ok != tt.wantOk {
				t.Fatalf("CellData(%v, %v) ok = %v, want %v", tt.x, tt.y, ok, tt.wantOk)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CellData(%v, %v) mismatch (-want +got):\n%s", tt.x, tt.y, diff)
			}
		})
	}
}

func TestGrid_CellDataIsPure(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{})
	for _, p := range []Vec2{{X: indexX, Y: headerY}, {X: colX(2), Y: rowY(2)}, {X: 700, Y: 500}} {
		first, ok1 := g.CellData(p.X, p.Y)
		second, ok2 := g.CellData(p.X, p.Y)
		if ok1 != ok2 {
			t.Errorf("CellData(%v) ok changed between calls: %v then %v", p, ok1, ok2)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("CellData(%v) changed between calls (-first +second):\n%s", p, diff)
		}
	}
}

func TestGrid_CellDataViewportOrigin(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{Viewport: Rect{X: 100, Y: 50, W: 800, H: 600}})

	got, ok := g.CellData(100+colX(1), 50+rowY(1))
	if !ok {
		t.Fatal("CellData missed")
	}
	if got.Row != 1 || got.Column != 1 || got.Value != 1 {
		t.Errorf("got row %d column %d value %v, want 1 1 1", got.Row, got.Column, got.Value)
	}
	if !g.IsOverHeader(100+colX(0), 50+headerY) {
		t.Error("IsOverHeader should account for the viewport origin")
	}
	if g.IsOverHeader(colX(0), headerY) {
		t.Error("point above the viewport reported over header")
	}
}

func TestGrid_CellDataScrolled(t *testing.T) {
	// Body area 200x48 so both axes can scroll.
	g := newTestGrid(t, sampleModel(), Config{Viewport: Rect{W: 260, H: 72}})
	g.ScrollTo(50, 24)

	body, ok := g.CellData(110, 36)
	if !ok {
		t.Fatal("body CellData missed")
	}
	if body.Row != 1 || body.Column != 1 || body.Delta != 0 {
		t.Errorf("body = row %d column %d delta %v, want 1 1 0", body.Row, body.Column, body.Delta)
	}

	// Row-header columns scroll vertically but not horizontally.
	index, ok := g.CellData(indexX, 36)
	if !ok {
		t.Fatal("index CellData missed")
	}
	if index.Type != ColumnTypeIndex || index.Column != 0 || index.Row != 1 || index.Delta != indexX {
		t.Errorf("index = %+v, want index column 0 row 1 delta %v", index, indexX)
	}

	// The header band does not scroll vertically.
	header, ok := g.CellData(110, headerY)
	if !ok || header.Region != RegionColumnHeader || header.Value != "score" {
		t.Errorf("header = %+v, %v; want the score header", header, ok)
	}
}

func TestGrid_CellDataHiddenColumn(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{})
	g.Columns().Hide("name")

	got, ok := g.CellData(colX(0), rowY(1))
	if !ok {
		t.Fatal("CellData missed")
	}
	if got.Value != 1 {
		t.Errorf("first visible column value = %v, want the score 1", got.Value)
	}
	if _, ok := g.CellData(colX(2), rowY(1)); ok {
		t.Error("space left by the hidden column should not resolve")
	}
	if h, _ := g.CellData(colX(1), headerY); h.Value != "link" {
		t.Errorf("second header = %v, want link", h.Value)
	}
}

func TestGrid_CellDataFollowsRowOrder(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{})
	g.Columns().SortColumn("score", SortAscending)

	var names []any
	for i := range 4 {
		c, _ := g.CellData(colX(0), rowY(i))
		names = append(names, c.Value)
	}
	want := []any{"beta", "delta", "gamma", "alpha"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("column values after sort (-want +got):\n%s", diff)
	}
}

func TestCellsEqual(t *testing.T) {
	a := CellData{Row: 1, Column: 2, Type: ColumnTypeBody, Region: RegionBody, Delta: 3, Value: "x"}
	tests := []struct {
		name string
		b    CellData
		want bool
	}{
		{"same cell different delta", CellData{Row: 1, Column: 2, Type: ColumnTypeBody, Delta: 9}, true},
		{"different row", CellData{Row: 2, Column: 2, Type: ColumnTypeBody}, false},
		{"different column", CellData{Row: 1, Column: 1, Type: ColumnTypeBody}, false},
		{"different type", CellData{Row: 1, Column: 2, Type: ColumnTypeIndex}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellsEqual(a, tt.b); got != tt.want {
				t.Errorf("CellsEqual = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsHeaderCell(t *testing.T) {
	for region, want := range map[Region]bool{
		RegionBody:         false,
		RegionRowHeader:    false,
		RegionColumnHeader: true,
		RegionCornerHeader: true,
	} {
		if got := IsHeaderCell(CellData{Region: region}); got != want {
			t.Errorf("IsHeaderCell(%s) = %v, want %v", region, got, want)
		}
	}
}
