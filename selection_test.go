package datagrid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func bodyKey(row int, name string) CellKey {
	return CellKey{Row: row, Column: ColumnKey{Type: ColumnTypeBody, Name: name}}
}

func TestSelection_SelectAndExtend(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{})

	if !g.SelectCell(1, 1, ColumnTypeBody) {
		t.Fatal("SelectCell failed")
	}
	if anchor, ok := g.Selection().Anchor(); !ok || anchor != bodyKey(1, "score") {
		t.Errorf("Anchor() = %+v, %v", anchor, ok)
	}

	g.ExtendSelection(2, 2, ColumnTypeBody)
	want := []CellKey{
		bodyKey(1, "link"), bodyKey(1, "score"),
		bodyKey(2, "link"), bodyKey(2, "score"),
	}
	if diff := cmp.Diff(want, g.Selection().Keys()); diff != "" {
		t.Errorf("selection (-want +got):\n%s", diff)
	}

	// Extending again replaces the rectangle rather than growing it.
	g.ExtendSelection(0, 1, ColumnTypeBody)
	want = []CellKey{bodyKey(0, "score"), bodyKey(1, "score")}
	if diff := cmp.Diff(want, g.Selection().Keys()); diff != "" {
		t.Errorf("selection after second extend (-want +got):\n%s", diff)
	}
	if anchor, _ := g.Selection().Anchor(); anchor != bodyKey(1, "score") {
		t.Errorf("anchor moved to %+v", anchor)
	}
}

func TestSelection_ExtendWithoutAnchorSelects(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{})

	g.ExtendSelection(2, 0, ColumnTypeBody)
	if diff := cmp.Diff([]CellKey{bodyKey(2, "name")}, g.Selection().Keys()); diff != "" {
		t.Errorf("selection (-want +got):\n%s", diff)
	}

	// An anchor of another column type starts over too.
	g.SelectCell(0, 0, ColumnTypeIndex)
	g.ExtendSelection(1, 1, ColumnTypeBody)
	if diff := cmp.Diff([]CellKey{bodyKey(1, "score")}, g.Selection().Keys()); diff != "" {
		t.Errorf("selection across types (-want +got):\n%s", diff)
	}
}

func TestSelection_OutOfRange(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{})

	if g.SelectCell(4, 0, ColumnTypeBody) || g.SelectCell(0, 3, ColumnTypeBody) {
		t.Error("SelectCell outside the grid should fail")
	}
	if !g.Selection().Empty() {
		t.Error("failed SelectCell changed the selection")
	}
}

func TestSelection_FollowsRowsThroughSort(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{})
	g.SelectCell(0, 0, ColumnTypeBody) // alpha

	g.Columns().SortColumn("score", SortAscending)

	if g.IsCellSelected(0, 0, ColumnTypeBody) {
		t.Error("selection stayed at the visible position instead of the row")
	}
	if !g.IsCellSelected(3, 0, ColumnTypeBody) {
		t.Error("alpha moved to the last row and should still be selected")
	}
}

func TestSelection_PrunedWhenColumnHidden(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{})
	g.SelectCell(0, 0, ColumnTypeBody)
	g.ExtendSelection(1, 1, ColumnTypeBody)

	g.Columns().Hide("score")

	want := []CellKey{bodyKey(0, "name"), bodyKey(1, "name")}
	if diff := cmp.Diff(want, g.Selection().Keys()); diff != "" {
		t.Errorf("selection after hide (-want +got):\n%s", diff)
	}

	// Showing the column again does not bring the cells back.
	g.Columns().Show("score")
	if g.Selection().Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Selection().Len())
	}
}

func TestSelection_AnchorDroppedWithItsRow(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{})
	g.SelectCell(0, 0, ColumnTypeBody)

	g.Rows().Search("beta")

	if _, ok := g.Selection().Anchor(); ok {
		t.Error("anchor should be dropped when its row is filtered out")
	}
	if !g.Selection().Empty() {
		t.Error("selection should be empty")
	}
}

func TestSelection_ClearRequestsRenderOnlyWhenNeeded(t *testing.T) {
	g := newTestGrid(t, sampleModel(), Config{})
	var reasons []RenderReason
	g.RenderRequested.Connect("t", func(r RenderReason) { reasons = append(reasons, r) })

	g.ClearSelection()
	if len(reasons) != 0 {
		t.Errorf("clearing an empty selection requested %v", reasons)
	}

	g.SelectCell(0, 0, ColumnTypeBody)
	g.ClearSelection()
	want := []RenderReason{RenderSelection, RenderSelection}
	if diff := cmp.Diff(want, reasons); diff != "" {
		t.Errorf("render requests (-want +got):\n%s", diff)
	}
	if _, ok := g.Selection().Anchor(); ok {
		t.Error("ClearSelection should drop the anchor")
	}
}
