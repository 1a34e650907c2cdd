package datagrid

import (
	"cmp"
	"maps"
	"slices"
)

// CellKey identifies a cell independently of sorting, filtering and column
// order: a data row and a column identity.
type CellKey struct {
	Row    int
	Column ColumnKey
}

// Selection is the set of selected cells plus the anchor a drag extends from.
type Selection struct {
	cells     map[CellKey]struct{}
	anchor    CellKey
	hasAnchor bool
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{cells: make(map[CellKey]struct{})}
}

// Len returns the number of selected cells.
func (s *Selection) Len() int { return len(s.cells) }

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool { return len(s.cells) == 0 }

// Contains reports whether a cell is selected.
func (s *Selection) Contains(k CellKey) bool {
	_, ok := s.cells[k]
	return ok
}

// Keys returns the selected cells ordered by data row, then column name.
func (s *Selection) Keys() []CellKey {
	keys := slices.Collect(maps.Keys(s.cells))
	slices.SortFunc(keys, func(a, b CellKey) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Column.Type, b.Column.Type); c != 0 {
			return c
		}
		return cmp.Compare(a.Column.Name, b.Column.Name)
	})
	return keys
}

// Anchor returns the cell a range extension starts from.
func (s *Selection) Anchor() (CellKey, bool) {
	return s.anchor, s.hasAnchor
}

// Add selects cells without touching the anchor.
func (s *Selection) Add(keys ...CellKey) {
	for _, k := range keys {
		s.cells[k] = struct{}{}
	}
}

// Clear removes every selected cell and the anchor.
func (s *Selection) Clear() {
	clear(s.cells)
	s.hasAnchor = false
}

// Prune removes cells for which valid returns false and returns how many
// were removed. The anchor is dropped when it is no longer valid.
func (s *Selection) Prune(valid func(CellKey) bool) int {
	removed := 0
	for k := range s.cells {
		if !valid(k) {
			delete(s.cells, k)
			removed++
		}
	}
	if s.hasAnchor && !valid(s.anchor) {
		s.hasAnchor = false
	}
	return removed
}

func (s *Selection) setAnchor(k CellKey) {
	s.anchor = k
	s.hasAnchor = true
}

// cellKey converts a visible body or row-header cell to its stable key.
func (g *Grid) cellKey(row, column int, typ ColumnType) (CellKey, bool) {
	c, ok := g.columns.ColumnByPosition(typ, column)
	if !ok {
		return CellKey{}, false
	}
	dataRow, ok := g.rows.DataRow(row)
	if !ok {
		return CellKey{}, false
	}
	return CellKey{Row: dataRow, Column: c.Key()}, true
}

// SelectCell makes a single visible cell the whole selection and the anchor.
func (g *Grid) SelectCell(row, column int, typ ColumnType) bool {
	k, ok := g.cellKey(row, column, typ)
	if !ok {
		return false
	}
	g.selection.Clear()
	g.selection.Add(k)
	g.selection.setAnchor(k)
	g.requestRender(RenderSelection)
	return true
}

// ExtendSelection replaces the selection with the rectangle between the
// anchor and a visible cell of the same column type.
func (g *Grid) ExtendSelection(row, column int, typ ColumnType) bool {
	anchor, ok := g.selection.Anchor()
	if !ok || anchor.Column.Type != typ {
		return g.SelectCell(row, column, typ)
	}
	aRow, ok := g.rows.VisibleIndex(anchor.Row)
	if !ok {
		return false
	}
	ac, ok := g.columns.ColumnByKey(anchor.Column)
	if !ok {
		return false
	}
	aCol := g.columns.visiblePosition(ac)
	if aCol < 0 {
		return false
	}
	if _, ok := g.cellKey(row, column, typ); !ok {
		return false
	}

	r0, r1 := min(aRow, row), max(aRow, row)
	c0, c1 := min(aCol, column), max(aCol, column)
	g.selection.Clear()
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if k, ok := g.cellKey(r, c, typ); ok {
				g.selection.Add(k)
			}
		}
	}
	g.selection.setAnchor(anchor)
	g.requestRender(RenderSelection)
	return true
}

// ClearSelection empties the selection.
func (g *Grid) ClearSelection() {
	if g.selection.Empty() && !g.selection.hasAnchor {
		return
	}
	g.selection.Clear()
	g.requestRender(RenderSelection)
}

// IsCellSelected reports whether a visible cell is selected.
func (g *Grid) IsCellSelected(row, column int, typ ColumnType) bool {
	k, ok := g.cellKey(row, column, typ)
	return ok && g.selection.Contains(k)
}

// pruneSelection drops selected cells whose row is filtered out or whose
// column is hidden.
func (g *Grid) pruneSelection() {
	removed := g.selection.Prune(func(k CellKey) bool {
		if _, ok := g.rows.VisibleIndex(k.Row); !ok {
			return false
		}
		c, ok := g.columns.ColumnByKey(k.Column)
		return ok && c.visible
	})
	if removed > 0 {
		g.logger.Debug("selection pruned", "removed", removed)
	}
}
