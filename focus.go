package datagrid

// Direction is an arrow-key movement.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// CellFocus is the focused-cell indicator keyboard commands act on.
// Coordinates are visible positions.
type CellFocus struct {
	Row    int
	Column int
	Type   ColumnType
	set    bool
}

// Cell returns the focused cell, if any.
func (f *CellFocus) Cell() (CellFocus, bool) {
	return *f, f.set
}

// Clear removes the focus indicator.
func (f *CellFocus) Clear() {
	*f = CellFocus{}
}

// clampTo keeps the indicator inside the visible extents, clearing it
// when the grid has nothing left to focus.
func (f *CellFocus) clampTo(g *Grid) {
	if !f.set {
		return
	}
	rows := g.rowSections.Count()
	cols := g.sections(f.Type).Count()
	if rows == 0 || cols == 0 {
		f.Clear()
		return
	}
	f.Row = clamp(f.Row, 0, rows-1)
	f.Column = clamp(f.Column, 0, cols-1)
}

// SetFocusedCell moves the indicator to a visible cell.
func (g *Grid) SetFocusedCell(row, column int, typ ColumnType) bool {
	if row < 0 || row >= g.rowSections.Count() || column < 0 || column >= g.sections(typ).Count() {
		return false
	}
	*g.focus = CellFocus{Row: row, Column: column, Type: typ, set: true}
	g.requestRender(RenderFocus)
	return true
}

// FocusedCellData returns the focused cell in CellData form.
func (g *Grid) FocusedCellData() (CellData, bool) {
	f, ok := g.focus.Cell()
	if !ok {
		return CellData{}, false
	}
	region := RegionBody
	if f.Type == ColumnTypeIndex {
		region = RegionRowHeader
	}
	return CellData{
		Row:       f.Row,
		Column:    f.Column,
		Region:    region,
		Type:      f.Type,
		Offset:    g.ColumnOffset(f.Column, f.Type),
		OffsetTop: g.RowOffset(f.Row) + g.headerHeight,
		Value:     g.cellValue(region, f.Type, f.Row, f.Column),
	}, true
}

// MoveFocus moves the indicator one step, clamped to the visible rows and
// columns without wrapping, and scrolls it into view.
func (g *Grid) MoveFocus(dir Direction) bool {
	f, ok := g.focus.Cell()
	if !ok {
		return false
	}
	rows := g.rowSections.Count()
	cols := g.sections(f.Type).Count()
	if rows == 0 || cols == 0 {
		return false
	}
	row, col := f.Row, f.Column
	switch dir {
	case DirUp:
		row--
	case DirDown:
		row++
	case DirLeft:
		col--
	case DirRight:
		col++
	}
	row = clamp(row, 0, rows-1)
	col = clamp(col, 0, cols-1)
	if row == f.Row && col == f.Column {
		return false
	}
	g.SetFocusedCell(row, col, f.Type)
	g.ScrollToCell(row, col, f.Type)
	return true
}
