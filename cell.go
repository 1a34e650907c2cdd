package datagrid

// CellData describes the cell under a pointer coordinate. It is a fresh
// value per query and reflects geometry at the moment it was produced.
type CellData struct {
	Row       int        // Visible row index (0 for header regions)
	Column    int        // Visible column position within Type
	Region    Region     //
	Type      ColumnType //
	Offset    float32    // Leading edge of the column in its section list
	OffsetTop float32    // Top edge of the row including the header, 0 for headers
	Delta     float32    // Pointer distance from the column's leading edge
	Value     any        // Model value at the cell, nil when there is none
}

// CellsEqual reports whether two cells are the same (row, column, type).
func CellsEqual(a, b CellData) bool {
	return a.Row == b.Row && a.Column == b.Column && a.Type == b.Type
}

// IsHeaderCell reports whether the cell is in a header band.
func IsHeaderCell(c CellData) bool {
	return c.Region == RegionColumnHeader || c.Region == RegionCornerHeader
}

// IsOverHeader reports whether the viewport coordinate lies in the column
// header band.
func (g *Grid) IsOverHeader(x, y float32) bool {
	ly := y - g.viewport.Y
	return ly >= 0 && ly <= g.headerHeight
}

// CellData resolves the cell under a viewport coordinate.
//
// Resolution order: the corner header, then row-header (index) columns,
// then body columns. The result depends only on the coordinate and the
// current geometry and scroll state.
func (g *Grid) CellData(viewportX, viewportY float32) (CellData, bool) {
	x := viewportX - g.viewport.X
	y := viewportY - g.viewport.Y
	headerWidth := g.HeaderWidth()

	if x < headerWidth && y <= g.headerHeight {
		return g.cornerCellData(y)
	}

	sections := g.columnSections
	typ := ColumnTypeBody
	region := RegionBody
	pos := x + g.scrollX - headerWidth
	if x < headerWidth {
		// Row-header columns do not scroll horizontally.
		sections = g.rowHeaderSections
		typ = ColumnTypeIndex
		region = RegionRowHeader
		pos = x
	}

	overHeader := y <= g.headerHeight
	var row SectionMatch
	rowOk := false
	if !overHeader {
		row, rowOk = FindSectionIndex(g.rowSections, y+g.scrollY-g.headerHeight)
	}

	column, ok := FindSectionIndex(sections, pos)
	if !ok {
		return CellData{}, false
	}

	cell := CellData{
		Row:    row.Index,
		Column: column.Index,
		Region: region,
		Type:   typ,
		Offset: g.ColumnOffset(column.Index, typ),
		Delta:  column.Delta,
	}
	if rowOk {
		cell.OffsetTop = g.RowOffset(row.Index) + g.headerHeight
	}
	if overHeader {
		cell.Region = RegionColumnHeader
		cell.Value = g.headerValue(typ, column.Index)
	} else if rowOk {
		cell.Value = g.cellValue(region, typ, row.Index, column.Index)
	}
	return cell, true
}

// cornerCellData resolves the corner header. Index columns are indexed top
// to bottom there, so the lookup uses the y coordinate.
func (g *Grid) cornerCellData(y float32) (CellData, bool) {
	column, ok := FindSectionIndex(g.rowHeaderSections, y)
	if !ok {
		return CellData{}, false
	}
	value := any(nil)
	if c, ok := g.columns.ColumnByPosition(ColumnTypeIndex, column.Index); ok {
		value = g.model.Data(RegionCornerHeader, 0, c.Index)
	}
	return CellData{
		Row:       0,
		Column:    column.Index,
		Region:    RegionCornerHeader,
		Type:      ColumnTypeIndex,
		Offset:    g.ColumnOffset(column.Index, ColumnTypeIndex),
		OffsetTop: g.headerHeight,
		Delta:     column.Delta,
		Value:     value,
	}, true
}

// cellValue maps a visible (row, column) to model coordinates and reads it.
func (g *Grid) cellValue(region Region, typ ColumnType, row, column int) any {
	c, ok := g.columns.ColumnByPosition(typ, column)
	if !ok {
		return nil
	}
	dataRow, ok := g.rows.DataRow(row)
	if !ok {
		return nil
	}
	return g.model.Data(region, dataRow, c.Index)
}

func (g *Grid) headerValue(typ ColumnType, column int) any {
	c, ok := g.columns.ColumnByPosition(typ, column)
	if !ok {
		return nil
	}
	if typ == ColumnTypeIndex {
		return g.model.Data(RegionCornerHeader, 0, c.Index)
	}
	return g.model.Data(RegionColumnHeader, 0, c.Index)
}

// CellValue returns the model value at a visible body cell.
func (g *Grid) CellValue(row, column int) any {
	return g.cellValue(RegionBody, ColumnTypeBody, row, column)
}
