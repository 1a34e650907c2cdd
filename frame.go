package datagrid

// SectionRange is a half-open run of visible sections [Start, End).
type SectionRange struct {
	Start int
	End   int
}

// Len returns the number of sections in the range.
func (r SectionRange) Len() int { return r.End - r.Start }

// Contains reports whether i is in the range.
func (r SectionRange) Contains(i int) bool { return i >= r.Start && i < r.End }

// FrameCell is one drawable cell of a frame, in viewport coordinates.
type FrameCell struct {
	Row    int
	Column int
	Region Region
	Type   ColumnType
	Rect   Rect
	Text   string

	Align        Alignment
	Sort         SortDirection
	Highlighters []HighlighterType
	Selected     bool
	Focused      bool
	Hovered      bool
}

// Frame is the part of the grid that intersects the viewport. Only the
// visible sections are materialized, so the cost of a frame does not depend
// on the size of the model.
type Frame struct {
	Viewport     Rect
	Scroll       Vec2
	HeaderWidth  float32
	HeaderHeight float32
	Focused      bool

	Rows         SectionRange
	Columns      SectionRange
	IndexColumns SectionRange

	Corner  []FrameCell
	Headers []FrameCell
	Index   []FrameCell
	Body    []FrameCell
}

// visibleRange returns the sections of s that intersect [scroll, scroll+extent).
func visibleRange(s *SectionList, scroll, extent float32) SectionRange {
	n := s.Count()
	if n == 0 || extent <= 0 {
		return SectionRange{}
	}
	first, ok := FindSectionIndex(s, scroll)
	if !ok {
		return SectionRange{Start: n, End: n}
	}
	last, ok := FindSectionIndex(s, scroll+extent)
	if !ok {
		return SectionRange{Start: first.Index, End: n}
	}
	end := last.Index
	if last.Delta > 0 {
		end++
	}
	return SectionRange{Start: first.Index, End: max(end, first.Index+1)}
}

// CellRect returns the rectangle of a visible cell in viewport coordinates.
// Header regions ignore row.
func (g *Grid) CellRect(region Region, row, column int, typ ColumnType) Rect {
	s := g.sections(typ)
	r := Rect{
		X: g.viewport.X + s.Offset(column),
		Y: g.viewport.Y,
		W: s.Size(column),
		H: g.headerHeight,
	}
	if typ == ColumnTypeBody {
		r.X += g.HeaderWidth() - g.scrollX
	}
	if region == RegionBody || region == RegionRowHeader {
		r.Y += g.headerHeight + g.rowSections.Offset(row) - g.scrollY
		r.H = g.rowSections.Size(row)
	}
	return r
}

func (g *Grid) frame() Frame {
	headerWidth := g.HeaderWidth()
	f := Frame{
		Viewport:     g.viewport,
		Scroll:       g.Scroll(),
		HeaderWidth:  headerWidth,
		HeaderHeight: g.headerHeight,
		Focused:      g.focused,
		Rows:         visibleRange(g.rowSections, g.scrollY, g.viewport.H-g.headerHeight),
		Columns:      visibleRange(g.columnSections, g.scrollX, g.viewport.W-headerWidth),
		IndexColumns: visibleRange(g.rowHeaderSections, 0, min(headerWidth, g.viewport.W)),
	}

	for col := f.IndexColumns.Start; col < f.IndexColumns.End; col++ {
		f.Corner = append(f.Corner, g.frameCell(RegionCornerHeader, 0, col, ColumnTypeIndex))
	}
	for col := f.Columns.Start; col < f.Columns.End; col++ {
		f.Headers = append(f.Headers, g.frameCell(RegionColumnHeader, 0, col, ColumnTypeBody))
	}
	for row := f.Rows.Start; row < f.Rows.End; row++ {
		for col := f.IndexColumns.Start; col < f.IndexColumns.End; col++ {
			f.Index = append(f.Index, g.frameCell(RegionRowHeader, row, col, ColumnTypeIndex))
		}
		for col := f.Columns.Start; col < f.Columns.End; col++ {
			f.Body = append(f.Body, g.frameCell(RegionBody, row, col, ColumnTypeBody))
		}
	}
	return f
}

func (g *Grid) frameCell(region Region, row, column int, typ ColumnType) FrameCell {
	fc := FrameCell{
		Row:    row,
		Column: column,
		Region: region,
		Type:   typ,
		Rect:   g.CellRect(region, row, column, typ),
	}
	c, ok := g.columns.ColumnByPosition(typ, column)
	if !ok {
		return fc
	}
	fc.Align = c.alignment
	fc.Sort = c.sortDirection
	fc.Highlighters = c.Highlighters()

	switch region {
	case RegionColumnHeader, RegionCornerHeader:
		fc.Text = FormatValue(g.headerValue(typ, column), -1)
	default:
		fc.Text = c.FormatValue(g.cellValue(region, typ, row, column))
		fc.Selected = g.IsCellSelected(row, column, typ)
		if f, ok := g.focus.Cell(); ok {
			fc.Focused = f.Row == row && f.Column == column && f.Type == typ
		}
	}
	if h, ok := g.HoveredCell(); ok {
		fc.Hovered = h.Region == region && CellsEqual(h, CellData{Row: row, Column: column, Type: typ})
	}
	return fc
}
