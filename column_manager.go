package datagrid

import (
	"slices"
)

// kindSampleRows bounds how many rows are read to infer a column's kind.
const kindSampleRows = 100

// ColumnManager owns the column descriptors of a grid. All lookups return
// descriptors valid until the next structural change.
type ColumnManager struct {
	grid    *Grid
	columns [2][]*Column // Indexed by ColumnType, in data order
	ordered [2][]*Column // Position order, rebuilt by refreshOrder
	visible [2][]*Column // Visible columns of ordered
	sortSeq uint64
}

func newColumnManager(g *Grid) *ColumnManager {
	m := &ColumnManager{grid: g}
	for _, typ := range []ColumnType{ColumnTypeBody, ColumnTypeIndex} {
		region := RegionColumnHeader
		width := g.columnWidth
		if typ == ColumnTypeIndex {
			region = RegionCornerHeader
			width = g.indexColumnWidth
		}
		n := g.model.ColumnCount(region)
		cols := make([]*Column, n)
		for i := range n {
			kind := KindString
			if typ == ColumnTypeBody {
				kind = inferKind(g.model, i, kindSampleRows)
			}
			cols[i] = &Column{
				Name:         columnName(g.model, typ, i),
				Type:         typ,
				Index:        i,
				Kind:         kind,
				position:     i,
				visible:      true,
				highlighters: make(map[HighlighterType]bool),
				precision:    DefaultPrecision,
				alignment:    defaultAlignment(kind),
				width:        width,
				defaultWidth: width,
			}
		}
		m.columns[typ] = cols
		m.refreshOrder(typ)
	}
	return m
}

// refreshOrder rebuilds the position-ordered views of one column type. Call
// it after any change to a column's position or visibility.
func (m *ColumnManager) refreshOrder(typ ColumnType) {
	ordered := slices.Clone(m.columns[typ])
	slices.SortFunc(ordered, func(a, b *Column) int { return a.position - b.position })
	m.ordered[typ] = ordered
	m.visible[typ] = slices.DeleteFunc(slices.Clone(ordered), func(c *Column) bool { return !c.visible })
}

func (m *ColumnManager) visibleColumns(typ ColumnType) []*Column {
	if typ != ColumnTypeBody && typ != ColumnTypeIndex {
		return nil
	}
	return m.visible[typ]
}

// Columns returns every column of a type, hidden ones included, in position order.
func (m *ColumnManager) Columns(typ ColumnType) []*Column {
	if typ != ColumnTypeBody && typ != ColumnTypeIndex {
		return nil
	}
	return slices.Clone(m.ordered[typ])
}

// Visible returns the visible columns of a type in position order.
func (m *ColumnManager) Visible(typ ColumnType) []*Column {
	return slices.Clone(m.visibleColumns(typ))
}

// ColumnByName looks a column up by its case-sensitive name, body columns first.
func (m *ColumnManager) ColumnByName(name string) (*Column, bool) {
	if c, ok := m.ColumnByKey(ColumnKey{Type: ColumnTypeBody, Name: name}); ok {
		return c, true
	}
	return m.ColumnByKey(ColumnKey{Type: ColumnTypeIndex, Name: name})
}

// ColumnByKey looks a column up by type and name.
func (m *ColumnManager) ColumnByKey(key ColumnKey) (*Column, bool) {
	if key.Type != ColumnTypeBody && key.Type != ColumnTypeIndex {
		return nil, false
	}
	for _, c := range m.columns[key.Type] {
		if c.Name == key.Name {
			return c, true
		}
	}
	return nil, false
}

// ColumnByPosition returns the column at a visible position.
func (m *ColumnManager) ColumnByPosition(typ ColumnType, position int) (*Column, bool) {
	visible := m.visibleColumns(typ)
	if position < 0 || position >= len(visible) {
		return nil, false
	}
	return visible[position], true
}

// ColumnByCell returns the column a resolved cell belongs to.
func (m *ColumnManager) ColumnByCell(cell CellData) (*Column, bool) {
	return m.ColumnByPosition(cell.Type, cell.Column)
}

// ColumnAt resolves the column under a viewport coordinate.
func (m *ColumnManager) ColumnAt(x, y float32) (*Column, bool) {
	cell, ok := m.grid.CellData(x, y)
	if !ok {
		return nil, false
	}
	return m.ColumnByCell(cell)
}

// visiblePosition returns where c sits among visible columns, or -1.
func (m *ColumnManager) visiblePosition(c *Column) int {
	return slices.Index(m.visibleColumns(c.Type), c)
}

// Hide removes a column from the grid. Hidden columns take no space and
// cannot be hit.
func (m *ColumnManager) Hide(name string) bool {
	c, ok := m.ColumnByName(name)
	if !ok || !c.visible {
		return false
	}
	pos := m.visiblePosition(c)
	c.visible = false
	m.refreshOrder(c.Type)
	m.grid.sections(c.Type).Remove(pos)
	m.grid.logger.Debug("column hidden", "column", name)
	m.grid.afterStructureChange(RenderVisibility)
	return true
}

// Show puts a hidden column back at its position.
func (m *ColumnManager) Show(name string) bool {
	c, ok := m.ColumnByName(name)
	if !ok || c.visible {
		return false
	}
	c.visible = true
	m.refreshOrder(c.Type)
	m.grid.sections(c.Type).Insert(m.visiblePosition(c), c.width)
	m.grid.logger.Debug("column shown", "column", name)
	m.grid.afterStructureChange(RenderVisibility)
	return true
}

// ToggleVisible hides a visible column or shows a hidden one.
func (m *ColumnManager) ToggleVisible(name string) bool {
	c, ok := m.ColumnByName(name)
	if !ok {
		return false
	}
	if c.visible {
		return m.Hide(name)
	}
	return m.Show(name)
}

// ShowAll makes every body column visible.
func (m *ColumnManager) ShowAll() {
	changed := false
	for _, c := range m.columns[ColumnTypeBody] {
		if !c.visible {
			c.visible = true
			changed = true
		}
	}
	if changed {
		m.refreshOrder(ColumnTypeBody)
		m.grid.rebuildColumnSections(ColumnTypeBody)
		m.grid.afterStructureChange(RenderVisibility)
	}
}

// HideAll hides every body column.
func (m *ColumnManager) HideAll() {
	changed := false
	for _, c := range m.columns[ColumnTypeBody] {
		if c.visible {
			c.visible = false
			changed = true
		}
	}
	if changed {
		m.refreshOrder(ColumnTypeBody)
		m.grid.rebuildColumnSections(ColumnTypeBody)
		m.grid.afterStructureChange(RenderVisibility)
	}
}

// MoveColumn moves a column to a new position among all columns of its
// type, shifting the columns in between.
func (m *ColumnManager) MoveColumn(name string, to int) bool {
	c, ok := m.ColumnByName(name)
	if !ok {
		return false
	}
	cols := m.Columns(c.Type)
	to = clamp(to, 0, len(cols)-1)
	from := c.position
	if from == to {
		return false
	}
	cols = slices.Delete(cols, from, from+1)
	cols = slices.Insert(cols, to, c)
	for i, col := range cols {
		col.position = i
	}
	m.refreshOrder(c.Type)
	m.grid.rebuildColumnSections(c.Type)
	m.grid.afterStructureChange(RenderOrder)
	return true
}

// ResetOrder restores the model's column order.
func (m *ColumnManager) ResetOrder() {
	changed := false
	for _, typ := range []ColumnType{ColumnTypeBody, ColumnTypeIndex} {
		moved := false
		for _, c := range m.columns[typ] {
			if c.position != c.Index {
				c.position = c.Index
				moved = true
			}
		}
		if moved {
			m.refreshOrder(typ)
			m.grid.rebuildColumnSections(typ)
			changed = true
		}
	}
	if changed {
		m.grid.afterStructureChange(RenderOrder)
	}
}

// ResizeColumn sets a column's width.
func (m *ColumnManager) ResizeColumn(name string, width float32) bool {
	c, ok := m.ColumnByName(name)
	if !ok {
		return false
	}
	c.width = max(width, 0)
	if c.visible {
		m.grid.sections(c.Type).Resize(m.visiblePosition(c), c.width)
		m.grid.clampScroll()
	}
	m.grid.requestRender(RenderResize)
	return true
}

// ResetWidths restores default column widths.
func (m *ColumnManager) ResetWidths() {
	for _, typ := range []ColumnType{ColumnTypeBody, ColumnTypeIndex} {
		for _, c := range m.columns[typ] {
			c.width = c.defaultWidth
		}
		m.grid.rebuildColumnSections(typ)
	}
	m.grid.clampScroll()
	m.grid.requestRender(RenderResize)
}

// ToggleSort advances a column through none → ascending → descending → none.
func (m *ColumnManager) ToggleSort(name string) bool {
	c, ok := m.ColumnByName(name)
	if !ok {
		return false
	}
	m.sortColumn(c, c.sortDirection.Next())
	return true
}

// ToggleSortKey is ToggleSort for a column identified by type and name.
func (m *ColumnManager) ToggleSortKey(key ColumnKey) bool {
	c, ok := m.ColumnByKey(key)
	if !ok {
		return false
	}
	m.sortColumn(c, c.sortDirection.Next())
	return true
}

// SortColumn sets a column's sort direction and reorders the rows.
// Without multi-sort, every other column's direction is cleared.
func (m *ColumnManager) SortColumn(name string, dir SortDirection) bool {
	c, ok := m.ColumnByName(name)
	if !ok {
		return false
	}
	m.sortColumn(c, dir)
	return true
}

func (m *ColumnManager) sortColumn(c *Column, dir SortDirection) {
	if !m.grid.multiSort {
		for _, typ := range []ColumnType{ColumnTypeBody, ColumnTypeIndex} {
			for _, other := range m.columns[typ] {
				if other != c {
					other.sortDirection = SortNone
				}
			}
		}
	}
	c.sortDirection = dir
	m.sortSeq++
	c.sortSeq = m.sortSeq
	m.grid.logger.Debug("column sort", "column", c.Name, "direction", dir.String())
	m.grid.rows.applySort(m.sortKeys())
}

// resetSortState clears every column's sort direction.
func (m *ColumnManager) resetSortState() {
	for _, typ := range []ColumnType{ColumnTypeBody, ColumnTypeIndex} {
		for _, c := range m.columns[typ] {
			c.sortDirection = SortNone
		}
	}
}

// sortKeys returns the active sort keys, most recently activated first.
func (m *ColumnManager) sortKeys() []SortKey {
	var sorted []*Column
	for _, typ := range []ColumnType{ColumnTypeBody, ColumnTypeIndex} {
		for _, c := range m.columns[typ] {
			if c.sortDirection != SortNone {
				sorted = append(sorted, c)
			}
		}
	}
	slices.SortFunc(sorted, func(a, b *Column) int {
		switch {
		case a.sortSeq > b.sortSeq:
			return -1
		case a.sortSeq < b.sortSeq:
			return 1
		}
		return 0
	})
	keys := make([]SortKey, len(sorted))
	for i, c := range sorted {
		keys[i] = SortKey{Type: c.Type, Column: c.Index, Direction: c.sortDirection}
	}
	return keys
}

// ToggleHighlighter switches a highlighter on or off for a column.
func (m *ColumnManager) ToggleHighlighter(name string, h HighlighterType) bool {
	c, ok := m.ColumnByName(name)
	if !ok {
		return false
	}
	m.toggleHighlighter(c, h)
	return true
}

func (m *ColumnManager) toggleHighlighter(c *Column, h HighlighterType) {
	if c.highlighters[h] {
		delete(c.highlighters, h)
	} else {
		c.highlighters[h] = true
	}
	m.grid.logger.Debug("column highlighter", "column", c.Name, "highlighter", h.String(), "on", c.highlighters[h])
	m.grid.requestRender(RenderHighlighter)
}

// RemoveHighlighters clears every column's highlighters.
func (m *ColumnManager) RemoveHighlighters() {
	for _, typ := range []ColumnType{ColumnTypeBody, ColumnTypeIndex} {
		for _, c := range m.columns[typ] {
			clear(c.highlighters)
		}
	}
	m.grid.requestRender(RenderHighlighter)
}

// SetPrecision sets the float display precision of one column.
func (m *ColumnManager) SetPrecision(name string, precision int) bool {
	c, ok := m.ColumnByName(name)
	if !ok {
		return false
	}
	return m.setColumnPrecision(c, precision)
}

func (m *ColumnManager) setColumnPrecision(c *Column, precision int) bool {
	if precision < 0 {
		return false
	}
	c.precision = precision
	m.grid.requestRender(RenderFormat)
	return true
}

// SetColumnsPrecision sets the precision of every body column.
func (m *ColumnManager) SetColumnsPrecision(precision int) {
	if precision < 0 {
		return
	}
	for _, c := range m.columns[ColumnTypeBody] {
		c.precision = precision
	}
	m.grid.requestRender(RenderFormat)
}

// SetAlignment sets a column's alignment.
func (m *ColumnManager) SetAlignment(name string, a Alignment) bool {
	c, ok := m.ColumnByName(name)
	if !ok {
		return false
	}
	c.alignment = a
	m.grid.requestRender(RenderFormat)
	return true
}

// ResetAlignment restores every column's default alignment.
func (m *ColumnManager) ResetAlignment() {
	for _, typ := range []ColumnType{ColumnTypeBody, ColumnTypeIndex} {
		for _, c := range m.columns[typ] {
			c.alignment = defaultAlignment(c.Kind)
		}
	}
	m.grid.requestRender(RenderFormat)
}
