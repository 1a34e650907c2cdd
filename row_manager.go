package datagrid

import (
	"fmt"
	"slices"
	"strings"
)

// SortKey orders rows by one column.
type SortKey struct {
	Type      ColumnType
	Column    int // Data column number
	Direction SortDirection
}

// Row is a read-only view of one data row, handed to filter predicates.
type Row struct {
	grid  *Grid
	Index int // Data row number
}

// Value returns the row's value in the named column, or nil.
func (r Row) Value(name string) any {
	c, ok := r.grid.columns.ColumnByName(name)
	if !ok {
		return nil
	}
	region := RegionBody
	if c.Type == ColumnTypeIndex {
		region = RegionRowHeader
	}
	return r.grid.model.Data(region, r.Index, c.Index)
}

// RowPredicate decides whether a row stays visible.
type RowPredicate func(Row) bool

// RowManager holds the visible row order: a permutation of data rows with
// filtered rows removed. Sorting permutes; filtering removes.
type RowManager struct {
	grid   *Grid
	order  []int
	keys   []SortKey
	filter RowPredicate
	search string
}

func newRowManager(g *Grid) *RowManager {
	m := &RowManager{grid: g}
	m.order = m.baseOrder()
	return m
}

// VisibleCount returns the number of visible rows.
func (m *RowManager) VisibleCount() int {
	return len(m.order)
}

// DataRow maps a visible row index to its data row.
func (m *RowManager) DataRow(visible int) (int, bool) {
	if visible < 0 || visible >= len(m.order) {
		return 0, false
	}
	return m.order[visible], true
}

// VisibleIndex maps a data row to its visible index.
func (m *RowManager) VisibleIndex(dataRow int) (int, bool) {
	i := slices.Index(m.order, dataRow)
	return i, i >= 0
}

// Order returns a copy of the visible data rows in display order.
func (m *RowManager) Order() []int {
	return slices.Clone(m.order)
}

// SortKeys returns the active sort keys.
func (m *RowManager) SortKeys() []SortKey {
	return slices.Clone(m.keys)
}

// Filter keeps only rows matching pred. Relative order of the remaining
// rows is preserved. A nil predicate removes the filter.
func (m *RowManager) Filter(pred RowPredicate) {
	m.filter = pred
	m.refilter()
}

// Search keeps only rows where some visible column's formatted value
// contains text. Empty text removes the search.
func (m *RowManager) Search(text string) {
	m.search = text
	m.refilter()
}

// ResetFilters removes both the filter and the search.
func (m *RowManager) ResetFilters() {
	if m.filter == nil && m.search == "" {
		return
	}
	m.filter = nil
	m.search = ""
	m.refilter()
}

// ResetSorting restores data order and clears every column's sort state.
func (m *RowManager) ResetSorting() {
	m.grid.columns.resetSortState()
	m.applySort(nil)
}

// applySort reorders the visible rows by keys. The sort is stable against
// the current order, so equal rows keep their relative position. With no
// keys the data order is restored.
func (m *RowManager) applySort(keys []SortKey) {
	prev := slices.Clone(m.order)
	m.keys = keys
	if len(keys) == 0 {
		m.order = m.baseOrder()
	} else {
		slices.SortStableFunc(m.order, m.compareRows)
	}
	m.grid.reorderRowSections(prev)
	m.grid.afterStructureChange(RenderSort)
}

func (m *RowManager) refilter() {
	prev := m.order
	m.order = m.baseOrder()
	if len(m.keys) > 0 {
		slices.SortStableFunc(m.order, m.compareRows)
	}
	m.grid.reorderRowSections(prev)
	m.grid.logger.Debug("rows filtered", "visible", len(m.order))
	m.grid.afterStructureChange(RenderFilter)
}

// baseOrder returns the data rows that pass the filter and search, in
// data order.
func (m *RowManager) baseOrder() []int {
	n := m.grid.model.RowCount(RegionBody)
	order := make([]int, 0, n)
	for row := range n {
		if m.filter != nil && !m.filter(Row{grid: m.grid, Index: row}) {
			continue
		}
		if m.search != "" && !m.rowContains(row, m.search) {
			continue
		}
		order = append(order, row)
	}
	return order
}

func (m *RowManager) rowContains(row int, text string) bool {
	for _, c := range m.grid.columns.visibleColumns(ColumnTypeBody) {
		if strings.Contains(c.FormatValue(m.grid.model.Data(RegionBody, row, c.Index)), text) {
			return true
		}
	}
	for _, c := range m.grid.columns.visibleColumns(ColumnTypeIndex) {
		if strings.Contains(fmt.Sprint(m.grid.model.Data(RegionRowHeader, row, c.Index)), text) {
			return true
		}
	}
	return false
}

func (m *RowManager) compareRows(a, b int) int {
	for _, k := range m.keys {
		region := RegionBody
		if k.Type == ColumnTypeIndex {
			region = RegionRowHeader
		}
		c := compareValues(m.grid.model.Data(region, a, k.Column), m.grid.model.Data(region, b, k.Column))
		if k.Direction == SortDescending {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}
