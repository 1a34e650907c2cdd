package datagrid

import "strconv"

// Region classifies the part of the grid a cell belongs to.
type Region int

const (
	RegionBody Region = iota
	RegionRowHeader
	RegionColumnHeader
	RegionCornerHeader
)

// String returns the region name used in notifications and logs.
func (r Region) String() string {
	switch r {
	case RegionBody:
		return "body"
	case RegionRowHeader:
		return "row-header"
	case RegionColumnHeader:
		return "column-header"
	case RegionCornerHeader:
		return "corner-header"
	default:
		return "unknown"
	}
}

// ColumnType distinguishes row-header (index) columns from body columns.
type ColumnType int

const (
	ColumnTypeBody ColumnType = iota
	ColumnTypeIndex
)

// String returns the column type name.
func (t ColumnType) String() string {
	if t == ColumnTypeIndex {
		return "index"
	}
	return "body"
}

// DataModel is the tabular data the grid displays.
//
// Column numbers are data column numbers: body columns for RegionBody and
// RegionColumnHeader, index columns for RegionRowHeader and
// RegionCornerHeader. Header regions have a single row. Data must return nil
// for anything out of range rather than panic.
type DataModel interface {
	RowCount(region Region) int
	ColumnCount(region Region) int
	Data(region Region, row, column int) any
}

// TableModel is an in-memory DataModel.
//
// When IndexNames is empty the model exposes one index column holding the
// row number.
type TableModel struct {
	IndexNames  []string
	ColumnNames []string
	IndexValues [][]any // One slice per row, parallel to IndexNames
	Values      [][]any // One slice per row, parallel to ColumnNames
}

// NewTableModel creates a model with the given body columns and rows.
func NewTableModel(columns []string, rows [][]any) *TableModel {
	return &TableModel{ColumnNames: columns, Values: rows}
}

// RowCount implements DataModel.
func (m *TableModel) RowCount(region Region) int {
	switch region {
	case RegionBody, RegionRowHeader:
		return len(m.Values)
	default:
		return 1
	}
}

// ColumnCount implements DataModel.
func (m *TableModel) ColumnCount(region Region) int {
	switch region {
	case RegionRowHeader, RegionCornerHeader:
		if len(m.IndexNames) == 0 {
			return 1
		}
		return len(m.IndexNames)
	default:
		return len(m.ColumnNames)
	}
}

// Data implements DataModel.
func (m *TableModel) Data(region Region, row, column int) any {
	switch region {
	case RegionBody:
		return cellAt(m.Values, row, column)
	case RegionColumnHeader:
		if column < 0 || column >= len(m.ColumnNames) {
			return nil
		}
		return m.ColumnNames[column]
	case RegionRowHeader:
		if len(m.IndexNames) == 0 {
			if row < 0 || row >= len(m.Values) || column != 0 {
				return nil
			}
			return row
		}
		return cellAt(m.IndexValues, row, column)
	case RegionCornerHeader:
		if len(m.IndexNames) == 0 {
			if column != 0 {
				return nil
			}
			return ""
		}
		if column < 0 || column >= len(m.IndexNames) {
			return nil
		}
		return m.IndexNames[column]
	}
	return nil
}

func cellAt(rows [][]any, row, column int) any {
	if row < 0 || row >= len(rows) {
		return nil
	}
	r := rows[row]
	if column < 0 || column >= len(r) {
		return nil
	}
	return r[column]
}

// columnName returns the name the model gives a column, falling back to its
// number when the header is empty.
func columnName(m DataModel, typ ColumnType, column int) string {
	region := RegionColumnHeader
	if typ == ColumnTypeIndex {
		region = RegionCornerHeader
	}
	if s, ok := m.Data(region, 0, column).(string); ok && s != "" {
		return s
	}
	if typ == ColumnTypeIndex {
		return "index" + strconv.Itoa(column)
	}
	return strconv.Itoa(column)
}
