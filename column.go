package datagrid

// SortDirection is a column's sort state.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

// Next returns the following state in the none → ascending → descending → none cycle.
func (d SortDirection) Next() SortDirection {
	switch d {
	case SortNone:
		return SortAscending
	case SortAscending:
		return SortDescending
	default:
		return SortNone
	}
}

// String returns the direction name.
func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "none"
	}
}

// HighlighterType is a per-column visual annotation mode.
type HighlighterType int

const (
	HighlighterHeatmap HighlighterType = iota
	HighlighterUniqueEntries
	HighlighterDataBars
)

// String returns the highlighter name.
func (h HighlighterType) String() string {
	switch h {
	case HighlighterHeatmap:
		return "heatmap"
	case HighlighterUniqueEntries:
		return "unique-entries"
	case HighlighterDataBars:
		return "data-bars"
	default:
		return "unknown"
	}
}

// Alignment is horizontal text alignment inside a cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// DefaultPrecision is the display precision of float columns until changed.
const DefaultPrecision = 4

// ColumnKey identifies a column independently of its position.
type ColumnKey struct {
	Type ColumnType
	Name string
}

// Column describes one logical column and its interactive state.
// Columns are owned by a ColumnManager; look them up again after any
// structural change instead of keeping the pointer.
type Column struct {
	Name  string
	Type  ColumnType
	Index int // Data column number in the model
	Kind  ValueKind

	position      int
	visible       bool
	sortDirection SortDirection
	sortSeq       uint64 // When the current sort was activated (multi-sort order)
	highlighters  map[HighlighterType]bool
	precision     int
	alignment     Alignment
	width         float32

	defaultWidth float32
}

// Key returns the column's identity.
func (c *Column) Key() ColumnKey {
	return ColumnKey{Type: c.Type, Name: c.Name}
}

// Position returns the ordering key among columns of the same type.
func (c *Column) Position() int { return c.position }

// Visible reports whether the column occupies space in the grid.
func (c *Column) Visible() bool { return c.visible }

// SortDirection returns the current sort state.
func (c *Column) SortDirection() SortDirection { return c.sortDirection }

// Precision returns the display precision for float values.
func (c *Column) Precision() int { return c.precision }

// Alignment returns the current alignment.
func (c *Column) Alignment() Alignment { return c.alignment }

// Width returns the column width in pixels.
func (c *Column) Width() float32 { return c.width }

// HasHighlighter reports whether the given highlighter is active.
func (c *Column) HasHighlighter(h HighlighterType) bool {
	return c.highlighters[h]
}

// Highlighters returns the active highlighters in a stable order.
func (c *Column) Highlighters() []HighlighterType {
	var out []HighlighterType
	for _, h := range []HighlighterType{HighlighterHeatmap, HighlighterUniqueEntries, HighlighterDataBars} {
		if c.highlighters[h] {
			out = append(out, h)
		}
	}
	return out
}

// FormatValue renders v with this column's precision.
func (c *Column) FormatValue(v any) string {
	if c.Kind == KindFloat || c.Kind == KindMixed {
		return FormatValue(v, c.precision)
	}
	return FormatValue(v, -1)
}

// defaultAlignment right-aligns numbers and left-aligns everything else.
func defaultAlignment(kind ValueKind) Alignment {
	if kind.Numeric() {
		return AlignRight
	}
	return AlignLeft
}
