package datagrid

import (
	"cmp"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ValueKind is the inferred kind of a column's values.
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindString
	KindInteger
	KindFloat
	KindBool
	KindTime
	KindMixed
)

// Numeric returns true for integer and float kinds.
func (k ValueKind) Numeric() bool {
	return k == KindInteger || k == KindFloat
}

func kindOf(v any) ValueKind {
	switch v.(type) {
	case nil:
		return KindEmpty
	case string:
		return KindString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	case float32, float64:
		return KindFloat
	case bool:
		return KindBool
	case time.Time:
		return KindTime
	default:
		return KindMixed
	}
}

// inferKind looks at up to limit values of a data column.
func inferKind(m DataModel, column, limit int) ValueKind {
	kind := KindEmpty
	rows := m.RowCount(RegionBody)
	for row := 0; row < rows && row < limit; row++ {
		k := kindOf(m.Data(RegionBody, row, column))
		switch {
		case k == KindEmpty:
		case kind == KindEmpty:
			kind = k
		case kind == k:
		case kind.Numeric() && k.Numeric():
			kind = KindFloat
		default:
			return KindMixed
		}
	}
	return kind
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// compareValues orders two cell values. Empty values sort first, numbers
// compare numerically, times chronologically, and anything else by its
// formatted text.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return cmp.Compare(fa, fb)
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			default:
				return 1
			}
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// FormatValue renders a cell value for display. Floats use the given
// precision; a negative precision prints the shortest representation.
func FormatValue(v any, precision int) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float32:
		return formatFloat(float64(n), precision)
	case float64:
		return formatFloat(n, precision)
	case time.Time:
		return n.Format(time.RFC3339)
	case string:
		return n
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64, precision int) string {
	if precision < 0 {
		return fmt.Sprint(f)
	}
	return fmt.Sprintf("%.*f", precision, f)
}

// isURL reports whether v is a well-formed absolute URL.
func isURL(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}
