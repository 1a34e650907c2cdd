package datagrid

import "strconv"

// Index menu action names.
const (
	ActionShowAllColumns       = "Show All Columns"
	ActionShowColumn           = "Show Column"
	ActionHideAllColumns       = "Hide All Columns"
	ActionClearSelection       = "Clear selection"
	ActionHideFilter           = "Hide Filter"
	ActionResetAllInteractions = "Reset All Interactions"
)

// Column menu action names.
const (
	ActionSortAscending  = "Sort Ascending"
	ActionSortDescending = "Sort Descending"
	ActionNoSort         = "No Sort"
	ActionHideColumn     = "Hide Column"
	ActionAlignLeft      = "Align Left"
	ActionAlignCenter    = "Align Center"
	ActionAlignRight     = "Align Right"
	ActionHeatmap        = "Heatmap"
	ActionUniqueEntries  = "Unique Entries"
	ActionDataBars       = "Data Bars"
	ActionPrecision      = "Precision"
)

// SubmenuName joins a submenu title and an item title.
func SubmenuName(menu, item string) string {
	return menu + "/" + item
}

// IndexMenuActions returns the actions of the index column menu. Column
// toggles are listed under "Show Column/<name>" for every body column.
func IndexMenuActions(g *Grid) *ActionRegistry {
	r := NewActionRegistry()
	r.Register(ActionShowAllColumns, g.columns.ShowAll)
	for _, c := range g.columns.Columns(ColumnTypeBody) {
		key := c.Key()
		r.RegisterEntry(ActionEntry{
			Name: SubmenuName(ActionShowColumn, c.Name),
			Handler: func() {
				c, ok := g.columns.ColumnByKey(key)
				if !ok {
					return
				}
				if c.visible {
					g.columns.Hide(c.Name)
				} else {
					g.columns.Show(c.Name)
				}
			},
			Checked: func() bool {
				c, ok := g.columns.ColumnByKey(key)
				return ok && c.visible
			},
		})
	}
	r.Register(ActionHideAllColumns, g.columns.HideAll)
	r.RegisterWithCondition(ActionClearSelection, g.ClearSelection, func() bool {
		return !g.selection.Empty()
	})
	r.Register(ActionHideFilter, g.rows.ResetFilters)
	r.Register(ActionResetAllInteractions, g.ResetInteractions)
	return r
}

// ColumnMenuActions returns the actions of a body or index column's header
// menu. Every handler looks the column up by name when invoked, so the
// table stays valid across reordering and hiding; if the column is gone
// the action is a no-op.
func ColumnMenuActions(g *Grid, name string) *ActionRegistry {
	r := NewActionRegistry()
	lookup := func() (*Column, bool) { return g.columns.ColumnByName(name) }

	sortAction := func(dir SortDirection) ActionEntry {
		return ActionEntry{
			Handler: func() { g.columns.SortColumn(name, dir) },
			Checked: func() bool {
				c, ok := lookup()
				return ok && c.sortDirection == dir
			},
		}
	}
	for _, a := range []struct {
		name string
		dir  SortDirection
	}{
		{ActionSortAscending, SortAscending},
		{ActionSortDescending, SortDescending},
		{ActionNoSort, SortNone},
	} {
		e := sortAction(a.dir)
		e.Name = a.name
		r.RegisterEntry(e)
	}

	r.RegisterWithCondition(ActionHideColumn, func() { g.columns.Hide(name) }, func() bool {
		c, ok := lookup()
		return ok && c.visible && c.Type == ColumnTypeBody
	})

	for _, a := range []struct {
		name  string
		align Alignment
	}{
		{ActionAlignLeft, AlignLeft},
		{ActionAlignCenter, AlignCenter},
		{ActionAlignRight, AlignRight},
	} {
		align := a.align
		r.RegisterEntry(ActionEntry{
			Name:    a.name,
			Handler: func() { g.columns.SetAlignment(name, align) },
			Checked: func() bool {
				c, ok := lookup()
				return ok && c.alignment == align
			},
		})
	}

	for _, a := range []struct {
		name string
		h    HighlighterType
	}{
		{ActionHeatmap, HighlighterHeatmap},
		{ActionUniqueEntries, HighlighterUniqueEntries},
		{ActionDataBars, HighlighterDataBars},
	} {
		h := a.h
		r.RegisterEntry(ActionEntry{
			Name:    a.name,
			Handler: func() { g.columns.ToggleHighlighter(name, h) },
			Checked: func() bool {
				c, ok := lookup()
				return ok && c.highlighters[h]
			},
		})
	}

	for p := 1; p <= 9; p++ {
		r.RegisterEntry(ActionEntry{
			Name:    SubmenuName(ActionPrecision, strconv.Itoa(p)),
			Handler: func() { g.columns.SetPrecision(name, p) },
			Condition: func() bool {
				c, ok := lookup()
				return ok && (c.Kind == KindFloat || c.Kind == KindMixed)
			},
			Checked: func() bool {
				c, ok := lookup()
				return ok && c.precision == p
			},
		})
	}
	return r
}

// ResetInteractions undoes every user interaction: highlighters,
// selection, sorting, filters, column visibility, alignment, order and
// widths.
func (g *Grid) ResetInteractions() {
	g.columns.RemoveHighlighters()
	g.ClearSelection()
	g.rows.ResetSorting()
	g.rows.ResetFilters()
	g.columns.ShowAll()
	g.columns.ResetAlignment()
	g.columns.ResetOrder()
	g.columns.ResetWidths()
	g.logger.Debug("interactions reset")
}
