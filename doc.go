/*
Package datagrid is the interaction engine of a virtualized data grid: it maps
pointer coordinates to cells over scrolled, variably sized rows and columns,
and turns raw pointer and keyboard input into grid actions such as sorting,
selection, highlighter toggles and double-click notifications.

The engine does not draw. Render returns a Frame describing the visible
window, and backends paint it (see backend/opengl and backend/terminal).

# Quick Start

	model := datagrid.NewTableModel([]string{"name", "score"}, rows)
	doc := datagrid.NewDispatcher()
	grid := datagrid.New(model,
	    datagrid.WithHost(host),
	    datagrid.WithDocument(doc))
	defer grid.Destroy()

	if err := grid.Initialize(datagrid.Config{
	    Viewport:             datagrid.Rect{W: 800, H: 600},
	    HasDoubleClickAction: true,
	}); err != nil {
	    return err
	}

	// Pointer events go to the grid's node, keys to the document.
	grid.Node().Dispatch(datagrid.MouseMove(120, 48, 0))
	doc.Dispatch(datagrid.KeyDown(datagrid.KeyRune, 'h', 0))

	// Hover is coalesced; tick from the host loop.
	grid.Tick(time.Now())
	frame := grid.Render()

# Geometry

Rows, body columns and row-header (index) columns are each a SectionList.
FindSectionIndex does a binary search over cumulative offsets, which are
rebuilt lazily after a mutation and before the next lookup. Hidden columns and
filtered rows have no section, so they occupy no space and cannot be hit.

Grid.CellData resolves viewport coordinates to a CellData. The top-left
corner resolves by y alone against the index columns. Index columns do not
scroll horizontally; body columns do.

# Input

Keyboard handling is active only while the grid is focused, which happens on
a primary-button press inside the grid and ends when the pointer leaves it:

	H, U, B          Toggle heatmap, unique entries, data bars on the focused column
	1-9              Set float precision on every column
	Shift+1-9        Set float precision on the focused column only
	Arrow keys       Move the focused cell, clamped to the visible extent

Mouse wheel scrolls only while focused. A header click cycles the column
through none, ascending and descending. WithMultiSort keeps the other columns'
directions, and the most recently clicked column becomes the primary key.

# Notifications

Grid.HoverChanged, Grid.Comm and Grid.RenderRequested are keyed signals.
Connecting twice with the same key replaces the handler.

# Debug Logging

Call SetVerbose(true) to log dispatch and state changes at debug level, or
pass WithLogger to route one grid's records elsewhere.
*/
package datagrid
