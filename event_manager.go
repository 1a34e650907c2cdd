package datagrid

import (
	"time"
	"unicode"
)

// wheelLines is how many rows one wheel notch scrolls.
const wheelLines = 3

// EventManager turns raw input into grid actions. It owns every listener it
// registers and removes all of them on Detach.
type EventManager struct {
	grid *Grid

	node     EventTarget
	document EventTarget
	nodeIDs  map[EventKind]ListenerID
	keyID    ListenerID
	attached bool

	hover *Throttle[Vec2]
}

func newEventManager(g *Grid) *EventManager {
	m := &EventManager{
		grid:  g,
		keyID: NewListenerID(),
		nodeIDs: map[EventKind]ListenerID{
			EventMouseMove:   NewListenerID(),
			EventMouseDown:   NewListenerID(),
			EventMouseUp:     NewListenerID(),
			EventMouseOut:    NewListenerID(),
			EventDoubleClick: NewListenerID(),
			EventWheel:       NewListenerID(),
		},
	}
	m.hover = NewThrottle(g.hoverInterval, m.resolveHover)
	return m
}

// Attach registers pointer listeners on node and the keyboard listener on
// document. Attaching again first removes the previous registrations.
func (m *EventManager) Attach(node, document EventTarget) {
	m.Detach()
	m.node, m.document = node, document
	for kind, id := range m.nodeIDs {
		node.AddListener(Listener{ID: id, Kind: kind, Handle: m.Handle})
	}
	document.AddListener(Listener{ID: m.keyID, Kind: EventKeyDown, Handle: m.Handle})
	m.attached = true
}

// Detach removes every listener Attach registered. Safe to call when not attached.
func (m *EventManager) Detach() {
	if !m.attached {
		return
	}
	for kind, id := range m.nodeIDs {
		m.node.RemoveListener(kind, id)
	}
	m.document.RemoveListener(EventKeyDown, m.keyID)
	m.hover.Cancel()
	m.node, m.document = nil, nil
	m.attached = false
}

// Attached reports whether listeners are registered.
func (m *EventManager) Attached() bool { return m.attached }

// Tick fires a pending hover once its window has elapsed.
func (m *EventManager) Tick(now time.Time) {
	m.hover.Tick(now)
}

// Handle classifies ev and routes it to one handler.
func (m *EventManager) Handle(ev *Event) {
	if ev == nil || m.grid.destroyed {
		return
	}
	if ev.Time.IsZero() {
		ev.Time = m.grid.now()
	}
	switch ev.Kind {
	case EventMouseMove:
		m.handleMouseMove(ev)
	case EventMouseDown:
		m.handleMouseDown(ev)
	case EventMouseUp:
		m.handleMouseUp(ev)
	case EventMouseOut:
		m.handleMouseOut(ev)
	case EventDoubleClick:
		m.handleDoubleClick(ev)
	case EventKeyDown:
		m.handleKeyDown(ev)
	case EventWheel:
		m.handleWheel(ev)
	}
}

func (m *EventManager) handleMouseMove(ev *Event) {
	m.hover.Call(ev.Time, ev.Pos())

	g := m.grid
	if !g.focused || ev.Buttons&ButtonPrimary == 0 || g.IsOverHeader(ev.X, ev.Y) {
		return
	}
	if cell, ok := g.CellData(ev.X, ev.Y); ok && !IsHeaderCell(cell) {
		g.ExtendSelection(cell.Row, cell.Column, cell.Type)
	}
}

func (m *EventManager) resolveHover(p Vec2) {
	g := m.grid
	cell, ok := g.CellData(p.X, p.Y)
	g.hovered, g.hasHovered = cell, ok
	if gridVerbose() {
		g.logger.Debug("hover", "x", p.X, "y", p.Y, "ok", ok, "row", cell.Row, "column", cell.Column, "region", cell.Region.String())
	}
	g.HoverChanged.Emit(HoverEvent{Cell: cell, Ok: ok})
}

func (m *EventManager) handleMouseDown(ev *Event) {
	if ev.Buttons != ButtonPrimary {
		return
	}
	g := m.grid
	if !g.focused {
		g.focused = true
		g.host.SetKeyboardShortcutsEnabled(false)
		g.logger.Debug("grid focused")
		g.requestRender(RenderFocus)
	}

	cell, ok := g.CellData(ev.X, ev.Y)
	if !ok || IsHeaderCell(cell) {
		return
	}
	g.SetFocusedCell(cell.Row, cell.Column, cell.Type)
	if ev.Mods.Has(ModShift) {
		g.ExtendSelection(cell.Row, cell.Column, cell.Type)
		return
	}
	g.SelectCell(cell.Row, cell.Column, cell.Type)
}

func (m *EventManager) handleMouseUp(ev *Event) {
	if ev.Button != MouseButtonLeft {
		return
	}
	m.handleHeaderClick(ev)
	m.handleBodyClick(ev)
}

func (m *EventManager) handleHeaderClick(ev *Event) {
	g := m.grid
	if !g.IsOverHeader(ev.X, ev.Y) || ev.Buttons != 0 || ev.Target != TargetCanvas {
		return
	}
	cell, ok := g.CellData(ev.X, ev.Y)
	if !ok {
		return
	}
	c, ok := g.columns.ColumnByCell(cell)
	if !ok {
		return
	}
	g.columns.ToggleSortKey(c.Key())
}

func (m *EventManager) handleBodyClick(ev *Event) {
	g := m.grid
	if g.IsOverHeader(ev.X, ev.Y) {
		return
	}
	cell, ok := g.CellData(ev.X, ev.Y)
	hovered, hoverOk := g.HoveredCell()
	if !ok || !hoverOk || !CellsEqual(cell, hovered) {
		return
	}
	if isURL(hovered.Value) {
		g.logger.Debug("open url", "url", hovered.Value)
		g.host.OpenURL(hovered.Value.(string))
	}
}

func (m *EventManager) handleMouseOut(ev *Event) {
	if ev.Related != TargetOutside {
		return
	}
	g := m.grid
	m.hover.Cancel()
	g.hovered, g.hasHovered = CellData{}, false
	g.HoverChanged.Emit(HoverEvent{})
	if g.focused {
		g.focused = false
		g.logger.Debug("grid blurred")
		g.requestRender(RenderFocus)
	}
	g.host.HideTooltip()
	g.host.SetKeyboardShortcutsEnabled(true)
}

func (m *EventManager) handleDoubleClick(ev *Event) {
	ev.StopPropagation()
	ev.PreventDefault()

	g := m.grid
	if g.IsOverHeader(ev.X, ev.Y) {
		return
	}
	cell, ok := g.CellData(ev.X, ev.Y)
	if !ok || cell.Type == ColumnTypeIndex {
		return
	}

	if g.config.HasDoubleClickAction {
		g.Comm.Emit(CommMessage{Event: CommDoubleClick, Row: cell.Row, Column: cell.Column})
	}
	if g.config.DoubleClickTag != "" {
		g.Comm.Emit(CommMessage{
			Event: CommActionDetails,
			Params: &ActionDetails{
				ActionType: CommDoubleClick,
				Row:        cell.Row,
				Col:        cell.Column,
			},
		})
	}
}

func (m *EventManager) handleKeyDown(ev *Event) {
	g := m.grid
	if !g.focused {
		return
	}
	ev.PreventDefault()
	ev.StopPropagation()

	var column *Column
	if f, ok := g.focus.Cell(); ok {
		column, _ = g.columns.ColumnByPosition(f.Type, f.Column)
	}

	switch ev.Key {
	case KeyRune:
		m.handleHighlighterKey(ev.Rune, column)
		m.handleDigitKey(ev, column)
	case KeyArrowUp:
		g.MoveFocus(DirUp)
	case KeyArrowDown:
		g.MoveFocus(DirDown)
	case KeyArrowLeft:
		g.MoveFocus(DirLeft)
	case KeyArrowRight:
		g.MoveFocus(DirRight)
	}
}

func (m *EventManager) handleHighlighterKey(r rune, column *Column) {
	if column == nil {
		return
	}
	var h HighlighterType
	switch unicode.ToUpper(r) {
	case 'H':
		h = HighlighterHeatmap
	case 'U':
		h = HighlighterUniqueEntries
	case 'B':
		h = HighlighterDataBars
	default:
		return
	}
	m.grid.columns.toggleHighlighter(column, h)
}

// handleDigitKey sets precision from 1-9. Shifted digits arrive as their
// unshifted rune with ModShift set, so the backend decides the mapping.
func (m *EventManager) handleDigitKey(ev *Event, column *Column) {
	if ev.Rune < '1' || ev.Rune > '9' {
		return
	}
	precision := int(ev.Rune - '0')
	if ev.Mods.Has(ModShift) && column != nil {
		m.grid.columns.setColumnPrecision(column, precision)
		return
	}
	m.grid.columns.SetColumnsPrecision(precision)
}

func (m *EventManager) handleWheel(ev *Event) {
	g := m.grid
	if !g.focused {
		return
	}
	ev.PreventDefault()
	g.ScrollBy(-ev.WheelX*g.rowHeight*wheelLines, -ev.WheelY*g.rowHeight*wheelLines)
}
