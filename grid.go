package datagrid

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidConfig is returned by Initialize for unusable configuration.
var ErrInvalidConfig = errors.New("datagrid: invalid config")

// Host is the embedding environment. The grid calls it to suppress the
// host's own keyboard shortcuts while focused, to dismiss tooltips and to
// open links.
type Host interface {
	SetKeyboardShortcutsEnabled(enabled bool)
	HideTooltip()
	OpenURL(rawURL string)
}

// NopHost ignores every request.
type NopHost struct{}

func (NopHost) SetKeyboardShortcutsEnabled(bool) {}
func (NopHost) HideTooltip()                     {}
func (NopHost) OpenURL(string)                   {}

// Config is the runtime configuration the host hands to Initialize.
type Config struct {
	// Viewport is the grid's bounding box in the coordinate space events use.
	Viewport Rect

	// HasDoubleClickAction enables the generic double-click notification.
	HasDoubleClickAction bool
	// DoubleClickTag enables the tagged action-detail notification.
	DoubleClickTag string

	// ColumnWidths overrides body column widths by name.
	ColumnWidths map[string]float32
	// HiddenColumns lists body columns hidden at start.
	HiddenColumns []string
}

func (c Config) validate() error {
	if c.Viewport.W < 0 || c.Viewport.H < 0 {
		return fmt.Errorf("viewport %vx%v: %w", c.Viewport.W, c.Viewport.H, ErrInvalidConfig)
	}
	for name, w := range c.ColumnWidths {
		if w < 0 {
			return fmt.Errorf("column %q width %v: %w", name, w, ErrInvalidConfig)
		}
	}
	return nil
}

// HoverEvent is the payload of Grid.HoverChanged. Ok is false when the
// pointer is over nothing.
type HoverEvent struct {
	Cell CellData
	Ok   bool
}

// CommMessage is an action notification sent toward the host's listeners.
type CommMessage struct {
	Event  string
	Row    int
	Column int
	Params *ActionDetails
}

// ActionDetails is the payload of a tagged action notification.
type ActionDetails struct {
	ActionType string
	Row        int
	Col        int
}

// Action notification event names.
const (
	CommDoubleClick   = "DOUBLE_CLICK"
	CommActionDetails = "actiondetails"
)

// RenderReason says why the grid wants to be redrawn.
type RenderReason string

const (
	RenderInitial     RenderReason = "initial"
	RenderSort        RenderReason = "sort"
	RenderFilter      RenderReason = "filter"
	RenderVisibility  RenderReason = "visibility"
	RenderResize      RenderReason = "resize"
	RenderOrder       RenderReason = "order"
	RenderScroll      RenderReason = "scroll"
	RenderHighlighter RenderReason = "highlighter"
	RenderFormat      RenderReason = "format"
	RenderSelection   RenderReason = "selection"
	RenderFocus       RenderReason = "focus"
)

// Grid is one grid instance: geometry, column/row state, selection,
// focus and the event manager that drives them.
type Grid struct {
	id     uuid.UUID
	model  DataModel
	host   Host
	logger *slog.Logger
	now    func() time.Time

	config   Config
	viewport Rect
	scrollX  float32
	scrollY  float32

	rowHeight        float32
	columnWidth      float32
	indexColumnWidth float32
	headerHeight     float32
	hoverInterval    time.Duration
	multiSort        bool

	rowSections       *SectionList
	columnSections    *SectionList
	rowHeaderSections *SectionList

	columns   *ColumnManager
	rows      *RowManager
	selection *Selection
	focus     *CellFocus

	hovered    CellData
	hasHovered bool
	focused    bool

	events   *EventManager
	node     *Dispatcher
	document EventTarget

	// HoverChanged fires when the throttled hover resolves a new position.
	HoverChanged Signal[HoverEvent]
	// Comm carries action notifications such as double clicks.
	Comm Signal[CommMessage]
	// RenderRequested fires after any change that needs a redraw.
	RenderRequested Signal[RenderReason]

	initialized bool
	destroyed   bool
}

// New creates a grid over model. The grid does not listen to input until
// Initialize is called.
func New(model DataModel, opts ...GridOption) *Grid {
	g := &Grid{
		id:               uuid.New(),
		model:            model,
		host:             NopHost{},
		logger:           gridLogger,
		now:              time.Now,
		rowHeight:        DefaultRowHeight,
		columnWidth:      DefaultColumnWidth,
		indexColumnWidth: DefaultIndexColumnWidth,
		headerHeight:     DefaultHeaderHeight,
		hoverInterval:    DefaultHoverThrottle,
		node:             NewDispatcher(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.model == nil {
		g.model = NewTableModel(nil, nil)
	}
	if g.document == nil {
		g.document = NewDispatcher()
	}
	g.rowHeight = max(g.rowHeight, 1)
	g.columnWidth = max(g.columnWidth, 0)
	g.indexColumnWidth = max(g.indexColumnWidth, 0)
	g.headerHeight = max(g.headerHeight, 0)
	if g.hoverInterval < 0 {
		g.hoverInterval = 0
	}
	g.logger = g.logger.With("grid", g.id.String())

	g.selection = NewSelection()
	g.focus = &CellFocus{}
	g.columns = newColumnManager(g)
	g.rows = newRowManager(g)
	g.rowSections = NewUniformSectionList(g.rows.VisibleCount(), g.rowHeight)
	g.rebuildColumnSections(ColumnTypeBody)
	g.rebuildColumnSections(ColumnTypeIndex)
	g.events = newEventManager(g)
	return g
}

// ID returns the grid instance ID.
func (g *Grid) ID() uuid.UUID { return g.id }

// Model returns the data model.
func (g *Grid) Model() DataModel { return g.model }

// Columns returns the column manager.
func (g *Grid) Columns() *ColumnManager { return g.columns }

// Rows returns the row manager.
func (g *Grid) Rows() *RowManager { return g.rows }

// Selection returns the selection state.
func (g *Grid) Selection() *Selection { return g.selection }

// Focus returns the focused-cell state.
func (g *Grid) Focus() *CellFocus { return g.focus }

// Events returns the event manager.
func (g *Grid) Events() *EventManager { return g.events }

// Node returns the element-level target backends dispatch pointer events to.
func (g *Grid) Node() *Dispatcher { return g.node }

// Document returns the document-level target keyboard listeners attach to.
func (g *Grid) Document() EventTarget { return g.document }

// Initialize applies config and attaches input listeners. Calling it again
// re-applies config without duplicating listeners.
func (g *Grid) Initialize(cfg Config) error {
	if g.destroyed {
		return fmt.Errorf("initialize destroyed grid %s: %w", g.id, ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	g.config = cfg
	g.viewport = cfg.Viewport

	for name, w := range cfg.ColumnWidths {
		g.columns.ResizeColumn(name, w)
	}
	for _, name := range cfg.HiddenColumns {
		g.columns.Hide(name)
	}

	g.events.Attach(g.node, g.document)
	g.initialized = true
	g.logger.Debug("grid initialized",
		"rows", g.rows.VisibleCount(),
		"columns", g.columnSections.Count(),
		"viewport", cfg.Viewport)
	g.requestRender(RenderInitial)
	return nil
}

// Config returns the configuration passed to Initialize.
func (g *Grid) Config() Config { return g.config }

// SetConfig replaces the double-click configuration without re-initializing.
func (g *Grid) SetConfig(hasDoubleClickAction bool, doubleClickTag string) {
	g.config.HasDoubleClickAction = hasDoubleClickAction
	g.config.DoubleClickTag = doubleClickTag
}

// Destroy detaches every listener the grid attached. Safe to call twice.
func (g *Grid) Destroy() {
	if g.destroyed {
		return
	}
	g.events.Detach()
	if g.focused {
		g.focused = false
		g.host.SetKeyboardShortcutsEnabled(true)
	}
	g.HoverChanged.DisconnectAll()
	g.Comm.DisconnectAll()
	g.RenderRequested.DisconnectAll()
	g.destroyed = true
	g.logger.Debug("grid destroyed")
}

// Destroyed reports whether Destroy has run.
func (g *Grid) Destroyed() bool { return g.destroyed }

// Tick drives time-based behavior (hover coalescing). Hosts call it from
// their loop; see NextDeadline.
func (g *Grid) Tick(now time.Time) {
	g.events.Tick(now)
}

// NextDeadline returns when Tick next has work to do.
func (g *Grid) NextDeadline() (time.Time, bool) {
	return g.events.hover.Deadline()
}

// SetViewport moves or resizes the grid's bounding box.
func (g *Grid) SetViewport(r Rect) {
	g.viewport = r
	g.config.Viewport = r
	g.clampScroll()
	g.requestRender(RenderResize)
}

// Viewport returns the grid's bounding box.
func (g *Grid) Viewport() Rect { return g.viewport }

// Focused reports whether the grid has keyboard focus.
func (g *Grid) Focused() bool { return g.focused }

// HoveredCell returns the last resolved hover cell.
func (g *Grid) HoveredCell() (CellData, bool) {
	return g.hovered, g.hasHovered
}

// HeaderHeight returns the column header band height.
func (g *Grid) HeaderHeight() float32 { return g.headerHeight }

// HeaderWidth returns the total width of the row-header columns.
func (g *Grid) HeaderWidth() float32 { return g.rowHeaderSections.TotalSize() }

// RowSections returns the row section list. Re-query after mutations.
func (g *Grid) RowSections() *SectionList { return g.rowSections }

// ColumnSections returns the body column section list.
func (g *Grid) ColumnSections() *SectionList { return g.columnSections }

// RowHeaderSections returns the row-header column section list.
func (g *Grid) RowHeaderSections() *SectionList { return g.rowHeaderSections }

func (g *Grid) sections(typ ColumnType) *SectionList {
	if typ == ColumnTypeIndex {
		return g.rowHeaderSections
	}
	return g.columnSections
}

// Scroll returns the current scroll offsets.
func (g *Grid) Scroll() Vec2 { return Vec2{X: g.scrollX, Y: g.scrollY} }

// MaxScroll returns the largest valid scroll offsets.
func (g *Grid) MaxScroll() Vec2 {
	bodyW := g.viewport.W - g.HeaderWidth()
	bodyH := g.viewport.H - g.headerHeight
	return Vec2{
		X: max(g.columnSections.TotalSize()-bodyW, 0),
		Y: max(g.rowSections.TotalSize()-bodyH, 0),
	}
}

// ScrollTo sets the scroll offsets, clamped to the content.
func (g *Grid) ScrollTo(x, y float32) {
	oldX, oldY := g.scrollX, g.scrollY
	g.scrollX, g.scrollY = x, y
	g.clampScroll()
	if g.scrollX != oldX || g.scrollY != oldY {
		g.requestRender(RenderScroll)
	}
}

// ScrollBy moves the scroll offsets by a pixel delta.
func (g *Grid) ScrollBy(dx, dy float32) {
	g.ScrollTo(g.scrollX+dx, g.scrollY+dy)
}

func (g *Grid) clampScroll() {
	m := g.MaxScroll()
	g.scrollX = clamp(g.scrollX, 0, m.X)
	g.scrollY = clamp(g.scrollY, 0, m.Y)
}

// ScrollToCell adjusts scroll so the given visible cell is in view.
func (g *Grid) ScrollToCell(row, column int, typ ColumnType) {
	x, y := g.scrollX, g.scrollY
	bodyH := g.viewport.H - g.headerHeight
	if row >= 0 && row < g.rowSections.Count() && bodyH > 0 {
		y = scrollToSection(g.rowSections, row, y, bodyH)
	}
	bodyW := g.viewport.W - g.HeaderWidth()
	if typ == ColumnTypeBody && column >= 0 && column < g.columnSections.Count() && bodyW > 0 {
		x = scrollToSection(g.columnSections, column, x, bodyW)
	}
	g.ScrollTo(x, y)
}

// scrollToSection returns the scroll offset needed to make section i visible.
// If it is already visible, returns the current scroll unchanged.
func scrollToSection(s *SectionList, i int, current, extent float32) float32 {
	top := s.Offset(i)
	bottom := top + s.Size(i)
	if top < current {
		return top
	}
	if bottom > current+extent {
		return bottom - extent
	}
	return current
}

// ColumnOffset returns the leading edge of visible column position i.
func (g *Grid) ColumnOffset(i int, typ ColumnType) float32 {
	return g.sections(typ).Offset(i)
}

// RowOffset returns the top edge of visible row i, excluding the header.
func (g *Grid) RowOffset(i int) float32 {
	return g.rowSections.Offset(i)
}

// ResizeRow changes the height of visible row i.
func (g *Grid) ResizeRow(i int, height float32) {
	if i < 0 || i >= g.rowSections.Count() {
		return
	}
	g.rowSections.Resize(i, height)
	g.clampScroll()
	g.requestRender(RenderResize)
}

// Render returns the visible window of the grid for the host to draw.
func (g *Grid) Render() Frame {
	return g.frame()
}

func (g *Grid) requestRender(reason RenderReason) {
	if gridVerbose() {
		g.logger.Debug("render requested", "reason", string(reason))
	}
	g.RenderRequested.Emit(reason)
}

// rebuildColumnSections recreates a column section list from the visible
// columns in position order.
func (g *Grid) rebuildColumnSections(typ ColumnType) {
	visible := g.columns.visibleColumns(typ)
	sizes := make([]float32, len(visible))
	for i, c := range visible {
		sizes[i] = c.width
	}
	if typ == ColumnTypeIndex {
		if g.rowHeaderSections == nil {
			g.rowHeaderSections = NewSectionList()
		}
		g.rowHeaderSections.Reset(sizes)
		return
	}
	if g.columnSections == nil {
		g.columnSections = NewSectionList()
	}
	g.columnSections.Reset(sizes)
}

// reorderRowSections rebuilds the row sections for the current visible
// order. Heights follow their data rows: prev is the order the current
// sections were laid out for, and rows that were not in it get the default
// height.
func (g *Grid) reorderRowSections(prev []int) {
	heights := make(map[int]float32, len(prev))
	for i, row := range prev {
		if i < g.rowSections.Count() {
			heights[row] = g.rowSections.Size(i)
		}
	}
	order := g.rows.order
	sizes := make([]float32, len(order))
	for i, row := range order {
		if h, ok := heights[row]; ok {
			sizes[i] = h
		} else {
			sizes[i] = g.rowHeight
		}
	}
	g.rowSections.Reset(sizes)
}

// afterStructureChange restores invariants that depend on which rows and
// columns are visible, then asks for a redraw.
func (g *Grid) afterStructureChange(reason RenderReason) {
	g.pruneSelection()
	g.focus.clampTo(g)
	g.clampScroll()
	if g.hasHovered {
		g.hovered, g.hasHovered = CellData{}, false
		g.HoverChanged.Emit(HoverEvent{})
	}
	g.requestRender(reason)
}
