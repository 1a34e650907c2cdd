package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/datagrid"
)

type recorder struct {
	events []*datagrid.Event
}

func (r *recorder) Dispatch(ev *datagrid.Event) bool {
	r.events = append(r.events, ev)
	return true
}

func (r *recorder) kinds() []datagrid.EventKind {
	out := make([]datagrid.EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

func newInput() (*Input, *recorder, *recorder) {
	node, doc := &recorder{}, &recorder{}
	return NewInput(node, doc, datagrid.Rect{X: 0, Y: 0, W: 40, H: 10}), node, doc
}

func TestInput_PressAndRelease(t *testing.T) {
	in, node, doc := newInput()

	in.HandleEvent(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModShift))
	in.HandleEvent(tcell.NewEventMouse(5, 3, tcell.ButtonNone, tcell.ModNone))

	want := []datagrid.EventKind{datagrid.EventMouseDown, datagrid.EventMouseUp}
	if diff := cmp.Diff(want, node.kinds()); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
	down, up := node.events[0], node.events[1]
	if down.X != 5.5 || down.Y != 3.5 || down.Button != datagrid.MouseButtonLeft || down.Buttons != datagrid.ButtonPrimary {
		t.Errorf("down = %+v", down)
	}
	if !down.Mods.Has(datagrid.ModShift) {
		t.Error("shift not carried on the press")
	}
	if down.Time.IsZero() {
		t.Error("events should carry the terminal's timestamp")
	}
	if up.Button != datagrid.MouseButtonLeft || up.Buttons != 0 {
		t.Errorf("up = %+v", up)
	}
	if len(doc.events) != 0 {
		t.Error("pointer events went to the document")
	}
}

func TestInput_DoubleClick(t *testing.T) {
	in, node, _ := newInput()

	for range 2 {
		in.HandleEvent(tcell.NewEventMouse(7, 2, tcell.Button1, tcell.ModNone))
		in.HandleEvent(tcell.NewEventMouse(7, 2, tcell.ButtonNone, tcell.ModNone))
	}

	want := []datagrid.EventKind{
		datagrid.EventMouseDown, datagrid.EventMouseUp,
		datagrid.EventMouseDown, datagrid.EventDoubleClick, datagrid.EventMouseUp,
	}
	if diff := cmp.Diff(want, node.kinds()); diff != "" {
		t.Errorf("kinds (-want +got):\n%s", diff)
	}
}

func TestInput_PressesOnDifferentCellsAreNotADoubleClick(t *testing.T) {
	in, node, _ := newInput()

	in.HandleEvent(tcell.NewEventMouse(7, 2, tcell.Button1, tcell.ModNone))
	in.HandleEvent(tcell.NewEventMouse(7, 2, tcell.ButtonNone, tcell.ModNone))
	in.HandleEvent(tcell.NewEventMouse(8, 2, tcell.Button1, tcell.ModNone))

	for _, k := range node.kinds() {
		if k == datagrid.EventDoubleClick {
			t.Fatal("presses on different cells produced a double click")
		}
	}
}

func TestInput_MoveAndLeave(t *testing.T) {
	in, node, _ := newInput()

	in.HandleEvent(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	in.HandleEvent(tcell.NewEventMouse(50, 1, tcell.ButtonNone, tcell.ModNone))
	in.HandleEvent(tcell.NewEventMouse(51, 1, tcell.ButtonNone, tcell.ModNone))

	want := []datagrid.EventKind{datagrid.EventMouseMove, datagrid.EventMouseOut}
	if diff := cmp.Diff(want, node.kinds()); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
	if got := node.events[1].Related; got != datagrid.TargetOutside {
		t.Errorf("Related = %v, want outside", got)
	}
}

func TestInput_DragCarriesHeldButtons(t *testing.T) {
	in, node, _ := newInput()

	in.HandleEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	in.HandleEvent(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone))

	if diff := cmp.Diff([]datagrid.EventKind{datagrid.EventMouseDown, datagrid.EventMouseMove}, node.kinds()); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
	if got := node.events[1].Buttons; got != datagrid.ButtonPrimary {
		t.Errorf("drag Buttons = %v, want primary", got)
	}
}

func TestInput_Wheel(t *testing.T) {
	in, node, _ := newInput()

	in.HandleEvent(tcell.NewEventMouse(3, 3, tcell.WheelDown, tcell.ModNone))
	in.HandleEvent(tcell.NewEventMouse(3, 3, tcell.WheelLeft, tcell.ModNone))

	if len(node.events) != 2 {
		t.Fatalf("events = %d, want 2", len(node.events))
	}
	if ev := node.events[0]; ev.Kind != datagrid.EventWheel || ev.WheelY != -1 || ev.WheelX != 0 {
		t.Errorf("wheel down = %+v", ev)
	}
	if ev := node.events[1]; ev.WheelX != 1 || ev.WheelY != 0 {
		t.Errorf("wheel left = %+v", ev)
	}
}

func TestInput_Keys(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantKey  datagrid.Key
		wantRune rune
		wantMods datagrid.Modifier
	}{
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), datagrid.KeyRune, 'h', 0},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone), datagrid.KeyRune, '4', 0},
		{"shifted digit", tcell.NewEventKey(tcell.KeyRune, '@', tcell.ModNone), datagrid.KeyRune, '2', datagrid.ModShift},
		{"shifted nine", tcell.NewEventKey(tcell.KeyRune, '(', tcell.ModNone), datagrid.KeyRune, '9', datagrid.ModShift},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), datagrid.KeyArrowUp, 0, 0},
		{"alt arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModAlt), datagrid.KeyArrowLeft, 0, datagrid.ModAlt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, node, doc := newInput()
			if !in.HandleEvent(tt.ev) {
				t.Error("HandleEvent = false, want the document's result")
			}
			if len(node.events) != 0 || len(doc.events) != 1 {
				t.Fatalf("node %d, document %d events; want keys on the document", len(node.events), len(doc.events))
			}
			ev := doc.events[0]
			if ev.Kind != datagrid.EventKeyDown || ev.Key != tt.wantKey || ev.Rune != tt.wantRune || ev.Mods != tt.wantMods {
				t.Errorf("event = %+v", ev)
			}
		})
	}
}

func TestInput_IgnoresUnknownKeys(t *testing.T) {
	in, _, doc := newInput()
	if in.HandleEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)) {
		t.Error("F5 reported consumed")
	}
	if in.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("resize reported consumed")
	}
	if len(doc.events) != 0 {
		t.Errorf("document got %d events", len(doc.events))
	}
}

func TestInput_DrivesGrid(t *testing.T) {
	model := datagrid.NewTableModel([]string{"name"}, [][]any{{"a"}, {"b"}})
	doc := datagrid.NewDispatcher()
	g := datagrid.New(model,
		datagrid.WithDocument(doc),
		datagrid.WithRowHeight(1),
		datagrid.WithHeaderHeight(1),
		datagrid.WithColumnWidth(10),
		datagrid.WithIndexColumnWidth(4),
		datagrid.WithLogger(datagrid.DiscardLogger()))
	if err := g.Initialize(datagrid.Config{Viewport: datagrid.Rect{W: 20, H: 5}}); err != nil {
		t.Fatal(err)
	}
	in := NewInput(g.Node(), doc, g.Viewport())

	// Line 0 is the header; row 0 is the line right below it, and the
	// first body column starts right after the 4-cell index column.
	in.HandleEvent(tcell.NewEventMouse(4, 1, tcell.Button1, tcell.ModNone))
	in.HandleEvent(tcell.NewEventMouse(4, 1, tcell.ButtonNone, tcell.ModNone))
	if !g.Focused() || !g.IsCellSelected(0, 0, datagrid.ColumnTypeBody) {
		t.Fatalf("press did not focus and select row 0: %v", g.Selection().Keys())
	}

	in.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if f, ok := g.Focus().Cell(); !ok || f.Row != 1 {
		t.Errorf("focus = %+v, want row 1", f)
	}

	// A press on the header line sorts on release.
	in.HandleEvent(tcell.NewEventMouse(6, 0, tcell.Button1, tcell.ModNone))
	in.HandleEvent(tcell.NewEventMouse(6, 0, tcell.ButtonNone, tcell.ModNone))
	if c, _ := g.Columns().ColumnByName("name"); c.SortDirection() != datagrid.SortAscending {
		t.Errorf("header click direction = %v, want ascending", c.SortDirection())
	}
}
