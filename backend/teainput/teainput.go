// Package teainput adapts Bubble Tea messages to datagrid events, for
// grids embedded in a Bubble Tea program. Geometry is in terminal cells.
package teainput

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/datagrid"
)

// DefaultDoubleClickTime is the longest gap between two presses that still
// counts as a double click.
const DefaultDoubleClickTime = 400 * time.Millisecond

const shiftedDigits = "!@#$%^&*("

// Sink receives translated events. *datagrid.Dispatcher implements it.
type Sink interface {
	Dispatch(ev *datagrid.Event) bool
}

// Translator turns tea.MouseMsg and tea.KeyMsg into grid events. Pointer
// events go to node, keys to document.
type Translator struct {
	node     Sink
	document Sink
	bounds   datagrid.Rect
	now      func() time.Time

	held      datagrid.ButtonMask
	inside    bool
	lastPress time.Time
	lastX     int
	lastY     int
}

// New creates a translator for a grid occupying bounds.
func New(node, document Sink, bounds datagrid.Rect) *Translator {
	return &Translator{node: node, document: document, bounds: bounds, now: time.Now}
}

// SetBounds updates the grid's rectangle, e.g. on tea.WindowSizeMsg.
func (t *Translator) SetBounds(r datagrid.Rect) { t.bounds = r }

// SetClock replaces the time source used to stamp events.
func (t *Translator) SetClock(now func() time.Time) {
	if now != nil {
		t.now = now
	}
}

// Update translates msg. Returns true if a grid handler consumed it.
// Other message types are ignored.
func (t *Translator) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return t.mouse(msg)
	case tea.KeyMsg:
		return t.key(msg)
	}
	return false
}

func (t *Translator) mouse(msg tea.MouseMsg) bool {
	// Cells are addressed by their centers so the first body line is not
	// read as part of the inclusive header band.
	x, y := float32(msg.X)+0.5, float32(msg.Y)+0.5
	now := t.now()
	mods := teaMods(msg.Shift, msg.Alt, msg.Ctrl)

	if !t.bounds.Contains(datagrid.Vec2{X: x, Y: y}) {
		if msg.Action == tea.MouseActionRelease {
			t.held = 0
		}
		if t.inside {
			t.inside = false
			return t.send(t.node, datagrid.MouseOut(x, y, datagrid.TargetOutside), now)
		}
		return false
	}
	t.inside = true

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return t.send(t.node, datagrid.Wheel(x, y, 0, 1), now)
	case tea.MouseButtonWheelDown:
		return t.send(t.node, datagrid.Wheel(x, y, 0, -1), now)
	case tea.MouseButtonWheelLeft:
		return t.send(t.node, datagrid.Wheel(x, y, 1, 0), now)
	case tea.MouseButtonWheelRight:
		return t.send(t.node, datagrid.Wheel(x, y, -1, 0), now)
	}

	b, known := teaButton(msg.Button)
	switch msg.Action {
	case tea.MouseActionPress:
		if !known {
			return false
		}
		t.held |= b.Mask()
		ev := datagrid.MouseDown(x, y, b)
		ev.Buttons = t.held
		ev.Mods = mods
		consumed := t.send(t.node, ev, now)
		if b == datagrid.MouseButtonLeft && t.isDoubleClick(msg.X, msg.Y, now) {
			consumed = t.send(t.node, datagrid.DoubleClick(x, y), now) || consumed
		}
		return consumed
	case tea.MouseActionRelease:
		// Some terminals report releases without the button.
		if !known {
			b = datagrid.MouseButtonLeft
		}
		t.held &^= b.Mask()
		ev := datagrid.MouseUp(x, y, b)
		ev.Buttons = t.held
		ev.Mods = mods
		return t.send(t.node, ev, now)
	case tea.MouseActionMotion:
		return t.send(t.node, datagrid.MouseMove(x, y, t.held), now)
	}
	return false
}

func (t *Translator) isDoubleClick(x, y int, now time.Time) bool {
	if !t.lastPress.IsZero() && now.Sub(t.lastPress) <= DefaultDoubleClickTime && x == t.lastX && y == t.lastY {
		t.lastPress = time.Time{}
		return true
	}
	t.lastPress, t.lastX, t.lastY = now, x, y
	return false
}

func (t *Translator) key(msg tea.KeyMsg) bool {
	var mods datagrid.Modifier
	if msg.Alt {
		mods |= datagrid.ModAlt
	}
	var ev *datagrid.Event
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return false
		}
		r := msg.Runes[0]
		if i := strings.IndexRune(shiftedDigits, r); i >= 0 {
			r = '1' + rune(i)
			mods |= datagrid.ModShift
		}
		ev = datagrid.KeyDown(datagrid.KeyRune, r, mods)
	case tea.KeyUp:
		ev = datagrid.KeyDown(datagrid.KeyArrowUp, 0, mods)
	case tea.KeyDown:
		ev = datagrid.KeyDown(datagrid.KeyArrowDown, 0, mods)
	case tea.KeyLeft:
		ev = datagrid.KeyDown(datagrid.KeyArrowLeft, 0, mods)
	case tea.KeyRight:
		ev = datagrid.KeyDown(datagrid.KeyArrowRight, 0, mods)
	case tea.KeyPgUp:
		ev = datagrid.KeyDown(datagrid.KeyPageUp, 0, mods)
	case tea.KeyPgDown:
		ev = datagrid.KeyDown(datagrid.KeyPageDown, 0, mods)
	case tea.KeyHome:
		ev = datagrid.KeyDown(datagrid.KeyHome, 0, mods)
	case tea.KeyEnd:
		ev = datagrid.KeyDown(datagrid.KeyEnd, 0, mods)
	case tea.KeyTab:
		ev = datagrid.KeyDown(datagrid.KeyTab, 0, mods)
	case tea.KeyEnter:
		ev = datagrid.KeyDown(datagrid.KeyEnter, 0, mods)
	case tea.KeyEsc:
		ev = datagrid.KeyDown(datagrid.KeyEscape, 0, mods)
	case tea.KeyBackspace:
		ev = datagrid.KeyDown(datagrid.KeyBackspace, 0, mods)
	case tea.KeyDelete:
		ev = datagrid.KeyDown(datagrid.KeyDelete, 0, mods)
	default:
		return false
	}
	return t.send(t.document, ev, t.now())
}

func (t *Translator) send(s Sink, ev *datagrid.Event, now time.Time) bool {
	if s == nil {
		return false
	}
	ev.Time = now
	return s.Dispatch(ev)
}

func teaButton(b tea.MouseButton) (datagrid.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return datagrid.MouseButtonLeft, true
	case tea.MouseButtonRight:
		return datagrid.MouseButtonRight, true
	case tea.MouseButtonMiddle:
		return datagrid.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

func teaMods(shift, alt, ctrl bool) datagrid.Modifier {
	var m datagrid.Modifier
	if shift {
		m |= datagrid.ModShift
	}
	if alt {
		m |= datagrid.ModAlt
	}
	if ctrl {
		m |= datagrid.ModCtrl
	}
	return m
}
