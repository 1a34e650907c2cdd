// Package terminal runs a datagrid in a terminal: tcell input becomes
// datagrid events and frames are drawn as styled text cells.
//
// Grid geometry is in terminal cells, so create the grid with a row height
// and header height of 1:
//
//	g := datagrid.New(model,
//	    datagrid.WithRowHeight(1),
//	    datagrid.WithHeaderHeight(1),
//	    datagrid.WithColumnWidth(12),
//	    datagrid.WithIndexColumnWidth(6))
package terminal

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/datagrid"
)

// DefaultDoubleClickTime is the longest gap between two presses that still
// counts as a double click.
const DefaultDoubleClickTime = 400 * time.Millisecond

// shiftedDigits maps the characters a US layout produces for Shift+1..9.
const shiftedDigits = "!@#$%^&*("

// Sink receives translated events. *datagrid.Dispatcher implements it.
type Sink interface {
	Dispatch(ev *datagrid.Event) bool
}

// Input translates tcell events into datagrid events. Pointer events go to
// node, keys to document.
//
// Terminals report neither double clicks nor the pointer leaving a region,
// so Input synthesizes both: two left presses on the same cell within
// DefaultDoubleClickTime, and a pointer-out when the pointer first moves
// outside Bounds.
type Input struct {
	node     Sink
	document Sink
	bounds   datagrid.Rect

	buttons   tcell.ButtonMask
	inside    bool
	lastPress time.Time
	lastX     int
	lastY     int
}

// NewInput creates a translator for a grid occupying bounds.
func NewInput(node, document Sink, bounds datagrid.Rect) *Input {
	return &Input{node: node, document: document, bounds: bounds}
}

// SetBounds updates the grid's screen rectangle, e.g. after a resize.
func (in *Input) SetBounds(r datagrid.Rect) {
	in.bounds = r
}

// HandleEvent translates ev. Returns true if a grid handler consumed it.
func (in *Input) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return in.handleMouse(ev)
	case *tcell.EventKey:
		return in.handleKey(ev)
	}
	return false
}

func (in *Input) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	fx, fy := cellCenter(x, y)
	now := ev.When()
	mods := tcellMods(ev.Modifiers())
	buttons := ev.Buttons()

	if !in.bounds.Contains(datagrid.Vec2{X: fx, Y: fy}) {
		in.buttons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
		if in.inside {
			in.inside = false
			return in.send(in.node, datagrid.MouseOut(fx, fy, datagrid.TargetOutside), now)
		}
		return false
	}
	in.inside = true

	if wx, wy := wheelDelta(buttons); wx != 0 || wy != 0 {
		return in.send(in.node, datagrid.Wheel(fx, fy, wx, wy), now)
	}

	prev := in.buttons
	cur := buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	in.buttons = cur
	held := heldMask(cur)

	consumed := false
	for _, b := range []struct {
		tb tcell.ButtonMask
		db datagrid.MouseButton
	}{
		{tcell.Button1, datagrid.MouseButtonLeft},
		{tcell.Button2, datagrid.MouseButtonRight},
		{tcell.Button3, datagrid.MouseButtonMiddle},
	} {
		switch {
		case cur&b.tb != 0 && prev&b.tb == 0:
			down := datagrid.MouseDown(fx, fy, b.db)
			down.Buttons = held
			down.Mods = mods
			consumed = in.send(in.node, down, now) || consumed
			if b.db == datagrid.MouseButtonLeft && in.isDoubleClick(x, y, now) {
				consumed = in.send(in.node, datagrid.DoubleClick(fx, fy), now) || consumed
			}
		case cur&b.tb == 0 && prev&b.tb != 0:
			up := datagrid.MouseUp(fx, fy, b.db)
			up.Buttons = held
			up.Mods = mods
			consumed = in.send(in.node, up, now) || consumed
		}
	}
	if cur == prev {
		consumed = in.send(in.node, datagrid.MouseMove(fx, fy, held), now) || consumed
	}
	return consumed
}

func (in *Input) isDoubleClick(x, y int, now time.Time) bool {
	if !in.lastPress.IsZero() && now.Sub(in.lastPress) <= DefaultDoubleClickTime && x == in.lastX && y == in.lastY {
		in.lastPress = time.Time{}
		return true
	}
	in.lastPress, in.lastX, in.lastY = now, x, y
	return false
}

func (in *Input) handleKey(ev *tcell.EventKey) bool {
	mods := tcellMods(ev.Modifiers())
	var out *datagrid.Event
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if i := strings.IndexRune(shiftedDigits, r); i >= 0 {
			r = '1' + rune(i)
			mods |= datagrid.ModShift
		}
		out = datagrid.KeyDown(datagrid.KeyRune, r, mods)
	case tcell.KeyUp:
		out = datagrid.KeyDown(datagrid.KeyArrowUp, 0, mods)
	case tcell.KeyDown:
		out = datagrid.KeyDown(datagrid.KeyArrowDown, 0, mods)
	case tcell.KeyLeft:
		out = datagrid.KeyDown(datagrid.KeyArrowLeft, 0, mods)
	case tcell.KeyRight:
		out = datagrid.KeyDown(datagrid.KeyArrowRight, 0, mods)
	case tcell.KeyPgUp:
		out = datagrid.KeyDown(datagrid.KeyPageUp, 0, mods)
	case tcell.KeyPgDn:
		out = datagrid.KeyDown(datagrid.KeyPageDown, 0, mods)
	case tcell.KeyHome:
		out = datagrid.KeyDown(datagrid.KeyHome, 0, mods)
	case tcell.KeyEnd:
		out = datagrid.KeyDown(datagrid.KeyEnd, 0, mods)
	case tcell.KeyTab:
		out = datagrid.KeyDown(datagrid.KeyTab, 0, mods)
	case tcell.KeyEnter:
		out = datagrid.KeyDown(datagrid.KeyEnter, 0, mods)
	case tcell.KeyEscape:
		out = datagrid.KeyDown(datagrid.KeyEscape, 0, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out = datagrid.KeyDown(datagrid.KeyBackspace, 0, mods)
	case tcell.KeyDelete:
		out = datagrid.KeyDown(datagrid.KeyDelete, 0, mods)
	default:
		return false
	}
	return in.send(in.document, out, ev.When())
}

func (in *Input) send(s Sink, ev *datagrid.Event, when time.Time) bool {
	if s == nil {
		return false
	}
	ev.Time = when
	return s.Dispatch(ev)
}

// cellCenter addresses a terminal cell by its center, so a cell on the first
// body line or column never lands on the inclusive header boundary.
func cellCenter(x, y int) (float32, float32) {
	return float32(x) + 0.5, float32(y) + 0.5
}

func heldMask(b tcell.ButtonMask) datagrid.ButtonMask {
	var m datagrid.ButtonMask
	if b&tcell.Button1 != 0 {
		m |= datagrid.ButtonPrimary
	}
	if b&tcell.Button2 != 0 {
		m |= datagrid.ButtonSecondary
	}
	if b&tcell.Button3 != 0 {
		m |= datagrid.ButtonAuxiliary
	}
	return m
}

// wheelDelta converts wheel buttons to line deltas; positive y scrolls up.
func wheelDelta(b tcell.ButtonMask) (x, y float32) {
	if b&tcell.WheelUp != 0 {
		y++
	}
	if b&tcell.WheelDown != 0 {
		y--
	}
	if b&tcell.WheelLeft != 0 {
		x++
	}
	if b&tcell.WheelRight != 0 {
		x--
	}
	return x, y
}

func tcellMods(m tcell.ModMask) datagrid.Modifier {
	var out datagrid.Modifier
	if m&tcell.ModShift != 0 {
		out |= datagrid.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= datagrid.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= datagrid.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= datagrid.ModSuper
	}
	return out
}
