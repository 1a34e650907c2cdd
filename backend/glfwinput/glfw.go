// Package glfwinput feeds GLFW window input to a datagrid as events.
package glfwinput

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
)

// DefaultDoubleClickTime is the longest gap between two presses that still
// counts as a double click. GLFW reports only single presses.
const DefaultDoubleClickTime = 400 * time.Millisecond

// doubleClickSlop is how far the pointer may move between the two presses.
const doubleClickSlop = 4

// Sink receives translated events. *datagrid.Dispatcher implements it.
type Sink interface {
	Dispatch(ev *datagrid.Event) bool
}

// Adapter translates GLFW callbacks into datagrid events. Pointer events go
// to node; keyboard events go to document.
type Adapter struct {
	node     Sink
	document Sink
	now      func() time.Time

	// bounds is the grid's rectangle in window coordinates. Without bounds
	// the grid fills the window.
	bounds    datagrid.Rect
	hasBounds bool
	inside    bool

	x, y float32
	held datagrid.ButtonMask
	mods datagrid.Modifier

	doubleClickTime time.Duration
	lastPress       time.Time
	lastPressPos    datagrid.Vec2
}

// New creates an adapter.
func New(node, document Sink) *Adapter {
	return &Adapter{
		node:            node,
		document:        document,
		now:             time.Now,
		doubleClickTime: DefaultDoubleClickTime,
	}
}

// SetClock replaces the time source used to stamp events.
func (a *Adapter) SetClock(now func() time.Time) {
	if now != nil {
		a.now = now
	}
}

// SetBounds limits pointer input to the grid's rectangle within the window.
// Leaving it sends MouseOut, as leaving the window does.
func (a *Adapter) SetBounds(r datagrid.Rect) {
	a.bounds, a.hasBounds = r, true
}

func (a *Adapter) contains(x, y float32) bool {
	return !a.hasBounds || a.bounds.Contains(datagrid.Vec2{X: x, Y: y})
}

// Install registers the adapter's callbacks on a window.
func (a *Adapter) Install(window *glfw.Window) {
	window.SetKeyCallback(a.KeyCallback)
	window.SetMouseButtonCallback(a.MouseButtonCallback)
	window.SetScrollCallback(a.ScrollCallback)
	window.SetCursorPosCallback(a.CursorPosCallback)
	window.SetCursorEnterCallback(a.CursorEnterCallback)
}

// CursorPosCallback implements glfw.CursorPosCallback.
func (a *Adapter) CursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.x, a.y = float32(xpos), float32(ypos)
	if !a.contains(a.x, a.y) {
		a.leave()
		return
	}
	a.inside = true
	a.send(a.node, datagrid.MouseMove(a.x, a.y, a.held))
}

// CursorEnterCallback implements glfw.CursorEnterCallback.
func (a *Adapter) CursorEnterCallback(_ *glfw.Window, entered bool) {
	if entered {
		return
	}
	a.leave()
}

func (a *Adapter) leave() {
	if !a.inside {
		return
	}
	a.inside = false
	a.send(a.node, datagrid.MouseOut(a.x, a.y, datagrid.TargetOutside))
}

// MouseButtonCallback implements glfw.MouseButtonCallback.
func (a *Adapter) MouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok || a.node == nil {
		return
	}
	a.mods = glfwMods(mods)
	if !a.contains(a.x, a.y) {
		if action == glfw.Release {
			a.held &^= b.Mask()
		}
		return
	}

	switch action {
	case glfw.Press:
		a.held |= b.Mask()
		ev := datagrid.MouseDown(a.x, a.y, b)
		ev.Buttons = a.held
		ev.Mods = a.mods
		now := a.now()
		ev.Time = now
		a.node.Dispatch(ev)
		if b == datagrid.MouseButtonLeft {
			a.trackPress(now)
		}
	case glfw.Release:
		a.held &^= b.Mask()
		ev := datagrid.MouseUp(a.x, a.y, b)
		ev.Buttons = a.held
		ev.Mods = a.mods
		a.send(a.node, ev)
	}
}

// trackPress emits a double click when two left presses land close together
// in space and time.
func (a *Adapter) trackPress(now time.Time) {
	pos := datagrid.Vec2{X: a.x, Y: a.y}
	d := pos.Sub(a.lastPressPos)
	if !a.lastPress.IsZero() && now.Sub(a.lastPress) <= a.doubleClickTime &&
		abs(d.X) <= doubleClickSlop && abs(d.Y) <= doubleClickSlop {
		a.lastPress = time.Time{}
		ev := datagrid.DoubleClick(a.x, a.y)
		ev.Time = now
		a.node.Dispatch(ev)
		return
	}
	a.lastPress = now
	a.lastPressPos = pos
}

// ScrollCallback implements glfw.ScrollCallback.
func (a *Adapter) ScrollCallback(_ *glfw.Window, xoff, yoff float64) {
	if !a.contains(a.x, a.y) {
		return
	}
	a.send(a.node, datagrid.Wheel(a.x, a.y, float32(xoff), float32(yoff)))
}

// KeyCallback implements glfw.KeyCallback. Letters and digits arrive as
// KeyRune with the unshifted character and the held modifiers.
func (a *Adapter) KeyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	a.mods = glfwMods(mods)
	if action == glfw.Release {
		return
	}
	k, r := glfwKey(key)
	if k == datagrid.KeyNone {
		return
	}
	a.send(a.document, datagrid.KeyDown(k, r, a.mods))
}

func (a *Adapter) send(s Sink, ev *datagrid.Event) {
	if s == nil {
		return
	}
	ev.Time = a.now()
	s.Dispatch(ev)
}

func glfwKey(key glfw.Key) (datagrid.Key, rune) {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return datagrid.KeyRune, 'a' + rune(key-glfw.KeyA)
	case key >= glfw.Key0 && key <= glfw.Key9:
		return datagrid.KeyRune, '0' + rune(key-glfw.Key0)
	}
	switch key {
	case glfw.KeyTab:
		return datagrid.KeyTab, 0
	case glfw.KeyLeft:
		return datagrid.KeyArrowLeft, 0
	case glfw.KeyRight:
		return datagrid.KeyArrowRight, 0
	case glfw.KeyUp:
		return datagrid.KeyArrowUp, 0
	case glfw.KeyDown:
		return datagrid.KeyArrowDown, 0
	case glfw.KeyPageUp:
		return datagrid.KeyPageUp, 0
	case glfw.KeyPageDown:
		return datagrid.KeyPageDown, 0
	case glfw.KeyHome:
		return datagrid.KeyHome, 0
	case glfw.KeyEnd:
		return datagrid.KeyEnd, 0
	case glfw.KeyEnter:
		return datagrid.KeyEnter, 0
	case glfw.KeyEscape:
		return datagrid.KeyEscape, 0
	case glfw.KeyBackspace:
		return datagrid.KeyBackspace, 0
	case glfw.KeyDelete:
		return datagrid.KeyDelete, 0
	default:
		return datagrid.KeyNone, 0
	}
}

func glfwMouseButton(button glfw.MouseButton) (datagrid.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return datagrid.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return datagrid.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return datagrid.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

func glfwMods(mods glfw.ModifierKey) datagrid.Modifier {
	var m datagrid.Modifier
	if mods&glfw.ModShift != 0 {
		m |= datagrid.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= datagrid.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= datagrid.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= datagrid.ModSuper
	}
	return m
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
