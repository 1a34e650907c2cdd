package datagrid

import "time"

// EventKind is the closed set of raw input events the grid handles.
type EventKind int

const (
	EventMouseMove EventKind = iota
	EventMouseDown
	EventMouseUp
	EventMouseOut
	EventDoubleClick
	EventKeyDown
	EventWheel
	eventKindCount
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventMouseMove:
		return "mousemove"
	case EventMouseDown:
		return "mousedown"
	case EventMouseUp:
		return "mouseup"
	case EventMouseOut:
		return "mouseout"
	case EventDoubleClick:
		return "dblclick"
	case EventKeyDown:
		return "keydown"
	case EventWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// Target says which element an event was delivered to.
type Target int

const (
	// TargetCanvas is the grid's drawing surface.
	TargetCanvas Target = iota
	// TargetOverlay is an element inside the grid that is not the canvas,
	// such as a scrollbar, a header menu button or a filter input.
	TargetOverlay
	// TargetOutside is anything outside the grid.
	TargetOutside
)

// Event is a raw pointer or keyboard event in viewport coordinates.
type Event struct {
	Kind EventKind
	Time time.Time // Zero means "now" according to the grid clock

	// Pointer
	X, Y    float32
	Button  MouseButton // Button that changed (down/up/dblclick)
	Buttons ButtonMask  // Buttons held after the event
	Target  Target
	Related Target // For EventMouseOut: where the pointer went

	// Keyboard
	Key  Key
	Rune rune
	Mods Modifier

	// Wheel, in lines; positive Y scrolls up.
	WheelX, WheelY float32

	defaultPrevented bool
	stopped          bool
}

// Pos returns the pointer position.
func (e *Event) Pos() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// PreventDefault marks the event as consumed so the host skips its own handling.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a handler consumed the event.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops delivery to later listeners.
func (e *Event) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether delivery was stopped.
func (e *Event) PropagationStopped() bool { return e.stopped }

// MouseMove builds a pointer-move event.
func MouseMove(x, y float32, held ButtonMask) *Event {
	return &Event{Kind: EventMouseMove, X: x, Y: y, Buttons: held}
}

// MouseDown builds a button-press event on the canvas.
func MouseDown(x, y float32, b MouseButton) *Event {
	return &Event{Kind: EventMouseDown, X: x, Y: y, Button: b, Buttons: b.Mask()}
}

// MouseUp builds a button-release event on the canvas with no buttons held.
func MouseUp(x, y float32, b MouseButton) *Event {
	return &Event{Kind: EventMouseUp, X: x, Y: y, Button: b}
}

// DoubleClick builds a double-click event.
func DoubleClick(x, y float32) *Event {
	return &Event{Kind: EventDoubleClick, X: x, Y: y, Button: MouseButtonLeft}
}

// MouseOut builds a pointer-leave event toward the given target.
func MouseOut(x, y float32, related Target) *Event {
	return &Event{Kind: EventMouseOut, X: x, Y: y, Related: related}
}

// KeyDown builds a key-press event. Use KeyRune with r for characters.
func KeyDown(k Key, r rune, mods Modifier) *Event {
	return &Event{Kind: EventKeyDown, Key: k, Rune: r, Mods: mods}
}

// Wheel builds a wheel event at the pointer position.
func Wheel(x, y, dx, dy float32) *Event {
	return &Event{Kind: EventWheel, X: x, Y: y, WheelX: dx, WheelY: dy}
}
