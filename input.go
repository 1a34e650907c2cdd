package datagrid

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// ButtonMask is the set of mouse buttons held while an event fires.
type ButtonMask uint8

const (
	ButtonPrimary   ButtonMask = 1 << 0
	ButtonSecondary ButtonMask = 1 << 1
	ButtonAuxiliary ButtonMask = 1 << 2
)

// Mask returns the held-buttons bit for b.
func (b MouseButton) Mask() ButtonMask {
	switch b {
	case MouseButtonLeft:
		return ButtonPrimary
	case MouseButtonRight:
		return ButtonSecondary
	case MouseButtonMiddle:
		return ButtonAuxiliary
	default:
		return 0
	}
}

// Key represents a non-character keyboard key. Character keys arrive as
// KeyRune with the character in Event.Rune.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyTab
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyCount
)

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether all of m2 are held.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:       "--",
		KeyRune:       "Rune",
		KeyTab:        "Tab",
		KeyArrowLeft:  "Left",
		KeyArrowRight: "Right",
		KeyArrowUp:    "Up",
		KeyArrowDown:  "Down",
		KeyPageUp:     "PgUp",
		KeyPageDown:   "PgDn",
		KeyHome:       "Home",
		KeyEnd:        "End",
		KeyEnter:      "Enter",
		KeyEscape:     "Esc",
		KeyBackspace:  "Backspace",
		KeyDelete:     "Del",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}
