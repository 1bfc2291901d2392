package scancode

import "fmt"

// Key is a normalized key code: ASCII for printable keys and the common
// control characters, or one of the named constants at 0x80 and above.
type Key uint8

// KeyNone marks a scancode with no translation.
const KeyNone Key = 0

// ASCII control keys.
const (
	KeyBackspace Key = 0x08
	KeyTab       Key = '\t'
	KeyEnter     Key = '\n'
	KeyEscape    Key = 0x1B
	KeySpace     Key = ' '
)

// Named keys without an ASCII representation.
const (
	KeyF1 Key = 0x80 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyRightArrow
	KeyLeftArrow
	KeyUpArrow
	KeyDownArrow
	KeyLeftShift
	KeyRightShift
	KeyLeftAlt
	KeyRightAlt
	KeyLeftCtrl
	KeyRightCtrl
	KeyCapsLock
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
)

var keyNames = map[Key]string{
	KeyNone:       "none",
	KeyBackspace:  "backspace",
	KeyTab:        "tab",
	KeyEnter:      "enter",
	KeyEscape:     "escape",
	KeySpace:      "space",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
	KeyF4:         "F4",
	KeyF5:         "F5",
	KeyF6:         "F6",
	KeyF7:         "F7",
	KeyF8:         "F8",
	KeyF9:         "F9",
	KeyF10:        "F10",
	KeyF11:        "F11",
	KeyF12:        "F12",
	KeyRightArrow: "right",
	KeyLeftArrow:  "left",
	KeyUpArrow:    "up",
	KeyDownArrow:  "down",
	KeyLeftShift:  "lshift",
	KeyRightShift: "rshift",
	KeyLeftAlt:    "lalt",
	KeyRightAlt:   "ralt",
	KeyLeftCtrl:   "lctrl",
	KeyRightCtrl:  "rctrl",
	KeyCapsLock:   "capslock",
	KeyHome:       "home",
	KeyEnd:        "end",
	KeyPageUp:     "pageup",
	KeyPageDown:   "pagedown",
	KeyInsert:     "insert",
	KeyDelete:     "delete",
}

// String returns the character for printable keys and a lowercase name for
// everything else.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k.IsPrintable() {
		return string(rune(k))
	}
	return fmt.Sprintf("key(0x%02X)", uint8(k))
}

// IsASCII reports whether k is an ASCII character code.
func (k Key) IsASCII() bool {
	return k != KeyNone && k < 0x80
}

// IsPrintable reports whether k is a printable ASCII character, space
// included.
func (k Key) IsPrintable() bool {
	return k >= 0x20 && k < 0x7F
}

// IsModifier reports whether k is a shift, alt or ctrl key.
func (k Key) IsModifier() bool {
	return k >= KeyLeftShift && k <= KeyRightCtrl
}
