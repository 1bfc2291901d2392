//go:build linux

package evdev

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/ardnew/softps2/pkg"
	"github.com/ardnew/softps2/scancode"
)

// Input event values of EV_KEY.
const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// keycodes maps Linux input keycodes to the keys of the scancode tables.
var keycodes = map[uint16]scancode.Key{
	evdev.KEY_ESC:        scancode.KeyEscape,
	evdev.KEY_1:          '1',
	evdev.KEY_2:          '2',
	evdev.KEY_3:          '3',
	evdev.KEY_4:          '4',
	evdev.KEY_5:          '5',
	evdev.KEY_6:          '6',
	evdev.KEY_7:          '7',
	evdev.KEY_8:          '8',
	evdev.KEY_9:          '9',
	evdev.KEY_0:          '0',
	evdev.KEY_MINUS:      '-',
	evdev.KEY_EQUAL:      '=',
	evdev.KEY_BACKSPACE:  scancode.KeyBackspace,
	evdev.KEY_TAB:        scancode.KeyTab,
	evdev.KEY_Q:          'q',
	evdev.KEY_W:          'w',
	evdev.KEY_E:          'e',
	evdev.KEY_R:          'r',
	evdev.KEY_T:          't',
	evdev.KEY_Y:          'y',
	evdev.KEY_U:          'u',
	evdev.KEY_I:          'i',
	evdev.KEY_O:          'o',
	evdev.KEY_P:          'p',
	evdev.KEY_LEFTBRACE:  '[',
	evdev.KEY_RIGHTBRACE: ']',
	evdev.KEY_ENTER:      scancode.KeyEnter,
	evdev.KEY_LEFTCTRL:   scancode.KeyLeftCtrl,
	evdev.KEY_A:          'a',
	evdev.KEY_S:          's',
	evdev.KEY_D:          'd',
	evdev.KEY_F:          'f',
	evdev.KEY_G:          'g',
	evdev.KEY_H:          'h',
	evdev.KEY_J:          'j',
	evdev.KEY_K:          'k',
	evdev.KEY_L:          'l',
	evdev.KEY_SEMICOLON:  ';',
	evdev.KEY_APOSTROPHE: '\'',
	evdev.KEY_GRAVE:      '`',
	evdev.KEY_LEFTSHIFT:  scancode.KeyLeftShift,
	evdev.KEY_BACKSLASH:  '\\',
	evdev.KEY_Z:          'z',
	evdev.KEY_X:          'x',
	evdev.KEY_C:          'c',
	evdev.KEY_V:          'v',
	evdev.KEY_B:          'b',
	evdev.KEY_N:          'n',
	evdev.KEY_M:          'm',
	evdev.KEY_COMMA:      ',',
	evdev.KEY_DOT:        '.',
	evdev.KEY_SLASH:      '/',
	evdev.KEY_RIGHTSHIFT: scancode.KeyRightShift,
	evdev.KEY_LEFTALT:    scancode.KeyLeftAlt,
	evdev.KEY_SPACE:      scancode.KeySpace,
	evdev.KEY_CAPSLOCK:   scancode.KeyCapsLock,
	evdev.KEY_F1:         scancode.KeyF1,
	evdev.KEY_F2:         scancode.KeyF2,
	evdev.KEY_F3:         scancode.KeyF3,
	evdev.KEY_F4:         scancode.KeyF4,
	evdev.KEY_F5:         scancode.KeyF5,
	evdev.KEY_F6:         scancode.KeyF6,
	evdev.KEY_F7:         scancode.KeyF7,
	evdev.KEY_F8:         scancode.KeyF8,
	evdev.KEY_F9:         scancode.KeyF9,
	evdev.KEY_F10:        scancode.KeyF10,
	evdev.KEY_F11:        scancode.KeyF11,
	evdev.KEY_F12:        scancode.KeyF12,
	evdev.KEY_RIGHTCTRL:  scancode.KeyRightCtrl,
	evdev.KEY_RIGHTALT:   scancode.KeyRightAlt,
	evdev.KEY_HOME:       scancode.KeyHome,
	evdev.KEY_UP:         scancode.KeyUpArrow,
	evdev.KEY_PAGEUP:     scancode.KeyPageUp,
	evdev.KEY_LEFT:       scancode.KeyLeftArrow,
	evdev.KEY_RIGHT:      scancode.KeyRightArrow,
	evdev.KEY_END:        scancode.KeyEnd,
	evdev.KEY_DOWN:       scancode.KeyDownArrow,
	evdev.KEY_PAGEDOWN:   scancode.KeyPageDown,
	evdev.KEY_INSERT:     scancode.KeyInsert,
	evdev.KEY_DELETE:     scancode.KeyDelete,
}

// TranslateKeycode returns the key for a Linux input keycode.
func TranslateKeycode(code uint16) (scancode.Key, bool) {
	k, ok := keycodes[code]
	return k, ok
}

// AppendEvent appends the scancode set 2 bytes for one input event to dst.
// Only EV_KEY events for mapped keycodes produce bytes. An auto-repeat
// re-sends the make code, as a PS/2 keyboard does.
func AppendEvent(dst []byte, typ, code uint16, value int32) []byte {
	if typ != evdev.EV_KEY {
		return dst
	}
	key, ok := TranslateKeycode(code)
	if !ok {
		pkg.LogDebug(pkg.ComponentHAL, "evdev keycode has no set 2 encoding", "code", code)
		return dst
	}

	var pressed bool
	switch value {
	case valuePress, valueRepeat:
		pressed = true
	case valueRelease:
		pressed = false
	default:
		return dst
	}

	out, err := scancode.AppendEncode(dst, key, pressed)
	if err != nil {
		pkg.LogWarn(pkg.ComponentHAL, "evdev key encoding failed", "key", key, "error", err)
		return dst
	}
	return out
}
