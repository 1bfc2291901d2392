package scancode

// Table maps a raw scancode byte to a [Key]. A 256-entry array indexed by
// byte cannot be read out of range.
type Table [256]Key

// Prefix bytes of scancode set 2.
const (
	PrefixExtended byte = 0xE0 // Next code selects the extended table
	PrefixRelease  byte = 0xF0 // Next code is a key release
)

// PS/2 scancodes, set 2, US layout.
var normalTable = Table{
	0x01: KeyF9,
	0x03: KeyF5,
	0x04: KeyF3,
	0x05: KeyF1,
	0x06: KeyF2,
	0x07: KeyF12,
	0x09: KeyF10,
	0x0A: KeyF8,
	0x0B: KeyF6,
	0x0C: KeyF4,
	0x0D: KeyTab,
	0x0E: '`',
	0x11: KeyLeftAlt,
	0x12: KeyLeftShift,
	0x14: KeyLeftCtrl,
	0x15: 'q',
	0x16: '1',
	0x1A: 'z',
	0x1B: 's',
	0x1C: 'a',
	0x1D: 'w',
	0x1E: '2',
	0x21: 'c',
	0x22: 'x',
	0x23: 'd',
	0x24: 'e',
	0x25: '4',
	0x26: '3',
	0x29: KeySpace,
	0x2A: 'v',
	0x2B: 'f',
	0x2C: 't',
	0x2D: 'r',
	0x2E: '5',
	0x31: 'n',
	0x32: 'b',
	0x33: 'h',
	0x34: 'g',
	0x35: 'y',
	0x36: '6',
	0x3A: 'm',
	0x3B: 'j',
	0x3C: 'u',
	0x3D: '7',
	0x3E: '8',
	0x41: ',',
	0x42: 'k',
	0x43: 'i',
	0x44: 'o',
	0x45: '0',
	0x46: '9',
	0x49: '.',
	0x4A: '/',
	0x4B: 'l',
	0x4C: ';',
	0x4D: 'p',
	0x4E: '-',
	0x52: '\'',
	0x54: '[',
	0x55: '=',
	0x58: KeyCapsLock,
	0x59: KeyRightShift,
	0x5A: KeyEnter,
	0x5B: ']',
	0x5D: '\\',
	0x66: KeyBackspace,
	0x76: KeyEscape,
	0x78: KeyF11,
	0x83: KeyF7,
}

// Codes following an 0xE0 prefix.
var extendedTable = Table{
	0x11: KeyRightAlt,
	0x14: KeyRightCtrl,
	0x4A: '/',      // keypad
	0x5A: KeyEnter, // keypad
	0x69: KeyEnd,
	0x6B: KeyLeftArrow,
	0x6C: KeyHome,
	0x70: KeyInsert,
	0x71: KeyDelete,
	0x72: KeyDownArrow,
	0x74: KeyRightArrow,
	0x75: KeyUpArrow,
	0x7A: KeyPageDown,
	0x7D: KeyPageUp,
}

// LookupNormal returns the key for an unprefixed scancode.
func LookupNormal(code byte) Key {
	return normalTable[code]
}

// LookupExtended returns the key for a scancode that followed 0xE0.
func LookupExtended(code byte) Key {
	return extendedTable[code]
}

// Lookup returns the key for code in the normal or extended table.
func Lookup(code byte, extended bool) Key {
	if extended {
		return extendedTable[code]
	}
	return normalTable[code]
}
