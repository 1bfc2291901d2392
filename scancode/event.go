package scancode

// Event is an encoded key transition: the translated [Key] in the low byte
// and [PressedBit] set for key-down.
type Event uint32

// PressedBit marks a key-down event.
const PressedBit Event = 1 << 31

// NoEvent is the code returned by [Decoder.PollCode] when no event is
// pending. Bits 8 to 30 of a real event are always zero, so NoEvent never
// collides with one.
const NoEvent uint32 = 0xFFFFFFFF

// NewEvent encodes a key transition.
func NewEvent(k Key, pressed bool) Event {
	ev := Event(k)
	if pressed {
		ev |= PressedBit
	}
	return ev
}

// Key returns the translated key.
func (e Event) Key() Key {
	return Key(e & 0xFF)
}

// Pressed reports whether the event is a key-down.
func (e Event) Pressed() bool {
	return e&PressedBit != 0
}

// Released reports whether the event is a key-up.
func (e Event) Released() bool {
	return e&PressedBit == 0
}

// Recognized reports whether the scancode had a translation. Unrecognized
// events carry [KeyNone] and are not errors.
func (e Event) Recognized() bool {
	return e.Key() != KeyNone
}

// String returns "<key> down" or "<key> up".
func (e Event) String() string {
	if e.Pressed() {
		return e.Key().String() + " down"
	}
	return e.Key().String() + " up"
}
