// Package scancode decodes PS/2 keyboard scancode set 2 into key events.
//
// Set 2 sends one byte per key transition, optionally preceded by two
// prefix bytes:
//
//   - 0xE0 selects the extended table (arrows, right-side modifiers, the
//     navigation cluster)
//   - 0xF0 marks the following code as a key release
//
// A [Decoder] tracks those prefixes across polls, looks the completed code up
// in the normal or extended [Table], and returns an [Event] carrying the
// translated [Key] and a pressed flag.
//
// # Polling
//
// The decoder reads from a [github.com/ardnew/softps2/hal.Registers]
// implementation and never blocks:
//
//	dec := scancode.NewDecoder(regs)
//	for {
//	    ev, ok := dec.Poll()
//	    if !ok {
//	        break // nothing pending; prefixes are kept for the next poll
//	    }
//	    fmt.Println(ev.Key(), ev.Pressed())
//	}
//
// Byte streams that are not register pairs can drive the state machine
// directly with [Decoder.Feed].
//
// # Keys
//
// Printable keys translate to their unshifted ASCII character. Backspace,
// tab, enter and escape use their ASCII control codes. Everything else uses
// a named constant such as [KeyF1] or [KeyUpArrow]. Scancodes without a
// translation produce [KeyNone]; see [WithUnmapped].
//
// Modifier state is not tracked: shift produces its own events and never
// changes the key reported for a letter.
//
// # Encoding
//
// [Encode] and [EncodeText] produce the bytes a keyboard would send, which is
// how the simulated register sources are fed.
package scancode
