// Package evdev presents a Linux input device as a PS/2 keyboard controller.
//
// Key events read from /dev/input/event* are translated to the keys of the
// scancode tables, encoded as scancode set 2 make and break codes, and
// queued behind the same non-blocking register interface the fifo source
// uses. The decoder then sees exactly the bytes a PS/2 keyboard would have
// sent for the same keystrokes, which makes it possible to exercise the
// driver with a real keyboard on a development machine.
//
// Keycodes without a set 2 translation (multimedia keys, the keypad digits)
// are skipped. Auto-repeat events re-send the make code.
//
//	src, err := evdev.Open(ctx, "/dev/input/event3")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//	dec := scancode.NewDecoder(src)
package evdev
