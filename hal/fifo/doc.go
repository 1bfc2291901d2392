// Package fifo implements a stream-backed register bank for the keyboard HAL.
//
// Raw scancode set 2 bytes written to a named pipe, stored in a capture file,
// or arriving on any io.Reader are presented to the decoder as if they came
// from the controller's status and data registers. This makes it possible to
// drive the decoder from another process, a serial bridge or a recorded
// session without keyboard hardware.
//
// # Architecture
//
// [New] creates a unique subdirectory under a shared directory:
//
//	/tmp/ps2/                        # Shared directory
//	└── ps2-{uuid}/                  # Source subdirectory (unique per source)
//	    └── data                     # Named pipe: raw scancode bytes
//
// A reader goroutine moves bytes from the stream into a buffer of
// [MaxPending] bytes. DataAvailable reports whether that buffer is non-empty
// and ReadData pops one byte; neither blocks. When the buffer is full the
// goroutine stops reading, so a capture file is replayed without loss.
//
// # End of Stream
//
// Once the stream fails (io.EOF for a finished capture file) and every
// buffered byte has been read, Err returns the stream error. The monitor uses
// this to stop cleanly after a replay.
//
// # Usage
//
//	src := fifo.New("/tmp/ps2")
//	if err := src.Init(ctx); err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	fmt.Println("write scancodes to", src.Path())
//	dec := scancode.NewDecoder(src)
package fifo
