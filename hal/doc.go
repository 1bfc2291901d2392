// Package hal defines the Hardware Abstraction Layer interface for polled
// PS/2 keyboard controllers.
//
// The HAL provides a platform-agnostic interface between the scancode
// decoder and the register pair exposed by the keyboard controller: a status
// register that is non-zero while a byte is pending, and a data register that
// yields that byte.
//
// # Design Principles
//
// The HAL is designed to be:
//
//   - Minimal: two operations, check status and read data
//   - Non-blocking: neither operation may wait for input
//   - Injectable: the decoder never touches memory-mapped addresses directly
//
// The decoder implements all scancode set 2 protocol logic, leaving the HAL
// to handle only register access.
//
// # Implementations
//
// Several implementations ship with the module:
//
//   - [github.com/ardnew/softps2/hal/sim]: in-memory byte queue
//   - [github.com/ardnew/softps2/hal/fifo]: named pipe or any io.Reader
//   - [github.com/ardnew/softps2/hal/mmio]: memory-mapped device file (Linux)
//   - [github.com/ardnew/softps2/hal/evdev]: Linux input device re-encoded as set 2
//
// # Implementing a HAL
//
// A HAL for a bare-metal target wraps the two registers at [DefaultBase] +
// [StatusOffset] and [DefaultBase] + [DataOffset]:
//
//	type Controller struct {
//	    status, data *volatile.Register32
//	}
//
//	func (c *Controller) DataAvailable() bool { return c.status.Get() != 0 }
//	func (c *Controller) ReadData() uint32    { return c.data.Get() }
//
// Small adapters can use [Func] instead of declaring a type.
package hal
