// Package sim implements an in-memory register bank for the keyboard HAL.
//
// Bytes pushed into a [Registers] are returned by ReadData in order, and
// DataAvailable reports whether any remain. It is used by tests and by the
// replay source of ps2mon.
//
//	regs := sim.New(0xE0, 0x75) // up arrow pressed
//	dec := scancode.NewDecoder(regs)
package sim

import (
	"io"
	"sync"

	"github.com/ardnew/softps2/pkg"
)

// Registers implements hal.Registers over a byte queue.
// It is safe for concurrent use.
type Registers struct {
	mutex sync.Mutex
	queue []byte
	reads int
	ended bool
}

// New creates a register bank preloaded with data.
func New(data ...byte) *Registers {
	r := &Registers{}
	r.Push(data...)
	return r
}

// Push appends bytes to the queue.
func (r *Registers) Push(data ...byte) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.queue = append(r.queue, data...)
}

// DataAvailable reports whether the queue is non-empty.
func (r *Registers) DataAvailable() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.queue) > 0
}

// ReadData pops the next byte. Reading an empty queue returns 0, as an idle
// data register would, and logs a warning.
func (r *Registers) ReadData() uint32 {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if len(r.queue) == 0 {
		pkg.LogWarn(pkg.ComponentHAL, "sim data register read while empty")
		return 0
	}
	b := r.queue[0]
	r.queue = r.queue[1:]
	r.reads++
	return uint32(b)
}

// Len returns the number of unread bytes.
func (r *Registers) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.queue)
}

// Reads returns the number of bytes consumed so far.
func (r *Registers) Reads() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.reads
}

// End marks the queue as finite. Once every byte has been read, Err
// returns io.EOF.
func (r *Registers) End() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.ended = true
}

// Err returns io.EOF after End once the queue is empty, or nil.
func (r *Registers) Err() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.ended && len(r.queue) == 0 {
		return io.EOF
	}
	return nil
}
