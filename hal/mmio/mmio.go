//go:build linux

package mmio

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/ardnew/softps2/hal"
	"github.com/ardnew/softps2/pkg"
)

// HAL implements hal.Registers over a memory mapping of the controller's
// register block.
type HAL struct {
	file *os.File
	mem  []byte

	// Offsets of the registers within mem
	status uintptr
	data   uintptr

	mutex  sync.RWMutex
	closed bool
}

// Open maps the registers at base+statusOff and base+dataOff from the device
// file at path (for example /dev/mem or a UIO node). Offsets must be
// multiples of [hal.RegisterSize].
func Open(path string, base, statusOff, dataOff uintptr) (*HAL, error) {
	if statusOff%hal.RegisterSize != 0 || dataOff%hal.RegisterSize != 0 || base%hal.RegisterSize != 0 {
		return nil, fmt.Errorf("mmio: misaligned register: %w", pkg.ErrInvalidParameter)
	}

	pageSize := uintptr(os.Getpagesize())
	page := base &^ (pageSize - 1)
	within := base - page

	end := statusOff
	if dataOff > end {
		end = dataOff
	}
	end += within + hal.RegisterSize
	length := (end + pageSize - 1) &^ (pageSize - 1)

	f, err := os.OpenFile(path, os.O_RDONLY|unix.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	mem, err := unix.Mmap(int(f.Fd()), int64(page), int(length), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s at %#x: %w", path, page, err)
	}

	pkg.LogInfo(pkg.ComponentHAL, "mmio source mapped",
		"path", path,
		"base", fmt.Sprintf("%#x", base),
		"length", length)

	return &HAL{
		file:   f,
		mem:    mem,
		status: within + statusOff,
		data:   within + dataOff,
	}, nil
}

// load performs a single 32-bit read of the register at off.
func (h *HAL) load(off uintptr) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(&h.mem[off])))
}

// DataAvailable reads the status register.
func (h *HAL) DataAvailable() bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if h.closed {
		return false
	}
	return h.load(h.status) != 0
}

// ReadData reads the data register.
func (h *HAL) ReadData() uint32 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if h.closed {
		return 0
	}
	return h.load(h.data)
}

// Err returns [pkg.ErrClosed] after Close.
func (h *HAL) Err() error {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if h.closed {
		return pkg.ErrClosed
	}
	return nil
}

// Close unmaps the registers and closes the device file.
func (h *HAL) Close() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	err := unix.Munmap(h.mem)
	h.mem = nil
	if cerr := h.file.Close(); err == nil {
		err = cerr
	}
	return err
}
