//go:build linux

package evdev

import (
	"context"
	"fmt"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/ardnew/softps2/hal/fifo"
	"github.com/ardnew/softps2/pkg"
)

// Reader turns a Linux input device into a stream of scancode set 2 bytes.
type Reader struct {
	dev     *evdev.InputDevice
	pending []byte
}

// NewReader wraps an open input device.
func NewReader(dev *evdev.InputDevice) *Reader {
	return &Reader{dev: dev}
}

// Read blocks until at least one key event has been encoded.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		ev, err := r.dev.ReadOne()
		if err != nil {
			return 0, err
		}
		r.pending = AppendEvent(r.pending[:0], ev.Type, ev.Code, ev.Value)
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// Source implements hal.Registers over a Linux input device.
type Source struct {
	*fifo.HAL
	dev *evdev.InputDevice
}

// Open opens the input device at path and starts translating its key
// events.
func Open(ctx context.Context, path string) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evdev open %s: %w", path, err)
	}

	h := fifo.NewReader(NewReader(dev))
	if err := h.Init(ctx); err != nil {
		dev.File.Close()
		return nil, err
	}

	pkg.LogInfo(pkg.ComponentHAL, "evdev source opened", "path", path, "name", dev.Name)
	return &Source{HAL: h, dev: dev}, nil
}

// Name returns the input device name reported by the kernel.
func (s *Source) Name() string {
	return s.dev.Name
}

// Close stops translation and closes the input device.
func (s *Source) Close() error {
	err := s.HAL.Close()
	if cerr := s.dev.File.Close(); err == nil {
		err = cerr
	}
	return err
}
