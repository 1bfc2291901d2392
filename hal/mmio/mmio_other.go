//go:build !linux

package mmio

import (
	"fmt"

	"github.com/ardnew/softps2/pkg"
)

// HAL is unavailable on this platform.
type HAL struct{}

// Open returns [pkg.ErrUnsupportedSource].
func Open(path string, base, statusOff, dataOff uintptr) (*HAL, error) {
	return nil, fmt.Errorf("mmio: %w", pkg.ErrUnsupportedSource)
}

// DataAvailable always returns false.
func (h *HAL) DataAvailable() bool { return false }

// ReadData always returns 0.
func (h *HAL) ReadData() uint32 { return 0 }

// Err returns [pkg.ErrUnsupportedSource].
func (h *HAL) Err() error { return pkg.ErrUnsupportedSource }

// Close does nothing.
func (h *HAL) Close() error { return nil }
