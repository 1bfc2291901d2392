//go:build !linux

package evdev

import (
	"context"
	"fmt"

	"github.com/ardnew/softps2/hal/fifo"
	"github.com/ardnew/softps2/pkg"
)

// Source is unavailable on this platform.
type Source struct {
	*fifo.HAL
}

// Open returns [pkg.ErrUnsupportedSource].
func Open(ctx context.Context, path string) (*Source, error) {
	return nil, fmt.Errorf("evdev: %w", pkg.ErrUnsupportedSource)
}
