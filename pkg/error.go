package pkg

import "errors"

// Keyboard stack errors.
var (
	// ErrUnknownKey indicates a key or rune has no scancode set 2 encoding.
	ErrUnknownKey = errors.New("unknown key")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAlreadyRunning indicates the source is already running.
	ErrAlreadyRunning = errors.New("already running")

	// ErrNotRunning indicates the source has not been started.
	ErrNotRunning = errors.New("not running")

	// ErrClosed indicates the register source has been closed.
	ErrClosed = errors.New("source closed")

	// ErrUnsupportedSource indicates the source kind is unknown or unavailable
	// on this platform.
	ErrUnsupportedSource = errors.New("unsupported source")

	// ErrInvalidConfig indicates a configuration value failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SourceKind names a register source implementation.
type SourceKind string

// Register source kinds.
const (
	SourceSim   SourceKind = "sim"   // In-memory byte queue
	SourceFIFO  SourceKind = "fifo"  // Named pipe created or opened by path
	SourceStdin SourceKind = "stdin" // Raw bytes on standard input
	SourceMMIO  SourceKind = "mmio"  // Memory-mapped register pair
	SourceEvdev SourceKind = "evdev" // Linux input device
)

// String returns the source kind name.
func (k SourceKind) String() string {
	return string(k)
}

// Valid reports whether k is a known source kind.
func (k SourceKind) Valid() bool {
	switch k {
	case SourceSim, SourceFIFO, SourceStdin, SourceMMIO, SourceEvdev:
		return true
	default:
		return false
	}
}
