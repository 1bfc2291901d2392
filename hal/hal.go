package hal

// Register layout of the keyboard controller on the reference SoC.
// Both registers are 32 bits wide and 32-bit aligned.
const (
	DefaultBase  uintptr = 0xFFFF0000 // Base of the peripheral register block
	StatusOffset uintptr = 0x38       // Non-zero while the data register holds an unread byte
	DataOffset   uintptr = 0x3C       // Next raw byte from the keyboard (low 8 bits)
	RegisterSize uintptr = 4          // Width of each register in bytes
)

// DataMask selects the meaningful bits of a data register read.
const DataMask = 0xFF

// Registers defines the Hardware Abstraction Layer for a polled PS/2
// keyboard controller.
//
// The decoder only ever performs two operations: it checks the status
// register, and while data is available it reads the data register once per
// byte. Implementations must not block in either method.
//
// Registers implementations are owned by a single poller and need not be
// safe for concurrent use, although implementations fed from background
// goroutines guard their own buffers.
type Registers interface {
	// DataAvailable reports whether the data register holds an unread byte.
	DataAvailable() bool

	// ReadData reads the data register and consumes one byte.
	// Only the low byte ([DataMask]) is meaningful.
	ReadData() uint32
}

// Faulter is implemented by sources that can fail after construction, such
// as byte streams reaching EOF or input devices being unplugged.
type Faulter interface {
	// Err returns the terminal error of the source, or nil while healthy.
	Err() error
}

// Func adapts a pair of functions to the [Registers] interface.
type Func struct {
	Status func() bool
	Data   func() uint32
}

// DataAvailable calls f.Status.
func (f Func) DataAvailable() bool {
	return f.Status()
}

// ReadData calls f.Data.
func (f Func) ReadData() uint32 {
	return f.Data()
}

// Err returns the terminal error of r if it implements [Faulter].
func Err(r Registers) error {
	if f, ok := r.(Faulter); ok {
		return f.Err()
	}
	return nil
}
