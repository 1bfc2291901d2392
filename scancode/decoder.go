package scancode

import (
	"log/slog"

	"github.com/ardnew/softps2/hal"
)

// State is the prefix state of a [Decoder].
type State uint8

// Decoder states. Extended and release prefixes are tracked independently,
// so a release prefix seen first followed by an extended prefix also reaches
// StateExtendedRelease.
const (
	StateIdle            State = iota // No prefix pending
	StateExtended                     // 0xE0 seen
	StateRelease                      // 0xF0 seen
	StateExtendedRelease              // 0xE0 and 0xF0 seen
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExtended:
		return "extended"
	case StateRelease:
		return "release"
	case StateExtendedRelease:
		return "extended-release"
	default:
		return "unknown"
	}
}

// UnmappedPolicy selects what the decoder does with a completed scancode
// that has no translation.
type UnmappedPolicy uint8

// Unmapped scancode policies.
const (
	// UnmappedReport returns the event with KeyNone as its key.
	UnmappedReport UnmappedPolicy = iota
	// UnmappedSuppress consumes the scancode and keeps polling.
	UnmappedSuppress
)

// String returns the policy name used in configuration files.
func (p UnmappedPolicy) String() string {
	if p == UnmappedSuppress {
		return "suppress"
	}
	return "report"
}

// Option configures a [Decoder].
type Option func(*Decoder)

// WithUnmapped sets the policy for scancodes without a translation.
func WithUnmapped(policy UnmappedPolicy) Option {
	return func(d *Decoder) {
		d.unmapped = policy
	}
}

// WithLogger traces every consumed byte at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// Decoder translates scancode set 2 bytes into key events.
//
// A Decoder owns its prefix state and is not safe for concurrent use; it is
// meant to be driven by the single context that owns the keyboard
// controller.
type Decoder struct {
	regs     hal.Registers
	extended bool
	release  bool
	unmapped UnmappedPolicy
	logger   *slog.Logger
}

// NewDecoder creates a decoder reading from regs. regs may be nil when the
// decoder is only driven through [Decoder.Feed].
func NewDecoder(regs hal.Registers, opts ...Option) *Decoder {
	d := &Decoder{regs: regs}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Poll reads bytes while the controller reports data available and returns
// the first completed event. It returns false when the data runs out before
// a non-prefix byte arrives; any prefixes already read stay pending for the
// next call. Poll never blocks.
func (d *Decoder) Poll() (Event, bool) {
	if d.regs == nil {
		return 0, false
	}
	for d.regs.DataAvailable() {
		if ev, ok := d.Feed(byte(d.regs.ReadData() & hal.DataMask)); ok {
			return ev, true
		}
	}
	return 0, false
}

// PollCode is Poll in the controller's native encoding: the event code, or
// [NoEvent] if nothing is pending.
func (d *Decoder) PollCode() uint32 {
	if ev, ok := d.Poll(); ok {
		return uint32(ev)
	}
	return NoEvent
}

// Feed advances the state machine by one byte. Prefix bytes return false.
// A scancode returns its event and clears both prefixes; under
// [UnmappedSuppress] an untranslated scancode clears the prefixes and
// returns false.
func (d *Decoder) Feed(b byte) (Event, bool) {
	switch b {
	case PrefixExtended:
		d.extended = true
		d.trace("prefix", b)
		return 0, false
	case PrefixRelease:
		d.release = true
		d.trace("prefix", b)
		return 0, false
	}

	key := Lookup(b, d.extended)
	ev := NewEvent(key, !d.release)
	d.extended = false
	d.release = false

	if key == KeyNone && d.unmapped == UnmappedSuppress {
		d.trace("suppressed", b)
		return 0, false
	}
	d.trace("event", b, "event", ev.String())
	return ev, true
}

// Registers returns the register source the decoder polls, or nil.
func (d *Decoder) Registers() hal.Registers {
	return d.regs
}

// State returns the current prefix state.
func (d *Decoder) State() State {
	s := StateIdle
	if d.extended {
		s |= StateExtended
	}
	if d.release {
		s |= StateRelease
	}
	return s
}

// Reset discards any pending prefixes.
func (d *Decoder) Reset() {
	d.extended = false
	d.release = false
}

func (d *Decoder) trace(msg string, b byte, args ...any) {
	if d.logger == nil {
		return
	}
	d.logger.Debug(msg, append([]any{"byte", b}, args...)...)
}
