package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/ardnew/softps2/hal"
	"github.com/ardnew/softps2/pkg"
	"github.com/ardnew/softps2/scancode"
)

// DefaultInterval is the poll period used when none is given.
const DefaultInterval = 10 * time.Millisecond

// Handler receives each decoded event.
type Handler func(scancode.Event)

// Stats counts what a monitor has seen.
type Stats struct {
	Events       uint64 // Events dispatched
	Presses      uint64 // Events with the pressed bit set
	Releases     uint64 // Events without the pressed bit
	Unrecognized uint64 // Events carrying KeyNone
	Ticks        uint64 // Drain passes
}

// Option configures a [Monitor].
type Option func(*Monitor)

// WithInterval sets the poll period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithHandler sets the function called for each event.
func WithHandler(h Handler) Option {
	return func(m *Monitor) {
		if h != nil {
			m.handler = h
		}
	}
}

// WithSource sets the source checked for terminal errors. By default the
// decoder's own registers are checked.
func WithSource(src hal.Registers) Option {
	return func(m *Monitor) {
		m.source = src
	}
}

// WithLogger sets the monitor's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Monitor) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithName sets the service name reported to the supervisor.
func WithName(name string) Option {
	return func(m *Monitor) {
		m.name = name
	}
}

// Monitor polls a decoder on a fixed interval.
//
// The monitor is the only caller of its decoder's Poll. PollOnce and Serve
// must not run concurrently.
type Monitor struct {
	dec      *scancode.Decoder
	source   hal.Registers
	interval time.Duration
	handler  Handler
	logger   *slog.Logger
	name     string

	events       atomic.Uint64
	presses      atomic.Uint64
	releases     atomic.Uint64
	unrecognized atomic.Uint64
	ticks        atomic.Uint64
}

// New creates a monitor for dec.
func New(dec *scancode.Decoder, opts ...Option) *Monitor {
	m := &Monitor{
		dec:      dec,
		source:   dec.Registers(),
		interval: DefaultInterval,
		handler:  func(scancode.Event) {},
		logger:   pkg.Logger(pkg.ComponentMonitor),
		name:     "monitor",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Interval returns the poll period.
func (m *Monitor) Interval() time.Duration {
	return m.interval
}

// PollOnce drains every event currently available and returns how many
// were dispatched.
func (m *Monitor) PollOnce() int {
	m.ticks.Add(1)

	n := 0
	for {
		ev, ok := m.dec.Poll()
		if !ok {
			return n
		}
		m.count(ev)
		m.handler(ev)
		n++
	}
}

func (m *Monitor) count(ev scancode.Event) {
	m.events.Add(1)
	if ev.Pressed() {
		m.presses.Add(1)
	} else {
		m.releases.Add(1)
	}
	if !ev.Recognized() {
		m.unrecognized.Add(1)
		m.logger.Debug("unrecognized scancode", "event", uint32(ev))
	}
}

// Serve polls until ctx is done or the source fails. It returns
// [suture.ErrTerminateSupervisorTree] once the source reports io.EOF and
// [suture.ErrDoNotRestart] once it has been closed.
func (m *Monitor) Serve(ctx context.Context) error {
	m.logger.Info("monitor started", "interval", m.interval)
	defer m.logger.Info("monitor stopped", "events", m.events.Load())

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.PollOnce()

		if err := hal.Err(m.source); err != nil {
			switch {
			case errors.Is(err, io.EOF):
				m.logger.Info("source reached end of stream")
				return suture.ErrTerminateSupervisorTree
			case errors.Is(err, pkg.ErrClosed):
				return suture.ErrDoNotRestart
			default:
				m.logger.Error("source failed", "error", err)
				return fmt.Errorf("monitor source: %w", err)
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Stats returns a snapshot of the counters.
func (m *Monitor) Stats() Stats {
	return Stats{
		Events:       m.events.Load(),
		Presses:      m.presses.Load(),
		Releases:     m.releases.Load(),
		Unrecognized: m.unrecognized.Load(),
		Ticks:        m.ticks.Load(),
	}
}

// String returns the service name.
func (m *Monitor) String() string {
	return m.name
}
