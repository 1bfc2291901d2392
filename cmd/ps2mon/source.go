package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ardnew/softps2/config"
	"github.com/ardnew/softps2/hal"
	"github.com/ardnew/softps2/hal/evdev"
	"github.com/ardnew/softps2/hal/fifo"
	"github.com/ardnew/softps2/hal/mmio"
	"github.com/ardnew/softps2/hal/sim"
	"github.com/ardnew/softps2/pkg"
	"github.com/ardnew/softps2/scancode"
)

// source is an open register source.
type source interface {
	hal.Registers
	io.Closer
}

// simSource adds a no-op Close to the in-memory registers.
type simSource struct {
	*sim.Registers
}

func (simSource) Close() error { return nil }

// openSource opens the register source selected by cfg. Messages meant for
// the operator, such as the path of a created FIFO, go to status.
func openSource(ctx context.Context, cfg *config.Config, stdin io.Reader, status io.Writer) (source, error) {
	s := cfg.Source
	switch cfg.Kind() {
	case pkg.SourceSim:
		regs := sim.New()
		if s.Replay != "" {
			data, err := scancode.EncodeText(s.Replay)
			if err != nil {
				return nil, errors.Wrap(err, "replay")
			}
			regs.Push(data...)
			regs.End()
		}
		return simSource{regs}, nil

	case pkg.SourceStdin:
		h := fifo.NewReader(stdin)
		if err := h.Init(ctx); err != nil {
			return nil, errors.Wrap(err, "stdin source")
		}
		return h, nil

	case pkg.SourceFIFO:
		h, err := fifoSource(s.Path)
		if err != nil {
			return nil, err
		}
		if err := h.Init(ctx); err != nil {
			return nil, errors.Wrap(err, "fifo source")
		}
		fmt.Fprintf(status, "reading scancodes from %s\n", h.Path())
		return h, nil

	case pkg.SourceMMIO:
		h, err := mmio.Open(s.Path, uintptr(s.Base), uintptr(s.StatusOffset), uintptr(s.DataOffset))
		if err != nil {
			return nil, errors.Wrap(err, "mmio source")
		}
		return h, nil

	case pkg.SourceEvdev:
		h, err := evdev.Open(ctx, s.Path)
		if err != nil {
			return nil, errors.Wrap(err, "evdev source")
		}
		return h, nil
	}
	return nil, errors.Wrapf(pkg.ErrUnsupportedSource, "source %q", s.Kind)
}

// fifoSource creates a named pipe in the temporary directory or in the
// directory at path, or reads an existing file at path.
func fifoSource(path string) (*fifo.HAL, error) {
	if path == "" {
		return fifo.New(os.TempDir()), nil
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "fifo source")
	}
	if fi.IsDir() {
		return fifo.New(path), nil
	}
	return fifo.Open(path), nil
}
