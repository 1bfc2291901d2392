// Command ps2mon decodes PS/2 scancode set 2 from a register source and
// prints one line per key event.
//
// Usage:
//
//	ps2mon [flags]
//
// Examples:
//
//	ps2mon --replay "hello"                  # type text through the simulator
//	printf '\x1c\xf0\x1c' | ps2mon           # raw bytes on stdin
//	ps2mon -s fifo -p /tmp                   # create /tmp/ps2-<uuid>/data
//	ps2mon -s evdev -p /dev/input/event3     # a real keyboard, re-encoded
//	ps2mon -s mmio -c board.toml             # the controller registers
//
// Flags override the configuration file. With -c the file is watched and a
// changed log level is applied without restarting.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"github.com/thejerf/suture/v4"

	"github.com/ardnew/softps2/config"
	"github.com/ardnew/softps2/hal"
	"github.com/ardnew/softps2/monitor"
	"github.com/ardnew/softps2/pkg"
	"github.com/ardnew/softps2/scancode"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "ps2mon:", err)
		os.Exit(2)
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ps2mon:", err)
		os.Exit(2)
	}

	closeLog := setupLogging(cfg)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		pkg.LogError(pkg.ComponentCLI, "ps2mon failed", "error", err)
		fmt.Fprintln(os.Stderr, "ps2mon:", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogging applies the log settings of cfg and returns a function that
// releases the log file, if any.
func setupLogging(cfg *config.Config) func() {
	level, _ := cfg.LogLevel()
	pkg.SetLogLevel(level)
	pkg.SetLogFormat(pkg.ParseLogFormat(cfg.Log.Format))
	if cfg.Log.File == "" {
		return func() {}
	}
	c := pkg.SetLogFile(cfg.LogFile())
	return func() { c.Close() }
}

// run opens the source and decodes until ctx is done or the source ends.
func run(ctx context.Context, opts *options, cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	src, err := openSource(ctx, cfg, stdin, stderr)
	if err != nil {
		return err
	}
	defer src.Close()

	policy, _ := cfg.Unmapped()
	interval, _ := cfg.Interval()

	dec := scancode.NewDecoder(src,
		scancode.WithUnmapped(policy),
		scancode.WithLogger(pkg.Logger(pkg.ComponentDecoder)))

	mon := monitor.New(dec,
		monitor.WithInterval(interval),
		monitor.WithName("monitor:"+cfg.Source.Kind),
		monitor.WithHandler(func(ev scancode.Event) {
			fmt.Fprintf(stdout, "%08x %s\n", uint32(ev), ev)
		}))

	root := suture.New("ps2mon", suture.Spec{
		EventHook: func(evt suture.Event) {
			pkg.LogWarn(pkg.ComponentCLI, "supervisor event", "event", evt.Map())
		},
	})
	root.Add(mon)
	if opts != nil && opts.configPath != "" {
		root.Add(&reloader{path: opts.configPath, keepLevel: opts.verbose})
	}

	pkg.LogInfo(pkg.ComponentCLI, "ps2mon started",
		"source", cfg.Source.Kind,
		"interval", interval,
		"unmapped", policy)

	err = root.Serve(ctx)

	stats := mon.Stats()
	pkg.LogInfo(pkg.ComponentCLI, "ps2mon stopped",
		"events", stats.Events,
		"presses", stats.Presses,
		"releases", stats.Releases,
		"unrecognized", stats.Unrecognized)

	switch {
	case err == nil, ctx.Err() != nil:
		return nil
	case errors.Is(err, suture.ErrTerminateSupervisorTree), errors.Is(hal.Err(src), io.EOF):
		return nil
	}
	return err
}

// reloader applies configuration changes that take effect without a
// restart.
type reloader struct {
	path      string
	keepLevel bool
}

func (r *reloader) Serve(ctx context.Context) error {
	return config.Watch(ctx, r.path, func(c *config.Config) {
		if r.keepLevel {
			return
		}
		level, _ := c.LogLevel()
		if level != pkg.GetLogLevel() {
			pkg.SetLogLevel(level)
			pkg.LogInfo(pkg.ComponentCLI, "log level changed", "level", level)
		}
	})
}

func (r *reloader) String() string {
	return "config:" + r.path
}
