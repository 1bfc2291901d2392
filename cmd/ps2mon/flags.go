package main

import (
	"io"
	"time"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/ardnew/softps2/config"
	"github.com/ardnew/softps2/pkg"
)

// options holds the command line.
type options struct {
	flags *flag.FlagSet

	configPath string
	source     string
	path       string
	replay     string
	interval   time.Duration
	suppress   bool
	verbose    bool
	jsonLog    bool
	logFile    string
}

func parseFlags(args []string, usage io.Writer) (*options, error) {
	o := &options{flags: flag.NewFlagSet("ps2mon", flag.ContinueOnError)}
	f := o.flags
	f.SetOutput(usage)

	f.StringVarP(&o.configPath, "config", "c", "", "TOML configuration file, reloaded on change")
	f.StringVarP(&o.source, "source", "s", "", "register source: sim, fifo, stdin, mmio or evdev")
	f.StringVarP(&o.path, "path", "p", "", "FIFO, capture file, memory device or input device path")
	f.StringVar(&o.replay, "replay", "", "text typed as set 2 scancodes through the sim source")
	f.DurationVarP(&o.interval, "interval", "i", 0, "poll interval (default 10ms)")
	f.BoolVar(&o.suppress, "suppress-unmapped", false, "drop scancodes with no key translation")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	f.BoolVar(&o.jsonLog, "json", false, "write logs as JSON")
	f.StringVar(&o.logFile, "log-file", "", "write logs to a rotated file instead of stderr")

	if err := f.Parse(args); err != nil {
		return nil, err
	}
	if f.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", f.Arg(0))
	}
	return o, nil
}

// loadConfig reads the configuration file, if any, and applies the flags
// given on the command line over it.
func (o *options) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		c, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	o.apply(cfg)

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "command line")
	}
	return cfg, nil
}

func (o *options) apply(cfg *config.Config) {
	f := o.flags
	if f.Changed("source") && o.source != cfg.Source.Kind {
		cfg.Source.Kind = o.source
		cfg.Source.Path = ""
	}
	if f.Changed("replay") {
		cfg.Source.Replay = o.replay
		if !f.Changed("source") {
			cfg.Source.Kind = string(pkg.SourceSim)
		}
	}
	if f.Changed("path") {
		cfg.Source.Path = o.path
	}
	if f.Changed("interval") {
		cfg.Poll.Interval = o.interval.String()
	}
	if f.Changed("suppress-unmapped") && o.suppress {
		cfg.Decoder.Unmapped = "suppress"
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if o.jsonLog {
		cfg.Log.Format = "json"
	}
	if f.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
}
