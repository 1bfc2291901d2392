package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/ardnew/softps2/hal"
	"github.com/ardnew/softps2/pkg"
	"github.com/ardnew/softps2/scancode"
)

// Default values.
const (
	DefaultKind       = pkg.SourceStdin
	DefaultMMIOPath   = "/dev/mem"
	DefaultUnmapped   = "report"
	DefaultInterval   = "10ms"
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
)

// Config is the ps2mon configuration file.
type Config struct {
	Source  Source  `toml:"source"`
	Decoder Decoder `toml:"decoder"`
	Poll    Poll    `toml:"poll"`
	Log     Log     `toml:"log"`
}

// Source selects and parameterizes the register source.
type Source struct {
	Kind         string `toml:"kind"`
	Path         string `toml:"path"`
	Base         int64  `toml:"base"`
	StatusOffset int64  `toml:"status_offset"`
	DataOffset   int64  `toml:"data_offset"`
	Replay       string `toml:"replay"`
}

// Decoder configures scancode translation.
type Decoder struct {
	Unmapped string `toml:"unmapped"`
}

// Poll configures the monitor loop.
type Poll struct {
	Interval string `toml:"interval"`
}

// Log configures logging.
type Log struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults replaces zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.Source.Kind == "" {
		c.Source.Kind = string(DefaultKind)
	}
	if c.Source.Path == "" && pkg.SourceKind(c.Source.Kind) == pkg.SourceMMIO {
		c.Source.Path = DefaultMMIOPath
	}
	if c.Source.Base == 0 {
		c.Source.Base = int64(hal.DefaultBase)
	}
	if c.Source.StatusOffset == 0 {
		c.Source.StatusOffset = int64(hal.StatusOffset)
	}
	if c.Source.DataOffset == 0 {
		c.Source.DataOffset = int64(hal.DataOffset)
	}
	if c.Decoder.Unmapped == "" {
		c.Decoder.Unmapped = DefaultUnmapped
	}
	if c.Poll.Interval == "" {
		c.Poll.Interval = DefaultInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = DefaultMaxBackups
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = DefaultMaxAgeDays
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Parse decodes TOML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(pkg.ErrInvalidConfig, err.Error())
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every field. Errors wrap [pkg.ErrInvalidConfig].
func (c *Config) Validate() error {
	if !pkg.SourceKind(c.Source.Kind).Valid() {
		return errors.Wrapf(pkg.ErrInvalidConfig, "unknown source kind %q", c.Source.Kind)
	}
	switch pkg.SourceKind(c.Source.Kind) {
	case pkg.SourceMMIO, pkg.SourceEvdev:
		if c.Source.Path == "" {
			return errors.Wrapf(pkg.ErrInvalidConfig, "source %s requires a path", c.Source.Kind)
		}
	}
	if c.Source.Base < 0 || c.Source.StatusOffset < 0 || c.Source.DataOffset < 0 {
		return errors.Wrap(pkg.ErrInvalidConfig, "register addresses must not be negative")
	}
	if (c.Source.Base+c.Source.StatusOffset)%int64(hal.RegisterSize) != 0 ||
		(c.Source.Base+c.Source.DataOffset)%int64(hal.RegisterSize) != 0 {
		return errors.Wrap(pkg.ErrInvalidConfig, "registers must be 32-bit aligned")
	}
	if _, err := c.Unmapped(); err != nil {
		return err
	}
	if _, err := c.Interval(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.Wrapf(pkg.ErrInvalidConfig, "unknown log format %q", c.Log.Format)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.Wrap(pkg.ErrInvalidConfig, "log rotation limits must not be negative")
	}
	return nil
}

// Kind returns the source kind.
func (c *Config) Kind() pkg.SourceKind {
	return pkg.SourceKind(c.Source.Kind)
}

// Unmapped returns the decoder's policy for untranslated scancodes.
func (c *Config) Unmapped() (scancode.UnmappedPolicy, error) {
	switch c.Decoder.Unmapped {
	case scancode.UnmappedReport.String():
		return scancode.UnmappedReport, nil
	case scancode.UnmappedSuppress.String():
		return scancode.UnmappedSuppress, nil
	}
	return scancode.UnmappedReport, errors.Wrapf(pkg.ErrInvalidConfig, "unknown unmapped policy %q", c.Decoder.Unmapped)
}

// Interval returns the poll period.
func (c *Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Poll.Interval)
	if err != nil {
		return 0, errors.Wrapf(pkg.ErrInvalidConfig, "poll interval %q", c.Poll.Interval)
	}
	if d <= 0 {
		return 0, errors.Wrapf(pkg.ErrInvalidConfig, "poll interval %s must be positive", d)
	}
	return d, nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	level, err := pkg.ParseLogLevel(c.Log.Level)
	if err != nil {
		return level, errors.Wrapf(pkg.ErrInvalidConfig, "log level %q", c.Log.Level)
	}
	return level, nil
}

// LogFile returns the rotation settings for [pkg.SetLogFile].
func (c *Config) LogFile() pkg.LogFile {
	return pkg.LogFile{
		Path:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
		Compress:   c.Log.Compress,
	}
}
