package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ardnew/softps2/config"
	"github.com/ardnew/softps2/pkg"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-s", "fifo", "-p", "/tmp", "-i", "5ms", "-v", "--json"}, io.Discard)
	require.NoError(t, err)

	cfg, err := opts.loadConfig()
	require.NoError(t, err)
	require.Equal(t, pkg.SourceFIFO, cfg.Kind())
	require.Equal(t, "/tmp", cfg.Source.Path)
	require.Equal(t, "5ms", cfg.Poll.Interval)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags([]string{"--bogus"}, io.Discard)
	require.Error(t, err)

	_, err = parseFlags([]string{"extra"}, io.Discard)
	require.Error(t, err)

	opts, err := parseFlags([]string{"-s", "usb"}, io.Discard)
	require.NoError(t, err)
	_, err = opts.loadConfig()
	require.ErrorIs(t, err, pkg.ErrInvalidConfig)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ps2mon.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[source]
kind = "stdin"

[poll]
interval = "1s"

[log]
level = "error"
`), 0o644))

	opts, err := parseFlags([]string{"-c", path, "--replay", "ok", "--suppress-unmapped"}, io.Discard)
	require.NoError(t, err)

	cfg, err := opts.loadConfig()
	require.NoError(t, err)
	require.Equal(t, pkg.SourceSim, cfg.Kind())
	require.Equal(t, "ok", cfg.Source.Replay)
	require.Equal(t, "1s", cfg.Poll.Interval)
	require.Equal(t, "error", cfg.Log.Level)
	require.Equal(t, "suppress", cfg.Decoder.Unmapped)
}

func TestLoadConfig_SourceFlagKeepsFilePath(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		args     []string
		wantKind pkg.SourceKind
		wantPath string
	}{
		{
			name:     "same kind keeps path",
			file:     "[source]\nkind = \"mmio\"\npath = \"/dev/uio0\"\n",
			args:     []string{"-s", "mmio"},
			wantKind: pkg.SourceMMIO,
			wantPath: "/dev/uio0",
		},
		{
			name:     "same kind evdev",
			file:     "[source]\nkind = \"evdev\"\npath = \"/dev/input/event3\"\n",
			args:     []string{"-s", "evdev"},
			wantKind: pkg.SourceEvdev,
			wantPath: "/dev/input/event3",
		},
		{
			name:     "other kind drops path",
			file:     "[source]\nkind = \"evdev\"\npath = \"/dev/input/event3\"\n",
			args:     []string{"-s", "mmio"},
			wantKind: pkg.SourceMMIO,
			wantPath: config.DefaultMMIOPath,
		},
		{
			name:     "path flag wins",
			file:     "[source]\nkind = \"mmio\"\npath = \"/dev/uio0\"\n",
			args:     []string{"-s", "mmio", "-p", "/dev/uio1"},
			wantKind: pkg.SourceMMIO,
			wantPath: "/dev/uio1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "board.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o644))

			opts, err := parseFlags(append([]string{"-c", path}, tt.args...), io.Discard)
			require.NoError(t, err)

			cfg, err := opts.loadConfig()
			require.NoError(t, err)
			require.Equal(t, tt.wantKind, cfg.Kind())
			require.Equal(t, tt.wantPath, cfg.Source.Path)
		})
	}
}

func runWith(t *testing.T, args []string, stdin io.Reader) string {
	t.Helper()

	opts, err := parseFlags(args, io.Discard)
	require.NoError(t, err)
	cfg, err := opts.loadConfig()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	require.NoError(t, run(ctx, opts, cfg, stdin, &out, io.Discard))
	require.NoError(t, ctx.Err(), "run should stop when the source ends")
	return out.String()
}

func TestRun_Replay(t *testing.T) {
	out := runWith(t, []string{"--replay", "hi", "-i", "1ms"}, nil)
	require.Equal(t, strings.Join([]string{
		"80000068 h down",
		"00000068 h up",
		"80000069 i down",
		"00000069 i up",
	}, "\n")+"\n", out)
}

func TestRun_Stdin(t *testing.T) {
	out := runWith(t, []string{"-i", "1ms"}, strings.NewReader("\xe0\x75\xe0\xf0\x75"))
	require.Equal(t, "8000008e up down\n0000008e up up\n", out)
}

func TestRun_Unmapped(t *testing.T) {
	out := runWith(t, []string{"-i", "1ms"}, strings.NewReader("\x00\x1c"))
	require.Equal(t, 2, strings.Count(out, "\n"))

	out = runWith(t, []string{"-i", "1ms", "--suppress-unmapped"}, strings.NewReader("\x00\x1c"))
	require.Equal(t, "80000061 a down\n", out)
}

func TestRun_Cancel(t *testing.T) {
	cfg := config.Default()
	cfg.Source.Kind = string(pkg.SourceSim)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, run(ctx, nil, cfg, nil, io.Discard, io.Discard))
}
