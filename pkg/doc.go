// Package pkg provides shared utilities for the softps2 keyboard stack.
//
// This package contains common functionality used by the decoder, the
// register sources and the monitor, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Optional size-rotated log files
//   - Sentinel error values
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with component context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentMonitor, "polling", "interval", "10ms")
//
// Long-running processes can send logs to a rotated file instead of stderr:
//
//	closer := pkg.SetLogFile(pkg.LogFile{Path: "/var/log/ps2mon.log", MaxSizeMB: 5})
//	defer closer.Close()
//
// # Errors
//
// Common errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrUnknownKey) {
//	    // Key has no set 2 encoding
//	}
package pkg
