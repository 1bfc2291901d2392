// Package config loads ps2mon settings from TOML.
//
// A complete file looks like:
//
//	[source]
//	kind = "mmio"            # sim, fifo, stdin, mmio or evdev
//	path = "/dev/mem"
//	base = 0xFFFF0000
//	status_offset = 0x38
//	data_offset = 0x3C
//	replay = ""              # text typed through the sim source
//
//	[decoder]
//	unmapped = "report"      # or "suppress"
//
//	[poll]
//	interval = "10ms"
//
//	[log]
//	level = "info"
//	format = "text"          # or "json"
//	file = ""                # rotated with max_size_mb, max_backups, max_age_days
//	compress = false
//
// Missing keys take the values of [Default]. [Watch] reloads a file when it
// changes on disk.
package config
