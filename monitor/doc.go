// Package monitor drives a scancode decoder from a periodic poll loop.
//
// A [Monitor] is a thejerf/suture service: Serve drains the decoder on each
// tick, hands every event to a handler and keeps counters. When the
// decoder's source implements hal.Faulter, the monitor watches it and ends
// the supervisor tree once a finite source (a capture file, stdin) reaches
// end of stream.
package monitor
