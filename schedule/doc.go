// Package schedule reads and writes precomputed zoom/pan trajectories.
//
// # File Format
//
// A trajectory file is a flat sequence of IEEE-754 doubles in the host's
// native byte order, grouped in (x, y, zoom) triples. There is no header.
// A valid file is a positive multiple of 24 bytes:
//
//	table, err := schedule.Load("pan.bin")
//	if errors.Is(err, schedule.ErrInvalid) {
//	    // empty, unaligned or partial triple
//	}
//
// Values are not range checked here; the parameter driver clamps them per
// frame.
//
// # Playback
//
// A Cursor hands out one triple per frame. Once the table is exhausted it
// repeats the last triple and reports exhaustion so callers can warn.
//
// # Keyframes
//
// Interpolate expands a handful of keyframes into a per-frame trajectory,
// which is what cmd/schedgen writes.
package schedule
