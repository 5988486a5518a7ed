//go:build !gassert_trace && !gassert_debug && !gassert_info && !gassert_warn

package gassert

// Threshold is the lowest severity compiled into this build.
//
// Without a threshold tag, only Warn and Always assertions are compiled in.
// Select a different threshold with exactly one of the build tags
// gassert_trace, gassert_debug, gassert_info, or gassert_warn.
const Threshold = LevelWarn
