//go:build gassert_trace

package gassert

// Threshold is the lowest severity compiled into this build,
// selected by the gassert_trace build tag.
const Threshold = LevelTrace
