//go:build gassert_debug

package gassert

// Threshold is the lowest severity compiled into this build,
// selected by the gassert_debug build tag.
const Threshold = LevelDebug
