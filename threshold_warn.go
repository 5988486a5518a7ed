//go:build gassert_warn

package gassert

// Threshold is the lowest severity compiled into this build,
// selected by the gassert_warn build tag.
const Threshold = LevelWarn
