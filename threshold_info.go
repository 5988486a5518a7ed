//go:build gassert_info

package gassert

// Threshold is the lowest severity compiled into this build,
// selected by the gassert_info build tag.
const Threshold = LevelInfo
