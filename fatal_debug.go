//go:build gassert_fatal_debug

package gassert

// FatalFloor is the lowest severity whose failures panic,
// selected by the gassert_fatal_debug build tag.
const FatalFloor = LevelDebug
