//go:build gassert_fatal_warn

package gassert

// FatalFloor is the lowest severity whose failures panic,
// selected by the gassert_fatal_warn build tag.
const FatalFloor = LevelWarn
