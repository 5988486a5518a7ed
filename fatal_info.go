//go:build gassert_fatal_info

package gassert

// FatalFloor is the lowest severity whose failures panic,
// selected by the gassert_fatal_info build tag.
const FatalFloor = LevelInfo
