//go:build !gassert_fatal_debug && !gassert_fatal_info && !gassert_fatal_warn

package gassert

// FatalFloor is the lowest severity whose failures panic.
//
// Without a fatal tag, only Always assertions are fatal
// and every other compiled-in level logs and continues.
const FatalFloor = LevelAlways
